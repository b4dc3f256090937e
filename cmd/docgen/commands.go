package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/bytedance/sonic"
	"github.com/spf13/pflag"
	"gopkg.in/yaml.v3"

	"github.com/anixcopiadora/docgen"
	"github.com/anixcopiadora/docgen/brdoc"
	"github.com/anixcopiadora/docgen/doctpl"
	"github.com/anixcopiadora/docgen/export"
	"github.com/anixcopiadora/docgen/extenso"
	"github.com/anixcopiadora/docgen/form"
	"github.com/anixcopiadora/docgen/internal/config"
	"github.com/anixcopiadora/docgen/pageops"
)

func runList(a *app, _ *pflag.FlagSet, args []string) error {
	if len(args) != 0 {
		return errUsage
	}
	list := a.gen.Registry().List()

	if a.cfg.Format != config.FormatText {
		type entry struct {
			ID          string `json:"id" yaml:"id"`
			Title       string `json:"title" yaml:"title"`
			Description string `json:"description" yaml:"description"`
			Available   bool   `json:"available" yaml:"available"`
		}
		out := make([]entry, len(list))
		for i, t := range list {
			out[i] = entry{t.ID, t.Title, t.Description, t.Available()}
		}
		return a.encode(out)
	}

	tw := tabwriter.NewWriter(a.stdout, 0, 4, 2, ' ', 0)
	for _, t := range list {
		status := ""
		if !t.Available() {
			status = "em breve"
		}
		fmt.Fprintf(tw, "%s\t%s %s\t%s\n", t.ID, t.Icon, t.Title, status)
	}
	return tw.Flush()
}

func runDescribe(a *app, _ *pflag.FlagSet, args []string) error {
	if len(args) != 1 {
		return errUsage
	}
	tpl, err := a.gen.Template(args[0])
	if err != nil {
		return err
	}
	schema := doctpl.Describe(tpl, doctpl.Values{})
	if a.cfg.Format != config.FormatText {
		return a.encode(schema)
	}

	fmt.Fprintf(a.stdout, "%s %s (%s)\n%s\n", schema.Icon, schema.Title, schema.ID, schema.Description)
	if !schema.Available {
		fmt.Fprintln(a.stdout, form.UnavailableNotice)
	}
	for _, g := range schema.Groups {
		fmt.Fprintln(a.stdout)
		if g.Tab != "" {
			fmt.Fprintf(a.stdout, "[%s]\n", g.Tab)
		}
		tw := tabwriter.NewWriter(a.stdout, 0, 4, 2, ' ', 0)
		describeFields(tw, g.Fields, "  ")
		if err := tw.Flush(); err != nil {
			return err
		}
	}
	return nil
}

func describeFields(w io.Writer, fields []doctpl.FieldSchema, indent string) {
	for _, f := range fields {
		if f.Kind == doctpl.FieldHeading {
			fmt.Fprintf(w, "%s-- %s --\t\t\n", indent, f.Label)
			continue
		}
		extra := ""
		if len(f.Options) > 0 {
			extra = strings.Join(f.Options, " | ")
		}
		fmt.Fprintf(w, "%s%s\t%s\t%s\t%s\n", indent, f.Name, f.Kind, f.Label, extra)
		describeFields(w, f.Fields, indent+"    ")
	}
}

var (
	valuesFile  string
	printFlag   bool
	previewFlag bool
	mergeName   string
)

func renderFlags(fs *pflag.FlagSet) {
	fs.StringVar(&valuesFile, "values", "", "Values file (.json, .yaml or .yml; - reads JSON from stdin)")
	fs.BoolVar(&printFlag, "print", false, "Open the print dialog when the document is displayed")
	fs.BoolVar(&previewFlag, "preview", false, "Generate the watermarked preview instead of the final document")
	fs.StringVar(&mergeName, "merge", "", "Merge every document into <name>.pdf")
}

func runRender(a *app, _ *pflag.FlagSet, args []string) error {
	if len(args) == 0 || (printFlag && previewFlag) {
		return errUsage
	}
	values, err := loadValues(valuesFile, os.Stdin)
	if err != nil {
		return err
	}
	if err := a.cfg.EnsureOutDir(); err != nil {
		return err
	}

	gen := a.gen
	if mergeName != "" && a.cfg.PageNumbers {
		// The merged file is numbered as a whole.
		cfg := *a.cfg
		cfg.PageNumbers = false
		gen = docgen.New(cfg.GeneratorOptions()...)
	}

	ctx := context.Background()
	var docs []*export.Document
	for _, id := range args {
		doc, err := a.produce(ctx, gen, id, values)
		if err != nil {
			return err
		}
		a.reportAdvisories(id, values)
		if mergeName != "" {
			docs = append(docs, doc)
			continue
		}
		path, err := doc.Save(a.cfg.OutDir)
		if err != nil {
			return err
		}
		fmt.Fprintln(a.stdout, path)
	}
	if mergeName == "" {
		return nil
	}

	srcs := make([][]byte, len(docs))
	for i, d := range docs {
		srcs[i] = d.Data
	}
	data, err := pageops.Merge(srcs...)
	if err != nil {
		return err
	}
	if a.cfg.PageNumbers {
		if data, err = pageops.NumberPages(data, pageops.PageNumberStyle{Format: docgen.PageNumberFormat}); err != nil {
			return err
		}
	}
	merged := &export.Document{Name: strings.TrimSuffix(mergeName, ".pdf"), Data: data}
	path, err := merged.Save(a.cfg.OutDir)
	if err != nil {
		return err
	}
	fmt.Fprintln(a.stdout, path)
	return nil
}

// produce renders one document in the mode selected by the flags.
func (a *app) produce(ctx context.Context, gen *docgen.Generator, id string, values doctpl.Values) (*export.Document, error) {
	var doc *export.Document
	var err error
	switch {
	case printFlag:
		doc, err = gen.Print(ctx, id, values)
	case previewFlag:
		doc, err = gen.Preview(ctx, id, values)
		if err == nil && doc == nil {
			err = docgen.ErrUnavailable
		}
	default:
		doc, err = gen.Render(ctx, id, values)
	}
	if errors.Is(err, docgen.ErrUnavailable) {
		return nil, fmt.Errorf("%s: %s", id, form.UnavailableNotice)
	}
	return doc, err
}

// reportAdvisories prints the field warnings of values. They never stop
// generation.
func (a *app) reportAdvisories(id string, values doctpl.Values) {
	tpl, err := a.gen.Template(id)
	if err != nil {
		return
	}
	sess := form.NewSession(tpl)
	sess.Load(values)
	for _, f := range tpl.Fields() {
		if msg := sess.Advisory(f.Name); msg != "" {
			fmt.Fprintf(a.stderr, "aviso: %s (%s): %s\n", f.Label, f.Name, msg)
		}
	}
}

func runValidate(a *app, _ *pflag.FlagSet, args []string) error {
	if len(args) == 0 {
		return errUsage
	}
	invalid := 0
	tw := tabwriter.NewWriter(a.stdout, 0, 4, 2, ' ', 0)
	for _, raw := range args {
		kind := brdoc.Classify(raw)
		if brdoc.ValidNationalID(raw) {
			fmt.Fprintf(tw, "%s\t%s\tválido\n", brdoc.Format(raw), kind)
			continue
		}
		invalid++
		fmt.Fprintf(tw, "%s\t%s\tinválido\n", raw, kind)
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	if invalid > 0 {
		return fmt.Errorf("%d of %d numbers are invalid", invalid, len(args))
	}
	return nil
}

func runWords(a *app, _ *pflag.FlagSet, args []string) error {
	if len(args) != 1 {
		return errUsage
	}
	words := extenso.Amount(args[0])
	if words == "" {
		return fmt.Errorf("cannot read %q as an amount", args[0])
	}
	fmt.Fprintln(a.stdout, words)
	return nil
}

// encode writes v in the configured structured format.
func (a *app) encode(v any) error {
	switch a.cfg.Format {
	case config.FormatYAML:
		enc := yaml.NewEncoder(a.stdout)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	default:
		data, err := sonic.ConfigStd.MarshalIndent(v, "", "  ")
		if err != nil {
			return err
		}
		_, err = fmt.Fprintf(a.stdout, "%s\n", data)
		return err
	}
}

// loadValues reads form values from a JSON or YAML file. The format follows
// the extension; "-" reads JSON from stdin and an empty path means no
// values.
func loadValues(path string, stdin io.Reader) (doctpl.Values, error) {
	if path == "" {
		return doctpl.Values{}, nil
	}
	var data []byte
	var err error
	if path == "-" {
		data, err = io.ReadAll(stdin)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return nil, fmt.Errorf("reading values: %w", err)
	}

	m := map[string]any{}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &m)
		m = plainYAML(m).(map[string]any)
	default:
		err = sonic.Unmarshal(data, &m)
	}
	if err != nil {
		return nil, fmt.Errorf("decoding values %s: %w", path, err)
	}
	return doctpl.Values(m), nil
}

// plainYAML turns the timestamps yaml.v3 resolves from unquoted dates back
// into the ISO text date inputs produce.
func plainYAML(v any) any {
	switch x := v.(type) {
	case time.Time:
		return x.Format("2006-01-02")
	case map[string]any:
		for k, e := range x {
			x[k] = plainYAML(e)
		}
		return x
	case []any:
		for i, e := range x {
			x[i] = plainYAML(e)
		}
		return x
	default:
		return v
	}
}
