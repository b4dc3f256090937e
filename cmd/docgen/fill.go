package main

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"net/http"
	"os"
	"slices"
	"strings"

	"github.com/AlecAivazis/survey/v2"
	"github.com/AlecAivazis/survey/v2/terminal"
	"github.com/spf13/pflag"

	"github.com/anixcopiadora/docgen/doctpl"
	"github.com/anixcopiadora/docgen/form"
)

// errAborted is returned when the user interrupts a prompt.
var errAborted = errors.New("aborted")

// Prompter asks the questions of the fill command.
type Prompter interface {
	Input(message, help, def string) (string, error)
	Multiline(message, help, def string) (string, error)
	Select(message string, options []string, def string) (string, error)
	MultiSelect(message string, options, defs []string) ([]string, error)
	Confirm(message string, def bool) (bool, error)
}

type surveyPrompter struct{}

func newSurveyPrompter() Prompter { return surveyPrompter{} }

func (surveyPrompter) Input(message, help, def string) (string, error) {
	var out string
	err := survey.AskOne(&survey.Input{Message: message, Help: help, Default: def}, &out)
	return out, translateSurveyErr(err)
}

func (surveyPrompter) Multiline(message, help, def string) (string, error) {
	var out string
	err := survey.AskOne(&survey.Multiline{Message: message, Help: help, Default: def}, &out)
	return out, translateSurveyErr(err)
}

func (surveyPrompter) Select(message string, options []string, def string) (string, error) {
	var out string
	prompt := &survey.Select{Message: message, Options: options}
	if slices.Contains(options, def) {
		prompt.Default = def
	}
	err := survey.AskOne(prompt, &out)
	return out, translateSurveyErr(err)
}

func (surveyPrompter) MultiSelect(message string, options, defs []string) ([]string, error) {
	var out []string
	prompt := &survey.MultiSelect{Message: message, Options: options, PageSize: 15}
	if len(defs) > 0 {
		prompt.Default = defs
	}
	err := survey.AskOne(prompt, &out)
	return out, translateSurveyErr(err)
}

func (surveyPrompter) Confirm(message string, def bool) (bool, error) {
	var out bool
	err := survey.AskOne(&survey.Confirm{Message: message, Default: def}, &out)
	return out, translateSurveyErr(err)
}

func translateSurveyErr(err error) error {
	if errors.Is(err, terminal.InterruptErr) {
		return errAborted
	}
	return err
}

func runFill(a *app, _ *pflag.FlagSet, args []string) error {
	if len(args) != 1 {
		return errUsage
	}
	tpl, err := a.gen.Template(args[0])
	if err != nil {
		return err
	}
	if !tpl.Available() {
		return errors.New(form.UnavailableNotice)
	}

	sess := form.NewSession(tpl)
	fmt.Fprintf(a.stdout, "%s %s\n%s\n", tpl.Icon, tpl.Title, tpl.Description)
	if err := fill(a, sess); err != nil {
		return err
	}
	if err := a.cfg.EnsureOutDir(); err != nil {
		return err
	}

	doc, err := a.gen.Render(context.Background(), tpl.ID, sess.Values())
	if err != nil {
		return err
	}
	path, err := doc.Save(a.cfg.OutDir)
	if err != nil {
		return err
	}
	fmt.Fprintln(a.stdout, path)
	return nil
}

// fill asks every visible field once. Visibility is re-evaluated after each
// answer, so fields and tabs revealed by an answer are asked in turn and
// hidden ones are skipped.
func fill(a *app, sess *form.Session) error {
	asked := map[string]bool{}
	tab := -1
	for {
		g, f, ok := nextField(sess, asked)
		if !ok {
			return nil
		}
		if g != tab {
			tab = g
			if err := sess.SelectGroup(g); err != nil {
				return err
			}
			if name := sess.Template().Groups[g].Tab; name != "" {
				fmt.Fprintf(a.stdout, "\n== %s ==\n", name)
			}
		}
		asked[f.Name] = true
		if err := ask(a.prompt, sess, f); err != nil {
			return fmt.Errorf("%s: %w", f.Label, err)
		}
		if msg := sess.Advisory(f.Name); msg != "" {
			fmt.Fprintf(a.stderr, "aviso: %s\n", msg)
		}
	}
}

func nextField(sess *form.Session, asked map[string]bool) (int, doctpl.Field, bool) {
	values := sess.Values()
	for _, g := range sess.VisibleGroups() {
		for _, f := range doctpl.VisibleFields(sess.Template().Groups[g], values) {
			if f.Kind == doctpl.FieldHeading || f.Name == "" || asked[f.Name] {
				continue
			}
			return g, f, true
		}
	}
	return 0, doctpl.Field{}, false
}

func ask(p Prompter, sess *form.Session, f doctpl.Field) error {
	current := sess.Values()
	def := current.String(f.Name)
	if def == "" {
		def = f.Default
	}

	switch f.Kind {
	case doctpl.FieldSelect:
		s, err := p.Select(f.Label, f.Options, def)
		if err != nil {
			return err
		}
		sess.Set(f.Name, s)

	case doctpl.FieldCheckbox:
		b, err := p.Confirm(f.Label, current.Bool(f.Name))
		if err != nil {
			return err
		}
		sess.Set(f.Name, b)

	case doctpl.FieldTextarea:
		s, err := p.Multiline(f.Label, f.Placeholder, def)
		if err != nil {
			return err
		}
		sess.Set(f.Name, strings.TrimRight(s, "\n"))

	case doctpl.FieldMultiSelect:
		picked, err := p.MultiSelect(f.Label, f.Options, current.List(f.Name))
		if err != nil {
			return err
		}
		sess.Set(f.Name, picked)

	case doctpl.FieldDynamicList:
		s, err := p.Multiline(f.Label+" (um item por linha)", f.Placeholder, strings.Join(sess.ListItems(f.Name), "\n"))
		if err != nil {
			return err
		}
		var items []string
		for _, line := range strings.Split(s, "\n") {
			if line = strings.TrimSpace(line); line != "" {
				items = append(items, line)
			}
		}
		sess.Set(f.Name, items)

	case doctpl.FieldRecordList:
		return askRecords(p, sess, f)

	case doctpl.FieldFile:
		path, err := p.Input(f.Label+" (caminho do arquivo)", f.Placeholder, "")
		if err != nil || path == "" {
			return err
		}
		data, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		mime := http.DetectContentType(data)
		sess.Set(f.Name, "data:"+mime+";base64,"+base64.StdEncoding.EncodeToString(data))

	default:
		help := f.Placeholder
		if f.Kind == doctpl.FieldDate {
			help = "AAAA-MM-DD"
		}
		s, err := p.Input(f.Label, help, def)
		if err != nil {
			return err
		}
		sess.Set(f.Name, s)
	}
	return nil
}

// askRecords appends records until the user declines another one.
func askRecords(p Prompter, sess *form.Session, f doctpl.Field) error {
	for {
		more, err := p.Confirm(fmt.Sprintf("Adicionar item em %q?", f.Label), len(sess.Records(f.Name)) == 0)
		if err != nil || !more {
			return err
		}
		i, err := sess.AppendRecord(f.Name)
		if err != nil {
			return err
		}
		for _, sub := range f.Fields {
			var value string
			if sub.Kind == doctpl.FieldSelect {
				value, err = p.Select(sub.Label, sub.Options, sub.Default)
			} else {
				value, err = p.Input(sub.Label, sub.Placeholder, sub.Default)
			}
			if err != nil {
				return err
			}
			if err := sess.UpdateRecord(f.Name, i, sub.Name, value); err != nil {
				return err
			}
		}
	}
}
