package mcp

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/bytedance/sonic"
	"github.com/mark3labs/mcp-go/mcp"

	"github.com/anixcopiadora/docgen"
	"github.com/anixcopiadora/docgen/brdoc"
	"github.com/anixcopiadora/docgen/doctpl"
	"github.com/anixcopiadora/docgen/export"
	"github.com/anixcopiadora/docgen/extenso"
	"github.com/anixcopiadora/docgen/form"
)

// Render modes accepted by render_document.
const (
	ModeFinal   = "final"
	ModePrint   = "print"
	ModePreview = "preview"
)

// registerTools registers all available MCP tools
func (s *Server) registerTools() {
	s.mcpServer.AddTool(mcp.NewTool(
		"list_templates",
		mcp.WithDescription("List the document templates of the catalogue, in display order"),
	), s.handleListTemplates)

	s.mcpServer.AddTool(mcp.NewTool(
		"describe_template",
		mcp.WithDescription("Describe the tabs and fields of a template. Conditional tabs and fields "+
			"depend on the values passed"),
		mcp.WithString("template",
			mcp.Required(),
			mcp.Description("Template id, as returned by list_templates"),
		),
		mcp.WithObject("values",
			mcp.Description("Current form values, keyed by field name"),
		),
	), s.handleDescribeTemplate)

	s.mcpServer.AddTool(mcp.NewTool(
		"render_document",
		mcp.WithDescription("Generate a PDF from a template and form values. The document is saved "+
			"when output_dir is set, otherwise returned base64 encoded"),
		mcp.WithString("template",
			mcp.Required(),
			mcp.Description("Template id, as returned by list_templates"),
		),
		mcp.WithObject("values",
			mcp.Description("Form values keyed by field name. Lists are arrays, records are arrays of objects"),
		),
		mcp.WithString("mode",
			mcp.Description("final (default), print (opens the print dialog) or preview (watermarked)"),
			mcp.Enum(ModeFinal, ModePrint, ModePreview),
		),
		mcp.WithString("output_dir",
			mcp.Description("Directory to save the PDF in"),
		),
	), s.handleRenderDocument)

	s.mcpServer.AddTool(mcp.NewTool(
		"document_text",
		mcp.WithDescription("Extract the text of a PDF, pages separated by form feeds"),
		mcp.WithString("path",
			mcp.Description("Full path to the PDF file"),
		),
		mcp.WithString("data",
			mcp.Description("Base64 encoded PDF, used when path is empty"),
		),
	), s.handleDocumentText)

	s.mcpServer.AddTool(mcp.NewTool(
		"validate_national_id",
		mcp.WithDescription("Check a CPF or CNPJ, formatted or not, and return its kind and canonical form"),
		mcp.WithString("value",
			mcp.Required(),
			mcp.Description("The number to check"),
		),
	), s.handleValidateNationalID)

	s.mcpServer.AddTool(mcp.NewTool(
		"amount_to_words",
		mcp.WithDescription("Spell a monetary amount in Brazilian Portuguese, e.g. 1500,00 -> mil e quinhentos reais"),
		mcp.WithString("amount",
			mcp.Required(),
			mcp.Description("Amount with decimal comma or point"),
		),
	), s.handleAmountToWords)
}

type templateSummary struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Available   bool   `json:"available"`
}

func (s *Server) handleListTemplates(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	list := s.gen.Registry().List()
	out := make([]templateSummary, len(list))
	for i, t := range list {
		out[i] = templateSummary{ID: t.ID, Title: t.Title, Description: t.Description, Available: t.Available()}
	}
	return jsonResult(out)
}

func (s *Server) handleDescribeTemplate(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id, err := request.RequireString("template")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	tpl, err := s.gen.Template(id)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	values, err := valuesArg(request)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return jsonResult(doctpl.Describe(tpl, values))
}

type renderResult struct {
	Template   string            `json:"template"`
	Title      string            `json:"title"`
	Pages      int               `json:"pages"`
	Size       int               `json:"size"`
	Path       string            `json:"path,omitempty"`
	Data       string            `json:"data,omitempty"`
	Advisories map[string]string `json:"advisories,omitempty"`
}

func (s *Server) handleRenderDocument(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id, err := request.RequireString("template")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	values, err := valuesArg(request)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	args := request.GetArguments()
	mode, _ := args["mode"].(string)
	dir, _ := args["output_dir"].(string)

	var doc *export.Document
	switch mode {
	case "", ModeFinal:
		doc, err = s.gen.Render(ctx, id, values)
	case ModePrint:
		doc, err = s.gen.Print(ctx, id, values)
	case ModePreview:
		doc, err = s.gen.Preview(ctx, id, values)
		if err == nil && doc == nil {
			err = docgen.ErrUnavailable
		}
	default:
		err = fmt.Errorf("unknown mode %q", mode)
	}
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	res := renderResult{
		Template:   doc.Name,
		Title:      doc.Title,
		Size:       doc.Size(),
		Advisories: s.advisories(id, values),
	}
	if res.Pages, err = doc.PageCount(); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	if dir != "" {
		if res.Path, err = doc.Save(dir); err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
	} else {
		res.Data = base64.StdEncoding.EncodeToString(doc.Data)
	}
	return jsonResult(res)
}

// advisories replays values through a form session to collect the field
// warnings a user would have seen. They never block generation.
func (s *Server) advisories(id string, values doctpl.Values) map[string]string {
	tpl, err := s.gen.Template(id)
	if err != nil {
		return nil
	}
	sess := form.NewSession(tpl)
	sess.Load(values)
	errs := sess.Errors()
	if len(errs) == 0 {
		return nil
	}
	return errs
}

func (s *Server) handleDocumentText(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.GetArguments()
	path, _ := args["path"].(string)
	encoded, _ := args["data"].(string)

	var data []byte
	var err error
	switch {
	case path != "":
		data, err = os.ReadFile(path)
	case encoded != "":
		data, err = base64.StdEncoding.DecodeString(encoded)
	default:
		err = errors.New("either path or data is required")
	}
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	text, err := (&export.Document{Data: data}).Text()
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(text), nil
}

type nationalIDResult struct {
	Value     string `json:"value"`
	Kind      string `json:"kind"`
	Valid     bool   `json:"valid"`
	Formatted string `json:"formatted,omitempty"`
}

func (s *Server) handleValidateNationalID(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	value, err := request.RequireString("value")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	res := nationalIDResult{
		Value: value,
		Kind:  brdoc.Classify(value).String(),
		Valid: brdoc.ValidNationalID(value),
	}
	if res.Valid {
		res.Formatted = brdoc.Format(value)
	}
	return jsonResult(res)
}

func (s *Server) handleAmountToWords(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	amount, err := request.RequireString("amount")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	words := extenso.Amount(amount)
	if words == "" {
		return mcp.NewToolResultError(fmt.Sprintf("cannot read %q as an amount", amount)), nil
	}
	return mcp.NewToolResultText(words), nil
}

// valuesArg reads the optional "values" object.
func valuesArg(request mcp.CallToolRequest) (doctpl.Values, error) {
	raw, ok := request.GetArguments()["values"]
	if !ok || raw == nil {
		return doctpl.Values{}, nil
	}
	switch v := raw.(type) {
	case map[string]any:
		return doctpl.Values(v), nil
	case string:
		// Some clients send nested objects as JSON text.
		var m map[string]any
		if err := sonic.UnmarshalString(strings.TrimSpace(v), &m); err != nil {
			return nil, fmt.Errorf("values: %w", err)
		}
		return doctpl.Values(m), nil
	default:
		return nil, fmt.Errorf("values must be an object, got %T", raw)
	}
}

func jsonResult(v any) (*mcp.CallToolResult, error) {
	text, err := sonic.ConfigStd.MarshalIndent(v, "", "  ")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(string(text)), nil
}
