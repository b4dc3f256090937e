package mcp

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/anixcopiadora/docgen"
	"github.com/anixcopiadora/docgen/doctpl"
	"github.com/anixcopiadora/docgen/internal/config"
	"github.com/anixcopiadora/docgen/pdfbackend"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()
	cfg := config.DefaultConfig()
	cfg.OutDir = t.TempDir()

	gen := docgen.New(
		docgen.WithClock(func() time.Time { return time.Date(2024, 3, 2, 12, 0, 0, 0, time.UTC) }),
		docgen.WithTokenSource(doctpl.FixedToken("DIGITAL-TEST")),
		docgen.WithBackendOptions(pdfbackend.WithCompression(false)),
	)
	s, err := NewServer(cfg, gen)
	require.NoError(t, err)
	return s
}

func callTool(args map[string]any) mcp.CallToolRequest {
	return mcp.CallToolRequest{
		Params: mcp.CallToolParams{
			Arguments: args,
		},
	}
}

// extractTextFromResult returns the first text content of a result.
func extractTextFromResult(result *mcp.CallToolResult) string {
	if result == nil {
		return ""
	}
	for _, content := range result.Content {
		if text, ok := content.(mcp.TextContent); ok {
			return text.Text
		}
		if text, ok := content.(*mcp.TextContent); ok {
			return text.Text
		}
	}
	return ""
}

func TestNewServer(t *testing.T) {
	gen := docgen.New()

	_, err := NewServer(nil, gen)
	assert.Error(t, err)

	_, err = NewServer(config.DefaultConfig(), nil)
	assert.Error(t, err)

	s, err := NewServer(config.DefaultConfig(), gen)
	require.NoError(t, err)
	assert.NotNil(t, s.MCPServer())
}

func TestToolsList(t *testing.T) {
	s := newTestServer(t)
	resp := s.MCPServer().HandleMessage(context.Background(),
		json.RawMessage(`{"jsonrpc":"2.0","id":1,"method":"tools/list"}`))
	raw, err := json.Marshal(resp)
	require.NoError(t, err)

	for _, name := range []string{
		"list_templates", "describe_template", "render_document",
		"document_text", "validate_national_id", "amount_to_words",
	} {
		assert.Contains(t, string(raw), `"`+name+`"`)
	}
}

func TestHandleListTemplates(t *testing.T) {
	s := newTestServer(t)
	result, err := s.handleListTemplates(context.Background(), callTool(nil))
	require.NoError(t, err)
	require.False(t, result.IsError)

	var list []templateSummary
	require.NoError(t, json.Unmarshal([]byte(extractTextFromResult(result)), &list))
	require.Len(t, list, s.gen.Registry().Len())
	assert.Equal(t, "recibo", list[0].ID)

	var vistoria templateSummary
	for _, tpl := range list {
		if tpl.ID == "vistoria" {
			vistoria = tpl
		}
	}
	assert.False(t, vistoria.Available)
}

func TestHandleDescribeTemplate(t *testing.T) {
	s := newTestServer(t)

	result, err := s.handleDescribeTemplate(context.Background(), callTool(map[string]any{
		"template": "recibo_aluguel",
	}))
	require.NoError(t, err)
	require.False(t, result.IsError, extractTextFromResult(result))

	var schema doctpl.Schema
	require.NoError(t, json.Unmarshal([]byte(extractTextFromResult(result)), &schema))
	assert.Equal(t, "Recibo de Aluguel", schema.Title)
	require.NotEmpty(t, schema.Groups)
	assert.Equal(t, "locador_nome", schema.Groups[0].Fields[0].Name)

	result, err = s.handleDescribeTemplate(context.Background(), callTool(map[string]any{
		"template": "nao_existe",
	}))
	require.NoError(t, err)
	assert.True(t, result.IsError)

	result, err = s.handleDescribeTemplate(context.Background(), callTool(nil))
	require.NoError(t, err)
	assert.True(t, result.IsError)
}

func TestHandleDescribeTemplateValuesAsText(t *testing.T) {
	s := newTestServer(t)
	result, err := s.handleDescribeTemplate(context.Background(), callTool(map[string]any{
		"template": "recibo_aluguel",
		"values":   `{"locatario_nome": "Maria"}`,
	}))
	require.NoError(t, err)
	assert.False(t, result.IsError)

	result, err = s.handleDescribeTemplate(context.Background(), callTool(map[string]any{
		"template": "recibo_aluguel",
		"values":   42,
	}))
	require.NoError(t, err)
	assert.True(t, result.IsError)
}

func TestHandleRenderDocument(t *testing.T) {
	s := newTestServer(t)
	values := map[string]any{
		"locatario_nome":   "Maria",
		"valor_aluguel":    "1500,00",
		"locador_cpf_cnpj": "111.444.777-36",
	}

	result, err := s.handleRenderDocument(context.Background(), callTool(map[string]any{
		"template": "recibo_aluguel",
		"values":   values,
	}))
	require.NoError(t, err)
	require.False(t, result.IsError, extractTextFromResult(result))

	var res renderResult
	require.NoError(t, json.Unmarshal([]byte(extractTextFromResult(result)), &res))
	assert.Equal(t, "recibo_aluguel", res.Template)
	assert.Equal(t, 1, res.Pages)
	assert.Empty(t, res.Path)
	assert.Equal(t, "CPF/CNPJ inválido", res.Advisories["locador_cpf_cnpj"])

	data, err := base64.StdEncoding.DecodeString(res.Data)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), "%PDF-"))
	assert.Equal(t, res.Size, len(data))
}

func TestHandleRenderDocumentToDir(t *testing.T) {
	s := newTestServer(t)
	dir := t.TempDir()

	result, err := s.handleRenderDocument(context.Background(), callTool(map[string]any{
		"template":   "recibo",
		"mode":       ModePrint,
		"output_dir": dir,
	}))
	require.NoError(t, err)
	require.False(t, result.IsError, extractTextFromResult(result))

	var res renderResult
	require.NoError(t, json.Unmarshal([]byte(extractTextFromResult(result)), &res))
	assert.Equal(t, filepath.Join(dir, "recibo.pdf"), res.Path)
	assert.Empty(t, res.Data)

	data, err := os.ReadFile(res.Path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "/JavaScript")
}

func TestHandleRenderDocumentErrors(t *testing.T) {
	s := newTestServer(t)
	tests := []struct {
		name string
		args map[string]any
	}{
		{"missing template", map[string]any{}},
		{"unknown template", map[string]any{"template": "nao_existe"}},
		{"unavailable template", map[string]any{"template": "vistoria"}},
		{"unavailable preview", map[string]any{"template": "vistoria", "mode": ModePreview}},
		{"bad mode", map[string]any{"template": "recibo", "mode": "draft"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := s.handleRenderDocument(context.Background(), callTool(tt.args))
			require.NoError(t, err)
			assert.True(t, result.IsError)
		})
	}
}

func TestHandleDocumentText(t *testing.T) {
	s := newTestServer(t)
	doc, err := s.gen.Render(context.Background(), "recibo_aluguel", doctpl.Values{"locatario_nome": "Maria"})
	require.NoError(t, err)

	result, err := s.handleDocumentText(context.Background(), callTool(map[string]any{
		"data": base64.StdEncoding.EncodeToString(doc.Data),
	}))
	require.NoError(t, err)
	require.False(t, result.IsError, extractTextFromResult(result))
	assert.Contains(t, extractTextFromResult(result), "RECIBO DE ALUGUEL")

	path, err := doc.Save(t.TempDir())
	require.NoError(t, err)
	result, err = s.handleDocumentText(context.Background(), callTool(map[string]any{"path": path}))
	require.NoError(t, err)
	assert.Contains(t, extractTextFromResult(result), "Maria")

	result, err = s.handleDocumentText(context.Background(), callTool(nil))
	require.NoError(t, err)
	assert.True(t, result.IsError)
}

func TestHandleValidateNationalID(t *testing.T) {
	s := newTestServer(t)
	tests := []struct {
		value     string
		kind      string
		valid     bool
		formatted string
	}{
		{"11144477735", "CPF", true, "111.444.777-35"},
		{"111.444.777-36", "CPF", false, ""},
		{"123", "unknown", false, ""},
	}
	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			result, err := s.handleValidateNationalID(context.Background(), callTool(map[string]any{"value": tt.value}))
			require.NoError(t, err)

			var res nationalIDResult
			require.NoError(t, json.Unmarshal([]byte(extractTextFromResult(result)), &res))
			assert.Equal(t, tt.kind, res.Kind)
			assert.Equal(t, tt.valid, res.Valid)
			assert.Equal(t, tt.formatted, res.Formatted)
		})
	}
}

func TestHandleAmountToWords(t *testing.T) {
	s := newTestServer(t)

	result, err := s.handleAmountToWords(context.Background(), callTool(map[string]any{"amount": "1500,00"}))
	require.NoError(t, err)
	assert.Equal(t, "mil e quinhentos reais", extractTextFromResult(result))

	result, err = s.handleAmountToWords(context.Background(), callTool(map[string]any{"amount": "abc"}))
	require.NoError(t, err)
	assert.True(t, result.IsError)
}

func TestResources(t *testing.T) {
	s := newTestServer(t)

	var req mcp.ReadResourceRequest
	req.Params.URI = templatesURI
	contents, err := s.handleTemplatesResource(context.Background(), req)
	require.NoError(t, err)
	require.Len(t, contents, 1)
	text := contents[0].(mcp.TextResourceContents).Text
	assert.Contains(t, text, "recibo_aluguel\tRecibo de Aluguel\n")
	assert.Contains(t, text, "(em breve)")

	req.Params.URI = templatePrefix + "orcamento"
	contents, err = s.handleTemplateResource(context.Background(), req)
	require.NoError(t, err)
	assert.Contains(t, contents[0].(mcp.TextResourceContents).Text, "id: orcamento")

	req.Params.URI = templatePrefix + "nao_existe"
	_, err = s.handleTemplateResource(context.Background(), req)
	assert.ErrorIs(t, err, docgen.ErrUnknownTemplate)
}
