package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/bytedance/sonic"
	"gopkg.in/yaml.v3"

	"github.com/anixcopiadora/docgen/pageops"
)

// scripted answers prompts by message and records what was asked.
type scripted struct {
	answers  map[string]string
	confirms map[string]bool
	asked    []string
}

func (s *scripted) answer(message, def string) string {
	s.asked = append(s.asked, message)
	if a, ok := s.answers[message]; ok {
		return a
	}
	return def
}

func (s *scripted) Input(message, _, def string) (string, error) {
	return s.answer(message, def), nil
}

func (s *scripted) Multiline(message, _, def string) (string, error) {
	return s.answer(message, def), nil
}

func (s *scripted) Select(message string, options []string, def string) (string, error) {
	if def == "" && len(options) > 0 {
		def = options[0]
	}
	return s.answer(message, def), nil
}

func (s *scripted) MultiSelect(message string, _, defs []string) ([]string, error) {
	a := s.answer(message, strings.Join(defs, ","))
	if a == "" {
		return nil, nil
	}
	return strings.Split(a, ","), nil
}

func (s *scripted) Confirm(message string, _ bool) (bool, error) {
	s.asked = append(s.asked, message)
	b := s.confirms[message]
	delete(s.confirms, message)
	return b, nil
}

func execute(t *testing.T, p Prompter, args ...string) (code int, stdout, stderr string) {
	t.Helper()
	var out, errOut bytes.Buffer
	code = run(args, &out, &errOut, p)
	return code, out.String(), errOut.String()
}

func TestUsage(t *testing.T) {
	code, _, stderr := execute(t, nil)
	if code != exitUsage || !strings.Contains(stderr, "docgen render") {
		t.Errorf("no args: code %d\n%s", code, stderr)
	}

	code, _, _ = execute(t, nil, "--help")
	if code != exitOK {
		t.Errorf("--help: code %d", code)
	}

	code, _, stderr = execute(t, nil, "publish")
	if code != exitUsage || !strings.Contains(stderr, `unknown command "publish"`) {
		t.Errorf("unknown command: code %d\n%s", code, stderr)
	}

	code, _, _ = execute(t, nil, "words")
	if code != exitUsage {
		t.Errorf("missing argument: code %d", code)
	}

	code, _, _ = execute(t, nil, "list", "--format", "xml")
	if code != exitUsage {
		t.Errorf("bad format: code %d", code)
	}
}

func TestList(t *testing.T) {
	code, stdout, _ := execute(t, nil, "list")
	if code != exitOK {
		t.Fatalf("code %d", code)
	}
	lines := strings.Split(strings.TrimSpace(stdout), "\n")
	if len(lines) != 12 || !strings.HasPrefix(lines[0], "recibo ") {
		t.Errorf("list =\n%s", stdout)
	}
	if !strings.Contains(stdout, "em breve") {
		t.Error("unavailable template not marked")
	}

	code, stdout, _ = execute(t, nil, "list", "--format", "json")
	if code != exitOK {
		t.Fatalf("json code %d", code)
	}
	var list []map[string]any
	if err := sonic.UnmarshalString(stdout, &list); err != nil {
		t.Fatal(err)
	}
	if len(list) != 12 || list[1]["id"] != "recibo_aluguel" {
		t.Errorf("json list = %v", list)
	}
}

func TestDescribe(t *testing.T) {
	code, stdout, _ := execute(t, nil, "describe", "viagem_menor")
	if code != exitOK {
		t.Fatalf("code %d", code)
	}
	for _, want := range []string{"[Geral]", "tipo_viagem", "Acompanhado | Desacompanhado"} {
		if !strings.Contains(stdout, want) {
			t.Errorf("describe missing %q\n%s", want, stdout)
		}
	}
	if strings.Contains(stdout, "[Acompanhante]") {
		t.Error("conditional tab listed without values")
	}

	code, stdout, _ = execute(t, nil, "describe", "orcamento", "--format", "yaml")
	if code != exitOK {
		t.Fatalf("yaml code %d", code)
	}
	var schema map[string]any
	if err := yaml.Unmarshal([]byte(stdout), &schema); err != nil {
		t.Fatal(err)
	}
	if schema["id"] != "orcamento" {
		t.Errorf("yaml schema = %v", schema)
	}

	code, _, stderr := execute(t, nil, "describe", "nao_existe")
	if code != exitError || !strings.Contains(stderr, "nao_existe") {
		t.Errorf("unknown template: code %d\n%s", code, stderr)
	}
}

func TestRender(t *testing.T) {
	dir := t.TempDir()
	values := filepath.Join(dir, "valores.yaml")
	err := os.WriteFile(values, []byte(`
locatario_nome: Maria
valor_aluguel: "1500,00"
locador_cpf_cnpj: 111.444.777-36
data: 2024-03-02
`), 0o600)
	if err != nil {
		t.Fatal(err)
	}

	code, stdout, stderr := execute(t, nil, "render", "recibo_aluguel", "--values", values, "--out", dir)
	if code != exitOK {
		t.Fatalf("code %d\n%s", code, stderr)
	}
	path := strings.TrimSpace(stdout)
	if path != filepath.Join(dir, "recibo_aluguel.pdf") {
		t.Errorf("path = %q", path)
	}
	if !strings.Contains(stderr, "CPF/CNPJ inválido") {
		t.Errorf("advisory not reported:\n%s", stderr)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.HasPrefix(data, []byte("%PDF-")) {
		t.Error("not a PDF")
	}
}

func TestRenderMerge(t *testing.T) {
	dir := t.TempDir()
	code, stdout, stderr := execute(t, nil,
		"render", "recibo", "declaracao_residencia",
		"--merge", "pacote", "--page-numbers", "--out", dir)
	if code != exitOK {
		t.Fatalf("code %d\n%s", code, stderr)
	}
	if strings.TrimSpace(stdout) != filepath.Join(dir, "pacote.pdf") {
		t.Errorf("stdout = %q", stdout)
	}
	data, err := os.ReadFile(filepath.Join(dir, "pacote.pdf"))
	if err != nil {
		t.Fatal(err)
	}
	n, err := pageops.PageCount(data)
	if err != nil || n != 2 {
		t.Errorf("pages = %d, %v", n, err)
	}
	if !bytes.Contains(data, []byte("(P\xe1gina 2 de 2)")) {
		t.Error("merged file not numbered as a whole")
	}
}

func TestRenderUnavailable(t *testing.T) {
	code, _, stderr := execute(t, nil, "render", "vistoria", "--out", t.TempDir())
	if code != exitError || !strings.Contains(stderr, "disponível em breve") {
		t.Errorf("code %d\n%s", code, stderr)
	}

	code, _, _ = execute(t, nil, "render", "recibo", "--print", "--preview")
	if code != exitUsage {
		t.Errorf("print and preview together: code %d", code)
	}
}

func TestValidate(t *testing.T) {
	code, stdout, _ := execute(t, nil, "validate", "11144477735", "11.222.333/0001-81")
	if code != exitOK {
		t.Fatalf("code %d\n%s", code, stdout)
	}
	if !strings.Contains(stdout, "111.444.777-35") || strings.Count(stdout, "válido") != 2 {
		t.Errorf("validate =\n%s", stdout)
	}

	code, stdout, _ = execute(t, nil, "validate", "11144477736")
	if code != exitError || !strings.Contains(stdout, "inválido") {
		t.Errorf("invalid: code %d\n%s", code, stdout)
	}
}

func TestWords(t *testing.T) {
	code, stdout, _ := execute(t, nil, "words", "1500,00")
	if code != exitOK || strings.TrimSpace(stdout) != "mil e quinhentos reais" {
		t.Errorf("words = %d %q", code, stdout)
	}

	code, _, _ = execute(t, nil, "words", "abc")
	if code != exitError {
		t.Errorf("bad amount: code %d", code)
	}
}

func TestFillRevealsTabs(t *testing.T) {
	for _, tc := range []struct {
		kind      string
		wantAsked bool
	}{
		{"Acompanhado", true},
		{"Desacompanhado", false},
	} {
		t.Run(tc.kind, func(t *testing.T) {
			dir := t.TempDir()
			p := &scripted{answers: map[string]string{
				"Tipo de Viagem":       tc.kind,
				"Nome do Responsável":  "Ana",
				"Nome do Acompanhante": "Bruno",
			}}
			code, stdout, stderr := execute(t, p, "fill", "viagem_menor", "--out", dir)
			if code != exitOK {
				t.Fatalf("code %d\n%s", code, stderr)
			}
			asked := strings.Join(p.asked, "\n")
			if got := strings.Contains(asked, "Nome do Acompanhante"); got != tc.wantAsked {
				t.Errorf("companion asked = %v\n%s", got, asked)
			}
			if got := strings.Contains(stdout, "== Acompanhante =="); got != tc.wantAsked {
				t.Errorf("companion tab shown = %v", got)
			}
			if _, err := os.Stat(filepath.Join(dir, "viagem_menor.pdf")); err != nil {
				t.Error(err)
			}
		})
	}
}

func TestFillRecords(t *testing.T) {
	dir := t.TempDir()
	p := &scripted{
		answers: map[string]string{
			"Descrição":        "Cópias",
			"Qtd":              "10",
			"Valor Unit. (R$)": "0,50",
		},
		confirms: map[string]bool{`Adicionar item em "Itens"?`: true},
	}

	code, _, stderr := execute(t, p, "fill", "orcamento", "--out", dir)
	if code != exitOK {
		t.Fatalf("code %d\n%s", code, stderr)
	}
	n := 0
	for _, q := range p.asked {
		if strings.HasPrefix(q, "Adicionar item em") {
			n++
		}
	}
	if n != 2 {
		t.Errorf("record prompt asked %d times, want 2", n)
	}
}

func TestFillUnavailable(t *testing.T) {
	code, _, stderr := execute(t, &scripted{}, "fill", "vistoria")
	if code != exitError || !strings.Contains(stderr, "em breve") {
		t.Errorf("code %d\n%s", code, stderr)
	}
}

func TestLoadValues(t *testing.T) {
	dir := t.TempDir()
	jsonFile := filepath.Join(dir, "v.json")
	if err := os.WriteFile(jsonFile, []byte(`{"nome":"Ana","itens":["a","b"]}`), 0o600); err != nil {
		t.Fatal(err)
	}
	v, err := loadValues(jsonFile, nil)
	if err != nil {
		t.Fatal(err)
	}
	if v.String("nome") != "Ana" || len(v.List("itens")) != 2 {
		t.Errorf("json values = %v", v)
	}

	v, err = loadValues("-", strings.NewReader(`{"nome":"Stdin"}`))
	if err != nil || v.String("nome") != "Stdin" {
		t.Errorf("stdin values = %v, %v", v, err)
	}

	yamlFile := filepath.Join(dir, "v.yml")
	if err := os.WriteFile(yamlFile, []byte("data: 2024-03-02\nregistros:\n  - inicio: 2020-01-31\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	v, err = loadValues(yamlFile, nil)
	if err != nil {
		t.Fatal(err)
	}
	if v.String("data") != "2024-03-02" || v.Records("registros")[0].String("inicio") != "2020-01-31" {
		t.Errorf("yaml dates = %v", v)
	}

	if _, err := loadValues(filepath.Join(dir, "missing.json"), nil); err == nil {
		t.Error("missing file accepted")
	}
}
