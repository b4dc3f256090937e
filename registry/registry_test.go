package registry

import (
	"errors"
	"reflect"
	"strings"
	"testing"
	"time"
	"unicode/utf8"

	"github.com/anixcopiadora/docgen/doctpl"
	"github.com/anixcopiadora/docgen/layout"
)

var runes = layout.MeasurerFunc(func(s string, _ layout.Font) float64 {
	return float64(utf8.RuneCountInString(s)) * 1.8
})

func render(t *testing.T, id string, v doctpl.Values) *layout.Recorder {
	t.Helper()
	tpl, ok := Default().Find(id)
	if !ok {
		t.Fatalf("template %q not registered", id)
	}
	ops, err := doctpl.Render(tpl, v, doctpl.Options{
		Measurer: runes,
		Now:      time.Date(2024, 3, 2, 12, 0, 0, 0, time.UTC),
		Tokens:   doctpl.FixedToken("DIGITAL-TEST1234-LT8X0Y"),
	})
	if err != nil {
		t.Fatalf("render %s: %v", id, err)
	}
	rec := &layout.Recorder{}
	if _, err := rec.Render(ops); err != nil {
		t.Fatal(err)
	}
	return rec
}

func TestCatalogueOrder(t *testing.T) {
	want := []string{
		"recibo", "recibo_aluguel", "declaracao_residencia", "contrato_locacao",
		"curriculo", "vistoria", "orcamento", "procuracao", "uniao_estavel",
		"viagem_menor", "hipossuficiencia", "rpa",
	}
	var got []string
	for _, tpl := range Default().List() {
		got = append(got, tpl.ID)
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("catalogue = %v, want %v", got, want)
	}
	if Default().Len() != len(want) {
		t.Errorf("Len = %d", Default().Len())
	}
	if _, ok := Default().Find("nope"); ok {
		t.Error("Find(nope) succeeded")
	}
}

func TestFieldNamesUnique(t *testing.T) {
	for _, tpl := range Default().List() {
		seen := map[string]bool{}
		for _, f := range tpl.Fields() {
			if seen[f.Name] {
				t.Errorf("%s: duplicate field %q", tpl.ID, f.Name)
			}
			seen[f.Name] = true
		}
	}
}

func TestNewRejectsDuplicates(t *testing.T) {
	if _, err := New(recibo(), recibo()); err == nil {
		t.Error("duplicate ids accepted")
	}
	if _, err := New(&doctpl.Template{Title: "x"}); err == nil {
		t.Error("empty id accepted")
	}
	bad := &doctpl.Template{ID: "bad", Blocks: []doctpl.Block{line("{{.Get", layout.Font{}, 0)}}
	if _, err := New(bad); err == nil {
		t.Error("broken template body accepted")
	}
}

func TestEveryTemplateRendersEmpty(t *testing.T) {
	for _, tpl := range Default().List() {
		if !tpl.Available() {
			continue
		}
		rec := render(t, tpl.ID, nil)
		if strings.TrimSpace(rec.Text()) == "" {
			t.Errorf("%s: empty document", tpl.ID)
		}
	}
}

func TestRentReceipt(t *testing.T) {
	rec := render(t, "recibo_aluguel", doctpl.Values{
		"locatario_nome": "Maria",
		"valor_aluguel":  "1500,00",
		"data":           "2024-03-02",
		"cidade":         "Campinas",
		"estado":         "SP",
	})
	for _, want := range []string{
		"RECIBO DE ALUGUEL",
		"VALOR: R$ 1500,00",
		"Recebi(emos) de Maria",
		"(mil e quinhentos reais)",
		"Campinas - SP, 2 de março de 2024.",
		"Assinatura do Locador",
	} {
		if !rec.Contains(want) {
			t.Errorf("missing %q in\n%s", want, rec.Text())
		}
	}
}

func TestReceiptPlaceholders(t *testing.T) {
	rec := render(t, "recibo", nil)
	for _, want := range []string{"VALOR: R$ 0,00", "Cidade - UF, ___/___/___", "Assinatura"} {
		if !rec.Contains(want) {
			t.Errorf("missing %q in\n%s", want, rec.Text())
		}
	}
	for _, op := range rec.Ops {
		if _, ok := op.(layout.PlaceImage); ok {
			t.Error("image placed without a logo")
		}
	}
}

func TestLeaseVariants(t *testing.T) {
	rec := render(t, "contrato_locacao", doctpl.Values{
		"imovel_tipo":          "Comercial",
		"finalidade_atividade": "Padaria",
		"tipo_garantia":        "Fiador",
		"dados_fiador":         "João, CPF 1",
	})
	for _, want := range []string{
		"exclusivamente para fins Comerciais. Atividade específica: Padaria.",
		"Dados do Fiador: João, CPF 1.",
	} {
		if !rec.Contains(want) {
			t.Errorf("missing %q", want)
		}
	}

	rec = render(t, "contrato_locacao", doctpl.Values{
		"imovel_tipo":   "Residencial",
		"tipo_garantia": "Caução",
		"valor_caucao":  "3000",
	})
	if !rec.Contains("exclusivamente para fins Residenciais.") {
		t.Error("residential purpose missing")
	}
	if rec.Contains("Atividade específica") {
		t.Error("activity printed for a residential lease")
	}
	if !rec.Contains("Valor: R$ 3000.") {
		t.Error("deposit missing")
	}
}

func TestLeaseAnnex(t *testing.T) {
	plain := render(t, "contrato_locacao", nil)
	if plain.Contains("ANEXO I") {
		t.Error("annex printed while unchecked")
	}

	annex := render(t, "contrato_locacao", doctpl.Values{"incluir_vistoria": true})
	if annex.Pages() != plain.Pages()+1 {
		t.Errorf("pages = %d, want %d", annex.Pages(), plain.Pages()+1)
	}
	for _, item := range InspectionItems {
		if !annex.Contains(item + ":") {
			t.Errorf("default item %q missing", item)
		}
	}

	custom := render(t, "contrato_locacao", doctpl.Values{
		"incluir_vistoria": true,
		"itens_vistoria":   []string{"Garagem"},
	})
	if !custom.Contains("Garagem:") || custom.Contains("Pisos e Rodapés:") {
		t.Error("edited item list not used")
	}
}

func TestTravelStamp(t *testing.T) {
	rec := render(t, "viagem_menor", doctpl.Values{"incluir_autenticacao": true})
	if !rec.Contains("Autenticação Digital: DIGITAL-TEST1234-LT8X0Y") {
		t.Errorf("token missing in\n%s", rec.Text())
	}
	var codes int
	for _, op := range rec.Ops {
		if b, ok := op.(layout.PlaceBarcode); ok {
			codes++
			if b.Payload != "DIGITAL-TEST1234-LT8X0Y" {
				t.Errorf("barcode payload = %q", b.Payload)
			}
		}
	}
	if codes != 1 {
		t.Errorf("barcodes = %d, want 1", codes)
	}

	if render(t, "viagem_menor", nil).Contains("Autenticação Digital") {
		t.Error("stamp printed while unchecked")
	}
}

func TestTravelCompanion(t *testing.T) {
	rec := render(t, "viagem_menor", doctpl.Values{"tipo_viagem": "Acompanhado", "acomp_nome": "Tia Ana"})
	if !rec.Contains("Tia Ana") {
		t.Error("companion missing")
	}
	rec = render(t, "viagem_menor", doctpl.Values{"tipo_viagem": "Desacompanhado", "acomp_nome": "Tia Ana"})
	if rec.Contains("Tia Ana") {
		t.Error("companion printed for an unaccompanied trip")
	}
}

func TestBudgetTotals(t *testing.T) {
	rec := render(t, "orcamento", doctpl.Values{
		"prestador_doc": "123",
		"itens_orcamento": []any{
			map[string]any{"descricao": "Cópias", "quantidade": "100", "valor": "0,25"},
			map[string]any{"descricao": "Encadernação", "quantidade": 2.0, "valor": 7.5},
		},
		"validade": "15 dias",
	})
	for _, want := range []string{
		"CPF/CNPJ: 123",
		"Cópias", "100", "0,25", "25,00",
		"Encadernação", "7,50", "15,00",
		"TOTAL GERAL: R$ 40,00",
		"Validade deste orçamento: 15 dias",
		"Cidade - UF, ___ de ____________ de ______.",
	} {
		if !rec.Contains(want) {
			t.Errorf("missing %q in\n%s", want, rec.Text())
		}
	}

	empty := render(t, "orcamento", nil)
	if !empty.Contains("TOTAL GERAL: R$ 0,00") {
		t.Error("empty budget total")
	}
	if empty.Contains("Validade deste orçamento") {
		t.Error("validity printed without a value")
	}
}

func TestResume(t *testing.T) {
	rec := render(t, "curriculo", doctpl.Values{
		"nome":         "Ana Souza",
		"estado_civil": "Solteira",
		"idade":        "28",
		"cidade":       "Recife",
		"estado":       "PE",
		"experiencias": []any{map[string]any{"empresa": "Anix", "cargo": "Atendente", "periodo": "2020 - 2023"}},
		"idiomas":      []any{map[string]any{"idioma": "Inglês", "nivel": "Avançado"}},
		"habilidades":  []string{"Liderança", "Criatividade"},
	})
	for _, want := range []string{
		"ANA SOUZA",
		"Cargo Pretendido",
		"Solteira, 28 anos",
		"Recife, PE",
		"EXPERIÊNCIA PROFISSIONAL",
		"Anix", "Atendente", "2020 - 2023",
		"• Inglês - Avançado",
		"Liderança, Criatividade",
	} {
		if !rec.Contains(want) {
			t.Errorf("missing %q in\n%s", want, rec.Text())
		}
	}
	for _, absent := range []string{"FORMAÇÃO ACADÊMICA", "RESUMO PROFISSIONAL", "Telefone:"} {
		if rec.Contains(absent) {
			t.Errorf("unexpected %q", absent)
		}
	}
}

func TestSummaries(t *testing.T) {
	s := Summaries("")
	if len(s) != 5 {
		t.Fatalf("len = %d", len(s))
	}
	if !strings.Contains(s[0].Text, "como [Cargo],") {
		t.Errorf("placeholder missing: %q", s[0].Text)
	}
	if s = Summaries("Designer"); !strings.Contains(s[3].Text, "atuar como Designer.") {
		t.Errorf("cargo missing: %q", s[3].Text)
	}
	if strings.Contains(Summaries("Zelador")[2].Text, "Zelador") {
		t.Error("management summary should not mention the position")
	}
}

func TestInspectionUnavailable(t *testing.T) {
	tpl, _ := Default().Find("vistoria")
	if tpl.Available() {
		t.Fatal("vistoria should be unavailable")
	}
	_, err := doctpl.Render(tpl, nil, doctpl.Options{Measurer: runes})
	if !errors.Is(err, doctpl.ErrUnavailable) {
		t.Errorf("err = %v", err)
	}
}

func TestDeterministic(t *testing.T) {
	v := doctpl.Values{"nome": "X", "incluir_autenticacao": true, "tipo_viagem": "Acompanhado"}
	for _, id := range []string{"viagem_menor", "procuracao", "uniao_estavel", "rpa"} {
		a := render(t, id, v)
		b := render(t, id, v)
		if !reflect.DeepEqual(a.Ops, b.Ops) {
			t.Errorf("%s: renders differ", id)
		}
	}
}
