package form

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/anixcopiadora/docgen/doctpl"
	"github.com/anixcopiadora/docgen/registry"
)

func session(t *testing.T, id string) *Session {
	t.Helper()
	tpl, ok := registry.Default().Find(id)
	if !ok {
		t.Fatalf("no template %q", id)
	}
	return NewSession(tpl)
}

func TestAdvisories(t *testing.T) {
	s := session(t, "recibo_aluguel")
	if got := s.Set("locador_cpf_cnpj", "111.444.777-35"); got != "" {
		t.Errorf("valid CPF flagged: %q", got)
	}
	if got := s.Set("locador_cpf_cnpj", "111.444.777-36"); got != AdvisoryNationalID {
		t.Errorf("invalid CPF advisory = %q", got)
	}
	if s.Errors()["locador_cpf_cnpj"] != AdvisoryNationalID {
		t.Error("advisory not recorded")
	}
	if got := s.Set("locador_cpf_cnpj", ""); got != "" || len(s.Errors()) != 0 {
		t.Errorf("clearing left %v", s.Errors())
	}
	// Advisories never reject the value.
	s.Set("locatario_cpf_cnpj", "123")
	if s.Values().String("locatario_cpf_cnpj") != "123" {
		t.Error("invalid value not stored")
	}

	h := session(t, "hipossuficiencia")
	if got := h.Set("email", "maria@"); got != AdvisoryEmail {
		t.Errorf("email advisory = %q", got)
	}
	if got := h.Set("email", "maria@anix.com.br"); got != "" {
		t.Errorf("valid email flagged: %q", got)
	}
}

func TestBudgetDocIsNotChecked(t *testing.T) {
	s := session(t, "orcamento")
	if got := s.Set("prestador_doc", "123"); got != "" {
		t.Errorf("prestador_doc checked: %q", got)
	}
}

func TestActiveTabResets(t *testing.T) {
	s := session(t, "viagem_menor")
	companion := -1
	for i, g := range s.Template().Groups {
		if g.Tab == "Acompanhante" {
			companion = i
		}
	}
	if companion < 0 {
		t.Fatal("no companion tab")
	}
	if err := s.SelectGroup(companion); !errors.Is(err, ErrHiddenTab) {
		t.Errorf("selecting hidden tab: %v", err)
	}
	s.Set("tipo_viagem", "Acompanhado")
	if err := s.SelectGroup(companion); err != nil {
		t.Fatal(err)
	}
	s.Set("tipo_viagem", "Desacompanhado")
	if s.ActiveGroup() != 0 {
		t.Errorf("active tab = %d after it was hidden", s.ActiveGroup())
	}
	if err := s.SelectGroup(99); !errors.Is(err, ErrIndex) {
		t.Errorf("out of range: %v", err)
	}
}

func TestDynamicList(t *testing.T) {
	s := session(t, "contrato_locacao")
	items := s.ListItems("itens_vistoria")
	if diff := cmp.Diff(registry.InspectionItems, items); diff != "" {
		t.Fatalf("defaults (-want +got):\n%s", diff)
	}
	if err := s.SetListItem("itens_vistoria", 0, "Pintura nova"); err != nil {
		t.Fatal(err)
	}
	s.AppendListItem("itens_vistoria", "")
	if err := s.RemoveListItem("itens_vistoria", 1); err != nil {
		t.Fatal(err)
	}
	got := s.ListItems("itens_vistoria")
	if len(got) != len(registry.InspectionItems) || got[0] != "Pintura nova" || got[len(got)-1] != "" {
		t.Errorf("list = %q", got)
	}
	if registry.InspectionItems[0] != "Pintura (Paredes/Teto)" {
		t.Error("edit leaked into the defaults")
	}
	if err := s.RemoveListItem("itens_vistoria", 50); !errors.Is(err, ErrIndex) {
		t.Errorf("err = %v", err)
	}
}

func TestRecordList(t *testing.T) {
	s := session(t, "orcamento")
	i, err := s.AppendRecord("itens_orcamento")
	if err != nil || i != 0 {
		t.Fatalf("AppendRecord = %d, %v", i, err)
	}
	want := doctpl.Values{"descricao": "", "quantidade": "1", "valor": "0"}
	if diff := cmp.Diff(want, s.Records("itens_orcamento")[0]); diff != "" {
		t.Errorf("new record (-want +got):\n%s", diff)
	}
	if err := s.UpdateRecord("itens_orcamento", 0, "valor", "12,50"); err != nil {
		t.Fatal(err)
	}
	if _, err := s.AppendRecord("itens_orcamento"); err != nil {
		t.Fatal(err)
	}
	if err := s.RemoveRecord("itens_orcamento", 1); err != nil {
		t.Fatal(err)
	}
	recs := s.Records("itens_orcamento")
	if len(recs) != 1 || recs[0].String("valor") != "12,50" {
		t.Errorf("records = %v", recs)
	}
	recs[0]["valor"] = "0"
	if s.Records("itens_orcamento")[0].String("valor") != "12,50" {
		t.Error("Records returned shared state")
	}
	if _, err := s.AppendRecord("validade"); !errors.Is(err, ErrNotAList) {
		t.Errorf("err = %v", err)
	}
	if _, err := s.AppendRecord("nope"); !errors.Is(err, ErrNoField) {
		t.Errorf("err = %v", err)
	}
}

func TestLanguagesAndSkills(t *testing.T) {
	s := session(t, "curriculo")
	s.UpsertRecord("idiomas", "idioma", doctpl.Values{"idioma": "Inglês", "nivel": "Básico"})
	s.UpsertRecord("idiomas", "idioma", doctpl.Values{"idioma": "Espanhol", "nivel": "Fluente"})
	s.UpsertRecord("idiomas", "idioma", doctpl.Values{"idioma": "Inglês", "nivel": "Avançado"})
	recs := s.Records("idiomas")
	if len(recs) != 2 || recs[0].String("nivel") != "Avançado" {
		t.Errorf("languages = %v", recs)
	}
	s.RemoveRecordWhere("idiomas", "idioma", "Inglês")
	if recs := s.Records("idiomas"); len(recs) != 1 || recs[0].String("idioma") != "Espanhol" {
		t.Errorf("after remove = %v", recs)
	}

	if !s.Toggle("habilidades", "Liderança") || !s.Toggle("habilidades", "Criatividade") {
		t.Error("toggle on reported off")
	}
	if s.Toggle("habilidades", "Liderança") {
		t.Error("toggle off reported on")
	}
	if diff := cmp.Diff([]string{"Criatividade"}, s.Values().List("habilidades")); diff != "" {
		t.Error(diff)
	}
}

func TestPatch(t *testing.T) {
	s := session(t, "hipossuficiencia")
	err := s.ApplyPatch([]Operation{
		{Op: "replace", Path: "/nome", Value: "Maria"},
		{Op: "add", Path: "/cpf", Value: "111.444.777-36"},
		{Op: "remove", Path: "/nada"},
	})
	if err != nil {
		t.Fatal(err)
	}
	if s.Values().String("nome") != "Maria" {
		t.Errorf("values = %v", s.Values())
	}
	if s.Advisory("cpf") != AdvisoryNationalID {
		t.Errorf("advisories = %v", s.Errors())
	}
	if err := s.ApplyPatch([]Operation{{Op: "move", From: "/missing", Path: "/x"}}); err == nil {
		t.Error("bad patch accepted")
	}
}

func TestPatchSeesEarlierOperations(t *testing.T) {
	s := session(t, "hipossuficiencia")
	s.Set("nome", "Ana")
	s.Set("cidade", "Recife")

	err := s.ApplyPatch([]Operation{
		{Op: "remove", Path: "/nome"},
		{Op: "replace", Path: "/nome", Value: "Maria"},
		{Op: "add", Path: "/profissao", Value: "Vendedora"},
		{Op: "remove", Path: "/profissao"},
	})
	if err != nil {
		t.Fatal(err)
	}
	got := s.Values()
	if got.String("nome") != "Maria" {
		t.Errorf("nome = %q, want Maria", got.String("nome"))
	}
	if _, ok := got["profissao"]; ok {
		t.Errorf("profissao survived its removal: %v", got)
	}

	before := s.Values()
	err = s.ApplyPatch([]Operation{
		{Op: "replace", Path: "/cidade", Value: "Olinda"},
		{Op: "move", From: "/missing", Path: "/x"},
	})
	if err == nil {
		t.Fatal("bad patch accepted")
	}
	if diff := cmp.Diff(before, s.Values()); diff != "" {
		t.Errorf("failed patch changed values (-before +after):\n%s", diff)
	}
}

func TestJSONRoundTrip(t *testing.T) {
	s := session(t, "curriculo")
	s.Set("nome", "Ana")
	s.Toggle("habilidades", "Resiliência")
	if _, err := s.AppendRecord("formacao"); err != nil {
		t.Fatal(err)
	}
	data, err := s.MarshalJSON()
	if err != nil {
		t.Fatal(err)
	}

	r := session(t, "curriculo")
	if err := r.LoadJSON(data); err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(s.Values(), r.Values()); diff != "" {
		t.Errorf("round trip (-want +got):\n%s", diff)
	}
	if err := r.LoadJSON([]byte("[1,2]")); err == nil {
		t.Error("non-object accepted")
	}
}
