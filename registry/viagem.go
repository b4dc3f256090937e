package registry

import (
	"strings"

	"github.com/anixcopiadora/docgen/doctpl"
	"github.com/anixcopiadora/docgen/layout"
)

// GuardianRoles are the capacities a guardian may sign in.
var GuardianRoles = []string{"mãe", "pai", "tutor(a)", "guardiã(o)"}

func identity(prefix string) string {
	return `cédula de identidade nº {{.Or "` + prefix + `_rg" "__________________"}}, expedida pela {{.Or "` + prefix + `_orgao" "______"}}, na data de {{.Date "` + prefix + `_rg_data" "_____/_____/______"}}, CPF nº {{.Or "` + prefix + `_cpf" "__________________"}}, endereço de domicílio {{.Or "` + prefix + `_endereco" "__________________________________"}}, cidade {{.Or "` + prefix + `_cidade" "__________________"}}, UF {{.Or "` + prefix + `_uf" "__"}}`
}

// phone prints "( DD ) number", the area code being the first two digits.
func phone(name string) string {
	return `telefone de contato ( {{.Prefix "` + name + `" 2 "__"}} ) {{.Rest "` + name + `" 2 "__________________"}}`
}

func roleMarks() string {
	var b strings.Builder
	b.WriteString("na qualidade de ")
	for _, r := range GuardianRoles {
		b.WriteString(`( {{.Mark "resp_qualidade" "` + r + `"}} ) ` + r + "      ")
	}
	return b.String()
}

func viagemMenor() *doctpl.Template {
	unaccompanied := doctpl.Equals("tipo_viagem", "Desacompanhado")
	return &doctpl.Template{
		ID:          "viagem_menor",
		Title:       "Aut. Viagem Menor",
		Icon:        "✈️",
		Description: "Autorização para viagem nacional de crianças e adolescentes.",
		Groups: []doctpl.Group{
			{Tab: "Geral", Fields: []doctpl.Field{
				{Name: "tipo_viagem", Label: "Tipo de Viagem", Kind: doctpl.FieldSelect, Options: []string{"Acompanhado", "Desacompanhado"}},
				{Name: "incluir_autenticacao", Label: "Incluir Autenticação Digital", Kind: doctpl.FieldCheckbox},
				date("validade_doc", "Autorização Válida até"),
			}},
			{Tab: "Responsável", Fields: []doctpl.Field{
				heading("Dados do Responsável"),
				text("resp_nome", "Nome do Responsável"),
				{Name: "resp_qualidade", Label: "Qualidade do Responsável", Kind: doctpl.FieldSelect, Options: GuardianRoles},
				third(text("resp_rg", "RG")),
				third(text("resp_orgao", "Órgão Emissor")),
				third(date("resp_rg_data", "Data de Expedição")),
				half(text("resp_cpf", "CPF")),
				half(text("resp_tel", "Telefone")),
				text("resp_endereco", "Endereço"),
				half(text("resp_cidade", "Cidade")),
				half(text("resp_uf", "UF")),
			}},
			{Tab: "Menor", Fields: []doctpl.Field{
				heading("Dados do Menor"),
				text("menor_nome", "Nome do Menor"),
				half(date("menor_nascimento", "Data de Nascimento")),
				half(text("menor_naturalidade", "Natural de")),
				third(text("menor_rg", "RG")),
				third(text("menor_orgao", "Órgão Emissor")),
				third(date("menor_rg_data", "Data de Expedição")),
				text("menor_cpf", "CPF"),
				text("menor_endereco", "Endereço"),
				half(text("menor_cidade", "Cidade")),
				half(text("menor_uf", "UF")),
			}},
			{Tab: "Acompanhante", Visible: doctpl.Equals("tipo_viagem", "Acompanhado"), Fields: []doctpl.Field{
				heading("Dados do Acompanhante"),
				text("acomp_nome", "Nome do Acompanhante"),
				third(text("acomp_rg", "RG")),
				third(text("acomp_orgao", "Órgão Emissor")),
				third(date("acomp_rg_data", "Data de Expedição")),
				half(text("acomp_cpf", "CPF")),
				half(text("acomp_tel", "Telefone")),
				text("acomp_endereco", "Endereço"),
				half(text("acomp_cidade", "Cidade")),
				half(text("acomp_uf", "UF")),
			}},
			{Tab: "Assinatura", Fields: []doctpl.Field{
				heading("Local e Data da Assinatura"),
				half(text("local_assinatura", "Local da Assinatura")),
				half(date("data_assinatura", "Data da Assinatura")),
			}},
		},
		Font: regular(10),
		Blocks: []doctpl.Block{
			// This form starts 5mm above the usual top margin.
			spacer(-5),
			centered("FORMULÁRIO DE AUTORIZAÇÃO DE VIAGEM NACIONAL", bold(14), 7),
			centered(`(PARA MENOR DE 16 ANOS {{if .Is "tipo_viagem" "Desacompanhado"}}DESACOMPANHADO{{else}}ACOMPANHADO{{end}} – AUTORIZADO POR UM RESPONSÁVEL)`, layout.Font{}, 15),
			line(`Esta Autorização de Viagem é válida até {{.Date "validade_doc" "_____/_____/______"}}.`, layout.Font{}, 10),
			para(`Eu, {{.Or "resp_nome" "__________________________________"}}, `+identity("resp")+`, `+phone("resp_tel")+`, `+roleMarks(), layout.Font{}, 5),
			para("AUTORIZO a circular livremente, dentro do território nacional,", bold(10), 5),
			para(`{{.Or "menor_nome" "__________________________________"}}, nascido(a) em {{.Date "menor_nascimento" "_____/_____/______"}}, natural de {{.Or "menor_naturalidade" "__________________"}}, `+identity("menor")+`,`, layout.Font{}, 5),
			withWhen(para("DESACOMPANHADO(A).", bold(10), 5), unaccompanied),
			withWhen(para("DESDE QUE ACOMPANHADA(O) DE", bold(10), 5), doctpl.Not(unaccompanied)),
			withWhen(para(`{{.Or "acomp_nome" "__________________________________"}}, `+identity("acomp")+`, `+phone("acomp_tel")+`.`, layout.Font{}, 5), doctpl.Not(unaccompanied)),
			spacer(15),
			line(`{{.Or "local_assinatura" "__________________"}}, {{.LongDate "data_assinatura" "___ de ____________ de 20_____"}}.`, layout.Font{}, 25),
			signLine(5),
			centered(`{{.Or "resp_nome" "Assinatura de mãe, ou pai, ou responsável legal"}}`, layout.Font{}, 10),
			centered("(Reconhecer firmas por semelhança ou autenticidade)", regular(9), 0),
			{
				Kind:      doctpl.BlockStamp,
				When:      doctpl.Checked("incluir_autenticacao"),
				Font:      regular(8),
				Text:      "Autenticação Digital: {{.Token}}\nDocumento assinado eletronicamente. A autenticidade pode ser verificada mediante apresentação deste código.",
				Symbology: layout.SymbologyQR,
			},
		},
	}
}

func withWhen(b doctpl.Block, p doctpl.Predicate) doctpl.Block {
	b.When = p
	return b
}
