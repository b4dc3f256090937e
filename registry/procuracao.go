package registry

import (
	"github.com/anixcopiadora/docgen/doctpl"
	"github.com/anixcopiadora/docgen/layout"
)

func outorga(prefix, who string) doctpl.Group {
	return doctpl.Group{Tab: who, Fields: []doctpl.Field{
		text(prefix+"_nome", "Nome do "+who),
		third(text(prefix+"_nacionalidade", "Nacionalidade ("+who+")")),
		third(text(prefix+"_estado_civil", "Estado Civil ("+who+")")),
		third(text(prefix+"_profissao", "Profissão ("+who+")")),
		third(text(prefix+"_rg", "RG ("+who+")")),
		third(text(prefix+"_orgao", "Órgão Emissor ("+who+")")),
		third(text(prefix+"_cpf", "CPF ("+who+")")),
		text(prefix+"_endereco", "Endereço Completo ("+who+")"),
	}}
}

func qualification(prefix string) string {
	const blank = "________________"
	val := func(suffix, fallback string) string {
		return `{{.Or "` + prefix + suffix + `" "` + fallback + `"}}`
	}
	return val("_nome", blank) + ", " + val("_nacionalidade", blank) + ", " +
		val("_estado_civil", blank) + ", " + val("_profissao", blank) +
		", RG nº " + val("_rg", blank) + " - " + val("_orgao", "___") +
		", CPF nº " + val("_cpf", blank) +
		", residente e domiciliado(a) na " + val("_endereco", blank) + "."
}

func procuracao() *doctpl.Template {
	section := func(title, body string) doctpl.Block {
		return doctpl.Block{Kind: doctpl.BlockSection, Title: title, Text: body, TitleGap: 7, After: 5}
	}
	return &doctpl.Template{
		ID:          "procuracao",
		Title:       "Procuração Particular",
		Icon:        "⚖️",
		Description: "Instrumento legal para representação perante terceiros.",
		Groups: []doctpl.Group{
			outorga("outorgante", "Outorgante"),
			outorga("outorgado", "Outorgado"),
			{Tab: "Poderes", Fields: []doctpl.Field{
				{Name: "poderes", Label: "Descrição dos Poderes", Kind: doctpl.FieldTextarea, Placeholder: "Ex: representar perante a instituição X, vender o veículo..."},
				{Name: "validade", Label: "Prazo de Validade", Kind: doctpl.FieldText, Placeholder: "Ex: até o dia 10/01/2025 ou por tempo indeterminado"},
			}},
			{Tab: "Local e Data", Fields: []doctpl.Field{
				half(text("cidade", "Cidade")),
				half(text("estado", "Estado (UF)")),
				date("data", "Data"),
			}},
		},
		Font: regular(12),
		Blocks: []doctpl.Block{
			centered("PROCURAÇÃO PARTICULAR", bold(18), 15),
			section("OUTORGANTE:", qualification("outorgante")),
			section("OUTORGADO:", qualification("outorgado")),
			section("PODERES:", `Pelo presente instrumento particular de procuração, o(a) Outorgante nomeia e constitui o(a) Outorgado(a) como seu(sua) procurador(a), conferindo-lhe poderes especiais para {{.Or "poderes" "________________"}}.`+
				"\n\nPara tal, o(a) outorgado(a) poderá assinar documentos, formulários, termos, receber e dar quitação, solicitar, acompanhar processos, firmar acordos e praticar todos os atos necessários ao fiel cumprimento deste mandato."),
			section("PRAZO DE VALIDADE:", `Esta procuração é válida {{.Or "validade" "por tempo indeterminado"}}.`),
			spacer(10),
			line(placeDate("Cidade"), layout.Font{}, 30),
			signLine(5),
			centered(`{{.Or "outorgante_nome" "Assinatura do Outorgante"}}`, layout.Font{}, 0),
		},
	}
}
