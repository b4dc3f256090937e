package registry

import (
	"github.com/anixcopiadora/docgen/doctpl"
	"github.com/anixcopiadora/docgen/layout"
)

func declaracaoResidencia() *doctpl.Template {
	return &doctpl.Template{
		ID:          "declaracao_residencia",
		Title:       "Declaração de Residência",
		Icon:        "📍",
		Description: "Documento para comprovação de endereço residencial.",
		Groups: []doctpl.Group{{Fields: []doctpl.Field{
			text("nome", "Seu Nome Completo"),
			half(text("nacionalidade", "Nacionalidade")),
			half(text("estado_civil", "Estado Civil")),
			half(text("rg", "RG")),
			half(text("cpf", "CPF")),
			text("endereco", "Endereço Completo"),
			half(text("cidade", "Cidade")),
			half(text("estado", "Estado (UF)")),
			date("data", "Data"),
		}}},
		Font: regular(12),
		Blocks: []doctpl.Block{
			centered("DECLARAÇÃO DE RESIDÊNCIA", regular(18), 30),
			{
				Kind: doctpl.BlockParagraph,
				Text: `Eu, {{.Or "nome" "________________"}}, {{.Or "nacionalidade" "brasileiro(a)"}}, {{.Or "estado_civil" "solteiro(a)"}}, portador(a) do RG nº {{.Or "rg" "___"}} e inscrito(a) no CPF sob o nº {{.Or "cpf" "___"}}, DECLARO para os devidos fins de comprovação de residência, que sou residente e domiciliado(a) na {{.Or "endereco" "________________"}}.`,
				Min:  40,
			},
			line("Por ser verdade, firmo o presente.", layout.Font{}, 20),
			line(`{{.Or "cidade" "Cidade"}} - {{.Or "estado" "UF"}}, {{.Date "data" "___/___/___"}}`, layout.Font{}, 30),
			centered("________________________________________________", layout.Font{}, 5),
			centered("Assinatura do Declarante", layout.Font{}, 0),
		},
	}
}

func declarante(n string) doctpl.Group {
	ord := n + "º"
	return doctpl.Group{Tab: ord + " Declarante", Fields: []doctpl.Field{
		text("nome"+n, "Nome do "+ord+" Declarante"),
		third(text("nacionalidade"+n, "Nacionalidade")),
		third(text("estado_civil"+n, "Estado Civil")),
		third(text("profissao"+n, "Profissão")),
		third(text("rg"+n, "RG")),
		third(text("orgao"+n, "Órgão Emissor")),
		third(text("cpf"+n, "CPF")),
	}}
}

func declaranteText(n string) string {
	return `{{.Or "nome` + n + `" "________________"}}, {{.Or "nacionalidade` + n + `" "_______"}}, {{.Or "estado_civil` + n + `" "_______"}}, {{.Or "profissao` + n + `" "_______"}}, portador(a) do RG nº {{.Or "rg` + n + `" "_______"}} {{with .Get "orgao` + n + `"}}- {{.}}{{end}} e inscrito(a) no CPF sob o nº {{.Or "cpf` + n + `" "_______"}};`
}

func uniaoEstavel() *doctpl.Template {
	pair := func(left, right string, after float64, align layout.Align) doctpl.Block {
		return doctpl.Block{
			Kind:   doctpl.BlockSignature,
			Font:   regular(10),
			Stroke: 0.2,
			Slots: []doctpl.Slot{
				{X: 20, Width: 75, Label: left, Align: align},
				{X: 115, Width: 75, Label: right, Align: align},
			},
			After: after,
		}
	}
	return &doctpl.Template{
		ID:          "uniao_estavel",
		Title:       "Declaração de União Estável",
		Icon:        "💍",
		Description: "Formalize a convivência pública, contínua e duradoura.",
		Groups: []doctpl.Group{
			declarante("1"),
			declarante("2"),
			{Tab: "Convivência", Fields: []doctpl.Field{
				text("endereco", "Endereço Completo de Residência"),
				date("data_inicio", "Data de Início da Convivência"),
			}},
			{Tab: "Local e Data", Fields: []doctpl.Field{
				half(text("cidade", "Cidade")),
				half(text("estado", "Estado (UF)")),
				date("data", "Data da Assinatura"),
			}},
		},
		Font: regular(12),
		Blocks: []doctpl.Block{
			centered("DECLARAÇÃO DE UNIÃO ESTÁVEL", bold(18), 20),
			para("Nós, abaixo assinados:\n\n"+
				declaranteText("1")+"\n\n"+
				"E\n\n"+
				declaranteText("2")+"\n\n"+
				`Ambos residentes e domiciliados na {{.Or "endereco" "________________________________"}}.`+"\n\n"+
				`DECLARAMOS, sob as penas da lei, para os devidos fins de direito e prova junto a quem interessar possa, que convivemos em UNIÃO ESTÁVEL desde {{.Date "data_inicio" "___/___/____"}}, de forma pública, contínua e duradoura, estabelecida com o objetivo de constituição de família, nos termos do artigo 1.723 do Código Civil Brasileiro.`+"\n\n"+
				"Por ser a expressão da verdade, firmamos a presente declaração.", layout.Font{}, 15),
			line(placeDate("Cidade"), layout.Font{}, 30),
			pair(`{{.Or "nome1" "1º Declarante"}}`, `{{.Or "nome2" "2º Declarante"}}`, 35, layout.AlignCenter),
			line("Testemunhas:", layout.Font{}, 20),
			pair("CPF:", "CPF:", 0, layout.AlignLeft),
		},
	}
}

func hipossuficiencia() *doctpl.Template {
	return &doctpl.Template{
		ID:          "hipossuficiencia",
		Title:       "Declaração de Hipossuficiência",
		Icon:        "🤝",
		Description: "Atestado de pobreza para gratuidade de justiça.",
		Groups: []doctpl.Group{{Fields: []doctpl.Field{
			text("nome", "Nome Completo"),
			third(text("documento_numero", "Nº RG/Passaporte")),
			third(text("orgao_expedidor", "Órgão Expedidor")),
			third(date("data_expedicao", "Data de Expedição")),
			half(date("validade_documento", "Validade do Documento")),
			half(text("cpf", "CPF")),
			half(text("pais", "País de Residência")),
			half(text("telefone", "Telefone")),
			{Name: "email", Label: "E-mail", Kind: doctpl.FieldEmail, Check: doctpl.CheckEmail},
			text("endereco", "Endereço Completo"),
			half(text("cidade", "Cidade")),
			half(text("estado", "Estado (UF)")),
			date("data", "Data da Assinatura"),
		}}},
		Font: regular(12),
		Blocks: []doctpl.Block{
			centered("DECLARAÇÃO DE HIPOSSUFICIÊNCIA", bold(18), 20),
			para(`Eu, {{.Or "nome" "__________________________________"}}, portador da carteira de identidade/passaporte nº {{.Or "documento_numero" "_______"}}, expedido por (pelo) {{.Or "orgao_expedidor" "_______"}}, em {{.Date "data_expedicao" "___/___/____"}}, com validade até {{.Date "validade_documento" "___/___/____"}}, CPF nº {{.Or "cpf" "______________"}}, residente em (na/no/nos) {{.Or "pais" "______________"}} no seguinte endereço: {{.Or "endereco" "__________________________________"}}, telefone {{.Or "telefone" "________"}}, e-mail {{.Or "email" "______________"}} DECLARO para fins de prova junto à Defensoria Pública, que sou carente de recursos, não dispondo de condições econômicas para custear honorários de advogado particular no Brasil e tampouco arcar com as custas e despesas de processos judiciais sem sacrifício do meu sustento e de minha família. Por ser a expressão da verdade, assumindo inteira responsabilidade pelas declarações acima e sob as penas da lei, assino a presente declaração para que produza seus efeitos legais.`, layout.Font{}, 20),
			line(placeDate("Local"), layout.Font{}, 20),
			signLine(5),
			centered(`{{.Or "nome" "Assinatura"}}`, layout.Font{}, 0),
		},
	}
}
