package registry

import (
	"github.com/anixcopiadora/docgen/doctpl"
	"github.com/anixcopiadora/docgen/layout"
)

// InspectionItems are the rooms and fixtures listed in the inspection annex
// when the user has not edited the list.
var InspectionItems = []string{
	"Pintura (Paredes/Teto)",
	"Pisos e Rodapés",
	"Portas, Fechaduras e Chaves",
	"Janelas e Vidros",
	"Instalações Elétricas",
	"Instalações Hidráulicas",
	"Louças Sanitárias e Pias",
	"Móveis e Armários",
}

func party(prefix, who string) []doctpl.Field {
	return []doctpl.Field{
		heading("Dados do " + who),
		text(prefix+"_nome", "Nome Completo ("+who+")"),
		half(text(prefix+"_cpf_cnpj", "CPF/CNPJ")),
		half(text(prefix+"_rg", "RG/Inscr. Est.")),
		half(text(prefix+"_estado_civil", "Estado Civil")),
		half(text(prefix+"_profissao", "Profissão")),
		text(prefix+"_endereco", "Endereço Completo"),
		text(prefix+"_contato", "Telefone/E-mail"),
	}
}

func partyBlock(label, prefix string) doctpl.Block {
	val := func(suffix, blank string) string {
		return `{{.Or "` + prefix + suffix + `" "` + blank + `"}}`
	}
	return doctpl.Block{
		Kind:  doctpl.BlockSection,
		Title: label,
		Text: "Nome completo: " + val("_nome", "____________________________________________") +
			", CPF/CNPJ: " + val("_cpf_cnpj", "____________________") +
			", RG/Inscrição Estadual: " + val("_rg", "____________________") +
			", Estado civil: " + val("_estado_civil", "____________________") +
			", Profissão: " + val("_profissao", "____________________") +
			", Endereço completo: " + val("_endereco", "_________________________________________________") +
			", Telefone/E-mail: " + val("_contato", "____________________") + ".",
		After: 5,
	}
}

func clause(title, body string) doctpl.Block {
	return doctpl.Block{Kind: doctpl.BlockClause, Title: title, Text: body, After: 5}
}

func contratoLocacao() *doctpl.Template {
	twoSigners := func(left, right string) doctpl.Block {
		return doctpl.Block{
			Kind: doctpl.BlockSignature,
			Slots: []doctpl.Slot{
				{X: 20, Label: left},
				{X: 110, Label: right},
			},
		}
	}

	return &doctpl.Template{
		ID:          "contrato_locacao",
		Title:       "Contrato de Locação",
		Icon:        "📝",
		Description: "Contrato completo (Residencial ou Comercial) com cláusulas detalhadas.",
		Groups: []doctpl.Group{
			{Tab: "Partes", Fields: append(party("locador", "Locador"), party("locatario", "Locatário")...)},
			{Tab: "Imóvel e Prazo", Fields: []doctpl.Field{
				text("endereco_imovel", "Endereço do Imóvel"),
				{Name: "imovel_tipo", Label: "Tipo de Locação", Kind: doctpl.FieldSelect, Options: []string{"Residencial", "Comercial"}},
				{Name: "imovel_descricao", Label: "Descrição Detalhada", Kind: doctpl.FieldTextarea, Placeholder: "Ex: Casa com 2 quartos, sala, cozinha..."},
				{Name: "finalidade_atividade", Label: "Atividade Comercial (se aplicável)", Kind: doctpl.FieldText, Visible: doctpl.Equals("imovel_tipo", "Comercial")},
				heading("Prazo da Locação"),
				third(text("prazo_duracao", "Prazo (ex: 12 meses)")),
				third(date("data_inicio", "Data Início")),
				third(date("data_termino", "Data Término")),
			}},
			{Tab: "Valores", Fields: []doctpl.Field{
				half(number("valor_aluguel", "Valor do Aluguel (R$)")),
				half(number("dia_vencimento", "Dia do Vencimento")),
				{Name: "meio_pagamento", Label: "Meio de Pagamento", Kind: doctpl.FieldSelect, Options: []string{"Transferência", "Pix", "Boleto", "Dinheiro", "Outro"}},
				{Name: "indice_reajuste", Label: "Índice de Reajuste", Kind: doctpl.FieldText, Default: "IGPM"},
				heading("Multas e Juros"),
				{Name: "multa_rescisao", Label: "Multa Rescisão (meses)", Kind: doctpl.FieldNumber, Default: "3", Width: doctpl.WidthThird},
				{Name: "multa_atraso", Label: "Multa Atraso (%)", Kind: doctpl.FieldNumber, Default: "10", Width: doctpl.WidthThird},
				{Name: "juros_mora", Label: "Juros Mora (% ao mês)", Kind: doctpl.FieldNumber, Default: "1", Width: doctpl.WidthThird},
			}},
			{Tab: "Garantia", Fields: []doctpl.Field{
				{Name: "tipo_garantia", Label: "Tipo de Garantia", Kind: doctpl.FieldSelect, Options: []string{"Caução", "Fiador", "Seguro Fiança", "Título de Capitalização", "Sem Garantia"}},
				{Name: "valor_caucao", Label: "Valor da Caução (R$)", Kind: doctpl.FieldNumber, Visible: doctpl.Equals("tipo_garantia", "Caução")},
				{Name: "dados_fiador", Label: "Dados do Fiador", Kind: doctpl.FieldTextarea, Placeholder: "Nome, CPF, Endereço...", Visible: doctpl.Equals("tipo_garantia", "Fiador")},
			}},
			{Tab: "Finalização", Fields: []doctpl.Field{
				half(text("cidade", "Cidade")),
				half(date("data_assinatura", "Data da Assinatura")),
				half(text("testemunha1_nome", "Nome Testemunha 1")),
				half(text("testemunha1_cpf", "CPF Testemunha 1")),
				half(text("testemunha2_nome", "Nome Testemunha 2")),
				half(text("testemunha2_cpf", "CPF Testemunha 2")),
				{Name: "incluir_vistoria", Label: "Incluir Termo de Vistoria Anexo", Kind: doctpl.FieldCheckbox},
				{Name: "itens_vistoria", Label: "Itens da Vistoria", Kind: doctpl.FieldDynamicList, Visible: doctpl.Checked("incluir_vistoria"), Defaults: InspectionItems},
			}},
		},
		Font: regular(10),
		Blocks: []doctpl.Block{
			centered("CONTRATO DE LOCAÇÃO", bold(14), 7),
			centered(`({{.Upper "imovel_tipo" "RESIDENCIAL OU COMERCIAL"}})`, bold(12), 15),
			line("Pelo presente instrumento particular de contrato de locação, de um lado:", layout.Font{}, 10),
			partyBlock("LOCADOR", "locador"),
			partyBlock("LOCATÁRIO", "locatario"),
			para("As partes acima identificadas têm entre si justo e contratado o presente contrato de locação, que se regerá pelas cláusulas e condições seguintes e pela legislação aplicável.", layout.Font{}, 5),
			rule(10),

			clause("CLÁUSULA 1 — DO IMÓVEL",
				`O LOCADOR dá em locação ao LOCATÁRIO o imóvel situado à: {{.Or "endereco_imovel" "____________________"}}. Tipo: {{.Or "imovel_tipo" "__________"}}. Descrição detalhada: {{.Or "imovel_descricao" "____________________"}}.`),
			clause("CLÁUSULA 2 — DA FINALIDADE",
				`O imóvel será utilizado exclusivamente para fins {{if .Is "imovel_tipo" "Comercial"}}Comerciais{{else}}Residenciais{{end}}.`+
					`{{if and (.Is "imovel_tipo" "Comercial") (.Has "finalidade_atividade")}} Atividade específica: {{.Get "finalidade_atividade"}}.{{end}}`),
			clause("CLÁUSULA 3 — DO PRAZO",
				`O prazo da locação será de {{.Or "prazo_duracao" "___"}} meses/anos, iniciando em {{.Date "data_inicio" "___/___/____"}} e terminando em {{.Date "data_termino" "___/___/____"}}.`),
			clause("CLÁUSULA 4 — DO VALOR DO ALUGUEL",
				`O aluguel mensal será de R$ {{.Or "valor_aluguel" "______"}}{{with .Words "valor_aluguel" ""}} ({{.}}){{end}}, a ser pago até o dia {{.Or "dia_vencimento" "___"}} de cada mês, por meio de: {{.Or "meio_pagamento" "__________"}}.`),
			clause("CLÁUSULA 5 — DO REAJUSTE",
				`O aluguel será reajustado anualmente pelo índice legal vigente ou outro índice acordado: {{.Or "indice_reajuste" "IGPM"}}.`),
			clause("CLÁUSULA 6 — DOS ENCARGOS",
				"Serão de responsabilidade do LOCATÁRIO:\n• IPTU\n• Taxas de condomínio\n• Consumo de água, luz, gás e demais serviços\n• Taxas ordinárias"),
			clause("CLÁUSULA 7 — DA GARANTIA LOCATÍCIA",
				`Tipo de garantia: {{.Or "tipo_garantia" "__________"}}.`+
					`{{if .Is "tipo_garantia" "Caução"}} Valor: R$ {{.Or "valor_caucao" "______"}}.`+
					`{{else if .Is "tipo_garantia" "Fiador"}} Dados do Fiador: {{.Or "dados_fiador" "____________________"}}.{{end}}`),
			clause("CLÁUSULA 8 — DAS OBRIGAÇÕES DO LOCATÁRIO",
				"• Pagar pontualmente aluguel e encargos\n• Conservar o imóvel\n• Não realizar alterações sem autorização\n• Permitir vistoria mediante aviso prévio\n• Restituir o imóvel nas mesmas condições"),
			clause("CLÁUSULA 9 — DAS OBRIGAÇÕES DO LOCADOR",
				"• Entregar o imóvel em condições de uso\n• Garantir o uso pacífico\n• Realizar reparos estruturais necessários"),
			clause("CLÁUSULA 10 — DAS BENFEITORIAS",
				"Benfeitorias somente com autorização por escrito do LOCADOR, sem direito a retenção ou indenização salvo acordo expresso."),
			clause("CLÁUSULA 11 — DA RESCISÃO",
				`Em caso de rescisão antecipada pelo LOCATÁRIO, poderá ser aplicada multa proporcional equivalente a {{.Or "multa_rescisao" "___"}} meses de aluguel.`),
			clause("CLÁUSULA 12 — DA MULTA POR ATRASO",
				`O atraso no pagamento implicará multa de {{.Or "multa_atraso" "__"}}%, juros de {{.Or "juros_mora" "__"}}% ao mês e correção monetária.`),
			clause("CLÁUSULA 13 — DA VISTORIA",
				"Será realizado laudo de vistoria inicial e final, integrando este contrato."),
			clause("CLÁUSULA 14 — DA SUBLOCAÇÃO",
				"É vedada a sublocação ou cessão sem autorização expressa do LOCADOR."),
			clause("CLÁUSULA 15 — DO FORO",
				"Fica eleito o foro da comarca do imóvel para dirimir quaisquer controvérsias."),

			rule(10),
			line("DECLARAÇÕES FINAIS", bold(10), 5),
			line("As partes declaram que leram e concordam com todas as cláusulas.", layout.Font{}, 15),
			line(`{{.Or "cidade" "Local"}}, {{.LongDate "data_assinatura" "___ de ____________ de ______"}}.`, layout.Font{}, 20),

			{Kind: doctpl.BlockEnsure, Limit: 240, Top: 40},
			withAfter(twoSigners(`{{.Or "locador_nome" "LOCADOR"}}`, `{{.Or "locatario_nome" "LOCATÁRIO"}}`), 25),
			{
				Kind: doctpl.BlockSignature,
				Slots: []doctpl.Slot{
					{X: 20, Label: `Testemunha 1: {{.Get "testemunha1_nome"}}`, Note: `{{with .Get "testemunha1_cpf"}}CPF: {{.}}{{end}}`},
					{X: 110, Label: `Testemunha 2: {{.Get "testemunha2_nome"}}`, Note: `{{with .Get "testemunha2_cpf"}}CPF: {{.}}{{end}}`},
				},
			},

			{
				Kind: doctpl.BlockGroup,
				When: doctpl.Checked("incluir_vistoria"),
				Blocks: []doctpl.Block{
					{Kind: doctpl.BlockPageBreak},
					centered("ANEXO I - TERMO DE VISTORIA DE IMÓVEL", bold(14), 15),
					{
						Kind: doctpl.BlockParagraph,
						Text: `Este termo é parte integrante do Contrato de Locação do imóvel situado à {{.Or "endereco_imovel" "____________________"}}, firmado entre as partes abaixo assinadas.`,
						Min:  15,
					},
					line("ESTADO DE CONSERVAÇÃO DOS ITENS:", bold(10), 10),
					{
						Kind:     doctpl.BlockChecklist,
						Font:     regular(9),
						Source:   "itens_vistoria",
						Defaults: InspectionItems,
						Item:     `{{.Get "item"}}:`,
						Aside:    "(__) Bom  (__) Regular  (__) Ruim",
						AsideX:   90,
						Note:     "Obs: ______________________________________________________________________",
						Pitch:    15,
						After:    10,
					},
					{
						Kind: doctpl.BlockParagraph,
						Text: "O LOCATÁRIO declara ter vistoriado o imóvel e conferido os itens acima, concordando com o estado de conservação descrito.",
						Min:  20,
					},
					twoSigners("LOCADOR", "LOCATÁRIO"),
				},
			},
		},
	}
}

func withAfter(b doctpl.Block, after float64) doctpl.Block {
	b.After = after
	return b
}

// vistoria is listed in the catalogue but has no content yet.
func vistoria() *doctpl.Template {
	return &doctpl.Template{
		ID:          "vistoria",
		Title:       "Termo de Vistoria",
		Icon:        "🔍",
		Description: "Registre o estado de conservação de um imóvel. (Em Breve)",
	}
}
