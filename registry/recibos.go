package registry

import (
	"github.com/anixcopiadora/docgen/doctpl"
	"github.com/anixcopiadora/docgen/layout"
)

func recibo() *doctpl.Template {
	return &doctpl.Template{
		ID:          "recibo",
		Title:       "Recibo de Pagamento",
		Icon:        "📄",
		Description: "Gere recibos simples de pagamento com valor por extenso automático.",
		Groups: []doctpl.Group{{Fields: []doctpl.Field{
			{Name: "logo", Label: "Logotipo (Opcional)", Kind: doctpl.FieldFile},
			{Name: "valor", Label: "Valor (R$)", Kind: doctpl.FieldNumber, Placeholder: "Ex: 1000,00"},
			{Name: "pagador", Label: "Nome do Pagador", Kind: doctpl.FieldText, Placeholder: "Quem pagou"},
			{Name: "referente", Label: "Referente a", Kind: doctpl.FieldText, Placeholder: "Ex: Aluguel de Março"},
			{Name: "beneficiario", Label: "Nome do Beneficiário", Kind: doctpl.FieldText, Placeholder: "Quem recebeu"},
			text("cpf_cnpj", "CPF/CNPJ do Beneficiário"),
			half(text("cidade", "Cidade")),
			half(text("estado", "Estado (UF)")),
			date("data", "Data"),
		}}},
		Font: regular(12),
		Blocks: []doctpl.Block{
			// The logo sits in a 120x20 box above the title and pushes the
			// content 30mm down.
			{Kind: doctpl.BlockImage, Source: "logo", X: 45, Y: 10, Width: 120, Height: 20, After: 30},
			centered("RECIBO", regular(22), 20),
			rightAt(190, `VALOR: R$ {{.Or "valor" "0,00"}}`, regular(16), 20),
			{
				Kind: doctpl.BlockParagraph,
				Text: `Recebi(emos) de {{.Or "pagador" "____________________"}}, a importância de R$ {{.Or "valor" "___"}} ({{.Words "valor" "____________________"}}) referente a {{.Or "referente" "____________________"}}.`,
				Min:  30,
			},
			line("Para maior clareza firmo(amos) o presente.", layout.Font{}, 30),
			centered(`{{.Or "cidade" "Cidade"}} - {{.Or "estado" "UF"}}, {{.Date "data" "___/___/___"}}`, layout.Font{}, 10),
			centered("________________________________________________", layout.Font{}, 5),
			centered(`{{.Or "beneficiario" "Assinatura"}}`, layout.Font{}, 5),
			centered(`CPF/CNPJ: {{.Get "cpf_cnpj"}}`, layout.Font{}, 0),
		},
	}
}

func reciboAluguel() *doctpl.Template {
	return &doctpl.Template{
		ID:          "recibo_aluguel",
		Title:       "Recibo de Aluguel",
		Icon:        "🏠",
		Description: "Recibos detalhados para locação de imóveis residenciais ou comerciais.",
		Groups: []doctpl.Group{{Fields: []doctpl.Field{
			text("locador_nome", "Nome do Locador (quem recebe)"),
			text("locador_cpf_cnpj", "CPF/CNPJ do Locador"),
			text("locatario_nome", "Nome do Locatário (quem paga)"),
			text("locatario_cpf_cnpj", "CPF/CNPJ do Locatário"),
			text("endereco_imovel", "Endereço do Imóvel"),
			number("valor_aluguel", "Valor do Aluguel (R$)"),
			{Name: "mes_referencia", Label: "Mês de Referência", Kind: doctpl.FieldText, Placeholder: "Ex: Janeiro de 2024"},
			half(text("cidade", "Cidade")),
			half(text("estado", "Estado (UF)")),
			date("data", "Data do Pagamento"),
		}}},
		Font: regular(12),
		Blocks: []doctpl.Block{
			centered("RECIBO DE ALUGUEL", bold(22), 20),
			rightAt(190, `VALOR: R$ {{.Or "valor_aluguel" "0,00"}}`, bold(16), 20),
			para(`Recebi(emos) de {{.Or "locatario_nome" "____________________"}} (CPF/CNPJ nº {{.Or "locatario_cpf_cnpj" "____________________"}}), a importância de R$ {{.Or "valor_aluguel" "___"}} ({{.Words "valor_aluguel" "____________________"}}), referente ao pagamento do aluguel do imóvel situado no endereço {{.Or "endereco_imovel" "__________________________________"}}, correspondente ao mês de {{.Or "mes_referencia" "____________________"}}.`, layout.Font{}, 15),
			line("Por ser a expressão da verdade, firmo(amos) o presente.", layout.Font{}, 20),
			centered(placeDate("Cidade"), layout.Font{}, 30),
			signLine(5),
			centered(`{{.Or "locador_nome" "Assinatura do Locador"}}`, layout.Font{}, 5),
			centered(`CPF/CNPJ: {{.Or "locador_cpf_cnpj" "____________________"}}`, layout.Font{}, 0),
		},
	}
}

// net is the RPA net amount, gross minus both withholdings.
const net = `{{$net := sub (.Number "valor_bruto") (.Number "desconto_inss") (.Number "desconto_irrf")}}`

func rpa() *doctpl.Template {
	return &doctpl.Template{
		ID:          "rpa",
		Title:       "Recibo de Pagamento de Autônomo (RPA)",
		Icon:        "💼",
		Description: "Recibo oficial para autônomos com cálculo de impostos.",
		Groups: []doctpl.Group{
			{Tab: "Contratante", Fields: []doctpl.Field{
				text("contratante_nome", "Nome/Razão Social do Contratante"),
				text("contratante_cnpj_cpf", "CNPJ/CPF do Contratante"),
			}},
			{Tab: "Contratado", Fields: []doctpl.Field{
				text("contratado_nome", "Nome do Contratado (Autônomo)"),
				text("contratado_cpf", "CPF do Contratado"),
				text("contratado_inss", "Nº Inscrição INSS/PIS do Contratado"),
			}},
			{Tab: "Valores e Serviço", Fields: []doctpl.Field{
				{Name: "servico_descricao", Label: "Descrição dos Serviços Prestados", Kind: doctpl.FieldTextarea},
				third(number("valor_bruto", "Valor Bruto (R$)")),
				third(number("desconto_inss", "Desconto INSS (R$)")),
				third(number("desconto_irrf", "Desconto IRRF (R$)")),
			}},
			{Tab: "Local e Data", Fields: []doctpl.Field{
				half(text("cidade", "Cidade")),
				half(text("estado", "Estado (UF)")),
				date("data", "Data do Pagamento"),
			}},
		},
		Font: regular(11),
		Blocks: []doctpl.Block{
			centered("RECIBO DE PAGAMENTO DE AUTÔNOMO (RPA)", bold(18), 15),
			para(net+`Recebi de {{.Or "contratante_nome" "____________________"}} (CNPJ/CPF nº {{.Or "contratante_cnpj_cpf" "____________________"}}), a importância líquida de R$ {{money $net}} ({{words $net "____________________"}}), referente aos serviços de {{.Or "servico_descricao" "____________________"}} prestados nesta data.`, layout.Font{}, 15),
			line("DEMONSTRATIVO DE VALORES", bold(11), 7),
			{
				Kind: doctpl.BlockLedger,
				Rows: []doctpl.LedgerRow{
					{Label: "(+) Valor Bruto dos Serviços:", Value: `R$ {{.Or "valor_bruto" "0,00"}}`},
					{Label: "(-) Desconto INSS:", Value: `R$ {{.Or "desconto_inss" "0,00"}}`},
					{Label: "(-) Desconto IRRF:", Value: `R$ {{.Or "desconto_irrf" "0,00"}}`},
					{Label: "(=) Valor Líquido a Receber:", Value: net + `R$ {{money $net}}`, Bold: true},
				},
				After: 10,
			},
			line("Declaro ainda que sou responsável pelo recolhimento dos impostos devidos.", layout.Font{}, 15),
			centered(placeDate("Cidade"), layout.Font{}, 25),
			signLine(5),
			centered(`{{.Or "contratado_nome" "Assinatura do Contratado (Autônomo)"}}`, layout.Font{}, 5),
			centered(`CPF: {{.Or "contratado_cpf" "____________________"}}`, layout.Font{}, 5),
			centered(`INSS/PIS: {{.Or "contratado_inss" "____________________"}}`, layout.Font{}, 0),
		},
	}
}
