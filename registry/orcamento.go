package registry

import (
	"github.com/anixcopiadora/docgen/doctpl"
	"github.com/anixcopiadora/docgen/layout"
)

func orcamento() *doctpl.Template {
	party := func(heading string, lines ...string) []doctpl.Block {
		bs := []doctpl.Block{line(heading, bold(10), 5)}
		for i, l := range lines {
			after := 5.0
			if i == len(lines)-1 {
				after = 15
			}
			bs = append(bs, line(l, layout.Font{}, after))
		}
		return bs
	}
	right := func(bs []doctpl.Block) []doctpl.Block {
		for i := range bs {
			bs[i].X = 115
		}
		return bs
	}
	return &doctpl.Template{
		ID:          "orcamento",
		Title:       "Orçamento de Serviços",
		Icon:        "💰",
		Description: "Crie orçamentos com lista de itens e cálculo automático de totais.",
		Custom:      true,
		Groups: []doctpl.Group{
			{Tab: "Dados do Prestador e Cliente", Fields: []doctpl.Field{
				half(text("prestador_nome", "Nome do Prestador / Empresa")),
				half(text("prestador_doc", "CPF/CNPJ do Prestador")),
				text("prestador_contato", "Contato do Prestador (Telefone/E-mail)"),
				half(text("cliente_nome", "Nome do Cliente")),
				half(text("cliente_doc", "CPF/CNPJ do Cliente")),
				text("cliente_endereco", "Endereço do Cliente"),
			}},
			{Tab: "Itens do Orçamento", Fields: []doctpl.Field{
				{Name: "itens_orcamento", Label: "Itens", Kind: doctpl.FieldRecordList, Fields: []doctpl.Field{
					text("descricao", "Descrição"),
					{Name: "quantidade", Label: "Qtd", Kind: doctpl.FieldNumber, Default: "1"},
					{Name: "valor", Label: "Valor Unit. (R$)", Kind: doctpl.FieldNumber, Default: "0"},
				}},
			}},
			{Tab: "Detalhes Finais", Fields: []doctpl.Field{
				{Name: "validade", Label: "Validade do Orçamento", Kind: doctpl.FieldText, Placeholder: "Ex: 15 dias"},
				half(text("cidade", "Cidade")),
				half(text("estado", "Estado (UF)")),
				date("data", "Data"),
			}},
		},
		Font: regular(10),
		Blocks: []doctpl.Block{
			centered("ORÇAMENTO", bold(22), 15),
			{
				Kind: doctpl.BlockColumns,
				Left: party("PRESTADOR DE SERVIÇOS:",
					`{{.Get "prestador_nome"}}`,
					`{{with .Get "prestador_doc"}}CPF/CNPJ: {{.}}{{end}}`,
					`{{.Get "prestador_contato"}}`,
				),
				Right: right(party("CLIENTE:",
					`{{.Get "cliente_nome"}}`,
					`{{with .Get "cliente_doc"}}CPF/CNPJ: {{.}}{{end}}`,
					`{{.Get "cliente_endereco"}}`,
				)),
			},
			{
				Kind:   doctpl.BlockTable,
				Source: "itens_orcamento",
				Columns: []doctpl.Column{
					{Header: "DESCRIÇÃO", X: 22, Value: `{{.Get "descricao"}}`},
					{Header: "QTD", X: 130, Align: layout.AlignCenter, Value: `{{number (.Number "quantidade")}}`},
					{Header: "UNIT. (R$)", X: 155, Align: layout.AlignCenter, Value: `{{money (.Number "valor")}}`},
					{Header: "TOTAL (R$)", X: 190, Align: layout.AlignRight, Value: `{{money (mul (.Number "quantidade") (.Number "valor"))}}`},
				},
				After: 5,
			},
			rule(10),
			rightAt(190, `TOTAL GERAL: R$ {{money (.Total "itens_orcamento" "quantidade" "valor")}}`, bold(12), 20),
			{Kind: doctpl.BlockText, Text: `{{with .Get "validade"}}Validade deste orçamento: {{.}}{{end}}`, OmitEmpty: true, After: 10},
			line(placeDate("Cidade"), layout.Font{}, 0),
		},
	}
}
