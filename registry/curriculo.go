package registry

import (
	"strings"

	"github.com/anixcopiadora/docgen/doctpl"
)

// Skills offered by the resume skill picker.
var Skills = []string{
	"Liderança", "Negociação", "Adaptabilidade", "Comunicação eficaz",
	"Autoconfiança", "Resiliência", "Autoconhecimento", "Pensamento crítico",
	"Trabalho em equipe", "Criatividade", "Proatividade", "Inteligência emocional",
	"Resolução de problemas", "Foco em resultados", "Gestão do tempo",
}

var (
	Languages      = []string{"Inglês", "Espanhol", "Francês"}
	LanguageLevels = []string{"Básico", "Intermediário", "Avançado", "Fluente"}
)

// Summary is a canned professional summary.
type Summary struct {
	Label string `json:"label" yaml:"label"`
	Text  string `json:"text" yaml:"text"`
}

// Summaries returns the canned summaries with the desired position filled
// in, or "[Cargo]" when it is empty.
func Summaries(cargo string) []Summary {
	if cargo == "" {
		cargo = "[Cargo]"
	}
	r := strings.NewReplacer("{cargo}", cargo)
	out := make([]Summary, len(summaries))
	for i, s := range summaries {
		out[i] = Summary{Label: s.Label, Text: r.Replace(s.Text)}
	}
	return out
}

var summaries = []Summary{
	{"Primeiro Emprego", "Em busca da minha primeira oportunidade profissional como {cargo}, desejo aplicar meus conhecimentos e habilidades para contribuir com o crescimento da empresa. Sou proativo, tenho facilidade de aprendizado e estou disposto a enfrentar novos desafios."},
	{"Profissional Experiente", "Profissional com sólida experiência na área de {cargo}, focado em resultados e eficiência. Possuo histórico comprovado de melhoria de processos e liderança de equipes."},
	{"Gestão e Liderança", "Gestor experiente com foco em liderança de equipes e gestão estratégica. Habilidade em motivar colaboradores e alinhar objetivos individuais aos da organização."},
	{"Criativo / Inovação", "Profissional criativo e apaixonado por inovação, buscando atuar como {cargo}. Experiência em desenvolvimento de soluções originais e pensamento fora da caixa."},
	{"Administrativo Geral", "Atuando como {cargo} com foco em organização, pontualidade e eficiência administrativa. Comprometido com a qualidade e o bom ambiente de trabalho."},
}

// resumeSection prints a heading and the entries of a record list, or
// nothing when the list is empty.
func resumeSection(heading, source string, entries doctpl.Block) doctpl.Block {
	entries.Source = source
	entries.After = 5
	return doctpl.Block{
		Kind: doctpl.BlockGroup,
		When: doctpl.Present(source),
		Blocks: []doctpl.Block{
			line(heading, bold(12), 6),
			entries,
		},
	}
}

func infoLine(text string) doctpl.Block {
	return doctpl.Block{Kind: doctpl.BlockParagraph, Text: text, OmitEmpty: true}
}

func curriculo() *doctpl.Template {
	entry := func(title, sub string) doctpl.Block {
		return doctpl.Block{
			Kind:      doctpl.BlockEntries,
			TitleFont: bold(11),
			Item:      title,
			Note:      sub,
			Detail:    `{{.Get "periodo"}}`,
			Pitch:     12,
		}
	}
	return &doctpl.Template{
		ID:          "curriculo",
		Title:       "Curriculum Vitae",
		Icon:        "💼",
		Description: "Crie um currículo profissional, moderno e formatado.",
		Custom:      true,
		Groups: []doctpl.Group{
			{Tab: "Dados Pessoais", Fields: []doctpl.Field{
				text("nome", "Nome Completo"),
				text("cargo", "Cargo Pretendido"),
				text("estado_civil", "Estado Civil"),
				number("idade", "Idade"),
				text("endereco", "Endereço"),
				text("cidade", "Cidade"),
				text("estado", "Estado (UF)"),
				text("telefone", "Telefone"),
				{Name: "email", Label: "E-mail", Kind: doctpl.FieldEmail, Check: doctpl.CheckEmail},
			}},
			{Tab: "Resumo", Fields: []doctpl.Field{
				{Name: "resumo", Label: "Resumo Profissional", Kind: doctpl.FieldTextarea, Placeholder: "Escreva um breve resumo sobre suas qualificações..."},
			}},
			{Tab: "Experiência", Fields: []doctpl.Field{
				{Name: "experiencias", Label: "Experiência Profissional", Kind: doctpl.FieldRecordList, Fields: []doctpl.Field{
					text("empresa", "Empresa"),
					text("cargo", "Cargo"),
					text("periodo", "Período (Ex: 2012 - 2013)"),
				}},
			}},
			{Tab: "Formação", Fields: []doctpl.Field{
				{Name: "formacao", Label: "Formação Acadêmica", Kind: doctpl.FieldRecordList, Fields: []doctpl.Field{
					text("instituicao", "Instituição"),
					text("curso", "Curso"),
					text("periodo", "Período"),
				}},
			}},
			{Tab: "Idiomas", Fields: []doctpl.Field{
				{Name: "idiomas", Label: "Idiomas", Kind: doctpl.FieldRecordList, Fields: []doctpl.Field{
					{Name: "idioma", Label: "Idioma", Kind: doctpl.FieldSelect, Options: Languages},
					{Name: "nivel", Label: "Nível", Kind: doctpl.FieldSelect, Options: LanguageLevels},
				}},
			}},
			{Tab: "Habilidades", Fields: []doctpl.Field{
				{Name: "habilidades", Label: "Habilidades", Kind: doctpl.FieldMultiSelect, Options: Skills},
			}},
		},
		Font: regular(10),
		Blocks: []doctpl.Block{
			{Kind: doctpl.BlockParagraph, Text: `{{.Upper "nome" "SEU NOME"}}`, Font: bold(22), Dy: 8, LineHeight: 8},
			{Kind: doctpl.BlockParagraph, Text: `{{.Upper "cargo" "Cargo Pretendido"}}`, Font: bold(14), Dy: 6, LineHeight: 5, After: 5},
			infoLine(`{{if .Has "estado_civil"}}{{.Get "estado_civil"}}, {{.Get "idade"}} anos{{else if .Has "idade"}}{{.Get "idade"}} anos{{end}}`),
			infoLine(`{{.Get "endereco"}}`),
			infoLine(`{{.Get "cidade"}}{{with .Get "estado"}}, {{.}}{{end}}`),
			infoLine(`{{with .Get "telefone"}}Telefone: {{.}}{{end}}`),
			infoLine(`{{with .Get "email"}}E-mail: {{.}}{{end}}`),
			rule(10),
			{
				Kind:      doctpl.BlockSection,
				When:      doctpl.Present("resumo"),
				Title:     "RESUMO PROFISSIONAL",
				TitleFont: bold(12),
				TitleGap:  6,
				Text:      `{{.Get "resumo"}}`,
				After:     5,
			},
			resumeSection("EXPERIÊNCIA PROFISSIONAL", "experiencias", entry(`{{.Or "empresa" "Empresa"}}`, `{{.Or "cargo" "Cargo"}}`)),
			resumeSection("FORMAÇÃO ACADÊMICA", "formacao", entry(`{{.Or "instituicao" "Instituição"}}`, `{{.Or "curso" "Curso"}}`)),
			resumeSection("IDIOMAS", "idiomas", doctpl.Block{
				Kind:  doctpl.BlockBullets,
				X:     25,
				Item:  `• {{.Get "idioma"}} - {{.Get "nivel"}}`,
				Pitch: 5,
			}),
			{
				Kind:      doctpl.BlockSection,
				When:      doctpl.Present("habilidades"),
				Title:     "HABILIDADES",
				TitleFont: bold(12),
				TitleGap:  6,
				Text:      `{{.Join "habilidades" ", "}}`,
				After:     5,
			},
		},
	}
}
