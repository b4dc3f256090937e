// Package doctpl describes document templates: the form a user fills in and
// the declarative block list that turns the filled values into a page layout.
//
// A Template pairs field groups (tabs) with Blocks. Field and group
// visibility are pure predicates over the current Values. Blocks are
// interpreted by Render, which emits layout operations; the textual content
// of every block is a text/template body executed against a View of the
// values, for example:
//
//	Recebi de {{.Or "pagador" "________"}}, a importância de
//	R$ {{.Or "valor" "___"}} ({{.Words "valor" "________"}}).
package doctpl

import (
	"text/template"

	"github.com/anixcopiadora/docgen/layout"
)

// FieldKind is the input control a field is edited with.
type FieldKind string

const (
	FieldText        FieldKind = "text"
	FieldNumber      FieldKind = "number"
	FieldDate        FieldKind = "date"
	FieldEmail       FieldKind = "email"
	FieldSelect      FieldKind = "select"
	FieldTextarea    FieldKind = "textarea"
	FieldCheckbox    FieldKind = "checkbox"
	FieldFile        FieldKind = "file"
	FieldDynamicList FieldKind = "dynamic_list"
	FieldRecordList  FieldKind = "record_list"
	FieldMultiSelect FieldKind = "multi_select"
	FieldHeading     FieldKind = "heading"
)

// Width is a layout hint for the input control.
type Width string

const (
	WidthFull  Width = "full"
	WidthHalf  Width = "half"
	WidthThird Width = "third"
)

// CheckKind selects the advisory validation applied to a field.
type CheckKind int

const (
	CheckNone CheckKind = iota
	CheckNationalID
	CheckEmail
)

// Field describes one value slot of a template. Headings carry no value and
// have an empty Name.
type Field struct {
	Name        string
	Label       string
	Kind        FieldKind
	Placeholder string
	Options     []string
	Default     string
	// Defaults seeds a dynamic list.
	Defaults []string
	Visible  Predicate
	Width    Width
	// Fields are the sub-fields of each record in a record list.
	Fields []Field
	Check  CheckKind
}

// Group is a tab of fields.
type Group struct {
	Tab     string
	Visible Predicate
	Fields  []Field
}

// Template is a registered document type. It is immutable once compiled.
type Template struct {
	ID          string
	Title       string
	Icon        string
	Description string
	Groups      []Group
	Blocks      []Block
	// Custom marks templates whose form is not a plain list of groups
	// (record lists, skill pickers).
	Custom bool
	// Font is the default body font. Zero means Helvetica 12.
	Font layout.Font

	texts map[string]*template.Template
}

// Available reports whether the template can render anything.
func (t *Template) Available() bool { return len(t.Blocks) > 0 }

// Fields returns every value-bearing field in declaration order.
func (t *Template) Fields() []Field {
	var out []Field
	for _, g := range t.Groups {
		for _, f := range g.Fields {
			if f.Kind != FieldHeading && f.Name != "" {
				out = append(out, f)
			}
		}
	}
	return out
}

// Field looks a field up by name.
func (t *Template) Field(name string) (Field, bool) {
	for _, f := range t.Fields() {
		if f.Name == name {
			return f, true
		}
	}
	return Field{}, false
}

// BlockKind selects how a Block is laid out.
type BlockKind string

const (
	// BlockTitle is a single centred line.
	BlockTitle BlockKind = "title"
	// BlockText is a single line at X with Align.
	BlockText BlockKind = "text"
	// BlockParagraph wraps Text to Width.
	BlockParagraph BlockKind = "paragraph"
	// BlockClause is a titled paragraph preceded by the page look-ahead check.
	BlockClause BlockKind = "clause"
	// BlockSection is a titled paragraph without the look-ahead check.
	BlockSection BlockKind = "section"
	// BlockRule is a horizontal line across the content width.
	BlockRule    BlockKind = "rule"
	BlockSpacer  BlockKind = "spacer"
	BlockGroup   BlockKind = "group"
	BlockColumns BlockKind = "columns"
	// BlockSignature draws one or more signature lines side by side.
	BlockSignature BlockKind = "signature"
	BlockTable     BlockKind = "table"
	// BlockLedger is a boxed list of label and amount rows.
	BlockLedger BlockKind = "ledger"
	// BlockChecklist repeats a condition row for each item of a list.
	BlockChecklist BlockKind = "checklist"
	// BlockEntries prints title, subtitle and optional detail per record.
	BlockEntries BlockKind = "entries"
	// BlockBullets prints one line per item.
	BlockBullets   BlockKind = "bullets"
	BlockImage     BlockKind = "image"
	BlockPageBreak BlockKind = "pagebreak"
	// BlockEnsure breaks the page when the cursor is below Limit.
	BlockEnsure BlockKind = "ensure"
	// BlockStamp is the authentication footer with its opaque token.
	BlockStamp BlockKind = "stamp"
)

// Block is one unit of document content. Kind decides which fields are
// relevant; every text field is a template body.
type Block struct {
	Kind BlockKind
	// When, if set, must hold for the block to be emitted.
	When Predicate

	Text      string
	Title     string
	Font      layout.Font
	TitleFont layout.Font
	Color     *layout.Color
	Align     layout.Align

	X, Y       float64
	Width      float64
	Height     float64
	Dy         float64
	LineHeight float64
	TitleGap   float64
	// After is the cursor advance once the block is placed. For paragraphs
	// it is added to the height of the lines.
	After float64
	// Min is the least a paragraph advances.
	Min float64
	// Stroke is the line width of rules, boxes and signature lines.
	Stroke float64
	// OmitEmpty drops the block when its text renders empty.
	OmitEmpty bool

	// Source names the list or record list iterated by checklist, entries,
	// bullets and table blocks, or the value holding an image.
	Source   string
	Defaults []string
	// Item, Detail, Aside and Note are per-item templates. Items are
	// records, or {"item": value} for plain lists.
	Item   string
	Detail string
	Aside  string
	AsideX float64
	Note   string
	Pitch  float64

	Blocks      []Block
	Left, Right []Block

	Slots   []Slot
	Rows    []LedgerRow
	Columns []Column

	// Limit and Top drive page breaks: ensure breaks below Limit and both
	// pagebreak and ensure restart at Top (page top when zero).
	Limit float64
	Top   float64

	Symbology string
}

// Slot is one signature line.
type Slot struct {
	X, Width float64
	Label    string
	// Note is printed below the label and omitted when it renders empty.
	Note  string
	Align layout.Align
}

// LedgerRow is a label with a right-aligned value.
type LedgerRow struct {
	Label string
	Value string
	Bold  bool
}

// Column is a table column; Value is executed once per record.
type Column struct {
	Header string
	X      float64
	Align  layout.Align
	Value  string
}
