// Package table provides an editable model of GitHub-flavored pipe tables.
//
// A Model is a working copy: callers Copy it before presenting an editing
// session so that edits can be discarded without touching the original.
// Every mutation that would leave the table without rows or columns is a
// silent no-op.
package table

import (
	"fmt"
	"strings"
)

// Alignment is the horizontal alignment of a column.
type Alignment uint8

// Column alignments.
const (
	AlignLeft Alignment = iota
	AlignCenter
	AlignRight
)

// String returns the alignment name.
func (a Alignment) String() string {
	switch a {
	case AlignLeft:
		return "left"
	case AlignCenter:
		return "center"
	case AlignRight:
		return "right"
	default:
		return fmt.Sprintf("Alignment(%d)", a)
	}
}

// ParseAlignment converts "left", "center" or "right" to an Alignment.
func ParseAlignment(s string) (Alignment, error) {
	switch s {
	case "left", "":
		return AlignLeft, nil
	case "center":
		return AlignCenter, nil
	case "right":
		return AlignRight, nil
	default:
		return AlignLeft, fmt.Errorf("unknown alignment %q", s)
	}
}

// Default table dimensions.
const (
	DefaultColumns = 3
	DefaultRows    = 2
)

// Observer is notified synchronously after each effective mutation.
type Observer func(*Model)

// Model is a rows x columns grid of cell text plus per-column alignment.
// Row 0 is the header row when serialized.
type Model struct {
	cells      [][]string
	alignments []Alignment

	// HasHeader controls whether row 0 is styled as a header. It is not
	// serialized: GFM always needs a header row structurally.
	HasHeader bool

	// HasHeaderColumn controls whether column 0 is styled as a header.
	HasHeaderColumn bool

	observers []Observer
}

// New returns the default table: one header row and one data row, with
// DefaultColumns columns.
func New() *Model {
	return NewSized(DefaultRows, DefaultColumns)
}

// NewSized returns a table with the given dimensions, clamped to at least
// one row and one column. Header cells are titled "Column N".
func NewSized(rows, columns int) *Model {
	rows = max(rows, 1)
	columns = max(columns, 1)

	cells := make([][]string, rows)
	for r := range cells {
		cells[r] = make([]string, columns)
	}
	for c := range columns {
		cells[0][c] = fmt.Sprintf("Column %d", c+1)
	}

	return &Model{
		cells:      cells,
		alignments: make([]Alignment, columns),
		HasHeader:  true,
	}
}

// Rows returns the number of rows, header included.
func (m *Model) Rows() int {
	return len(m.cells)
}

// Columns returns the number of columns.
func (m *Model) Columns() int {
	return len(m.alignments)
}

// Cell returns the text at row, column, or "" when out of range.
func (m *Model) Cell(row, column int) string {
	if !m.validRow(row) || !m.validColumn(column) {
		return ""
	}
	return m.cells[row][column]
}

// Cells returns a deep copy of the grid.
func (m *Model) Cells() [][]string {
	out := make([][]string, len(m.cells))
	for r, row := range m.cells {
		out[r] = append([]string(nil), row...)
	}
	return out
}

// Alignment returns the alignment of column, or AlignLeft when out of range.
func (m *Model) Alignment(column int) Alignment {
	if !m.validColumn(column) {
		return AlignLeft
	}
	return m.alignments[column]
}

// Alignments returns a copy of the per-column alignments.
func (m *Model) Alignments() []Alignment {
	return append([]Alignment(nil), m.alignments...)
}

// Observe registers fn to be called after each effective mutation.
func (m *Model) Observe(fn Observer) {
	m.observers = append(m.observers, fn)
}

// SetCell replaces the text at row, column. Surrounding whitespace is
// trimmed, as it is when a row is parsed. No-op when out of range.
func (m *Model) SetCell(row, column int, text string) {
	if !m.validRow(row) || !m.validColumn(column) {
		return
	}
	m.cells[row][column] = strings.TrimSpace(text)
	m.notify()
}

// AddRow appends an empty row.
func (m *Model) AddRow() {
	m.InsertRow(m.Rows())
}

// InsertRow inserts an empty row before index at. at == Rows() appends.
// No-op when at is out of range.
func (m *Model) InsertRow(at int) {
	if at < 0 || at > m.Rows() {
		return
	}
	m.cells = insertAt(m.cells, at, make([]string, m.Columns()))
	m.notify()
}

// AddColumn appends an empty, left-aligned column.
func (m *Model) AddColumn() {
	m.InsertColumn(m.Columns())
}

// InsertColumn inserts an empty, left-aligned column before index at.
// at == Columns() appends. No-op when at is out of range.
func (m *Model) InsertColumn(at int) {
	if at < 0 || at > m.Columns() {
		return
	}
	for r := range m.cells {
		m.cells[r] = insertAt(m.cells[r], at, "")
	}
	m.alignments = insertAt(m.alignments, at, AlignLeft)
	m.notify()
}

// DeleteRow removes the row at index at. It refuses to remove the last row.
func (m *Model) DeleteRow(at int) {
	if !m.validRow(at) || m.Rows() <= 1 {
		return
	}
	m.cells = removeAt(m.cells, at)
	m.notify()
}

// DeleteColumn removes the column at index at. It refuses to remove the
// last column.
func (m *Model) DeleteColumn(at int) {
	if !m.validColumn(at) || m.Columns() <= 1 {
		return
	}
	for r := range m.cells {
		m.cells[r] = removeAt(m.cells[r], at)
	}
	m.alignments = removeAt(m.alignments, at)
	m.notify()
}

// MoveRow moves the row at from so that it ends up at index to.
// No-op when either index is out of range or they are equal.
func (m *Model) MoveRow(from, to int) {
	if from == to || !m.validRow(from) || !m.validRow(to) {
		return
	}
	m.cells = move(m.cells, from, to)
	m.notify()
}

// MoveColumn moves the column at from, with its alignment, to index to.
// No-op when either index is out of range or they are equal.
func (m *Model) MoveColumn(from, to int) {
	if from == to || !m.validColumn(from) || !m.validColumn(to) {
		return
	}
	for r := range m.cells {
		m.cells[r] = move(m.cells[r], from, to)
	}
	m.alignments = move(m.alignments, from, to)
	m.notify()
}

// SetAlignment sets the alignment of column. No-op when out of range.
func (m *Model) SetAlignment(alignment Alignment, column int) {
	if !m.validColumn(column) {
		return
	}
	m.alignments[column] = alignment
	m.notify()
}

// Copy returns a deep clone including alignments and header flags.
// Observers are not copied.
func (m *Model) Copy() *Model {
	return &Model{
		cells:           m.Cells(),
		alignments:      m.Alignments(),
		HasHeader:       m.HasHeader,
		HasHeaderColumn: m.HasHeaderColumn,
	}
}

func (m *Model) validRow(row int) bool {
	return row >= 0 && row < m.Rows()
}

func (m *Model) validColumn(column int) bool {
	return column >= 0 && column < m.Columns()
}

func (m *Model) notify() {
	for _, fn := range m.observers {
		fn(m)
	}
}

func insertAt[T any](items []T, at int, item T) []T {
	items = append(items, item)
	copy(items[at+1:], items[at:])
	items[at] = item
	return items
}

func removeAt[T any](items []T, at int) []T {
	return append(items[:at], items[at+1:]...)
}

func move[T any](items []T, from, to int) []T {
	item := items[from]
	items = removeAt(items, from)
	return insertAt(items, to, item)
}
