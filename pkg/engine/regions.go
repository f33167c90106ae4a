package engine

import (
	"errors"
	"fmt"

	"github.com/yaklabco/gomdedit/pkg/block"
	"github.com/yaklabco/gomdedit/pkg/langdetect"
	"github.com/yaklabco/gomdedit/pkg/table"
	"github.com/yaklabco/gomdedit/pkg/textpos"
)

// ErrNoTable is returned when a table index does not exist.
var ErrNoTable = errors.New("no such table")

// CodeBlock is a fenced code group.
type CodeBlock struct {
	// Range spans the opening fence through the closing fence, or to the
	// end of the document when the fence is never closed.
	Range textpos.Range

	// Body is the range of the lines between the fences.
	Body textpos.Range

	// Info is the text after the opening backticks.
	Info string

	// Language is derived from Info, or detected from the body.
	Language string

	// Closed reports whether a closing fence was found.
	Closed bool
}

// TableRegion is a run of consecutive table lines parsed into a model.
type TableRegion struct {
	// Range covers the table lines, excluding the final line ending.
	Range textpos.Range

	Model *table.Model
}

// CodeBlocks returns every fenced code group in document order.
func (d *Document) CodeBlocks() []CodeBlock {
	var out []CodeBlock

	for i := 0; i < len(d.blocks); i++ {
		open := d.blocks[i]
		if open.Type.Kind != block.KindCodeFenceOpen {
			continue
		}

		cb := CodeBlock{
			Range: open.Range,
			Body:  textpos.Range{Start: open.Range.End, End: open.Range.End},
			Info:  block.FenceInfo(open.Content(d.text)),
		}

		j := i + 1
		for ; j < len(d.blocks); j++ {
			b := d.blocks[j]
			if b.Type.Kind == block.KindCodeFenceClose {
				cb.Closed = true
				cb.Range.End = b.Range.End
				break
			}
			cb.Body.End = b.Range.End
			cb.Range.End = b.Range.End
		}

		cb.Language = langdetect.Resolve(cb.Info, []byte(d.text[cb.Body.Start:cb.Body.End]))
		out = append(out, cb)
		i = j
	}

	return out
}

// Tables parses every run of table lines whose second line is a
// separator. Other runs, such as a lone row, are skipped.
func (d *Document) Tables() []TableRegion {
	var out []TableRegion

	for i := 0; i < len(d.blocks); {
		if !d.blocks[i].Type.IsTable() {
			i++
			continue
		}

		start := i
		for i < len(d.blocks) && d.blocks[i].Type.IsTable() {
			i++
		}
		if i-start < 2 || d.blocks[start+1].Type.Kind != block.KindTableSeparator {
			continue
		}

		r := textpos.Range{Start: d.blocks[start].Range.Start, End: d.blocks[i-1].ContentEnd}
		if model, ok := table.FromMarkdown(d.text[r.Start:r.End]); ok {
			out = append(out, TableRegion{Range: r, Model: model})
		}
	}

	return out
}

// EditTable runs fn against the model of the index-th table and, when fn
// changed it, writes the table back in canonical or column-aligned form.
func (d *Document) EditTable(index int, aligned bool, fn func(*table.Model)) (bool, error) {
	tables := d.Tables()
	if index < 0 || index >= len(tables) {
		return false, fmt.Errorf("table %d: %w", index, ErrNoTable)
	}

	region := tables[index]
	changed := false
	region.Model.Observe(func(*table.Model) { changed = true })
	fn(region.Model)

	if !changed {
		return false, nil
	}
	return true, d.Mutate(region.Range, render(region.Model, aligned))
}

// FormatTables rewrites every table through the table model, normalizing
// ragged rows and separators. It returns the number of tables whose text
// changed.
func (d *Document) FormatTables(aligned bool) (int, error) {
	tables := d.Tables()

	changed := 0
	for i := len(tables) - 1; i >= 0; i-- {
		region := tables[i]
		formatted := render(region.Model, aligned)
		if formatted == d.text[region.Range.Start:region.Range.End] {
			continue
		}
		if err := d.Mutate(region.Range, formatted); err != nil {
			return changed, err
		}
		changed++
	}

	return changed, nil
}

func render(model *table.Model, aligned bool) string {
	if aligned {
		return model.Format()
	}
	return model.ToMarkdown()
}
