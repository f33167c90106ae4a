// Package engine holds a markdown document together with its derived line
// blocks, inline spans and hidden marker ranges. Every mutation re-derives
// all of them from scratch so they can never drift from the text.
package engine

import (
	"fmt"
	"slices"

	"github.com/charmbracelet/log"

	"github.com/yaklabco/gomdedit/internal/logging"
	"github.com/yaklabco/gomdedit/pkg/block"
	"github.com/yaklabco/gomdedit/pkg/edit"
	"github.com/yaklabco/gomdedit/pkg/inline"
	"github.com/yaklabco/gomdedit/pkg/textpos"
	"github.com/yaklabco/gomdedit/pkg/trigger"
)

// Options configures a Document.
type Options struct {
	// Logger receives debug output for mutations and consumed keys.
	// Nil discards everything.
	Logger *log.Logger

	// Inline toggles the optional inline passes.
	Inline inline.Options

	// Trigger configures Enter and Tab handling.
	Trigger trigger.Options
}

// DefaultOptions returns options with every feature enabled.
func DefaultOptions() Options {
	return Options{
		Inline:  inline.DefaultOptions(),
		Trigger: trigger.DefaultOptions(),
	}
}

// Observer is called after every successful mutation.
type Observer func(*Document)

// Document is a markdown buffer and its formatting state. It is not safe
// for concurrent use.
type Document struct {
	text   string
	blocks []block.LineBlock
	spans  []inline.Span
	hidden []textpos.Range

	opts      Options
	logger    *log.Logger
	processor *trigger.Processor
	observers []Observer
}

// New creates a document holding text and formats it.
func New(text string, opts Options) *Document {
	logger := opts.Logger
	if logger == nil {
		logger = logging.Discard()
	}

	doc := &Document{
		text:      text,
		opts:      opts,
		logger:    logger,
		processor: trigger.New(opts.Trigger),
	}
	doc.reformat()

	return doc
}

// Text returns the current document text.
func (d *Document) Text() string {
	return d.text
}

// Len returns the document length in bytes.
func (d *Document) Len() int {
	return len(d.text)
}

// Mutate replaces r with replacement and re-derives all formatting state.
// An invalid range leaves the document untouched.
func (d *Document) Mutate(r textpos.Range, replacement string) error {
	return d.Apply(edit.Replace(r, replacement))
}

// Apply performs m. It is the single path through which the text changes.
func (d *Document) Apply(m edit.Mutation) error {
	text, err := edit.Apply(d.text, m)
	if err != nil {
		return fmt.Errorf("mutate document: %w", err)
	}

	d.text = text
	d.reformat()

	d.logger.Debug("document mutated",
		logging.FieldRange, m.Range.String(),
		logging.FieldLength, len(m.Text),
		logging.FieldBlocks, len(d.blocks),
		logging.FieldSpans, len(d.spans),
	)

	for _, fn := range d.observers {
		fn(d)
	}
	return nil
}

// Observe registers fn to run after each successful mutation.
func (d *Document) Observe(fn Observer) {
	d.observers = append(d.observers, fn)
}

// LineBlocks returns a copy of the current line classification.
func (d *Document) LineBlocks() []block.LineBlock {
	return slices.Clone(d.blocks)
}

// StyleSpans returns a copy of the current inline spans.
func (d *Document) StyleSpans() []inline.Span {
	return slices.Clone(d.spans)
}

// HiddenRanges returns a copy of the current hidden marker ranges.
func (d *Document) HiddenRanges() []textpos.Range {
	return slices.Clone(d.hidden)
}

// BlockAt returns the line block holding offset.
func (d *Document) BlockAt(offset int) (block.LineBlock, bool) {
	idx, ok := block.At(d.blocks, offset)
	if !ok {
		return block.LineBlock{}, false
	}
	return d.blocks[idx], true
}

func (d *Document) reformat() {
	d.blocks = block.Classify(d.text)
	result := inline.FormatWith(d.text, d.blocks, d.opts.Inline)
	d.spans = result.Spans
	d.hidden = result.Hidden
}
