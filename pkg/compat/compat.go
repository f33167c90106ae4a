// Package compat cross-checks line classification against a GFM parse
// produced by goldmark and reports the lines where the two disagree.
package compat

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	east "github.com/yuin/goldmark/extension/ast"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/text"

	"github.com/yaklabco/gomdedit/pkg/block"
)

// Divergence is a line whose block kind differs from goldmark's reading.
type Divergence struct {
	// Line is the 1-based line number.
	Line int

	// Want is the kind implied by the goldmark tree.
	Want block.Type

	// Got is the classifier's type.
	Got block.Type

	// Text is the line content.
	Text string
}

func (d Divergence) String() string {
	return fmt.Sprintf("line %d: goldmark reads %s, classifier reads %s", d.Line, d.Want, d.Got)
}

// Checker runs the comparison. It is safe for concurrent use.
type Checker struct {
	md goldmark.Markdown
}

// New creates a Checker using goldmark with the GFM extensions.
func New() *Checker {
	return &Checker{md: goldmark.New(goldmark.WithExtensions(extension.GFM))}
}

// Check parses content with goldmark and compares it to block.Classify.
// Only constructs the classifier models are compared; indented code,
// setext headings, HTML blocks and thematic breaks are ignored.
func (c *Checker) Check(ctx context.Context, content []byte) ([]Divergence, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("check cancelled: %w", err)
	}

	src := string(content)
	blocks := block.Classify(src)
	want, err := c.expectations(content, blocks)
	if err != nil {
		return nil, err
	}

	lines := make([]int, 0, len(want))
	for line := range want {
		lines = append(lines, line)
	}
	sort.Ints(lines)

	var out []Divergence
	for _, line := range lines {
		got := blocks[line]
		if agrees(want[line], got.Type) {
			continue
		}
		out = append(out, Divergence{
			Line: line + 1,
			Want: want[line],
			Got:  got.Type,
			Text: got.Content(src),
		})
	}

	return out, nil
}

// expectations maps line indexes to the block type goldmark implies. The
// outermost construct starting on a line decides it.
func (c *Checker) expectations(content []byte, blocks []block.LineBlock) (map[int]block.Type, error) {
	doc := c.md.Parser().Parse(text.NewReader(content), parser.WithContext(parser.NewContext()))
	want := make(map[int]block.Type)

	expect := func(offset int, typ block.Type) {
		if offset < 0 {
			return
		}
		if idx, ok := block.At(blocks, offset); ok {
			if _, seen := want[idx]; !seen {
				want[idx] = typ
			}
		}
	}

	err := ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}

		switch node := n.(type) {
		case *ast.Heading:
			offset := firstOffset(node)
			if isATX(content, blocks, offset) {
				expect(offset, block.Heading(node.Level))
			}

		case *ast.FencedCodeBlock:
			expectFence(node, content, blocks, expect)
			return ast.WalkSkipChildren, nil

		case *ast.ListItem:
			expect(firstOffset(node), itemType(node))

		case *ast.Blockquote:
			expect(firstOffset(node), block.Blockquote(1))

		case *east.TableHeader, *east.TableRow:
			expect(firstOffset(node), block.TableRow())

		case *ast.Paragraph:
			if _, top := node.Parent().(*ast.Document); top {
				lines := node.Lines()
				for i := range lines.Len() {
					expect(lines.At(i).Start, block.Paragraph())
				}
			}
		}

		return ast.WalkContinue, nil
	})
	if err != nil {
		return nil, fmt.Errorf("walk goldmark tree: %w", err)
	}

	return want, nil
}

// expectFence marks the opening fence line and every body line.
func expectFence(node *ast.FencedCodeBlock, content []byte, blocks []block.LineBlock, expect func(int, block.Type)) {
	lines := node.Lines()

	switch {
	case node.Info != nil:
		expect(node.Info.Segment.Start, block.CodeFenceOpen())
	case lines.Len() > 0:
		if idx, ok := block.At(blocks, lines.At(0).Start); ok && idx > 0 {
			expect(blocks[idx-1].Range.Start, block.CodeFenceOpen())
		}
	}

	for i := range lines.Len() {
		seg := lines.At(i)
		if seg.Start < len(content) {
			expect(seg.Start, block.CodeBlock())
		}
	}
}

func itemType(item *ast.ListItem) block.Type {
	if list, ok := item.Parent().(*ast.List); ok && list.IsOrdered() {
		return block.OrderedList(0, list.Start)
	}
	if first := item.FirstChild(); first != nil {
		if _, task := first.FirstChild().(*east.TaskCheckBox); task {
			return block.TaskList(0, false)
		}
	}
	return block.BulletList(0)
}

// firstOffset returns the first source offset covered by n or any of its
// descendants, or -1.
func firstOffset(n ast.Node) int {
	if t, ok := n.(*ast.Text); ok {
		return t.Segment.Start
	}
	if n.Type() == ast.TypeBlock && n.Lines().Len() > 0 {
		return n.Lines().At(0).Start
	}
	for child := n.FirstChild(); child != nil; child = child.NextSibling() {
		if offset := firstOffset(child); offset >= 0 {
			return offset
		}
	}
	return -1
}

func isATX(content []byte, blocks []block.LineBlock, offset int) bool {
	idx, ok := block.At(blocks, offset)
	if !ok {
		return false
	}
	return strings.HasPrefix(strings.TrimLeft(blocks[idx].Content(string(content)), " \t"), "#")
}

// agrees compares kinds only; nesting depth and numbering are derived
// differently by the two readers. Heading levels must match.
func agrees(want, got block.Type) bool {
	if want.Kind != got.Kind {
		return false
	}
	if want.Kind == block.KindHeading {
		return want.Level == got.Level
	}
	return true
}
