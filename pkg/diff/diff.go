// Package diff renders line-based unified diffs between two versions of a
// document.
package diff

import (
	"fmt"
	"strings"
)

// Op is the kind of a diff line.
type Op int

// Diff line kinds.
const (
	OpKeep Op = iota
	OpInsert
	OpDelete
)

// prefix returns the unified diff marker for the op.
func (o Op) prefix() byte {
	switch o {
	case OpInsert:
		return '+'
	case OpDelete:
		return '-'
	default:
		return ' '
	}
}

// Line is one line of a hunk, without its newline.
type Line struct {
	Op   Op
	Text string
}

// Hunk is a run of changes with surrounding context. Start lines are
// 1-based.
type Hunk struct {
	OldStart int
	OldLines int
	NewStart int
	NewLines int
	Lines    []Line
}

// File is the diff of one document.
type File struct {
	Path     string
	Hunks    []Hunk
	Inserted int
	Deleted  int
}

// Context is the number of unchanged lines kept around each change.
const Context = 3

// Compute diffs before against after line by line. It returns nil when the
// two have the same lines.
func Compute(path, before, after string) *File {
	oldLines := splitLines(before)
	newLines := splitLines(after)

	ops := script(oldLines, newLines)
	hunks := group(ops)
	if len(hunks) == 0 {
		return nil
	}

	file := &File{Path: path, Hunks: hunks}
	for _, line := range ops {
		switch line.Op {
		case OpInsert:
			file.Inserted++
		case OpDelete:
			file.Deleted++
		case OpKeep:
		}
	}
	return file
}

// Header returns the "diff --git" line for the file.
func (f *File) Header() string {
	path := strings.TrimPrefix(f.Path, "/")
	return fmt.Sprintf("diff --git a/%s b/%s", path, path)
}

// String renders the file headers and hunks in unified format.
func (f *File) String() string {
	if f == nil {
		return ""
	}

	path := strings.TrimPrefix(f.Path, "/")

	var b strings.Builder
	fmt.Fprintf(&b, "--- a/%s\n+++ b/%s\n", path, path)
	for _, hunk := range f.Hunks {
		b.WriteString(hunk.Range())
		b.WriteByte('\n')
		for _, line := range hunk.Lines {
			b.WriteByte(line.Op.prefix())
			b.WriteString(line.Text)
			b.WriteByte('\n')
		}
	}
	return b.String()
}

// Range returns the "@@ -a,b +c,d @@" hunk header.
func (h Hunk) Range() string {
	return fmt.Sprintf("@@ -%d,%d +%d,%d @@", h.OldStart, h.OldLines, h.NewStart, h.NewLines)
}

// splitLines splits text on '\n'. A trailing newline does not produce an
// empty final line.
func splitLines(text string) []string {
	if text == "" {
		return nil
	}
	lines := strings.Split(text, "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}

// script returns the edit script turning a into b, built from a longest
// common subsequence table. Deletions are emitted before insertions.
func script(a, b []string) []Line {
	lcs := make([][]int, len(a)+1)
	for i := range lcs {
		lcs[i] = make([]int, len(b)+1)
	}
	for i := len(a) - 1; i >= 0; i-- {
		for j := len(b) - 1; j >= 0; j-- {
			if a[i] == b[j] {
				lcs[i][j] = lcs[i+1][j+1] + 1
			} else {
				lcs[i][j] = max(lcs[i+1][j], lcs[i][j+1])
			}
		}
	}

	ops := make([]Line, 0, max(len(a), len(b)))
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		switch {
		case a[i] == b[j]:
			ops = append(ops, Line{OpKeep, a[i]})
			i++
			j++
		case lcs[i+1][j] >= lcs[i][j+1]:
			ops = append(ops, Line{OpDelete, a[i]})
			i++
		default:
			ops = append(ops, Line{OpInsert, b[j]})
			j++
		}
	}
	for ; i < len(a); i++ {
		ops = append(ops, Line{OpDelete, a[i]})
	}
	for ; j < len(b); j++ {
		ops = append(ops, Line{OpInsert, b[j]})
	}
	return ops
}

// group cuts the edit script into hunks. Changes separated by at most
// 2*Context unchanged lines share a hunk.
func group(ops []Line) []Hunk {
	var hunks []Hunk

	oldLine, newLine := 1, 1
	var current *Hunk
	keepRun := 0

	flush := func() {
		if current == nil {
			return
		}
		trim := max(keepRun-Context, 0)
		current.Lines = current.Lines[:len(current.Lines)-trim]
		current.OldLines -= trim
		current.NewLines -= trim
		hunks = append(hunks, *current)
		current = nil
	}

	for idx, op := range ops {
		if op.Op == OpKeep {
			if current != nil {
				if keepRun >= 2*Context {
					flush()
				} else {
					current.Lines = append(current.Lines, op)
					current.OldLines++
					current.NewLines++
				}
			}
			keepRun++
			oldLine++
			newLine++
			continue
		}

		if current == nil {
			lead := min(keepRun, Context)
			current = &Hunk{
				OldStart: oldLine - lead,
				NewStart: newLine - lead,
				OldLines: lead,
				NewLines: lead,
			}
			current.Lines = append(current.Lines, ops[idx-lead:idx]...)
		}
		keepRun = 0

		current.Lines = append(current.Lines, op)
		if op.Op == OpDelete {
			current.OldLines++
			oldLine++
		} else {
			current.NewLines++
			newLine++
		}
	}
	flush()

	return hunks
}
