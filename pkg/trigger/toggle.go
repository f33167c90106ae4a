package trigger

import (
	"github.com/yaklabco/gomdedit/pkg/block"
	"github.com/yaklabco/gomdedit/pkg/edit"
	"github.com/yaklabco/gomdedit/pkg/textpos"
)

// ToggleTask flips the checkbox of a task line between "[ ]" and "[x]".
// The box is expected right after the indentation, a '-' or '*' marker
// and one space; any other layout is not handled.
func ToggleTask(text string, line block.LineBlock) (edit.Mutation, bool) {
	if line.Type.Kind != block.KindTaskList {
		return edit.Mutation{}, false
	}

	content := line.Content(text)
	marker := block.ParseMarker(content, line.Type)
	box := len(marker.Indent) + len("- ")
	if box+3 > len(content) {
		return edit.Mutation{}, false
	}

	bullet := content[len(marker.Indent)]
	if (bullet != '-' && bullet != '*') || content[box-1] != ' ' {
		return edit.Mutation{}, false
	}

	var mark string
	switch content[box : box+3] {
	case "[ ]":
		mark = "x"
	case "[x]", "[X]":
		mark = " "
	default:
		return edit.Mutation{}, false
	}

	at := line.Range.Start + box + 1
	return edit.Replace(textpos.NewRange(at, at+1), mark), true
}
