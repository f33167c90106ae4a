package engine

import (
	"fmt"

	"github.com/yaklabco/gomdedit/internal/logging"
	"github.com/yaklabco/gomdedit/pkg/edit"
	"github.com/yaklabco/gomdedit/pkg/trigger"
)

// ProcessKey asks the trigger processor whether key at cursor should be
// replaced by a structural edit. It does not change the document; the
// caller applies the returned mutation or inserts the key literally.
func (d *Document) ProcessKey(key trigger.Key, reverse bool, cursor int) (edit.Mutation, bool) {
	m, ok := d.processor.Process(d.text, d.blocks, trigger.Input{Key: key, Reverse: reverse, Cursor: cursor})
	if ok {
		d.logger.Debug("key consumed",
			logging.FieldKey, key.String(),
			logging.FieldReverse, reverse,
			logging.FieldCursor, cursor,
		)
	}
	return m, ok
}

// HandleKey processes key and applies the outcome: the structural edit when
// the key is consumed, the literal key text otherwise. It returns the new
// cursor.
func (d *Document) HandleKey(key trigger.Key, reverse bool, cursor int) (int, error) {
	m, ok := d.ProcessKey(key, reverse, cursor)
	if !ok {
		m = edit.Insert(cursor, key.Literal())
	}
	if m.IsNoop() {
		return m.Cursor, nil
	}

	if err := d.Apply(m); err != nil {
		return cursor, fmt.Errorf("handle %s: %w", key, err)
	}
	return m.Cursor, nil
}

// Type inserts text at cursor and returns the new cursor.
func (d *Document) Type(cursor int, text string) (int, error) {
	m := edit.Insert(cursor, text)
	if err := d.Apply(m); err != nil {
		return cursor, err
	}
	return m.Cursor, nil
}

// ToggleTask flips the checkbox on the given zero-based line. It reports
// false when the line is not a task item.
func (d *Document) ToggleTask(line int) (bool, error) {
	if line < 0 || line >= len(d.blocks) {
		return false, nil
	}
	m, ok := trigger.ToggleTask(d.text, d.blocks[line])
	if !ok {
		return false, nil
	}
	if err := d.Apply(m); err != nil {
		return false, fmt.Errorf("toggle task on line %d: %w", line+1, err)
	}
	return true, nil
}
