package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/yaklabco/gomdedit/internal/logging"
	"github.com/yaklabco/gomdedit/pkg/config"
	"github.com/yaklabco/gomdedit/pkg/engine"
	"github.com/yaklabco/gomdedit/pkg/fsutil"
	"github.com/yaklabco/gomdedit/pkg/trigger"
)

// Script is a recorded editing session replayed by "gomdedit replay".
type Script struct {
	// Text is the starting document. It is ignored when a FILE argument
	// is given.
	Text string `yaml:"text"`

	// Cursor is the starting byte offset. Nil means the end of the text.
	Cursor *int `yaml:"cursor"`

	Steps []Step `yaml:"steps"`
}

// Step is one action. Exactly one field must be set.
type Step struct {
	// Key is a key name accepted by trigger.ParseKey, e.g. "enter" or
	// "shift+tab".
	Key string `yaml:"key,omitempty"`

	// Type inserts literal text at the cursor.
	Type string `yaml:"type,omitempty"`

	// Toggle flips the checkbox on a 1-based line.
	Toggle int `yaml:"toggle,omitempty"`

	// Move places the cursor at a byte offset.
	Move *int `yaml:"move,omitempty"`
}

var errBadStep = errors.New("each step needs exactly one of key, type, toggle or move")

// ParseScript decodes a YAML script and validates its steps.
func ParseScript(data []byte) (*Script, error) {
	var script Script
	if err := yaml.Unmarshal(data, &script); err != nil {
		return nil, fmt.Errorf("%w: parse script: %w", ErrInvalidUsage, err)
	}

	for i, step := range script.Steps {
		set := 0
		for _, ok := range []bool{step.Key != "", step.Type != "", step.Toggle != 0, step.Move != nil} {
			if ok {
				set++
			}
		}
		if set != 1 {
			return nil, fmt.Errorf("%w: step %d: %w", ErrInvalidUsage, i+1, errBadStep)
		}
		if step.Key != "" {
			if _, _, err := trigger.ParseKey(step.Key); err != nil {
				return nil, fmt.Errorf("%w: step %d: %w", ErrInvalidUsage, i+1, err)
			}
		}
	}

	return &script, nil
}

// Replay runs the script's steps against doc starting at cursor and
// returns the final cursor.
func (s *Script) Replay(doc *engine.Document, cursor int) (int, error) {
	for i, step := range s.Steps {
		var err error
		switch {
		case step.Key != "":
			key, reverse, _ := trigger.ParseKey(step.Key)
			cursor, err = doc.HandleKey(key, reverse, cursor)
		case step.Type != "":
			cursor, err = doc.Type(cursor, step.Type)
		case step.Toggle != 0:
			_, err = doc.ToggleTask(step.Toggle - 1)
		case step.Move != nil:
			if *step.Move < 0 || *step.Move > doc.Len() {
				err = fmt.Errorf("cursor %d outside document of length %d", *step.Move, doc.Len())
			} else {
				cursor = *step.Move
			}
		}
		if err != nil {
			return cursor, fmt.Errorf("step %d: %w", i+1, err)
		}
	}

	return cursor, nil
}

type replayFlags struct {
	write bool
}

func newReplayCommand(flags *globalFlags) *cobra.Command {
	rf := &replayFlags{}

	cmd := &cobra.Command{
		Use:   "replay SCRIPT [FILE]",
		Short: "Replay keystrokes against a document",
		Long: `Replay a YAML script of keystrokes against a document and print the
resulting text. Enter and Tab go through the same list, quote and table
handling as in the editor.

A script looks like:

  text: "- [ ] milk"
  steps:
    - key: enter
    - type: eggs
    - key: enter
    - key: enter        # exits the list
    - toggle: 1         # checks line 1

When FILE is given it replaces the script's text, and --write saves the
result back to it.`,
		Args: usageArgs(cobra.RangeArgs(1, 2)),
		RunE: func(cmd *cobra.Command, args []string) error {
			sess, err := newSession(cmd, flags, &config.Config{Write: rf.write})
			if err != nil {
				return err
			}

			data, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("read script: %w", err)
			}
			script, err := ParseScript(data)
			if err != nil {
				return err
			}

			var doc *engine.Document
			var info *fsutil.FileInfo
			if len(args) == 2 {
				doc, info, err = sess.openDocument(args[1])
				if err != nil {
					return err
				}
			} else {
				if rf.write {
					return fmt.Errorf("%w: --write needs a FILE argument", ErrInvalidUsage)
				}
				doc = engine.New(script.Text, sess.engineOptions())
			}

			cursor := doc.Len()
			if script.Cursor != nil {
				cursor = *script.Cursor
			}
			cursor, err = script.Replay(doc, cursor)
			if err != nil {
				return fmt.Errorf("replay: %w", err)
			}
			sess.logger.Debug("replay finished", logging.FieldCursor, cursor, logging.FieldLength, doc.Len())

			if sess.cfg.Write && info != nil {
				if _, err := fsutil.Rewrite(sess.ctx, info, []byte(doc.Text())); err != nil {
					return err
				}
				return nil
			}
			return renderDocument(sess.out, doc)
		},
	}

	cmd.Flags().BoolVarP(&rf.write, "write", "w", false, "save the result back to FILE")

	return cmd
}
