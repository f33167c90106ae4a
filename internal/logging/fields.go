// Package logging provides a structured logging wrapper around charmbracelet/log.
package logging

// Field name constants for structured logging.
const (
	// Common fields.
	FieldError      = "error"
	FieldPath       = "path"
	FieldPaths      = "paths"
	FieldWorkingDir = "working_dir"
	FieldJobs       = "jobs"
	FieldConfig     = "config"

	// Document fields.
	FieldRange    = "range"
	FieldLength   = "length"
	FieldLine     = "line"
	FieldKind     = "kind"
	FieldCursor   = "cursor"
	FieldKey      = "key"
	FieldReverse  = "reverse"
	FieldBlocks   = "blocks"
	FieldSpans    = "spans"
	FieldHidden   = "hidden"
	FieldLanguage = "language"
	FieldTables   = "tables"

	// Statistics fields.
	FieldFilesDiscovered = "files_discovered"
	FieldFilesProcessed  = "files_processed"
	FieldFilesModified   = "files_modified"
	FieldDivergences     = "divergences"

	// Version fields.
	FieldVersion = "version"
	FieldCommit  = "commit"
	FieldBuilt   = "built"
)
