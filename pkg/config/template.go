package config

// Template is the commented starter written by "gomdedit init".
const Template = `# gomdedit configuration.
# Values shown are the defaults.

# Log level: debug, info, warn or error.
log_level: info

# Terminal styling: auto, always or never.
color: auto

inline:
  # Style ++underline++ spans.
  underline: true
  # Style ==highlight== spans.
  highlight: true

editor:
  # Spaces inserted by Tab (and removed by Shift+Tab) on list lines.
  list_indent: 2
  # Continue bullets, numbers, tasks and quotes on Enter.
  continue_lists: true

table:
  # Pad cells to the column width when writing tables.
  aligned: false
  # Size of a table created with "gomdedit table new".
  default_columns: 3
  default_rows: 2

# Glob patterns skipped by multi-file commands.
ignore:
  - "node_modules/**"
  - "vendor/**"

# Concurrent workers for multi-file commands; 0 means one per CPU.
jobs: 0
`
