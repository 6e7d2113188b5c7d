package logging

// Field names for structured log entries.
const (
	FieldError      = "error"
	FieldPath       = "path"
	FieldWorkingDir = "working_dir"
	FieldConfig     = "config"

	// Essay fields.
	FieldFlavor  = "flavor"
	FieldParser  = "parser"
	FieldBytes   = "bytes"
	FieldVersion = "version"

	// Issue workflow fields.
	FieldIssues      = "issues"
	FieldHighlights  = "highlights"
	FieldRanges      = "ranges"
	FieldDecorations = "decorations"
	FieldIssueID     = "issue_id"
	FieldStatus      = "status"
	FieldBackup      = "backup"

	// Outline fields.
	FieldSegments = "segments"
	FieldMarkers  = "markers"
	FieldScroll   = "scroll"
	FieldWidth    = "width"

	// Build fields.
	FieldCommit = "commit"
	FieldBuilt  = "built"
)
