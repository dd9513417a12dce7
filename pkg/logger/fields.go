package logger

// Standard field names for structured logging. Use these instead of raw
// strings so that log lines from different packages can be grepped together.
const (
	// Where in the input
	FieldFile   = "file"
	FieldLine   = "line"
	FieldOffset = "offset"
	FieldFormat = "format"

	// Counts and sizes
	FieldCount   = "count"
	FieldSkipped = "skipped"
	FieldSize    = "size"

	// Identity
	FieldRunID  = "run_id"
	FieldKey    = "key"
	FieldValue  = "value"
	FieldDigest = "digest"

	// Errors
	FieldError = "error"
)
