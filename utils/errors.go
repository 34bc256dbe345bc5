package utils

import "github.com/pkg/errors"

// The closed set of failure kinds this tool can surface. Everything fatal
// is wrapped around one of these so main can match with errors.Is and pick
// the matching exit code.
var (
	// ErrUsage means no recognized command-line token was supplied;
	// the help text should be shown.
	ErrUsage = errors.New("usage")

	// ErrArgument means a recognized token carried an invalid value.
	ErrArgument = errors.New("invalid argument")

	// ErrFormat means the board text contained no recognizable markers
	// or was not rectangular.
	ErrFormat = errors.New("invalid board format")
)
