package labogrid

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/andrew-torda/labogrid/pkg/common"
)

// UsageError means the command line made no sense. Err may hold the
// problem found by the flag parser or the config reader.
type UsageError struct {
	Msg string
	Err error
}

func (e *UsageError) Error() string {
	if e.Err != nil {
		return e.Msg + ": " + e.Err.Error()
	}
	return e.Msg
}

func (e *UsageError) Unwrap() error { return e.Err }

func usageErrorf(format string, a ...any) *UsageError {
	return &UsageError{Msg: fmt.Sprintf(format, a...)}
}

// ExitCode maps an error from a run onto a process exit status
func ExitCode(err error) int {
	if err == nil {
		return common.ExitSuccess
	}
	var uerr *UsageError
	if errors.As(err, &uerr) {
		return common.ExitUsageError
	}
	return common.ExitFailure
}

// PrintError writes the message for a failed run. Continuation lines
// of the message are indented under the first.
func PrintError(w io.Writer, err error) {
	msg := strings.ReplaceAll(err.Error(), "\n", "\n    ")
	fmt.Fprintln(w, progName)
	fmt.Fprintln(w, branch+msg)
}
