package labogrid

import (
	"io"
	"log"
	"os"
)

// nopCloser is for log destinations we must not close
type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// logWhere decides where to send debugging output. An empty string
// throws it away. "stdout" and "stderr" mean what they say. Anything
// else is a file name, appended to.
func logWhere(outinfo string) (*log.Logger, io.Closer, error) {
	var iowriter io.Writer
	var closer io.Closer = nopCloser{}
	switch outinfo {
	case "":
		iowriter = io.Discard
	case "stdout":
		iowriter = os.Stdout
	case "stderr":
		iowriter = os.Stderr
	default:
		fp, err := os.OpenFile(outinfo, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
		if err != nil {
			return nil, nil, err
		}
		iowriter, closer = fp, fp
	}
	prefix := progName + ": "
	return log.New(iowriter, prefix, log.Lshortfile), closer, nil
}
