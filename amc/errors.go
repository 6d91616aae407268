package amc

import "fmt"

// FormatError reports malformed content in an AMC or channel-key file.
// Line is 1-based and zero when the problem is not tied to one line.
type FormatError struct {
	Path string
	Line int
	Msg  string
}

func (e *FormatError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("%s:%d: %s", e.Path, e.Line, e.Msg)
	}
	return fmt.Sprintf("%s: %s", e.Path, e.Msg)
}
