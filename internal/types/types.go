package types

import "fmt"

// Issue represents a convention violation found in the proof sources.
type Issue struct {
	Rule     string
	Filename string
	Line     int
	Column   int
	Message  string
}

func (i Issue) String() string {
	if i.Line > 0 {
		return fmt.Sprintf("%s:%d: %s", i.Filename, i.Line, i.Message)
	}
	return fmt.Sprintf("%s: %s", i.Filename, i.Message)
}
