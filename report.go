package report

import (
	"errors"
	"fmt"
	"io"
)

// Sentinel errors for programmatic error handling.
var (
	ErrInvalidType        = errors.New("invalid input type")
	ErrAmbiguousAttribute = errors.New("ambiguous attribute name")
	ErrMissingSection     = errors.New("missing section")
)

// Sentinel bodies substituted when an input is valid but empty.
const (
	SentinelNoData = "No data"
	SentinelEmpty  = "Empty"
)

// Renderer is the contract shared by every formatter in this package.
// Render is a pure function of the held state: rendering the same state
// twice yields byte-identical output.
type Renderer interface {
	fmt.Stringer
	Render() string
}

// Write renders r and writes the result to w, followed by a newline.
func Write(w io.Writer, r Renderer) error {
	_, err := io.WriteString(w, r.Render()+"\n")
	return err
}
