package uamatch

import "io"

// Reporter writes batch detection results in some output format.
type Reporter interface {
	Write(w io.WriteCloser, results []Result) error
}
