package report

import (
	"encoding/json"
	"io"

	"github.com/uamatch/uamatch"
)

type JsonReporter struct {
}

var _ uamatch.Reporter = (*JsonReporter)(nil)

func (t *JsonReporter) Write(w io.WriteCloser, results []uamatch.Result) error {
	if results == nil {
		results = []uamatch.Result{}
	}
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", " ")
	return encoder.Encode(results)
}
