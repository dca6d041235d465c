package report

import (
	"encoding/csv"
	"io"
	"strconv"

	"github.com/uamatch/uamatch"
)

type CsvReporter struct {
}

var _ uamatch.Reporter = (*CsvReporter)(nil)

func (r *CsvReporter) Write(w io.WriteCloser, results []uamatch.Result) error {
	if len(results) == 0 {
		return nil
	}

	var (
		cw  = csv.NewWriter(w)
		err error
	)
	columns := []string{"Line",
		"UserAgent",
		"Browser",
		"Version",
	}

	if err = cw.Write(columns); err != nil {
		return err
	}
	for _, res := range results {
		var name, version string
		if res.Browser != nil {
			name, version = res.Browser.Name, res.Browser.Version
		}
		row := []string{strconv.Itoa(res.Line),
			res.UserAgent,
			name,
			version,
		}
		if err = cw.Write(row); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}
