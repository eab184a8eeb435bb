package export

import (
	"fmt"
	"io"

	"github.com/Sena-ops/akafinder/internal/model"
)

type ExportFunc func(w io.Writer, results []model.ScanResult, dedup bool) error

var formats = map[string]ExportFunc{
	"csv": WriteCSV,
	"ts": func(w io.Writer, results []model.ScanResult, _ bool) error {
		return WriteTSMap(w, results)
	},
}

func Execute(format string, w io.Writer, results []model.ScanResult, dedup bool) error {
	fn, ok := formats[format]
	if !ok {
		return fmt.Errorf("formato '%s' não suportado", format)
	}
	return fn(w, results, dedup)
}
