package export

import (
	"encoding/csv"
	"io"

	"github.com/Sena-ops/akafinder/internal/model"
)

// WriteCSV escreve o cabeçalho file,cve,aka e uma linha por resultado, na
// ordem de coleta. Com dedup, só a primeira linha de cada CVE é emitida.
func WriteCSV(w io.Writer, results []model.ScanResult, dedup bool) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"file", "cve", "aka"}); err != nil {
		return err
	}

	seen := map[string]bool{}
	for _, r := range results {
		if dedup {
			if seen[r.CVE] {
				continue
			}
			seen[r.CVE] = true
		}
		if err := cw.Write([]string{r.File, r.CVE, r.AKA}); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}
