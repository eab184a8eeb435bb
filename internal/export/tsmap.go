package export

import (
	"fmt"
	"io"
	"strings"

	"github.com/Sena-ops/akafinder/internal/model"
)

// WriteTSMap gera a declaração TypeScript cveToNameMap. Sempre deduplica por
// CVE (primeira ocorrência vence); aspas simples no AKA são escapadas.
func WriteTSMap(w io.Writer, results []model.ScanResult) error {
	var b strings.Builder
	b.WriteString("// generated from rapid7/metasploit-framework modules\n")
	b.WriteString("export const cveToNameMap: Record<string,string> = {\n")

	seen := map[string]bool{}
	for _, r := range results {
		if r.CVE == "" || seen[r.CVE] {
			continue
		}
		seen[r.CVE] = true
		aka := strings.ReplaceAll(r.AKA, "'", "\\'")
		fmt.Fprintf(&b, "  '%s': '%s',\n", r.CVE, aka)
	}

	b.WriteString("};\n")
	_, err := io.WriteString(w, b.String())
	return err
}
