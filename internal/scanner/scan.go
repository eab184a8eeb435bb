package scanner

import (
	"os"
	"strings"

	"github.com/Sena-ops/akafinder/internal/extractor"
	"github.com/Sena-ops/akafinder/internal/model"
	"github.com/Sena-ops/akafinder/internal/parser"
	"go.uber.org/zap"
)

// ScanTree lê cada módulo da árvore, extrai os pares (CVE, AKA) e acumula os
// resultados na ordem de visita dos arquivos. Arquivos ilegíveis são pulados
// (contados em Stats, logados só em debug); bytes inválidos viram U+FFFD.
func ScanTree(root string, log *zap.SugaredLogger) ([]model.ScanResult, model.Stats, error) {
	files, err := parser.DetectModuleFiles(root)
	if err != nil {
		return nil, model.Stats{}, err
	}

	var results []model.ScanResult
	var stats model.Stats

	for _, f := range files {
		raw, err := os.ReadFile(f.Path)
		if err != nil {
			stats.FilesSkipped++
			log.Debugw("Arquivo pulado", "arquivo", f.Path, "erro", err)
			continue
		}
		stats.FilesScanned++

		text := strings.ToValidUTF8(string(raw), "�")
		for _, p := range extractor.ExtractPairs(text) {
			results = append(results, model.ScanResult{File: f.Path, CVE: p.CVE, AKA: p.AKA})
		}
	}

	return results, stats, nil
}
