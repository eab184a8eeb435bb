package cmd

import (
	"errors"
	"os"

	"github.com/Sena-ops/akafinder/internal/export"
	"github.com/Sena-ops/akafinder/internal/logging"
	"github.com/Sena-ops/akafinder/internal/parser"
	"github.com/Sena-ops/akafinder/internal/scanner"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var tsOutput bool
var dedupCVE bool
var debugMode bool

var logger *zap.SugaredLogger

var scanCmd = &cobra.Command{
	Use:   "scan [modules-dir]",
	Short: "Escaneia uma árvore de módulos em busca de pares CVE -> AKA",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		logger = logging.InitLogger(debugMode)
		defer logger.Sync()

		root := args[0]
		logger.Debugf("Escaneando diretório: %s", root)

		results, stats, err := scanner.ScanTree(root, logger)
		if err != nil {
			if errors.Is(err, parser.ErrNotADirectory) {
				logger.Errorf("ERRO: %s não é um diretório", root)
				os.Exit(2)
			}
			logger.Errorw("Erro ao escanear", "erro", err)
			os.Exit(1)
		}
		logger.Debugf("Arquivos lidos: %d, pulados: %d, linhas: %d",
			stats.FilesScanned, stats.FilesSkipped, len(results))

		// Sem resultados não há saída nenhuma, nem cabeçalho CSV
		if len(results) == 0 {
			return
		}

		format := "csv"
		if tsOutput {
			format = "ts"
		}
		if err := export.Execute(format, os.Stdout, results, dedupCVE); err != nil {
			logger.Errorw("Erro ao gerar saída", "erro", err)
			os.Exit(1)
		}
	},
}

func init() {
	scanCmd.Flags().BoolVar(&tsOutput, "ts", false, "Gera o mapa TypeScript cveToNameMap em vez de CSV")
	scanCmd.Flags().BoolVar(&dedupCVE, "dedup", false, "Deduplica por CVE na saída CSV (primeira ocorrência vence)")
	scanCmd.Flags().BoolVar(&debugMode, "debug", false, "Habilita logs em nível debug")
	rootCmd.AddCommand(scanCmd)
}
