package model

// ScanResult é uma linha da tabela final: um CVE normalizado pareado com o
// apelido (AKA) escolhido para o arquivo onde ele foi encontrado.
type ScanResult struct {
	File string // caminho do módulo escaneado
	CVE  string // ex: "CVE-2014-0160" (normalizado, best-effort)
	AKA  string // apelido humano, ex: "Heartbleed"
}

// Stats acumula contadores do scan para diagnóstico; falhas de leitura não
// abortam o scan, mas ficam visíveis aqui.
type Stats struct {
	FilesScanned int // arquivos lidos e processados
	FilesSkipped int // arquivos pulados por erro de leitura
}
