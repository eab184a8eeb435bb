package extractor

import (
	"regexp"
	"strings"
)

// Heurísticas de extração sobre texto de módulos Metasploit. Nada aqui
// interpreta Ruby: são apenas formas literais comuns, casadas por regex.
// Padrões compilados uma única vez, no init do pacote.
var (
	// entradas literais de dois elementos: ['AKA','Heartbleed'] ou ['CVE','2018-1111']
	reRef = regexp.MustCompile(`(?is)\[\s*['"](AKA|CVE)['"]\s*,\s*(?:'([^']*)'|"([^"]*)")\s*\]`)

	// 'AKA' => [ 'Nome', ... ] ou 'AKA': [ 'Nome', ... ], inclusive multilinha
	reAKABlock  = regexp.MustCompile(`(?is)['"]AKA['"]\s*(?:=>|:)\s*\[(.*?)\]`)
	reAKAString = regexp.MustCompile(`['"]([^'"]+)['"]`)

	// tokens CVE soltos em qualquer lugar do texto
	reCVEGeneric = regexp.MustCompile(`(?i)CVE[-\s_]*?(\d{4})[-\s_]?([0-9]{4,7})`)

	// IDs de advisory de fornecedor, ex: SA-CORE-2018-002
	reVendorAdvisory = regexp.MustCompile(`(?i)^[A-Z0-9]+(?:-[A-Z0-9]+)*-\d{4}-\d{2,}$`)

	reCVEPrefix    = regexp.MustCompile(`(?i)^\s*CVE[-\s_]*`)
	reSpaces       = regexp.MustCompile(`\s+`)
	reCVECompact   = regexp.MustCompile(`^(\d{4})(\d{4,7})$`)
	reCVESeparated = regexp.MustCompile(`^(\d{4})[-_]?([0-9]{4,7})$`)
)

// Pair é um par (CVE, AKA) contribuído por um único arquivo.
type Pair struct {
	CVE string
	AKA string
}

// ExtractPairs devolve os pares (CVE, AKA) encontrados no texto de um módulo.
// Só devolve algo se ao menos um candidato a AKA foi encontrado e sobreviveu
// ao filtro; todos os CVEs do arquivo compartilham o primeiro AKA válido.
func ExtractPairs(text string) []Pair {
	var akas []string
	var cves []string

	// 1) forma ['AKA','Nome'] / ['CVE','2018-1111']
	for _, loc := range reRef.FindAllStringSubmatchIndex(text, -1) {
		kind := strings.ToUpper(matchGroup(text, loc, 1))
		val := strings.TrimSpace(quotedValue(text, loc))
		if kind == "AKA" {
			akas = append(akas, val)
			continue
		}
		cves = append(cves, NormalizeCVE(val))
		// tenta resgatar um nome do comentário no fim da mesma linha, ex:
		// [ 'CVE', '2017-0143'], # EternalRomance/EternalSynergy - Type confusion
		if name := commentAlias(text, loc[1]); name != "" {
			akas = append(akas, name)
		}
	}

	// 2) forma 'AKA' => [ 'Nome', ... ] ou 'AKA': [ 'Nome', ... ]
	for _, m := range reAKABlock.FindAllStringSubmatch(text, -1) {
		for _, s := range reAKAString.FindAllStringSubmatch(m[1], -1) {
			if v := strings.TrimSpace(s[1]); v != "" {
				akas = append(akas, v)
			}
		}
	}

	// 3) tokens CVE soltos (best-effort), sem repetir os já coletados
	for _, m := range reCVEGeneric.FindAllStringSubmatch(text, -1) {
		cand := "CVE-" + m[1] + "-" + m[2]
		if !containsString(cves, cand) {
			cves = append(cves, cand)
		}
	}

	// sem AKA explícito ou derivado de comentário, não emite nada
	if len(akas) == 0 {
		return nil
	}

	aka := selectAKA(akas)
	if aka == "" {
		return nil
	}

	pairs := make([]Pair, 0, len(cves))
	for _, c := range cves {
		pairs = append(pairs, Pair{CVE: c, AKA: aka})
	}
	return pairs
}

// NormalizeCVE converte strings CVE-like para a forma 'CVE-YYYY-NNNN'
// (best-effort; nunca falha, o que não casar volta em maiúsculas).
func NormalizeCVE(raw string) string {
	s := strings.TrimSpace(raw)
	s = reCVEPrefix.ReplaceAllString(s, "")
	s = reSpaces.ReplaceAllString(s, "")
	if m := reCVECompact.FindStringSubmatch(s); m != nil {
		return "CVE-" + m[1] + "-" + m[2]
	}
	if m := reCVESeparated.FindStringSubmatch(s); m != nil {
		return "CVE-" + m[1] + "-" + m[2]
	}
	return strings.ToUpper(s)
}

// IsAKAFiltered diz se o candidato a AKA deve ser descartado:
// vazio, terminado em ".c" ou com cara de advisory de fornecedor.
func IsAKAFiltered(aka string) bool {
	a := strings.TrimSpace(aka)
	if a == "" {
		return true
	}
	if strings.HasSuffix(strings.ToLower(a), ".c") {
		return true
	}
	return reVendorAdvisory.MatchString(a)
}

// selectAKA devolve o primeiro candidato que passa no filtro, na ordem de
// descoberta; "" se nenhum sobreviver.
func selectAKA(candidates []string) string {
	for _, a := range candidates {
		if !IsAKAFiltered(a) {
			return a
		}
	}
	return ""
}

// commentAlias inspeciona o resto da linha a partir de from procurando um
// comentário introduzido por '#' ou '//' (preferindo '#'). O texto antes do
// primeiro '-' vira candidato a AKA.
func commentAlias(text string, from int) string {
	rest := text[from:]
	if i := strings.IndexByte(rest, '\n'); i >= 0 {
		rest = rest[:i]
	}

	var comment string
	if i := strings.Index(rest, "#"); i >= 0 {
		comment = rest[i+1:]
	} else if i := strings.Index(rest, "//"); i >= 0 {
		comment = rest[i+2:]
	} else {
		return ""
	}

	comment = strings.TrimSpace(comment)
	name := comment
	if i := strings.Index(comment, "-"); i >= 0 {
		name = comment[:i]
	}
	name = strings.TrimSpace(name)
	return strings.TrimRight(name, " ,;:")
}

func matchGroup(text string, loc []int, n int) string {
	if loc[2*n] < 0 {
		return ""
	}
	return text[loc[2*n]:loc[2*n+1]]
}

// quotedValue pega o segundo elemento do par, venha ele entre aspas simples
// (grupo 2) ou duplas (grupo 3).
func quotedValue(text string, loc []int) string {
	if loc[4] >= 0 {
		return matchGroup(text, loc, 2)
	}
	return matchGroup(text, loc, 3)
}

func containsString(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
