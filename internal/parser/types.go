package parser

type SourceType string

const (
	Ruby SourceType = "ruby"
)

// moduleSuffixes define quais extensões de arquivo entram no scan.
// A árvore de módulos do Metasploit é Ruby.
var moduleSuffixes = map[string]SourceType{
	".rb": Ruby,
}

type ModuleFile struct {
	Type SourceType
	Path string
}
