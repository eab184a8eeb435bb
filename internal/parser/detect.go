package parser

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// ErrNotADirectory indica erro de uso: a raiz não existe ou não é diretório.
var ErrNotADirectory = errors.New("caminho não é um diretório")

// DetectModuleFiles percorre a árvore a partir de root e devolve os arquivos
// cuja extensão está em moduleSuffixes, na ordem natural do walk. A ordem não
// é contratual; só a raiz inválida é erro.
func DetectModuleFiles(root string) ([]ModuleFile, error) {
	info, err := os.Stat(root)
	if err != nil || !info.IsDir() {
		return nil, fmt.Errorf("%w: %s", ErrNotADirectory, root)
	}

	var files []ModuleFile
	err = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			// subárvore ilegível: pula e segue o scan
			return nil
		}
		if d.IsDir() {
			return nil
		}
		ext := strings.ToLower(filepath.Ext(path))
		if st, ok := moduleSuffixes[ext]; ok {
			files = append(files, ModuleFile{Type: st, Path: path})
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return files, nil
}
