package parser

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func writeModule(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestDetectModuleFiles(t *testing.T) {
	root := t.TempDir()
	writeModule(t, root, "exploits/a.rb", "# modulo a")
	writeModule(t, root, "exploits/windows/b.rb", "# modulo b")
	writeModule(t, root, "exploits/README.md", "docs")
	writeModule(t, root, "data/payload.bin", "xx")

	files, err := DetectModuleFiles(root)
	if err != nil {
		t.Fatal(err)
	}

	if len(files) != 2 {
		t.Fatalf("esperado 2 arquivos, obtido %d", len(files))
	}
	for _, f := range files {
		if f.Type != Ruby {
			t.Errorf("esperado tipo %v, obtido %v", Ruby, f.Type)
		}
		if filepath.Ext(f.Path) != ".rb" {
			t.Errorf("extensão inesperada em %s", f.Path)
		}
	}
}

func TestDetectModuleFilesRaizInvalida(t *testing.T) {
	t.Run("inexistente", func(t *testing.T) {
		_, err := DetectModuleFiles(filepath.Join(t.TempDir(), "nao-existe"))
		if !errors.Is(err, ErrNotADirectory) {
			t.Errorf("esperado ErrNotADirectory, obtido %v", err)
		}
	})

	t.Run("arquivo_como_raiz", func(t *testing.T) {
		path := writeModule(t, t.TempDir(), "a.rb", "# modulo")
		_, err := DetectModuleFiles(path)
		if !errors.Is(err, ErrNotADirectory) {
			t.Errorf("esperado ErrNotADirectory, obtido %v", err)
		}
	})
}
