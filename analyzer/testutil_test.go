package analyzer

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/tools/txtar"
)

// writeArchive materializes a txtar archive into a fresh temporary directory.
func writeArchive(t *testing.T, archive string) string {
	t.Helper()
	dir := t.TempDir()
	for _, f := range txtar.Parse([]byte(archive)).Files {
		path := filepath.Join(dir, filepath.FromSlash(f.Name))
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, f.Data, 0o644))
	}
	return dir
}

func buildDir(t *testing.T, dir string) *Index {
	t.Helper()
	modules, err := ListModules(dir)
	require.NoError(t, err)
	return BuildIndex(modules)
}

func featureNames(features []Feature) []string {
	names := []string{}
	for _, f := range features {
		names = append(names, f.Name)
	}
	return names
}
