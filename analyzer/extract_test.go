package analyzer

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScanRequires(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		expected []string
	}{
		{"empty", "", nil},
		{"single", "(require 'cl-lib)\n", []string{"cl-lib"}},
		{"order and duplicates", "(require 'a)\n(require 'b)\n(require 'a)\n", []string{"a", "b", "a"}},
		{"trailing text after declaration", "(require 'subr-x) ; strings\n", []string{"subr-x"}},
		{"leading whitespace", "  (require 'a)\n", nil},
		{"inside other form", "(eval-when-compile (require 'a))\n", nil},
		{"optional arguments", "(require 'a nil t)\n", nil},
		{"unquoted", "(require a)\n", nil},
		{"invalid character", "(require 'a.b)\n", nil},
		{"underscore and digits", "(require 'foo_2)\n", []string{"foo_2"}},
		{"unicode letters", "(require 'ñandú)\n", []string{"ñandú"}},
		{"connector punctuation", "(require 'a‿b)\n", nil},
		{"crlf", "(require 'a)\r\n", []string{"a"}},
		{"no final newline", ";;; x\n(require 'last)", []string{"last"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ScanRequires(strings.NewReader(tt.text))
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestScanRequiresInvalidUTF8(t *testing.T) {
	_, err := ScanRequires(strings.NewReader("(require 'a)\n\xff\xfe\n"))
	require.ErrorIs(t, err, ErrInvalidUTF8)
	assert.Contains(t, err.Error(), "line 2")
}

func TestScanRequiresLongLine(t *testing.T) {
	text := "(require 'b)\n;; " + strings.Repeat("x", 2<<20) + "\n(require 'c)\n"
	got, err := ScanRequires(strings.NewReader(text))
	require.NoError(t, err)
	assert.Equal(t, []string{"b", "c"}, got)
}

func TestExtractRequiresMissingFile(t *testing.T) {
	_, err := ExtractRequires(filepath.Join(t.TempDir(), "missing.el"))
	require.Error(t, err)
}

func TestListModules(t *testing.T) {
	dir := writeArchive(t, `
-- b.el --
-- a.el --
-- a.elc --
-- notes.txt --
-- .el --
-- sub/c.el --
`)

	modules, err := ListModules(dir)
	require.NoError(t, err)
	assert.Equal(t, []Module{
		{Name: "a", Path: filepath.Join(dir, "a.el")},
		{Name: "b", Path: filepath.Join(dir, "b.el")},
	}, modules)
}

func TestListModulesMissingDir(t *testing.T) {
	_, err := ListModules(filepath.Join(t.TempDir(), "nope"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to list modules")
}

func TestResolve(t *testing.T) {
	dir := writeArchive(t, `
-- a.el --
-- b.el --
`)

	assert.Equal(t, Feature{Name: "b", ResolvedPath: filepath.Join(dir, "b.elc")}, Resolve("b", dir))

	ext := Resolve("cl-lib", dir)
	assert.Equal(t, "cl-lib", ext.Name)
	assert.False(t, ext.Local())
}
