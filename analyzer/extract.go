package analyzer

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"unicode/utf8"
)

var requireRE = regexp.MustCompile(`^\(require '([\p{L}\p{Nd}_-]+)\)`)

// ErrInvalidUTF8 is returned for a source line that is not valid UTF-8.
var ErrInvalidUTF8 = errors.New("invalid UTF-8")

// ListModules returns the modules directly under dir, sorted by file name.
// Subdirectories are not traversed.
func ListModules(dir string) ([]Module, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to list modules: %w", err)
	}

	var modules []Module
	for _, entry := range entries {
		name, ok := strings.CutSuffix(entry.Name(), SourceSuffix)
		if !ok || name == "" {
			continue
		}
		path := filepath.Join(dir, entry.Name())
		switch t := entry.Type(); {
		case t.IsRegular():
		case t&fs.ModeSymlink != 0 && isFile(path):
		default:
			// directories, pipes, devices and dangling links
			continue
		}
		modules = append(modules, Module{Name: name, Path: path})
	}
	return modules, nil
}

// ExtractRequires returns the features required by the module file at path,
// in file order with duplicates preserved.
func ExtractRequires(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ScanRequires(f)
}

// ScanRequires returns the features required by the module text read from r.
// Only declarations starting at the beginning of a line are recognized.
func ScanRequires(r io.Reader) ([]string, error) {
	br := bufio.NewReader(r)

	var requires []string
	for lineno := 1; ; lineno++ {
		line, err := br.ReadString('\n')
		if err != nil && err != io.EOF {
			return nil, err
		}
		if line == "" && err == io.EOF {
			return requires, nil
		}
		line = strings.TrimSuffix(strings.TrimSuffix(line, "\n"), "\r")
		if !utf8.ValidString(line) {
			return nil, fmt.Errorf("line %d: %w", lineno, ErrInvalidUTF8)
		}
		if m := requireRE.FindStringSubmatch(line); m != nil {
			requires = append(requires, m[1])
		}
		if err == io.EOF {
			return requires, nil
		}
	}
}

// Resolve decides whether the feature token is provided by a module next to
// the declaring module in declDir.
func Resolve(token, declDir string) Feature {
	f := Feature{Name: token}
	src := filepath.Join(declDir, token+SourceSuffix)
	if isFile(src) {
		f.ResolvedPath = filepath.Join(declDir, ArtifactName(token))
	}
	return f
}
