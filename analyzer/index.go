package analyzer

import (
	"log/slog"
	"os"
	"path/filepath"

	"github.com/samber/lo"
)

// Index holds the forward and reverse dependency maps of a set of modules.
// It is immutable once built.
type Index struct {
	order    []string             // forward keys in scan order
	forward  map[string][]Feature // module -> requirements
	reverse  map[string][]string  // local feature -> dependent modules
	failures []*ExtractError
}

type indexConfig struct {
	logger *slog.Logger
}

type IndexOption func(*indexConfig)

// WithLogger sets the logger used to report modules that cannot be read.
func WithLogger(logger *slog.Logger) IndexOption {
	return func(c *indexConfig) {
		c.logger = logger
	}
}

// BuildIndex extracts and resolves the requirements of every module.
// A module whose requirements cannot be read is logged and left out of the
// index; the remaining modules are unaffected.
func BuildIndex(modules []Module, opts ...IndexOption) *Index {
	cfg := indexConfig{logger: slog.Default()}
	for _, opt := range opts {
		opt(&cfg)
	}

	idx := &Index{
		forward: make(map[string][]Feature, len(modules)),
		reverse: make(map[string][]string),
	}
	for _, m := range modules {
		tokens, err := ExtractRequires(m.Path)
		if err != nil {
			e := &ExtractError{Module: m.Name, Path: m.Path, Err: err}
			idx.failures = append(idx.failures, e)
			cfg.logger.Error("skip module", "module", m.Name, "path", m.Path, "error", err)
			continue
		}

		dir := filepath.Dir(m.Path)
		features := make([]Feature, 0, len(tokens))
		for _, token := range tokens {
			f := Resolve(token, dir)
			features = append(features, f)
			if f.Local() {
				idx.reverse[f.Name] = append(idx.reverse[f.Name], m.Name)
			}
		}
		if _, seen := idx.forward[m.Name]; !seen {
			idx.order = append(idx.order, m.Name)
		}
		idx.forward[m.Name] = features
		cfg.logger.Debug("scanned module", "module", m.Name, "requires", len(features))
	}
	return idx
}

// Modules returns the indexed module names in scan order.
func (idx *Index) Modules() []string {
	return append([]string(nil), idx.order...)
}

// Features returns the stored requirements of module, unfiltered.
func (idx *Index) Features(module string) []Feature {
	return append([]Feature(nil), idx.forward[module]...)
}

// Dependents returns the modules that require name as a local feature, in
// declaration order.
func (idx *Index) Dependents(name string) []string {
	return append([]string(nil), idx.reverse[name]...)
}

// Failures returns the modules skipped while building the index.
func (idx *Index) Failures() []*ExtractError {
	return append([]*ExtractError(nil), idx.failures...)
}

// QueryOptions controls DependenciesOf filtering.
type QueryOptions struct {
	// LocalOnly keeps only resolved features whose module file currently
	// exists directly under TargetDir.
	LocalOnly bool
	TargetDir string
}

// DependenciesOf returns the requirements of module, excluding the module
// itself. Unknown modules have no dependencies.
func (idx *Index) DependenciesOf(module string, opts QueryOptions) []Feature {
	return lo.Filter(idx.forward[module], func(f Feature, _ int) bool {
		if f.Name == module {
			return false
		}
		if !opts.LocalOnly {
			return true
		}
		return f.Local() && isFile(filepath.Join(opts.TargetDir, f.Name+SourceSuffix))
	})
}

// ToplevelModules returns the modules no other scanned module requires,
// in scan order.
func (idx *Index) ToplevelModules() []string {
	return lo.Filter(idx.order, func(name string, _ int) bool {
		_, required := idx.reverse[name]
		return !required
	})
}

func isFile(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}
