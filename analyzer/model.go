package analyzer

import "fmt"

const (
	// SourceSuffix is the file suffix of a scanned module.
	SourceSuffix = ".el"
	// ArtifactSuffix is the suffix of the compiled file derived from a module.
	ArtifactSuffix = ".elc"
)

// Module is one scanned source file.
type Module struct {
	Name string `json:"name"` // base name without SourceSuffix
	Path string `json:"path"`
}

// Feature is a requirement declared by a module.
type Feature struct {
	Name string `json:"name"`
	// ResolvedPath is the artifact path of the sibling module providing the
	// feature, or empty when no such module exists.
	ResolvedPath string `json:"resolvedPath,omitempty"`
}

// Local reports whether the feature resolved to a sibling module.
func (f Feature) Local() bool {
	return f.ResolvedPath != ""
}

// ArtifactName returns the compiled file name of the named module.
func ArtifactName(name string) string {
	return name + ArtifactSuffix
}

// An ExtractError indicates that the requirements of a module could not be read.
type ExtractError struct {
	Module string
	Path   string
	Err    error
}

func (e *ExtractError) Error() string {
	return fmt.Sprintf("module %s (%s): %v", e.Module, e.Path, e.Err)
}

func (e *ExtractError) Unwrap() error {
	return e.Err
}
