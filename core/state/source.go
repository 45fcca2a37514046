package state

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Format selects the codec used to parse a state document.
type Format string

const (
	// FormatAuto picks the codec from the file or object extension.
	FormatAuto Format = ""
	// FormatYAML parses the document as YAML.
	FormatYAML Format = "yaml"
	// FormatJSON parses the document as JSON.
	FormatJSON Format = "json"
)

// Source supplies one side of a reconciliation run as a parsed Node tree.
// Implementations wrap whatever holds the document: a local file, an object
// store, or eventually the device management API itself.
type Source interface {
	// Load reads and parses the document. Failures are *LoadError.
	Load(ctx context.Context) (*Node, error)
}

// LoadError reports that a state document could not be obtained or parsed.
// It is fatal to a reconciliation run: no comparison happens without both
// trees.
type LoadError struct {
	// Origin describes the backing document, e.g. a file path or object key.
	Origin string
	// Err is the underlying failure.
	Err error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("load state from %s: %v", e.Origin, e.Err)
}

func (e *LoadError) Unwrap() error { return e.Err }

// FileSource loads a state document from the local filesystem.
type FileSource struct {
	// Path is the document location.
	Path string
	// Format overrides codec detection; FormatAuto uses the extension.
	Format Format
}

// NewFileSource returns a file source. Pass FormatAuto to pick the codec
// from the file extension.
func NewFileSource(path string, format Format) *FileSource {
	return &FileSource{Path: path, Format: format}
}

// Load implements Source.
func (s *FileSource) Load(ctx context.Context) (*Node, error) {
	data, err := os.ReadFile(s.Path)
	if err != nil {
		return nil, &LoadError{Origin: s.Path, Err: err}
	}
	node, err := Decode(data, s.Format, s.Path)
	if err != nil {
		return nil, &LoadError{Origin: s.Path, Err: err}
	}
	return node, nil
}

// Decode parses data with the given format, falling back to the extension of
// name when the format is FormatAuto. The top level must decode to a mapping;
// device configurations are always keyed documents.
func Decode(data []byte, format Format, name string) (*Node, error) {
	f := format
	if f == FormatAuto {
		f = detectFormat(name)
	}

	var (
		node *Node
		err  error
	)
	switch f {
	case FormatJSON:
		node, err = DecodeJSON(data)
	case FormatYAML:
		node, err = DecodeYAML(data)
	default:
		return nil, fmt.Errorf("cannot determine document format for %q", name)
	}
	if err != nil {
		return nil, err
	}
	if node.Kind != KindMapping {
		return nil, fmt.Errorf("top-level document must be a mapping, got %s", node.Kind)
	}
	return node, nil
}

func detectFormat(name string) Format {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".yaml", ".yml":
		return FormatYAML
	case ".json":
		return FormatJSON
	default:
		return FormatAuto
	}
}
