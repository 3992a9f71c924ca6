package registry

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"gopkg.in/yaml.v3"
)

// ConfigLoadError reports a catalog document that could not be read,
// decoded, or validated. It is fatal: no detection runs without a catalog.
type ConfigLoadError struct {
	Path string
	Err  error
}

func (e *ConfigLoadError) Error() string {
	return fmt.Sprintf("load technology templates %s: %v", e.Path, e.Err)
}

func (e *ConfigLoadError) Unwrap() error {
	return e.Err
}

// Load reads, decodes, and validates a catalog document. The format is
// chosen by extension: .yaml/.yml decode as YAML, everything else as JSON.
// Any failure is wrapped in a *ConfigLoadError.
func Load(path string) (*Registry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &ConfigLoadError{Path: path, Err: err}
	}

	var doc Document
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &doc)
	default:
		err = json.Unmarshal(data, &doc)
	}
	if err != nil {
		return nil, &ConfigLoadError{Path: path, Err: err}
	}

	reg, err := FromDocument(doc)
	if err != nil {
		return nil, &ConfigLoadError{Path: path, Err: err}
	}
	return reg, nil
}

// FromDocument validates a decoded catalog and resolves defaults into an
// immutable Registry. Validation fails fast here rather than defaulting
// silently inside scoring.
func FromDocument(doc Document) (*Registry, error) {
	if err := validate(doc); err != nil {
		return nil, err
	}

	threshold := DefaultThreshold
	if doc.AutoDetection.ConfidenceThreshold != nil {
		threshold = *doc.AutoDetection.ConfidenceThreshold
	}

	enabled := true
	if doc.AutoDetection.Enabled != nil {
		enabled = *doc.AutoDetection.Enabled
	}

	methods := make(map[string]Method, len(methodOrder))
	for _, name := range methodOrder {
		mc := doc.AutoDetection.Methods[name]
		methods[name] = resolveMethod(name, mc)
	}

	return &Registry{
		doc:       doc,
		enabled:   enabled,
		threshold: threshold,
		methods:   methods,
	}, nil
}

// methodOrder fixes the iteration order of detection methods everywhere a
// stable sequence is needed (aggregation, rendering, export).
var methodOrder = []string{
	MethodFileExtensions,
	MethodConfigurationFiles,
	MethodDirectoryStructure,
}

func defaultWeight(name string) float64 {
	switch name {
	case MethodFileExtensions:
		return defaultExtensionsWeight
	case MethodConfigurationFiles:
		return defaultConfigFilesWeight
	case MethodDirectoryStructure:
		return defaultDirectoryWeight
	}
	return 0
}

func resolveMethod(name string, mc MethodConfig) Method {
	m := Method{
		Name:     name,
		Enabled:  true,
		Weight:   defaultWeight(name),
		Patterns: mc.Patterns,
	}
	if mc.Enabled != nil {
		m.Enabled = *mc.Enabled
	}
	if mc.Weight != nil {
		m.Weight = *mc.Weight
	}
	if m.Patterns == nil {
		m.Patterns = map[string][]string{}
	}
	return m
}

func validate(doc Document) error {
	if t := doc.AutoDetection.ConfidenceThreshold; t != nil && (*t < 0 || *t > 1) {
		return fmt.Errorf("confidence_threshold %v outside [0,1]", *t)
	}

	for name, mc := range doc.AutoDetection.Methods {
		if !isKnownMethod(name) {
			return fmt.Errorf("unknown detection method %q", name)
		}
		if mc.Weight != nil && *mc.Weight < 0 {
			return fmt.Errorf("detection method %q: negative weight %v", name, *mc.Weight)
		}
		for tech, patterns := range mc.Patterns {
			if tech == "" {
				return fmt.Errorf("detection method %q: empty technology id", name)
			}
			// Extension lists are plain suffixes, not globs.
			if name == MethodFileExtensions {
				continue
			}
			for _, p := range patterns {
				if !doublestar.ValidatePattern(p) {
					return fmt.Errorf("detection method %q: invalid pattern %q for %q", name, p, tech)
				}
			}
		}
	}

	for id := range doc.Templates {
		if id == "" {
			return fmt.Errorf("technology_templates: empty technology id")
		}
	}

	if doc.Fallback.Name == "" {
		return fmt.Errorf("fallback_config: missing name")
	}

	return nil
}

func isKnownMethod(name string) bool {
	for _, m := range methodOrder {
		if m == name {
			return true
		}
	}
	return false
}
