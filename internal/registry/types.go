package registry

// Detection method names as they appear in the catalog document.
const (
	MethodFileExtensions     = "file_extensions"
	MethodConfigurationFiles = "configuration_files"
	MethodDirectoryStructure = "directory_structure"
)

// Default weights applied when the catalog omits a method's weight.
// Configuration files carry the most weight: a pom.xml or go.mod is a
// stronger indicator than raw extension counts.
const (
	DefaultThreshold         = 0.7
	defaultExtensionsWeight  = 0.3
	defaultConfigFilesWeight = 0.4
	defaultDirectoryWeight   = 0.3
)

// Document is the on-disk technology template catalog. Optional scalar
// fields are pointers so that "absent" and "explicitly zero/false" can be
// told apart during validation; after FromDocument they are resolved into
// concrete values on the Registry.
type Document struct {
	AutoDetection AutoDetection                `json:"auto_detection" yaml:"auto_detection"`
	Templates     map[string]TechnologyProfile `json:"technology_templates" yaml:"technology_templates"`
	Fallback      TechnologyProfile            `json:"fallback_config" yaml:"fallback_config"`
}

// AutoDetection configures the detection pass itself.
type AutoDetection struct {
	Enabled             *bool                   `json:"enabled,omitempty" yaml:"enabled,omitempty"`
	ConfidenceThreshold *float64                `json:"confidence_threshold,omitempty" yaml:"confidence_threshold,omitempty"`
	Methods             map[string]MethodConfig `json:"detection_methods" yaml:"detection_methods"`
}

// MethodConfig configures one detection method: whether it participates in
// the weighted vote, its weight, and its per-technology marker patterns.
type MethodConfig struct {
	Enabled  *bool               `json:"enabled,omitempty" yaml:"enabled,omitempty"`
	Weight   *float64            `json:"weight,omitempty" yaml:"weight,omitempty"`
	Patterns map[string][]string `json:"patterns" yaml:"patterns"`
}

// TechnologyProfile is the pattern and configuration bundle attached to one
// technology. Profiles are immutable once the catalog is loaded.
type TechnologyProfile struct {
	Name              string                      `json:"name" yaml:"name"`
	Description       string                      `json:"description,omitempty" yaml:"description,omitempty"`
	FilePatterns      map[string]FilePatternGroup `json:"file_patterns,omitempty" yaml:"file_patterns,omitempty"`
	RegexPatterns     map[string][]string         `json:"regex_patterns,omitempty" yaml:"regex_patterns,omitempty"`
	IntegrationPoints map[string][]string         `json:"integration_points,omitempty" yaml:"integration_points,omitempty"`
}

// FilePatternGroup is one named group of file patterns inside a profile,
// e.g. "business_logic" or "screen_definitions".
type FilePatternGroup struct {
	Patterns     []string `json:"patterns,omitempty" yaml:"patterns,omitempty"`
	Directories  []string `json:"directories,omitempty" yaml:"directories,omitempty"`
	AnalysisType string   `json:"analysis_type,omitempty" yaml:"analysis_type,omitempty"`
	Description  string   `json:"description,omitempty" yaml:"description,omitempty"`
}

// Method is a resolved detection method with defaults applied.
type Method struct {
	Name     string
	Enabled  bool
	Weight   float64
	Patterns map[string][]string
}
