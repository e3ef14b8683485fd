package config

// ProjectConfig holds per-project settings for a single site root.
// This allows customizing generation behavior per project.
type ProjectConfig struct {
	// Template is the template file name inside the project root.
	// If empty, DefaultTemplateName is used.
	Template string `yaml:"template,omitempty"`

	// Output is the default output path for generated pages.
	// If empty, generated HTML is printed to stdout.
	Output string `yaml:"output,omitempty"`

	// Title is the default page title when none is supplied.
	Title string `yaml:"title,omitempty"`

	// ServePort overrides the preview server port for this project.
	// If zero, the global port is used.
	ServePort int `yaml:"servePort,omitempty"`
}

// File represents the structure of the .pagegen configuration file.
type File struct {
	// Projects maps project root paths to their configurations.
	// Keys should be absolute paths to scanned roots.
	Projects map[string]ProjectConfig `yaml:"projects,omitempty"`

	// Defaults contains settings applied to all projects unless
	// overridden in the project-specific configuration.
	Defaults ProjectConfig `yaml:"defaults,omitempty"`
}

// GetProjectConfig returns the configuration for a project root.
// It merges the project-specific configuration with defaults.
func (f *File) GetProjectConfig(root string) ProjectConfig {
	// Start with defaults
	result := f.Defaults

	// Override with project-specific configuration if present
	if pc, ok := f.Projects[root]; ok {
		if pc.Template != "" {
			result.Template = pc.Template
		}
		if pc.Output != "" {
			result.Output = pc.Output
		}
		if pc.Title != "" {
			result.Title = pc.Title
		}
		if pc.ServePort != 0 {
			result.ServePort = pc.ServePort
		}
	}

	return result
}
