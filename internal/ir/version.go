package ir

// Version constants for the generator.
const (
	// GeneratorVersion is the bairiak generator version.
	GeneratorVersion = "0.1.0"

	// ManifestVersion is the layout manifest schema version.
	ManifestVersion = "1"
)
