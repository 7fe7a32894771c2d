package app

// Config holds runtime configuration for the application.
type Config struct {
	// InputDir holds one source file per degree program.
	InputDir   string
	OutputPath string
	// OutputPDFPath enables the PDF catalogue when non-empty.
	OutputPDFPath string

	// SchemaPath points at a YAML or JSON field schema; empty uses the
	// compiled-in table.
	SchemaPath string
	Extensions []string

	Workers  int
	Manifest bool
	Verbose  bool
}
