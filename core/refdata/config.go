package refdata

// Config holds configuration for the reference tables.
type Config struct {
	// Source selects where the tables are read from: "storage" or "dir".
	Source string `mapstructure:"source" default:"dir"`
	// Dir is the local directory used when Source is "dir".
	Dir string `mapstructure:"dir" default:"data"`
	// Prefix is the object key prefix used when Source is "storage".
	Prefix string `mapstructure:"prefix" default:"reference/"`
}

const (
	SourceStorage = "storage"
	SourceDir     = "dir"
)

// IsValidSource checks if the configured source is known.
func (c Config) IsValidSource() bool {
	switch c.Source {
	case SourceStorage, SourceDir:
		return true
	default:
		return false
	}
}
