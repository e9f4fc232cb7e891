package domain

const (
	// ConfigFileName is the name of the project configuration file.
	ConfigFileName = "quill.yaml"

	// StoreMemory selects the transient in-process cache store.
	StoreMemory = "memory"
	// StoreFile selects the on-disk cache store.
	StoreFile = "file"

	// DefaultCacheDir is the cache directory used by the file store, relative to the root.
	DefaultCacheDir = ".quill-cache"
)

// Config is the resolved project configuration.
type Config struct {
	// Root is the absolute root directory of the root importer.
	Root string
	// LoadPaths are extra absolute roots searched in order after Root.
	LoadPaths []string
	// Style is the requested output style, carried in Options.
	Style string
	// Ignore holds base-name patterns skipped when walking directory entries.
	Ignore []string
	// Cache configures the parse cache store.
	Cache CacheConfig
}

// CacheConfig configures the parse cache store.
type CacheConfig struct {
	// Store is StoreMemory or StoreFile.
	Store string
	// Dir is the absolute directory of the file store.
	Dir string
	// Compress enables zstd compression of file store entries.
	Compress bool
}

// DefaultConfig returns the configuration used when no config file exists.
func DefaultConfig(root string) *Config {
	return &Config{
		Root:  root,
		Style: "nested",
		Cache: CacheConfig{
			Store: StoreMemory,
		},
	}
}
