package config

// Quillfile represents the structure of the quill.yaml configuration file.
type Quillfile struct {
	Version   string   `yaml:"version"`
	Root      string   `yaml:"root"`
	LoadPaths []string `yaml:"load_paths"`
	Style     string   `yaml:"style"`
	Ignore    []string `yaml:"ignore"`
	Cache     CacheDTO `yaml:"cache"`
}

// CacheDTO represents the cache section of the configuration.
type CacheDTO struct {
	Store    string `yaml:"store"`
	Dir      string `yaml:"dir"`
	Compress bool   `yaml:"compress"`
}
