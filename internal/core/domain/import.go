package domain

import "path/filepath"

// ResolvedImport is the concrete file an import name resolved to.
type ResolvedImport struct {
	// Path is the absolute, cleaned path of the stylesheet.
	Path string
	// Syntax is the syntax implied by the file extension.
	Syntax Syntax
}

// ImportRequest is produced when the expander meets an import statement.
type ImportRequest struct {
	// Name is the logical name written in the source.
	Name string
	// Base is the importing file, or empty when searching from the importer root.
	Base string
	// Options are the options of the importing tree.
	Options *Options
}

// SearchDir returns the directory a relative search starts from.
func (r ImportRequest) SearchDir() string {
	if r.Base == "" {
		return ""
	}
	return filepath.Dir(r.Base)
}
