package domain

import "go.trai.ch/zerr"

var (
	// ErrImportNotFound is returned when an import name resolves through none of the importers.
	ErrImportNotFound = zerr.New("file to import not found or unreadable")

	// ErrImportCycle is returned when a stylesheet imports itself, directly or transitively.
	ErrImportCycle = zerr.New("import cycle detected")

	// ErrFileReadFailed is returned when a stylesheet source cannot be read.
	ErrFileReadFailed = zerr.New("failed to read stylesheet")

	// ErrParseFailed is returned when a stylesheet source cannot be parsed.
	ErrParseFailed = zerr.New("failed to parse stylesheet")

	// ErrUnsupportedSyntax is returned when a parser is asked for a syntax it does not know.
	ErrUnsupportedSyntax = zerr.New("unsupported syntax")

	// ErrInconsistentIndentation is returned when an indented stylesheet dedents to an unknown level.
	ErrInconsistentIndentation = zerr.New("inconsistent indentation")

	// ErrStatFailed is returned when probing a candidate file fails for a reason other than absence.
	ErrStatFailed = zerr.New("failed to stat path")

	// ErrWalkFailed is returned when a directory entry cannot be walked.
	ErrWalkFailed = zerr.New("failed to walk directory")

	// ErrFailedToGetRoot is returned when the importer root cannot be made absolute.
	ErrFailedToGetRoot = zerr.New("failed to get absolute path of importer root")

	// ErrCacheReadFailed is returned when a persisted cache entry cannot be read.
	ErrCacheReadFailed = zerr.New("failed to read cache entry")

	// ErrCacheWriteFailed is returned when a cache entry cannot be written.
	ErrCacheWriteFailed = zerr.New("failed to write cache entry")

	// ErrCacheCreateFailed is returned when the cache directory cannot be created.
	ErrCacheCreateFailed = zerr.New("failed to create cache directory")

	// ErrCacheEncodeFailed is returned when a tree cannot be encoded for the cache.
	ErrCacheEncodeFailed = zerr.New("failed to encode cache entry")

	// ErrCacheDecodeFailed is returned when a persisted tree cannot be decoded.
	ErrCacheDecodeFailed = zerr.New("failed to decode cache entry")

	// ErrUnknownStore is returned when the configuration names an unknown cache store.
	ErrUnknownStore = zerr.New("unknown cache store, expected 'memory' or 'file'")

	// ErrConfigReadFailed is returned when the config file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read config file")

	// ErrConfigParseFailed is returned when the config file cannot be parsed.
	ErrConfigParseFailed = zerr.New("failed to parse config file")

	// ErrInvalidStyle is returned when the configuration names an unknown output style.
	ErrInvalidStyle = zerr.New("invalid output style, expected one of nested, expanded, compact, compressed")

	// ErrInvalidIgnorePattern is returned when the configuration holds a malformed ignore pattern.
	ErrInvalidIgnorePattern = zerr.New("invalid ignore pattern")

	// ErrUnknownFormat is returned when a command is asked for an unknown output format.
	ErrUnknownFormat = zerr.New("unknown output format, expected 'text' or 'json'")

	// ErrNoEntriesSpecified is returned when a command is run without entry stylesheets.
	ErrNoEntriesSpecified = zerr.New("no entry stylesheets specified")
)
