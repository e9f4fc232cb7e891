package logger

// Exported for white-box tests of the error rendering.
var (
	CollectErrorEntries = collectErrorEntries
	FormatErrorEntries  = formatErrorEntries
)

// EntryMessages returns the messages of entries.
func EntryMessages(entries []errorEntry) []string {
	out := make([]string, len(entries))
	for i, e := range entries {
		out[i] = e.message
	}
	return out
}
