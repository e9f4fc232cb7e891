package logger

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"go.trai.ch/zerr"
)

// errorEntry is one link of an error chain.
type errorEntry struct {
	message  string
	metadata map[string]any
}

// collectErrorEntries flattens the chain of err. zerr links contribute their own message
// and metadata; the first foreign error contributes its full text and ends the chain.
// Links without a message pass their metadata on to the next link.
func collectErrorEntries(err error) []errorEntry {
	var (
		entries []errorEntry
		pending map[string]any
	)

	for current := err; current != nil; {
		var entry errorEntry
		z, ok := current.(*zerr.Error)
		if ok {
			entry = errorEntry{message: z.Message(), metadata: z.Metadata()}
			current = errors.Unwrap(current)
		} else {
			entry = errorEntry{message: current.Error()}
			current = nil
		}

		if len(pending) > 0 {
			if entry.metadata == nil {
				entry.metadata = make(map[string]any, len(pending))
			}
			for k, v := range pending {
				if _, exists := entry.metadata[k]; !exists {
					entry.metadata[k] = v
				}
			}
			pending = nil
		}

		if entry.message == "" && current != nil {
			pending = entry.metadata
			continue
		}
		entries = append(entries, entry)
	}

	return entries
}

// formatErrorEntries renders the entries as:
//
//	Error: <message>
//	       at <file>:<line>
//	       <key>: <value>
//
//	  Caused by:
//	    → <message>
func formatErrorEntries(entries []errorEntry) string {
	var lines []string

	for i, entry := range entries {
		msgLines := strings.Split(entry.message, "\n")
		head, indent := "Error: ", "       "
		if i > 0 {
			if i == 1 {
				lines = append(lines, "", "  Caused by:")
			}
			head, indent = "    → ", "      "
		}

		lines = append(lines, head+msgLines[0])
		for _, line := range msgLines[1:] {
			lines = append(lines, indent+line)
		}
		for _, line := range metadataLines(entry.metadata) {
			lines = append(lines, indent+line)
		}
	}

	return strings.Join(lines, "\n")
}

// metadataLines renders a source location first, then the remaining keys in order.
func metadataLines(meta map[string]any) []string {
	if len(meta) == 0 {
		return nil
	}

	var lines []string
	file, hasFile := meta["file"]
	if hasFile {
		loc := fmt.Sprint(file)
		if line, ok := meta["line"]; ok {
			loc += ":" + fmt.Sprint(line)
		}
		lines = append(lines, "at "+loc)
	}

	rest := make([]string, 0, len(meta))
	for k := range meta {
		if k == "file" || (k == "line" && hasFile) {
			continue
		}
		rest = append(rest, k)
	}

	slices.Sort(rest)
	for _, k := range rest {
		lines = append(lines, fmt.Sprintf("%s: %v", k, meta[k]))
	}
	return lines
}

// mergedMetadata returns the metadata of every entry as slog attribute arguments.
// Outer links win over inner ones.
func mergedMetadata(entries []errorEntry) []any {
	merged := make(map[string]any)
	for i := len(entries) - 1; i >= 0; i-- {
		for k, v := range entries[i].metadata {
			merged[k] = v
		}
	}

	keys := make([]string, 0, len(merged))
	for k := range merged {
		keys = append(keys, k)
	}
	slices.Sort(keys)

	out := make([]any, 0, 2*len(keys))
	for _, k := range keys {
		out = append(out, k, merged[k])
	}
	return out
}
