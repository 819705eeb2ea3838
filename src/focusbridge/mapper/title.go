// Package mapper converts between raw strings observed from the desktop and entity values.
package mapper

import (
	"strings"
)

// TitleSeparator separates the segments of an editor window title.
const TitleSeparator = " - "

// TitleToFileName extracts the file name from an editor window title rendered as
// "<file> - <folder> - <app>". It returns false when the title does not carry marker,
// meaning the window does not belong to the editor.
// Titles never carry directories, so the result is always a bare file name.
func TitleToFileName(title, marker string) (string, bool) {
	if !ContainsFold(title, marker) {
		return "", false
	}
	name, _, _ := strings.Cut(title, TitleSeparator)
	name = strings.TrimSpace(name)
	return name, name != ""
}

// ContainsFold reports whether substr is within s, ignoring case.
// An empty substr never matches.
func ContainsFold(s, substr string) bool {
	if substr == "" {
		return false
	}
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}
