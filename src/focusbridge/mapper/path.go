package mapper

import (
	"strconv"
	"strings"
)

// Paths reported by the desktop applications are Windows paths regardless of the
// platform this code runs on, so both separators are honored.
const _separators = `\/`

// BaseName returns the last element of p.
func BaseName(p string) string {
	if i := strings.LastIndexAny(p, _separators); i >= 0 {
		return p[i+1:]
	}
	return p
}

// DirName returns everything before the last element of p, or "" for a bare name.
// A drive root keeps its trailing separator.
func DirName(p string) string {
	i := strings.LastIndexAny(p, _separators)
	if i < 0 {
		return ""
	}
	dir := p[:i]
	if dir == "" || strings.HasSuffix(dir, ":") {
		return p[:i+1]
	}
	return dir
}

// IsBareFileName reports whether p has no directory component.
func IsBareFileName(p string) bool {
	return p != "" && !strings.ContainsAny(p, _separators)
}

// GotoTarget renders the editor's go-to argument, "<path>:<line>" when a line is known.
func GotoTarget(p string, line int) string {
	if line <= 0 {
		return p
	}
	return p + ":" + strconv.Itoa(line)
}
