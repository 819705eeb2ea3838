package entity

// DocumentContext is the document reference extracted from the active application.
// Empty strings and a zero line mean the value is absent.
type DocumentContext struct {
	// FilePath is either an absolute path or a bare file name.
	FilePath string `json:"filePath" zap:"filePath"`
	// WorkspaceRoot is the absolute directory of the owning workspace.
	WorkspaceRoot string `json:"workspaceRoot" zap:"workspaceRoot"`
	// Line is 1-based.
	Line int `json:"line" zap:"line"`
}

// IsEmpty reports whether every field is absent.
func (d DocumentContext) IsEmpty() bool {
	return d.FilePath == "" && d.WorkspaceRoot == "" && d.Line <= 0
}

// HasLine reports whether a usable line number is present.
func (d DocumentContext) HasLine() bool {
	return d.Line > 0
}

// Resolution is a file located in a destination application's workspace.
type Resolution struct {
	Path string `json:"path" zap:"path"`
	// ProcessID is the instance whose workspace owns Path, when the destination has instances.
	ProcessID int `json:"processId" zap:"processId"`
}

// Target is the location the activator opens in the destination application.
type Target struct {
	Path          string `json:"path" zap:"path"`
	WorkspaceRoot string `json:"workspaceRoot" zap:"workspaceRoot"`
	Line          int    `json:"line" zap:"line"`
	ProcessID     int    `json:"processId" zap:"processId"`
}
