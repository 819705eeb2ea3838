package entity

import (
	"github.com/johnkslg/CursorVSSync/src/focusbridge/internal/errors"
)

// RolesConfigKey is the config key holding the per-role matching and launch settings.
const RolesConfigKey = "roles"

// RolesConfig holds exactly one pattern set per registered role.
type RolesConfig struct {
	TreeIDE    TreeIDEConfig    `yaml:"treeIDE"`
	FlatEditor FlatEditorConfig `yaml:"flatEditor"`
}

// TreeIDEConfig configures how the IDE is recognized and reached.
type TreeIDEConfig struct {
	ProcessName string           `yaml:"processName"`
	TitleMarker string           `yaml:"titleMarker"`
	Automation  AutomationConfig `yaml:"automation"`
}

// AutomationConfig configures the live automation registry lookup.
type AutomationConfig struct {
	MonikerPrefix string `yaml:"monikerPrefix"`
}

// FlatEditorConfig configures how the editor is recognized and launched.
type FlatEditorConfig struct {
	ProcessName string         `yaml:"processName"`
	TitleMarker string         `yaml:"titleMarker"`
	Launcher    LauncherConfig `yaml:"launcher"`
}

// LauncherConfig describes the editor command line.
type LauncherConfig struct {
	Executable      string `yaml:"executable"`
	ReuseWindowFlag string `yaml:"reuseWindowFlag"`
	GotoFlag        string `yaml:"gotoFlag"`
}

// RoleMatch is the process-name / window-title pattern pair of one role.
type RoleMatch struct {
	ProcessName string
	TitleMarker string
}

// Match returns the pattern set registered for role.
func (c RolesConfig) Match(role ApplicationRole) RoleMatch {
	switch role {
	case RoleTreeIDE:
		return RoleMatch{ProcessName: c.TreeIDE.ProcessName, TitleMarker: c.TreeIDE.TitleMarker}
	case RoleFlatEditor:
		return RoleMatch{ProcessName: c.FlatEditor.ProcessName, TitleMarker: c.FlatEditor.TitleMarker}
	default:
		return RoleMatch{}
	}
}

// Validate reports the first missing setting.
func (c RolesConfig) Validate() error {
	required := []struct {
		key   string
		value string
	}{
		{"roles.treeIDE.processName", c.TreeIDE.ProcessName},
		{"roles.treeIDE.titleMarker", c.TreeIDE.TitleMarker},
		{"roles.treeIDE.automation.monikerPrefix", c.TreeIDE.Automation.MonikerPrefix},
		{"roles.flatEditor.processName", c.FlatEditor.ProcessName},
		{"roles.flatEditor.titleMarker", c.FlatEditor.TitleMarker},
		{"roles.flatEditor.launcher.executable", c.FlatEditor.Launcher.Executable},
	}
	for _, r := range required {
		if r.value == "" {
			return &errors.InvalidConfigError{Key: r.key, Reason: "must not be empty"}
		}
	}
	return nil
}
