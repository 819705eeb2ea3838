// Package entity contains the domain types shared by the focus bridge components.
package entity

type keyType string

// InvocationContextKey indicates the key used to carry the invocation UUID in the context.
const InvocationContextKey keyType = "InvocationUUID"

// ApplicationRole identifies which side of the bridge an application plays.
type ApplicationRole int

const (
	// RoleUnknown is the zero value and never matches a window.
	RoleUnknown ApplicationRole = iota
	// RoleTreeIDE is the project/solution based IDE reachable through live automation.
	RoleTreeIDE
	// RoleFlatEditor is the file-at-a-time editor identified through its window title.
	RoleFlatEditor
)

// Roles returns the registered roles in classification priority order.
// The IDE comes first because its context extraction is richer.
func Roles() []ApplicationRole {
	return []ApplicationRole{RoleTreeIDE, RoleFlatEditor}
}

// String implements fmt.Stringer.
func (r ApplicationRole) String() string {
	switch r {
	case RoleTreeIDE:
		return "tree-ide"
	case RoleFlatEditor:
		return "flat-editor"
	default:
		return "unknown"
	}
}

// Counterpart returns the role on the other side of the bridge.
func (r ApplicationRole) Counterpart() ApplicationRole {
	switch r {
	case RoleTreeIDE:
		return RoleFlatEditor
	case RoleFlatEditor:
		return RoleTreeIDE
	default:
		return RoleUnknown
	}
}

// ProcessHandle identifies a live process classified into a role.
// It is only meaningful while the process exists and is never cached across invocations.
type ProcessHandle struct {
	ProcessID int             `json:"processId" zap:"processId"`
	Role      ApplicationRole `json:"role" zap:"role"`
}
