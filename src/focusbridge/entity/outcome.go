package entity

import "time"

// State is a step of the bridge state machine.
type State int

const (
	StateIdle State = iota
	StateClassifying
	StateExtractingContext
	StateResolving
	StateOpening
	StateActivating

	// Terminal states.
	StateDone
	StateNoActiveApp
	StateNoDocument
	StateNoMatch
	StateOpenFailed
	// StateFailed is reached only through an unexpected failure caught at the top boundary.
	StateFailed
)

var _stateNames = map[State]string{
	StateIdle:              "idle",
	StateClassifying:       "classifying",
	StateExtractingContext: "extracting-context",
	StateResolving:         "resolving",
	StateOpening:           "opening",
	StateActivating:        "activating",
	StateDone:              "done",
	StateNoActiveApp:       "no-active-app",
	StateNoDocument:        "no-document",
	StateNoMatch:           "no-match",
	StateOpenFailed:        "open-failed",
	StateFailed:            "failed",
}

// String implements fmt.Stringer.
func (s State) String() string {
	if name, ok := _stateNames[s]; ok {
		return name
	}
	return "unknown"
}

// IsTerminal reports whether the state ends an invocation.
func (s State) IsTerminal() bool {
	return s >= StateDone
}

// NoDocumentReason distinguishes the two NoDocument notifications.
type NoDocumentReason int

const (
	NoDocumentReasonNone NoDocumentReason = iota
	// NoDocumentReasonNoWorkspace means no workspace is loaded in the source application.
	NoDocumentReasonNoWorkspace
	// NoDocumentReasonNoFile means a workspace was found but no file is active.
	NoDocumentReasonNoFile
)

// Outcome is the terminal result of one bridge invocation.
type Outcome struct {
	State       State
	Reason      NoDocumentReason
	Source      ProcessHandle
	Destination ApplicationRole
	Document    DocumentContext
	Target      Target
	// ProcessID is the destination process reported by the open step.
	ProcessID int
	Activated bool
	Duration  time.Duration
	Err       error
}
