package bridge

import (
	"bytes"
	"context"
	"os/exec"
	"testing"
	"time"

	"github.com/gofrs/uuid"
	focusconfig "github.com/johnkslg/CursorVSSync/src/focusbridge/config"
	"github.com/johnkslg/CursorVSSync/src/focusbridge/controller/activator"
	"github.com/johnkslg/CursorVSSync/src/focusbridge/controller/classifier"
	documentcontext "github.com/johnkslg/CursorVSSync/src/focusbridge/controller/document-context"
	workspaceresolver "github.com/johnkslg/CursorVSSync/src/focusbridge/controller/workspace-resolver"
	"github.com/johnkslg/CursorVSSync/src/focusbridge/entity"
	"github.com/johnkslg/CursorVSSync/src/focusbridge/gateway/automation/automationmock/helpers"
	"github.com/johnkslg/CursorVSSync/src/focusbridge/gateway/notifier"
	"github.com/johnkslg/CursorVSSync/src/focusbridge/gateway/notifier/notifiermock"
	"github.com/johnkslg/CursorVSSync/src/focusbridge/gateway/window"
	"github.com/johnkslg/CursorVSSync/src/focusbridge/gateway/window/windowmock"
	"github.com/johnkslg/CursorVSSync/src/focusbridge/internal/clock"
	"github.com/johnkslg/CursorVSSync/src/focusbridge/internal/executor/executormock"
	"github.com/johnkslg/CursorVSSync/src/focusbridge/mapper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	tally "github.com/uber-go/tally/v4"
	"go.uber.org/config"
	"go.uber.org/goleak"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

const (
	_prefix     = "!VisualStudio.DTE"
	_title      = "Cursor VS Sync"
	_foreground = window.Handle(0x100)
	_ideWindow  = window.Handle(0x200)
	_ide2Window = window.Handle(0x300)
	_mainCpp    = `C:\myproj\src\main.cpp`
)

type fixture struct {
	window   *windowmock.MockInspector
	executor *executormock.MockExecutor
	notifier *notifiermock.MockGateway
	registry *helpers.Registry
	scope    tally.TestScope
	logs     *observer.ObservedLogs
	bridge   Controller
}

func newFixture(t *testing.T, instances ...*helpers.Instance) *fixture {
	ctrl := gomock.NewController(t)
	provider, err := config.NewYAML(config.Source(bytes.NewReader(focusconfig.Base)))
	require.NoError(t, err)

	core, logs := observer.New(zapcore.DebugLevel)
	logger := zap.New(core).Sugar()

	f := &fixture{
		window:   windowmock.NewMockInspector(ctrl),
		executor: executormock.NewMockExecutor(ctrl),
		notifier: notifiermock.NewMockGateway(ctrl),
		registry: helpers.NewRegistry(_prefix, instances...),
		scope:    tally.NewTestScope("testing", make(map[string]string, 0)),
		logs:     logs,
	}

	cls, err := classifier.New(classifier.Params{Config: provider, Window: f.window, Logger: logger})
	require.NoError(t, err)
	resolver, err := workspaceresolver.New(workspaceresolver.Params{Config: provider, Registry: f.registry, Logger: logger})
	require.NoError(t, err)
	extractor, err := documentcontext.New(documentcontext.Params{Config: provider, Window: f.window, Resolver: resolver, Logger: logger})
	require.NoError(t, err)
	act, err := activator.New(activator.Params{Config: provider, Executor: f.executor, Resolver: resolver, Window: f.window, Logger: logger})
	require.NoError(t, err)

	f.bridge, err = New(Params{
		Config:     provider,
		Classifier: cls,
		Extractor:  extractor,
		Resolver:   resolver,
		Activator:  act,
		Notifier:   f.notifier,
		Clock:      &clock.Fixed{Current: time.Unix(1700000000, 0), Step: 25 * time.Millisecond},
		Stats:      f.scope,
		Logger:     logger,
	})
	require.NoError(t, err)
	return f
}

// foreground makes pid the owner of the foreground window.
func (f *fixture) foreground(pid int, processName, title string) {
	f.window.EXPECT().ForegroundWindow().Return(_foreground, true).AnyTimes()
	f.window.EXPECT().OwningProcess(_foreground).Return(pid, nil)
	f.window.EXPECT().ProcessName(pid).Return(processName)
	f.window.EXPECT().Title(_foreground).Return(title).AnyTimes()
}

func (f *fixture) raises(pid int, hwnd window.Handle) {
	f.window.EXPECT().MainWindow(pid).Return(hwnd, true)
	f.window.EXPECT().OwningProcess(hwnd).Return(pid, nil)
	f.window.EXPECT().Activate(hwnd).Return(true)
}

func (f *fixture) expectMessage(text string, level notifier.Level) {
	f.notifier.EXPECT().ShowMessage(gomock.Any(), notifier.Message{Title: _title, Text: text, Level: level}).Return(nil)
}

func (f *fixture) runs(outcome, source string) int64 {
	counter, ok := f.scope.Snapshot().Counters()["testing.bridge.runs+outcome="+outcome+",source="+source]
	if !ok {
		return 0
	}
	return counter.Value()
}

func ideSolution(files ...string) *entity.WorkspaceNode {
	items := make([]*entity.WorkspaceNode, 0, len(files))
	for _, file := range files {
		items = append(items, &entity.WorkspaceNode{Name: mapper.BaseName(file), FilePaths: []string{file}})
	}
	return &entity.WorkspaceNode{
		Name:     "myproj.sln",
		Children: []*entity.WorkspaceNode{{Name: "P", Children: items}},
	}
}

func TestRunEditorToIDE(t *testing.T) {
	ide := &helpers.Instance{ProcessID: 100, Workspace: ideSolution(`C:\myproj\src\util.cpp`, _mainCpp)}
	f := newFixture(t, ide)
	f.foreground(300, "Cursor", "main.cpp - myproj - Cursor")
	f.raises(100, _ideWindow)

	out := f.bridge.Run(context.Background())

	assert.Equal(t, entity.StateDone, out.State)
	assert.Equal(t, entity.ProcessHandle{ProcessID: 300, Role: entity.RoleFlatEditor}, out.Source)
	assert.Equal(t, entity.RoleTreeIDE, out.Destination)
	assert.Equal(t, "main.cpp", out.Document.FilePath)
	assert.Equal(t, _mainCpp, out.Target.Path)
	assert.Equal(t, 100, out.ProcessID)
	assert.True(t, out.Activated)
	assert.Equal(t, []string{_mainCpp}, ide.Opened())
	assert.True(t, f.registry.Balanced())
	assert.Equal(t, int64(1), f.runs("done", "flat-editor"))
	assert.Equal(t, 25*time.Millisecond, out.Duration)
}

func TestRunIDEToEditor(t *testing.T) {
	ide := &helpers.Instance{
		ProcessID: 100,
		Document:  entity.DocumentContext{FilePath: _mainCpp, WorkspaceRoot: `C:\myproj`, Line: 42},
	}
	f := newFixture(t, ide)
	f.foreground(100, "devenv", "myproj - Microsoft Visual Studio")
	f.executor.EXPECT().Start(gomock.Any()).DoAndReturn(func(cmd *exec.Cmd) (int, error) {
		assert.Equal(t, []string{"cursor", "--reuse-window", `C:\myproj`, "--goto", `C:\myproj\src\main.cpp:42`}, cmd.Args)
		return 900, nil
	})
	// The launcher hands off to the running editor and exits, so there is no window to raise.
	f.window.EXPECT().MainWindow(900).Return(window.Handle(0), false)

	out := f.bridge.Run(context.Background())

	assert.Equal(t, entity.StateDone, out.State)
	assert.Equal(t, entity.RoleFlatEditor, out.Destination)
	assert.Equal(t, entity.Target{Path: _mainCpp, WorkspaceRoot: `C:\myproj`, Line: 42}, out.Target)
	assert.Equal(t, 900, out.ProcessID)
	assert.False(t, out.Activated)
	assert.True(t, f.registry.Balanced())
	assert.Equal(t, int64(1), f.runs("done", "tree-ide"))
}

func TestRunSearchesEveryInstance(t *testing.T) {
	first := &helpers.Instance{ProcessID: 100, Workspace: ideSolution(`C:\other\src\util.cpp`)}
	second := &helpers.Instance{ProcessID: 200, Workspace: ideSolution(_mainCpp)}
	f := newFixture(t, first, second)
	f.foreground(300, "Cursor", "main.cpp - myproj - Cursor")
	f.raises(200, _ide2Window)

	out := f.bridge.Run(context.Background())

	assert.Equal(t, entity.StateDone, out.State)
	assert.Equal(t, 200, out.ProcessID)
	assert.Empty(t, first.Opened())
	assert.Equal(t, []string{_mainCpp}, second.Opened())
}

func TestRunTerminalOutcomes(t *testing.T) {
	tests := []struct {
		name       string
		instances  []*helpers.Instance
		setup      func(f *fixture)
		wantState  entity.State
		wantReason entity.NoDocumentReason
		source     string
	}{
		{
			name: "no foreground window",
			setup: func(f *fixture) {
				f.window.EXPECT().ForegroundWindow().Return(window.Handle(0), false)
				f.expectMessage("Neither Visual Studio nor Cursor is the active window.", notifier.LevelInfo)
			},
			wantState: entity.StateNoActiveApp,
			source:    "unknown",
		},
		{
			name: "unrelated application",
			setup: func(f *fixture) {
				f.foreground(55, "explorer", "Downloads - File Explorer")
				f.expectMessage("Neither Visual Studio nor Cursor is the active window.", notifier.LevelInfo)
			},
			wantState: entity.StateNoActiveApp,
			source:    "unknown",
		},
		{
			name:      "ide without a solution",
			instances: []*helpers.Instance{{ProcessID: 100}},
			setup: func(f *fixture) {
				f.foreground(100, "devenv", "Microsoft Visual Studio")
				f.expectMessage("No solution is open in Visual Studio.", notifier.LevelInfo)
			},
			wantState:  entity.StateNoDocument,
			wantReason: entity.NoDocumentReasonNoWorkspace,
			source:     "tree-ide",
		},
		{
			name:      "ide solution without an open file",
			instances: []*helpers.Instance{{ProcessID: 100, Document: entity.DocumentContext{WorkspaceRoot: `C:\myproj`}}},
			setup: func(f *fixture) {
				f.foreground(100, "devenv", "myproj - Microsoft Visual Studio")
				f.expectMessage("No open file was found in the active window.", notifier.LevelInfo)
			},
			wantState:  entity.StateNoDocument,
			wantReason: entity.NoDocumentReasonNoFile,
			source:     "tree-ide",
		},
		{
			name: "editor title without a file",
			setup: func(f *fixture) {
				f.foreground(300, "Cursor", " - myproj - Cursor")
				f.expectMessage("No open file was found in the active window.", notifier.LevelInfo)
			},
			wantState:  entity.StateNoDocument,
			wantReason: entity.NoDocumentReasonNoFile,
			source:     "flat-editor",
		},
		{
			name:      "untitled editor tab",
			instances: []*helpers.Instance{{ProcessID: 100, Workspace: ideSolution(_mainCpp)}},
			setup: func(f *fixture) {
				f.foreground(300, "Cursor", "Untitled - Cursor")
				f.expectMessage("Could not find Untitled in any open Visual Studio solution.", notifier.LevelInfo)
			},
			wantState: entity.StateNoMatch,
			source:    "flat-editor",
		},
		{
			name: "no ide running",
			setup: func(f *fixture) {
				f.foreground(300, "Cursor", "main.cpp - myproj - Cursor")
				f.expectMessage("Could not find main.cpp in any open Visual Studio solution.", notifier.LevelInfo)
			},
			wantState: entity.StateNoMatch,
			source:    "flat-editor",
		},
		{
			name: "editor launch refused",
			instances: []*helpers.Instance{{
				ProcessID: 100,
				Document:  entity.DocumentContext{FilePath: _mainCpp, WorkspaceRoot: `C:\myproj`},
			}},
			setup: func(f *fixture) {
				f.foreground(100, "devenv", "myproj - Microsoft Visual Studio")
				f.executor.EXPECT().Start(gomock.Any()).Return(0, exec.ErrNotFound)
				f.expectMessage("Could not open main.cpp.", notifier.LevelWarning)
			},
			wantState: entity.StateOpenFailed,
			source:    "tree-ide",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t, tt.instances...)
			tt.setup(f)

			out := f.bridge.Run(context.Background())

			assert.Equal(t, tt.wantState, out.State)
			assert.Equal(t, tt.wantReason, out.Reason)
			assert.True(t, f.registry.Balanced())
			assert.Equal(t, int64(1), f.runs(tt.wantState.String(), tt.source))
			if tt.wantState == entity.StateOpenFailed {
				assert.Error(t, out.Err)
			}
		})
	}
}

func TestRunRecoversUnexpectedFailure(t *testing.T) {
	f := newFixture(t)
	f.window.EXPECT().ForegroundWindow().DoAndReturn(func() (window.Handle, bool) {
		panic("access violation")
	})

	var out entity.Outcome
	require.NotPanics(t, func() { out = f.bridge.Run(context.Background()) })

	assert.Equal(t, entity.StateFailed, out.State)
	assert.ErrorContains(t, out.Err, "access violation")
	assert.ErrorContains(t, out.Err, "classifying")
	assert.Equal(t, int64(1), f.runs("failed", "unknown"))

	errs := f.logs.FilterLevelExact(zapcore.ErrorLevel).All()
	require.Len(t, errs, 1)
	assert.Equal(t, "bridge failed unexpectedly", errs[0].Message)
}

func TestRunLogsInvocation(t *testing.T) {
	f := newFixture(t)
	f.window.EXPECT().ForegroundWindow().Return(window.Handle(0), false)
	f.notifier.EXPECT().ShowMessage(gomock.Any(), gomock.Any()).Return(assert.AnError)

	id := uuid.Must(uuid.NewV4())
	f.bridge.Run(mapper.InvocationToContext(context.Background(), id))

	finished := f.logs.FilterMessage("bridge finished").All()
	require.Len(t, finished, 1)
	assert.Equal(t, id.String(), finished[0].ContextMap()["invocation"])
	assert.Equal(t, "no-active-app", finished[0].ContextMap()["outcome"])
	assert.Equal(t, 1, f.logs.FilterMessage("showing notification").Len())
}

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}
