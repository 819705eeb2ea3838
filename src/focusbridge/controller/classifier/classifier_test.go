package classifier

import (
	"context"
	stderrors "errors"
	"strings"
	"testing"

	"github.com/johnkslg/CursorVSSync/src/focusbridge/entity"
	"github.com/johnkslg/CursorVSSync/src/focusbridge/gateway/window"
	"github.com/johnkslg/CursorVSSync/src/focusbridge/gateway/window/windowmock"
	"github.com/johnkslg/CursorVSSync/src/focusbridge/internal/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/config"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
	"pgregory.net/rapid"
)

const _hwnd = window.Handle(0x1234)

func rolesProvider(t require.TestingT) config.Provider {
	provider, err := config.NewStaticProvider(map[string]interface{}{
		"roles": map[string]interface{}{
			"treeIDE": map[string]interface{}{
				"processName": "devenv",
				"titleMarker": "Visual Studio",
				"automation":  map[string]interface{}{"monikerPrefix": "!VisualStudio.DTE"},
			},
			"flatEditor": map[string]interface{}{
				"processName": "Cursor",
				"titleMarker": "Cursor",
				"launcher":    map[string]interface{}{"executable": "cursor"},
			},
		},
	})
	require.NoError(t, err)
	return provider
}

func TestNew(t *testing.T) {
	ctrl := gomock.NewController(t)
	t.Run("valid config", func(t *testing.T) {
		c, err := New(Params{Config: rolesProvider(t), Window: windowmock.NewMockInspector(ctrl), Logger: zap.NewNop().Sugar()})
		assert.NoError(t, err)
		assert.NotNil(t, c)
	})

	t.Run("missing title marker", func(t *testing.T) {
		provider, err := config.NewStaticProvider(map[string]interface{}{
			"roles": map[string]interface{}{
				"treeIDE": map[string]interface{}{"processName": "devenv"},
			},
		})
		require.NoError(t, err)

		_, err = New(Params{Config: provider, Window: windowmock.NewMockInspector(ctrl), Logger: zap.NewNop().Sugar()})
		var invalid *errors.InvalidConfigError
		require.ErrorAs(t, err, &invalid)
		assert.Equal(t, "roles.treeIDE.titleMarker", invalid.Key)
	})
}

func TestClassifyForeground(t *testing.T) {
	tests := []struct {
		name        string
		setup       func(w *windowmock.MockInspector)
		wantOK      bool
		wantRole    entity.ApplicationRole
		wantProcess int
	}{
		{
			name: "no foreground window",
			setup: func(w *windowmock.MockInspector) {
				w.EXPECT().ForegroundWindow().Return(window.Handle(0), false)
			},
		},
		{
			name: "owner lookup fails",
			setup: func(w *windowmock.MockInspector) {
				w.EXPECT().ForegroundWindow().Return(_hwnd, true)
				w.EXPECT().OwningProcess(_hwnd).Return(0, &errors.WindowNotFoundError{Handle: uintptr(_hwnd)})
			},
		},
		{
			name: "ide by process name",
			setup: func(w *windowmock.MockInspector) {
				w.EXPECT().ForegroundWindow().Return(_hwnd, true)
				w.EXPECT().OwningProcess(_hwnd).Return(100, nil)
				w.EXPECT().ProcessName(100).Return("DEVENV")
			},
			wantOK:      true,
			wantRole:    entity.RoleTreeIDE,
			wantProcess: 100,
		},
		{
			name: "editor by process name ignores an ide title",
			setup: func(w *windowmock.MockInspector) {
				w.EXPECT().ForegroundWindow().Return(_hwnd, true)
				w.EXPECT().OwningProcess(_hwnd).Return(200, nil)
				w.EXPECT().ProcessName(200).Return("cursor")
			},
			wantOK:      true,
			wantRole:    entity.RoleFlatEditor,
			wantProcess: 200,
		},
		{
			name: "renamed editor by title",
			setup: func(w *windowmock.MockInspector) {
				w.EXPECT().ForegroundWindow().Return(_hwnd, true)
				w.EXPECT().OwningProcess(_hwnd).Return(300, nil)
				w.EXPECT().ProcessName(300).Return("cursor-portable")
				w.EXPECT().Title(_hwnd).Return("main.cpp - myproj - cursor")
			},
			wantOK:      true,
			wantRole:    entity.RoleFlatEditor,
			wantProcess: 300,
		},
		{
			name: "ambiguous title prefers the ide",
			setup: func(w *windowmock.MockInspector) {
				w.EXPECT().ForegroundWindow().Return(_hwnd, true)
				w.EXPECT().OwningProcess(_hwnd).Return(400, nil)
				w.EXPECT().ProcessName(400).Return("")
				w.EXPECT().Title(_hwnd).Return("Cursor notes - Microsoft Visual Studio")
			},
			wantOK:      true,
			wantRole:    entity.RoleTreeIDE,
			wantProcess: 400,
		},
		{
			name: "unrelated application",
			setup: func(w *windowmock.MockInspector) {
				w.EXPECT().ForegroundWindow().Return(_hwnd, true)
				w.EXPECT().OwningProcess(_hwnd).Return(500, nil)
				w.EXPECT().ProcessName(500).Return("notepad")
				w.EXPECT().Title(_hwnd).Return("notes.txt - Notepad")
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			w := windowmock.NewMockInspector(ctrl)
			tt.setup(w)

			c, err := New(Params{Config: rolesProvider(t), Window: w, Logger: zap.NewNop().Sugar()})
			require.NoError(t, err)

			handle, ok := c.ClassifyForeground(context.Background())
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.wantRole, handle.Role)
			assert.Equal(t, tt.wantProcess, handle.ProcessID)
		})
	}
}

func TestClassifyForegroundOwnerLogLevel(t *testing.T) {
	tests := []struct {
		name      string
		err       error
		wantLevel zapcore.Level
	}{
		{
			name:      "exited process",
			err:       &errors.ProcessNotFoundError{ProcessID: 77},
			wantLevel: zapcore.DebugLevel,
		},
		{
			name:      "destroyed window",
			err:       &errors.WindowNotFoundError{Handle: uintptr(_hwnd)},
			wantLevel: zapcore.DebugLevel,
		},
		{
			name:      "unexpected failure",
			err:       stderrors.New("access denied"),
			wantLevel: zapcore.WarnLevel,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			w := windowmock.NewMockInspector(ctrl)
			w.EXPECT().ForegroundWindow().Return(_hwnd, true)
			w.EXPECT().OwningProcess(_hwnd).Return(0, tt.err)

			core, logs := observer.New(zapcore.DebugLevel)
			c, err := New(Params{Config: rolesProvider(t), Window: w, Logger: zap.New(core).Sugar()})
			require.NoError(t, err)

			_, ok := c.ClassifyForeground(context.Background())
			assert.False(t, ok)

			entries := logs.All()
			require.Len(t, entries, 1)
			assert.Equal(t, tt.wantLevel, entries[0].Level)
			assert.Equal(t, tt.err.Error(), entries[0].ContextMap()["error"])
		})
	}
}

func TestProperty_UnregisteredWindowsAreNotClassified(t *testing.T) {
	unrelated := rapid.StringMatching(`[a-z]{0,12}( - [a-z]{1,12}){0,2}`).Filter(func(s string) bool {
		return s != "devenv" && !strings.Contains(s, "cursor")
	})

	rapid.Check(t, func(rt *rapid.T) {
		name := unrelated.Draw(rt, "processName")
		title := unrelated.Draw(rt, "title")

		ctrl := gomock.NewController(rt)
		defer ctrl.Finish()
		w := windowmock.NewMockInspector(ctrl)
		w.EXPECT().ForegroundWindow().Return(_hwnd, true)
		w.EXPECT().OwningProcess(_hwnd).Return(42, nil)
		w.EXPECT().ProcessName(42).Return(name)
		w.EXPECT().Title(_hwnd).Return(title)

		c, err := New(Params{Config: rolesProvider(rt), Window: w, Logger: zap.NewNop().Sugar()})
		require.NoError(rt, err)

		_, ok := c.ClassifyForeground(context.Background())
		assert.False(rt, ok)
	})
}
