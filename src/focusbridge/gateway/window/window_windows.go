//go:build windows

package window

import (
	"path/filepath"
	"strings"
	"unsafe"

	"github.com/johnkslg/CursorVSSync/src/focusbridge/internal/errors"
	"go.uber.org/zap"
	"golang.org/x/sys/windows"
)

const (
	_gwOwner   = 4
	_swRestore = 9
	// Titles longer than this are truncated, which is harmless for marker and file name matching.
	_maxTitleLength = 1024
)

var (
	_user32                  = windows.NewLazySystemDLL("user32.dll")
	_procSetForegroundWindow = _user32.NewProc("SetForegroundWindow")
	_procIsIconic            = _user32.NewProc("IsIconic")
	_procShowWindow          = _user32.NewProc("ShowWindow")
	_procGetWindow           = _user32.NewProc("GetWindow")
	_procGetWindowTextW      = _user32.NewProc("GetWindowTextW")

	// Callbacks are a limited resource, so one is shared by every EnumWindows call.
	_enumMainWindowCallback = windows.NewCallback(enumMainWindow)
)

type win32Inspector struct {
	logger *zap.SugaredLogger
}

func newPlatformInspector(logger *zap.SugaredLogger) Inspector {
	return &win32Inspector{logger: logger}
}

func (i *win32Inspector) ForegroundWindow() (Handle, bool) {
	hwnd := windows.GetForegroundWindow()
	return Handle(hwnd), hwnd != 0
}

func (i *win32Inspector) OwningProcess(h Handle) (int, error) {
	var pid uint32
	if _, err := windows.GetWindowThreadProcessId(windows.HWND(h), &pid); err != nil {
		return 0, &errors.WindowNotFoundError{Handle: uintptr(h)}
	}
	if pid == 0 {
		return 0, &errors.WindowNotFoundError{Handle: uintptr(h)}
	}
	// The window can outlive a process that is already exiting.
	proc, err := windows.OpenProcess(windows.PROCESS_QUERY_LIMITED_INFORMATION, false, pid)
	if err != nil {
		return 0, &errors.ProcessNotFoundError{ProcessID: int(pid)}
	}
	windows.CloseHandle(proc)
	return int(pid), nil
}

func (i *win32Inspector) ProcessName(pid int) string {
	proc, err := windows.OpenProcess(windows.PROCESS_QUERY_LIMITED_INFORMATION, false, uint32(pid))
	if err != nil {
		i.logger.Debugw("opening process", "pid", pid, "error", err)
		return ""
	}
	defer windows.CloseHandle(proc)

	buf := make([]uint16, windows.MAX_LONG_PATH)
	size := uint32(len(buf))
	if err := windows.QueryFullProcessImageName(proc, 0, &buf[0], &size); err != nil {
		i.logger.Debugw("querying process image name", "pid", pid, "error", err)
		return ""
	}

	name := filepath.Base(windows.UTF16ToString(buf[:size]))
	return strings.TrimSuffix(name, filepath.Ext(name))
}

type mainWindowSearch struct {
	pid   uint32
	found windows.HWND
}

func enumMainWindow(hwnd windows.HWND, lparam uintptr) uintptr {
	search := (*mainWindowSearch)(unsafe.Pointer(lparam))

	var pid uint32
	if _, err := windows.GetWindowThreadProcessId(hwnd, &pid); err != nil || pid != search.pid {
		return 1
	}
	if !windows.IsWindowVisible(hwnd) {
		return 1
	}
	if owner, _, _ := _procGetWindow.Call(uintptr(hwnd), _gwOwner); owner != 0 {
		return 1
	}
	search.found = hwnd
	return 0
}

func (i *win32Inspector) MainWindow(pid int) (Handle, bool) {
	search := &mainWindowSearch{pid: uint32(pid)}
	// EnumWindows reports an error when the callback stops the enumeration early.
	_ = windows.EnumWindows(_enumMainWindowCallback, unsafe.Pointer(search))
	return Handle(search.found), search.found != 0
}

func (i *win32Inspector) Title(h Handle) string {
	buf := make([]uint16, _maxTitleLength)
	r, _, _ := _procGetWindowTextW.Call(uintptr(h), uintptr(unsafe.Pointer(&buf[0])), uintptr(len(buf)))
	n := int(int32(r))
	if n <= 0 {
		return ""
	}
	return windows.UTF16ToString(buf[:n])
}

func (i *win32Inspector) Visible(h Handle) bool {
	return windows.IsWindowVisible(windows.HWND(h))
}

func (i *win32Inspector) Activate(h Handle) bool {
	if h == 0 {
		return false
	}
	if iconic, _, _ := _procIsIconic.Call(uintptr(h)); iconic != 0 {
		_procShowWindow.Call(uintptr(h), _swRestore)
	}
	ok, _, err := _procSetForegroundWindow.Call(uintptr(h))
	if ok == 0 {
		i.logger.Debugw("setting foreground window", "hwnd", uintptr(h), "error", err)
		return false
	}
	return true
}
