//go:build windows

package automation

import (
	"context"
	stderrors "errors"
	"fmt"
	"strings"
	"syscall"
	"unsafe"

	ole "github.com/go-ole/go-ole"
	"go.uber.org/zap"
	"golang.org/x/sys/windows"
)

const (
	_sOK    = 0
	_sFalse = 1

	// Vtable slots. IUnknown occupies 0-2 in every interface.
	_unknownRelease        = 2
	_rotGetObject          = 6
	_rotEnumRunning        = 9
	_enumMonikerNext       = 3
	_enumMonikerReset      = 5
	_monikerGetDisplayName = 20
)

var (
	_ole32                     = windows.NewLazySystemDLL("ole32.dll")
	_procGetRunningObjectTable = _ole32.NewProc("GetRunningObjectTable")
	_procCreateBindCtx         = _ole32.NewProc("CreateBindCtx")
)

// comObject is the layout every COM interface pointer refers to: a pointer to its vtable.
type comObject struct {
	vtbl *[32]uintptr
}

func (o *comObject) call(slot int, args ...uintptr) uintptr {
	hr, _, _ := syscall.SyscallN(o.vtbl[slot], append([]uintptr{uintptr(unsafe.Pointer(o))}, args...)...)
	return hr
}

func (o *comObject) release() {
	if o != nil {
		o.call(_unknownRelease)
	}
}

func hresultError(op string, hr uintptr) error {
	return fmt.Errorf("%s: %w", op, ole.NewError(hr))
}

// rotRegistry reads the COM Running Object Table.
// Open, every Table call and Close must run on the same OS thread.
type rotRegistry struct {
	logger *zap.SugaredLogger
}

func newPlatformRegistry(logger *zap.SugaredLogger) Registry {
	return &rotRegistry{logger: logger}
}

func (r *rotRegistry) Open(ctx context.Context) (Table, error) {
	if err := coInitialize(); err != nil {
		return nil, fmt.Errorf("initializing COM: %w", err)
	}

	t := &rotTable{logger: r.logger, monikers: make(map[string]*comObject)}
	if hr, _, _ := _procGetRunningObjectTable.Call(0, uintptr(unsafe.Pointer(&t.rot))); hr != _sOK {
		ole.CoUninitialize()
		return nil, hresultError("GetRunningObjectTable", hr)
	}
	if hr, _, _ := _procCreateBindCtx.Call(0, uintptr(unsafe.Pointer(&t.bindCtx))); hr != _sOK {
		t.rot.release()
		ole.CoUninitialize()
		return nil, hresultError("CreateBindCtx", hr)
	}
	return t, nil
}

// coInitialize enters a single-threaded apartment. A thread that is already initialized reports S_FALSE,
// which still needs a matching CoUninitialize.
func coInitialize() error {
	err := ole.CoInitializeEx(0, ole.COINIT_APARTMENTTHREADED)
	var oleErr *ole.OleError
	if err != nil && stderrors.As(err, &oleErr) && oleErr.Code() == _sFalse {
		return nil
	}
	return err
}

type rotTable struct {
	logger   *zap.SugaredLogger
	rot      *comObject
	bindCtx  *comObject
	monikers map[string]*comObject
	handles  []*dteHandle
	closed   bool
}

func (t *rotTable) Monikers(ctx context.Context, prefix string) ([]string, error) {
	var enum *comObject
	if hr := t.rot.call(_rotEnumRunning, uintptr(unsafe.Pointer(&enum))); hr != _sOK {
		return nil, hresultError("IRunningObjectTable.EnumRunning", hr)
	}
	defer enum.release()
	enum.call(_enumMonikerReset)

	var names []string
	for {
		var mk *comObject
		if hr := enum.call(_enumMonikerNext, 1, uintptr(unsafe.Pointer(&mk)), 0); hr != _sOK || mk == nil {
			break
		}
		name, err := t.displayName(mk)
		if err != nil {
			t.logger.Debugw("skipping moniker without display name", "error", err)
			mk.release()
			continue
		}
		if !strings.HasPrefix(name, prefix) {
			mk.release()
			continue
		}
		if prev, ok := t.monikers[name]; ok {
			prev.release()
		}
		t.monikers[name] = mk
		names = append(names, name)
	}
	return names, nil
}

func (t *rotTable) displayName(mk *comObject) (string, error) {
	var p *uint16
	if hr := mk.call(_monikerGetDisplayName, uintptr(unsafe.Pointer(t.bindCtx)), 0, uintptr(unsafe.Pointer(&p))); hr != _sOK {
		return "", hresultError("IMoniker.GetDisplayName", hr)
	}
	defer ole.CoTaskMemFree(uintptr(unsafe.Pointer(p)))
	return windows.UTF16PtrToString(p), nil
}

func (t *rotTable) Bind(ctx context.Context, moniker string) (Handle, error) {
	mk, ok := t.monikers[moniker]
	if !ok {
		return nil, fmt.Errorf("moniker %q was not listed by this table", moniker)
	}

	var unk *ole.IUnknown
	if hr := t.rot.call(_rotGetObject, uintptr(unsafe.Pointer(mk)), uintptr(unsafe.Pointer(&unk))); hr != _sOK {
		return nil, hresultError("IRunningObjectTable.GetObject", hr)
	}
	defer unk.Release()

	disp, err := unk.QueryInterface(ole.IID_IDispatch)
	if err != nil {
		return nil, fmt.Errorf("querying IDispatch of %q: %w", moniker, err)
	}
	h := &dteHandle{dte: disp, logger: t.logger.With("moniker", moniker)}
	t.handles = append(t.handles, h)
	return h, nil
}

func (t *rotTable) Close() error {
	if t.closed {
		return nil
	}
	t.closed = true

	for _, h := range t.handles {
		h.release()
	}
	for _, mk := range t.monikers {
		mk.release()
	}
	t.bindCtx.release()
	t.rot.release()
	ole.CoUninitialize()
	return nil
}
