//go:build windows

package activator

import (
	"os/exec"
	"syscall"

	"golang.org/x/sys/windows"
)

// configureLaunch keeps the launcher script from flashing a console window.
func configureLaunch(cmd *exec.Cmd) {
	cmd.SysProcAttr = &syscall.SysProcAttr{
		HideWindow:    true,
		CreationFlags: windows.CREATE_NO_WINDOW,
	}
}
