//go:build !windows

package activator

import "os/exec"

func configureLaunch(cmd *exec.Cmd) {}
