package mapper

import (
	"strconv"
	"strings"
)

// MonikerToProcessID parses the process id embedded in an automation moniker
// display name of the form "<prefix>:<pid>", e.g. "!VisualStudio.DTE.17.0:4242".
func MonikerToProcessID(moniker, prefix string) (int, bool) {
	if prefix == "" || !strings.HasPrefix(moniker, prefix) {
		return 0, false
	}
	_, pidStr, found := strings.Cut(moniker, ":")
	if !found {
		return 0, false
	}
	pid, err := strconv.Atoi(strings.TrimSpace(pidStr))
	if err != nil || pid <= 0 {
		return 0, false
	}
	return pid, true
}
