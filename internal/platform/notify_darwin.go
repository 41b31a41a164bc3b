//go:build darwin

package platform

import "os/exec"

// Notify posts to Notification Center through osascript, which supports
// neither icons nor timeouts.
func Notify(title, body string, _ Options) error {
	return exec.Command("osascript", "-e", appleScript(title, body)).Run()
}
