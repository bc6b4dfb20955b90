//go:build linux

package platform

import "os/exec"

// NativeDialogs returns zenity dialogs when zenity is installed.
func NativeDialogs() Dialogs {
	if _, err := exec.LookPath("zenity"); err != nil {
		return Unsupported()
	}
	return NewZenity()
}
