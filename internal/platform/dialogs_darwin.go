//go:build darwin

package platform

// NativeDialogs returns osascript dialogs.
func NativeDialogs() Dialogs { return NewAppleScript() }
