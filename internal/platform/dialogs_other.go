//go:build !linux && !darwin

package platform

// NativeDialogs has no helper to use on this platform.
func NativeDialogs() Dialogs { return Unsupported() }
