//go:build linux

package platform

import (
	"fmt"

	"github.com/godbus/dbus/v5"
)

const (
	notifyDest = "org.freedesktop.Notifications"
	notifyPath = "/org/freedesktop/Notifications"
)

// Notify posts a desktop notification over the session bus.
func Notify(title, body string, opts Options) error {
	conn, err := dbus.ConnectSessionBus()
	if err != nil {
		return fmt.Errorf("session bus: %w", err)
	}
	defer conn.Close()

	hints := map[string]dbus.Variant{
		"category": dbus.MakeVariant("transfer.complete"),
	}
	call := conn.Object(notifyDest, dbus.ObjectPath(notifyPath)).Call(notifyDest+".Notify", 0,
		AppName, uint32(0), opts.IconPath, title, body, []string{}, hints, int32(opts.timeout().Milliseconds()))
	return call.Err
}
