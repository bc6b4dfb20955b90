//go:build windows

package platform

import (
	"fmt"
	"os/exec"
	"strings"
)

func psQuote(s string) string {
	return "'" + strings.ReplaceAll(s, "'", "''") + "'"
}

// Notify shows a toast through PowerShell and the WinRT notification API.
func Notify(title, body string, opts Options) error {
	kind := "ToastText02"
	image := ""
	if icon := strings.TrimSpace(opts.IconPath); icon != "" {
		kind = "ToastImageAndText02"
		image = fmt.Sprintf(`$t.GetElementsByTagName("image").Item(0).SetAttribute("src", %s); `, psQuote(icon))
	}
	script := `[Windows.UI.Notifications.ToastNotificationManager, Windows.UI.Notifications, ContentType=Windows Runtime] > $null; ` +
		fmt.Sprintf(`$t = [Windows.UI.Notifications.ToastNotificationManager]::GetTemplateContent([Windows.UI.Notifications.ToastTemplateType]::%s); `, kind) +
		`$x = $t.GetElementsByTagName("text"); ` +
		fmt.Sprintf(`$x.Item(0).AppendChild($t.CreateTextNode(%s)) > $null; `, psQuote(title)) +
		fmt.Sprintf(`$x.Item(1).AppendChild($t.CreateTextNode(%s)) > $null; `, psQuote(body)) +
		image +
		fmt.Sprintf(`[Windows.UI.Notifications.ToastNotificationManager]::CreateToastNotifier(%s).Show([Windows.UI.Notifications.ToastNotification]::new($t));`, psQuote(AppName))
	return exec.Command("powershell.exe", "-NoProfile", "-Command", script).Run()
}
