package platform

import (
	"fmt"
	"strings"
	"time"
)

// AppName identifies the application to the notification center.
const AppName = "Sketchpad"

// Options configures how a notification is displayed on the host platform.
type Options struct {
	// IconPath, when non-empty, points to an image file the notification center
	// should display with the notification if supported by the platform.
	IconPath string
	// Timeout is how long the notification stays visible. Zero lets the
	// platform decide.
	Timeout time.Duration
	// Category is a freedesktop notification category such as
	// "transfer.complete". Platforms without categories ignore it.
	Category string
}

func (o Options) expireMillis() int32 {
	if o.Timeout <= 0 {
		return -1
	}
	return int32(o.Timeout / time.Millisecond)
}

// hints returns the freedesktop hints for o.
func (o Options) hints() map[string]any {
	h := map[string]any{
		"desktop-entry": strings.ToLower(AppName),
		"urgency":       byte(0),
	}
	if o.Category != "" {
		h["category"] = o.Category
	}
	if o.IconPath != "" {
		h["image-path"] = o.IconPath
	}
	return h
}

func appleQuote(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	return `"` + strings.ReplaceAll(s, `"`, `\"`) + `"`
}

// appleScript builds the osascript program that posts a notification.
func appleScript(title, body string) string {
	return fmt.Sprintf("display notification %s with title %s subtitle %s",
		appleQuote(body), appleQuote(title), appleQuote(AppName))
}

func psQuote(s string) string {
	return "'" + strings.ReplaceAll(s, "'", "''") + "'"
}

// toastScript builds the PowerShell program that shows a toast, with an
// image when icon is set.
func toastScript(title, body, icon string) string {
	var b strings.Builder
	template := "ToastText02"
	if icon != "" {
		template = "ToastImageAndText02"
	}
	b.WriteString(`[Windows.UI.Notifications.ToastNotificationManager, Windows.UI.Notifications, ContentType=Windows Runtime] > $null; `)
	fmt.Fprintf(&b, `$template = [Windows.UI.Notifications.ToastNotificationManager]::GetTemplateContent([Windows.UI.Notifications.ToastTemplateType]::%s); `, template)
	b.WriteString(`$texts = $template.GetElementsByTagName("text"); `)
	fmt.Fprintf(&b, `$texts.Item(0).AppendChild($template.CreateTextNode(%s)) > $null; `, psQuote(title))
	fmt.Fprintf(&b, `$texts.Item(1).AppendChild($template.CreateTextNode(%s)) > $null; `, psQuote(body))
	if icon != "" {
		fmt.Fprintf(&b, `$template.GetElementsByTagName("image").Item(0).SetAttribute("src", %s); `, psQuote(icon))
	}
	b.WriteString(`$toast = [Windows.UI.Notifications.ToastNotification]::new($template); `)
	fmt.Fprintf(&b, `[Windows.UI.Notifications.ToastNotificationManager]::CreateToastNotifier(%s).Show($toast);`, psQuote(AppName))
	return b.String()
}
