package notify

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/example/spritery/internal/platform"
)

// Event identifies a notification trigger.
type Event string

const (
	// EventSave fires when a sprite is written to disk.
	EventSave Event = "save"
	// EventCopy fires when the canvas is placed on the clipboard.
	EventCopy Event = "copy"
	// EventExport fires when a palette or an alternate format is exported.
	EventExport Event = "export"
)

// Events lists every event in display order.
func Events() []Event { return []Event{EventSave, EventCopy, EventExport} }

// Preferences holds the notification title and one body template per
// event. Templates take a single %s.
type Preferences struct {
	Title     string
	Templates map[Event]string
}

// DefaultPreferences returns the built-in wording.
func DefaultPreferences() Preferences {
	return Preferences{
		Title: platform.AppName,
		Templates: map[Event]string{
			EventSave:   "Saved %s",
			EventCopy:   "Copied %s to clipboard",
			EventExport: "Exported %s",
		},
	}
}

// LoadPreferences applies SPRITERY_NOTIFY_TITLE and
// SPRITERY_NOTIFY_<EVENT>_TEXT overrides to the defaults.
func LoadPreferences() Preferences {
	prefs := DefaultPreferences()
	if v := strings.TrimSpace(os.Getenv("SPRITERY_NOTIFY_TITLE")); v != "" {
		prefs.Title = v
	}
	for _, ev := range Events() {
		key := "SPRITERY_NOTIFY_" + strings.ToUpper(string(ev)) + "_TEXT"
		if v := strings.TrimSpace(os.Getenv(key)); v != "" {
			prefs.Templates[ev] = v
		}
	}
	return prefs
}

// Sender delivers a formatted notification.
type Sender func(title, body string, opts platform.Options) error

// Notifier sends desktop notifications for the events that are enabled.
// A nil Notifier is valid and silent.
type Notifier struct {
	prefs   Preferences
	enabled map[Event]bool
	send    Sender
	logger  *log.Logger
}

// New creates a notifier with every event disabled.
func New(prefs Preferences) *Notifier {
	templates := make(map[Event]string, len(prefs.Templates))
	for k, v := range prefs.Templates {
		templates[k] = v
	}
	return &Notifier{
		prefs:   Preferences{Title: prefs.Title, Templates: templates},
		enabled: make(map[Event]bool),
		send:    platform.Notify,
		logger:  log.Default(),
	}
}

// WithSender replaces the delivery function.
func (n *Notifier) WithSender(s Sender) *Notifier {
	n.send = s
	return n
}

// WithLogger replaces the logger used for delivery failures.
func (n *Notifier) WithLogger(l *log.Logger) *Notifier {
	n.logger = l
	return n
}

// Enable toggles an event.
func (n *Notifier) Enable(event Event, enabled bool) {
	if n == nil {
		return
	}
	n.enabled[event] = enabled
}

// Enabled reports whether event is switched on.
func (n *Notifier) Enabled(event Event) bool {
	return n != nil && n.enabled[event]
}

// Save announces a written file, using its absolute path as the icon when
// it exists.
func (n *Notifier) Save(path string) {
	if !n.Enabled(EventSave) {
		return
	}
	detail := strings.TrimSpace(path)
	opts := platform.Options{}
	if abs, err := filepath.Abs(detail); err == nil {
		detail = abs
		if _, err := os.Stat(abs); err == nil {
			opts.IconPath = abs
		}
	}
	n.dispatch(EventSave, detail, opts)
}

// Copy announces a clipboard copy.
func (n *Notifier) Copy(detail string) {
	if strings.TrimSpace(detail) == "" {
		detail = "sprite"
	}
	n.dispatch(EventCopy, detail, platform.Options{})
}

// Export announces an export of detail.
func (n *Notifier) Export(detail string) {
	n.dispatch(EventExport, detail, platform.Options{})
}

func (n *Notifier) dispatch(event Event, detail string, opts platform.Options) {
	if !n.Enabled(event) || n.send == nil {
		return
	}
	template := strings.TrimSpace(n.prefs.Templates[event])
	if template == "" {
		return
	}
	body := template
	if strings.Contains(template, "%") {
		body = fmt.Sprintf(template, strings.TrimSpace(detail))
	}
	if err := n.send(n.prefs.Title, strings.TrimSpace(body), opts); err != nil && n.logger != nil {
		n.logger.Printf("notification %s: %v", event, err)
	}
}
