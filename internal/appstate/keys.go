package appstate

import (
	"unicode"

	"golang.org/x/mobile/event/key"
)

// KeyShortcut describes a keyboard combination that triggers an action.
// Either Rune or Code is set.
type KeyShortcut struct {
	Rune      rune
	Code      key.Code
	Modifiers key.Modifiers
}

// Binding ties an action name to its shortcuts.
type Binding struct {
	Action string
	Keys   []KeyShortcut
	// Repeat lets held keys trigger the action again.
	Repeat bool
}

func code(c key.Code) KeyShortcut { return KeyShortcut{Code: c} }

func ctrl(c key.Code) KeyShortcut { return KeyShortcut{Code: c, Modifiers: key.ModControl} }

func ctrlShift(c key.Code) KeyShortcut {
	return KeyShortcut{Code: c, Modifiers: key.ModControl | key.ModShift}
}

// Bindings returns the default editor key map.
func Bindings() []Binding {
	return []Binding{
		{Action: "undo", Keys: []KeyShortcut{ctrl(key.CodeZ)}, Repeat: true},
		{Action: "redo", Keys: []KeyShortcut{ctrl(key.CodeY), ctrlShift(key.CodeZ)}, Repeat: true},
		{Action: "pan-up", Keys: []KeyShortcut{code(key.CodeW), code(key.CodeUpArrow)}, Repeat: true},
		{Action: "pan-down", Keys: []KeyShortcut{code(key.CodeS), code(key.CodeDownArrow)}, Repeat: true},
		{Action: "pan-left", Keys: []KeyShortcut{code(key.CodeA), code(key.CodeLeftArrow)}, Repeat: true},
		{Action: "pan-right", Keys: []KeyShortcut{code(key.CodeD), code(key.CodeRightArrow)}, Repeat: true},
		{Action: "zoom-in", Keys: []KeyShortcut{code(key.CodeE), {Rune: '+'}}, Repeat: true},
		{Action: "zoom-out", Keys: []KeyShortcut{code(key.CodeQ), {Rune: '-'}}, Repeat: true},
		{Action: "center", Keys: []KeyShortcut{code(key.CodeC)}},
		{Action: "fit", Keys: []KeyShortcut{code(key.CodeF)}},
		{Action: "grid", Keys: []KeyShortcut{code(key.CodeG)}},
		{Action: "status", Keys: []KeyShortcut{code(key.CodeF3)}},
		{Action: "tool-1", Keys: []KeyShortcut{code(key.Code1)}},
		{Action: "tool-2", Keys: []KeyShortcut{code(key.Code2)}},
		{Action: "tool-3", Keys: []KeyShortcut{code(key.Code3)}},
		{Action: "tool-4", Keys: []KeyShortcut{code(key.Code4)}},
		{Action: "palette-next", Keys: []KeyShortcut{code(key.CodeRightSquareBracket)}},
		{Action: "palette-prev", Keys: []KeyShortcut{code(key.CodeLeftSquareBracket)}},
		{Action: "save", Keys: []KeyShortcut{ctrl(key.CodeS)}},
		{Action: "save-as", Keys: []KeyShortcut{ctrlShift(key.CodeS)}},
		{Action: "open", Keys: []KeyShortcut{ctrl(key.CodeO)}},
		{Action: "new", Keys: []KeyShortcut{ctrl(key.CodeN)}},
		{Action: "copy", Keys: []KeyShortcut{ctrl(key.CodeC)}},
		{Action: "paste", Keys: []KeyShortcut{ctrl(key.CodeV)}},
		{Action: "pick-color", Keys: []KeyShortcut{ctrl(key.CodeP)}},
		{Action: "quit", Keys: []KeyShortcut{ctrl(key.CodeQ)}},
	}
}

type keymap struct {
	actions map[KeyShortcut]string
	repeat  map[string]bool
}

func newKeymap(bs []Binding) keymap {
	km := keymap{actions: map[KeyShortcut]string{}, repeat: map[string]bool{}}
	for _, b := range bs {
		for _, k := range b.Keys {
			km.actions[k] = b.Action
		}
		km.repeat[b.Action] = b.Repeat
	}
	return km
}

// lookup matches by key code first and falls back to the rune, which is
// how punctuation that moves between layouts is bound.
func (km keymap) lookup(e key.Event) (string, bool) {
	if e.Direction == key.DirRelease {
		return "", false
	}
	if a, ok := km.actions[KeyShortcut{Code: e.Code, Modifiers: e.Modifiers}]; ok {
		return km.allow(a, e)
	}
	if e.Rune > 0 {
		mods := e.Modifiers &^ key.ModShift
		if a, ok := km.actions[KeyShortcut{Rune: unicode.ToLower(e.Rune), Modifiers: mods}]; ok {
			return km.allow(a, e)
		}
	}
	return "", false
}

func (km keymap) allow(action string, e key.Event) (string, bool) {
	if e.Direction == key.DirNone && !km.repeat[action] {
		return "", false
	}
	return action, true
}
