package terminal

import "fmt"

// keyToName maps named keys to human-readable names for diagnostics
var keyToName = map[Key]string{
	KeyTab:       "tab",
	KeyEnter:     "enter",
	KeyEscape:    "escape",
	KeyBackspace: "backspace",

	KeyUp:       "up",
	KeyDown:     "down",
	KeyLeft:     "left",
	KeyRight:    "right",
	KeyHome:     "home",
	KeyEnd:      "end",
	KeyPageUp:   "page_up",
	KeyPageDown: "page_down",
	KeyInsert:   "insert",
	KeyDelete:   "delete",

	KeyF1:  "f1",
	KeyF2:  "f2",
	KeyF3:  "f3",
	KeyF4:  "f4",
	KeyF5:  "f5",
	KeyF6:  "f6",
	KeyF7:  "f7",
	KeyF8:  "f8",
	KeyF9:  "f9",
	KeyF10: "f10",
	KeyF11: "f11",
	KeyF12: "f12",
}

// nameToKey is the reverse lookup, built from keyToName
var nameToKey map[string]Key

func init() {
	nameToKey = make(map[string]Key, len(keyToName)+26)
	for k, name := range keyToName {
		nameToKey[name] = k
	}
	for k := KeyCtrlA; k <= KeyCtrlZ; k++ {
		nameToKey[fmt.Sprintf("ctrl_%c", 'a'+rune(k-KeyCtrlA))] = k
	}
}

// KeyName returns a human-readable name for a key code
// Returns empty string when the key has no well-known name
func KeyName(k Key) string {
	if name, ok := keyToName[k]; ok {
		return name
	}
	if k.Printable() {
		return string(rune(k))
	}
	// Tab, Enter and Escape are named above, the rest of the C0
	// range reads as a control chord
	if k >= KeyCtrlA && k <= KeyCtrlZ {
		return fmt.Sprintf("ctrl_%c", 'a'+rune(k-KeyCtrlA))
	}
	return ""
}

// KeyByName resolves a key name back to its code, for key bindings
// loaded from configuration. Single printable characters resolve to
// themselves.
func KeyByName(name string) (Key, bool) {
	if k, ok := nameToKey[name]; ok {
		return k, true
	}
	if r := []rune(name); len(r) == 1 && Key(r[0]).Printable() {
		return Key(r[0]), true
	}
	return KeyNone, false
}
