package terminal

import "testing"

func TestKeyPrintable(t *testing.T) {
	printable := []Key{Key(' '), Key('a'), Key('Z'), Key('~'), Key('0')}
	for _, k := range printable {
		if !k.Printable() {
			t.Errorf("Expected %d to be printable", k)
		}
	}
	unprintable := []Key{KeyNone, KeyEnter, KeyBackspace, KeyEscape, KeyUp, KeyF1, Key(31)}
	for _, k := range unprintable {
		if k.Printable() {
			t.Errorf("Expected %d not to be printable", k)
		}
	}
}

func TestKeyRune(t *testing.T) {
	if r := Key('g').Rune(); r != 'g' {
		t.Errorf("Expected 'g', got %q", r)
	}
	if r := KeyEnter.Rune(); r != 0 {
		t.Errorf("Expected 0 for unprintable key, got %q", r)
	}
}

func TestKeyName(t *testing.T) {
	cases := []struct {
		key  Key
		want string
	}{
		{KeyEnter, "enter"},
		{KeyBackspace, "backspace"},
		{KeyPageUp, "page_up"},
		{KeyCtrlR, "ctrl_r"},
		{KeyCtrlD, "ctrl_d"},
		{KeyF5, "f5"},
		{Key('g'), "g"},
		{KeyNone, ""},
	}
	for _, tc := range cases {
		if got := KeyName(tc.key); got != tc.want {
			t.Errorf("KeyName(%d): expected %q, got %q", tc.key, tc.want, got)
		}
	}
}

func TestKeyByName(t *testing.T) {
	cases := []struct {
		name string
		want Key
		ok   bool
	}{
		{"ctrl_r", KeyCtrlR, true},
		{"page_down", KeyPageDown, true},
		{"tab", KeyTab, true},
		{"ctrl_i", KeyTab, true},
		{"g", Key('g'), true},
		{"bogus", KeyNone, false},
		{"", KeyNone, false},
	}
	for _, tc := range cases {
		got, ok := KeyByName(tc.name)
		if got != tc.want || ok != tc.ok {
			t.Errorf("KeyByName(%q): expected (%d, %v), got (%d, %v)", tc.name, tc.want, tc.ok, got, ok)
		}
	}
}
