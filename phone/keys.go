package phone

import (
	"fmt"
	"strings"
)

// KeyPress is a host key event reduced to what the field cares about.
type KeyPress struct {
	Key   string `json:"key"`
	Ctrl  bool   `json:"ctrl,omitempty"`
	Shift bool   `json:"shift,omitempty"`
}

type keyAction uint8

const (
	keyNone keyAction = iota
	keyUndo
	keyRedo
)

// action maps Ctrl+Z to undo and Ctrl+Shift+Z to redo.
func (k KeyPress) action() keyAction {
	if !k.Ctrl || !strings.EqualFold(k.Key, "z") {
		return keyNone
	}
	if k.Shift {
		return keyRedo
	}
	return keyUndo
}

// ParseKeyPress reads combos such as "ctrl+z" or "Ctrl+Shift+Z".
func ParseKeyPress(s string) (KeyPress, error) {
	var k KeyPress
	parts := strings.Split(strings.TrimSpace(s), "+")
	for i, p := range parts {
		p = strings.TrimSpace(p)
		if i == len(parts)-1 {
			if p == "" {
				return KeyPress{}, fmt.Errorf("phone: key combo %q has no key", s)
			}
			k.Key = p
			break
		}
		switch strings.ToLower(p) {
		case "ctrl", "control":
			k.Ctrl = true
		case "shift":
			k.Shift = true
		default:
			return KeyPress{}, fmt.Errorf("phone: unknown modifier %q in %q", p, s)
		}
	}
	return k, nil
}

func (k KeyPress) String() string {
	var b strings.Builder
	if k.Ctrl {
		b.WriteString("ctrl+")
	}
	if k.Shift {
		b.WriteString("shift+")
	}
	b.WriteString(strings.ToLower(k.Key))
	return b.String()
}
