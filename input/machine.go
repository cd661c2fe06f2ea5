package input

import (
	"unicode"

	"github.com/gdamore/tcell/v2"
)

// Machine parses tcell events into semantic intents
// Single goroutine: owned by the game loop
type Machine struct {
	keyTable *KeyTable
	mouse    MouseDecoder
}

// NewMachine creates a new input machine
func NewMachine() *Machine {
	return &Machine{keyTable: DefaultKeyTable()}
}

// Process converts one terminal event; unhandled events yield IntentNone
func (m *Machine) Process(ev tcell.Event) Intent {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return m.processKey(ev)
	case *tcell.EventMouse:
		return m.processMouse(ev)
	case *tcell.EventResize:
		w, h := ev.Size()
		return Intent{Type: IntentResize, X: w, Y: h}
	case *tcell.EventFocus:
		if !ev.Focused {
			m.mouse.Reset()
		}
	}
	return Intent{}
}

func (m *Machine) processKey(ev *tcell.EventKey) Intent {
	if ev.Key() == tcell.KeyRune {
		return Intent{Type: IntentKey, Char: unicode.ToLower(ev.Rune())}
	}
	if e, ok := m.keyTable.Lookup(ev.Key()); ok {
		return Intent{Type: e.IntentType, ScrollDir: e.ScrollDir, Unit: e.Unit}
	}
	return Intent{}
}

func (m *Machine) processMouse(ev *tcell.EventMouse) Intent {
	act := m.mouse.Decode(ev)
	switch {
	case act.Scroll != ScrollNone:
		return Intent{Type: IntentScroll, ScrollDir: act.Scroll, Unit: ScrollWheel, X: act.X, Y: act.Y}
	case act.Click:
		return Intent{Type: IntentMouseClick, X: act.X, Y: act.Y}
	}
	return Intent{}
}
