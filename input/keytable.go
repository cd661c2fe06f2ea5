package input

import "github.com/gdamore/tcell/v2"

// KeyEntry describes a special key's intent without function pointers
type KeyEntry struct {
	IntentType IntentType
	ScrollDir  ScrollDir
	Unit       ScrollUnit
}

// KeyTable maps non-rune keys to intents; runes are always IntentKey
type KeyTable struct {
	// Special keys (Ctrl+*, arrows, paging)
	SpecialKeys map[tcell.Key]KeyEntry
}

// DefaultKeyTable returns the default key bindings
func DefaultKeyTable() *KeyTable {
	return &KeyTable{
		SpecialKeys: map[tcell.Key]KeyEntry{
			tcell.KeyCtrlQ:  {IntentType: IntentQuit},
			tcell.KeyCtrlC:  {IntentType: IntentQuit},
			tcell.KeyCtrlS:  {IntentType: IntentToggleMute},
			tcell.KeyEscape: {IntentType: IntentEscape},
			tcell.KeyUp:     {IntentType: IntentScroll, ScrollDir: ScrollUp, Unit: ScrollLine},
			tcell.KeyDown:   {IntentType: IntentScroll, ScrollDir: ScrollDown, Unit: ScrollLine},
			tcell.KeyPgUp:   {IntentType: IntentScroll, ScrollDir: ScrollUp, Unit: ScrollPage},
			tcell.KeyPgDn:   {IntentType: IntentScroll, ScrollDir: ScrollDown, Unit: ScrollPage},
		},
	}
}

// Lookup returns the entry bound to a special key
func (kt *KeyTable) Lookup(key tcell.Key) (KeyEntry, bool) {
	e, ok := kt.SpecialKeys[key]
	return e, ok
}
