package input

// IntentType discriminates semantic actions
type IntentType uint8

const (
	IntentNone IntentType = iota

	// System-level intents
	IntentQuit       // Ctrl+Q, Ctrl+C
	IntentToggleMute // Ctrl+S
	IntentEscape     // ESC key (context-dependent)
	IntentResize     // Terminal resize event

	// Page intents
	IntentKey    // Printable rune, folded to lower case, meaning depends on the page
	IntentScroll // Arrows, PgUp/PgDn, mouse wheel

	// Mouse
	IntentMouseClick // Left button press edge
)

var intentNames = map[IntentType]string{
	IntentNone:       "none",
	IntentQuit:       "quit",
	IntentToggleMute: "toggle_mute",
	IntentEscape:     "escape",
	IntentResize:     "resize",
	IntentKey:        "key",
	IntentScroll:     "scroll",
	IntentMouseClick: "mouse_click",
}

func (t IntentType) String() string {
	if name, ok := intentNames[t]; ok {
		return name
	}
	return "unknown"
}

// ScrollUnit sizes a scroll step; the page that consumes it picks the row count
type ScrollUnit uint8

const (
	ScrollLine  ScrollUnit = iota // Up/Down arrow
	ScrollWheel                   // mouse wheel notch
	ScrollPage                    // PgUp/PgDn
)

// ScrollDir for scroll intents
type ScrollDir int8

const (
	ScrollNone ScrollDir = 0
	ScrollUp   ScrollDir = -1
	ScrollDown ScrollDir = 1
)

// Intent represents a parsed semantic action
// Pure data struct with no function pointers or engine dependencies
type Intent struct {
	Type      IntentType
	Char      rune       // IntentKey
	ScrollDir ScrollDir  // IntentScroll
	Unit      ScrollUnit // IntentScroll
	X, Y      int        // IntentMouseClick, 0-based cell; IntentResize, new size
}
