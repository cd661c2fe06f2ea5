package terminal

import (
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/gdamore/tcell/v2"
)

// Terminal provides screen access to the game loop
type Terminal interface {
	// Init enters the alternate screen, hides the cursor and enables mouse reporting
	Init() error

	// Fini restores terminal state. Safe to call multiple times
	Fini()

	// Size returns current terminal dimensions
	Size() (width, height int)

	// ColorMode returns the resolved color capability
	ColorMode() ColorMode

	// PollEvent blocks until the next input event, nil after Fini
	PollEvent() tcell.Event

	// PostEvent injects a synthetic event
	PostEvent(tcell.Event) error

	// Screen exposes the tcell screen for rendering
	Screen() tcell.Screen
}

// termImpl implements Terminal over a tcell screen
type termImpl struct {
	screen tcell.Screen
	mode   ColorMode

	mu          sync.Mutex
	initialized bool
	finalized   bool
}

// New creates a terminal on the controlling tty
// ColorMode256 makes tcell quantize RGB styles to the palette
func New(mode ColorMode) (Terminal, error) {
	mode = mode.resolve()
	if mode == ColorMode256 {
		os.Setenv("TCELL_TRUECOLOR", "disable")
	}
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("open screen: %w", err)
	}
	return NewWithScreen(screen, mode), nil
}

// NewWithScreen wraps an existing screen, tests pass a simulation screen
func NewWithScreen(screen tcell.Screen, mode ColorMode) Terminal {
	return &termImpl{screen: screen, mode: mode.resolve()}
}

func (t *termImpl) Init() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.initialized {
		return nil
	}
	if err := t.screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	t.screen.SetStyle(tcell.StyleDefault)
	t.screen.HideCursor()
	t.screen.EnableMouse(tcell.MouseButtonEvents)
	t.screen.EnableFocus()
	t.screen.Clear()
	t.initialized = true
	return nil
}

func (t *termImpl) Fini() {
	t.mu.Lock()
	defer t.mu.Unlock()

	if !t.initialized || t.finalized {
		return
	}
	t.finalized = true
	t.screen.DisableMouse()
	t.screen.Fini()
}

func (t *termImpl) Size() (int, int) {
	return t.screen.Size()
}

func (t *termImpl) ColorMode() ColorMode {
	return t.mode
}

func (t *termImpl) PollEvent() tcell.Event {
	return t.screen.PollEvent()
}

func (t *termImpl) PostEvent(ev tcell.Event) error {
	return t.screen.PostEvent(ev)
}

func (t *termImpl) Screen() tcell.Screen {
	return t.screen
}

// ANSI sequences written by EmergencyReset
var (
	csiMouseClickOff  = []byte("\x1b[?1000l")
	csiMouseDragOff   = []byte("\x1b[?1002l")
	csiMouseMotionOff = []byte("\x1b[?1003l")
	csiMouseSGROff    = []byte("\x1b[?1006l")
	csiFocusOff       = []byte("\x1b[?1004l")
	csiCursorShow     = []byte("\x1b[?25h")
	csiAltScreenExit  = []byte("\x1b[?1049l")
	csiSGR0           = []byte("\x1b[0m")
	csiAutoWrapOn     = []byte("\x1b[?7h")
)

// EmergencyReset attempts to restore terminal to sane state
// Call this from panic recovery if Fini() cannot be called normally
func EmergencyReset(w io.Writer) {
	for _, seq := range [][]byte{
		csiMouseMotionOff, csiMouseDragOff, csiMouseClickOff, csiMouseSGROff, csiFocusOff,
		csiCursorShow, csiAltScreenExit, csiSGR0, csiAutoWrapOn,
	} {
		w.Write(seq)
	}

	if f, ok := w.(*os.File); ok {
		f.Sync()
	}

	// escape sequences alone don't restore termios
	resetTerminalMode()
}
