package fsm

import (
	"time"

	"github.com/lixenwraith/idle-city/event"
)

// StateID is a unique identifier for a node
type StateID int

// StateNone marks the absence of a state (root parent, uninitialized machine)
const StateNone StateID = 0

// Machine is a generic hierarchical finite state machine with a single active path
// T is the context type passed to actions and guards
type Machine[T any] struct {
	// Graph data, immutable after CompilePaths
	nodes map[StateID]*Node[T]

	// Runtime state
	activeID    StateID       // current leaf
	activePath  []StateID     // root -> leaf
	timeInState time.Duration // time since last transition
}

// Node is a state in the hierarchy
type Node[T any] struct {
	ID       StateID
	Name     string
	ParentID StateID

	// Path from root to this node, filled by CompilePaths for LCA lookup
	Path []StateID

	OnEnter  []ActionFunc[T]
	OnUpdate []ActionFunc[T]
	OnExit   []ActionFunc[T]

	// Transitions in evaluation order
	Transitions []Transition[T]
}

// Transition links a source node to a target leaf
type Transition[T any] struct {
	TargetID StateID
	Event    event.EventType // EventNone = evaluated every tick
	Guard    GuardFunc[T]    // nil = always
}

// GuardFunc returns true if the transition should fire
type GuardFunc[T any] func(ctx T, timeInState time.Duration) bool

// ActionFunc executes a side effect
type ActionFunc[T any] func(ctx T)
