package fsm

import (
	"fmt"
	"slices"
	"time"

	"github.com/lixenwraith/idle-city/event"
)

// NewMachine creates an empty FSM
func NewMachine[T any]() *Machine[T] {
	return &Machine[T]{
		nodes:      make(map[StateID]*Node[T]),
		activePath: make([]StateID, 0, 4),
	}
}

// Init enters the initial state, running OnEnter from root to leaf
func (m *Machine[T]) Init(ctx T, initialID StateID) error {
	node, ok := m.nodes[initialID]
	if !ok {
		return fmt.Errorf("initial state ID %d not found", initialID)
	}
	if len(node.Path) == 0 {
		return fmt.Errorf("initial state %q has no compiled path", node.Name)
	}

	m.activeID = initialID
	m.activePath = append(m.activePath[:0], node.Path...)
	m.timeInState = 0

	for _, id := range m.activePath {
		for _, action := range m.nodes[id].OnEnter {
			action(ctx)
		}
	}
	return nil
}

// Update advances time, runs OnUpdate along the active path and evaluates tick transitions
func (m *Machine[T]) Update(ctx T, dt time.Duration) {
	if m.activeID == StateNone {
		return
	}
	m.timeInState += dt

	for _, id := range m.activePath {
		for _, action := range m.nodes[id].OnUpdate {
			action(ctx)
		}
	}

	m.fire(ctx, event.EventNone)
}

// HandleEvent routes an event through the active path, leaf first
// Returns true if a transition fired
func (m *Machine[T]) HandleEvent(ctx T, eventType event.EventType) bool {
	if m.activeID == StateNone || eventType == event.EventNone {
		return false
	}
	return m.fire(ctx, eventType)
}

// fire evaluates transitions for eventType bubbling from leaf to root
func (m *Machine[T]) fire(ctx T, eventType event.EventType) bool {
	for currID := m.activeID; currID != StateNone; {
		node := m.nodes[currID]
		for _, trans := range node.Transitions {
			if trans.Event != eventType {
				continue
			}
			if trans.Guard == nil || trans.Guard(ctx, m.timeInState) {
				m.transition(ctx, trans.TargetID)
				return true
			}
		}
		currID = node.ParentID
	}
	return false
}

// transition exits up to the lowest common ancestor then enters down to the target
func (m *Machine[T]) transition(ctx T, targetID StateID) {
	if m.activeID == targetID {
		return
	}
	targetNode, ok := m.nodes[targetID]
	if !ok {
		panic(fmt.Sprintf("fsm: transition to unknown state ID %d", targetID))
	}

	lca := -1
	targetPath := targetNode.Path
	for i := 0; i < min(len(m.activePath), len(targetPath)); i++ {
		if m.activePath[i] != targetPath[i] {
			break
		}
		lca = i
	}

	for i := len(m.activePath) - 1; i > lca; i-- {
		for _, action := range m.nodes[m.activePath[i]].OnExit {
			action(ctx)
		}
	}

	// State is switched before OnEnter so enter actions observe the new state
	m.activeID = targetID
	m.activePath = append(m.activePath[:0], targetPath...)
	m.timeInState = 0

	for i := lca + 1; i < len(targetPath); i++ {
		for _, action := range m.nodes[targetPath[i]].OnEnter {
			action(ctx)
		}
	}
}

// Current returns the active leaf
func (m *Machine[T]) Current() StateID {
	return m.activeID
}

// CurrentName returns the active leaf name
func (m *Machine[T]) CurrentName() string {
	if node, ok := m.nodes[m.activeID]; ok {
		return node.Name
	}
	return ""
}

// In reports whether id is the active leaf or one of its ancestors
func (m *Machine[T]) In(id StateID) bool {
	return slices.Contains(m.activePath, id)
}

// TimeInState returns time since the last transition
func (m *Machine[T]) TimeInState() time.Duration {
	return m.timeInState
}
