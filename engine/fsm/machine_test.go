package fsm

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/idle-city/event"
)

const (
	stRoot StateID = iota + 1
	stGroup
	stA
	stB
	stC
)

type trace struct {
	log     []string
	allowed bool
}

func buildMachine(t *testing.T) *Machine[*trace] {
	t.Helper()
	m := NewMachine[*trace]()
	m.AddState(stRoot, "root", StateNone)
	m.AddState(stGroup, "group", stRoot).
		Enter(func(tr *trace) { tr.log = append(tr.log, "enter group") }).
		Exit(func(tr *trace) { tr.log = append(tr.log, "exit group") }).
		Tick(func(tr *trace) { tr.log = append(tr.log, "tick group") }).
		On(Transition[*trace]{TargetID: stC, Event: event.EventShowMap})
	m.AddState(stA, "a", stGroup).
		Enter(func(tr *trace) { tr.log = append(tr.log, "enter a") }).
		Exit(func(tr *trace) { tr.log = append(tr.log, "exit a") }).
		On(Transition[*trace]{TargetID: stB, Event: event.EventShowResearch, Guard: func(tr *trace, _ time.Duration) bool { return tr.allowed }})
	m.AddState(stB, "b", stGroup).
		Enter(func(tr *trace) { tr.log = append(tr.log, "enter b") })
	m.AddState(stC, "c", stRoot).
		Enter(func(tr *trace) { tr.log = append(tr.log, "enter c") }).
		On(Transition[*trace]{TargetID: stA, Guard: func(_ *trace, in time.Duration) bool { return in >= time.Second }})
	require.NoError(t, m.CompilePaths())
	return m
}

func TestInitEntersWholePath(t *testing.T) {
	m := buildMachine(t)
	tr := &trace{}
	require.NoError(t, m.Init(tr, stA))
	assert.Equal(t, []string{"enter group", "enter a"}, tr.log)
	assert.True(t, m.In(stGroup))
	assert.Equal(t, "a", m.CurrentName())
}

func TestGuardBlocksTransition(t *testing.T) {
	m := buildMachine(t)
	tr := &trace{}
	require.NoError(t, m.Init(tr, stA))

	assert.False(t, m.HandleEvent(tr, event.EventShowResearch))
	assert.Equal(t, stA, m.Current())

	tr.allowed = true
	tr.log = nil
	assert.True(t, m.HandleEvent(tr, event.EventShowResearch))
	assert.Equal(t, stB, m.Current())
	// sibling move keeps the shared parent active
	assert.Equal(t, []string{"exit a", "enter b"}, tr.log)
}

func TestEventBubblesToParent(t *testing.T) {
	m := buildMachine(t)
	tr := &trace{}
	require.NoError(t, m.Init(tr, stA))
	tr.log = nil

	assert.True(t, m.HandleEvent(tr, event.EventShowMap))
	assert.Equal(t, stC, m.Current())
	assert.Equal(t, []string{"exit a", "exit group", "enter c"}, tr.log)
	assert.False(t, m.In(stGroup))
}

func TestUpdateRunsPathAndTickTransitions(t *testing.T) {
	m := buildMachine(t)
	tr := &trace{}
	require.NoError(t, m.Init(tr, stA))
	tr.log = nil

	m.Update(tr, 100*time.Millisecond)
	assert.Equal(t, []string{"tick group"}, tr.log)

	require.True(t, m.HandleEvent(tr, event.EventShowMap))
	m.Update(tr, 500*time.Millisecond)
	assert.Equal(t, stC, m.Current())
	m.Update(tr, 500*time.Millisecond)
	assert.Equal(t, stA, m.Current())
	assert.Equal(t, time.Duration(0), m.TimeInState())
}

func TestCompilePathsRejectsBadGraph(t *testing.T) {
	m := NewMachine[*trace]()
	m.AddState(stA, "a", stGroup)
	assert.Error(t, m.CompilePaths())

	m = NewMachine[*trace]()
	m.AddState(stA, "a", StateNone).On(Transition[*trace]{TargetID: stB})
	assert.Error(t, m.CompilePaths())
}

func TestInitUnknownState(t *testing.T) {
	m := buildMachine(t)
	assert.Error(t, m.Init(&trace{}, StateID(99)))
}
