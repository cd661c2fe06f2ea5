package event

// EventType represents the type of game event
type EventType int

const (
	// EventNone is the zero value, never pushed
	EventNone EventType = iota

	// === Audio Event ===

	// EventSoundRequest requests audio playback
	// Trigger: Systems requiring audio feedback
	// Consumer: AudioSystem | Payload: *SoundRequestPayload
	EventSoundRequest

	// === Navigation Event ===

	// EventShowCity switches to the city page
	// Trigger: 'r' on a world-1 sub page
	// Consumer: Page FSM | Payload: nil
	EventShowCity

	// EventShowResearch switches to the research page when unlocked
	// Trigger: 'r' on the city page
	// Consumer: Page FSM | Payload: nil
	EventShowResearch

	// EventShowTechnology switches to the technology page when unlocked
	// Trigger: 't' on the city page
	// Consumer: Page FSM | Payload: nil
	EventShowTechnology

	// EventShowBlackhole switches to the black hole page when unlocked
	// Trigger: 'b' on the city page
	// Consumer: Page FSM | Payload: nil
	EventShowBlackhole

	// EventSendToMap starts the glitch transition into the map
	// Trigger: 'k' on world-1 pages, milestone purchases
	// Consumer: Page FSM, SanitySystem, AudioSystem | Payload: *SendToMapPayload
	EventSendToMap

	// EventShowMap returns to the map from the kill list or a won fight
	// Trigger: InputHandler, CombatSystem
	// Consumer: Page FSM | Payload: nil
	EventShowMap

	// EventShowKillList opens the kill list
	// Trigger: map header button, 'l' on the map
	// Consumer: Page FSM | Payload: nil
	EventShowKillList

	// EventEnterCombat starts a fight in a region
	// Trigger: MapSystem after the zone highlight
	// Consumer: Page FSM, CombatSystem | Payload: *EnterCombatPayload
	EventEnterCombat

	// EventReturnToCity leaves world 2 for the city
	// Trigger: CombatSystem outcome acknowledgement
	// Consumer: Page FSM | Payload: nil
	EventReturnToCity

	// EventVictory shows the final screen
	// Trigger: CombatSystem after the last region falls
	// Consumer: Page FSM | Payload: nil
	EventVictory

	// === Progression Event ===

	// EventPurchase reports an accepted purchase
	// Trigger: Upgrade, Research, Mining, Blackhole systems
	// Consumer: TelemetrySystem | Payload: *PurchasePayload
	EventPurchase

	// EventSanityProgress adds a stage increment when the stage matches
	// Trigger: purchases
	// Consumer: SanitySystem | Payload: *SanityProgressPayload
	EventSanityProgress

	// EventSanityMilestone awards a one-shot named milestone
	// Trigger: MiningSystem, BlackholeSystem, ResearchSystem
	// Consumer: SanitySystem | Payload: *SanityMilestonePayload
	EventSanityMilestone

	// EventSanityFill sets the gauge to its target
	// Trigger: research unlock
	// Consumer: SanitySystem | Payload: nil
	EventSanityFill

	// EventOreBroken reports a mined-out ore
	// Trigger: MiningSystem
	// Consumer: TelemetrySystem | Payload: *OreBrokenPayload
	EventOreBroken

	// EventEnemyDefeated reports a won fight
	// Trigger: CombatSystem
	// Consumer: TelemetrySystem | Payload: *EnemyDefeatedPayload
	EventEnemyDefeated

	// === UI Event ===

	// EventMessage shows a transient footer message
	// Trigger: any system
	// Consumer: MessageSystem | Payload: *MessagePayload
	EventMessage

	// === Runtime Event ===

	// EventSettingsReloaded applies live-tunable settings
	// Trigger: settings file watcher goroutine
	// Consumer: SettingsSystem | Payload: *SettingsPayload
	EventSettingsReloaded
)

var eventNames = map[EventType]string{
	EventNone:             "none",
	EventSoundRequest:     "sound_request",
	EventShowCity:         "show_city",
	EventShowResearch:     "show_research",
	EventShowTechnology:   "show_technology",
	EventShowBlackhole:    "show_blackhole",
	EventSendToMap:        "send_to_map",
	EventShowMap:          "show_map",
	EventShowKillList:     "show_kill_list",
	EventEnterCombat:      "enter_combat",
	EventReturnToCity:     "return_to_city",
	EventVictory:          "victory",
	EventPurchase:         "purchase",
	EventSanityProgress:   "sanity_progress",
	EventSanityMilestone:  "sanity_milestone",
	EventSanityFill:       "sanity_fill",
	EventOreBroken:        "ore_broken",
	EventEnemyDefeated:    "enemy_defeated",
	EventMessage:          "message",
	EventSettingsReloaded: "settings_reloaded",
}

func (t EventType) String() string {
	if name, ok := eventNames[t]; ok {
		return name
	}
	return "unknown"
}

// GameEvent is a typed event with an optional payload pointer
type GameEvent struct {
	Type    EventType
	Payload any
}
