package parameter

// Hit Points
const (
	CombatPlayerHP = 100
	CombatEnemyHP  = 80
)

// Charges
const (
	CombatHeals   = 3
	CombatAbility = 1
)

// Damage Ranges (inclusive)
const (
	CombatAttackMin  = 8
	CombatAttackMax  = 15
	CombatHealMin    = 12
	CombatHealMax    = 25
	CombatAbilityMin = 20
	CombatAbilityMax = 35
	CombatEnemyMin   = 5
	CombatEnemyMax   = 14
)

// Log
const (
	// CombatLogLines is the number of recent log lines displayed
	CombatLogLines = 4

	// GarbleLength is the length of generated unreadable enemy names
	GarbleLength = 8

	// GarbleCharset is the glyph pool for unreadable names
	GarbleCharset = "%&*^#@$!<>?/~"
)
