package parameter

import "time"

// Income
const (
	// IncomePeriod is the accumulated time after which passive income is paid
	IncomePeriod = time.Second

	// AdminMultiplier is the default global income multiplier
	AdminMultiplier = 10.0

	// OtherMultiplier is the starting research multiplier
	OtherMultiplier = 1.0

	// ShipIncomeBonus is the income bonus per black hole ship
	ShipIncomeBonus = 0.05

	// SeenThreshold is the fraction of cost at which an item becomes visible
	SeenThreshold = 0.1
)

// Sanity Gauge
const (
	// SanityTarget is the full gauge value
	SanityTarget = 200

	SanityIncCity       = 4
	SanityIncResearch   = 12
	SanityIncTechnology = 8
	SanityIncBlackhole  = 20

	SanityEventMineHalf    = 25
	SanityEventBHUnlock    = 40
	SanityEventBHFinish    = 80
	SanityEventFallback    = 1
	SanityBlackholeDivisor = 4

	// SanityFocusShiftMessage is shown after returning from the map
	SanityFocusShiftMessage = "You feel your focus shift... new challenges matter more now."
)

// Mining
const (
	// OreDamageStart is the initial manual mining damage
	OreDamageStart = 10

	// StartDepth is the initial mine depth
	StartDepth = 1

	// BlackholeShardCost is the orichalcum shard cost of the black hole
	BlackholeShardCost = 1

	// BlackholeMoneyCost is the money cost of the black hole
	BlackholeMoneyCost = 5_000_000_000

	// BlackholeShardOre names the ore consumed by the black hole unlock
	BlackholeShardOre = "orichalcum_shard"

	// BlackholeMinDepth is the max depth required to unlock the black hole
	BlackholeMinDepth = 5

	// MapSendDepth is the depth unlock that triggers a trip to the map
	MapSendDepth = 4

	// DepthReturnDepth is the send depth which arms the technology revisit bonus
	DepthReturnDepth = 3
)

// Admin
const (
	// AdminOreGrant is granted per ore type by the admin key
	AdminOreGrant = 50

	AdminOreMessage = "[ADMIN] +50 ore granted!"
)

// Transitions & Messages
const (
	// GlitchDuration is the length of the world-change transition
	GlitchDuration = 5 * time.Second

	// ZoneHighlightDuration is how long an entered zone flashes before combat
	ZoneHighlightDuration = 250 * time.Millisecond

	// MessageDuration is the lifetime of transient footer messages
	MessageDuration = time.Second

	// LongMessageDuration is used for page-level notices
	LongMessageDuration = 3 * time.Second
)

// Map
const (
	// ZonePadCol widens each label zone horizontally on both sides
	ZonePadCol = 2

	// MapScrollStep is the rows scrolled per mouse wheel step
	MapScrollStep = 3

	// MapDefeatReturnEvery and MapDefeatReturnMax select total-defeat counts that send the player back to the city
	MapDefeatReturnEvery = 2
	MapDefeatReturnMax   = 6
)
