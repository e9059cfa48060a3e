package systems

// System IDs, used for perf tracking and log attributes.
const (
	IDCountdown   = "countdown"
	IDPlayerInput = "playerInput"
	IDConfine     = "confine"
	IDMotion      = "motion"
	IDBob         = "bob"
	IDPickup      = "pickup"
	IDWalls       = "walls"
)

// SystemInfo describes a game system for display.
type SystemInfo struct {
	ID          string // Internal identifier (used for perf tracking)
	Name        string // Display name
	Description string // What this system does
	Category    string // Grouping (e.g., "movement", "collision")
}

// SystemRegistry holds metadata about all systems.
// This centralizes system naming so the HUD and perf tracker stay in sync.
type SystemRegistry struct {
	byID map[string]SystemInfo
}

// NewSystemRegistry creates a registry with all known systems.
func NewSystemRegistry() *SystemRegistry {
	reg := &SystemRegistry{
		byID: make(map[string]SystemInfo),
	}
	reg.registerDefaults()
	return reg
}

// registerDefaults adds all known systems to the registry.
// Update this when adding new systems.
func (r *SystemRegistry) registerDefaults() {
	r.Register(SystemInfo{ID: IDCountdown, Name: "Countdown", Description: "Advances the splash timer", Category: "state"})

	r.Register(SystemInfo{ID: IDPlayerInput, Name: "Player Input", Description: "Moves the player from held keys", Category: "movement"})
	r.Register(SystemInfo{ID: IDConfine, Name: "Confine", Description: "Keeps the player inside the window", Category: "movement"})
	r.Register(SystemInfo{ID: IDMotion, Name: "Motion", Description: "Moves and bounces peeps", Category: "movement"})
	r.Register(SystemInfo{ID: IDBob, Name: "Bob", Description: "Oscillates bounced peeps", Category: "movement"})

	r.Register(SystemInfo{ID: IDPickup, Name: "Pickup", Description: "Collects peeps touching the player", Category: "collision"})
	r.Register(SystemInfo{ID: IDWalls, Name: "Walls", Description: "Kills the player on wall contact", Category: "collision"})
}

// Register adds a system to the registry.
func (r *SystemRegistry) Register(info SystemInfo) {
	r.byID[info.ID] = info
}

// GetName returns the display name for a system ID.
// Falls back to the ID itself if not found.
func (r *SystemRegistry) GetName(id string) string {
	if info, ok := r.byID[id]; ok {
		return info.Name
	}
	return id
}
