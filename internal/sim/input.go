package sim

// DirectionSet tracks the currently-held directional keys as a bitmask.
type DirectionSet uint8

const (
	DirUp DirectionSet = 1 << iota
	DirDown
	DirLeft
	DirRight
)

// Has reports whether the direction is held.
func (d DirectionSet) Has(dir DirectionSet) bool {
	return d&dir != 0
}

// Axes collapses the held set into per-axis -1/0/+1 components.
func (d DirectionSet) Axes() (vx, vy float64) {
	if d.Has(DirLeft) {
		vx -= 1
	}
	if d.Has(DirRight) {
		vx += 1
	}
	if d.Has(DirUp) {
		vy -= 1
	}
	if d.Has(DirDown) {
		vy += 1
	}
	return vx, vy
}

// Overlay names the movement-blocking UI surface currently open. The core
// owns this state; the presentation layer only sends toggle commands.
type Overlay string

const (
	OverlayNone      Overlay = ""
	OverlayInventory Overlay = "inventory"
	OverlayShop      Overlay = "shop"
	OverlayHelp      Overlay = "help"
)

// CommandType enumerates the intents the UI layer can stage for the next
// tick.
type CommandType string

const (
	// CommandSetHeld replaces the held-direction set.
	CommandSetHeld CommandType = "SetHeld"
	// CommandInteract opens dialogue/shop, or advances active dialogue.
	CommandInteract CommandType = "Interact"
	// CommandCancel closes the dialogue session or the open overlay.
	CommandCancel CommandType = "Cancel"
	// CommandToggleInventory opens or closes the inventory overlay.
	CommandToggleInventory CommandType = "ToggleInventory"
	// CommandToggleHelp opens or closes the help overlay.
	CommandToggleHelp CommandType = "ToggleHelp"
	// CommandSellGift sells one satchel entry while the shop is open.
	CommandSellGift CommandType = "SellGift"
	// CommandSellAll sells the whole satchel while the shop is open.
	CommandSellAll CommandType = "SellAll"
	// CommandHardReset wipes the save and reinitializes all core state.
	CommandHardReset CommandType = "HardReset"
)

// Command is an intent captured for processing at the head of a tick.
type Command struct {
	Type   CommandType
	Held   DirectionSet
	GiftID string
}
