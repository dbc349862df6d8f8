package net

import (
	"github.com/peggy10039/cat-village-gaming/internal/geom"
	"github.com/peggy10039/cat-village-gaming/internal/sim"
)

type joinResponse struct {
	ID        string       `json:"id"`
	Config    sim.Config   `json:"config"`
	Obstacles []geom.Rect  `json:"obstacles"`
	Shop      shopView     `json:"shop"`
	TickRate  int          `json:"tickRate"`
	Heartbeat int64        `json:"heartbeatMillis"`
	Snapshot  sim.Snapshot `json:"snapshot"`
}

type shopView struct {
	ID   string  `json:"id"`
	Name string  `json:"name"`
	X    float64 `json:"x"`
	Y    float64 `json:"y"`
}

type stateMessage struct {
	Type       string       `json:"type"`
	Snapshot   sim.Snapshot `json:"snapshot"`
	ServerTime int64        `json:"serverTime"`
}

// clientMessage is the union of everything a client may send. Type
// selects the variant; unknown fields are ignored.
type clientMessage struct {
	Type   string `json:"type"`
	Up     bool   `json:"up"`
	Down   bool   `json:"down"`
	Left   bool   `json:"left"`
	Right  bool   `json:"right"`
	GiftID string `json:"giftId"`
	SentAt int64  `json:"sentAt"`
}

type heartbeatMessage struct {
	Type       string `json:"type"`
	ServerTime int64  `json:"serverTime"`
	ClientTime int64  `json:"clientTime"`
	RTTMillis  int64  `json:"rtt"`
}

type diagnosticsSession struct {
	ID            string `json:"id"`
	LastHeartbeat int64  `json:"lastHeartbeat"`
	RTTMillis     int64  `json:"rttMillis"`
}

// commandFor translates a decoded client message into a staged command.
// The second return is false for message types with no command mapping.
func commandFor(msg clientMessage) (sim.Command, bool) {
	switch msg.Type {
	case "input":
		var held sim.DirectionSet
		if msg.Up {
			held |= sim.DirUp
		}
		if msg.Down {
			held |= sim.DirDown
		}
		if msg.Left {
			held |= sim.DirLeft
		}
		if msg.Right {
			held |= sim.DirRight
		}
		return sim.Command{Type: sim.CommandSetHeld, Held: held}, true
	case "interact":
		return sim.Command{Type: sim.CommandInteract}, true
	case "cancel":
		return sim.Command{Type: sim.CommandCancel}, true
	case "inventory":
		return sim.Command{Type: sim.CommandToggleInventory}, true
	case "help":
		return sim.Command{Type: sim.CommandToggleHelp}, true
	case "sell":
		return sim.Command{Type: sim.CommandSellGift, GiftID: msg.GiftID}, true
	case "sellAll":
		return sim.Command{Type: sim.CommandSellAll}, true
	case "reset":
		return sim.Command{Type: sim.CommandHardReset}, true
	}
	return sim.Command{}, false
}
