package net

// Message types for the JSON protocol over TCP.

// --- Server → Client messages ---

// ServerMessage is the envelope for all server-to-client messages.
type ServerMessage struct {
	Type string `json:"type"`

	// For "notify"
	Event *EventView `json:"event,omitempty"`

	// For "choose_action"
	Actions []ActionView `json:"actions,omitempty"`
	State   *StateView   `json:"state,omitempty"`

	// For "choose_target"
	Prompt    string     `json:"prompt,omitempty"`
	Card      *CardView  `json:"card,omitempty"`
	Units     []UnitView `json:"units,omitempty"`
	WantsCell bool       `json:"wants_cell,omitempty"`

	// For "game_over"
	Winner string `json:"winner,omitempty"`
	Result string `json:"result,omitempty"`
}

// EventView is a simplified game event for the client.
type EventView struct {
	Round   int    `json:"round"`
	Type    string `json:"type"`
	Unit    string `json:"unit,omitempty"`
	Source  string `json:"source,omitempty"`
	Card    string `json:"card,omitempty"`
	Amount  int    `json:"amount,omitempty"`
	Details string `json:"details"`
}

// ActionView is a numbered action choice.
type ActionView struct {
	Index int    `json:"index"`
	Desc  string `json:"desc"`
}

// CardView describes the card a target is being chosen for.
type CardView struct {
	Name     string `json:"name"`
	Category string `json:"category"`
	Cost     int    `json:"cost"`
	Desc     string `json:"desc,omitempty"`
}

// UnitView shows one unit on the board.
type UnitView struct {
	Index  int    `json:"index"`
	Name   string `json:"name"`
	Team   string `json:"team"`
	Role   string `json:"role"`
	HP     int    `json:"hp"`
	MaxHP  int    `json:"max_hp"`
	Morale int    `json:"morale"`
	Grit   int    `json:"grit"`
	X      int    `json:"x"`
	Y      int    `json:"y"`
	Dead   bool   `json:"dead,omitempty"`
	Struck bool   `json:"struck,omitempty"` // surrendered
}

// StateView is the battle from one crew's perspective.
type StateView struct {
	Round    int        `json:"round"`
	Width    int        `json:"width"`
	Height   int        `json:"height"`
	Units    []UnitView `json:"units"`
	Acting   string     `json:"acting,omitempty"` // unit whose turn it is
	Energy   int        `json:"energy"`
	Grog     int        `json:"grog"`
	Hand     []string   `json:"hand,omitempty"` // acting unit's hand (your units only)
	DrawPile int        `json:"draw_pile"`
	Discard  int        `json:"discard"`
}

// --- Client → Server messages ---

// ClientMessage is the envelope for all client-to-server messages.
type ClientMessage struct {
	Type string `json:"type"`

	// For "action" and "target" (unit targets)
	Index int `json:"index,omitempty"`

	// For "target" (cell targets)
	X int `json:"x,omitempty"`
	Y int `json:"y,omitempty"`

	// For "target": cancel the play entirely
	Abort bool `json:"abort,omitempty"`

	// For "yes_no"
	Answer bool `json:"answer,omitempty"`

	// For "join" (initial handshake)
	CrewNumber int `json:"crew_number,omitempty"`
}
