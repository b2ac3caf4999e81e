package entity

// Event names what an engine call did, for the presentation layer to animate.
type Event string

const (
	EventPlaced        Event = "placed"
	EventCollapsing    Event = "collapsing"
	EventCollapsed     Event = "collapsed"
	EventCardSelected  Event = "card_selected"
	EventDeckRefreshed Event = "deck_refreshed"
	EventRejected      Event = "rejected"
)

type ActionType string

const (
	ActionPlace    ActionType = "place"
	ActionCollapse ActionType = "collapse"
)

// Action is a move chosen by a strategy.
type Action struct {
	Type  ActionType `json:"type"`
	Index int        `json:"index"`
}

func PlaceAt(index int) Action {
	return Action{Type: ActionPlace, Index: index}
}

func CollapseAt(index int) Action {
	return Action{Type: ActionCollapse, Index: index}
}

// Outcome is returned by every engine operation. Events is ordered: a collapse
// reports collapsing before collapsed, and Value is already final at that point.
type Outcome struct {
	Game   *Game   `json:"game"`
	Events []Event `json:"events"`
	Index  int     `json:"index"`
	Value  Mark    `json:"value,omitempty"`
}

func (that Outcome) Rejected() bool {
	return len(that.Events) == 1 && that.Events[0] == EventRejected
}

// Last returns the final event of the operation.
func (that Outcome) Last() Event {
	if len(that.Events) == 0 {
		return ""
	}

	return that.Events[len(that.Events)-1]
}

// AIMove is the computer's decision together with its applied outcome.
type AIMove struct {
	Outcome
	Action Action `json:"action"`
}
