package mapview

// pointerState tags the interaction state machine. Modeling the four
// states explicitly (instead of two independent nullable ids) makes
// inconsistent hover/popup combinations unrepresentable.
type pointerState int

const (
	stateIdle pointerState = iota
	stateHovering
	statePopupOpen
	statePopupOpenHovering
)

// Interaction owns the hover/popup lifecycle. At most one popup exists
// at a time, and a tooltip is suppressed while it would duplicate the
// open popup's spot.
type Interaction struct {
	state     pointerState
	hoveredID string
	popupID   string
}

// HoverEnter records the pointer arriving over a spot marker.
func (it *Interaction) HoverEnter(id string) {
	switch it.state {
	case stateIdle, stateHovering:
		it.state = stateHovering
		it.hoveredID = id
	case statePopupOpen, statePopupOpenHovering:
		it.state = statePopupOpenHovering
		it.hoveredID = id
	}
}

// HoverLeave drops the hover component; an open popup stays open.
func (it *Interaction) HoverLeave() {
	it.hoveredID = ""
	switch it.state {
	case stateHovering:
		it.state = stateIdle
	case statePopupOpenHovering:
		it.state = statePopupOpen
	}
}

// Click opens a popup for the spot, closing any existing popup first and
// hiding the tooltip.
func (it *Interaction) Click(id string) {
	it.state = statePopupOpen
	it.popupID = id
	it.hoveredID = ""
}

// ClosePopup clears the popup, returning to Idle or Hovering depending
// on where the pointer currently is.
func (it *Interaction) ClosePopup() {
	it.popupID = ""
	switch it.state {
	case statePopupOpenHovering:
		it.state = stateHovering
	case statePopupOpen:
		it.state = stateIdle
	}
}

// DropMissing reconciles the state with a freshly swapped dataset: any
// referenced spot id that no longer exists is released.
func (it *Interaction) DropMissing(exists func(id string) bool) {
	if it.hoveredID != "" && !exists(it.hoveredID) {
		it.HoverLeave()
	}
	if it.popupID != "" && !exists(it.popupID) {
		it.ClosePopup()
	}
}

// PopupID returns the open popup's spot id, or "" when none is open.
func (it *Interaction) PopupID() string { return it.popupID }

// HoveredID returns the hovered spot id regardless of tooltip
// suppression.
func (it *Interaction) HoveredID() string { return it.hoveredID }

// TooltipID returns the spot whose tooltip should be visible, or "".
// Hovering the open popup's own spot shows nothing: the popup already
// displays that information at the same location.
func (it *Interaction) TooltipID() string {
	switch it.state {
	case stateHovering:
		return it.hoveredID
	case statePopupOpenHovering:
		if it.hoveredID != it.popupID {
			return it.hoveredID
		}
	}
	return ""
}
