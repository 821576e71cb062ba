package toast

// InteractionState is the tri-state pointer signal the host input layer
// reports for a toast box.
type InteractionState int

const (
	InteractionNone InteractionState = iota
	InteractionHovered
	InteractionPressed
)

func (s InteractionState) String() string {
	switch s {
	case InteractionHovered:
		return "hovered"
	case InteractionPressed:
		return "pressed"
	default:
		return "none"
	}
}

// Interaction tracks the pointer state of one toast across frames so the
// dismiss system can react to the transition into pressed rather than the
// level. The host writes via Set; the plugin's sync system latches the
// previous state at the end of each frame.
type Interaction struct {
	state InteractionState
	prev  InteractionState
}

// Set records the pointer state reported by the host this frame.
func (i *Interaction) Set(s InteractionState) {
	i.state = s
}

// State returns the current pointer state.
func (i *Interaction) State() InteractionState {
	return i.state
}

// JustPressed reports whether the state changed to pressed this frame.
func (i *Interaction) JustPressed() bool {
	return i.state == InteractionPressed && i.prev != InteractionPressed
}

// latch records the current state as seen, ending the transition window.
func (i *Interaction) latch() {
	i.prev = i.state
}
