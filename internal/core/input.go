package core

// CommandKind identifies a discrete input event forwarded into the simulation.
// The platform translates keys, mouse buttons and touches into these.
type CommandKind int

const (
	CommandNone         CommandKind = iota
	CommandPrimaryPress             // Space, Up, left mouse down - start/charge/jump/advance
	CommandPrimaryRelease           // Release of the primary input - fires a charged jump
	CommandPerkSelect               // Choose a perk by index or by pointer position
	CommandPerkReroll               // Spend a reroll on a fresh set of choices
)

// String returns a human-readable name for the command kind.
func (k CommandKind) String() string {
	switch k {
	case CommandNone:
		return "None"
	case CommandPrimaryPress:
		return "PrimaryPress"
	case CommandPrimaryRelease:
		return "PrimaryRelease"
	case CommandPerkSelect:
		return "PerkSelect"
	case CommandPerkReroll:
		return "PerkReroll"
	default:
		return "Unknown"
	}
}

// Command is a single input event. Index is used by CommandPerkSelect when
// HasPoint is false; otherwise X/Y (in field units) are hit-tested against
// the displayed choice regions.
type Command struct {
	Kind     CommandKind
	Index    int
	X, Y     float64
	HasPoint bool
}

// PrimaryPress builds a primary-press command.
func PrimaryPress() Command {
	return Command{Kind: CommandPrimaryPress}
}

// PrimaryRelease builds a primary-release command.
func PrimaryRelease() Command {
	return Command{Kind: CommandPrimaryRelease}
}

// PerkSelect builds a direct index selection.
func PerkSelect(index int) Command {
	return Command{Kind: CommandPerkSelect, Index: index}
}

// PerkSelectAt builds a pointer selection at field coordinates.
func PerkSelectAt(x, y float64) Command {
	return Command{Kind: CommandPerkSelect, Index: -1, X: x, Y: y, HasPoint: true}
}

// PerkReroll builds a reroll request.
func PerkReroll() Command {
	return Command{Kind: CommandPerkReroll}
}
