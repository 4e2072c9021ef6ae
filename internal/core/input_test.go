package core

import "testing"

func TestCommandConstructors(t *testing.T) {
	if c := PrimaryPress(); c.Kind != CommandPrimaryPress {
		t.Errorf("PrimaryPress kind = %v", c.Kind)
	}
	if c := PrimaryRelease(); c.Kind != CommandPrimaryRelease {
		t.Errorf("PrimaryRelease kind = %v", c.Kind)
	}
	if c := PerkSelect(2); c.Kind != CommandPerkSelect || c.Index != 2 || c.HasPoint {
		t.Errorf("PerkSelect(2) = %+v", c)
	}
	c := PerkSelectAt(10, 20)
	if !c.HasPoint || c.X != 10 || c.Y != 20 || c.Index != -1 {
		t.Errorf("PerkSelectAt(10, 20) = %+v", c)
	}
	if c := PerkReroll(); c.Kind != CommandPerkReroll {
		t.Errorf("PerkReroll kind = %v", c.Kind)
	}
}

func TestCommandKindString(t *testing.T) {
	tests := map[CommandKind]string{
		CommandNone:           "None",
		CommandPrimaryPress:   "PrimaryPress",
		CommandPrimaryRelease: "PrimaryRelease",
		CommandPerkSelect:     "PerkSelect",
		CommandPerkReroll:     "PerkReroll",
		CommandKind(99):       "Unknown",
	}
	for kind, want := range tests {
		if got := kind.String(); got != want {
			t.Errorf("%d.String() = %q, want %q", int(kind), got, want)
		}
	}
}
