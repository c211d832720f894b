package launcher

import "testing"

func TestEncode(t *testing.T) {
	report := Encode(CmdFire)
	if len(report) != OutputReportLen {
		t.Fatalf("unexpected report length: %d", len(report))
	}
	if report[0] != ReportID {
		t.Fatalf("report ID incorrect: 0x%02X", report[0])
	}
	if report[1] != 0x10 {
		t.Fatalf("fire opcode incorrect: 0x%02X", report[1])
	}
}

func TestOpcodesDistinct(t *testing.T) {
	cmds := []Command{CmdMoveDown, CmdMoveUp, CmdMoveLeft, CmdMoveRight, CmdFire, CmdStop, CmdGetStatus}
	seen := map[byte]Command{}
	for _, c := range cmds {
		op := Encode(c)[1]
		if prev, ok := seen[op]; ok {
			t.Fatalf("opcode 0x%02X shared by %v and %v", op, prev, c)
		}
		seen[op] = c
	}
}

func TestDirectionCommands(t *testing.T) {
	cases := []struct {
		dir  Direction
		want Command
	}{
		{TiltUp, CmdMoveUp},
		{TiltDown, CmdMoveDown},
		{PanLeft, CmdMoveLeft},
		{PanRight, CmdMoveRight},
	}
	for _, c := range cases {
		got, err := c.dir.command()
		if err != nil {
			t.Fatalf("%v: unexpected error: %v", c.dir, err)
		}
		if got != c.want {
			t.Errorf("%v: got %v, want %v", c.dir, got, c.want)
		}
	}

	if _, err := Direction(42).command(); err == nil {
		t.Fatal("expected error for unmapped direction")
	}
}

func TestParseDirection(t *testing.T) {
	for _, name := range []string{"up", "down", "left", "right"} {
		dir, err := ParseDirection(name)
		if err != nil {
			t.Fatalf("%s: unexpected error: %v", name, err)
		}
		if dir.String() != name {
			t.Errorf("%s: round-trip mismatch: %v", name, dir)
		}
	}

	if _, err := ParseDirection("sideways"); err == nil {
		t.Fatal("expected error for invalid direction name")
	}
}
