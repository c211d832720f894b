// Package launcher implements the control protocol for Dream Cheeky's
// "Rocket Baby" USB missile launcher: a motorized turret with four
// directional actuators and a single-shot fire mechanism, driven by
// 2-byte HID output reports and a 1-byte status input report.
package launcher

import "fmt"

// USB vendor and product IDs for the launcher.
const (
	VendorID  uint16 = 0x0A81
	ProductID uint16 = 0x0701
)

// Command is a single-byte opcode accepted by the launcher. Values are
// bitmask-distinct; the protocol reserves combination space but the
// client only ever sends one command per report.
type Command byte

const (
	CmdMoveDown  Command = 0x01
	CmdMoveUp    Command = 0x02
	CmdMoveLeft  Command = 0x04
	CmdMoveRight Command = 0x08
	CmdFire      Command = 0x10
	CmdStop      Command = 0x20
	CmdGetStatus Command = 0x40
)

func (c Command) String() string {
	switch c {
	case CmdMoveDown:
		return "move-down"
	case CmdMoveUp:
		return "move-up"
	case CmdMoveLeft:
		return "move-left"
	case CmdMoveRight:
		return "move-right"
	case CmdFire:
		return "fire"
	case CmdStop:
		return "stop"
	case CmdGetStatus:
		return "get-status"
	}
	return fmt.Sprintf("unknown(0x%02X)", byte(c))
}

// ReportID is the output report number; always zero for this device.
const ReportID byte = 0x00

// OutputReportLen is the size of every output report: report ID plus opcode.
const OutputReportLen = 2

// Encode builds the 2-byte output report carrying cmd.
func Encode(cmd Command) []byte {
	return []byte{ReportID, byte(cmd)}
}

// Direction is a turret movement, chosen once per invocation.
type Direction int

const (
	TiltUp Direction = iota
	TiltDown
	PanLeft
	PanRight
)

func (d Direction) String() string {
	switch d {
	case TiltUp:
		return "up"
	case TiltDown:
		return "down"
	case PanLeft:
		return "left"
	case PanRight:
		return "right"
	}
	return fmt.Sprintf("unknown(%d)", int(d))
}

// ParseDirection maps the textual direction names used on the command line.
func ParseDirection(s string) (Direction, error) {
	switch s {
	case "up":
		return TiltUp, nil
	case "down":
		return TiltDown, nil
	case "left":
		return PanLeft, nil
	case "right":
		return PanRight, nil
	}
	return 0, fmt.Errorf("invalid movement: %q (must be up, down, left, or right)", s)
}

// command maps a Direction onto its move opcode.
func (d Direction) command() (Command, error) {
	switch d {
	case TiltUp:
		return CmdMoveUp, nil
	case TiltDown:
		return CmdMoveDown, nil
	case PanLeft:
		return CmdMoveLeft, nil
	case PanRight:
		return CmdMoveRight, nil
	}
	return 0, fmt.Errorf("%w: %d", ErrUnsupportedMovement, int(d))
}
