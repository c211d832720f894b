package launcher

// Input report bit positions.
const (
	statusDownLimit  = 0x01
	statusUpLimit    = 0x02
	statusLeftLimit  = 0x04
	statusRightLimit = 0x08
	statusFired      = 0x10
)

// StatusFlags is the decoded form of the launcher's 1-byte status
// report. The flags are independent booleans: the limit switches report
// end-of-travel per axis and FireComplete toggles once the firing
// mechanism has cycled.
type StatusFlags struct {
	TiltUpLimit   bool
	TiltDownLimit bool
	PanLeftLimit  bool
	PanRightLimit bool
	FireComplete  bool
}

// DecodeStatus unpacks a raw status byte. Every byte value is legal;
// bits above the fire flag are ignored.
func DecodeStatus(b byte) StatusFlags {
	return StatusFlags{
		TiltUpLimit:   b&statusUpLimit != 0,
		TiltDownLimit: b&statusDownLimit != 0,
		PanLeftLimit:  b&statusLeftLimit != 0,
		PanRightLimit: b&statusRightLimit != 0,
		FireComplete:  b&statusFired != 0,
	}
}
