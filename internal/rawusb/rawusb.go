// Package rawusb opens the launcher through karalabe/usb instead of the
// platform HID stack. Useful when the hidraw node is owned by another
// driver or is not accessible to the current user.
package rawusb

import (
	"fmt"

	"github.com/karalabe/usb"
)

// Device wraps a karalabe/usb handle behind the same report I/O surface
// as internal/hid.Device.
type Device struct {
	dev usb.Device
}

// Open finds and opens the first attached device matching vid/pid.
func Open(vid, pid uint16) (*Device, error) {
	infos, err := usb.Enumerate(vid, pid)
	if err != nil {
		return nil, fmt.Errorf("usb enumerate: %w", err)
	}
	if len(infos) == 0 {
		return nil, fmt.Errorf("device not found (VID:0x%04X PID:0x%04X)", vid, pid)
	}

	dev, err := infos[0].Open()
	if err != nil {
		return nil, fmt.Errorf("open device: %w", err)
	}

	return &Device{dev: dev}, nil
}

// Write sends an output report. The report ID is expected at p[0].
func (d *Device) Write(p []byte) (int, error) {
	n, err := d.dev.Write(p)
	if err != nil {
		return n, fmt.Errorf("usb write: %w", err)
	}
	return n, nil
}

// Read reads the next input report into p.
func (d *Device) Read(p []byte) (int, error) {
	n, err := d.dev.Read(p)
	if err != nil {
		return n, fmt.Errorf("usb read: %w", err)
	}
	return n, nil
}

// Close releases the device.
func (d *Device) Close() error {
	return d.dev.Close()
}
