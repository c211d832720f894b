//go:build windows || hidapi

package hid

import (
	sthid "github.com/sstallion/go-hid"
)

// hidapi-backed manager. Default on Windows; opt in elsewhere with the
// "hidapi" build tag when the pure Go backend cannot claim the device.

type hidapiManager struct{}

func newManager() (Manager, error) {
	if err := sthid.Init(); err != nil {
		return nil, err
	}
	return &hidapiManager{}, nil
}

type hidapiDevice struct{ d *sthid.Device }

func (m *hidapiManager) OpenVIDPID(vendorID, productID uint16) (Device, error) {
	d, err := sthid.OpenFirst(vendorID, productID)
	if err != nil {
		return nil, err
	}
	return &hidapiDevice{d}, nil
}

func (d *hidapiDevice) Write(p []byte) (int, error) { return d.d.Write(p) }
func (d *hidapiDevice) Read(p []byte) (int, error)  { return d.d.Read(p) }
func (d *hidapiDevice) Close() error                { return d.d.Close() }
