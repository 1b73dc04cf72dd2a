package printer

import (
	"fmt"
	"sync"

	"github.com/google/gousb"
)

// USBConnection is a USB printer connection.
type USBConnection struct {
	ctx      *gousb.Context
	device   *gousb.Device
	iface    *gousb.Interface
	done     func()
	endpoint *gousb.OutEndpoint
	mu       sync.Mutex
}

// ConnectUSB connects to a USB printer by vendor/product ID. Returns
// an error when USB support is unavailable (libusb not installed) or
// the device exposes no OUT endpoint.
func ConnectUSB(vid, pid uint16) (*USBConnection, error) {
	ctx := gousb.NewContext()

	dev, err := ctx.OpenDeviceWithVIDPID(gousb.ID(vid), gousb.ID(pid))
	if err != nil {
		ctx.Close()
		return nil, fmt.Errorf("failed to open USB device: %w", err)
	}
	if dev == nil {
		ctx.Close()
		return nil, fmt.Errorf("device not found: %04X:%04X", vid, pid)
	}

	iface, done, err := dev.DefaultInterface()
	if err != nil {
		// Some devices need the kernel driver detached first.
		dev.SetAutoDetach(true)
		iface, done, err = dev.DefaultInterface()
	}
	if err != nil {
		dev.Close()
		ctx.Close()
		return nil, fmt.Errorf("failed to claim USB interface: %w", err)
	}

	var endpoint *gousb.OutEndpoint
	for _, epDesc := range iface.Setting.Endpoints {
		if epDesc.Direction == gousb.EndpointDirectionOut {
			if ep, err := iface.OutEndpoint(epDesc.Number); err == nil {
				endpoint = ep
				break
			}
		}
	}

	if endpoint == nil {
		done()
		dev.Close()
		ctx.Close()
		return nil, fmt.Errorf("no OUT endpoint found for USB printer %04X:%04X", vid, pid)
	}

	return &USBConnection{
		ctx:      ctx,
		device:   dev,
		iface:    iface,
		done:     done,
		endpoint: endpoint,
	}, nil
}

// Write sends data to the USB printer.
func (c *USBConnection) Write(data []byte) (int, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.endpoint.Write(data)
}

// Close closes the USB connection.
func (c *USBConnection) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.done != nil {
		c.done()
	}
	if c.device != nil {
		c.device.Close()
	}
	if c.ctx != nil {
		c.ctx.Close()
	}
	return nil
}

// DetectUSB enumerates connected USB devices as printer candidates.
func DetectUSB() ([]*Printer, error) {
	ctx := gousb.NewContext()
	defer ctx.Close()

	devices, err := ctx.OpenDevices(func(desc *gousb.DeviceDesc) bool {
		return true
	})
	if err != nil {
		return nil, fmt.Errorf("failed to enumerate USB devices: %w", err)
	}

	var printers []*Printer
	for _, dev := range devices {
		desc := dev.Desc

		manufacturer, _ := dev.Manufacturer()
		product, _ := dev.Product()

		description := fmt.Sprintf("USB: %04X:%04X", uint16(desc.Vendor), uint16(desc.Product))
		if manufacturer != "" || product != "" {
			description = fmt.Sprintf("USB: %s %s (%04X:%04X)",
				manufacturer, product, uint16(desc.Vendor), uint16(desc.Product))
		}

		printers = append(printers, &Printer{
			ID:          fmt.Sprintf("usb-%04x-%04x", uint16(desc.Vendor), uint16(desc.Product)),
			Type:        "usb",
			Description: description,
			VID:         uint16(desc.Vendor),
			PID:         uint16(desc.Product),
		})
		dev.Close()
	}

	return printers, nil
}
