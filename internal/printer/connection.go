// Package printer delivers rendered command streams to physical
// printers over network, serial, or USB transports.
package printer

// Printer describes a byte sink the engine can print to.
type Printer struct {
	ID          string `json:"id"`
	Type        string `json:"type"` // "network", "serial", "usb"
	Name        string `json:"name,omitempty"`
	Description string `json:"description,omitempty"`

	// network
	Host string `json:"host,omitempty"`
	Port int    `json:"port,omitempty"`

	// serial
	Device string `json:"device,omitempty"`
	Baud   int    `json:"baud,omitempty"`

	// usb
	VID uint16 `json:"vid,omitempty"`
	PID uint16 `json:"pid,omitempty"`
}

// Connection is a unified interface over the printer transports. The
// payload is always a fully rendered ESC/POS command stream; the
// connection just moves bytes.
type Connection interface {
	Write(data []byte) (int, error)
	Close() error
}
