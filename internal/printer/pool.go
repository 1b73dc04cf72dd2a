package printer

import (
	"fmt"
	"sync"
)

// Pool manages open connections keyed by printer ID.
type Pool struct {
	connections map[string]Connection
	mu          sync.RWMutex
}

// NewPool creates an empty connection pool.
func NewPool() *Pool {
	return &Pool{connections: make(map[string]Connection)}
}

// Connect establishes a connection to a printer. Connecting an
// already-connected printer is a no-op.
func (p *Pool) Connect(prn *Printer) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if _, exists := p.connections[prn.ID]; exists {
		return nil
	}

	var conn Connection
	var err error

	switch prn.Type {
	case "network":
		conn, err = ConnectNetwork(prn.Host, prn.Port)
	case "serial":
		conn, err = ConnectSerial(prn.Device, prn.Baud)
	case "usb":
		conn, err = ConnectUSB(prn.VID, prn.PID)
	default:
		return fmt.Errorf("unsupported printer type: %s", prn.Type)
	}

	if err != nil {
		return err
	}

	p.connections[prn.ID] = conn
	return nil
}

// Send writes a command stream to a connected printer.
func (p *Pool) Send(printerID string, payload []byte) error {
	p.mu.RLock()
	conn, exists := p.connections[printerID]
	p.mu.RUnlock()

	if !exists {
		return fmt.Errorf("printer not connected: %s", printerID)
	}

	if _, err := conn.Write(payload); err != nil {
		return fmt.Errorf("failed to write to printer: %w", err)
	}
	return nil
}

// IsConnected checks if a printer is connected.
func (p *Pool) IsConnected(printerID string) bool {
	p.mu.RLock()
	defer p.mu.RUnlock()

	_, exists := p.connections[printerID]
	return exists
}

// Disconnect closes a printer connection.
func (p *Pool) Disconnect(printerID string) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	conn, exists := p.connections[printerID]
	if !exists {
		return nil
	}

	err := conn.Close()
	delete(p.connections, printerID)
	return err
}

// DisconnectAll closes all connections.
func (p *Pool) DisconnectAll() {
	p.mu.Lock()
	defer p.mu.Unlock()

	for id, conn := range p.connections {
		conn.Close()
		delete(p.connections, id)
	}
}
