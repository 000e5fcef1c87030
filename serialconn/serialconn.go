// Package serialconn exposes a UART as a periph conn.Conn, so that buffered
// surfaces can be flushed to panels driven by a serial backpack.
package serialconn

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"go.bug.st/serial"
	"periph.io/x/conn/v3"
)

// ReadTimeout bounds each read of Tx.
const ReadTimeout = 100 * time.Millisecond

var errTimeout = errors.New("serialconn: read timeout")

// Conn is a half duplex connection over a serial port. It is safe for
// concurrent use.
type Conn struct {
	mu   sync.Mutex
	name string
	port serial.Port
}

var _ conn.Conn = (*Conn)(nil)

// Open opens the named port at baud, 8N1.
func Open(name string, baud int) (*Conn, error) {
	mode := &serial.Mode{
		BaudRate: baud,
		DataBits: 8,
		Parity:   serial.NoParity,
		StopBits: serial.OneStopBit,
	}
	p, err := serial.Open(name, mode)
	if err != nil {
		return nil, fmt.Errorf("serialconn: open %s: %w", name, err)
	}
	c, err := New(name, p)
	if err != nil {
		p.Close()
		return nil, err
	}
	return c, nil
}

// New wraps an already open port.
func New(name string, p serial.Port) (*Conn, error) {
	if err := p.SetReadTimeout(ReadTimeout); err != nil {
		return nil, fmt.Errorf("serialconn: %s: %w", name, err)
	}
	return &Conn{name: name, port: p}, nil
}

func (c *Conn) String() string {
	return "serial(" + c.name + ")"
}

// Duplex implements conn.Conn.
func (c *Conn) Duplex() conn.Duplex {
	return conn.Half
}

// Tx writes w, then reads len(r) bytes into r.
func (c *Conn) Tx(w, r []byte) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	for len(w) > 0 {
		n, err := c.port.Write(w)
		if err != nil {
			return fmt.Errorf("serialconn: write: %w", err)
		}
		w = w[n:]
	}
	for len(r) > 0 {
		n, err := c.port.Read(r)
		if err != nil {
			return fmt.Errorf("serialconn: read: %w", err)
		}
		if n == 0 {
			return errTimeout
		}
		r = r[n:]
	}
	return nil
}

// Close closes the port.
func (c *Conn) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.port.Close()
}
