package serialconn

import (
	"bytes"
	"errors"
	"testing"
	"time"

	"go.bug.st/serial"
	"periph.io/x/conn/v3"
)

// port is an in-memory serial.Port. Writes are accepted in chunks of at most
// chunk bytes; reads are served from in.
type port struct {
	serial.Port // panics on anything not overridden
	chunk       int
	out         bytes.Buffer
	in          []byte
	timeout     time.Duration
	closed      bool
	err         error
}

func (p *port) SetReadTimeout(t time.Duration) error {
	p.timeout = t
	return p.err
}

func (p *port) Write(b []byte) (int, error) {
	if p.err != nil {
		return 0, p.err
	}
	n := min(len(b), p.chunk)
	p.out.Write(b[:n])
	return n, nil
}

func (p *port) Read(b []byte) (int, error) {
	if p.err != nil {
		return 0, p.err
	}
	n := copy(b, p.in)
	p.in = p.in[n:]
	return n, nil
}

func (p *port) Close() error {
	p.closed = true
	return nil
}

func TestTx(t *testing.T) {
	p := &port{chunk: 3, in: []byte{1, 2, 3, 4}}
	c, err := New("ttyTEST", p)
	if err != nil {
		t.Fatalf("New() = %v", err)
	}
	if p.timeout != ReadTimeout {
		t.Errorf("read timeout = %v, want %v", p.timeout, ReadTimeout)
	}
	if c.String() != "serial(ttyTEST)" || c.Duplex() != conn.Half {
		t.Errorf("String() = %q, Duplex() = %v", c.String(), c.Duplex())
	}

	w := []byte("hello world")
	r := make([]byte, 2)
	if err := c.Tx(w, r); err != nil {
		t.Fatalf("Tx() = %v", err)
	}
	if !bytes.Equal(p.out.Bytes(), w) {
		t.Errorf("wrote %q, want %q", p.out.Bytes(), w)
	}
	if !bytes.Equal(r, []byte{1, 2}) {
		t.Errorf("read %v, want [1 2]", r)
	}

	// Only two bytes are left.
	if err := c.Tx(nil, make([]byte, 3)); !errors.Is(err, errTimeout) {
		t.Errorf("Tx() = %v, want timeout", err)
	}

	if err := c.Close(); err != nil || !p.closed {
		t.Errorf("Close() = %v, closed %v", err, p.closed)
	}
}

func TestErrors(t *testing.T) {
	errPort := errors.New("port error")
	if _, err := New("ttyTEST", &port{err: errPort}); !errors.Is(err, errPort) {
		t.Errorf("New() = %v, want port error", err)
	}

	p := &port{chunk: 8}
	c, err := New("ttyTEST", p)
	if err != nil {
		t.Fatalf("New() = %v", err)
	}
	p.err = errPort
	if err := c.Tx([]byte{1}, nil); !errors.Is(err, errPort) {
		t.Errorf("Tx() write = %v, want port error", err)
	}
	if err := c.Tx(nil, make([]byte, 1)); !errors.Is(err, errPort) {
		t.Errorf("Tx() read = %v, want port error", err)
	}
}
