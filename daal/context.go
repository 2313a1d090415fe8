// MODUL: context
// ZWECK: Scope fuer native Handles; alle Proxies eines Contexts werden mit Close unbrauchbar
// INPUT: native.Library
// OUTPUT: Context mit nativem Context-Handle
// NEBENEFFEKTE: Erzeugt und entsorgt einen nativen Context
// ABHAENGIGKEITEN: native, uuid, logutil
// HINWEISE: Proxies halten nicht-besitzende Referenzen; die native Seite gibt beim Dispose frei

package daal

import (
	"fmt"
	"log/slog"
	"sync"

	"github.com/google/uuid"

	"github.com/7blacky7/godaal/logutil"
	"github.com/7blacky7/godaal/native"
)

// Context besitzt genau ein natives Context-Handle.
type Context struct {
	id  uuid.UUID
	lib native.Library

	mu     sync.RWMutex
	handle native.Handle
	closed bool
}

// Open initialisiert die prozessweite Library (einmalig) und oeffnet einen Context.
func Open() (*Context, error) {
	lib, err := native.Init()
	if err != nil {
		return nil, err
	}
	return NewContext(lib)
}

// NewContext oeffnet einen Context gegen lib.
func NewContext(lib native.Library) (*Context, error) {
	h, err := lib.NewContext()
	if err != nil {
		return nil, fmt.Errorf("daal: open context: %w", err)
	}
	if h.IsZero() {
		return nil, fmt.Errorf("daal: open context: %w", native.ErrNullHandle)
	}

	c := &Context{id: uuid.New(), lib: lib, handle: h}
	slog.Debug("context opened", "id", c.id, "handle", h)
	return c, nil
}

// ID identifiziert den Context in Logs.
func (c *Context) ID() uuid.UUID {
	return c.id
}

// Library gibt die Library zurueck, gegen die der Context geoeffnet wurde.
func (c *Context) Library() native.Library {
	return c.lib
}

// Handle gibt das native Context-Handle zurueck; 0 nach Close.
func (c *Context) Handle() native.Handle {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if c.closed {
		return 0
	}
	return c.handle
}

// Closed prueft ob Close bereits aufgerufen wurde.
func (c *Context) Closed() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return c.closed
}

// Close entsorgt den nativen Context. Nach erfolgreichem Close sind weitere
// Aufrufe ohne Wirkung. Schlaegt das Dispose fehl, bleibt der Context
// offen und Close kann wiederholt werden.
func (c *Context) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return nil
	}

	if err := c.lib.DisposeContext(c.handle); err != nil {
		slog.Warn("context dispose failed", "id", c.id, "error", err)
		return fmt.Errorf("daal: close context: %w", err)
	}
	c.closed = true

	slog.Debug("context closed", "id", c.id)
	return nil
}

// Acquire fuehrt fn unter dem Context aus und prueft das gelieferte Handle.
// op beschreibt den Aufruf fuer Fehlermeldungen und Trace-Logs.
func (c *Context) Acquire(op string, fn func(lib native.Library, ctx native.Handle) (native.Handle, error)) (native.Handle, error) {
	if c == nil {
		return 0, fmt.Errorf("%s: %w", op, ErrContextClosed)
	}

	c.mu.RLock()
	defer c.mu.RUnlock()

	if c.closed {
		return 0, fmt.Errorf("%s: %w", op, ErrContextClosed)
	}

	h, err := fn(c.lib, c.handle)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	if h.IsZero() {
		return 0, fmt.Errorf("%s: %w", op, native.ErrNullHandle)
	}

	logutil.Trace("handle acquired", "ctx", c.id, "op", op, "handle", h)
	return h, nil
}

// Do fuehrt fn unter dem Context aus, ohne ein neues Handle zu erwarten.
func (c *Context) Do(op string, fn func(lib native.Library) error) error {
	if c == nil {
		return fmt.Errorf("%s: %w", op, ErrContextClosed)
	}

	c.mu.RLock()
	defer c.mu.RUnlock()

	if c.closed {
		return fmt.Errorf("%s: %w", op, ErrContextClosed)
	}

	if err := fn(c.lib); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}
