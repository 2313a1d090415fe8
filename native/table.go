// MODUL: table
// ZWECK: In-Process-Implementierung der Library als Handle-Tabelle
// INPUT: Aufrufe der Library-Schnittstelle
// OUTPUT: Eindeutige Handles != 0, Aufrufzaehler
// NEBENEFFEKTE: Haelt Handles bis DisposeContext
// ABHAENGIGKEITEN: sync (stdlib), logutil
// HINWEISE: Fuehrt keine Berechnungen aus; dient als Default ohne native Library und als instrumentierter Stand-in in Tests

package native

import (
	"fmt"
	"sync"

	"github.com/7blacky7/godaal/envconfig"
	"github.com/7blacky7/godaal/logutil"
)

// TableVersion ist die Version, die die Tabelle meldet.
const TableVersion = MinVersion

// Namen der gezaehlten Operationen
const (
	OpNewContext     = "context_new"
	OpDisposeContext = "context_dispose"
	OpInit           = "init"
	OpGet            = "get"
	OpSet            = "set"
	OpNewResult      = "new_result"
	OpGetValue       = "get_value"
	OpSetValue       = "set_value"
	OpGetScalar      = "get_scalar"
	OpSetScalar      = "set_scalar"
	OpCompute        = "compute"
)

func init() {
	RegisterLibrary("table", func(string) (Library, error) {
		return NewTable(int(envconfig.MaxHandles())), nil
	})
}

// ============================================================================
// Table Struktur
// ============================================================================

type tableObject struct {
	ctx  Handle
	kind Kind
}

type companionKey struct {
	parent Handle
	comp   Component
}

type valueKey struct {
	obj Handle
	id  int
}

// Table implementiert Library ohne native Abhaengigkeit.
type Table struct {
	mu sync.Mutex

	next       Handle
	maxHandles int

	scopes     map[Handle]map[Handle]struct{}
	objects    map[Handle]tableObject
	companions map[companionKey]Handle
	values     map[valueKey]Handle
	scalars    map[valueKey]int64
	calls      map[string]int
}

// NewTable erstellt eine leere Tabelle; maxHandles <= 0 = unbegrenzt.
func NewTable(maxHandles int) *Table {
	return &Table{
		maxHandles: maxHandles,
		scopes:     make(map[Handle]map[Handle]struct{}),
		objects:    make(map[Handle]tableObject),
		companions: make(map[companionKey]Handle),
		values:     make(map[valueKey]Handle),
		scalars:    make(map[valueKey]int64),
		calls:      make(map[string]int),
	}
}

// ============================================================================
// Instrumentierung
// ============================================================================

// Calls gibt zurueck wie oft op aufgerufen wurde.
func (t *Table) Calls(op string) int {
	t.mu.Lock()
	defer t.mu.Unlock()

	return t.calls[op]
}

// Acquisitions zaehlt alle Aufrufe, die ein neues Handle anfordern koennen.
func (t *Table) Acquisitions() int {
	t.mu.Lock()
	defer t.mu.Unlock()

	return t.calls[OpInit] + t.calls[OpGet] + t.calls[OpNewResult]
}

// Live gibt die Anzahl lebender Objekt-Handles zurueck.
func (t *Table) Live() int {
	t.mu.Lock()
	defer t.mu.Unlock()

	return len(t.objects)
}

// KindOf gibt den Kind eines lebenden Handles zurueck.
func (t *Table) KindOf(h Handle) (Kind, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()

	obj, ok := t.objects[h]
	return obj.kind, ok
}

// ============================================================================
// Library Implementierung
// ============================================================================

func (t *Table) NewContext() (Handle, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.calls[OpNewContext]++
	t.next++
	ctx := t.next
	t.scopes[ctx] = make(map[Handle]struct{})
	return ctx, nil
}

func (t *Table) DisposeContext(ctx Handle) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.calls[OpDisposeContext]++
	scope, ok := t.scopes[ctx]
	if !ok {
		return &LibraryError{Op: OpDisposeContext, Name: ctx.String(), Err: ErrUnknownHandle}
	}

	for h := range scope {
		delete(t.objects, h)
	}
	for k, h := range t.companions {
		if _, owned := scope[k.parent]; owned {
			delete(t.companions, k)
		} else if _, owned := scope[h]; owned {
			delete(t.companions, k)
		}
	}
	for k := range t.values {
		if _, owned := scope[k.obj]; owned {
			delete(t.values, k)
		}
	}
	for k := range t.scalars {
		if _, owned := scope[k.obj]; owned {
			delete(t.scalars, k)
		}
	}
	delete(t.scopes, ctx)

	logutil.Trace("table context disposed", "ctx", ctx, "handles", len(scope))
	return nil
}

func (t *Table) Init(ctx Handle, kind Kind, prec, method int, args ...int64) (Handle, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.calls[OpInit]++
	h, err := t.alloc(ctx, kind)
	if err != nil {
		return 0, &LibraryError{Op: OpInit, Name: string(kind), Err: err}
	}

	logutil.Trace("table init", "kind", kind, "prec", prec, "method", method, "args", args, "handle", h)
	return h, nil
}

func (t *Table) Get(ctx Handle, kind Kind, comp Component, parent Handle, prec, method int) (Handle, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.calls[OpGet]++
	obj, ok := t.objects[parent]
	if !ok || obj.ctx != ctx {
		return 0, &LibraryError{Op: OpGet, Name: string(kind), Err: ErrUnknownHandle}
	}

	key := companionKey{parent: parent, comp: comp}
	if comp != ComponentClone {
		if h, ok := t.companions[key]; ok {
			return h, nil
		}
	}

	subKind := kind
	if comp != ComponentClone {
		subKind = Kind(fmt.Sprintf("%s.%s", kind, comp))
	}

	h, err := t.alloc(ctx, subKind)
	if err != nil {
		return 0, &LibraryError{Op: OpGet, Name: string(kind), Err: err}
	}
	if comp != ComponentClone {
		t.companions[key] = h
	}

	logutil.Trace("table get", "kind", kind, "component", comp, "parent", parent, "prec", prec, "method", method, "handle", h)
	return h, nil
}

func (t *Table) Set(kind Kind, comp Component, parent Handle, prec, method int, value Handle) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.calls[OpSet]++
	if !t.sameScope(parent, value) {
		return &LibraryError{Op: OpSet, Name: string(kind), Err: ErrUnknownHandle}
	}

	t.companions[companionKey{parent: parent, comp: comp}] = value
	return nil
}

func (t *Table) NewResult(ctx Handle, kind Kind) (Handle, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.calls[OpNewResult]++
	h, err := t.alloc(ctx, kind)
	if err != nil {
		return 0, &LibraryError{Op: OpNewResult, Name: string(kind), Err: err}
	}
	return h, nil
}

func (t *Table) GetValue(kind Kind, obj Handle, id int) (Handle, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.calls[OpGetValue]++
	if _, ok := t.objects[obj]; !ok {
		return 0, &LibraryError{Op: OpGetValue, Name: string(kind), Err: ErrUnknownHandle}
	}
	return t.values[valueKey{obj: obj, id: id}], nil
}

func (t *Table) SetValue(kind Kind, obj Handle, id int, value Handle) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.calls[OpSetValue]++
	if !t.sameScope(obj, value) {
		return &LibraryError{Op: OpSetValue, Name: string(kind), Err: ErrUnknownHandle}
	}

	t.values[valueKey{obj: obj, id: id}] = value
	return nil
}

func (t *Table) GetScalar(kind Kind, obj Handle, id int) (int64, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.calls[OpGetScalar]++
	if _, ok := t.objects[obj]; !ok {
		return 0, &LibraryError{Op: OpGetScalar, Name: string(kind), Err: ErrUnknownHandle}
	}
	return t.scalars[valueKey{obj: obj, id: id}], nil
}

func (t *Table) SetScalar(kind Kind, obj Handle, id int, value int64) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.calls[OpSetScalar]++
	if _, ok := t.objects[obj]; !ok {
		return &LibraryError{Op: OpSetScalar, Name: string(kind), Err: ErrUnknownHandle}
	}

	t.scalars[valueKey{obj: obj, id: id}] = value
	return nil
}

// Compute prueft nur das Handle; die Tabelle rechnet nicht.
func (t *Table) Compute(kind Kind, alg Handle, prec, method int) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.calls[OpCompute]++
	if _, ok := t.objects[alg]; !ok {
		return &LibraryError{Op: OpCompute, Name: string(kind), Err: ErrUnknownHandle}
	}

	logutil.Trace("table compute", "kind", kind, "prec", prec, "method", method, "handle", alg)
	return nil
}

func (t *Table) Version() string {
	return TableVersion
}

// sameScope prueft ob beide Handles leben und zum selben Context gehoeren; t.mu muss gehalten werden.
func (t *Table) sameScope(a, b Handle) bool {
	oa, ok := t.objects[a]
	if !ok {
		return false
	}
	ob, ok := t.objects[b]
	return ok && oa.ctx == ob.ctx
}

// alloc vergibt ein neues Handle im Scope ctx; t.mu muss gehalten werden.
func (t *Table) alloc(ctx Handle, kind Kind) (Handle, error) {
	scope, ok := t.scopes[ctx]
	if !ok {
		return 0, ErrUnknownHandle
	}
	if t.maxHandles > 0 && len(scope) >= t.maxHandles {
		return 0, ErrHandleLimit
	}

	t.next++
	h := t.next
	scope[h] = struct{}{}
	t.objects[h] = tableObject{ctx: ctx, kind: kind}
	return h, nil
}
