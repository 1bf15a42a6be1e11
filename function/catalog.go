package function

import (
	"fmt"
	"slices"
	"strings"
	"sync"

	"github.com/arloliu/eeagrid/errs"
	"github.com/arloliu/eeagrid/internal/collision"
	"github.com/arloliu/eeagrid/internal/hash"
)

// Catalog is a registry of scalar functions keyed by the hash of their
// lower-cased name.
//
// Catalog is safe for concurrent use. Registered functions must not be
// modified afterwards.
type Catalog struct {
	mu        sync.RWMutex
	functions map[uint64]Scalar
	tracker   *collision.Tracker
}

// NewCatalog creates an empty catalog.
func NewCatalog() *Catalog {
	return &Catalog{
		functions: make(map[uint64]Scalar),
		tracker:   collision.NewTracker(),
	}
}

// Register adds fn to the catalog.
//
// Returns:
//   - errs.ErrInvalidFunctionName if the name is blank
//   - errs.ErrDuplicateSignature if two overloads share an arity
//   - errs.ErrDuplicateFunction if the name is already registered
//   - errs.ErrHashCollision if another name hashes to the same ID
func (c *Catalog) Register(fn Scalar) error {
	if err := fn.validate(); err != nil {
		return err
	}

	id := hash.FunctionID(fn.Name)

	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.tracker.Track(strings.ToLower(fn.Name), id); err != nil {
		return err
	}

	c.functions[id] = fn

	return nil
}

// MustRegister is like Register but panics on error.
func (c *Catalog) MustRegister(fn Scalar) {
	if err := c.Register(fn); err != nil {
		panic(err)
	}
}

// Lookup returns the function registered under name, ignoring case.
func (c *Catalog) Lookup(name string) (Scalar, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	fn, ok := c.functions[hash.FunctionID(name)]
	if !ok || !strings.EqualFold(fn.Name, name) {
		return Scalar{}, false
	}

	return fn, true
}

// Resolve returns the named function and its overload taking arity arguments.
func (c *Catalog) Resolve(name string, arity int) (Scalar, Signature, error) {
	fn, ok := c.Lookup(name)
	if !ok {
		return Scalar{}, Signature{}, fmt.Errorf("%w: %s", errs.ErrUnknownFunction, name)
	}

	sig, err := fn.Resolve(arity)
	if err != nil {
		return Scalar{}, Signature{}, err
	}

	return fn, sig, nil
}

// All returns the registered functions sorted by name.
func (c *Catalog) All() []Scalar {
	c.mu.RLock()
	fns := make([]Scalar, 0, len(c.functions))
	for _, fn := range c.functions {
		fns = append(fns, fn)
	}
	c.mu.RUnlock()

	slices.SortFunc(fns, func(a, b Scalar) int {
		return strings.Compare(a.Name, b.Name)
	})

	return fns
}

// Len returns the number of registered functions.
func (c *Catalog) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return len(c.functions)
}

// Call evaluates the named function on a single row.
func (c *Catalog) Call(name string, args ...int64) (int64, error) {
	fn, sig, err := c.Resolve(name, len(args))
	if err != nil {
		return 0, err
	}

	v, err := sig.Impl(args)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", fn.Name, err)
	}

	return v, nil
}
