// Package cart implements the shopping cart. Cart state lives in memory and in
// the local store only; there is no server-side source of truth for it, unlike
// addresses and orders.
package cart

import (
	"encoding/json"
	"errors"
	"log"
	"sync"

	"github.com/velora-boutique/velora-api/models"
)

// Line is one cart entry: a product snapshot plus quantity and the selected
// variant. Two lines are the same entry iff product id, color and size all
// match; that triple decides merge versus append on add.
type Line struct {
	Product       models.Product `json:"product"`
	Quantity      int            `json:"quantity"`
	SelectedColor string         `json:"selectedColor,omitempty"`
	SelectedSize  string         `json:"selectedSize,omitempty"`
}

func (l Line) Subtotal() float64 {
	return l.Product.Price * float64(l.Quantity)
}

// Outcome tells the caller whether an add created a new line or bumped an
// existing one, so the UI can word its notification accordingly.
type Outcome string

const (
	OutcomeAdded   Outcome = "added"
	OutcomeUpdated Outcome = "updated"
)

var ErrQuantity = errors.New("cart: quantity must be at least 1")

// Engine owns one user's cart lines. Every mutation rewrites the whole
// collection in storage; construction rehydrates from storage, discarding
// anything that no longer parses rather than failing the caller.
type Engine struct {
	mu      sync.Mutex
	storage Storage
	key     string
	lines   []Line
}

func NewEngine(storage Storage, key string) *Engine {
	e := &Engine{storage: storage, key: key}
	e.rehydrate()
	return e
}

func (e *Engine) rehydrate() {
	raw, err := e.storage.Load(e.key)
	if err != nil {
		if !errors.Is(err, ErrNotFound) {
			log.Println("Failed to load stored cart:", err)
		}
		return
	}
	var lines []Line
	if err := json.Unmarshal(raw, &lines); err != nil {
		log.Println("Discarding corrupt stored cart:", err)
		if err := e.storage.Delete(e.key); err != nil {
			log.Println("Failed to clear corrupt stored cart:", err)
		}
		return
	}
	e.lines = lines
}

func (e *Engine) persist() error {
	lines := e.lines
	if lines == nil {
		lines = []Line{}
	}
	raw, err := json.Marshal(lines)
	if err != nil {
		return err
	}
	return e.storage.Store(e.key, raw)
}

// AddToCart merges into the line with the same (product, color, size) key, or
// appends a new line when no such entry exists.
func (e *Engine) AddToCart(product models.Product, quantity int, color, size string) (Outcome, error) {
	if quantity < 1 {
		return "", ErrQuantity
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	for i := range e.lines {
		line := &e.lines[i]
		if line.Product.ID == product.ID && line.SelectedColor == color && line.SelectedSize == size {
			line.Quantity += quantity
			return OutcomeUpdated, e.persist()
		}
	}

	e.lines = append(e.lines, Line{
		Product:       product,
		Quantity:      quantity,
		SelectedColor: color,
		SelectedSize:  size,
	})
	return OutcomeAdded, e.persist()
}

// RemoveFromCart drops every line with the given product id, regardless of
// color or size. This is intentionally broader than the add key. It reports
// whether anything was removed and is a no-op on a second call.
func (e *Engine) RemoveFromCart(productID int) (bool, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	kept := make([]Line, 0, len(e.lines))
	for _, line := range e.lines {
		if line.Product.ID != productID {
			kept = append(kept, line)
		}
	}
	if len(kept) == len(e.lines) {
		return false, nil
	}
	e.lines = kept
	return true, e.persist()
}

// UpdateQuantity sets the quantity on every line with the given product id.
// It does not enforce a lower bound; callers guard against decrementing
// below 1 before invoking it.
func (e *Engine) UpdateQuantity(productID, quantity int) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	changed := false
	for i := range e.lines {
		if e.lines[i].Product.ID == productID {
			e.lines[i].Quantity = quantity
			changed = true
		}
	}
	if !changed {
		return nil
	}
	return e.persist()
}

func (e *Engine) ClearCart() error {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.lines = nil
	return e.persist()
}

// Lines returns a copy of the current line collection.
func (e *Engine) Lines() []Line {
	e.mu.Lock()
	defer e.mu.Unlock()

	out := make([]Line, len(e.lines))
	copy(out, e.lines)
	return out
}

func (e *Engine) TotalItems() int {
	e.mu.Lock()
	defer e.mu.Unlock()

	total := 0
	for _, line := range e.lines {
		total += line.Quantity
	}
	return total
}

func (e *Engine) TotalPrice() float64 {
	e.mu.Lock()
	defer e.mu.Unlock()

	total := 0.0
	for _, line := range e.lines {
		total += line.Subtotal()
	}
	return total
}
