package models

import (
	"fmt"
	"strconv"
	"sync"

	"github.com/google/uuid"
)

// BlobStore is the persisted slot holding the encoded category list.
// A slot that was never written reads as an empty blob.
type BlobStore interface {
	Read() ([]byte, error)
	Write(data []byte) error
}

// CategoryRepository owns the authoritative in-memory category list and
// mirrors it into a BlobStore after every addition.
type CategoryRepository struct {
	mu         sync.RWMutex
	store      BlobStore
	categories []Category
	newID      func() string
}

// RepositoryOption customizes a CategoryRepository.
type RepositoryOption func(*CategoryRepository)

// WithIDGenerator replaces the UUID generator, mainly for tests.
func WithIDGenerator(gen func() string) RepositoryOption {
	return func(r *CategoryRepository) {
		r.newID = gen
	}
}

// NewCategoryRepository creates an empty repository backed by store.
func NewCategoryRepository(store BlobStore, opts ...RepositoryOption) *CategoryRepository {
	r := &CategoryRepository{
		store:      store,
		categories: []Category{},
		newID:      uuid.NewString,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Load replaces the in-memory list with the persisted one. On any failure
// the current list is left untouched and the error is returned for
// diagnostics only; an absent or corrupt blob is not fatal.
func (r *CategoryRepository) Load() error {
	data, err := r.store.Read()
	if err != nil {
		return fmt.Errorf("read slot: %w", err)
	}

	decoded, err := DecodeCategories(data)
	if err != nil {
		return err
	}

	r.mu.Lock()
	r.categories = decoded
	r.mu.Unlock()
	return nil
}

// Add parses targetText, appends a new category and persists the full list.
// Nothing changes when parsing, encoding or writing fails.
func (r *CategoryRepository) Add(name, targetText, timeframe string) ([]Category, error) {
	target, err := ParseTarget(targetText)
	if err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	category := Category{
		ID:        r.newID(),
		Name:      name,
		Target:    target,
		Timeframe: timeframe,
	}

	next := make([]Category, len(r.categories), len(r.categories)+1)
	copy(next, r.categories)
	next = append(next, category)

	data, err := EncodeCategories(next)
	if err != nil {
		return nil, err
	}
	if err := r.store.Write(data); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrWrite, err)
	}

	r.categories = next
	return r.snapshot(), nil
}

// Categories returns a copy of the current list in insertion order.
func (r *CategoryRepository) Categories() []Category {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.snapshot()
}

// Len returns the number of categories held in memory.
func (r *CategoryRepository) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.categories)
}

func (r *CategoryRepository) snapshot() []Category {
	out := make([]Category, len(r.categories))
	copy(out, r.categories)
	return out
}

// ParseTarget converts form text into a target amount.
func ParseTarget(text string) (int, error) {
	target, err := strconv.Atoi(text)
	if err != nil {
		return 0, &ParseError{Input: text, Reason: "is not a whole number"}
	}
	if target < 0 {
		return 0, &ParseError{Input: text, Reason: "must not be negative"}
	}
	return target, nil
}
