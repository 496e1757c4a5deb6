package search

import (
	"slices"
	"sync"

	"github.com/dmitrijs2005/lawlink/internal/client/models"
)

// Engine keeps a dataset, the active predicates and the filtered view. The
// view is recomputed on every mutation, so Results is never stale.
type Engine struct {
	mu         sync.RWMutex
	dataset    []models.Lawyer
	predicates Predicates
	results    []models.Lawyer
}

func NewEngine(dataset []models.Lawyer) *Engine {
	e := &Engine{}
	e.SetDataset(dataset)
	return e
}

// SetDataset replaces the dataset; the engine keeps its own copy.
func (e *Engine) SetDataset(dataset []models.Lawyer) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.dataset = slices.Clone(dataset)
	e.recompute()
}

func (e *Engine) SetPredicate(field, value string) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	p, err := e.predicates.With(field, value)
	if err != nil {
		return err
	}
	e.predicates = p
	e.recompute()
	return nil
}

func (e *Engine) SetPredicates(p Predicates) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.predicates = p
	e.recompute()
}

func (e *Engine) ClearPredicates() {
	e.SetPredicates(Predicates{})
}

func (e *Engine) Predicates() Predicates {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.predicates
}

// Results returns a copy of the filtered view.
func (e *Engine) Results() []models.Lawyer {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return slices.Clone(e.results)
}

// Len is the size of the unfiltered dataset.
func (e *Engine) Len() int {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return len(e.dataset)
}

func (e *Engine) recompute() {
	e.results = ApplyFilters(e.dataset, e.predicates)
}
