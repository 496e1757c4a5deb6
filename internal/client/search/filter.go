// Package search implements the lawyer search filter and the category
// filter of the legal-updates feed.
package search

import (
	"errors"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/lawlink/internal/client/models"
)

// Filter field names.
const (
	FieldName           = "name"
	FieldSpecialization = "specialization"
	FieldLocation       = "location"
)

var ErrUnknownField = errors.New("unknown filter field")

// Predicates holds one substring pattern per filterable field. Empty
// patterns match everything.
type Predicates struct {
	Name           string
	Specialization string
	Location       string
}

func (p Predicates) Empty() bool {
	return p.Name == "" && p.Specialization == "" && p.Location == ""
}

// With returns a copy of p with field set to value.
func (p Predicates) With(field, value string) (Predicates, error) {
	switch field {
	case FieldName:
		p.Name = value
	case FieldSpecialization:
		p.Specialization = value
	case FieldLocation:
		p.Location = value
	default:
		return p, fmt.Errorf("%w: %q", ErrUnknownField, field)
	}
	return p, nil
}

// Match reports whether every non-empty predicate is a case-insensitive
// substring of the corresponding lawyer field.
func (p Predicates) Match(l models.Lawyer) bool {
	return contains(l.Name, p.Name) &&
		contains(l.Specialization, p.Specialization) &&
		contains(l.Location, p.Location)
}

func contains(field, pattern string) bool {
	if pattern == "" {
		return true
	}
	return strings.Contains(strings.ToLower(field), strings.ToLower(pattern))
}

// ApplyFilters returns the lawyers matching p in dataset order. The result
// never aliases dataset.
func ApplyFilters(dataset []models.Lawyer, p Predicates) []models.Lawyer {
	out := make([]models.Lawyer, 0, len(dataset))
	for _, l := range dataset {
		if p.Match(l) {
			out = append(out, l)
		}
	}
	return out
}

// ParsePredicates reads field=value pairs, e.g. from command arguments.
func ParsePredicates(args []string) (Predicates, error) {
	var p Predicates
	for _, a := range args {
		field, value, ok := strings.Cut(a, "=")
		if !ok {
			return p, fmt.Errorf("filter %q must be field=value", a)
		}
		var err error
		if p, err = p.With(strings.ToLower(strings.TrimSpace(field)), value); err != nil {
			return p, err
		}
	}
	return p, nil
}

// FilterUpdates keeps the legal updates of category; models.AllCategories
// or an empty category keeps everything.
func FilterUpdates(updates []models.LegalUpdate, category string) []models.LegalUpdate {
	out := make([]models.LegalUpdate, 0, len(updates))
	for _, u := range updates {
		if category == "" || category == models.AllCategories || u.Category == category {
			out = append(out, u)
		}
	}
	return out
}
