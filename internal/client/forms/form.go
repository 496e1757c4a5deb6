package forms

import (
	"context"
	"errors"
	"maps"
	"sync"

	"github.com/dmitrijs2005/lawlink/internal/client/client"
)

// SubmitKey is the ErrorMap key of a failed submission.
const SubmitKey = "submit"

var (
	ErrValidation = errors.New("validation failed")
	ErrSubmitting = errors.New("submission already in progress")
)

// ErrorMap maps a field name to its error message.
type ErrorMap map[string]string

type State int

const (
	StateEditing State = iota
	StateSubmitting
	StateSubmitted
)

func (s State) String() string {
	switch s {
	case StateSubmitting:
		return "submitting"
	case StateSubmitted:
		return "submitted"
	default:
		return "editing"
	}
}

// Form drives one draft of type D through edit, validate and submit.
type Form[D any] struct {
	mu      sync.Mutex
	initial D
	draft   D
	errors  ErrorMap
	state   State

	set      func(*D, string, string) error
	validate func(D) ErrorMap
	submit   func(context.Context, D) error
	fallback string
	reset    bool
}

type formConfig[D any] struct {
	initial  D
	set      func(*D, string, string) error
	validate func(D) ErrorMap
	submit   func(context.Context, D) error
	fallback string
	reset    bool
}

func newForm[D any](c formConfig[D]) *Form[D] {
	return &Form[D]{
		initial:  c.initial,
		draft:    c.initial,
		errors:   ErrorMap{},
		set:      c.set,
		validate: c.validate,
		submit:   c.submit,
		fallback: c.fallback,
		reset:    c.reset,
	}
}

// Validate is the pure rule check used by OnSubmit.
func (f *Form[D]) Validate(d D) ErrorMap {
	return f.validate(d)
}

// OnFieldChange stores value and clears any error shown for field. The rest
// of the form is not re-validated.
func (f *Form[D]) OnFieldChange(field, value string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.set(&f.draft, field, value); err != nil {
		return err
	}
	f.touched(field)
	return nil
}

// Edit applies fn to the draft for values that are not plain strings, then
// clears the errors of fields.
func (f *Form[D]) Edit(fn func(*D), fields ...string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	fn(&f.draft)
	for _, field := range fields {
		f.touched(field)
	}
}

func (f *Form[D]) touched(field string) {
	delete(f.errors, field)
	if f.state == StateSubmitted {
		f.state = StateEditing
	}
}

// OnSubmit validates the draft and, when it is clean, submits it. Field
// errors yield ErrValidation without calling the submit function; a failed
// submission stores one "submit" message and returns the cause.
func (f *Form[D]) OnSubmit(ctx context.Context) error {
	f.mu.Lock()
	if f.state == StateSubmitting {
		f.mu.Unlock()
		return ErrSubmitting
	}
	errs := f.validate(f.draft)
	f.errors = errs
	if len(errs) > 0 {
		f.mu.Unlock()
		return ErrValidation
	}
	f.state = StateSubmitting
	draft := f.draft
	f.mu.Unlock()

	err := f.submit(ctx, draft)

	f.mu.Lock()
	defer f.mu.Unlock()
	if err != nil {
		msg, ok := client.ServerMessage(err)
		if !ok {
			msg = f.fallback
		}
		f.errors = ErrorMap{SubmitKey: msg}
		f.state = StateEditing
		return err
	}
	f.state = StateSubmitted
	if f.reset {
		f.draft = f.initial
	}
	return nil
}

func (f *Form[D]) Draft() D {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.draft
}

// Errors returns a copy of the current error map.
func (f *Form[D]) Errors() ErrorMap {
	f.mu.Lock()
	defer f.mu.Unlock()
	return maps.Clone(f.errors)
}

func (f *Form[D]) State() State {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.state
}

func (f *Form[D]) Submitting() bool {
	return f.State() == StateSubmitting
}
