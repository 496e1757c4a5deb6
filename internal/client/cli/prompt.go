package cli

import (
	"context"
	"errors"
	"maps"
	"slices"
	"strings"

	"github.com/dmitrijs2005/lawlink/internal/client/forms"
)

// field describes one prompt of a form.
type field struct {
	name      string
	prompt    string
	secret    bool
	multiline bool
	// keep means an empty answer leaves the current value untouched.
	keep bool
}

// fill prompts for every field and stores the answers in f. Values the form
// rejects outright (e.g. a rating that is not a number) are reported and
// asked again.
func fill[D any](a *App, f *forms.Form[D], fields []field) error {
	for _, fd := range fields {
		for {
			v, err := a.ask(fd)
			if err != nil {
				return err
			}
			if fd.keep && v == "" {
				break
			}
			if err := f.OnFieldChange(fd.name, v); err != nil {
				if errors.Is(err, forms.ErrUnknownField) {
					return err
				}
				a.println(" ", err)
				continue
			}
			break
		}
	}
	return nil
}

func (a *App) ask(fd field) (string, error) {
	switch {
	case fd.secret:
		return GetPassword(fd.prompt, a.out)
	case fd.multiline:
		return GetMultiline(a.reader, fd.prompt, a.out)
	default:
		return GetSimpleText(a.reader, fd.prompt, a.out)
	}
}

// submit runs OnSubmit and prints the outcome. It reports whether the
// submission went through.
func submit[D any](ctx context.Context, a *App, f *forms.Form[D]) bool {
	if err := f.OnSubmit(ctx); err != nil {
		a.logger.Debug(ctx, "form rejected", "error", err)
		a.printErrors(f.Errors())
		return false
	}
	return true
}

func (a *App) printErrors(errs forms.ErrorMap) {
	for _, k := range slices.Sorted(maps.Keys(errs)) {
		if k == forms.SubmitKey {
			continue
		}
		a.printf("  %s: %s\n", k, errs[k])
	}
	if msg, ok := errs[forms.SubmitKey]; ok {
		a.println(strings.TrimSpace(msg))
	}
}
