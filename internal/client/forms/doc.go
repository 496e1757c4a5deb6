// Package forms is the form validation engine of the client.
//
// A Form owns a typed draft and an ErrorMap. Field edits update the draft
// and clear only that field's error; OnSubmit re-validates the whole draft
// and calls the submit function only when no errors remain. Rules are
// declared with go-playground/validator struct tags; the `form` tag names
// the ErrorMap key a rule reports under.
package forms
