package cli

import (
	"context"

	"github.com/dmitrijs2005/lawlink/internal/client/forms"
	"github.com/dmitrijs2005/lawlink/internal/client/models"
)

var roleField = field{name: "userType", prompt: "Account type (client/lawyer) [client]", keep: true}

// Register creates an account and signs in with it.
func (a *App) Register(ctx context.Context) error {
	f := forms.NewRegisterForm(a.validator, a.session)

	if err := fill(a, f, []field{roleField}); err != nil {
		return err
	}
	fields := []field{
		{name: "name", prompt: "Full name"},
		{name: "email", prompt: "Email"},
		{name: "password", prompt: "Password", secret: true},
		{name: "confirmPassword", prompt: "Confirm password", secret: true},
		{name: "phone", prompt: "Phone (optional)"},
	}
	if f.Draft().Role == string(models.RoleLawyer) {
		fields = append(fields,
			field{name: "specialization", prompt: "Specialization"},
			field{name: "location", prompt: "Location"},
		)
	}
	if err := fill(a, f, fields); err != nil {
		return err
	}

	if submit(ctx, a, f) {
		a.println("Registration successful. You are now logged in.")
	}
	return nil
}

func (a *App) Login(ctx context.Context) error {
	f := forms.NewLoginForm(a.validator, a.session)

	err := fill(a, f, []field{
		{name: "email", prompt: "Email"},
		{name: "password", prompt: "Password", secret: true},
		roleField,
	})
	if err != nil {
		return err
	}

	if submit(ctx, a, f) {
		s := a.currentSession(ctx)
		if s != nil {
			a.printf("Login successful. Welcome, %s user %s.\n", s.Role, s.UserID)
		}
	}
	return nil
}

func (a *App) Logout(ctx context.Context) error {
	if err := a.session.Logout(ctx); err != nil {
		return err
	}
	a.println("Logged out.")
	return nil
}

func (a *App) WhoAmI(ctx context.Context) {
	s := a.currentSession(ctx)
	if s == nil {
		a.println("Not logged in.")
		return
	}
	a.printf("User %s, %s account\n", s.UserID, s.Role)
}
