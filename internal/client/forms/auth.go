package forms

import (
	"context"

	"github.com/dmitrijs2005/lawlink/internal/client/models"
	"github.com/go-playground/validator/v10"
)

// Authenticator is implemented by the session manager.
type Authenticator interface {
	Login(ctx context.Context, cred models.Credentials) (models.Session, error)
	Register(ctx context.Context, reg models.Registration) (models.Session, error)
}

type LoginDraft struct {
	Email    string `form:"email" validate:"required,looseemail"`
	Password string `form:"password" validate:"required,min=6"`
	Role     string `form:"userType" validate:"oneof=client lawyer"`
}

func (d *LoginDraft) Set(field, value string) error {
	switch field {
	case "email":
		d.Email = value
	case "password":
		d.Password = value
	case "userType":
		d.Role = value
	default:
		return unknownField(field)
	}
	return nil
}

var loginMessages = Messages{
	"email.required":    "Email is required",
	"email.looseemail":  "Email is invalid",
	"password.required": "Password is required",
	"password.min":      "Password must be at least 6 characters",
	"userType":          "Please choose client or lawyer",
}

func NewLoginForm(v *Validator, auth Authenticator) *Form[LoginDraft] {
	return newForm(formConfig[LoginDraft]{
		initial:  LoginDraft{Role: string(models.RoleClient)},
		set:      (*LoginDraft).Set,
		validate: func(d LoginDraft) ErrorMap { return v.Validate(d, loginMessages) },
		submit: func(ctx context.Context, d LoginDraft) error {
			_, err := auth.Login(ctx, models.Credentials{Email: d.Email, Password: d.Password, Role: models.Role(d.Role)})
			return err
		},
		fallback: "Login failed. Please try again.",
	})
}

type RegisterDraft struct {
	Name            string `form:"name" validate:"notblank"`
	Email           string `form:"email" validate:"required,looseemail"`
	Password        string `form:"password" validate:"required,min=6"`
	ConfirmPassword string `form:"confirmPassword" validate:"eqfield=Password"`
	Role            string `form:"userType" validate:"oneof=client lawyer"`
	Phone           string `form:"phone"`
	Specialization  string `form:"specialization"`
	Location        string `form:"location"`
}

func (d *RegisterDraft) Set(field, value string) error {
	switch field {
	case "name":
		d.Name = value
	case "email":
		d.Email = value
	case "password":
		d.Password = value
	case "confirmPassword":
		d.ConfirmPassword = value
	case "userType":
		d.Role = value
	case "phone":
		d.Phone = value
	case "specialization":
		d.Specialization = value
	case "location":
		d.Location = value
	default:
		return unknownField(field)
	}
	return nil
}

// registerLawyerFields makes specialization and location mandatory for
// lawyer accounts only.
func registerLawyerFields(sl validator.StructLevel) {
	d := sl.Current().Interface().(RegisterDraft)
	if d.Role != string(models.RoleLawyer) {
		return
	}
	if isBlank(d.Specialization) {
		sl.ReportError(d.Specialization, "specialization", "Specialization", "required_if", "Role lawyer")
	}
	if isBlank(d.Location) {
		sl.ReportError(d.Location, "location", "Location", "required_if", "Role lawyer")
	}
}

var registerMessages = Messages{
	"name":              "Name is required",
	"email.required":    "Email is required",
	"email.looseemail":  "Email is invalid",
	"password.required": "Password is required",
	"password.min":      "Password must be at least 6 characters",
	"confirmPassword":   "Passwords do not match",
	"userType":          "Please choose client or lawyer",
	"specialization":    "Specialization is required",
	"location":          "Location is required",
}

func NewRegisterForm(v *Validator, auth Authenticator) *Form[RegisterDraft] {
	return newForm(formConfig[RegisterDraft]{
		initial:  RegisterDraft{Role: string(models.RoleClient)},
		set:      (*RegisterDraft).Set,
		validate: func(d RegisterDraft) ErrorMap { return v.Validate(d, registerMessages) },
		submit: func(ctx context.Context, d RegisterDraft) error {
			reg := models.Registration{
				Name:     d.Name,
				Email:    d.Email,
				Password: d.Password,
				Role:     models.Role(d.Role),
				Phone:    d.Phone,
			}
			if reg.Role == models.RoleLawyer {
				reg.Specialization = d.Specialization
				reg.Location = d.Location
			}
			_, err := auth.Register(ctx, reg)
			return err
		},
		fallback: "Registration failed. Please try again.",
	})
}
