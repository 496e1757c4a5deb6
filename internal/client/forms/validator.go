package forms

import (
	"errors"
	"reflect"
	"regexp"
	"slices"
	"strings"
	"time"

	"github.com/dmitrijs2005/lawlink/internal/client/models"
	"github.com/go-playground/validator/v10"
)

const (
	// MaxUploadSize is the largest accepted document, 10 MiB.
	MaxUploadSize = 10 * 1024 * 1024

	dateLayout = "2006-01-02"
)

// AllowedMimeTypes lists the accepted document types.
var AllowedMimeTypes = []string{
	"application/pdf",
	"application/msword",
	"application/vnd.openxmlformats-officedocument.wordprocessingml.document",
	"image/jpeg",
	"image/png",
}

var emailShape = regexp.MustCompile(`\S+@\S+\.\S+`)

// Messages maps "field.tag" (or just "field") to the text shown to the user.
type Messages map[string]string

// Validator evaluates draft structs. The clock is injected so date rules
// stay pure.
type Validator struct {
	v   *validator.Validate
	now func() time.Time
}

func NewValidator(now func() time.Time) *Validator {
	if now == nil {
		now = time.Now
	}
	val := &Validator{v: validator.New(validator.WithRequiredStructEnabled()), now: now}

	val.v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("form"), ",")
		if name == "" || name == "-" {
			return f.Name
		}
		return name
	})

	must(val.v.RegisterValidation("notblank", func(fl validator.FieldLevel) bool {
		return strings.TrimSpace(fl.Field().String()) != ""
	}))
	must(val.v.RegisterValidation("looseemail", func(fl validator.FieldLevel) bool {
		return emailShape.MatchString(fl.Field().String())
	}))
	must(val.v.RegisterValidation("isodate", func(fl validator.FieldLevel) bool {
		_, err := time.Parse(dateLayout, fl.Field().String())
		return err == nil
	}))
	must(val.v.RegisterValidation("notpast", val.notPast))
	must(val.v.RegisterValidation("mimeallowed", func(fl validator.FieldLevel) bool {
		return slices.Contains(AllowedMimeTypes, fl.Field().String())
	}))
	must(val.v.RegisterValidation("feedbackcategory", func(fl validator.FieldLevel) bool {
		return slices.Contains(models.FeedbackCategories, fl.Field().String())
	}))

	val.v.RegisterStructValidation(registerLawyerFields, RegisterDraft{})

	return val
}

func must(err error) {
	if err != nil {
		panic(err)
	}
}

// notPast accepts dates on or after today's local midnight.
func (v *Validator) notPast(fl validator.FieldLevel) bool {
	now := v.now()
	d, err := time.ParseInLocation(dateLayout, fl.Field().String(), now.Location())
	if err != nil {
		return false
	}
	y, m, day := now.Date()
	return !d.Before(time.Date(y, m, day, 0, 0, 0, 0, now.Location()))
}

// Validate checks draft and returns one message per failing field. The first
// failure reported under a key wins, so field order in the draft struct sets
// rule precedence.
func (v *Validator) Validate(draft any, msgs Messages) ErrorMap {
	errs := ErrorMap{}
	err := v.v.Struct(draft)
	if err == nil {
		return errs
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		errs[SubmitKey] = err.Error()
		return errs
	}
	for _, fe := range verrs {
		key := fe.Field()
		if _, seen := errs[key]; seen {
			continue
		}
		errs[key] = msgs.lookup(key, fe.Tag())
	}
	return errs
}

func (m Messages) lookup(field, tag string) string {
	if s, ok := m[field+"."+tag]; ok {
		return s
	}
	if s, ok := m[field]; ok {
		return s
	}
	return field + " is invalid"
}
