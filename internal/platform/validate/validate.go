package validate

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

const (
	DateLayout  = "2006-01-02"
	ClockLayout = "15:04"
)

// Validator envuelve go-playground/validator con los tags del dominio:
//   - isodate: YYYY-MM-DD
//   - clock:   HH:mm (24h)
//   - clock_or_empty: HH:mm o "" (PATCH: "" limpia la hora)
type Validator struct {
	validate *validator.Validate
}

func New() *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())

	_ = v.RegisterValidation("isodate", validateISODate)
	_ = v.RegisterValidation("clock", validateClock)
	_ = v.RegisterValidation("clock_or_empty", validateClockOrEmpty)

	return &Validator{validate: v}
}

// Struct valida y devuelve un error legible ("field: rule, ...").
func (v *Validator) Struct(i any) error {
	err := v.validate.Struct(i)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}

	parts := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		parts = append(parts, fmt.Sprintf("%s: %s", strings.ToLower(fe.Field()), fe.Tag()))
	}
	return errors.New(strings.Join(parts, ", "))
}

// Var valida un valor suelto (query params).
func (v *Validator) Var(field any, tag string) error {
	return v.validate.Var(field, tag)
}

func validateISODate(fl validator.FieldLevel) bool {
	return IsDate(fl.Field().String())
}

func validateClock(fl validator.FieldLevel) bool {
	return IsClock(fl.Field().String())
}

func validateClockOrEmpty(fl validator.FieldLevel) bool {
	s := fl.Field().String()
	return s == "" || IsClock(s)
}

// IsDate exige el formato exacto (con ceros) para que el orden lexicográfico sirva.
func IsDate(s string) bool {
	t, err := time.Parse(DateLayout, s)
	return err == nil && t.Format(DateLayout) == s
}

func IsClock(s string) bool {
	t, err := time.Parse(ClockLayout, s)
	return err == nil && t.Format(ClockLayout) == s
}
