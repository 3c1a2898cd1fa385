package account

import (
	"github.com/coachly/mobile/core"
	"github.com/coachly/mobile/core/session"
)

// LoginForm holds the login screen's fields. JSON tags match the
// backend's wire names, so a validated form is sent as the request body.
type LoginForm struct {
	Email    string `json:"email" validate:"required,simple_email"`
	Password string `json:"p_words" validate:"required"`
}

// Validate returns a *core.ValidationError with one message per failing
// field, or nil when the form is good. It never reaches the network.
func (f *LoginForm) Validate() error {
	f.Email = core.CleanString(f.Email, true /* lower */)
	return core.TranslateValidationErrors(core.Validate.Struct(f))
}

// RegisterForm holds the registration screen's fields.
type RegisterForm struct {
	Name        string `json:"name" validate:"required"`
	Phone       string `json:"phone_no" validate:"required,phone10"`
	Email       string `json:"email" validate:"required,simple_email"`
	Password    string `json:"p_words" validate:"required,min=6"`
	DateOfBirth string `json:"dob" validate:"required,dob"`
	Role        string `json:"role"`
}

// Validate cleans and checks every field; the registration screen only
// offers student sign-up, so an unset role defaults accordingly.
func (f *RegisterForm) Validate() error {
	f.Name = core.CleanString(f.Name)
	f.Email = core.CleanString(f.Email, true /* lower */)
	if f.Role == "" {
		f.Role = string(session.RoleStudent)
	}
	return core.TranslateValidationErrors(core.Validate.Struct(f))
}
