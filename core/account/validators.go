package account

import (
	"regexp"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/coachly/mobile/core"
)

var (
	// custom validation tags & texts
	phoneTag   = "phone10"
	phoneText  = "must be a valid 10-digit phone number"
	phoneRegex = regexp.MustCompile(`^\d{10}$`)

	// deliberately loose: two parts around an @ and a dot, nothing more
	emailTag   = "simple_email"
	emailText  = "must be a valid email address"
	emailRegex = regexp.MustCompile(`^\S+@\S+\.\S+$`)

	dobTag    = "dob"
	dobText   = "must be a valid date in DD-MM-YYYY format"
	dobLayout = "02-01-2006"
)

func init() {
	// register custom validators
	_ = core.Validate.RegisterValidation(phoneTag, phoneValidation)
	core.RegisterCustomTranslation(phoneTag, phoneText)

	_ = core.Validate.RegisterValidation(emailTag, emailValidation)
	core.RegisterCustomTranslation(emailTag, emailText)

	_ = core.Validate.RegisterValidation(dobTag, dobValidation)
	core.RegisterCustomTranslation(dobTag, dobText)
}

func phoneValidation(fl validator.FieldLevel) bool {
	return phoneRegex.MatchString(fl.Field().String())
}

func emailValidation(fl validator.FieldLevel) bool {
	return emailRegex.MatchString(fl.Field().String())
}

func dobValidation(fl validator.FieldLevel) bool {
	return ValidDate(fl.Field().String())
}

// ValidDate reports whether s is a real calendar date in DD-MM-YYYY form.
// time.Parse rejects overflow (31-02-2000); re-formatting rejects
// non-padded variants it would otherwise tolerate.
func ValidDate(s string) bool {
	t, err := time.Parse(dobLayout, s)
	if err != nil {
		return false
	}
	return t.Format(dobLayout) == s
}
