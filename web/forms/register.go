package forms

import (
	"regexp"
)

var (
	usernameRegexp = regexp.MustCompile(`^[A-Za-z-]+$`)
	emailRegexp    = regexp.MustCompile(`^[A-Za-z][\w.-]+@[\w.-]+\.[A-Za-z]{2,6}$`)
	cyrillicRegexp = regexp.MustCompile(`^[А-яЁё\s-]+$`)
)

// RegistrationForm carries the registration inputs. Uniqueness of
// username and email is checked against the store by UserService on top
// of the field checks here.
type RegistrationForm struct {
	Username       string `form:"username"`
	Email          string `form:"email"`
	FirstName      string `form:"firstName"`
	LastName       string `form:"lastName"`
	Patronymic     string `form:"patronymic"`
	Password       string `form:"password"`
	PasswordRepeat string `form:"passwordRepeat"`
	Consent        bool   `form:"consent"`
}

// Validate runs every field-level check. The record must only be written
// when the returned Errors is empty.
func (f *RegistrationForm) Validate() Errors {
	errs := Errors{}

	if f.Username == "" {
		errs.Add("username", "form.required")
	} else if !usernameRegexp.MatchString(f.Username) {
		errs.Add("username", "form.usernameCharset")
	}

	if f.Email == "" {
		errs.Add("email", "form.required")
	} else if !emailRegexp.MatchString(f.Email) {
		errs.Add("email", "form.emailInvalid")
	}

	if f.FirstName == "" {
		errs.Add("firstName", "form.required")
	} else if !cyrillicRegexp.MatchString(f.FirstName) {
		errs.Add("firstName", "form.firstNameCharset")
	}

	if f.LastName == "" {
		errs.Add("lastName", "form.required")
	} else if !cyrillicRegexp.MatchString(f.LastName) {
		errs.Add("lastName", "form.lastNameCharset")
	}

	if f.Patronymic == "" {
		errs.Add("patronymic", "form.required")
	}

	if f.Password == "" {
		errs.Add("password", "form.required")
	}

	// Mismatch is a form-level error, not attached to either password field.
	if f.Password != f.PasswordRepeat {
		errs.Add(FormLevel, "form.passwordMismatch")
	}

	if !f.Consent {
		errs.Add("consent", "form.consentRequired")
	}

	return errs
}
