package util

import (
	"net/url"
	"regexp"
	"strings"
	"unicode"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

// RegisterValidators installs the closed-set enum and password-policy
// validators on gin's binding engine. Called once at startup.
func RegisterValidators() {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return
	}

	v.RegisterValidation("password", ValidPassword)
	v.RegisterValidation("httpurl", validHTTPURL)
	v.RegisterValidation("filetype", oneOf("pdf", "video", "notes", "past_paper", "link", "other"))
	v.RegisterValidation("posttype", oneOf("resource", "help_request", "tutor_flyer", "announcement"))
	v.RegisterValidation("reqstatus", oneOf("pending", "in_progress", "fulfilled", "closed"))
	v.RegisterValidation("preferredformat", oneOf("pdf", "video", "notes", "past_paper", "any"))
	v.RegisterValidation("tutorreqstatus", oneOf("pending", "matched", "closed"))
	v.RegisterValidation("userrole", oneOf("student", "tutor", "admin"))
}

func oneOf(allowed ...string) validator.Func {
	set := make(map[string]bool, len(allowed))
	for _, a := range allowed {
		set[a] = true
	}
	return func(fl validator.FieldLevel) bool {
		return set[fl.Field().String()]
	}
}

// ValidPassword enforces the registration policy: 8-128 chars with at
// least one uppercase letter, one lowercase letter, and one digit.
func ValidPassword(fl validator.FieldLevel) bool {
	return CheckPasswordPolicy(fl.Field().String()) == nil
}

func CheckPasswordPolicy(password string) error {
	if len(password) < 8 || len(password) > 128 {
		return ErrWeakPassword
	}
	var upper, lower, digit bool
	for _, r := range password {
		switch {
		case unicode.IsUpper(r):
			upper = true
		case unicode.IsLower(r):
			lower = true
		case unicode.IsDigit(r):
			digit = true
		}
	}
	if !upper || !lower || !digit {
		return ErrWeakPassword
	}
	return nil
}

func validHTTPURL(fl validator.FieldLevel) bool {
	raw := fl.Field().String()
	if raw == "" {
		return true
	}
	u, err := url.Parse(raw)
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}

// NormalizeEmail lowercases and trims; returns false for malformed or
// oversized addresses.
func NormalizeEmail(email string) (string, bool) {
	email = strings.ToLower(strings.TrimSpace(email))
	if len(email) > 254 || !emailRegex.MatchString(email) {
		return "", false
	}
	return email, true
}

// SanitizeTags lowercases, strips unsafe characters, dedupes, and caps the
// tag list. Tags shorter than 2 chars after cleaning are dropped.
func SanitizeTags(tags []string) []string {
	const maxTags = 10
	var tagRe = regexp.MustCompile(`[^a-z0-9\-_ ]`)

	seen := make(map[string]bool)
	out := []string{}
	for _, tag := range tags {
		if len(out) >= maxTags {
			break
		}
		clean := tagRe.ReplaceAllString(strings.ToLower(strings.TrimSpace(tag)), "")
		if len(clean) < 2 || len(clean) > 50 || seen[clean] {
			continue
		}
		seen[clean] = true
		out = append(out, clean)
	}
	return out
}
