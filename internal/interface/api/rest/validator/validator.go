package validator

import (
	"net/mail"
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/google/uuid"

	"listings-media-api/internal/interface/api/rest/dto/auth"
	"listings-media-api/internal/interface/api/rest/dto/listing"
)

const (
	minPasswordLen = 8
	maxPasswordLen = 72 // bcrypt safe
)

var (
	e164Re = regexp.MustCompile(`^\+[1-9]\d{7,14}$`)
)

func IsUUID(s string) (bool, uuid.UUID) {
	id, err := uuid.Parse(s)
	return err == nil, id
}

func ValidateLogin(r auth.LoginRequest) map[string]string {
	errs := make(map[string]string)

	// Normalize
	email := strings.ToLower(strings.TrimSpace(r.Email))
	password := r.Password

	// email (required + format)
	if email == "" {
		errs["email"] = "email is required"
	} else if _, err := mail.ParseAddress(email); err != nil {
		errs["email"] = "invalid email format"
	}

	// password (required + length)
	if strings.TrimSpace(password) == "" {
		errs["password"] = "password is required"
	} else if l := utf8.RuneCountInString(password); l < minPasswordLen || l > maxPasswordLen {
		errs["password"] = "password length must be 8-72 characters"
	}

	if len(errs) == 0 {
		return nil
	}
	return errs
}

func ValidateRegister(r auth.RegisterRequest) map[string]string {
	errs := ValidateLogin(auth.LoginRequest{Email: r.Email, Password: r.Password})
	if errs == nil {
		errs = make(map[string]string)
	}

	name := strings.TrimSpace(r.Name)
	phone := strings.TrimSpace(r.Phone)

	// name (required + length + allowed chars)
	if name == "" {
		errs["name"] = "name is required"
	} else if l := utf8.RuneCountInString(name); l < 2 || l > 64 {
		errs["name"] = "name length must be 2-64 characters"
	} else if !isHumanName(name) {
		errs["name"] = "allowed characters: letters, space, '-', '''"
	}

	// phone (required + E.164)
	if phone == "" {
		errs["phone"] = "phone is required"
	} else if !e164Re.MatchString(phone) {
		errs["phone"] = "must be in E.164 format (e.g., +33788888888)"
	}

	if len(errs) == 0 {
		return nil
	}
	return errs
}

func ValidateListing(r listing.Request) map[string]string {
	errs := make(map[string]string)

	if strings.TrimSpace(r.Title) == "" {
		errs["title"] = "title is required"
	} else if utf8.RuneCountInString(r.Title) > 200 {
		errs["title"] = "title length must be at most 200 characters"
	}
	if r.Price < 0 {
		errs["price"] = "price must not be negative"
	}
	if r.Bedrooms < 0 {
		errs["bedrooms"] = "bedrooms must not be negative"
	}
	if r.Bathrooms < 0 {
		errs["bathrooms"] = "bathrooms must not be negative"
	}
	if r.AreaSqft < 0 {
		errs["area_sqft"] = "area_sqft must not be negative"
	}

	if len(errs) == 0 {
		return nil
	}
	return errs
}

func isHumanName(s string) bool {
	for _, r := range s {
		if unicode.IsLetter(r) || r == ' ' || r == '-' || r == '\'' {
			continue
		}
		return false
	}
	return true
}
