package helpers

import (
	"fmt"
	"log"
	"net/http"
	"regexp"
	"strings"

	"github.com/bepasal/bazar/app/models"
	"github.com/go-playground/validator/v10"
	"golang.org/x/crypto/bcrypt"
)

type contextKey string

const (
	ContextKeyPrincipal contextKey = "principal"
	ContextKeyTenant    contextKey = "tenant"
)

// Principal is the identity contract every redaction decision runs on. How
// it was established (session, token, upstream header) is not this
// service's concern.
type Principal struct {
	ID              string
	IsStaff         bool
	IsAuthenticated bool
}

// CurrentPrincipal returns the request's principal; an anonymous caller
// gets the zero value.
func CurrentPrincipal(r *http.Request) Principal {
	if principal, ok := r.Context().Value(ContextKeyPrincipal).(Principal); ok {
		return principal
	}
	return Principal{}
}

// CurrentTenant returns the tenant the upstream router resolved, or nil.
func CurrentTenant(r *http.Request) *models.Tenant {
	if tenant, ok := r.Context().Value(ContextKeyTenant).(*models.Tenant); ok {
		return tenant
	}
	return nil
}

func FormatValidationErrors(errs validator.ValidationErrors) map[string]string {
	errorMessages := make(map[string]string)
	for _, err := range errs {
		field := strings.ToLower(err.Field())
		switch err.Tag() {
		case "required":
			errorMessages[field] = fmt.Sprintf("%s is required.", err.Field())
		case "email":
			errorMessages[field] = fmt.Sprintf("%s must be a valid email address.", err.Field())
		case "numeric":
			errorMessages[field] = fmt.Sprintf("%s must be a number.", err.Field())
		case "min":
			errorMessages[field] = fmt.Sprintf("%s must have at least %s items/characters.", err.Field(), err.Param())
		case "max":
			errorMessages[field] = fmt.Sprintf("%s may have at most %s items/characters.", err.Field(), err.Param())
		case "gte":
			errorMessages[field] = fmt.Sprintf("%s must be at least %s.", err.Field(), err.Param())
		case "lte":
			errorMessages[field] = fmt.Sprintf("%s must be at most %s.", err.Field(), err.Param())
		default:
			errorMessages[field] = fmt.Sprintf("Validation %s failed on field %s.", err.Tag(), err.Field())
		}
	}
	return errorMessages
}

func PasswordCompare(hashPass string, password []byte) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hashPass), password)
	if err != nil {
		log.Printf("PasswordCompare: password does not match or error: %v", err)
		return false
	}
	return true
}

func HashPassword(password string) string {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Printf("Error hashing password: %v", err)
		return ""
	}
	return string(bytes)
}

func GenerateSlug(s string) string {
	s = strings.ToLower(s)
	reg := regexp.MustCompile("[^a-z0-9]+")
	s = reg.ReplaceAllString(s, "-")
	s = strings.Trim(s, "-")
	return s
}
