package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/bepasal/bazar/app/helpers"
	"github.com/go-playground/validator/v10"
	"github.com/unrolled/render"
)

// ListResponse is the collection envelope used by every list endpoint.
type ListResponse struct {
	Count   int64 `json:"count"`
	Results any   `json:"results"`
}

type ErrorResponse struct {
	Detail string `json:"detail"`
}

type ValidationErrorResponse struct {
	Errors map[string]string `json:"errors"`
}

func decodeJSON(r *http.Request, dst any) error {
	defer r.Body.Close()
	decoder := json.NewDecoder(r.Body)
	return decoder.Decode(dst)
}

// bindAndValidate decodes the body into payload and runs validator tags,
// writing a field-level 422 on failure. It reports whether the handler
// should continue.
func bindAndValidate(w http.ResponseWriter, r *http.Request, rnd *render.Render, validate *validator.Validate, payload any) bool {
	if err := decodeJSON(r, payload); err != nil {
		rnd.JSON(w, http.StatusBadRequest, ErrorResponse{Detail: "Malformed JSON body."})
		return false
	}
	if err := validate.Struct(payload); err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) {
			rnd.JSON(w, http.StatusUnprocessableEntity, ValidationErrorResponse{
				Errors: helpers.FormatValidationErrors(validationErrors),
			})
			return false
		}
		rnd.JSON(w, http.StatusBadRequest, ErrorResponse{Detail: err.Error()})
		return false
	}
	return true
}

func fieldError(w http.ResponseWriter, rnd *render.Render, field, message string) {
	rnd.JSON(w, http.StatusUnprocessableEntity, ValidationErrorResponse{
		Errors: map[string]string{field: message},
	})
}

// Pagination reads limit and page query params, clamped to sane bounds.
func Pagination(r *http.Request) (limit, offset int) {
	limit = 20
	if raw := r.URL.Query().Get("limit"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil && parsed > 0 && parsed <= 100 {
			limit = parsed
		}
	}
	page := 1
	if raw := r.URL.Query().Get("page"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil && parsed > 0 {
			page = parsed
		}
	}
	offset = (page - 1) * limit
	return limit, offset
}

func isStaff(r *http.Request) bool {
	return helpers.CurrentPrincipal(r).IsStaff
}
