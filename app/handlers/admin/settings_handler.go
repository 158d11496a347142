package admin

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/bepasal/bazar/app/handlers"
	"github.com/bepasal/bazar/app/helpers"
	"github.com/bepasal/bazar/app/serializers"
	"github.com/bepasal/bazar/app/services"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
	"github.com/unrolled/render"
)

type SettingsHandler struct {
	settings  *services.SettingsService
	render    *render.Render
	validator *validator.Validate
}

func NewSettingsHandler(settings *services.SettingsService, r *render.Render, v *validator.Validate) *SettingsHandler {
	return &SettingsHandler{settings: settings, render: r, validator: v}
}

func (h *SettingsHandler) Get(w http.ResponseWriter, r *http.Request) {
	h.render.JSON(w, http.StatusOK, h.settings.Get())
}

func (h *SettingsHandler) Update(w http.ResponseWriter, r *http.Request) {
	var payload serializers.SettingsPayload
	defer r.Body.Close()
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		h.render.JSON(w, http.StatusBadRequest, handlers.ErrorResponse{Detail: "Malformed JSON body."})
		return
	}
	if err := h.validator.Struct(&payload); err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) {
			h.render.JSON(w, http.StatusUnprocessableEntity, handlers.ValidationErrorResponse{
				Errors: helpers.FormatValidationErrors(validationErrors),
			})
			return
		}
		h.render.JSON(w, http.StatusBadRequest, handlers.ErrorResponse{Detail: err.Error()})
		return
	}

	rate, err := decimal.NewFromString(payload.UsdNprExchangeRate)
	if err != nil || !rate.IsPositive() {
		h.render.JSON(w, http.StatusUnprocessableEntity, handlers.ValidationErrorResponse{
			Errors: map[string]string{"usd_npr_exchange_rate": "Exchange rate must be a positive number."},
		})
		return
	}

	updated, err := h.settings.Update(r.Context(), rate)
	if err != nil {
		log.Printf("SettingsHandler.Update: %v", err)
		h.render.JSON(w, http.StatusInternalServerError, handlers.ErrorResponse{Detail: "Failed to update settings."})
		return
	}
	h.render.JSON(w, http.StatusOK, updated)
}
