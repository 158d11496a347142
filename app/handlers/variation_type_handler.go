package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/bepasal/bazar/app/models"
	"github.com/bepasal/bazar/app/repositories"
	"github.com/bepasal/bazar/app/serializers"
	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"
	"github.com/unrolled/render"
)

type VariationTypeHandler struct {
	repo      repositories.VariationTypeRepositoryImpl
	render    *render.Render
	validator *validator.Validate
}

func NewVariationTypeHandler(repo repositories.VariationTypeRepositoryImpl, r *render.Render, v *validator.Validate) *VariationTypeHandler {
	return &VariationTypeHandler{repo: repo, render: r, validator: v}
}

func (h *VariationTypeHandler) List(w http.ResponseWriter, r *http.Request) {
	var (
		variationTypes []models.VariationType
		err            error
	)
	if keyword := r.URL.Query().Get("search"); keyword != "" {
		variationTypes, err = h.repo.Search(r.Context(), keyword)
	} else {
		variationTypes, err = h.repo.GetAll(r.Context())
	}
	if err != nil {
		log.Printf("VariationTypeHandler.List: %v", err)
		h.render.JSON(w, http.StatusInternalServerError, ErrorResponse{Detail: "Failed to fetch variation types."})
		return
	}

	views := make([]map[string]any, 0, len(variationTypes))
	for _, variationType := range variationTypes {
		optionViews := make([]serializers.VariationOptionView, 0, len(variationType.Options))
		for _, option := range variationType.Options {
			view := serializers.NewVariationOptionView(option)
			view.VariationTypeName = variationType.Name
			optionViews = append(optionViews, view)
		}
		views = append(views, map[string]any{
			"id":                variationType.ID,
			"name":              variationType.Name,
			"variation_options": optionViews,
			"created_at":        variationType.CreatedAt,
			"updated_at":        variationType.UpdatedAt,
		})
	}
	h.render.JSON(w, http.StatusOK, ListResponse{Count: int64(len(views)), Results: views})
}

func (h *VariationTypeHandler) Create(w http.ResponseWriter, r *http.Request) {
	var payload serializers.VariationTypePayload
	if !bindAndValidate(w, r, h.render, h.validator, &payload) {
		return
	}

	variationType := models.VariationType{Name: payload.Name}
	if err := h.repo.Create(r.Context(), &variationType); err != nil {
		log.Printf("VariationTypeHandler.Create: %v", err)
		h.render.JSON(w, http.StatusInternalServerError, ErrorResponse{Detail: "Failed to create variation type."})
		return
	}
	h.render.JSON(w, http.StatusCreated, variationType)
}

func (h *VariationTypeHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["type_id"]
	if err := h.repo.Delete(r.Context(), id); err != nil {
		if errors.Is(err, repositories.ErrVariationTypeInUse) {
			h.render.JSON(w, http.StatusConflict, ErrorResponse{Detail: "Variation type options are still referenced by variations."})
			return
		}
		log.Printf("VariationTypeHandler.Delete: %v", err)
		h.render.JSON(w, http.StatusInternalServerError, ErrorResponse{Detail: "Failed to delete variation type."})
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ListOptions yields an empty collection for an unknown parent type.
func (h *VariationTypeHandler) ListOptions(w http.ResponseWriter, r *http.Request) {
	typeID := mux.Vars(r)["type_id"]
	options, err := h.repo.GetOptionsByType(r.Context(), typeID)
	if err != nil {
		log.Printf("VariationTypeHandler.ListOptions: %v", err)
		h.render.JSON(w, http.StatusInternalServerError, ErrorResponse{Detail: "Failed to fetch options."})
		return
	}
	views := make([]serializers.VariationOptionView, 0, len(options))
	for _, option := range options {
		views = append(views, serializers.NewVariationOptionView(option))
	}
	h.render.JSON(w, http.StatusOK, ListResponse{Count: int64(len(views)), Results: views})
}

func (h *VariationTypeHandler) CreateOption(w http.ResponseWriter, r *http.Request) {
	typeID := mux.Vars(r)["type_id"]
	variationType, err := h.repo.GetByID(r.Context(), typeID)
	if err != nil {
		log.Printf("VariationTypeHandler.CreateOption: %v", err)
		h.render.JSON(w, http.StatusInternalServerError, ErrorResponse{Detail: "Failed to create option."})
		return
	}
	if variationType == nil {
		h.render.JSON(w, http.StatusNotFound, ErrorResponse{Detail: "Variation type not found."})
		return
	}

	var payload serializers.VariationOptionPayload
	if !bindAndValidate(w, r, h.render, h.validator, &payload) {
		return
	}

	option := models.VariationOption{Name: payload.Name, VariationTypeID: variationType.ID}
	if err := h.repo.CreateOption(r.Context(), &option); err != nil {
		log.Printf("VariationTypeHandler.CreateOption: %v", err)
		h.render.JSON(w, http.StatusInternalServerError, ErrorResponse{Detail: "Failed to create option."})
		return
	}
	option.VariationType = *variationType
	h.render.JSON(w, http.StatusCreated, serializers.NewVariationOptionView(option))
}
