package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/bepasal/bazar/app/helpers"
	"github.com/bepasal/bazar/app/models"
	"github.com/bepasal/bazar/app/repositories"
	"github.com/bepasal/bazar/app/serializers"
	"github.com/bepasal/bazar/app/services"
	"github.com/bepasal/bazar/app/utils/format"
	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"
	"github.com/shopspring/decimal"
	"github.com/unrolled/render"
)

type VariationHandler struct {
	repo        repositories.VariationRepositoryImpl
	productRepo repositories.ProductRepositoryImpl
	typeRepo    repositories.VariationTypeRepositoryImpl
	catalog     *services.CatalogService
	settings    *services.SettingsService
	render      *render.Render
	validator   *validator.Validate
}

func NewVariationHandler(
	repo repositories.VariationRepositoryImpl,
	productRepo repositories.ProductRepositoryImpl,
	typeRepo repositories.VariationTypeRepositoryImpl,
	catalog *services.CatalogService,
	settings *services.SettingsService,
	r *render.Render,
	v *validator.Validate,
) *VariationHandler {
	return &VariationHandler{
		repo:        repo,
		productRepo: productRepo,
		typeRepo:    typeRepo,
		catalog:     catalog,
		settings:    settings,
		render:      r,
		validator:   v,
	}
}

// List serves the variations nested under a product slug. An unknown
// parent slug yields an empty collection, not an error.
func (h *VariationHandler) List(w http.ResponseWriter, r *http.Request) {
	productSlug := mux.Vars(r)["product_slug"]
	variations, err := h.repo.GetByProductSlug(r.Context(), productSlug)
	if err != nil {
		log.Printf("VariationHandler.List: %v", err)
		h.render.JSON(w, http.StatusInternalServerError, ErrorResponse{Detail: "Failed to fetch variations."})
		return
	}

	staff := isStaff(r)
	views := make([]any, 0, len(variations))
	for _, variation := range variations {
		views = append(views, serializers.ProjectVariation(variation, staff))
	}
	h.render.JSON(w, http.StatusOK, ListResponse{Count: int64(len(views)), Results: views})
}

func (h *VariationHandler) Get(w http.ResponseWriter, r *http.Request) {
	slug := mux.Vars(r)["variation_slug"]
	variation, err := h.repo.GetBySlug(r.Context(), slug)
	if err != nil {
		log.Printf("VariationHandler.Get: %v", err)
		h.render.JSON(w, http.StatusInternalServerError, ErrorResponse{Detail: "Failed to fetch variation."})
		return
	}
	if variation == nil {
		h.render.JSON(w, http.StatusNotFound, ErrorResponse{Detail: "Variation not found."})
		return
	}
	h.render.JSON(w, http.StatusOK, serializers.ProjectVariation(*variation, isStaff(r)))
}

func (h *VariationHandler) Create(w http.ResponseWriter, r *http.Request) {
	productSlug := mux.Vars(r)["product_slug"]
	product, err := h.productRepo.GetBySlug(r.Context(), productSlug)
	if err != nil {
		log.Printf("VariationHandler.Create: %v", err)
		h.render.JSON(w, http.StatusInternalServerError, ErrorResponse{Detail: "Failed to create variation."})
		return
	}
	if product == nil {
		h.render.JSON(w, http.StatusNotFound, ErrorResponse{Detail: "Product not found."})
		return
	}

	var payload serializers.VariationPayload
	if !bindAndValidate(w, r, h.render, h.validator, &payload) {
		return
	}

	variation, ok := h.buildVariation(w, r, product, nil, payload)
	if !ok {
		return
	}
	options, ok := h.resolveOptions(w, r, product.ID, "", payload)
	if !ok {
		return
	}

	if err := h.repo.Create(r.Context(), variation); err != nil {
		log.Printf("VariationHandler.Create: %v", err)
		h.render.JSON(w, http.StatusInternalServerError, ErrorResponse{Detail: "Failed to create variation."})
		return
	}
	if err := h.repo.ReplaceOptionCombination(r.Context(), variation, options); err != nil {
		log.Printf("VariationHandler.Create: %v", err)
		h.render.JSON(w, http.StatusInternalServerError, ErrorResponse{Detail: "Failed to save option combination."})
		return
	}

	created, err := h.repo.GetByID(r.Context(), variation.ID)
	if err != nil || created == nil {
		log.Printf("VariationHandler.Create: reload failed: %v", err)
		h.render.JSON(w, http.StatusInternalServerError, ErrorResponse{Detail: "Failed to create variation."})
		return
	}
	h.render.JSON(w, http.StatusCreated, serializers.ProjectVariation(*created, isStaff(r)))
}

func (h *VariationHandler) Update(w http.ResponseWriter, r *http.Request) {
	slug := mux.Vars(r)["variation_slug"]
	existing, err := h.repo.GetBySlug(r.Context(), slug)
	if err != nil {
		log.Printf("VariationHandler.Update: %v", err)
		h.render.JSON(w, http.StatusInternalServerError, ErrorResponse{Detail: "Failed to update variation."})
		return
	}
	if existing == nil {
		h.render.JSON(w, http.StatusNotFound, ErrorResponse{Detail: "Variation not found."})
		return
	}

	var payload serializers.VariationPayload
	if !bindAndValidate(w, r, h.render, h.validator, &payload) {
		return
	}

	product, err := h.productRepo.GetByID(r.Context(), existing.ProductID)
	if err != nil || product == nil {
		log.Printf("VariationHandler.Update: parent lookup failed: %v", err)
		h.render.JSON(w, http.StatusInternalServerError, ErrorResponse{Detail: "Failed to update variation."})
		return
	}

	variation, ok := h.buildVariation(w, r, product, existing, payload)
	if !ok {
		return
	}
	options, ok := h.resolveOptions(w, r, product.ID, existing.ID, payload)
	if !ok {
		return
	}

	if err := h.repo.Update(r.Context(), variation); err != nil {
		log.Printf("VariationHandler.Update: %v", err)
		h.render.JSON(w, http.StatusInternalServerError, ErrorResponse{Detail: "Failed to update variation."})
		return
	}
	if err := h.repo.ReplaceOptionCombination(r.Context(), variation, options); err != nil {
		log.Printf("VariationHandler.Update: %v", err)
		h.render.JSON(w, http.StatusInternalServerError, ErrorResponse{Detail: "Failed to save option combination."})
		return
	}

	updated, err := h.repo.GetByID(r.Context(), variation.ID)
	if err != nil || updated == nil {
		log.Printf("VariationHandler.Update: reload failed: %v", err)
		h.render.JSON(w, http.StatusInternalServerError, ErrorResponse{Detail: "Failed to update variation."})
		return
	}
	h.render.JSON(w, http.StatusOK, serializers.ProjectVariation(*updated, isStaff(r)))
}

func (h *VariationHandler) Delete(w http.ResponseWriter, r *http.Request) {
	slug := mux.Vars(r)["variation_slug"]
	variation, err := h.repo.GetBySlug(r.Context(), slug)
	if err != nil {
		log.Printf("VariationHandler.Delete: %v", err)
		h.render.JSON(w, http.StatusInternalServerError, ErrorResponse{Detail: "Failed to delete variation."})
		return
	}
	if variation == nil {
		h.render.JSON(w, http.StatusNotFound, ErrorResponse{Detail: "Variation not found."})
		return
	}
	if err := h.repo.Delete(r.Context(), variation.ID); err != nil {
		log.Printf("VariationHandler.Delete: %v", err)
		h.render.JSON(w, http.StatusInternalServerError, ErrorResponse{Detail: "Failed to delete variation."})
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// price resolves one price field from the payload. NPR wins when both
// currencies are supplied; a USD amount is converted at the configured
// exchange rate.
func (h *VariationHandler) price(w http.ResponseWriter, field, npr, usd string, required bool) (decimal.Decimal, bool) {
	if npr != "" {
		value, err := decimal.NewFromString(npr)
		if err != nil || value.IsNegative() {
			fieldError(w, h.render, field, "Price must be a non-negative number.")
			return decimal.Zero, false
		}
		return value, true
	}
	if usd != "" {
		value, err := decimal.NewFromString(usd)
		if err != nil || value.IsNegative() {
			fieldError(w, h.render, field+"_usd", "Price must be a non-negative number.")
			return decimal.Zero, false
		}
		return format.UsdToNpr(value, h.settings.ExchangeRate()), true
	}
	if required {
		fieldError(w, h.render, field, "A price in NPR or USD is required.")
		return decimal.Zero, false
	}
	return decimal.Zero, true
}

// buildVariation maps the payload onto a model, validating prices and slug
// uniqueness. existing is nil on create.
func (h *VariationHandler) buildVariation(w http.ResponseWriter, r *http.Request, product *models.Product, existing *models.ProductVariation, payload serializers.VariationPayload) (*models.ProductVariation, bool) {
	sellingPrice, ok := h.price(w, "selling_price", payload.SellingPrice, payload.SellingPriceUsd, true)
	if !ok {
		return nil, false
	}
	costPrice, ok := h.price(w, "cost_price", payload.CostPrice, payload.CostPriceUsd, false)
	if !ok {
		return nil, false
	}

	variation := existing
	if variation == nil {
		variation = &models.ProductVariation{ProductID: product.ID, IsActive: true}
	}

	slug := payload.Slug
	if slug == "" && existing == nil {
		slug = helpers.GenerateSlug(product.Slug + "-" + sellingPrice.String())
	}
	if slug != "" {
		excludeID := ""
		if existing != nil {
			excludeID = existing.ID
		}
		exists, err := h.repo.SlugExists(r.Context(), slug, excludeID)
		if err != nil {
			log.Printf("VariationHandler.buildVariation: %v", err)
			h.render.JSON(w, http.StatusInternalServerError, ErrorResponse{Detail: "Failed to save variation."})
			return nil, false
		}
		if exists {
			fieldError(w, h.render, "slug", "A variation with this slug already exists.")
			return nil, false
		}
		variation.Slug = slug
	}

	variation.CostPrice = costPrice
	variation.SellingPrice = sellingPrice
	variation.Stock = payload.Stock
	variation.DigitalFile = payload.DigitalFile
	if payload.IsActive != nil {
		variation.IsActive = *payload.IsActive
	}
	variation.VariationOptionCombination = nil
	variation.Images = nil
	return variation, true
}

// resolveOptions loads the combination's options and runs the per-product
// uniqueness check before any write happens.
func (h *VariationHandler) resolveOptions(w http.ResponseWriter, r *http.Request, productID, excludeID string, payload serializers.VariationPayload) ([]models.VariationOption, bool) {
	options, err := h.typeRepo.GetOptionsByIDs(r.Context(), payload.VariationOptionCombination)
	if err != nil {
		log.Printf("VariationHandler.resolveOptions: %v", err)
		h.render.JSON(w, http.StatusInternalServerError, ErrorResponse{Detail: "Failed to resolve option combination."})
		return nil, false
	}
	if len(options) != len(payload.VariationOptionCombination) {
		fieldError(w, h.render, "variation_option_combination", "One or more variation options do not exist.")
		return nil, false
	}

	if err := h.catalog.ValidateCombination(r.Context(), productID, excludeID, options); err != nil {
		switch {
		case errors.Is(err, services.ErrDuplicateCombination):
			fieldError(w, h.render, "variation_option_combination", "An active variation with this option combination already exists.")
		case errors.Is(err, services.ErrOptionTypeConflict):
			fieldError(w, h.render, "variation_option_combination", "Combination selects more than one option of the same variation type.")
		default:
			log.Printf("VariationHandler.resolveOptions: %v", err)
			h.render.JSON(w, http.StatusInternalServerError, ErrorResponse{Detail: "Failed to validate option combination."})
		}
		return nil, false
	}
	return options, true
}
