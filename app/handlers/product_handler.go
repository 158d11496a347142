package handlers

import (
	"log"
	"net/http"

	"github.com/bepasal/bazar/app/helpers"
	"github.com/bepasal/bazar/app/models"
	"github.com/bepasal/bazar/app/repositories"
	"github.com/bepasal/bazar/app/serializers"
	"github.com/bepasal/bazar/app/services"
	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"
	"github.com/unrolled/render"
)

type ProductHandler struct {
	repo      repositories.ProductRepositoryImpl
	catRepo   repositories.CategoryRepositoryImpl
	typeRepo  repositories.VariationTypeRepositoryImpl
	reviews   repositories.ReviewRepositoryImpl
	catalog   *services.CatalogService
	render    *render.Render
	validator *validator.Validate
}

func NewProductHandler(
	repo repositories.ProductRepositoryImpl,
	catRepo repositories.CategoryRepositoryImpl,
	typeRepo repositories.VariationTypeRepositoryImpl,
	reviews repositories.ReviewRepositoryImpl,
	catalog *services.CatalogService,
	r *render.Render,
	v *validator.Validate,
) *ProductHandler {
	return &ProductHandler{
		repo:      repo,
		catRepo:   catRepo,
		typeRepo:  typeRepo,
		reviews:   reviews,
		catalog:   catalog,
		render:    r,
		validator: v,
	}
}

// reviewSummary is nil unless the tenant has the review subsystem enabled;
// the serializer then omits the key entirely.
func (h *ProductHandler) reviewSummary(r *http.Request, productID string) *repositories.ReviewSummary {
	tenant := helpers.CurrentTenant(r)
	if !tenant.HasApp("ecommerce") {
		return nil
	}
	summary, err := h.reviews.Summary(r.Context(), productID)
	if err != nil {
		log.Printf("ProductHandler.reviewSummary: %v", err)
		return nil
	}
	return &summary
}

func (h *ProductHandler) List(w http.ResponseWriter, r *http.Request) {
	limit, offset := Pagination(r)

	var (
		products []models.Product
		total    int64
		err      error
	)
	if keyword := r.URL.Query().Get("search"); keyword != "" {
		products, total, err = h.repo.SearchPaginated(r.Context(), keyword, limit, offset)
	} else {
		products, total, err = h.repo.GetPaginated(r.Context(), limit, offset)
	}
	if err != nil {
		log.Printf("ProductHandler.List: %v", err)
		h.render.JSON(w, http.StatusInternalServerError, ErrorResponse{Detail: "Failed to fetch products."})
		return
	}

	staff := isStaff(r)
	views := make([]serializers.ProductListView, 0, len(products))
	for _, product := range products {
		views = append(views, serializers.NewProductListView(product, h.reviewSummary(r, product.ID), staff))
	}
	h.render.JSON(w, http.StatusOK, ListResponse{Count: total, Results: views})
}

func (h *ProductHandler) Get(w http.ResponseWriter, r *http.Request) {
	slug := mux.Vars(r)["product_slug"]
	product, err := h.repo.GetBySlug(r.Context(), slug)
	if err != nil {
		log.Printf("ProductHandler.Get: %v", err)
		h.render.JSON(w, http.StatusInternalServerError, ErrorResponse{Detail: "Failed to fetch product."})
		return
	}
	if product == nil {
		h.render.JSON(w, http.StatusNotFound, ErrorResponse{Detail: "Product not found."})
		return
	}
	h.render.JSON(w, http.StatusOK, serializers.NewProductView(*product, h.reviewSummary(r, product.ID), isStaff(r)))
}

func (h *ProductHandler) Create(w http.ResponseWriter, r *http.Request) {
	var payload serializers.ProductPayload
	if !bindAndValidate(w, r, h.render, h.validator, &payload) {
		return
	}

	slug := payload.Slug
	if slug == "" {
		slug = helpers.GenerateSlug(payload.Name)
	}
	exists, err := h.repo.SlugExists(r.Context(), slug, "")
	if err != nil {
		log.Printf("ProductHandler.Create: %v", err)
		h.render.JSON(w, http.StatusInternalServerError, ErrorResponse{Detail: "Failed to create product."})
		return
	}
	if exists {
		fieldError(w, h.render, "slug", "A product with this slug already exists.")
		return
	}

	categories, types, ok := h.resolveAssociations(w, r, payload)
	if !ok {
		return
	}

	product := models.Product{
		Name:           payload.Name,
		Slug:           slug,
		Description:    payload.Description,
		ThumbnailImage: payload.ThumbnailImage,
		IsActive:       true,
	}
	if payload.IsActive != nil {
		product.IsActive = *payload.IsActive
	}
	product.Categories = categories
	product.EnabledVariationTypes = types

	if err := h.repo.Create(r.Context(), &product); err != nil {
		log.Printf("ProductHandler.Create: %v", err)
		h.render.JSON(w, http.StatusInternalServerError, ErrorResponse{Detail: "Failed to create product."})
		return
	}

	created, err := h.repo.GetBySlug(r.Context(), product.Slug)
	if err != nil || created == nil {
		log.Printf("ProductHandler.Create: reload failed: %v", err)
		h.render.JSON(w, http.StatusInternalServerError, ErrorResponse{Detail: "Failed to create product."})
		return
	}
	h.render.JSON(w, http.StatusCreated, serializers.NewProductView(*created, h.reviewSummary(r, created.ID), isStaff(r)))
}

func (h *ProductHandler) Update(w http.ResponseWriter, r *http.Request) {
	slug := mux.Vars(r)["product_slug"]
	product, err := h.repo.GetBySlug(r.Context(), slug)
	if err != nil {
		log.Printf("ProductHandler.Update: %v", err)
		h.render.JSON(w, http.StatusInternalServerError, ErrorResponse{Detail: "Failed to update product."})
		return
	}
	if product == nil {
		h.render.JSON(w, http.StatusNotFound, ErrorResponse{Detail: "Product not found."})
		return
	}

	var payload serializers.ProductPayload
	if !bindAndValidate(w, r, h.render, h.validator, &payload) {
		return
	}

	newSlug := payload.Slug
	if newSlug == "" {
		newSlug = product.Slug
	}
	exists, err := h.repo.SlugExists(r.Context(), newSlug, product.ID)
	if err != nil {
		log.Printf("ProductHandler.Update: %v", err)
		h.render.JSON(w, http.StatusInternalServerError, ErrorResponse{Detail: "Failed to update product."})
		return
	}
	if exists {
		fieldError(w, h.render, "slug", "A product with this slug already exists.")
		return
	}

	categories, types, ok := h.resolveAssociations(w, r, payload)
	if !ok {
		return
	}

	product.Name = payload.Name
	product.Slug = newSlug
	product.Description = payload.Description
	product.ThumbnailImage = payload.ThumbnailImage
	if payload.IsActive != nil {
		product.IsActive = *payload.IsActive
	}
	if payload.DefaultVariant != nil {
		if err := h.catalog.ValidateDefaultVariant(r.Context(), product.ID, *payload.DefaultVariant); err != nil {
			fieldError(w, h.render, "default_variant", "Default variant must be a variation of this product.")
			return
		}
	}
	product.DefaultVariantID = payload.DefaultVariant
	product.DefaultVariant = nil

	if err := h.repo.Update(r.Context(), product); err != nil {
		log.Printf("ProductHandler.Update: %v", err)
		h.render.JSON(w, http.StatusInternalServerError, ErrorResponse{Detail: "Failed to update product."})
		return
	}
	if payload.Categories != nil {
		if err := h.repo.ReplaceCategories(r.Context(), product, categories); err != nil {
			log.Printf("ProductHandler.Update: %v", err)
			h.render.JSON(w, http.StatusInternalServerError, ErrorResponse{Detail: "Failed to save product categories."})
			return
		}
	}
	if payload.EnabledVariationTypes != nil {
		if err := h.repo.ReplaceEnabledVariationTypes(r.Context(), product, types); err != nil {
			log.Printf("ProductHandler.Update: %v", err)
			h.render.JSON(w, http.StatusInternalServerError, ErrorResponse{Detail: "Failed to save variation types."})
			return
		}
	}

	updated, err := h.repo.GetBySlug(r.Context(), product.Slug)
	if err != nil || updated == nil {
		log.Printf("ProductHandler.Update: reload failed: %v", err)
		h.render.JSON(w, http.StatusInternalServerError, ErrorResponse{Detail: "Failed to update product."})
		return
	}
	h.render.JSON(w, http.StatusOK, serializers.NewProductView(*updated, h.reviewSummary(r, updated.ID), isStaff(r)))
}

func (h *ProductHandler) Delete(w http.ResponseWriter, r *http.Request) {
	slug := mux.Vars(r)["product_slug"]
	product, err := h.repo.GetBySlug(r.Context(), slug)
	if err != nil {
		log.Printf("ProductHandler.Delete: %v", err)
		h.render.JSON(w, http.StatusInternalServerError, ErrorResponse{Detail: "Failed to delete product."})
		return
	}
	if product == nil {
		h.render.JSON(w, http.StatusNotFound, ErrorResponse{Detail: "Product not found."})
		return
	}
	if err := h.repo.Delete(r.Context(), product.ID); err != nil {
		log.Printf("ProductHandler.Delete: %v", err)
		h.render.JSON(w, http.StatusInternalServerError, ErrorResponse{Detail: "Failed to delete product."})
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// resolveAssociations looks up the category and enabled-variation-type sets
// named in the payload. It runs before any row is written so that a bad id
// rejects the request without leaving a half-saved product behind. It reports
// whether the handler should continue.
func (h *ProductHandler) resolveAssociations(w http.ResponseWriter, r *http.Request, payload serializers.ProductPayload) ([]models.Category, []models.VariationType, bool) {
	var categories []models.Category
	for _, id := range payload.Categories {
		category, err := h.catRepo.GetByID(r.Context(), id)
		if err != nil {
			log.Printf("ProductHandler.resolveAssociations: %v", err)
			h.render.JSON(w, http.StatusInternalServerError, ErrorResponse{Detail: "Failed to resolve product categories."})
			return nil, nil, false
		}
		if category == nil {
			fieldError(w, h.render, "categories", "Unknown category: "+id)
			return nil, nil, false
		}
		categories = append(categories, *category)
	}

	var types []models.VariationType
	if payload.EnabledVariationTypes != nil {
		var err error
		types, err = h.typeRepo.GetByIDs(r.Context(), payload.EnabledVariationTypes)
		if err != nil {
			log.Printf("ProductHandler.resolveAssociations: %v", err)
			h.render.JSON(w, http.StatusInternalServerError, ErrorResponse{Detail: "Failed to resolve variation types."})
			return nil, nil, false
		}
		if len(types) != len(payload.EnabledVariationTypes) {
			fieldError(w, h.render, "enabled_variation_types", "One or more variation types do not exist.")
			return nil, nil, false
		}
	}
	return categories, types, true
}
