package handlers

import (
	"log"
	"net/http"

	"github.com/bepasal/bazar/app/models"
	"github.com/bepasal/bazar/app/repositories"
	"github.com/bepasal/bazar/app/serializers"
	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"
	"github.com/unrolled/render"
)

type ProductImageHandler struct {
	repo          repositories.ProductImageRepositoryImpl
	productRepo   repositories.ProductRepositoryImpl
	variationRepo repositories.VariationRepositoryImpl
	render        *render.Render
	validator     *validator.Validate
}

func NewProductImageHandler(
	repo repositories.ProductImageRepositoryImpl,
	productRepo repositories.ProductRepositoryImpl,
	variationRepo repositories.VariationRepositoryImpl,
	r *render.Render,
	v *validator.Validate,
) *ProductImageHandler {
	return &ProductImageHandler{
		repo:          repo,
		productRepo:   productRepo,
		variationRepo: variationRepo,
		render:        r,
		validator:     v,
	}
}

// List yields an empty collection for an unknown parent product slug.
func (h *ProductImageHandler) List(w http.ResponseWriter, r *http.Request) {
	productSlug := mux.Vars(r)["product_slug"]
	images, err := h.repo.GetByProductSlug(r.Context(), productSlug)
	if err != nil {
		log.Printf("ProductImageHandler.List: %v", err)
		h.render.JSON(w, http.StatusInternalServerError, ErrorResponse{Detail: "Failed to fetch images."})
		return
	}
	h.render.JSON(w, http.StatusOK, ListResponse{Count: int64(len(images)), Results: images})
}

func (h *ProductImageHandler) Create(w http.ResponseWriter, r *http.Request) {
	productSlug := mux.Vars(r)["product_slug"]
	product, err := h.productRepo.GetBySlug(r.Context(), productSlug)
	if err != nil {
		log.Printf("ProductImageHandler.Create: %v", err)
		h.render.JSON(w, http.StatusInternalServerError, ErrorResponse{Detail: "Failed to create image."})
		return
	}
	if product == nil {
		h.render.JSON(w, http.StatusNotFound, ErrorResponse{Detail: "Product not found."})
		return
	}

	var payload serializers.ProductImagePayload
	if !bindAndValidate(w, r, h.render, h.validator, &payload) {
		return
	}

	image := models.ProductImage{ProductID: product.ID, Image: payload.Image, IsActive: true}
	if payload.IsActive != nil {
		image.IsActive = *payload.IsActive
	}
	if err := h.repo.Create(r.Context(), &image); err != nil {
		log.Printf("ProductImageHandler.Create: %v", err)
		h.render.JSON(w, http.StatusInternalServerError, ErrorResponse{Detail: "Failed to create image."})
		return
	}
	h.render.JSON(w, http.StatusCreated, image)
}

// ListVariationImages yields an empty collection for an unknown variation
// slug.
func (h *ProductImageHandler) ListVariationImages(w http.ResponseWriter, r *http.Request) {
	variationSlug := mux.Vars(r)["variation_slug"]
	images, err := h.repo.GetByVariationSlug(r.Context(), variationSlug)
	if err != nil {
		log.Printf("ProductImageHandler.ListVariationImages: %v", err)
		h.render.JSON(w, http.StatusInternalServerError, ErrorResponse{Detail: "Failed to fetch images."})
		return
	}
	h.render.JSON(w, http.StatusOK, ListResponse{Count: int64(len(images)), Results: images})
}

func (h *ProductImageHandler) CreateVariationImage(w http.ResponseWriter, r *http.Request) {
	variationSlug := mux.Vars(r)["variation_slug"]
	variation, err := h.variationRepo.GetBySlug(r.Context(), variationSlug)
	if err != nil {
		log.Printf("ProductImageHandler.CreateVariationImage: %v", err)
		h.render.JSON(w, http.StatusInternalServerError, ErrorResponse{Detail: "Failed to create image."})
		return
	}
	if variation == nil {
		h.render.JSON(w, http.StatusNotFound, ErrorResponse{Detail: "Variation not found."})
		return
	}

	var payload serializers.ProductImagePayload
	if !bindAndValidate(w, r, h.render, h.validator, &payload) {
		return
	}

	image := models.ProductVariationImage{ProductVariationID: variation.ID, Image: payload.Image, IsActive: true}
	if payload.IsActive != nil {
		image.IsActive = *payload.IsActive
	}
	if err := h.repo.CreateVariationImage(r.Context(), &image); err != nil {
		log.Printf("ProductImageHandler.CreateVariationImage: %v", err)
		h.render.JSON(w, http.StatusInternalServerError, ErrorResponse{Detail: "Failed to create image."})
		return
	}
	h.render.JSON(w, http.StatusCreated, image)
}
