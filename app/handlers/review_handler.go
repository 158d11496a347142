package handlers

import (
	"log"
	"net/http"

	"github.com/bepasal/bazar/app/helpers"
	"github.com/bepasal/bazar/app/models"
	"github.com/bepasal/bazar/app/repositories"
	"github.com/bepasal/bazar/app/serializers"
	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"
	"github.com/unrolled/render"
)

// ReviewHandler only responds for tenants that have the ecommerce app
// enabled; other tenants see 404 on every review route.
type ReviewHandler struct {
	repo        repositories.ReviewRepositoryImpl
	productRepo repositories.ProductRepositoryImpl
	render      *render.Render
	validator   *validator.Validate
}

func NewReviewHandler(repo repositories.ReviewRepositoryImpl, productRepo repositories.ProductRepositoryImpl, r *render.Render, v *validator.Validate) *ReviewHandler {
	return &ReviewHandler{repo: repo, productRepo: productRepo, render: r, validator: v}
}

func (h *ReviewHandler) tenantEnabled(w http.ResponseWriter, r *http.Request) bool {
	if !helpers.CurrentTenant(r).HasApp("ecommerce") {
		h.render.JSON(w, http.StatusNotFound, ErrorResponse{Detail: "Not found."})
		return false
	}
	return true
}

func (h *ReviewHandler) List(w http.ResponseWriter, r *http.Request) {
	if !h.tenantEnabled(w, r) {
		return
	}
	productSlug := mux.Vars(r)["product_slug"]
	reviews, err := h.repo.GetByProductSlug(r.Context(), productSlug)
	if err != nil {
		log.Printf("ReviewHandler.List: %v", err)
		h.render.JSON(w, http.StatusInternalServerError, ErrorResponse{Detail: "Failed to fetch reviews."})
		return
	}
	h.render.JSON(w, http.StatusOK, ListResponse{Count: int64(len(reviews)), Results: reviews})
}

func (h *ReviewHandler) Create(w http.ResponseWriter, r *http.Request) {
	if !h.tenantEnabled(w, r) {
		return
	}
	productSlug := mux.Vars(r)["product_slug"]
	product, err := h.productRepo.GetBySlug(r.Context(), productSlug)
	if err != nil {
		log.Printf("ReviewHandler.Create: %v", err)
		h.render.JSON(w, http.StatusInternalServerError, ErrorResponse{Detail: "Failed to create review."})
		return
	}
	if product == nil {
		h.render.JSON(w, http.StatusNotFound, ErrorResponse{Detail: "Product not found."})
		return
	}

	var payload serializers.ReviewPayload
	if !bindAndValidate(w, r, h.render, h.validator, &payload) {
		return
	}

	review := models.Review{
		ProductID:     product.ID,
		Rating:        payload.Rating,
		Comment:       payload.Comment,
		ReviewerName:  payload.ReviewerName,
		ReviewerEmail: payload.ReviewerEmail,
		IsActive:      true,
	}
	if err := h.repo.Create(r.Context(), &review); err != nil {
		log.Printf("ReviewHandler.Create: %v", err)
		h.render.JSON(w, http.StatusInternalServerError, ErrorResponse{Detail: "Failed to create review."})
		return
	}
	h.render.JSON(w, http.StatusCreated, review)
}
