package handlers

import (
	"errors"
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

type CategoryHandler struct {
	repo      repositories.CategoryRepositoryImpl
	render    *render.Render
	validator *validator.Validate
}

func NewCategoryHandler(repo repositories.CategoryRepositoryImpl, r *render.Render, v *validator.Validate) *CategoryHandler {
	return &CategoryHandler{repo: repo, render: r, validator: v}
}

func (h *CategoryHandler) List(w http.ResponseWriter, r *http.Request) {
	var (
		categories []models.Category
		err        error
	)
	if keyword := r.URL.Query().Get("search"); keyword != "" {
		categories, err = h.repo.Search(r.Context(), keyword)
	} else {
		categories, err = h.repo.GetAll(r.Context())
	}
	if err != nil {
		log.Printf("CategoryHandler.List: %v", err)
		h.render.JSON(w, http.StatusInternalServerError, ErrorResponse{Detail: "Failed to fetch categories."})
		return
	}
	h.render.JSON(w, http.StatusOK, ListResponse{Count: int64(len(categories)), Results: categories})
}

func (h *CategoryHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	category, err := h.repo.GetByID(r.Context(), id)
	if err != nil {
		log.Printf("CategoryHandler.Get: %v", err)
		h.render.JSON(w, http.StatusInternalServerError, ErrorResponse{Detail: "Failed to fetch category."})
		return
	}
	if category == nil {
		h.render.JSON(w, http.StatusNotFound, ErrorResponse{Detail: "Category not found."})
		return
	}
	h.render.JSON(w, http.StatusOK, category)
}

func (h *CategoryHandler) Create(w http.ResponseWriter, r *http.Request) {
	var payload serializers.CategoryPayload
	if !bindAndValidate(w, r, h.render, h.validator, &payload) {
		return
	}

	slug := payload.Slug
	if slug == "" {
		slug = helpers.GenerateSlug(payload.Name)
	}
	exists, err := h.repo.SlugExists(r.Context(), slug, "")
	if err != nil {
		log.Printf("CategoryHandler.Create: %v", err)
		h.render.JSON(w, http.StatusInternalServerError, ErrorResponse{Detail: "Failed to create category."})
		return
	}
	if exists {
		fieldError(w, h.render, "slug", "A category with this slug already exists.")
		return
	}

	category := models.Category{
		Name:             payload.Name,
		Slug:             slug,
		ParentCategoryID: payload.ParentCategory,
		IsActive:         true,
	}
	if payload.IsActive != nil {
		category.IsActive = *payload.IsActive
	}

	if err := h.repo.Create(r.Context(), &category); err != nil {
		if errors.Is(err, repositories.ErrCategoryCycle) {
			fieldError(w, h.render, "parent_category", "Parent chain would form a cycle.")
			return
		}
		if errors.Is(err, repositories.ErrUnknownParentCategory) {
			fieldError(w, h.render, "parent_category", "Unknown parent category.")
			return
		}
		log.Printf("CategoryHandler.Create: %v", err)
		h.render.JSON(w, http.StatusInternalServerError, ErrorResponse{Detail: "Failed to create category."})
		return
	}
	h.render.JSON(w, http.StatusCreated, category)
}

func (h *CategoryHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	category, err := h.repo.GetByID(r.Context(), id)
	if err != nil {
		log.Printf("CategoryHandler.Update: %v", err)
		h.render.JSON(w, http.StatusInternalServerError, ErrorResponse{Detail: "Failed to update category."})
		return
	}
	if category == nil {
		h.render.JSON(w, http.StatusNotFound, ErrorResponse{Detail: "Category not found."})
		return
	}

	var payload serializers.CategoryPayload
	if !bindAndValidate(w, r, h.render, h.validator, &payload) {
		return
	}

	slug := payload.Slug
	if slug == "" {
		slug = category.Slug
	}
	exists, err := h.repo.SlugExists(r.Context(), slug, category.ID)
	if err != nil {
		log.Printf("CategoryHandler.Update: %v", err)
		h.render.JSON(w, http.StatusInternalServerError, ErrorResponse{Detail: "Failed to update category."})
		return
	}
	if exists {
		fieldError(w, h.render, "slug", "A category with this slug already exists.")
		return
	}

	category.Name = payload.Name
	category.Slug = slug
	category.ParentCategoryID = payload.ParentCategory
	if payload.IsActive != nil {
		category.IsActive = *payload.IsActive
	}

	if err := h.repo.Update(r.Context(), category); err != nil {
		if errors.Is(err, repositories.ErrCategoryCycle) {
			fieldError(w, h.render, "parent_category", "Parent chain would form a cycle.")
			return
		}
		if errors.Is(err, repositories.ErrUnknownParentCategory) {
			fieldError(w, h.render, "parent_category", "Unknown parent category.")
			return
		}
		log.Printf("CategoryHandler.Update: %v", err)
		h.render.JSON(w, http.StatusInternalServerError, ErrorResponse{Detail: "Failed to update category."})
		return
	}
	h.render.JSON(w, http.StatusOK, category)
}

func (h *CategoryHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	if err := h.repo.Delete(r.Context(), id); err != nil {
		if errors.Is(err, repositories.ErrCategoryHasChildren) {
			h.render.JSON(w, http.StatusConflict, ErrorResponse{Detail: "Category still has child categories."})
			return
		}
		log.Printf("CategoryHandler.Delete: %v", err)
		h.render.JSON(w, http.StatusInternalServerError, ErrorResponse{Detail: "Failed to delete category."})
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
