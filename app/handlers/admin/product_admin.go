package admin

import (
	"log"
	"net/http"

	"github.com/bepasal/bazar/app/handlers"
	"github.com/bepasal/bazar/app/helpers"
	"github.com/bepasal/bazar/app/models"
	"github.com/bepasal/bazar/app/repositories"
	"github.com/bepasal/bazar/app/serializers"
	"github.com/unrolled/render"
)

// AdminProductHandler serves the back-office product list with the
// aggregate columns (stock, sales, price ceilings).
type AdminProductHandler struct {
	repo    repositories.ProductRepositoryImpl
	reviews repositories.ReviewRepositoryImpl
	render  *render.Render
}

func NewAdminProductHandler(repo repositories.ProductRepositoryImpl, reviews repositories.ReviewRepositoryImpl, r *render.Render) *AdminProductHandler {
	return &AdminProductHandler{repo: repo, reviews: reviews, render: r}
}

func (h *AdminProductHandler) List(w http.ResponseWriter, r *http.Request) {
	limit, offset := handlers.Pagination(r)

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
		log.Printf("AdminProductHandler.List: %v", err)
		h.render.JSON(w, http.StatusInternalServerError, handlers.ErrorResponse{Detail: "Failed to fetch products."})
		return
	}

	views := make([]serializers.AdminProductListView, 0, len(products))
	for _, product := range products {
		aggregates, err := h.aggregates(r, product.ID)
		if err != nil {
			log.Printf("AdminProductHandler.List: aggregates for %s: %v", product.ID, err)
			h.render.JSON(w, http.StatusInternalServerError, handlers.ErrorResponse{Detail: "Failed to compute product aggregates."})
			return
		}
		views = append(views, serializers.NewAdminProductListView(product, h.reviewSummary(r, product.ID), aggregates))
	}
	h.render.JSON(w, http.StatusOK, handlers.ListResponse{Count: total, Results: views})
}

func (h *AdminProductHandler) aggregates(r *http.Request, productID string) (serializers.ProductAggregates, error) {
	totalStock, err := h.repo.TotalStock(r.Context(), productID)
	if err != nil {
		return serializers.ProductAggregates{}, err
	}
	totalSold, err := h.repo.TotalSold(r.Context(), productID)
	if err != nil {
		return serializers.ProductAggregates{}, err
	}
	variants, err := h.repo.VariantCount(r.Context(), productID)
	if err != nil {
		return serializers.ProductAggregates{}, err
	}
	prices, err := h.repo.HighestPrices(r.Context(), productID)
	if err != nil {
		return serializers.ProductAggregates{}, err
	}
	return serializers.ProductAggregates{
		TotalStock: totalStock,
		TotalSold:  totalSold,
		Variants:   variants,
		Prices:     prices,
	}, nil
}

func (h *AdminProductHandler) reviewSummary(r *http.Request, productID string) *repositories.ReviewSummary {
	if !helpers.CurrentTenant(r).HasApp("ecommerce") {
		return nil
	}
	summary, err := h.reviews.Summary(r.Context(), productID)
	if err != nil {
		log.Printf("AdminProductHandler.reviewSummary: %v", err)
		return nil
	}
	return &summary
}
