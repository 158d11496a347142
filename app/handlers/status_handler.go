package handlers

import (
	"log"
	"net/http"

	"github.com/bepasal/bazar/app/models"
	"github.com/bepasal/bazar/app/repositories"
	"github.com/bepasal/bazar/app/serializers"
	"github.com/go-playground/validator/v10"
	"github.com/unrolled/render"
)

// StatusHandler serves the order and order-item status lookup tables.
type StatusHandler struct {
	repo      repositories.OrderRepositoryImpl
	render    *render.Render
	validator *validator.Validate
}

func NewStatusHandler(repo repositories.OrderRepositoryImpl, r *render.Render, v *validator.Validate) *StatusHandler {
	return &StatusHandler{repo: repo, render: r, validator: v}
}

func (h *StatusHandler) ListOrderStatuses(w http.ResponseWriter, r *http.Request) {
	statuses, err := h.repo.GetStatuses(r.Context())
	if err != nil {
		log.Printf("StatusHandler.ListOrderStatuses: %v", err)
		h.render.JSON(w, http.StatusInternalServerError, ErrorResponse{Detail: "Failed to fetch order statuses."})
		return
	}
	h.render.JSON(w, http.StatusOK, ListResponse{Count: int64(len(statuses)), Results: statuses})
}

func (h *StatusHandler) CreateOrderStatus(w http.ResponseWriter, r *http.Request) {
	var payload serializers.StatusPayload
	if !bindAndValidate(w, r, h.render, h.validator, &payload) {
		return
	}
	status := models.OrderStatus{Name: payload.Name, Position: payload.Position}
	if err := h.repo.CreateStatus(r.Context(), &status); err != nil {
		log.Printf("StatusHandler.CreateOrderStatus: %v", err)
		h.render.JSON(w, http.StatusInternalServerError, ErrorResponse{Detail: "Failed to create order status."})
		return
	}
	h.render.JSON(w, http.StatusCreated, status)
}

func (h *StatusHandler) ListOrderItemStatuses(w http.ResponseWriter, r *http.Request) {
	statuses, err := h.repo.GetItemStatuses(r.Context())
	if err != nil {
		log.Printf("StatusHandler.ListOrderItemStatuses: %v", err)
		h.render.JSON(w, http.StatusInternalServerError, ErrorResponse{Detail: "Failed to fetch order item statuses."})
		return
	}
	h.render.JSON(w, http.StatusOK, ListResponse{Count: int64(len(statuses)), Results: statuses})
}

func (h *StatusHandler) CreateOrderItemStatus(w http.ResponseWriter, r *http.Request) {
	var payload serializers.StatusPayload
	if !bindAndValidate(w, r, h.render, h.validator, &payload) {
		return
	}
	status := models.OrderItemStatus{Name: payload.Name, Position: payload.Position}
	if err := h.repo.CreateItemStatus(r.Context(), &status); err != nil {
		log.Printf("StatusHandler.CreateOrderItemStatus: %v", err)
		h.render.JSON(w, http.StatusInternalServerError, ErrorResponse{Detail: "Failed to create order item status."})
		return
	}
	h.render.JSON(w, http.StatusCreated, status)
}
