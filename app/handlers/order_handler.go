package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/bepasal/bazar/app/helpers"
	"github.com/bepasal/bazar/app/repositories"
	"github.com/bepasal/bazar/app/serializers"
	"github.com/bepasal/bazar/app/services"
	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"
	"github.com/unrolled/render"
)

type OrderHandler struct {
	repo      repositories.OrderRepositoryImpl
	orders    *services.OrderService
	render    *render.Render
	validator *validator.Validate
}

func NewOrderHandler(repo repositories.OrderRepositoryImpl, orders *services.OrderService, r *render.Render, v *validator.Validate) *OrderHandler {
	return &OrderHandler{repo: repo, orders: orders, render: r, validator: v}
}

func (h *OrderHandler) List(w http.ResponseWriter, r *http.Request) {
	limit, offset := Pagination(r)
	orders, total, err := h.repo.GetPaginated(r.Context(), limit, offset)
	if err != nil {
		log.Printf("OrderHandler.List: %v", err)
		h.render.JSON(w, http.StatusInternalServerError, ErrorResponse{Detail: "Failed to fetch orders."})
		return
	}

	staff := isStaff(r)
	views := make([]serializers.OrderView, 0, len(orders))
	for _, order := range orders {
		views = append(views, serializers.NewOrderView(order, staff))
	}
	h.render.JSON(w, http.StatusOK, ListResponse{Count: total, Results: views})
}

func (h *OrderHandler) Get(w http.ResponseWriter, r *http.Request) {
	code := mux.Vars(r)["order_code"]
	order, err := h.repo.GetByCode(r.Context(), code)
	if err != nil {
		log.Printf("OrderHandler.Get: %v", err)
		h.render.JSON(w, http.StatusInternalServerError, ErrorResponse{Detail: "Failed to fetch order."})
		return
	}
	if order == nil {
		h.render.JSON(w, http.StatusNotFound, ErrorResponse{Detail: "Order not found."})
		return
	}
	h.render.JSON(w, http.StatusOK, serializers.NewOrderView(*order, isStaff(r)))
}

// Create accepts guest orders: the user reference is only set when the
// caller is authenticated.
func (h *OrderHandler) Create(w http.ResponseWriter, r *http.Request) {
	var payload serializers.OrderPayload
	if !bindAndValidate(w, r, h.render, h.validator, &payload) {
		return
	}

	var userID *string
	if principal := helpers.CurrentPrincipal(r); principal.IsAuthenticated {
		userID = &principal.ID
	}

	order, err := h.orders.Place(r.Context(), payload, userID)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrUnknownVariation):
			fieldError(w, h.render, "order_items", "An order item references an unknown item/variation pair.")
		case errors.Is(err, repositories.ErrInsufficientStock):
			fieldError(w, h.render, "order_items", "Not enough stock for one of the ordered variations.")
		default:
			log.Printf("OrderHandler.Create: %v", err)
			h.render.JSON(w, http.StatusInternalServerError, ErrorResponse{Detail: "Failed to place order."})
		}
		return
	}
	h.render.JSON(w, http.StatusCreated, serializers.NewOrderView(*order, isStaff(r)))
}

func (h *OrderHandler) CancelItem(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	order, err := h.orders.CancelItem(r.Context(), vars["order_code"], vars["item_id"])
	if err != nil {
		switch {
		case errors.Is(err, services.ErrItemNotInOrder):
			h.render.JSON(w, http.StatusNotFound, ErrorResponse{Detail: "Order item not found in this order."})
		case errors.Is(err, services.ErrAlreadyCancelled):
			h.render.JSON(w, http.StatusConflict, ErrorResponse{Detail: "Order item is already cancelled."})
		default:
			log.Printf("OrderHandler.CancelItem: %v", err)
			h.render.JSON(w, http.StatusInternalServerError, ErrorResponse{Detail: "Failed to cancel order item."})
		}
		return
	}
	if order == nil {
		h.render.JSON(w, http.StatusNotFound, ErrorResponse{Detail: "Order not found."})
		return
	}
	h.render.JSON(w, http.StatusOK, serializers.NewOrderView(*order, isStaff(r)))
}
