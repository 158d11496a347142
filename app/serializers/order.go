package serializers

import (
	"time"

	"github.com/bepasal/bazar/app/models"
)

type OrderItemView struct {
	ID              string          `json:"id"`
	Order           string          `json:"order"`
	Quantity        int             `json:"quantity"`
	IsCancelled     bool            `json:"is_cancelled"`
	Status          *string         `json:"status"`
	ItemDetail      ProductListView `json:"item_detail"`
	VariationDetail any             `json:"variation_detail"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}

type OrderView struct {
	ID         string          `json:"id"`
	Code       string          `json:"code"`
	User       *string         `json:"user"`
	Status     *string         `json:"status"`
	StatusName string          `json:"status_name,omitempty"`
	OrderItems []OrderItemView `json:"order_items"`
	CreatedAt  time.Time       `json:"created_at"`
	UpdatedAt  time.Time       `json:"updated_at"`
}

// NewOrderItemView inlines the full item and variation detail: a read-time
// join for display, not a stored snapshot.
func NewOrderItemView(item models.OrderItem, staff bool) OrderItemView {
	return OrderItemView{
		ID:              item.ID,
		Order:           item.OrderID,
		Quantity:        item.Quantity,
		IsCancelled:     item.IsCancelled,
		Status:          item.StatusID,
		ItemDetail:      NewProductListView(item.Product, nil, staff),
		VariationDetail: ProjectVariation(item.Variation, staff),
		CreatedAt:       item.CreatedAt,
		UpdatedAt:       item.UpdatedAt,
	}
}

func NewOrderView(order models.Order, staff bool) OrderView {
	itemViews := make([]OrderItemView, 0, len(order.Items))
	for _, item := range order.Items {
		itemViews = append(itemViews, NewOrderItemView(item, staff))
	}
	view := OrderView{
		ID:         order.ID,
		Code:       order.Code,
		User:       order.UserID,
		Status:     order.StatusID,
		OrderItems: itemViews,
		CreatedAt:  order.CreatedAt,
		UpdatedAt:  order.UpdatedAt,
	}
	if order.Status != nil {
		view.StatusName = order.Status.Name
	}
	return view
}
