package serializers

// Write payloads bound from JSON request bodies and checked with
// go-playground/validator before anything touches the database.

type CategoryPayload struct {
	Name           string  `json:"name" validate:"required,max=100"`
	Slug           string  `json:"slug" validate:"max=100"`
	ParentCategory *string `json:"parent_category"`
	IsActive       *bool   `json:"is_active"`
}

type ProductPayload struct {
	Name                  string   `json:"name" validate:"required,max=255"`
	Slug                  string   `json:"slug" validate:"max=255"`
	Description           string   `json:"description"`
	ThumbnailImage        string   `json:"thumbnail_image"`
	IsActive              *bool    `json:"is_active"`
	Categories            []string `json:"categories"`
	EnabledVariationTypes []string `json:"enabled_variation_types"`
	DefaultVariant        *string  `json:"default_variant"`
}

type ProductImagePayload struct {
	Image    string `json:"image" validate:"required"`
	IsActive *bool  `json:"is_active"`
}

type VariationTypePayload struct {
	Name string `json:"name" validate:"required,max=100"`
}

type VariationOptionPayload struct {
	Name string `json:"name" validate:"required,max=100"`
}

type VariationPayload struct {
	Slug                       string   `json:"slug" validate:"max=255"`
	CostPrice                  string   `json:"cost_price" validate:"omitempty,numeric"`
	CostPriceUsd               string   `json:"cost_price_usd" validate:"omitempty,numeric"`
	SellingPrice               string   `json:"selling_price" validate:"omitempty,numeric"`
	SellingPriceUsd            string   `json:"selling_price_usd" validate:"omitempty,numeric"`
	Stock                      int      `json:"stock" validate:"gte=0"`
	DigitalFile                string   `json:"digital_file"`
	IsActive                   *bool    `json:"is_active"`
	VariationOptionCombination []string `json:"variation_option_combination"`
}

type ReviewPayload struct {
	Rating        int    `json:"rating" validate:"required,gte=1,lte=5"`
	Comment       string `json:"comment"`
	ReviewerName  string `json:"reviewer_name" validate:"max=255"`
	ReviewerEmail string `json:"reviewer_email" validate:"omitempty,email"`
}

type OrderItemPayload struct {
	Item      string `json:"item" validate:"required"`
	Variation string `json:"variation" validate:"required"`
	Quantity  int    `json:"quantity" validate:"required,gte=1"`
}

type OrderPayload struct {
	Status     *string            `json:"status"`
	OrderItems []OrderItemPayload `json:"order_items" validate:"required,min=1,dive"`
}

type StatusPayload struct {
	Name     string `json:"name" validate:"required,max=100"`
	Position int    `json:"position" validate:"gte=0"`
}

type SettingsPayload struct {
	UsdNprExchangeRate string `json:"usd_npr_exchange_rate" validate:"required,numeric"`
}
