package routes

import (
	"github.com/bepasal/bazar/app/handlers"
	"github.com/bepasal/bazar/app/handlers/admin"
	"github.com/bepasal/bazar/app/middlewares"
	"github.com/bepasal/bazar/app/repositories"
	"github.com/bepasal/bazar/app/services"
	"github.com/bepasal/bazar/app/utils/renderer"
	"github.com/bepasal/bazar/app/utils/sessions"
	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"
	"gorm.io/gorm"
)

func NewRouter(db *gorm.DB, sessionStore sessions.SessionStore, settings *services.SettingsService) *mux.Router {
	render := renderer.New()
	validate := validator.New()

	categoryRepo := repositories.NewCategoryRepository(db)
	productRepo := repositories.NewProductRepository(db)
	imageRepo := repositories.NewProductImageRepository(db)
	variationRepo := repositories.NewVariationRepository(db)
	typeRepo := repositories.NewVariationTypeRepository(db)
	reviewRepo := repositories.NewReviewRepository(db)
	orderRepo := repositories.NewOrderRepository(db)
	orderItemRepo := repositories.NewOrderItemRepository(db)
	userRepo := repositories.NewUserRepository(db)

	catalogService := services.NewCatalogService(productRepo, variationRepo)
	orderService := services.NewOrderService(orderRepo, orderItemRepo, variationRepo)

	categoryHandler := handlers.NewCategoryHandler(categoryRepo, render, validate)
	productHandler := handlers.NewProductHandler(productRepo, categoryRepo, typeRepo, reviewRepo, catalogService, render, validate)
	imageHandler := handlers.NewProductImageHandler(imageRepo, productRepo, variationRepo, render, validate)
	variationHandler := handlers.NewVariationHandler(variationRepo, productRepo, typeRepo, catalogService, settings, render, validate)
	typeHandler := handlers.NewVariationTypeHandler(typeRepo, render, validate)
	orderHandler := handlers.NewOrderHandler(orderRepo, orderService, render, validate)
	statusHandler := handlers.NewStatusHandler(orderRepo, render, validate)
	reviewHandler := handlers.NewReviewHandler(reviewRepo, productRepo, render, validate)
	adminProductHandler := admin.NewAdminProductHandler(productRepo, reviewRepo, render)
	settingsHandler := admin.NewSettingsHandler(settings, render, validate)

	router := mux.NewRouter()
	router.Use(middlewares.TenantMiddleware)
	router.Use(middlewares.PrincipalMiddleware(sessionStore, userRepo))

	site := router.PathPrefix("/api/site").Subrouter()
	site.Use(middlewares.AdminOrReadOnlyMiddleware)

	site.HandleFunc("/categories/", categoryHandler.List).Methods("GET")
	site.HandleFunc("/categories/", categoryHandler.Create).Methods("POST")
	site.HandleFunc("/categories/{id}/", categoryHandler.Get).Methods("GET")
	site.HandleFunc("/categories/{id}/", categoryHandler.Update).Methods("PUT")
	site.HandleFunc("/categories/{id}/", categoryHandler.Delete).Methods("DELETE")

	site.HandleFunc("/products/", productHandler.List).Methods("GET")
	site.HandleFunc("/products/", productHandler.Create).Methods("POST")
	site.HandleFunc("/products/{product_slug}/", productHandler.Get).Methods("GET")
	site.HandleFunc("/products/{product_slug}/", productHandler.Update).Methods("PUT")
	site.HandleFunc("/products/{product_slug}/", productHandler.Delete).Methods("DELETE")

	site.HandleFunc("/products/{product_slug}/images/", imageHandler.List).Methods("GET")
	site.HandleFunc("/products/{product_slug}/images/", imageHandler.Create).Methods("POST")

	site.HandleFunc("/products/{product_slug}/variations/", variationHandler.List).Methods("GET")
	site.HandleFunc("/products/{product_slug}/variations/", variationHandler.Create).Methods("POST")
	site.HandleFunc("/products/{product_slug}/variations/{variation_slug}/", variationHandler.Get).Methods("GET")
	site.HandleFunc("/products/{product_slug}/variations/{variation_slug}/", variationHandler.Update).Methods("PUT")
	site.HandleFunc("/products/{product_slug}/variations/{variation_slug}/", variationHandler.Delete).Methods("DELETE")
	site.HandleFunc("/products/{product_slug}/variations/{variation_slug}/images/", imageHandler.ListVariationImages).Methods("GET")
	site.HandleFunc("/products/{product_slug}/variations/{variation_slug}/images/", imageHandler.CreateVariationImage).Methods("POST")

	site.HandleFunc("/products/{product_slug}/reviews/", reviewHandler.List).Methods("GET")
	site.HandleFunc("/products/{product_slug}/reviews/", reviewHandler.Create).Methods("POST")

	site.HandleFunc("/variation-types/", typeHandler.List).Methods("GET")
	site.HandleFunc("/variation-types/", typeHandler.Create).Methods("POST")
	site.HandleFunc("/variation-types/{type_id}/", typeHandler.Delete).Methods("DELETE")
	site.HandleFunc("/variation-types/{type_id}/options/", typeHandler.ListOptions).Methods("GET")
	site.HandleFunc("/variation-types/{type_id}/options/", typeHandler.CreateOption).Methods("POST")

	site.HandleFunc("/status/order/", statusHandler.ListOrderStatuses).Methods("GET")
	site.HandleFunc("/status/order/", statusHandler.CreateOrderStatus).Methods("POST")
	site.HandleFunc("/status/order-items/", statusHandler.ListOrderItemStatuses).Methods("GET")
	site.HandleFunc("/status/order-items/", statusHandler.CreateOrderItemStatus).Methods("POST")

	site.HandleFunc("/orders/", orderHandler.List).Methods("GET")
	site.HandleFunc("/orders/", orderHandler.Create).Methods("POST")
	site.HandleFunc("/orders/{order_code}/", orderHandler.Get).Methods("GET")
	site.HandleFunc("/orders/{order_code}/items/{item_id}/cancel/", orderHandler.CancelItem).Methods("POST")

	system := router.PathPrefix("/api/system").Subrouter()
	system.Use(middlewares.AdminOnlyMiddleware)
	system.HandleFunc("/products/", adminProductHandler.List).Methods("GET")
	system.HandleFunc("/settings/", settingsHandler.Get).Methods("GET")
	system.HandleFunc("/settings/", settingsHandler.Update).Methods("PUT")

	return router
}
