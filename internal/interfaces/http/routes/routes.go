// internal/interfaces/http/routes/routes.go
package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/prestigeweddings/storefront-backend/internal/config"
	"github.com/prestigeweddings/storefront-backend/internal/domain/cart"
	"github.com/prestigeweddings/storefront-backend/internal/domain/catalog"
	"github.com/prestigeweddings/storefront-backend/internal/domain/checkout"
	"github.com/prestigeweddings/storefront-backend/internal/infrastructure/session"
	"github.com/prestigeweddings/storefront-backend/internal/interfaces/http/handlers"
	"github.com/prestigeweddings/storefront-backend/internal/pkg/email"
	"github.com/prestigeweddings/storefront-backend/internal/pkg/pdf"
	"github.com/prestigeweddings/storefront-backend/internal/pkg/receipt"
)

// SetupRoutes wires all API routes onto the given group
func SetupRoutes(rg *gin.RouterGroup, cat *catalog.Catalog, store session.Store, cfg *config.Config, log *logrus.Logger) {
	var mailer *email.Service
	if cfg.EmailEnabled() {
		mailer = email.NewService(cfg)
	}

	cartService := cart.NewService(cat, store)
	checkoutService := checkout.NewService(store, cfg, mailer, log)
	receiptService := receipt.NewService(cfg)
	pdfService := pdf.NewService(cfg)

	catalogHandler := handlers.NewCatalogHandler(cat)
	cartHandler := handlers.NewCartHandler(cartService)
	checkoutHandler := handlers.NewCheckoutHandler(checkoutService, receiptService)
	orderHandler := handlers.NewOrderHandler(checkoutService, receiptService, pdfService)

	products := rg.Group("/products")
	{
		products.GET("", catalogHandler.GetProducts)
		products.GET("/:id", catalogHandler.GetProduct)
	}

	cartRoutes := rg.Group("/cart")
	{
		cartRoutes.GET("", cartHandler.GetCart)
		cartRoutes.GET("/count", cartHandler.GetCartCount)
		cartRoutes.POST("/items", cartHandler.AddToCart)
		cartRoutes.PUT("/items/:id", cartHandler.UpdateCartItem)
		cartRoutes.DELETE("/items/:id", cartHandler.RemoveFromCart)
		cartRoutes.DELETE("", cartHandler.ClearCart)
	}

	rg.POST("/checkout", checkoutHandler.Submit)

	orders := rg.Group("/orders")
	{
		orders.GET("/:id", orderHandler.GetOrder)
		orders.GET("/:id/receipt", orderHandler.DownloadReceipt)
		orders.GET("/:id/invoice", orderHandler.DownloadInvoice)
	}
}
