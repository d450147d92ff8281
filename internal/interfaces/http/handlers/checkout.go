// internal/interfaces/http/handlers/checkout.go
package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/prestigeweddings/storefront-backend/internal/domain/checkout"
	"github.com/prestigeweddings/storefront-backend/internal/pkg/receipt"
)

// CheckoutHandler handles checkout endpoints
type CheckoutHandler struct {
	checkoutService *checkout.Service
	receiptService  *receipt.Service
}

// NewCheckoutHandler creates a new checkout handler
func NewCheckoutHandler(checkoutService *checkout.Service, receiptService *receipt.Service) *CheckoutHandler {
	return &CheckoutHandler{
		checkoutService: checkoutService,
		receiptService:  receiptService,
	}
}

// Submit handles POST /checkout. On success the session cart is cleared and
// the built order comes back with its receipt text; field errors come back
// together so the storefront can show them all at once.
func (h *CheckoutHandler) Submit(c *gin.Context) {
	sessionID := getOrCreateSessionID(c)

	var req checkout.SubmitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	record, err := h.checkoutService.Submit(c.Request.Context(), sessionID, &req)
	if err != nil {
		var validationErr *checkout.ValidationError
		switch {
		case errors.As(err, &validationErr):
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error":        "Checkout validation failed",
				"field_errors": validationErr.Result.FieldErrors,
			})
		case errors.Is(err, checkout.ErrEmptyCart):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Your cart is empty",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Failed to process checkout",
			})
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Order received! We'll contact you within 24 hours for payment details.",
		"data": gin.H{
			"order":            record,
			"receipt":          h.receiptService.Format(record),
			"receipt_filename": record.ReceiptFilename(),
		},
	})
}
