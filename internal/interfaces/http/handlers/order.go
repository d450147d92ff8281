// internal/interfaces/http/handlers/order.go
package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/prestigeweddings/storefront-backend/internal/domain/checkout"
	"github.com/prestigeweddings/storefront-backend/internal/infrastructure/session"
	"github.com/prestigeweddings/storefront-backend/internal/pkg/pdf"
	"github.com/prestigeweddings/storefront-backend/internal/pkg/receipt"
)

// OrderHandler serves orders built in the current session: the record
// itself, its plain-text receipt, and its PDF invoice
type OrderHandler struct {
	checkoutService *checkout.Service
	receiptService  *receipt.Service
	pdfService      *pdf.Service
}

// NewOrderHandler creates a new order handler
func NewOrderHandler(checkoutService *checkout.Service, receiptService *receipt.Service, pdfService *pdf.Service) *OrderHandler {
	return &OrderHandler{
		checkoutService: checkoutService,
		receiptService:  receiptService,
		pdfService:      pdfService,
	}
}

// GetOrder handles GET /orders/:id
func (h *OrderHandler) GetOrder(c *gin.Context) {
	sessionID := getOrCreateSessionID(c)

	record, err := h.checkoutService.GetOrder(c.Request.Context(), sessionID, c.Param("id"))
	if err != nil {
		h.orderError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Order retrieved successfully",
		"data":    record,
	})
}

// DownloadReceipt handles GET /orders/:id/receipt, serving the plain-text
// receipt as a download named Receipt_<orderId>.txt
func (h *OrderHandler) DownloadReceipt(c *gin.Context) {
	sessionID := getOrCreateSessionID(c)

	record, err := h.checkoutService.GetOrder(c.Request.Context(), sessionID, c.Param("id"))
	if err != nil {
		h.orderError(c, err)
		return
	}

	text := h.receiptService.Format(record)

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", record.ReceiptFilename()))
	c.Data(http.StatusOK, "text/plain; charset=utf-8", []byte(text))
}

// DownloadInvoice handles GET /orders/:id/invoice, serving a PDF invoice
func (h *OrderHandler) DownloadInvoice(c *gin.Context) {
	sessionID := getOrCreateSessionID(c)

	record, err := h.checkoutService.GetOrder(c.Request.Context(), sessionID, c.Param("id"))
	if err != nil {
		h.orderError(c, err)
		return
	}

	buf, err := h.pdfService.GenerateInvoice(record)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to generate invoice",
		})
		return
	}

	filename := fmt.Sprintf("Invoice_%s.pdf", record.OrderID)
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, "application/pdf", buf.Bytes())
}

func (h *OrderHandler) orderError(c *gin.Context, err error) {
	if errors.Is(err, session.ErrOrderNotFound) {
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Order not found",
		})
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{
		"error": "Failed to retrieve order",
	})
}
