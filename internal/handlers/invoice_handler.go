package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "teamboard/internal/errors"
	"teamboard/internal/models"
	"teamboard/internal/pdf"
	"teamboard/internal/services"
)

// InvoiceHandler handles invoice-related requests.
type InvoiceHandler struct {
	invoiceService services.InvoiceServicer
	renderer       pdf.Renderer
}

// NewInvoiceHandler creates a new InvoiceHandler
func NewInvoiceHandler(invoiceService services.InvoiceServicer, renderer pdf.Renderer) *InvoiceHandler {
	return &InvoiceHandler{invoiceService: invoiceService, renderer: renderer}
}

// UploadInvoiceRequest represents the invoice upload payload. Item
// prices and quantities arrive as strings and are parsed server-side.
type UploadInvoiceRequest struct {
	Title string                      `json:"title" binding:"required"`
	Date  string                      `json:"date" binding:"required,datetime=2006-01-02"`
	From  string                      `json:"from" binding:"required"`
	Items []services.InvoiceItemInput `json:"items" binding:"required,min=1,dive"`
}

// SetNoteRequest represents the admin note payload.
type SetNoteRequest struct {
	Note string `json:"note" binding:"required"`
}

// UpdateStatusRequest represents the admin status change payload.
type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required,invoice_status"`
}

// ListInvoices returns the caller's invoices, filtered by status
// (default "requested", the state freshly uploaded invoices carry).
// @Summary     List own invoices
// @Tags        invoices
// @Produce     json
// @Param       status query string false "Invoice status" default(requested)
// @Success     200 {array} models.Invoice "Invoices with items"
// @Router      /invoices [get]
func (h *InvoiceHandler) ListInvoices(c *gin.Context) {
	principal, err := currentPrincipal(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	status := models.InvoiceStatus(c.DefaultQuery("status", string(models.InvoiceStatusRequested)))
	invoices, err := h.invoiceService.ListByUser(principal.ID, status)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"invoices": invoices})
}

// UploadInvoice creates an invoice with its line items
// @Summary     Upload an invoice
// @Tags        invoices
// @Accept      json
// @Produce     json
// @Param       request body UploadInvoiceRequest true "Invoice details"
// @Success     201 {object} models.Invoice "Invoice created"
// @Failure     400 {object} ErrorResponse "Invalid input or item"
// @Router      /invoices [post]
func (h *InvoiceHandler) UploadInvoice(c *gin.Context) {
	principal, err := currentPrincipal(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req UploadInvoiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	invoice, err := h.invoiceService.Upload(principal.ID, req.Title, req.Date, req.From, req.Items)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"invoice": invoice})
}

// RemoveInvoice deletes an invoice owned by the caller. Unknown or
// foreign invoices answer success without touching anything.
// @Summary     Remove an invoice
// @Tags        invoices
// @Produce     json
// @Param       id path int true "Invoice ID"
// @Success     200 {object} MessageResponse "Invoice removed"
// @Router      /invoices/{id} [delete]
func (h *InvoiceHandler) RemoveInvoice(c *gin.Context) {
	principal, err := currentPrincipal(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	invoiceID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	if err := h.invoiceService.Remove(principal.ID, invoiceID); err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Invoice removed"})
}

// SetNote updates an invoice note and notifies the owner
// @Summary     Set invoice note
// @Tags        admin
// @Accept      json
// @Produce     json
// @Param       id path int true "Invoice ID"
// @Param       request body SetNoteRequest true "Note"
// @Success     200 {object} MessageResponse "Note updated"
// @Failure     404 {object} ErrorResponse "Invoice not found"
// @Router      /admin/invoices/{id}/note [put]
func (h *InvoiceHandler) SetNote(c *gin.Context) {
	invoiceID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req SetNoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	if err := h.invoiceService.SetNote(invoiceID, req.Note); err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Note updated"})
}

// UpdateStatus changes an invoice status and notifies the owner. The
// transition into paid credits the owner's revenue exactly once.
// @Summary     Update invoice status
// @Tags        admin
// @Accept      json
// @Produce     json
// @Param       id path int true "Invoice ID"
// @Param       request body UpdateStatusRequest true "New status"
// @Success     200 {object} models.Invoice "Updated invoice"
// @Failure     400 {object} ErrorResponse "Missing parameters"
// @Failure     404 {object} ErrorResponse "Invoice not found"
// @Router      /admin/invoices/{id}/status [put]
func (h *InvoiceHandler) UpdateStatus(c *gin.Context) {
	invoiceID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrMissingParameters, err.Error()))
		return
	}

	invoice, err := h.invoiceService.UpdateStatus(invoiceID, models.InvoiceStatus(req.Status))
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"invoice": invoice})
}

// FilterInvoices returns invoices by status. scope=admin widens the
// query to the whole team, but only when the caller actually is one;
// everyone else always gets their own invoices.
// @Summary     Filter invoices
// @Tags        invoices
// @Produce     json
// @Param       status query string false "Invoice status or all" default(all)
// @Param       scope query string false "admin for the team-wide view"
// @Success     200 {array} models.Invoice "Matching invoices"
// @Router      /invoices/filter [get]
func (h *InvoiceHandler) FilterInvoices(c *gin.Context) {
	principal, err := currentPrincipal(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	status := c.DefaultQuery("status", "all")
	adminScope := c.Query("scope") == "admin"

	invoices, err := h.invoiceService.Filter(principal.ID, principal.Role.IsAdmin(), status, adminScope)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"invoices": invoices})
}

// DownloadPDF renders an invoice as a PDF attachment
// @Summary     Download invoice PDF
// @Tags        invoices
// @Produce     application/pdf
// @Param       id path int true "Invoice ID"
// @Success     200 {file} binary "PDF document"
// @Failure     404 {object} ErrorResponse "Invoice not found"
// @Router      /invoices/{id}/pdf [get]
func (h *InvoiceHandler) DownloadPDF(c *gin.Context) {
	invoiceID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	invoice, err := h.invoiceService.GetWithItems(invoiceID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	document, err := h.renderer.RenderInvoice(invoice)
	if err != nil {
		respondWithError(c, apperrors.Wrap(apperrors.ErrInternalServer, err))
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=invoice_%d.pdf", invoice.ID))
	c.Data(http.StatusOK, "application/pdf", document)
}
