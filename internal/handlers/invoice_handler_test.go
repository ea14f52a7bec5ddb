package handlers

import (
	"errors"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"

	apperrors "teamboard/internal/errors"
	"teamboard/internal/middleware"
	"teamboard/internal/models"
	"teamboard/internal/services"
)

type fakeRenderer struct {
	renderFn func(invoice *models.Invoice) ([]byte, error)
}

func (f *fakeRenderer) RenderInvoice(invoice *models.Invoice) ([]byte, error) {
	if f.renderFn != nil {
		return f.renderFn(invoice)
	}
	return []byte("%PDF-fake"), nil
}

func setupInvoiceRouter(handler *InvoiceHandler, principal *middleware.Principal) *gin.Engine {
	r := gin.New()
	authed := r.Group("/", injectPrincipal(principal))
	authed.GET("/invoices", handler.ListInvoices)
	authed.POST("/invoices", handler.UploadInvoice)
	authed.GET("/invoices/filter", handler.FilterInvoices)
	authed.GET("/invoices/:id/pdf", handler.DownloadPDF)
	authed.DELETE("/invoices/:id", handler.RemoveInvoice)
	authed.PUT("/admin/invoices/:id/note", handler.SetNote)
	authed.PUT("/admin/invoices/:id/status", handler.UpdateStatus)
	return r
}

func TestUploadInvoiceHandler(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		var gotUserID uint
		svc := &mockInvoiceService{
			uploadFn: func(userID uint, title, date, fromAddress string, items []services.InvoiceItemInput) (*models.Invoice, error) {
				gotUserID = userID
				return &models.Invoice{Title: title, UserID: userID}, nil
			},
		}
		r := setupInvoiceRouter(NewInvoiceHandler(svc, &fakeRenderer{}), memberPrincipal())

		body := `{"title":"January","date":"2026-01-15","from":"12 Test St","items":[{"name":"Work","price":"25.50","quantity":"2"}]}`
		rec := doRequest(r, http.MethodPost, "/invoices", body)

		if rec.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
		}
		if gotUserID != 1 {
			t.Errorf("expected upload for principal 1, got %d", gotUserID)
		}
	})

	t.Run("missing_items", func(t *testing.T) {
		r := setupInvoiceRouter(NewInvoiceHandler(&mockInvoiceService{}, &fakeRenderer{}), memberPrincipal())

		rec := doRequest(r, http.MethodPost, "/invoices", `{"title":"x","date":"2026-01-15","from":"a","items":[]}`)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})

	t.Run("bad_date_format", func(t *testing.T) {
		r := setupInvoiceRouter(NewInvoiceHandler(&mockInvoiceService{}, &fakeRenderer{}), memberPrincipal())

		body := `{"title":"x","date":"15/01/2026","from":"a","items":[{"name":"w","price":"1","quantity":"1"}]}`
		rec := doRequest(r, http.MethodPost, "/invoices", body)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})

	t.Run("invalid_item", func(t *testing.T) {
		svc := &mockInvoiceService{
			uploadFn: func(userID uint, title, date, fromAddress string, items []services.InvoiceItemInput) (*models.Invoice, error) {
				return nil, apperrors.ErrInvalidItem
			},
		}
		r := setupInvoiceRouter(NewInvoiceHandler(svc, &fakeRenderer{}), memberPrincipal())

		body := `{"title":"x","date":"2026-01-15","from":"a","items":[{"name":"w","price":"bad","quantity":"1"}]}`
		rec := doRequest(r, http.MethodPost, "/invoices", body)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
		assertErrorCode(t, parseJSON(t, rec), "INVALID_ITEM")
	})
}

func TestFilterInvoicesHandler(t *testing.T) {
	t.Run("passes_admin_flag_and_scope", func(t *testing.T) {
		var gotIsAdmin, gotScope bool
		var gotStatus string
		svc := &mockInvoiceService{
			filterFn: func(principal uint, isAdmin bool, status string, adminScope bool) ([]models.Invoice, error) {
				gotIsAdmin, gotStatus, gotScope = isAdmin, status, adminScope
				return nil, nil
			},
		}
		r := setupInvoiceRouter(NewInvoiceHandler(svc, &fakeRenderer{}), adminPrincipal())

		rec := doRequest(r, http.MethodGet, "/invoices/filter?status=paid&scope=admin", "")

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
		if !gotIsAdmin || !gotScope || gotStatus != "paid" {
			t.Errorf("expected (admin, paid, scope), got (%v, %s, %v)", gotIsAdmin, gotStatus, gotScope)
		}
	})

	t.Run("defaults_to_all", func(t *testing.T) {
		var gotStatus string
		svc := &mockInvoiceService{
			filterFn: func(principal uint, isAdmin bool, status string, adminScope bool) ([]models.Invoice, error) {
				gotStatus = status
				return nil, nil
			},
		}
		r := setupInvoiceRouter(NewInvoiceHandler(svc, &fakeRenderer{}), memberPrincipal())

		doRequest(r, http.MethodGet, "/invoices/filter", "")
		if gotStatus != "all" {
			t.Errorf("expected default status all, got %s", gotStatus)
		}
	})
}

func TestSetNoteHandler(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		var gotID uint
		var gotNote string
		svc := &mockInvoiceService{
			setNoteFn: func(invoiceID uint, note string) error {
				gotID, gotNote = invoiceID, note
				return nil
			},
		}
		r := setupInvoiceRouter(NewInvoiceHandler(svc, &fakeRenderer{}), adminPrincipal())

		rec := doRequest(r, http.MethodPut, "/admin/invoices/7/note", `{"note":"check line 2"}`)

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
		if gotID != 7 || gotNote != "check line 2" {
			t.Errorf("expected (7, note), got (%d, %q)", gotID, gotNote)
		}
	})

	t.Run("not_found", func(t *testing.T) {
		svc := &mockInvoiceService{
			setNoteFn: func(invoiceID uint, note string) error { return apperrors.ErrInvoiceNotFound },
		}
		r := setupInvoiceRouter(NewInvoiceHandler(svc, &fakeRenderer{}), adminPrincipal())

		rec := doRequest(r, http.MethodPut, "/admin/invoices/999/note", `{"note":"x"}`)

		if rec.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", rec.Code)
		}
	})

	t.Run("bad_id", func(t *testing.T) {
		r := setupInvoiceRouter(NewInvoiceHandler(&mockInvoiceService{}, &fakeRenderer{}), adminPrincipal())

		rec := doRequest(r, http.MethodPut, "/admin/invoices/abc/note", `{"note":"x"}`)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})
}

func TestUpdateStatusHandler(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		var gotStatus models.InvoiceStatus
		svc := &mockInvoiceService{
			updateStatusFn: func(invoiceID uint, status models.InvoiceStatus) (*models.Invoice, error) {
				gotStatus = status
				return &models.Invoice{Status: status}, nil
			},
		}
		r := setupInvoiceRouter(NewInvoiceHandler(svc, &fakeRenderer{}), adminPrincipal())

		rec := doRequest(r, http.MethodPut, "/admin/invoices/3/status", `{"status":"paid"}`)

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
		if gotStatus != models.InvoiceStatusPaid {
			t.Errorf("expected status paid, got %s", gotStatus)
		}
	})

	t.Run("unknown_status_rejected_at_binding", func(t *testing.T) {
		r := setupInvoiceRouter(NewInvoiceHandler(&mockInvoiceService{}, &fakeRenderer{}), adminPrincipal())

		rec := doRequest(r, http.MethodPut, "/admin/invoices/3/status", `{"status":"imaginary"}`)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})
}

func TestDownloadPDFHandler(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		svc := &mockInvoiceService{
			getWithItemsFn: func(invoiceID uint) (*models.Invoice, error) {
				inv := &models.Invoice{Title: "January"}
				inv.ID = invoiceID
				return inv, nil
			},
		}
		r := setupInvoiceRouter(NewInvoiceHandler(svc, &fakeRenderer{}), memberPrincipal())

		rec := doRequest(r, http.MethodGet, "/invoices/5/pdf", "")

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
		if ct := rec.Header().Get("Content-Type"); ct != "application/pdf" {
			t.Errorf("expected application/pdf, got %s", ct)
		}
		if cd := rec.Header().Get("Content-Disposition"); cd != "attachment; filename=invoice_5.pdf" {
			t.Errorf("unexpected Content-Disposition %q", cd)
		}
	})

	t.Run("not_found", func(t *testing.T) {
		svc := &mockInvoiceService{
			getWithItemsFn: func(invoiceID uint) (*models.Invoice, error) {
				return nil, apperrors.ErrInvoiceNotFound
			},
		}
		r := setupInvoiceRouter(NewInvoiceHandler(svc, &fakeRenderer{}), memberPrincipal())

		rec := doRequest(r, http.MethodGet, "/invoices/999/pdf", "")

		if rec.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", rec.Code)
		}
	})

	t.Run("render_failure", func(t *testing.T) {
		renderer := &fakeRenderer{
			renderFn: func(invoice *models.Invoice) ([]byte, error) { return nil, errors.New("boom") },
		}
		r := setupInvoiceRouter(NewInvoiceHandler(&mockInvoiceService{}, renderer), memberPrincipal())

		rec := doRequest(r, http.MethodGet, "/invoices/5/pdf", "")

		if rec.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", rec.Code)
		}
	})
}

func TestRemoveInvoiceHandler(t *testing.T) {
	var gotUserID, gotInvoiceID uint
	svc := &mockInvoiceService{
		removeFn: func(userID, invoiceID uint) error {
			gotUserID, gotInvoiceID = userID, invoiceID
			return nil
		},
	}
	r := setupInvoiceRouter(NewInvoiceHandler(svc, &fakeRenderer{}), memberPrincipal())

	rec := doRequest(r, http.MethodDelete, "/invoices/4", "")

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if gotUserID != 1 || gotInvoiceID != 4 {
		t.Errorf("expected remove(1, 4), got (%d, %d)", gotUserID, gotInvoiceID)
	}
}
