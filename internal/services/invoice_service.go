package services

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"gorm.io/gorm"

	apperrors "teamboard/internal/errors"
	"teamboard/internal/models"
	"teamboard/internal/random"
	"teamboard/internal/sanitize"
)

// invoiceService handles invoice-related business logic.
type invoiceService struct {
	db            *gorm.DB
	notifications NotificationServicer
}

// NewInvoiceService creates a new InvoiceServicer.
func NewInvoiceService(db *gorm.DB, notifications NotificationServicer) InvoiceServicer {
	return &invoiceService{db: db, notifications: notifications}
}

// Upload creates an invoice with its line items and bumps the owner's
// invoice counter. Invoice, items, and counter commit as one unit; a
// single unparsable item rolls back everything.
func (s *invoiceService) Upload(userID uint, title, date, fromAddress string, items []InvoiceItemInput) (*models.Invoice, error) {
	title = sanitize.String(title)
	date = strings.TrimSpace(date)
	fromAddress = strings.TrimSpace(fromAddress)

	if title == "" || date == "" || fromAddress == "" || len(items) == 0 {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "title, date, from address and items are required")
	}

	invoice := &models.Invoice{
		Title:       title,
		Date:        date,
		UserID:      userID,
		Color:       random.Color(),
		FromAddress: fromAddress,
		Status:      models.InvoiceStatusRequested,
	}

	for _, in := range items {
		price, err := parseCents(in.Price)
		if err != nil {
			return nil, apperrors.WithMessage(apperrors.ErrInvalidItem, fmt.Sprintf("invalid price %q", in.Price))
		}
		qty, err := parseQuantity(in.Quantity)
		if err != nil {
			return nil, apperrors.WithMessage(apperrors.ErrInvalidItem, fmt.Sprintf("invalid quantity %q", in.Quantity))
		}
		invoice.Items = append(invoice.Items, models.InvoiceItem{
			Name:     sanitize.String(in.Name),
			Price:    price,
			Quantity: qty,
		})
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(invoice).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		if err := tx.Model(&models.User{}).
			Where("id = ?", userID).
			UpdateColumn("invoices_count", gorm.Expr("invoices_count + 1")).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return invoice, nil
}

// Remove deletes an invoice owned by the caller and decrements the
// owner's counter, flooring at zero. A missing or foreign invoice is a
// silent no-op.
func (s *invoiceService) Remove(userID, invoiceID uint) error {
	var invoice models.Invoice
	if err := s.db.Where("id = ? AND user_id = ?", invoiceID, userID).First(&invoice).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		// Guarded decrement keeps the counter at zero or above even
		// under concurrent removes.
		if err := tx.Model(&models.User{}).
			Where("id = ? AND invoices_count > 0", userID).
			UpdateColumn("invoices_count", gorm.Expr("invoices_count - 1")).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		if err := tx.Select("Items").Delete(&invoice).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		return nil
	})
}

// SetNote updates an invoice's note and notifies the invoice owner.
func (s *invoiceService) SetNote(invoiceID uint, note string) error {
	note = sanitize.String(note)
	if note == "" {
		return apperrors.WithMessage(apperrors.ErrInvalidInput, "note is required")
	}

	invoice, err := s.GetWithItems(invoiceID)
	if err != nil {
		return err
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(invoice).Update("note", note).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		title := fmt.Sprintf("%q invoice note updated.", truncateTitle(invoice.Title))
		return s.notifications.Emit(tx, invoice.UserID, title, "/invoices")
	})
}

// UpdateStatus sets an invoice's status and notifies the owner. On the
// transition into paid, the invoice total is credited to the owner's
// revenue exactly once: re-setting paid is idempotent, and moving away
// from paid never reverses the credit.
func (s *invoiceService) UpdateStatus(invoiceID uint, status models.InvoiceStatus) (*models.Invoice, error) {
	if status == "" {
		return nil, apperrors.ErrMissingParameters
	}

	invoice, err := s.GetWithItems(invoiceID)
	if err != nil {
		return nil, err
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if status == models.InvoiceStatusPaid {
			// The guarded update decides whether this request performs
			// the transition; only the winner credits revenue.
			res := tx.Model(&models.Invoice{}).
				Where("id = ? AND status <> ?", invoiceID, models.InvoiceStatusPaid).
				Update("status", status)
			if res.Error != nil {
				return apperrors.Wrap(apperrors.ErrInternalServer, res.Error)
			}
			if res.RowsAffected > 0 {
				if err := tx.Model(&models.User{}).
					Where("id = ?", invoice.UserID).
					UpdateColumn("revenue", gorm.Expr("revenue + ?", invoice.Total())).Error; err != nil {
					return apperrors.Wrap(apperrors.ErrInternalServer, err)
				}
			}
		} else {
			if err := tx.Model(&models.Invoice{}).
				Where("id = ?", invoiceID).
				Update("status", status).Error; err != nil {
				return apperrors.Wrap(apperrors.ErrInternalServer, err)
			}
		}

		title := fmt.Sprintf("%s.. invoice status updated.", truncateTitle(invoice.Title))
		return s.notifications.Emit(tx, invoice.UserID, title, "/invoices")
	})
	if err != nil {
		return nil, err
	}

	invoice.Status = status
	return invoice, nil
}

// Filter returns invoices by status. The admin scope sees the whole
// team; everyone else is always restricted to their own invoices no
// matter what scope they ask for.
func (s *invoiceService) Filter(principal uint, isAdmin bool, status string, adminScope bool) ([]models.Invoice, error) {
	q := s.db.Preload("Items")

	if isAdmin && adminScope {
		if status != "all" {
			q = q.Where("status = ?", status)
		}
	} else {
		q = q.Where("user_id = ?", principal)
		if status != "all" {
			q = q.Where("status = ?", status)
		}
	}

	var invoices []models.Invoice
	if err := q.Order("id").Find(&invoices).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return invoices, nil
}

// ListByUser returns a user's invoices with the given status.
func (s *invoiceService) ListByUser(userID uint, status models.InvoiceStatus) ([]models.Invoice, error) {
	var invoices []models.Invoice
	if err := s.db.Preload("Items").
		Where("user_id = ? AND status = ?", userID, status).
		Order("id").
		Find(&invoices).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return invoices, nil
}

// GetWithItems retrieves an invoice with its line items.
func (s *invoiceService) GetWithItems(invoiceID uint) (*models.Invoice, error) {
	var invoice models.Invoice
	if err := s.db.Preload("Items").First(&invoice, invoiceID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrInvoiceNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &invoice, nil
}

// truncateTitle shortens a title to the first 10 characters for
// notification texts.
func truncateTitle(title string) string {
	runes := []rune(title)
	if len(runes) <= 10 {
		return title
	}
	return string(runes[:10])
}

// parseCents parses a non-negative decimal amount into cents. At most
// two fractional digits are accepted.
func parseCents(s string) (int64, error) {
	s = strings.TrimSpace(s)
	if s == "" || strings.HasPrefix(s, "-") || strings.HasPrefix(s, "+") {
		return 0, fmt.Errorf("invalid amount %q", s)
	}

	intPart, fracPart, hasFrac := strings.Cut(s, ".")
	if intPart == "" {
		intPart = "0"
	}

	whole, err := strconv.ParseInt(intPart, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid amount %q", s)
	}

	var cents int64
	if hasFrac {
		if fracPart == "" || len(fracPart) > 2 {
			return 0, fmt.Errorf("invalid amount %q", s)
		}
		frac, err := strconv.ParseInt(fracPart, 10, 64)
		if err != nil {
			return 0, fmt.Errorf("invalid amount %q", s)
		}
		if len(fracPart) == 1 {
			frac *= 10
		}
		cents = frac
	}

	return whole*100 + cents, nil
}

// parseQuantity parses a non-negative integer quantity.
func parseQuantity(s string) (int, error) {
	qty, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || qty < 0 {
		return 0, fmt.Errorf("invalid quantity %q", s)
	}
	return qty, nil
}
