package models

// InvoiceStatus represents the lifecycle state of an invoice.
type InvoiceStatus string

const (
	InvoiceStatusRequested InvoiceStatus = "requested"
	InvoiceStatusPending   InvoiceStatus = "pending"
	InvoiceStatusPaid      InvoiceStatus = "paid"
	InvoiceStatusDeclined  InvoiceStatus = "declined"
)

// Invoice represents an invoice uploaded by a team member.
type Invoice struct {
	Base
	Title       string        `gorm:"not null" json:"title"`
	Date        string        `gorm:"not null" json:"date_created"`
	UserID      uint          `gorm:"not null;index" json:"user_id"`
	Color       string        `json:"color"`
	FromAddress string        `json:"from"`
	Status      InvoiceStatus `gorm:"not null;default:requested" json:"status"`
	Note        string        `json:"note"`

	Items []InvoiceItem `gorm:"foreignKey:InvoiceID;constraint:OnDelete:CASCADE" json:"items"`
}

// Total returns the invoice total in cents.
func (i *Invoice) Total() int64 {
	var total int64
	for _, item := range i.Items {
		total += item.Amount()
	}
	return total
}

// InvoiceItem represents a single line item of an invoice.
// Price is in cents; price and quantity are never negative.
type InvoiceItem struct {
	Base
	InvoiceID uint   `gorm:"not null;index" json:"invoice_id"`
	Name      string `gorm:"not null" json:"name"`
	Price     int64  `gorm:"not null" json:"price"`
	Quantity  int    `gorm:"not null" json:"quantity"`
}

// Amount returns the line total in cents.
func (it *InvoiceItem) Amount() int64 {
	return it.Price * int64(it.Quantity)
}
