package models

import "time"

type PaymentMethod string

const (
	PaymentCash     PaymentMethod = "cash"
	PaymentTransfer PaymentMethod = "transfer"
)

func (m PaymentMethod) Valid() bool {
	return m == PaymentCash || m == PaymentTransfer
}

type OrderStatus string

const (
	OrderPending    OrderStatus = "pending"
	OrderInProgress OrderStatus = "in-progress"
	OrderDelivered  OrderStatus = "delivered"
)

func (s OrderStatus) Valid() bool {
	return s == OrderPending || s == OrderInProgress || s == OrderDelivered
}

type DeliveryInfo struct {
	Address      string `json:"address"`
	Neighborhood string `json:"neighborhood"`
	Notes        string `json:"notes"`
}

// Order is an immutable snapshot of a submitted cart plus delivery, payment
// and messaging data. Only Status and the message thread change after
// submission; orders are never deleted.
type Order struct {
	ID            uint          `json:"id" gorm:"primaryKey"`
	CustomerID    string        `json:"customer_id" gorm:"not null"` // customer email
	CustomerName  string        `json:"customer_name"`
	CustomerPhone string        `json:"customer_phone"`
	Lines         []CartLine    `json:"lines" gorm:"serializer:json"`
	Delivery      DeliveryInfo  `json:"delivery" gorm:"embedded;embeddedPrefix:delivery_"`
	PaymentMethod PaymentMethod `json:"payment_method"`
	TransferProof string        `json:"transfer_proof,omitempty" gorm:"type:text"`
	Messages      []Message     `json:"messages" gorm:"serializer:json"`
	Total         float64       `json:"total"`
	Status        OrderStatus   `json:"status" gorm:"default:'pending'"`
	CreatedAt     time.Time     `json:"created_at"`
}

// Clone returns a copy whose line and message slices are independent of the
// receiver's.
func (o Order) Clone() Order {
	clone := o
	clone.Lines = append([]CartLine(nil), o.Lines...)
	clone.Messages = append([]Message(nil), o.Messages...)
	return clone
}

// UnreadFromCustomer counts customer-authored messages not yet read. It backs
// the admin-side unread badge; no symmetric customer badge exists.
func (o Order) UnreadFromCustomer() int {
	count := 0
	for _, msg := range o.Messages {
		if !msg.Read && msg.Author == AuthorCustomer {
			count++
		}
	}
	return count
}
