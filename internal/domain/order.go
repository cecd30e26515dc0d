package domain

import "time"

// OrderRecord is the durable record of one checkout submission. It is created
// exactly once, persisted under its order id, and never mutated afterwards.
type OrderRecord struct {
	OrderID      string     `json:"orderId"`
	Name         string     `json:"name"`
	WhatsApp     string     `json:"whatsapp"`
	Email        string     `json:"email"`
	Notes        string     `json:"notes,omitempty"`
	Items        []CartLine `json:"items"`
	Total        int64      `json:"total"`
	Date         time.Time  `json:"date"`
	PaymentProof string     `json:"paymentProof,omitempty"`
}
