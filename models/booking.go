package models

import (
	"bytes"
	"encoding/json"
)

// Payment carries the payment details attached to a booking.
type Payment struct {
	ID              string  `json:"id,omitempty"`
	ReferenceNumber string  `json:"referenceNumber,omitempty"`
	Amount          float64 `json:"amount,omitempty"`
	Currency        string  `json:"currency,omitempty"`
	PaymentMethod   string  `json:"paymentMethod,omitempty"`
	Status          string  `json:"status,omitempty"`
	TransactionID   string  `json:"transactionId,omitempty"`
	EscrowStatus    string  `json:"escrowStatus,omitempty"`
	BookingID       string  `json:"bookingId,omitempty"`
	CreatedAt       string  `json:"createdAt,omitempty"`
	UpdatedAt       string  `json:"updatedAt,omitempty"`
}

// PaymentField accepts the two encodings the server uses for a booking's
// payment: a full payment object or a bare reference string.
type PaymentField struct {
	Ref     string
	Payment *Payment
}

func (p *PaymentField) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return nil
	}
	if trimmed[0] == '"' {
		return json.Unmarshal(trimmed, &p.Ref)
	}
	var pay Payment
	if err := json.Unmarshal(trimmed, &pay); err != nil {
		return err
	}
	p.Payment = &pay
	return nil
}

func (p PaymentField) MarshalJSON() ([]byte, error) {
	if p.Payment != nil {
		return json.Marshal(p.Payment)
	}
	if p.Ref != "" {
		return json.Marshal(p.Ref)
	}
	return []byte("null"), nil
}

// Status returns whichever status string the payment carries, or the bare
// reference when that is all the server sent.
func (p *PaymentField) Status() string {
	if p == nil {
		return ""
	}
	if p.Payment != nil {
		return p.Payment.Status
	}
	return p.Ref
}

// Booking is the admin-facing view of a booking record.
type Booking struct {
	ID            string        `json:"id"`
	UserID        string        `json:"userId,omitempty"`
	ServiceID     string        `json:"serviceId,omitempty"`
	ClientName    string        `json:"clientName,omitempty"`
	ServiceName   string        `json:"serviceName,omitempty"`
	Status        string        `json:"status,omitempty"`
	BookingDate   string        `json:"bookingDate,omitempty"`
	ScheduledDate string        `json:"scheduledDate,omitempty"`
	Price         float64       `json:"price,omitempty"`
	Payment       *PaymentField `json:"payment,omitempty"`
	Notes         string        `json:"notes,omitempty"`
	CreatedAt     string        `json:"createdAt,omitempty"`
	UpdatedAt     string        `json:"updatedAt,omitempty"`

	Extra map[string]json.RawMessage `json:"-"`
}

func (b *Booking) UnmarshalJSON(data []byte) error {
	type alias Booking
	var a alias
	if err := json.Unmarshal(data, &a); err != nil {
		return err
	}
	extra, err := extraFields(data,
		"id", "userId", "serviceId", "clientName", "serviceName", "status",
		"bookingDate", "scheduledDate", "price", "payment", "notes",
		"createdAt", "updatedAt")
	if err != nil {
		return err
	}
	*b = Booking(a)
	b.Extra = extra
	return nil
}
