// Package display holds presentation helpers for the management views. The
// server's status fields are free text, so common synonyms are mapped onto
// the canonical badge labels. The mapping is best effort and never written
// back into a record.
package display

import (
	"strings"
	"unicode"
)

const (
	BookingPending   = "Pending"
	BookingConfirmed = "Confirmed"
	BookingCompleted = "Completed"
	BookingCancelled = "Cancelled"

	PaymentPaid     = "Paid"
	PaymentPending  = "Pending"
	PaymentRefunded = "Refunded"

	StatusActive    = "Active"
	StatusInactive  = "Inactive"
	StatusSuspended = "Suspended"
)

var bookingStatusSynonyms = map[string]string{
	"pending":     BookingPending,
	"requested":   BookingPending,
	"in_progress": BookingPending,
	"accept":      BookingConfirmed,
	"accepted":    BookingConfirmed,
	"approve":     BookingConfirmed,
	"approved":    BookingConfirmed,
	"confirm":     BookingConfirmed,
	"confirmed":   BookingConfirmed,
	"done":        BookingCompleted,
	"complete":    BookingCompleted,
	"completed":   BookingCompleted,
	"finished":    BookingCompleted,
	"cancel":      BookingCancelled,
	"canceled":    BookingCancelled,
	"cancelled":   BookingCancelled,
	"rejected":    BookingCancelled,
}

var paymentStatusSynonyms = map[string]string{
	"paid":      PaymentPaid,
	"success":   PaymentPaid,
	"succeeded": PaymentPaid,
	"settled":   PaymentPaid,
	"pending":   PaymentPending,
	"unpaid":    PaymentPending,
	"awaiting":  PaymentPending,
	"refund":    PaymentRefunded,
	"refunded":  PaymentRefunded,
	"reversed":  PaymentRefunded,
}

var accountStatusSynonyms = map[string]string{
	"active":    StatusActive,
	"enabled":   StatusActive,
	"inactive":  StatusInactive,
	"disabled":  StatusInactive,
	"suspended": StatusSuspended,
	"banned":    StatusSuspended,
}

// BookingStatus maps a raw booking status onto its badge label. Missing
// values read as Pending; unknown values pass through title-cased.
func BookingStatus(raw string) string {
	return normalize(raw, bookingStatusSynonyms, BookingPending)
}

// PaymentStatus maps a raw payment status onto its badge label.
func PaymentStatus(raw string) string {
	return normalize(raw, paymentStatusSynonyms, PaymentPending)
}

// UserStatus maps a raw account status onto its badge label. Missing values
// read as Active.
func UserStatus(raw string) string {
	return normalize(raw, accountStatusSynonyms, StatusActive)
}

// ServiceStatus maps a raw service status onto its badge label. Missing
// values read as Active.
func ServiceStatus(raw string) string {
	return normalize(raw, accountStatusSynonyms, StatusActive)
}

func normalize(raw string, synonyms map[string]string, fallback string) string {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return fallback
	}
	if label, ok := synonyms[strings.ToLower(trimmed)]; ok {
		return label
	}
	return titleCase(trimmed)
}

func titleCase(s string) string {
	runes := []rune(strings.ToLower(s))
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}
