package store

import (
	"go.uber.org/zap"

	"spana-admin/api"
	"spana-admin/models"
	"spana-admin/session"
)

// Bookings holds the fetched booking records.
type Bookings struct {
	*Collection[models.Booking]
}

// NewBookings creates the bookings store.
func NewBookings(sess *session.Store, client *api.Client, url string, logger *zap.Logger) *Bookings {
	return &Bookings{Collection: NewCollection[models.Booking]("bookings", url, sess, client, logger)}
}
