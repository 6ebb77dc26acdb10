package store

import (
	"go.uber.org/zap"

	"spana-admin/api"
	"spana-admin/models"
	"spana-admin/session"
)

// Users holds the fetched user directory.
type Users struct {
	*Collection[models.User]
}

// NewUsers creates the users store.
func NewUsers(sess *session.Store, client *api.Client, url string, logger *zap.Logger) *Users {
	return &Users{Collection: NewCollection[models.User]("users", url, sess, client, logger)}
}
