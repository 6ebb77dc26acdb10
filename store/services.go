package store

import (
	"context"
	"encoding/json"
	"strings"
	"sync"

	"go.uber.org/zap"

	"spana-admin/api"
	"spana-admin/models"
	"spana-admin/session"
)

// Services holds the service catalogue plus the admin mutations on it.
// Create and Delete report progress through IsLoading, separate from the
// collection's IsFetching.
type Services struct {
	*Collection[models.Service]

	opMu      sync.RWMutex
	isLoading bool
}

// ServiceInput is the admin-entered form data for a new service.
type ServiceInput struct {
	Title       string
	Description string
	Price       float64
	MediaURL    string
}

// NewServices creates the services store.
func NewServices(sess *session.Store, client *api.Client, url string, logger *zap.Logger) *Services {
	return &Services{Collection: NewCollection[models.Service]("services", url, sess, client, logger)}
}

// Create validates the input client-side, then posts the new service with
// status forced to "active". The media URL is omitted from the payload when
// empty. The server's echo is returned raw.
func (s *Services) Create(ctx context.Context, in ServiceInput) (json.RawMessage, error) {
	s.setLoading(true)

	title := strings.TrimSpace(in.Title)
	description := strings.TrimSpace(in.Description)
	var err error
	switch {
	case title == "":
		err = &api.ValidationError{Message: "Title is required"}
	case description == "":
		err = &api.ValidationError{Message: "Description is required"}
	case in.Price <= 0:
		err = &api.ValidationError{Message: "Price must be greater than 0"}
	}
	if err != nil {
		s.fail(err)
		return nil, err
	}

	token, ok := s.session.Credentials()
	if !ok {
		err := &api.AuthRequiredError{Message: "Authentication token is required"}
		s.fail(err)
		return nil, err
	}

	payload := api.ServicePayload{
		Title:       title,
		Description: description,
		Price:       in.Price,
		MediaURL:    strings.TrimSpace(in.MediaURL),
		Status:      "active",
	}
	raw, err := s.api.CreateService(ctx, s.url, token, payload)
	if err != nil {
		s.fail(err)
		return nil, err
	}
	s.finish()
	s.logger.Info("service created", zap.String("title", title))
	return raw, nil
}

// Delete removes a service by id. The server's echo is returned raw.
func (s *Services) Delete(ctx context.Context, id string) (json.RawMessage, error) {
	s.setLoading(true)

	token, ok := s.session.Credentials()
	if !ok {
		err := &api.AuthRequiredError{Message: "Authentication token is required"}
		s.fail(err)
		return nil, err
	}

	raw, err := s.api.DeleteService(ctx, s.url, token, id)
	if err != nil {
		s.fail(err)
		return nil, err
	}
	s.finish()
	s.logger.Info("service deleted", zap.String("id", id))
	return raw, nil
}

// IsLoading reports whether a create or delete is in flight.
func (s *Services) IsLoading() bool {
	s.opMu.RLock()
	defer s.opMu.RUnlock()
	return s.isLoading
}

func (s *Services) setLoading(v bool) {
	s.opMu.Lock()
	s.isLoading = v
	s.opMu.Unlock()
	s.ClearError()
}

func (s *Services) fail(err error) {
	s.opMu.Lock()
	s.isLoading = false
	s.opMu.Unlock()
	s.setError(err.Error())
}

func (s *Services) finish() {
	s.opMu.Lock()
	s.isLoading = false
	s.opMu.Unlock()
	s.setError("")
}
