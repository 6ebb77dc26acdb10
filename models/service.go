package models

import "encoding/json"

// Service is the admin-facing view of a marketplace service offering.
type Service struct {
	ID          string  `json:"id"`
	Title       string  `json:"title,omitempty"`
	Description string  `json:"description,omitempty"`
	Price       float64 `json:"price,omitempty"`
	MediaURL    string  `json:"mediaUrl,omitempty"`
	Status      string  `json:"status,omitempty"`
	CreatedAt   string  `json:"createdAt,omitempty"`
	UpdatedAt   string  `json:"updatedAt,omitempty"`

	Extra map[string]json.RawMessage `json:"-"`
}

func (s *Service) UnmarshalJSON(data []byte) error {
	type alias Service
	var a alias
	if err := json.Unmarshal(data, &a); err != nil {
		return err
	}
	extra, err := extraFields(data,
		"id", "title", "description", "price", "mediaUrl", "status",
		"createdAt", "updatedAt")
	if err != nil {
		return err
	}
	*s = Service(a)
	s.Extra = extra
	return nil
}
