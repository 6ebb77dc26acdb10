package models

import "encoding/json"

const (
	UserTypeClient   = "Client"
	UserTypeProvider = "Provider"
)

// User is the admin-facing view of a platform user. The server owns the
// shape; only id is guaranteed, and unrecognized attributes end up in Extra.
type User struct {
	ID        string `json:"id"`
	Name      string `json:"name,omitempty"`
	Email     string `json:"email,omitempty"`
	Type      string `json:"type,omitempty"`
	Status    string `json:"status,omitempty"`
	Joined    string `json:"joined,omitempty"`
	CreatedAt string `json:"createdAt,omitempty"`
	UpdatedAt string `json:"updatedAt,omitempty"`

	// Extra holds attributes the server sent that the client does not model.
	Extra map[string]json.RawMessage `json:"-"`
}

func (u *User) UnmarshalJSON(data []byte) error {
	type alias User
	var a alias
	if err := json.Unmarshal(data, &a); err != nil {
		return err
	}
	extra, err := extraFields(data,
		"id", "name", "email", "type", "status", "joined", "createdAt", "updatedAt")
	if err != nil {
		return err
	}
	*u = User(a)
	u.Extra = extra
	return nil
}
