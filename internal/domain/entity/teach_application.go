package entity

import (
	"encoding/json"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Application statuses. A freshly submitted application carries no status
// field at all; absence means pending. Accepted and Rejected are terminal.
const (
	StatusPending  = "Pending"
	StatusAccepted = "Accepted"
	StatusRejected = "Rejected"
)

// TeachApplication is an instructor application. Applicants submit a
// free-form profile (experience, category, ...) alongside the typed
// fields, so everything unknown is kept in Extra and stored inline.
type TeachApplication struct {
	ID     primitive.ObjectID     `bson:"_id,omitempty"`
	Email  string                 `bson:"email"`
	Status string                 `bson:"status,omitempty"`
	Role   string                 `bson:"role,omitempty"`
	Extra  map[string]interface{} `bson:",inline"`
}

func (a TeachApplication) MarshalJSON() ([]byte, error) {
	m := foldExtra(a.Extra, len(a.Extra)+4)
	if !a.ID.IsZero() {
		m["_id"] = a.ID.Hex()
	}
	m["email"] = a.Email
	if a.Status != "" {
		m["status"] = a.Status
	}
	if a.Role != "" {
		m["role"] = a.Role
	}
	return json.Marshal(m)
}

func (a *TeachApplication) UnmarshalJSON(data []byte) error {
	m := map[string]interface{}{}
	if err := json.Unmarshal(data, &m); err != nil {
		return err
	}
	if err := takeObjectID(m, &a.ID); err != nil {
		return err
	}
	a.Email = takeString(m, "email")
	a.Status = takeString(m, "status")
	a.Role = takeString(m, "role")
	a.Extra = m
	return nil
}

// foldExtra copies the extension map so marshaling never mutates the entity.
func foldExtra(extra map[string]interface{}, size int) map[string]interface{} {
	m := make(map[string]interface{}, size)
	for k, v := range extra {
		m[k] = v
	}
	return m
}

func takeString(m map[string]interface{}, key string) string {
	s, _ := m[key].(string)
	delete(m, key)
	return s
}

// takeObjectID pulls a hex "_id" out of the decoded map. Inbound bodies
// normally have none; an invalid hex value is a client error.
func takeObjectID(m map[string]interface{}, dst *primitive.ObjectID) error {
	raw, ok := m["_id"]
	if !ok {
		return nil
	}
	delete(m, "_id")
	hex, ok := raw.(string)
	if !ok {
		return primitive.ErrInvalidHex
	}
	id, err := primitive.ObjectIDFromHex(hex)
	if err != nil {
		return err
	}
	*dst = id
	return nil
}
