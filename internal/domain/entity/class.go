package entity

import (
	"encoding/json"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Class is a course record owned by the teacher identified by Email.
// Title, description, price, image and whatever else the client sends
// live in Extra; only the fields the authorization and filtering logic
// touch are typed.
type Class struct {
	ID     primitive.ObjectID     `bson:"_id,omitempty"`
	Email  string                 `bson:"email"`
	Status string                 `bson:"status,omitempty"`
	Extra  map[string]interface{} `bson:",inline"`
}

func (c Class) MarshalJSON() ([]byte, error) {
	m := foldExtra(c.Extra, len(c.Extra)+3)
	if !c.ID.IsZero() {
		m["_id"] = c.ID.Hex()
	}
	m["email"] = c.Email
	if c.Status != "" {
		m["status"] = c.Status
	}
	return json.Marshal(m)
}

func (c *Class) UnmarshalJSON(data []byte) error {
	m := map[string]interface{}{}
	if err := json.Unmarshal(data, &m); err != nil {
		return err
	}
	if err := takeObjectID(m, &c.ID); err != nil {
		return err
	}
	c.Email = takeString(m, "email")
	c.Status = takeString(m, "status")
	c.Extra = m
	return nil
}
