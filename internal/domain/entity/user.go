package entity

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Roles a user can hold. Every account starts as RoleUser; elevation
// happens through the admin endpoint or instructor-application approval.
const (
	RoleUser    = "user"
	RoleTeacher = "teacher"
	RoleAdmin   = "admin"
)

// User is the identity record. Email is the identity key; the ObjectID
// is only used for admin mutations (role elevation, delete).
type User struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Email    string             `bson:"email" json:"email"`
	Name     string             `bson:"name,omitempty" json:"name,omitempty"`
	PhotoURL string             `bson:"photoURL,omitempty" json:"photoURL,omitempty"`
	Role     string             `bson:"role" json:"role"`
}
