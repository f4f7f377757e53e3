package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/RizbiAhmmad/E-Learning-Website-Server/internal/domain/entity"
)

// ClassFilter narrows a class listing. Empty fields are not filtered on;
// set fields combine with logical AND.
type ClassFilter struct {
	Status       string
	TeacherEmail string
}

// ClassRepository defines the interface for class record store operations.
type ClassRepository interface {
	List(ctx context.Context, f ClassFilter) ([]entity.Class, error)
	// FindByID returns ErrNotFound when no class has the id.
	FindByID(ctx context.Context, id primitive.ObjectID) (*entity.Class, error)
	Insert(ctx context.Context, cl *entity.Class) (*InsertResult, error)
	UpdateStatus(ctx context.Context, id primitive.ObjectID, status string) (*UpdateResult, error)
	// SetFields applies a partial update of the given fields. The id is
	// immutable; callers must not include "_id" in fields.
	SetFields(ctx context.Context, id primitive.ObjectID, fields map[string]interface{}) (*UpdateResult, error)
	Delete(ctx context.Context, id primitive.ObjectID) (*DeleteResult, error)
}
