package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/RizbiAhmmad/E-Learning-Website-Server/internal/domain/entity"
)

// UserRepository defines the interface for user-related store operations.
type UserRepository interface {
	List(ctx context.Context) ([]entity.User, error)
	// FindByEmail returns ErrNotFound when no user has the email.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)
	Insert(ctx context.Context, u *entity.User) (*InsertResult, error)
	UpdateRole(ctx context.Context, id primitive.ObjectID, role string) (*UpdateResult, error)
	UpdateRoleByEmail(ctx context.Context, email, role string) (*UpdateResult, error)
	Delete(ctx context.Context, id primitive.ObjectID) (*DeleteResult, error)
}
