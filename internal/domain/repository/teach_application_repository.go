package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/RizbiAhmmad/E-Learning-Website-Server/internal/domain/entity"
)

// TeachApplicationRepository defines the interface for instructor
// application store operations.
type TeachApplicationRepository interface {
	List(ctx context.Context) ([]entity.TeachApplication, error)
	// FindByID returns ErrNotFound when no application has the id.
	FindByID(ctx context.Context, id primitive.ObjectID) (*entity.TeachApplication, error)
	Insert(ctx context.Context, a *entity.TeachApplication) (*InsertResult, error)
	// MarkAccepted sets status=Accepted and tags the application with the
	// teacher role in one document write.
	MarkAccepted(ctx context.Context, id primitive.ObjectID) (*UpdateResult, error)
	MarkRejected(ctx context.Context, id primitive.ObjectID) (*UpdateResult, error)
}
