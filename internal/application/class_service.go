package application

import (
	"context"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/RizbiAhmmad/E-Learning-Website-Server/internal/domain/entity"
	"github.com/RizbiAhmmad/E-Learning-Website-Server/internal/domain/repository"
)

// ClassService is plain CRUD over class records with status/owner
// filtering.
type ClassService struct {
	classes repository.ClassRepository
	logger  *logrus.Logger
}

func NewClassService(classes repository.ClassRepository, logger *logrus.Logger) *ClassService {
	return &ClassService{classes: classes, logger: logger}
}

func (s *ClassService) List(ctx context.Context, f repository.ClassFilter) ([]entity.Class, error) {
	return s.classes.List(ctx, f)
}

func (s *ClassService) Get(ctx context.Context, id primitive.ObjectID) (*entity.Class, error) {
	return s.classes.FindByID(ctx, id)
}

func (s *ClassService) Create(ctx context.Context, cl *entity.Class) (*repository.InsertResult, error) {
	return s.classes.Insert(ctx, cl)
}

func (s *ClassService) UpdateStatus(ctx context.Context, id primitive.ObjectID, status string) (*repository.UpdateResult, error) {
	return s.classes.UpdateStatus(ctx, id, status)
}

// Replace applies the full mutable field set. The identifier never
// changes: any "_id" key in the body is dropped before the write.
func (s *ClassService) Replace(ctx context.Context, id primitive.ObjectID, fields map[string]interface{}) (*repository.UpdateResult, error) {
	delete(fields, "_id")
	return s.classes.SetFields(ctx, id, fields)
}

func (s *ClassService) Delete(ctx context.Context, id primitive.ObjectID) (*repository.DeleteResult, error) {
	return s.classes.Delete(ctx, id)
}
