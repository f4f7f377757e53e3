package application

import (
	"context"
	"errors"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/RizbiAhmmad/E-Learning-Website-Server/internal/domain/entity"
	"github.com/RizbiAhmmad/E-Learning-Website-Server/internal/domain/repository"
)

// UserService owns user records and role transitions.
type UserService struct {
	users  repository.UserRepository
	logger *logrus.Logger
}

func NewUserService(users repository.UserRepository, logger *logrus.Logger) *UserService {
	return &UserService{users: users, logger: logger}
}

func (s *UserService) List(ctx context.Context) ([]entity.User, error) {
	return s.users.List(ctx)
}

func (s *UserService) Get(ctx context.Context, email string) (*entity.User, error) {
	return s.users.FindByEmail(ctx, email)
}

// Create registers a user, defaulting the role to "user". Creation is
// idempotent on email: when the email is already taken the existing
// record is left untouched and created is false.
func (s *UserService) Create(ctx context.Context, u *entity.User) (*repository.InsertResult, bool, error) {
	if u.Role == "" {
		u.Role = entity.RoleUser
	}
	_, err := s.users.FindByEmail(ctx, u.Email)
	if err == nil {
		return nil, false, nil
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return nil, false, err
	}
	res, err := s.users.Insert(ctx, u)
	if err != nil {
		return nil, false, err
	}
	return res, true, nil
}

// IsAdmin reports whether the email belongs to an admin. Unknown emails
// are not admins, not an error.
func (s *UserService) IsAdmin(ctx context.Context, email string) (bool, error) {
	u, err := s.users.FindByEmail(ctx, email)
	if errors.Is(err, repository.ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return u.Role == entity.RoleAdmin, nil
}

// RoleOf answers role queries for any email, registered or not; absent
// records default to "user".
func (s *UserService) RoleOf(ctx context.Context, email string) (string, error) {
	u, err := s.users.FindByEmail(ctx, email)
	if errors.Is(err, repository.ErrNotFound) {
		return entity.RoleUser, nil
	}
	if err != nil {
		return "", err
	}
	if u.Role == "" {
		return entity.RoleUser, nil
	}
	return u.Role, nil
}

func (s *UserService) SetRole(ctx context.Context, id primitive.ObjectID, role string) (*repository.UpdateResult, error) {
	res, err := s.users.UpdateRole(ctx, id, role)
	if err != nil {
		s.logger.WithFields(logrus.Fields{"id": id.Hex(), "role": role, "error": err.Error()}).Error("user role update failed")
		return nil, err
	}
	return res, nil
}

func (s *UserService) Delete(ctx context.Context, id primitive.ObjectID) (*repository.DeleteResult, error) {
	return s.users.Delete(ctx, id)
}
