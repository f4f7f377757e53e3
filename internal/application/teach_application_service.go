package application

import (
	"context"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/RizbiAhmmad/E-Learning-Website-Server/internal/domain/entity"
	"github.com/RizbiAhmmad/E-Learning-Website-Server/internal/domain/repository"
)

// ApprovalResult reports both halves of the approval saga. The two
// writes hit different collections and are not transactional; a partial
// failure shows up as a zero-count or unacknowledged sub-result and is
// never hidden from the caller.
type ApprovalResult struct {
	ApplicationUpdate *repository.UpdateResult `json:"applicationUpdate"`
	UserUpdate        *repository.UpdateResult `json:"userUpdate"`
}

// TeachApplicationService runs the instructor application workflow on
// top of the identity store.
type TeachApplicationService struct {
	apps   repository.TeachApplicationRepository
	users  repository.UserRepository
	logger *logrus.Logger
}

func NewTeachApplicationService(apps repository.TeachApplicationRepository, users repository.UserRepository, logger *logrus.Logger) *TeachApplicationService {
	return &TeachApplicationService{apps: apps, users: users, logger: logger}
}

func (s *TeachApplicationService) List(ctx context.Context) ([]entity.TeachApplication, error) {
	return s.apps.List(ctx)
}

// Submit stores the application as received. No status is forced at
// submission; an absent status field is what Pending looks like.
func (s *TeachApplicationService) Submit(ctx context.Context, a *entity.TeachApplication) (*repository.InsertResult, error) {
	return s.apps.Insert(ctx, a)
}

// Approve accepts the application and promotes the applicant to teacher.
// The application write goes first; the user write follows regardless of
// whether the applicant is still registered. A failed user write is
// logged and reported as an unacknowledged sub-result, never rolled back.
func (s *TeachApplicationService) Approve(ctx context.Context, id primitive.ObjectID) (*ApprovalResult, error) {
	app, err := s.apps.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	appRes, err := s.apps.MarkAccepted(ctx, id)
	if err != nil {
		return nil, err
	}

	userRes, err := s.users.UpdateRoleByEmail(ctx, app.Email, entity.RoleTeacher)
	if err != nil {
		s.logger.WithFields(logrus.Fields{
			"application": id.Hex(),
			"email":       app.Email,
			"error":       err.Error(),
		}).Error("approval accepted the application but the role promotion failed")
		userRes = &repository.UpdateResult{}
	}

	return &ApprovalResult{ApplicationUpdate: appRes, UserUpdate: userRes}, nil
}

// Reject closes the application. User records are never touched.
func (s *TeachApplicationService) Reject(ctx context.Context, id primitive.ObjectID) (*repository.UpdateResult, error) {
	return s.apps.MarkRejected(ctx, id)
}
