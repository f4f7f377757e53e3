package application

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/RizbiAhmmad/E-Learning-Website-Server/internal/domain/entity"
	"github.com/RizbiAhmmad/E-Learning-Website-Server/internal/domain/repository"
)

// in-memory fakes over the repository interfaces

type fakeUserRepo struct {
	users     map[string]*entity.User // keyed by email
	failWith  error                   // when set, every call errors
	roleCalls int                     // UpdateRole* invocations
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[string]*entity.User{}}
}

func (f *fakeUserRepo) List(ctx context.Context) ([]entity.User, error) {
	if f.failWith != nil {
		return nil, f.failWith
	}
	out := []entity.User{}
	for _, u := range f.users {
		out = append(out, *u)
	}
	return out, nil
}

func (f *fakeUserRepo) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	if f.failWith != nil {
		return nil, f.failWith
	}
	u, ok := f.users[email]
	if !ok {
		return nil, repository.ErrNotFound
	}
	cp := *u
	return &cp, nil
}

func (f *fakeUserRepo) Insert(ctx context.Context, u *entity.User) (*repository.InsertResult, error) {
	if f.failWith != nil {
		return nil, f.failWith
	}
	if u.ID.IsZero() {
		u.ID = primitive.NewObjectID()
	}
	f.users[u.Email] = u
	return &repository.InsertResult{Acknowledged: true, InsertedID: u.ID}, nil
}

func (f *fakeUserRepo) UpdateRole(ctx context.Context, id primitive.ObjectID, role string) (*repository.UpdateResult, error) {
	f.roleCalls++
	if f.failWith != nil {
		return nil, f.failWith
	}
	for _, u := range f.users {
		if u.ID == id {
			modified := int64(0)
			if u.Role != role {
				u.Role = role
				modified = 1
			}
			return &repository.UpdateResult{Acknowledged: true, MatchedCount: 1, ModifiedCount: modified}, nil
		}
	}
	return &repository.UpdateResult{Acknowledged: true}, nil
}

func (f *fakeUserRepo) UpdateRoleByEmail(ctx context.Context, email, role string) (*repository.UpdateResult, error) {
	f.roleCalls++
	if f.failWith != nil {
		return nil, f.failWith
	}
	u, ok := f.users[email]
	if !ok {
		return &repository.UpdateResult{Acknowledged: true}, nil
	}
	modified := int64(0)
	if u.Role != role {
		u.Role = role
		modified = 1
	}
	return &repository.UpdateResult{Acknowledged: true, MatchedCount: 1, ModifiedCount: modified}, nil
}

func (f *fakeUserRepo) Delete(ctx context.Context, id primitive.ObjectID) (*repository.DeleteResult, error) {
	if f.failWith != nil {
		return nil, f.failWith
	}
	for email, u := range f.users {
		if u.ID == id {
			delete(f.users, email)
			return &repository.DeleteResult{Acknowledged: true, DeletedCount: 1}, nil
		}
	}
	return &repository.DeleteResult{Acknowledged: true}, nil
}

type fakeAppRepo struct {
	apps map[primitive.ObjectID]*entity.TeachApplication
}

func newFakeAppRepo() *fakeAppRepo {
	return &fakeAppRepo{apps: map[primitive.ObjectID]*entity.TeachApplication{}}
}

func (f *fakeAppRepo) List(ctx context.Context) ([]entity.TeachApplication, error) {
	out := []entity.TeachApplication{}
	for _, a := range f.apps {
		out = append(out, *a)
	}
	return out, nil
}

func (f *fakeAppRepo) FindByID(ctx context.Context, id primitive.ObjectID) (*entity.TeachApplication, error) {
	a, ok := f.apps[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	cp := *a
	return &cp, nil
}

func (f *fakeAppRepo) Insert(ctx context.Context, a *entity.TeachApplication) (*repository.InsertResult, error) {
	if a.ID.IsZero() {
		a.ID = primitive.NewObjectID()
	}
	f.apps[a.ID] = a
	return &repository.InsertResult{Acknowledged: true, InsertedID: a.ID}, nil
}

func (f *fakeAppRepo) MarkAccepted(ctx context.Context, id primitive.ObjectID) (*repository.UpdateResult, error) {
	a, ok := f.apps[id]
	if !ok {
		return &repository.UpdateResult{Acknowledged: true}, nil
	}
	a.Status = entity.StatusAccepted
	a.Role = entity.RoleTeacher
	return &repository.UpdateResult{Acknowledged: true, MatchedCount: 1, ModifiedCount: 1}, nil
}

func (f *fakeAppRepo) MarkRejected(ctx context.Context, id primitive.ObjectID) (*repository.UpdateResult, error) {
	a, ok := f.apps[id]
	if !ok {
		return &repository.UpdateResult{Acknowledged: true}, nil
	}
	a.Status = entity.StatusRejected
	return &repository.UpdateResult{Acknowledged: true, MatchedCount: 1, ModifiedCount: 1}, nil
}
