package handlers

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/RizbiAhmmad/E-Learning-Website-Server/internal/domain/entity"
	"github.com/RizbiAhmmad/E-Learning-Website-Server/internal/domain/repository"
)

type memUserRepo struct {
	users map[string]*entity.User
}

func newMemUserRepo() *memUserRepo {
	return &memUserRepo{users: map[string]*entity.User{}}
}

func (m *memUserRepo) List(ctx context.Context) ([]entity.User, error) {
	out := []entity.User{}
	for _, u := range m.users {
		out = append(out, *u)
	}
	return out, nil
}

func (m *memUserRepo) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	u, ok := m.users[email]
	if !ok {
		return nil, repository.ErrNotFound
	}
	cp := *u
	return &cp, nil
}

func (m *memUserRepo) Insert(ctx context.Context, u *entity.User) (*repository.InsertResult, error) {
	if u.ID.IsZero() {
		u.ID = primitive.NewObjectID()
	}
	m.users[u.Email] = u
	return &repository.InsertResult{Acknowledged: true, InsertedID: u.ID}, nil
}

func (m *memUserRepo) UpdateRole(ctx context.Context, id primitive.ObjectID, role string) (*repository.UpdateResult, error) {
	for _, u := range m.users {
		if u.ID == id {
			u.Role = role
			return &repository.UpdateResult{Acknowledged: true, MatchedCount: 1, ModifiedCount: 1}, nil
		}
	}
	return &repository.UpdateResult{Acknowledged: true}, nil
}

func (m *memUserRepo) UpdateRoleByEmail(ctx context.Context, email, role string) (*repository.UpdateResult, error) {
	u, ok := m.users[email]
	if !ok {
		return &repository.UpdateResult{Acknowledged: true}, nil
	}
	u.Role = role
	return &repository.UpdateResult{Acknowledged: true, MatchedCount: 1, ModifiedCount: 1}, nil
}

func (m *memUserRepo) Delete(ctx context.Context, id primitive.ObjectID) (*repository.DeleteResult, error) {
	for email, u := range m.users {
		if u.ID == id {
			delete(m.users, email)
			return &repository.DeleteResult{Acknowledged: true, DeletedCount: 1}, nil
		}
	}
	return &repository.DeleteResult{Acknowledged: true}, nil
}

type memClassRepo struct {
	classes map[primitive.ObjectID]*entity.Class
}

func newMemClassRepo() *memClassRepo {
	return &memClassRepo{classes: map[primitive.ObjectID]*entity.Class{}}
}

func (m *memClassRepo) List(ctx context.Context, f repository.ClassFilter) ([]entity.Class, error) {
	out := []entity.Class{}
	for _, cl := range m.classes {
		if f.Status != "" && cl.Status != f.Status {
			continue
		}
		if f.TeacherEmail != "" && cl.Email != f.TeacherEmail {
			continue
		}
		out = append(out, *cl)
	}
	return out, nil
}

func (m *memClassRepo) FindByID(ctx context.Context, id primitive.ObjectID) (*entity.Class, error) {
	cl, ok := m.classes[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	cp := *cl
	return &cp, nil
}

func (m *memClassRepo) Insert(ctx context.Context, cl *entity.Class) (*repository.InsertResult, error) {
	if cl.ID.IsZero() {
		cl.ID = primitive.NewObjectID()
	}
	m.classes[cl.ID] = cl
	return &repository.InsertResult{Acknowledged: true, InsertedID: cl.ID}, nil
}

func (m *memClassRepo) UpdateStatus(ctx context.Context, id primitive.ObjectID, status string) (*repository.UpdateResult, error) {
	cl, ok := m.classes[id]
	if !ok {
		return &repository.UpdateResult{Acknowledged: true}, nil
	}
	modified := int64(0)
	if cl.Status != status {
		cl.Status = status
		modified = 1
	}
	return &repository.UpdateResult{Acknowledged: true, MatchedCount: 1, ModifiedCount: modified}, nil
}

func (m *memClassRepo) SetFields(ctx context.Context, id primitive.ObjectID, fields map[string]interface{}) (*repository.UpdateResult, error) {
	cl, ok := m.classes[id]
	if !ok {
		return &repository.UpdateResult{Acknowledged: true}, nil
	}
	if cl.Extra == nil {
		cl.Extra = map[string]interface{}{}
	}
	for k, v := range fields {
		switch k {
		case "email":
			cl.Email, _ = v.(string)
		case "status":
			cl.Status, _ = v.(string)
		default:
			cl.Extra[k] = v
		}
	}
	return &repository.UpdateResult{Acknowledged: true, MatchedCount: 1, ModifiedCount: 1}, nil
}

func (m *memClassRepo) Delete(ctx context.Context, id primitive.ObjectID) (*repository.DeleteResult, error) {
	if _, ok := m.classes[id]; !ok {
		return &repository.DeleteResult{Acknowledged: true}, nil
	}
	delete(m.classes, id)
	return &repository.DeleteResult{Acknowledged: true, DeletedCount: 1}, nil
}
