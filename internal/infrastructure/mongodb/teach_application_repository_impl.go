package mongodb

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/RizbiAhmmad/E-Learning-Website-Server/internal/domain/entity"
	"github.com/RizbiAhmmad/E-Learning-Website-Server/internal/domain/repository"
)

type TeachApplicationRepository struct {
	coll *mongo.Collection
}

func NewTeachApplicationRepository(db *mongo.Database) *TeachApplicationRepository {
	return &TeachApplicationRepository{coll: db.Collection(TeachApplicationsCollection)}
}

func (r *TeachApplicationRepository) List(ctx context.Context) ([]entity.TeachApplication, error) {
	cur, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	apps := []entity.TeachApplication{}
	if err := cur.All(ctx, &apps); err != nil {
		return nil, err
	}
	return apps, nil
}

func (r *TeachApplicationRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*entity.TeachApplication, error) {
	a := &entity.TeachApplication{}
	err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(a)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return a, nil
}

func (r *TeachApplicationRepository) Insert(ctx context.Context, a *entity.TeachApplication) (*repository.InsertResult, error) {
	res, err := r.coll.InsertOne(ctx, a)
	if err != nil {
		return nil, err
	}
	return &repository.InsertResult{Acknowledged: true, InsertedID: res.InsertedID}, nil
}

func (r *TeachApplicationRepository) MarkAccepted(ctx context.Context, id primitive.ObjectID) (*repository.UpdateResult, error) {
	res, err := r.coll.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": bson.M{
		"status": entity.StatusAccepted,
		"role":   entity.RoleTeacher,
	}})
	if err != nil {
		return nil, err
	}
	return updateResult(res), nil
}

func (r *TeachApplicationRepository) MarkRejected(ctx context.Context, id primitive.ObjectID) (*repository.UpdateResult, error) {
	res, err := r.coll.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": bson.M{
		"status": entity.StatusRejected,
	}})
	if err != nil {
		return nil, err
	}
	return updateResult(res), nil
}
