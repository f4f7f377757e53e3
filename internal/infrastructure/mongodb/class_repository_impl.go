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

type ClassRepository struct {
	coll *mongo.Collection
}

func NewClassRepository(db *mongo.Database) *ClassRepository {
	return &ClassRepository{coll: db.Collection(ClassesCollection)}
}

// classFilter translates the repository filter into a query document.
// Empty fields impose no predicate; both set means logical AND.
func classFilter(f repository.ClassFilter) bson.M {
	q := bson.M{}
	if f.Status != "" {
		q["status"] = f.Status
	}
	if f.TeacherEmail != "" {
		q["email"] = f.TeacherEmail
	}
	return q
}

func (r *ClassRepository) List(ctx context.Context, f repository.ClassFilter) ([]entity.Class, error) {
	cur, err := r.coll.Find(ctx, classFilter(f))
	if err != nil {
		return nil, err
	}
	classes := []entity.Class{}
	if err := cur.All(ctx, &classes); err != nil {
		return nil, err
	}
	return classes, nil
}

func (r *ClassRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*entity.Class, error) {
	cl := &entity.Class{}
	err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(cl)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return cl, nil
}

func (r *ClassRepository) Insert(ctx context.Context, cl *entity.Class) (*repository.InsertResult, error) {
	res, err := r.coll.InsertOne(ctx, cl)
	if err != nil {
		return nil, err
	}
	return &repository.InsertResult{Acknowledged: true, InsertedID: res.InsertedID}, nil
}

func (r *ClassRepository) UpdateStatus(ctx context.Context, id primitive.ObjectID, status string) (*repository.UpdateResult, error) {
	res, err := r.coll.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": bson.M{"status": status}})
	if err != nil {
		return nil, err
	}
	return updateResult(res), nil
}

func (r *ClassRepository) SetFields(ctx context.Context, id primitive.ObjectID, fields map[string]interface{}) (*repository.UpdateResult, error) {
	res, err := r.coll.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": bson.M(fields)})
	if err != nil {
		return nil, err
	}
	return updateResult(res), nil
}

func (r *ClassRepository) Delete(ctx context.Context, id primitive.ObjectID) (*repository.DeleteResult, error) {
	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return nil, err
	}
	return &repository.DeleteResult{Acknowledged: true, DeletedCount: res.DeletedCount}, nil
}
