package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	classerrors "fitbook/internal/classes/errors"
	"fitbook/pkg/config"
	mongotx "fitbook/pkg/db/mongo"
	"fitbook/pkg/model"
)

const (
	CollectionName = "Classes"
	SequenceName   = "classes"
)

type ClassRepository interface {
	Create(ctx context.Context, class *model.FitnessClass) error
	FindByID(ctx context.Context, id int64) (*model.FitnessClass, error)
	FindByIDs(ctx context.Context, ids []int64) ([]*model.FitnessClass, error)
	FindUpcoming(ctx context.Context, now time.Time) ([]*model.FitnessClass, error)
	FindAll(ctx context.Context) ([]*model.FitnessClass, error)
	DecrementSlot(ctx context.Context, id int64) error
	UpdateStartTime(ctx context.Context, id int64, startTime time.Time) error
	Count(ctx context.Context) (int64, error)
	DeleteAll(ctx context.Context) error
	ExecuteTransaction(ctx context.Context, fn mongotx.TransactionFunc) error
}

type mongoClassRepository struct {
	cfg        *config.Config
	db         *mongo.Database
	collection *mongo.Collection
	txManager  mongotx.TransactionManager
}

func NewMongoClassRepository(cfg *config.Config) ClassRepository {
	db := cfg.Client.Mongo.Database(cfg.MongoDatabaseName)
	return &mongoClassRepository{
		cfg:        cfg,
		db:         db,
		collection: db.Collection(CollectionName),
		txManager:  mongotx.NewTransactionManager(cfg.Client.Mongo),
	}
}

// withTimeout bounds a single store call. Inside a transaction the session
// context is returned untouched; wrapping it would break session semantics.
func (r *mongoClassRepository) withTimeout(ctx context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	if _, ok := ctx.(mongo.SessionContext); ok {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, timeout)
}

func (r *mongoClassRepository) Create(ctx context.Context, class *model.FitnessClass) error {
	ctx, cancel := r.withTimeout(ctx, r.cfg.WriteTimeout)
	defer cancel()

	if class.ID == 0 {
		id, err := mongotx.NextSequence(ctx, r.db, SequenceName)
		if err != nil {
			return err
		}
		class.ID = id
	}

	now := time.Now().UTC().Truncate(time.Millisecond)
	class.CreatedAt = now
	class.UpdatedAt = now

	if _, err := r.collection.InsertOne(ctx, class); err != nil {
		return fmt.Errorf("failed to create class: %w", err)
	}
	return nil
}

func (r *mongoClassRepository) FindByID(ctx context.Context, id int64) (*model.FitnessClass, error) {
	ctx, cancel := r.withTimeout(ctx, r.cfg.ReadTimeout)
	defer cancel()

	var class model.FitnessClass
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&class)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, classerrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find class: %w", err)
	}

	return &class, nil
}

func (r *mongoClassRepository) FindByIDs(ctx context.Context, ids []int64) ([]*model.FitnessClass, error) {
	if len(ids) == 0 {
		return []*model.FitnessClass{}, nil
	}

	ctx, cancel := r.withTimeout(ctx, r.cfg.ReadTimeout)
	defer cancel()

	cursor, err := r.collection.Find(ctx, bson.M{"_id": bson.M{"$in": ids}})
	if err != nil {
		return nil, fmt.Errorf("failed to find classes by ids: %w", err)
	}
	defer cursor.Close(ctx)

	classes := []*model.FitnessClass{}
	if err = cursor.All(ctx, &classes); err != nil {
		return nil, fmt.Errorf("failed to decode classes: %w", err)
	}

	return classes, nil
}

func (r *mongoClassRepository) FindUpcoming(ctx context.Context, now time.Time) ([]*model.FitnessClass, error) {
	ctx, cancel := r.withTimeout(ctx, r.cfg.ReadTimeout)
	defer cancel()

	filter := bson.M{"datetime": bson.M{"$gt": now}}
	opts := options.Find().SetSort(bson.D{{Key: "datetime", Value: 1}})

	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to find upcoming classes: %w", err)
	}
	defer cursor.Close(ctx)

	classes := []*model.FitnessClass{}
	if err = cursor.All(ctx, &classes); err != nil {
		return nil, fmt.Errorf("failed to decode classes: %w", err)
	}

	return classes, nil
}

func (r *mongoClassRepository) FindAll(ctx context.Context) ([]*model.FitnessClass, error) {
	ctx, cancel := r.withTimeout(ctx, r.cfg.ReadTimeout)
	defer cancel()

	cursor, err := r.collection.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "_id", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("failed to find classes: %w", err)
	}
	defer cursor.Close(ctx)

	classes := []*model.FitnessClass{}
	if err = cursor.All(ctx, &classes); err != nil {
		return nil, fmt.Errorf("failed to decode classes: %w", err)
	}

	return classes, nil
}

// DecrementSlot performs the atomic check-and-decrement. The filter only
// matches while a slot remains, so available_slots can never go negative
// regardless of interleaving.
func (r *mongoClassRepository) DecrementSlot(ctx context.Context, id int64) error {
	ctx, cancel := r.withTimeout(ctx, r.cfg.WriteTimeout)
	defer cancel()

	filter := bson.M{
		"_id":             id,
		"available_slots": bson.M{"$gt": 0},
	}
	update := bson.M{
		"$inc": bson.M{"available_slots": -1},
		"$set": bson.M{"updated_at": time.Now().UTC()},
	}

	result, err := r.collection.UpdateOne(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("failed to decrement slot: %w", err)
	}
	if result.MatchedCount == 0 {
		return classerrors.ErrNoSlots
	}

	return nil
}

func (r *mongoClassRepository) UpdateStartTime(ctx context.Context, id int64, startTime time.Time) error {
	ctx, cancel := r.withTimeout(ctx, r.cfg.WriteTimeout)
	defer cancel()

	update := bson.M{
		"$set": bson.M{
			"datetime":   startTime,
			"updated_at": time.Now().UTC(),
		},
	}

	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": id}, update)
	if err != nil {
		return fmt.Errorf("failed to update class start time: %w", err)
	}
	if result.MatchedCount == 0 {
		return classerrors.ErrNotFound
	}

	return nil
}

func (r *mongoClassRepository) Count(ctx context.Context) (int64, error) {
	ctx, cancel := r.withTimeout(ctx, r.cfg.ReadTimeout)
	defer cancel()

	count, err := r.collection.CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, fmt.Errorf("failed to count classes: %w", err)
	}
	return count, nil
}

func (r *mongoClassRepository) DeleteAll(ctx context.Context) error {
	ctx, cancel := r.withTimeout(ctx, r.cfg.WriteTimeout)
	defer cancel()

	if _, err := r.collection.DeleteMany(ctx, bson.M{}); err != nil {
		return fmt.Errorf("failed to delete classes: %w", err)
	}
	return mongotx.ResetSequence(ctx, r.db, SequenceName)
}

func (r *mongoClassRepository) ExecuteTransaction(ctx context.Context, fn mongotx.TransactionFunc) error {
	return r.txManager.ExecuteTransaction(ctx, fn)
}
