package programRepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"driveacademy/database"
	"driveacademy/models"
	"driveacademy/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoProgramRepo implements ProgramRepository using MongoDB.
type MongoProgramRepo struct {
	coll *mongo.Collection
}

// NewMongoProgramRepo creates a new instance of ProgramRepository using MongoDB.
func NewMongoProgramRepo() ProgramRepository {
	coll := database.Collection("training_programs")
	repo := &MongoProgramRepo{coll: coll}

	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create program indexes: %v\n", err)
	}
	return repo
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

func (r *MongoProgramRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "licenseType", Value: 1}}},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

// GetByID retrieves a program by its unique ID.
func (r *MongoProgramRepo) GetByID(id string) (*models.TrainingProgram, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var program models.TrainingProgram
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&program); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, utils.NotFoundError{Resource: "training program"}
		}
		return nil, fmt.Errorf("failed to fetch program with id %s: %w", id, err)
	}
	return &program, nil
}

// GetAll retrieves all programs.
func (r *MongoProgramRepo) GetAll() ([]models.TrainingProgram, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "name", Value: 1}})
	cursor, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch programs: %w", err)
	}
	defer cursor.Close(ctx)

	var programs []models.TrainingProgram
	if err := cursor.All(ctx, &programs); err != nil {
		return nil, fmt.Errorf("failed to decode programs: %w", err)
	}
	return programs, nil
}

// Create inserts a new program document.
func (r *MongoProgramRepo) Create(program *models.TrainingProgram) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	_, err := r.coll.InsertOne(ctx, program)
	if err != nil {
		return fmt.Errorf("failed to create program: %w", err)
	}
	return nil
}

// UpdateFields applies a partial update to a program document.
func (r *MongoProgramRepo) UpdateFields(id string, fields map[string]any) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	result, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, bson.M{"$set": fields})
	if err != nil {
		return fmt.Errorf("failed to update program with id %s: %w", id, err)
	}
	if result.MatchedCount == 0 {
		return utils.NotFoundError{Resource: "training program"}
	}
	return nil
}

// Delete removes a program document by its ID.
func (r *MongoProgramRepo) Delete(id string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	result, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("failed to delete program with id %s: %w", id, err)
	}
	if result.DeletedCount == 0 {
		return utils.NotFoundError{Resource: "training program"}
	}
	return nil
}
