package enrollmentRepo

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

// MongoEnrollmentRepo implements EnrollmentRepository using MongoDB.
type MongoEnrollmentRepo struct {
	coll *mongo.Collection
}

// NewMongoEnrollmentRepo creates a new instance of EnrollmentRepository using MongoDB.
func NewMongoEnrollmentRepo() EnrollmentRepository {
	coll := database.Collection("enrollments")
	repo := &MongoEnrollmentRepo{coll: coll}

	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create enrollment indexes: %v\n", err)
	}
	return repo
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

func (r *MongoEnrollmentRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "customerId", Value: 1}}},
		{Keys: bson.D{{Key: "programId", Value: 1}}},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

func (r *MongoEnrollmentRepo) find(filter bson.M) ([]models.Enrollment, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "enrollmentDate", Value: -1}})
	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch enrollments: %w", err)
	}
	defer cursor.Close(ctx)

	var enrollments []models.Enrollment
	if err := cursor.All(ctx, &enrollments); err != nil {
		return nil, fmt.Errorf("failed to decode enrollments: %w", err)
	}
	return enrollments, nil
}

// GetByID retrieves an enrollment by its unique ID.
func (r *MongoEnrollmentRepo) GetByID(id string) (*models.Enrollment, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var enrollment models.Enrollment
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&enrollment); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, utils.NotFoundError{Resource: "enrollment"}
		}
		return nil, fmt.Errorf("failed to fetch enrollment with id %s: %w", id, err)
	}
	return &enrollment, nil
}

// GetAll retrieves all enrollments.
func (r *MongoEnrollmentRepo) GetAll() ([]models.Enrollment, error) {
	return r.find(bson.M{})
}

// GetByCustomer retrieves the enrollments belonging to a customer.
func (r *MongoEnrollmentRepo) GetByCustomer(customerID string) ([]models.Enrollment, error) {
	return r.find(bson.M{"customerId": customerID})
}

// GetByProgram retrieves the enrollments for a training program.
func (r *MongoEnrollmentRepo) GetByProgram(programID string) ([]models.Enrollment, error) {
	return r.find(bson.M{"programId": programID})
}

// Create inserts a new enrollment document.
func (r *MongoEnrollmentRepo) Create(enrollment *models.Enrollment) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	_, err := r.coll.InsertOne(ctx, enrollment)
	if err != nil {
		return fmt.Errorf("failed to create enrollment: %w", err)
	}
	return nil
}

// UpdateFields applies a partial update to an enrollment document.
func (r *MongoEnrollmentRepo) UpdateFields(id string, fields map[string]any) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	result, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, bson.M{"$set": fields})
	if err != nil {
		return fmt.Errorf("failed to update enrollment with id %s: %w", id, err)
	}
	if result.MatchedCount == 0 {
		return utils.NotFoundError{Resource: "enrollment"}
	}
	return nil
}

// Delete removes an enrollment document by its ID.
func (r *MongoEnrollmentRepo) Delete(id string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	result, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("failed to delete enrollment with id %s: %w", id, err)
	}
	if result.DeletedCount == 0 {
		return utils.NotFoundError{Resource: "enrollment"}
	}
	return nil
}
