package feedbackRepo

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

// MongoFeedbackRepo implements FeedbackRepository using MongoDB.
type MongoFeedbackRepo struct {
	coll *mongo.Collection
}

// NewMongoFeedbackRepo creates a new instance of FeedbackRepository using MongoDB.
func NewMongoFeedbackRepo() FeedbackRepository {
	coll := database.Collection("feedbacks")
	repo := &MongoFeedbackRepo{coll: coll}

	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create feedback indexes: %v\n", err)
	}
	return repo
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

func (r *MongoFeedbackRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "sessionId", Value: 1}}},
		{Keys: bson.D{{Key: "customerId", Value: 1}}},
		{Keys: bson.D{{Key: "instructorId", Value: 1}}},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

func (r *MongoFeedbackRepo) find(filter bson.M) ([]models.Feedback, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch feedback: %w", err)
	}
	defer cursor.Close(ctx)

	var feedback []models.Feedback
	if err := cursor.All(ctx, &feedback); err != nil {
		return nil, fmt.Errorf("failed to decode feedback: %w", err)
	}
	return feedback, nil
}

// GetByID retrieves feedback by its unique ID.
func (r *MongoFeedbackRepo) GetByID(id string) (*models.Feedback, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var feedback models.Feedback
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&feedback); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, utils.NotFoundError{Resource: "feedback"}
		}
		return nil, fmt.Errorf("failed to fetch feedback with id %s: %w", id, err)
	}
	return &feedback, nil
}

// GetAll retrieves all feedback.
func (r *MongoFeedbackRepo) GetAll() ([]models.Feedback, error) {
	return r.find(bson.M{})
}

// GetBySession retrieves feedback filed against a session.
func (r *MongoFeedbackRepo) GetBySession(sessionID string) ([]models.Feedback, error) {
	return r.find(bson.M{"sessionId": sessionID})
}

// GetByCustomer retrieves feedback about a customer.
func (r *MongoFeedbackRepo) GetByCustomer(customerID string) ([]models.Feedback, error) {
	return r.find(bson.M{"customerId": customerID})
}

// GetByInstructor retrieves feedback filed by an instructor.
func (r *MongoFeedbackRepo) GetByInstructor(instructorID string) ([]models.Feedback, error) {
	return r.find(bson.M{"instructorId": instructorID})
}

// Create inserts a new feedback document.
func (r *MongoFeedbackRepo) Create(feedback *models.Feedback) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	_, err := r.coll.InsertOne(ctx, feedback)
	if err != nil {
		return fmt.Errorf("failed to create feedback: %w", err)
	}
	return nil
}

// UpdateFields applies a partial update to a feedback document.
func (r *MongoFeedbackRepo) UpdateFields(id string, fields map[string]any) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	result, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, bson.M{"$set": fields})
	if err != nil {
		return fmt.Errorf("failed to update feedback with id %s: %w", id, err)
	}
	if result.MatchedCount == 0 {
		return utils.NotFoundError{Resource: "feedback"}
	}
	return nil
}

// Delete removes a feedback document by its ID.
func (r *MongoFeedbackRepo) Delete(id string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	result, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("failed to delete feedback with id %s: %w", id, err)
	}
	if result.DeletedCount == 0 {
		return utils.NotFoundError{Resource: "feedback"}
	}
	return nil
}
