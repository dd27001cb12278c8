package sessionRepo

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

// MongoSessionRepo implements SessionRepository using MongoDB.
type MongoSessionRepo struct {
	coll *mongo.Collection
}

// NewMongoSessionRepo creates a new instance of SessionRepository using MongoDB.
func NewMongoSessionRepo() SessionRepository {
	coll := database.Collection("sessions")
	repo := &MongoSessionRepo{coll: coll}

	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create session indexes: %v\n", err)
	}
	return repo
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

func (r *MongoSessionRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "startTime", Value: 1}}},
		{Keys: bson.D{{Key: "enrolledCustomerIds", Value: 1}}},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

// GetByID retrieves a session by its unique ID.
func (r *MongoSessionRepo) GetByID(id string) (*models.Session, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var session models.Session
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&session); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, utils.NotFoundError{Resource: "session"}
		}
		return nil, fmt.Errorf("failed to fetch session with id %s: %w", id, err)
	}
	return &session, nil
}

func (r *MongoSessionRepo) find(filter bson.M) ([]models.Session, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "startTime", Value: 1}})
	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch sessions: %w", err)
	}
	defer cursor.Close(ctx)

	var sessions []models.Session
	if err := cursor.All(ctx, &sessions); err != nil {
		return nil, fmt.Errorf("failed to decode sessions: %w", err)
	}
	return sessions, nil
}

// GetAll retrieves all sessions ordered by start time.
func (r *MongoSessionRepo) GetAll() ([]models.Session, error) {
	return r.find(bson.M{})
}

// GetBetween retrieves sessions whose start time falls in [from, to).
func (r *MongoSessionRepo) GetBetween(from, to time.Time) ([]models.Session, error) {
	return r.find(bson.M{"startTime": bson.M{"$gte": from, "$lt": to}})
}

// GetAvailable retrieves open sessions starting after the given instant.
func (r *MongoSessionRepo) GetAvailable(after time.Time) ([]models.Session, error) {
	return r.find(bson.M{
		"isAvailable": true,
		"status":      models.SessionScheduled,
		"startTime":   bson.M{"$gt": after},
	})
}

// GetByCustomer retrieves the sessions a customer is enrolled in.
func (r *MongoSessionRepo) GetByCustomer(customerID string) ([]models.Session, error) {
	return r.find(bson.M{"enrolledCustomerIds": customerID})
}

// Create inserts a new session document.
func (r *MongoSessionRepo) Create(session *models.Session) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	_, err := r.coll.InsertOne(ctx, session)
	if err != nil {
		return fmt.Errorf("failed to create session: %w", err)
	}
	return nil
}

// UpdateFields applies a partial update to a session document.
func (r *MongoSessionRepo) UpdateFields(id string, fields map[string]any) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	result, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, bson.M{"$set": fields})
	if err != nil {
		return fmt.Errorf("failed to update session with id %s: %w", id, err)
	}
	if result.MatchedCount == 0 {
		return utils.NotFoundError{Resource: "session"}
	}
	return nil
}

// Delete removes a session document by its ID.
func (r *MongoSessionRepo) Delete(id string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	result, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("failed to delete session with id %s: %w", id, err)
	}
	if result.DeletedCount == 0 {
		return utils.NotFoundError{Resource: "session"}
	}
	return nil
}

// AddCustomer enrolls a customer into a session. The filter re-checks capacity
// and availability so a concurrent enrollment cannot push past maxCapacity.
func (r *MongoSessionRepo) AddCustomer(sessionID, customerID string) (bool, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	filter := bson.M{
		"id":                  sessionID,
		"isAvailable":         true,
		"enrolledCustomerIds": bson.M{"$ne": customerID},
		"$expr": bson.M{"$lt": []interface{}{
			bson.M{"$size": bson.M{"$ifNull": []interface{}{"$enrolledCustomerIds", bson.A{}}}},
			"$maxCapacity",
		}},
	}
	update := bson.M{
		"$addToSet": bson.M{"enrolledCustomerIds": customerID},
		"$set":      bson.M{"updatedAt": time.Now()},
	}

	result, err := r.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return false, fmt.Errorf("failed to enroll customer %s in session %s: %w", customerID, sessionID, err)
	}
	return result.ModifiedCount > 0, nil
}

// RemoveCustomer removes a customer's enrollment from a session. The filter
// requires the customer to be enrolled so that the `$set` on updatedAt cannot
// count as a modification when the `$pull` removed nothing.
func (r *MongoSessionRepo) RemoveCustomer(sessionID, customerID string) (bool, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	filter := bson.M{
		"id":                  sessionID,
		"enrolledCustomerIds": customerID,
	}
	update := bson.M{
		"$pull": bson.M{"enrolledCustomerIds": customerID},
		"$set":  bson.M{"updatedAt": time.Now()},
	}

	result, err := r.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return false, fmt.Errorf("failed to remove customer %s from session %s: %w", customerID, sessionID, err)
	}
	return result.MatchedCount > 0, nil
}
