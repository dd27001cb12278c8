package materialRepo

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

// MongoMaterialRepo implements MaterialRepository using MongoDB.
type MongoMaterialRepo struct {
	coll *mongo.Collection
}

// NewMongoMaterialRepo creates a new instance of MaterialRepository using MongoDB.
func NewMongoMaterialRepo() MaterialRepository {
	coll := database.Collection("training_materials")
	repo := &MongoMaterialRepo{coll: coll}

	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create material indexes: %v\n", err)
	}
	return repo
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

func (r *MongoMaterialRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "forLicenseType", Value: 1}, {Key: "visibility", Value: 1}}},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

func (r *MongoMaterialRepo) find(filter bson.M) ([]models.TrainingMaterial, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "uploadDate", Value: -1}})
	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch materials: %w", err)
	}
	defer cursor.Close(ctx)

	var materials []models.TrainingMaterial
	if err := cursor.All(ctx, &materials); err != nil {
		return nil, fmt.Errorf("failed to decode materials: %w", err)
	}
	return materials, nil
}

// GetByID retrieves a material by its unique ID.
func (r *MongoMaterialRepo) GetByID(id string) (*models.TrainingMaterial, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var material models.TrainingMaterial
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&material); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, utils.NotFoundError{Resource: "training material"}
		}
		return nil, fmt.Errorf("failed to fetch material with id %s: %w", id, err)
	}
	return &material, nil
}

// GetAll retrieves all materials.
func (r *MongoMaterialRepo) GetAll() ([]models.TrainingMaterial, error) {
	return r.find(bson.M{})
}

// GetByLicenseType retrieves materials for a license category,
// restricted to the given visibility levels.
func (r *MongoMaterialRepo) GetByLicenseType(licenseType string, visibility []string) ([]models.TrainingMaterial, error) {
	filter := bson.M{"forLicenseType": licenseType}
	if len(visibility) > 0 {
		filter["visibility"] = bson.M{"$in": visibility}
	}
	return r.find(filter)
}

// Create inserts a new material document.
func (r *MongoMaterialRepo) Create(material *models.TrainingMaterial) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	_, err := r.coll.InsertOne(ctx, material)
	if err != nil {
		return fmt.Errorf("failed to create material: %w", err)
	}
	return nil
}

// UpdateFields applies a partial update to a material document.
func (r *MongoMaterialRepo) UpdateFields(id string, fields map[string]any) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	result, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, bson.M{"$set": fields})
	if err != nil {
		return fmt.Errorf("failed to update material with id %s: %w", id, err)
	}
	if result.MatchedCount == 0 {
		return utils.NotFoundError{Resource: "training material"}
	}
	return nil
}

// IncrementDownloadCount bumps a material's download counter.
func (r *MongoMaterialRepo) IncrementDownloadCount(id string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	result, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, bson.M{"$inc": bson.M{"downloadCount": 1}})
	if err != nil {
		return fmt.Errorf("failed to increment download count for material %s: %w", id, err)
	}
	if result.MatchedCount == 0 {
		return utils.NotFoundError{Resource: "training material"}
	}
	return nil
}

// Delete removes a material document by its ID.
func (r *MongoMaterialRepo) Delete(id string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	result, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("failed to delete material with id %s: %w", id, err)
	}
	if result.DeletedCount == 0 {
		return utils.NotFoundError{Resource: "training material"}
	}
	return nil
}
