package mongodb

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/agrilync/farmtrack/internal/domain/models"
	"github.com/agrilync/farmtrack/internal/repository/farmstore"
)

// FarmRepository implements the farmstore.FarmStore contract on a MongoDB
// farm collection, for deployments that own the collection directly instead
// of going through the platform REST API.
type FarmRepository struct {
	client   *mongo.Client
	dbName   string
	collName string
}

// NewFarmRepository connects to MongoDB and verifies the connection.
func NewFarmRepository(ctx context.Context, uri string, dbName string) (*FarmRepository, error) {
	clientOptions := options.Client().ApplyURI(uri)
	client, err := mongo.Connect(ctx, clientOptions)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to mongodb: %w", err)
	}

	// Ping the database to verify connection
	if err := client.Ping(ctx, nil); err != nil {
		return nil, fmt.Errorf("failed to ping mongodb: %w", err)
	}

	return &FarmRepository{
		client:   client,
		dbName:   dbName,
		collName: "farms",
	}, nil
}

func (r *FarmRepository) collection() *mongo.Collection {
	return r.client.Database(r.dbName).Collection(r.collName)
}

// ListFarms returns every farm record in the collection.
func (r *FarmRepository) ListFarms(ctx context.Context) ([]models.Farm, error) {
	cursor, err := r.collection().Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("failed to list farms: %w", err)
	}
	defer cursor.Close(ctx)

	var farms []models.Farm
	if err := cursor.All(ctx, &farms); err != nil {
		return nil, fmt.Errorf("failed to decode farms: %w", err)
	}
	return farms, nil
}

// UpdateFarm applies the partial update with $set and reads the document back
// so the caller receives the full updated farm, matching the API store
// contract.
func (r *FarmRepository) UpdateFarm(ctx context.Context, farmID string, update farmstore.FarmUpdate) (*models.Farm, error) {
	set := bson.M{}
	if update.CurrentStage != nil {
		set["currentStage"] = *update.CurrentStage
	}
	if update.StageDetails != nil {
		set["stageDetails"] = update.StageDetails
	}
	if len(set) == 0 {
		return nil, fmt.Errorf("update farm %s: no fields to update", farmID)
	}

	after := options.After
	opts := options.FindOneAndUpdate().SetReturnDocument(after)

	var farm models.Farm
	err := r.collection().FindOneAndUpdate(ctx, bson.M{"_id": farmID}, bson.M{"$set": set}, opts).Decode(&farm)
	if err != nil {
		return nil, fmt.Errorf("failed to update farm %s: %w", farmID, err)
	}
	return &farm, nil
}

// CreateFarm inserts the provisioned farm with a fresh UUID id and returns
// the stored representation.
func (r *FarmRepository) CreateFarm(ctx context.Context, farm farmstore.NewFarm) (*models.Farm, error) {
	stored := models.Farm{
		ID:           uuid.NewString(),
		Name:         farm.Name,
		Location:     farm.Location,
		Crop:         farm.Crop,
		FarmType:     farm.FarmType,
		Status:       farm.Status,
		Farmer:       models.FarmerRef{ID: farm.FarmerID},
		CurrentStage: farm.CurrentStage,
		StageDetails: farm.StageDetails,
	}

	if _, err := r.collection().InsertOne(ctx, stored); err != nil {
		return nil, fmt.Errorf("failed to insert farm: %w", err)
	}
	return &stored, nil
}

// Close closes the MongoDB connection.
func (r *FarmRepository) Close(ctx context.Context) error {
	return r.client.Disconnect(ctx)
}
