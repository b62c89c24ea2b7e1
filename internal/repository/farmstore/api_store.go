package farmstore

import (
	"context"

	"github.com/agrilync/farmtrack/internal/domain/models"
	"github.com/agrilync/farmtrack/pkg/clients/agrilync"
)

// APIStore adapts the platform farm REST API client to the FarmStore
// contract.
type APIStore struct {
	client agrilync.Client
}

// NewAPIStore wraps a farm API client.
func NewAPIStore(client agrilync.Client) *APIStore {
	return &APIStore{client: client}
}

// ListFarms fetches every farm record from the platform API.
func (s *APIStore) ListFarms(ctx context.Context) ([]models.Farm, error) {
	return s.client.ListFarms(ctx)
}

// UpdateFarm sends only the fields present in the update; the API accepts
// partial bodies and returns the full updated farm.
func (s *APIStore) UpdateFarm(ctx context.Context, farmID string, update FarmUpdate) (*models.Farm, error) {
	fields := make(map[string]any, 2)
	if update.CurrentStage != nil {
		fields["currentStage"] = *update.CurrentStage
	}
	if update.StageDetails != nil {
		fields["stageDetails"] = update.StageDetails
	}
	return s.client.UpdateFarm(ctx, farmID, fields)
}

// CreateFarm registers the provisioned farm through the platform API.
func (s *APIStore) CreateFarm(ctx context.Context, farm NewFarm) (*models.Farm, error) {
	fields := map[string]any{
		"name":         farm.Name,
		"location":     farm.Location,
		"crop":         farm.Crop,
		"farmer":       farm.FarmerID,
		"currentStage": farm.CurrentStage,
		"stageDetails": farm.StageDetails,
	}
	if farm.FarmType != "" {
		fields["farmType"] = farm.FarmType
	}
	if farm.Status != "" {
		fields["status"] = farm.Status
	}
	return s.client.CreateFarm(ctx, fields)
}
