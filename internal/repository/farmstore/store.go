// Package farmstore defines the persistence contract the lifecycle engine
// requires from a farm record store, plus the REST-backed implementation.
package farmstore

import (
	"context"

	"github.com/agrilync/farmtrack/internal/domain/models"
)

// FarmUpdate carries the partial fields accepted by UpdateFarm. The store
// applies whole-field replacement: a non-nil CurrentStage or a non-nil
// StageDetails overwrites the stored value entirely.
type FarmUpdate struct {
	CurrentStage *models.StageID
	StageDetails models.StageDetails
}

// NewFarm carries the fields produced by farm provisioning.
type NewFarm struct {
	Name         string
	Location     string
	Crop         string
	FarmType     string
	Status       string
	FarmerID     string
	CurrentStage models.StageID
	StageDetails models.StageDetails
}

// FarmStore is the external persistence collaborator. Implementations own
// timeouts and retries; the engine treats any returned error as terminal for
// the call.
type FarmStore interface {
	// ListFarms returns every farm record. An empty result is a normal state,
	// not an error.
	ListFarms(ctx context.Context) ([]models.Farm, error)
	// UpdateFarm applies a partial update and returns the full updated farm.
	UpdateFarm(ctx context.Context, farmID string, update FarmUpdate) (*models.Farm, error)
	// CreateFarm stores a new farm and returns it with its assigned id.
	CreateFarm(ctx context.Context, farm NewFarm) (*models.Farm, error)
}
