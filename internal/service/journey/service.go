// Package journey implements the farm lifecycle engine: stage transitions,
// per-stage activity logging, and farm provisioning, persisted through the
// external farm store.
package journey

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/agrilync/farmtrack/internal/catalog"
	"github.com/agrilync/farmtrack/internal/domain/models"
	"github.com/agrilync/farmtrack/internal/repository/farmstore"
	"github.com/agrilync/farmtrack/internal/service/notify"
)

// ErrActivityFieldsRequired indicates a log entry is missing its required
// activity or date field. Raised before any persistence call.
var ErrActivityFieldsRequired = errors.New("activity and date are required")

// ErrFarmFieldsRequired indicates provisioning input is incomplete.
var ErrFarmFieldsRequired = errors.New("name, location, crop and farmer are required")

// ErrInvalidStage indicates the stage does not belong to the farm category's
// sequence.
var ErrInvalidStage = errors.New("stage is not valid for the farm category")

// ErrInvalidStatus indicates an unknown stage status value.
var ErrInvalidStatus = errors.New("unknown stage status")

// ErrStatusRegression indicates an attempt to set a stage with logged
// activity back to pending.
var ErrStatusRegression = errors.New("a stage with logged activity cannot return to pending")

// ErrNoFarm indicates the farmer has no provisioned farm to operate on.
var ErrNoFarm = errors.New("no farm registered for farmer")

// ActivityInput carries the operator-entered fields of a new activity entry.
type ActivityInput struct {
	Date             string            `json:"date"`
	Activity         string            `json:"activity"`
	Description      string            `json:"description"`
	Resources        string            `json:"resources"`
	AdditionalField1 string            `json:"additionalField1"`
	AdditionalField2 string            `json:"additionalField2"`
	Media            []models.MediaRef `json:"media"`
}

// StageMetaInput carries optional edits to a stage's date, notes, and status.
// Nil fields are left untouched.
type StageMetaInput struct {
	Date   *string             `json:"date"`
	Notes  *string             `json:"notes"`
	Status *models.StageStatus `json:"status"`
}

// ProvisionInput carries the fields required to register a new farm.
type ProvisionInput struct {
	FarmerID string `json:"farmerId"`
	Name     string `json:"name"`
	Location string `json:"location"`
	Crop     string `json:"crop"`
	FarmType string `json:"farmType"`
}

// Service is the lifecycle engine. All mutations are blocking round-trips to
// the farm store; the cached farm swaps only after the store acknowledges, so
// the session never shows state that might not persist.
type Service struct {
	store    farmstore.FarmStore
	notifier notify.Notifier
	sessions *SessionManager
	logger   *zap.Logger
	now      func() time.Time

	idMu   sync.Mutex
	lastID int64
}

// NewService constructs the journey engine.
func NewService(store farmstore.FarmStore, notifier notify.Notifier, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		store:    store,
		notifier: notifier,
		sessions: NewSessionManager(),
		logger:   logger,
		now:      time.Now,
	}
}

// OpenJourney looks up the farmer's farm and opens a session for it. A
// farmer without a farm is a normal state, reported through the found flag,
// never as an error.
func (s *Service) OpenJourney(ctx context.Context, farmerID string) (*models.Farm, bool, error) {
	farm, found, err := s.findFarm(ctx, farmerID)
	if err != nil {
		return nil, false, err
	}

	s.sessions.Open(farmerID, farm)
	return farm, found, nil
}

// CloseJourney tears down the farmer's session. A store response still in
// flight for this session will be discarded on arrival.
func (s *Service) CloseJourney(farmerID string) {
	s.sessions.Close(farmerID)
}

// ProgressFraction maps the farm's current stage onto [0,1] for the progress
// display. The half-slot offset centers the marker within the current stage's
// slot instead of landing on a boundary.
func (s *Service) ProgressFraction(farm *models.Farm) float64 {
	sequence := catalog.StageSequence(farm.Category())
	index := catalog.StageIndex(farm.Category(), farm.CurrentStage)
	if index < 0 {
		index = 0
	}
	return (float64(index) + 0.5) / float64(len(sequence))
}

// SetCurrentStage moves the farm's current stage pointer. Any stage of the
// farm category's sequence is reachable from any other; extension agents use
// this to correct or backdate a farm's stage, so no forward-only guard is
// applied.
func (s *Service) SetCurrentStage(ctx context.Context, farmerID string, newStage models.StageID) (*models.Farm, error) {
	farm, err := s.currentFarm(ctx, farmerID)
	if err != nil {
		return nil, err
	}

	if !catalog.ValidStage(farm.Category(), newStage) {
		return nil, fmt.Errorf("%w: %s", ErrInvalidStage, newStage)
	}

	updated, err := s.store.UpdateFarm(ctx, farm.ID, farmstore.FarmUpdate{CurrentStage: &newStage})
	if err != nil {
		s.notifyOutcome(ctx, farm.Farmer.ID, "Farm Stage", "Failed to update farm stage.", false)
		return nil, fmt.Errorf("persist current stage: %w", err)
	}

	s.sessions.Apply(farmerID, updated)
	s.notifyOutcome(ctx, farm.Farmer.ID, "Farm Stage", fmt.Sprintf("Farm stage updated to %s.", newStage), true)
	s.logger.Info("current stage updated",
		zap.String("farm_id", farm.ID),
		zap.String("stage", string(newStage)))
	return updated, nil
}

// LogActivity appends an activity entry to the stage's log and persists the
// whole stage map. The first entry on a pending stage flips it to
// in-progress; a completed stage keeps its status.
func (s *Service) LogActivity(ctx context.Context, farmerID string, stage models.StageID, input ActivityInput) (*models.Farm, error) {
	if input.Date == "" || input.Activity == "" {
		return nil, ErrActivityFieldsRequired
	}

	farm, err := s.currentFarm(ctx, farmerID)
	if err != nil {
		return nil, err
	}

	details := farm.StageDetails.Clone()
	record, ok := details[stage]
	if !ok {
		// Provisioning should have created the record; recover rather than fail.
		record = models.StageRecord{Status: models.StatusPending, Activities: []models.ActivityEntry{}}
	}

	entry := models.ActivityEntry{
		ID:               s.nextActivityID(),
		Date:             input.Date,
		Activity:         input.Activity,
		Description:      input.Description,
		Resources:        input.Resources,
		AdditionalField1: input.AdditionalField1,
		AdditionalField2: input.AdditionalField2,
		Media:            append([]models.MediaRef(nil), input.Media...),
	}

	record.Activities = append(record.Activities, entry)
	if record.Status == models.StatusPending {
		record.Status = models.StatusInProgress
	}
	details[stage] = record

	updated, err := s.store.UpdateFarm(ctx, farm.ID, farmstore.FarmUpdate{StageDetails: details})
	if err != nil {
		s.notifyOutcome(ctx, farm.Farmer.ID, "Activity Log", "Failed to save activity.", false)
		return nil, fmt.Errorf("persist activity: %w", err)
	}

	s.sessions.Apply(farmerID, updated)
	s.notifyOutcome(ctx, farm.Farmer.ID, "Activity Log", "Activity logged successfully!", true)
	s.logger.Info("activity logged",
		zap.String("farm_id", farm.ID),
		zap.String("stage", string(stage)),
		zap.String("activity_id", entry.ID))
	return updated, nil
}

// UpdateStageMeta edits a stage's date, notes, or status. A stage that has
// logged activity can never be set back to pending.
func (s *Service) UpdateStageMeta(ctx context.Context, farmerID string, stage models.StageID, meta StageMetaInput) (*models.Farm, error) {
	farm, err := s.currentFarm(ctx, farmerID)
	if err != nil {
		return nil, err
	}

	if !catalog.ValidStage(farm.Category(), stage) {
		return nil, fmt.Errorf("%w: %s", ErrInvalidStage, stage)
	}

	details := farm.StageDetails.Clone()
	record, ok := details[stage]
	if !ok {
		record = models.StageRecord{Status: models.StatusPending, Activities: []models.ActivityEntry{}}
	}

	if meta.Status != nil {
		if !models.ValidStatus(*meta.Status) {
			return nil, fmt.Errorf("%w: %s", ErrInvalidStatus, *meta.Status)
		}
		if *meta.Status == models.StatusPending && len(record.Activities) > 0 {
			return nil, ErrStatusRegression
		}
		record.Status = *meta.Status
	}
	if meta.Date != nil {
		record.Date = *meta.Date
	}
	if meta.Notes != nil {
		record.Notes = *meta.Notes
	}
	details[stage] = record

	updated, err := s.store.UpdateFarm(ctx, farm.ID, farmstore.FarmUpdate{StageDetails: details})
	if err != nil {
		s.notifyOutcome(ctx, farm.Farmer.ID, "Stage Details", "Failed to update stage details.", false)
		return nil, fmt.Errorf("persist stage details: %w", err)
	}

	s.sessions.Apply(farmerID, updated)
	s.notifyOutcome(ctx, farm.Farmer.ID, "Stage Details", "Stage details updated.", true)
	return updated, nil
}

// ProvisionFarm registers a new farm with every stage record pending and the
// current stage at the start of the category's sequence. Calling twice for
// the same farmer creates two farms; callers do a read-then-provision check.
func (s *Service) ProvisionFarm(ctx context.Context, input ProvisionInput) (*models.Farm, error) {
	if input.Name == "" || input.Location == "" || input.Crop == "" || input.FarmerID == "" {
		return nil, ErrFarmFieldsRequired
	}

	category := models.ParseFarmCategory(input.FarmType)
	details := models.StageDetails{}
	for _, stage := range catalog.StageSequence(category) {
		details[stage] = models.StageRecord{
			Status:     models.StatusPending,
			Date:       "",
			Notes:      "",
			Activities: []models.ActivityEntry{},
		}
	}

	created, err := s.store.CreateFarm(ctx, farmstore.NewFarm{
		Name:         input.Name,
		Location:     input.Location,
		Crop:         input.Crop,
		FarmType:     input.FarmType,
		Status:       "verified",
		FarmerID:     input.FarmerID,
		CurrentStage: catalog.FirstStage(category),
		StageDetails: details,
	})
	if err != nil {
		s.notifyOutcome(ctx, input.FarmerID, "Farm Registration", "Failed to register farm. Please try again.", false)
		return nil, fmt.Errorf("create farm: %w", err)
	}

	s.sessions.Open(input.FarmerID, created)
	s.notifyOutcome(ctx, input.FarmerID, "Farm Registration", "Farm registered successfully! You can now track the journey.", true)
	s.logger.Info("farm provisioned",
		zap.String("farm_id", created.ID),
		zap.String("farmer_id", input.FarmerID),
		zap.String("category", string(category)))
	return created, nil
}

// findFarm scans the store for the farm owned by the farmer. The farmer
// reference on a record may be a plain id or a nested object; FarmerRef
// decoding flattens both to an id before matching.
func (s *Service) findFarm(ctx context.Context, farmerID string) (*models.Farm, bool, error) {
	farms, err := s.store.ListFarms(ctx)
	if err != nil {
		return nil, false, fmt.Errorf("list farms: %w", err)
	}

	for i := range farms {
		if farms[i].Farmer.Matches(farmerID) {
			return &farms[i], true, nil
		}
	}
	return nil, false, nil
}

// currentFarm resolves the farm for a mutation: the open session's cached
// farm when present, otherwise a fresh store lookup.
func (s *Service) currentFarm(ctx context.Context, farmerID string) (*models.Farm, error) {
	if farm, open := s.sessions.Current(farmerID); open {
		if farm == nil {
			return nil, ErrNoFarm
		}
		return farm, nil
	}

	farm, found, err := s.findFarm(ctx, farmerID)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, ErrNoFarm
	}
	return farm, nil
}

// nextActivityID issues millisecond-timestamp ids, bumped monotonically when
// two sequential calls land on the same millisecond.
func (s *Service) nextActivityID() string {
	s.idMu.Lock()
	defer s.idMu.Unlock()

	id := s.now().UnixMilli()
	if id <= s.lastID {
		id = s.lastID + 1
	}
	s.lastID = id
	return strconv.FormatInt(id, 10)
}

func (s *Service) notifyOutcome(ctx context.Context, to, title, message string, success bool) {
	if s.notifier == nil {
		return
	}
	s.notifier.Notify(ctx, models.Notification{
		To:      to,
		Title:   title,
		Message: message,
		Success: success,
	})
}
