package journey

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agrilync/farmtrack/internal/catalog"
	"github.com/agrilync/farmtrack/internal/domain/models"
	"github.com/agrilync/farmtrack/internal/repository/farmstore"
)

type fakeStore struct {
	farms []models.Farm

	listErr   error
	updateErr error
	createErr error

	listCalls   int
	updateCalls int
	updates     []farmstore.FarmUpdate
	created     []farmstore.NewFarm
}

func (f *fakeStore) ListFarms(_ context.Context) ([]models.Farm, error) {
	f.listCalls++
	if f.listErr != nil {
		return nil, f.listErr
	}
	out := make([]models.Farm, len(f.farms))
	copy(out, f.farms)
	return out, nil
}

func (f *fakeStore) UpdateFarm(_ context.Context, farmID string, update farmstore.FarmUpdate) (*models.Farm, error) {
	f.updateCalls++
	f.updates = append(f.updates, update)
	if f.updateErr != nil {
		return nil, f.updateErr
	}
	for i := range f.farms {
		if f.farms[i].ID != farmID {
			continue
		}
		if update.CurrentStage != nil {
			f.farms[i].CurrentStage = *update.CurrentStage
		}
		if update.StageDetails != nil {
			f.farms[i].StageDetails = update.StageDetails.Clone()
		}
		result := f.farms[i]
		result.StageDetails = result.StageDetails.Clone()
		return &result, nil
	}
	return nil, errors.New("farm not found")
}

func (f *fakeStore) CreateFarm(_ context.Context, farm farmstore.NewFarm) (*models.Farm, error) {
	f.created = append(f.created, farm)
	if f.createErr != nil {
		return nil, f.createErr
	}
	created := models.Farm{
		ID:           "farm-new",
		Name:         farm.Name,
		Location:     farm.Location,
		Crop:         farm.Crop,
		FarmType:     farm.FarmType,
		Status:       farm.Status,
		Farmer:       models.FarmerRef{ID: farm.FarmerID},
		CurrentStage: farm.CurrentStage,
		StageDetails: farm.StageDetails.Clone(),
	}
	f.farms = append(f.farms, created)
	return &created, nil
}

type fakeNotifier struct {
	notices []models.Notification
}

func (f *fakeNotifier) Notify(_ context.Context, n models.Notification) {
	f.notices = append(f.notices, n)
}

func (f *fakeNotifier) last(t *testing.T) models.Notification {
	t.Helper()
	require.NotEmpty(t, f.notices)
	return f.notices[len(f.notices)-1]
}

func newCropFarm(farmerID string) models.Farm {
	details := models.StageDetails{}
	for _, stage := range catalog.StageSequence(models.CategoryCrop) {
		details[stage] = models.StageRecord{Status: models.StatusPending, Activities: []models.ActivityEntry{}}
	}
	return models.Farm{
		ID:           "farm-1",
		Name:         "Adansi Maize Farm",
		Location:     "Ashanti Region",
		Crop:         "Maize",
		FarmType:     "crop farming",
		Status:       "verified",
		Farmer:       models.FarmerRef{ID: farmerID},
		CurrentStage: models.StagePlanning,
		StageDetails: details,
	}
}

func newTestService(store *fakeStore, notifier *fakeNotifier) *Service {
	return NewService(store, notifier, nil)
}

func TestOpenJourneyFound(t *testing.T) {
	store := &fakeStore{farms: []models.Farm{newCropFarm("farmer-1")}}
	svc := newTestService(store, &fakeNotifier{})

	farm, found, err := svc.OpenJourney(context.Background(), "farmer-1")

	require.NoError(t, err)
	assert.True(t, found)
	require.NotNil(t, farm)
	assert.Equal(t, "farm-1", farm.ID)

	cached, open := svc.sessions.Current("farmer-1")
	assert.True(t, open)
	assert.Equal(t, farm, cached)
}

func TestOpenJourneyNotFoundIsNotAnError(t *testing.T) {
	store := &fakeStore{farms: []models.Farm{newCropFarm("farmer-1")}}
	svc := newTestService(store, &fakeNotifier{})

	farm, found, err := svc.OpenJourney(context.Background(), "farmer-2")

	require.NoError(t, err)
	assert.False(t, found)
	assert.Nil(t, farm)

	// The session is open even without a farm; mutations must fail fast.
	_, err = svc.SetCurrentStage(context.Background(), "farmer-2", models.StagePlanting)
	assert.ErrorIs(t, err, ErrNoFarm)
}

func TestOpenJourneyStoreError(t *testing.T) {
	store := &fakeStore{listErr: errors.New("upstream down")}
	svc := newTestService(store, &fakeNotifier{})

	_, _, err := svc.OpenJourney(context.Background(), "farmer-1")
	assert.Error(t, err)
}

func TestProgressFraction(t *testing.T) {
	svc := newTestService(&fakeStore{}, &fakeNotifier{})

	crop := newCropFarm("farmer-1")
	crop.CurrentStage = models.StagePlanning
	assert.InDelta(t, 0.5/6.0, svc.ProgressFraction(&crop), 1e-9)

	crop.CurrentStage = models.StageOther
	assert.InDelta(t, 5.5/6.0, svc.ProgressFraction(&crop), 1e-9)

	crop.CurrentStage = models.StageID("bogus")
	assert.InDelta(t, 0.5/6.0, svc.ProgressFraction(&crop), 1e-9)

	livestock := crop
	livestock.FarmType = "livestock farming"
	livestock.CurrentStage = models.StageProduction
	assert.InDelta(t, 4.5/8.0, svc.ProgressFraction(&livestock), 1e-9)
}

func TestSetCurrentStage(t *testing.T) {
	store := &fakeStore{farms: []models.Farm{newCropFarm("farmer-1")}}
	notifier := &fakeNotifier{}
	svc := newTestService(store, notifier)

	updated, err := svc.SetCurrentStage(context.Background(), "farmer-1", models.StageHarvesting)

	require.NoError(t, err)
	assert.Equal(t, models.StageHarvesting, updated.CurrentStage)
	assert.True(t, notifier.last(t).Success)

	// Backwards movement stays allowed.
	updated, err = svc.SetCurrentStage(context.Background(), "farmer-1", models.StagePlanning)
	require.NoError(t, err)
	assert.Equal(t, models.StagePlanning, updated.CurrentStage)
}

func TestSetCurrentStageRejectsForeignStage(t *testing.T) {
	store := &fakeStore{farms: []models.Farm{newCropFarm("farmer-1")}}
	svc := newTestService(store, &fakeNotifier{})

	_, err := svc.SetCurrentStage(context.Background(), "farmer-1", models.StageRearing)

	assert.ErrorIs(t, err, ErrInvalidStage)
	assert.Zero(t, store.updateCalls)
}

func TestSetCurrentStagePersistenceFailureLeavesSession(t *testing.T) {
	store := &fakeStore{farms: []models.Farm{newCropFarm("farmer-1")}}
	notifier := &fakeNotifier{}
	svc := newTestService(store, notifier)

	opened, _, err := svc.OpenJourney(context.Background(), "farmer-1")
	require.NoError(t, err)

	store.updateErr = errors.New("write timeout")
	_, err = svc.SetCurrentStage(context.Background(), "farmer-1", models.StageGrowing)

	require.Error(t, err)
	assert.False(t, notifier.last(t).Success)

	cached, open := svc.sessions.Current("farmer-1")
	require.True(t, open)
	assert.Equal(t, opened, cached)
	assert.Equal(t, models.StagePlanning, cached.CurrentStage)
}

func TestLogActivityValidation(t *testing.T) {
	store := &fakeStore{farms: []models.Farm{newCropFarm("farmer-1")}}
	svc := newTestService(store, &fakeNotifier{})

	tests := []struct {
		name  string
		input ActivityInput
	}{
		{"missing date", ActivityInput{Activity: "Weeding"}},
		{"missing activity", ActivityInput{Date: "2026-08-01"}},
		{"missing both", ActivityInput{Description: "only a description"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.LogActivity(context.Background(), "farmer-1", models.StageGrowing, tt.input)
			assert.ErrorIs(t, err, ErrActivityFieldsRequired)
		})
	}

	// Validation fails before any store round-trip.
	assert.Zero(t, store.listCalls)
	assert.Zero(t, store.updateCalls)
}

func TestLogActivityFlipsPendingToInProgress(t *testing.T) {
	store := &fakeStore{farms: []models.Farm{newCropFarm("farmer-1")}}
	notifier := &fakeNotifier{}
	svc := newTestService(store, notifier)

	updated, err := svc.LogActivity(context.Background(), "farmer-1", models.StageGrowing, ActivityInput{
		Date:     "2026-08-01",
		Activity: "Weeding",
	})

	require.NoError(t, err)
	record := updated.StageDetails[models.StageGrowing]
	assert.Equal(t, models.StatusInProgress, record.Status)
	require.Len(t, record.Activities, 1)
	assert.Equal(t, "Weeding", record.Activities[0].Activity)
	assert.True(t, notifier.last(t).Success)
}

func TestLogActivityKeepsCompletedStatus(t *testing.T) {
	farm := newCropFarm("farmer-1")
	record := farm.StageDetails[models.StagePlanting]
	record.Status = models.StatusCompleted
	farm.StageDetails[models.StagePlanting] = record

	store := &fakeStore{farms: []models.Farm{farm}}
	svc := newTestService(store, &fakeNotifier{})

	updated, err := svc.LogActivity(context.Background(), "farmer-1", models.StagePlanting, ActivityInput{
		Date:     "2026-08-02",
		Activity: "Gap filling",
	})

	require.NoError(t, err)
	assert.Equal(t, models.StatusCompleted, updated.StageDetails[models.StagePlanting].Status)
}

func TestLogActivitySequentialEntriesOrderedWithDistinctIDs(t *testing.T) {
	store := &fakeStore{farms: []models.Farm{newCropFarm("farmer-1")}}
	svc := newTestService(store, &fakeNotifier{})
	// Freeze the clock so both entries land on the same millisecond.
	svc.now = func() time.Time { return time.UnixMilli(1756300000000) }

	_, err := svc.LogActivity(context.Background(), "farmer-1", models.StageGrowing, ActivityInput{
		Date: "2026-08-01", Activity: "Weeding",
	})
	require.NoError(t, err)

	updated, err := svc.LogActivity(context.Background(), "farmer-1", models.StageGrowing, ActivityInput{
		Date: "2026-08-03", Activity: "Fertilizer application",
	})
	require.NoError(t, err)

	activities := updated.StageDetails[models.StageGrowing].Activities
	require.Len(t, activities, 2)
	assert.Equal(t, "Weeding", activities[0].Activity)
	assert.Equal(t, "Fertilizer application", activities[1].Activity)
	assert.Equal(t, "1756300000000", activities[0].ID)
	assert.Equal(t, "1756300000001", activities[1].ID)
}

func TestLogActivityFailureDoesNotMutateSessionFarm(t *testing.T) {
	store := &fakeStore{farms: []models.Farm{newCropFarm("farmer-1")}}
	svc := newTestService(store, &fakeNotifier{})

	opened, _, err := svc.OpenJourney(context.Background(), "farmer-1")
	require.NoError(t, err)

	store.updateErr = errors.New("write timeout")
	_, err = svc.LogActivity(context.Background(), "farmer-1", models.StageGrowing, ActivityInput{
		Date: "2026-08-01", Activity: "Weeding",
	})
	require.Error(t, err)

	// Mutation worked on a clone, so the cached farm still has no activity.
	assert.Empty(t, opened.StageDetails[models.StageGrowing].Activities)
	assert.Equal(t, models.StatusPending, opened.StageDetails[models.StageGrowing].Status)
}

func TestLogActivityRecoversMissingStageRecord(t *testing.T) {
	farm := newCropFarm("farmer-1")
	delete(farm.StageDetails, models.StageMaintenance)

	store := &fakeStore{farms: []models.Farm{farm}}
	svc := newTestService(store, &fakeNotifier{})

	updated, err := svc.LogActivity(context.Background(), "farmer-1", models.StageMaintenance, ActivityInput{
		Date: "2026-08-01", Activity: "Fence repair",
	})

	require.NoError(t, err)
	record := updated.StageDetails[models.StageMaintenance]
	assert.Equal(t, models.StatusInProgress, record.Status)
	assert.Len(t, record.Activities, 1)
}

func TestUpdateStageMeta(t *testing.T) {
	store := &fakeStore{farms: []models.Farm{newCropFarm("farmer-1")}}
	svc := newTestService(store, &fakeNotifier{})

	date := "2026-07-15"
	notes := "Land cleared and ploughed."
	status := models.StatusCompleted
	updated, err := svc.UpdateStageMeta(context.Background(), "farmer-1", models.StagePlanning, StageMetaInput{
		Date:   &date,
		Notes:  &notes,
		Status: &status,
	})

	require.NoError(t, err)
	record := updated.StageDetails[models.StagePlanning]
	assert.Equal(t, models.StatusCompleted, record.Status)
	assert.Equal(t, date, record.Date)
	assert.Equal(t, notes, record.Notes)
}

func TestUpdateStageMetaRejectsPendingAfterActivity(t *testing.T) {
	farm := newCropFarm("farmer-1")
	record := farm.StageDetails[models.StageGrowing]
	record.Status = models.StatusInProgress
	record.Activities = []models.ActivityEntry{{ID: "1", Date: "2026-08-01", Activity: "Weeding"}}
	farm.StageDetails[models.StageGrowing] = record

	store := &fakeStore{farms: []models.Farm{farm}}
	svc := newTestService(store, &fakeNotifier{})

	pending := models.StatusPending
	_, err := svc.UpdateStageMeta(context.Background(), "farmer-1", models.StageGrowing, StageMetaInput{Status: &pending})

	assert.ErrorIs(t, err, ErrStatusRegression)
	assert.Zero(t, store.updateCalls)
}

func TestUpdateStageMetaRejectsUnknownStatus(t *testing.T) {
	store := &fakeStore{farms: []models.Farm{newCropFarm("farmer-1")}}
	svc := newTestService(store, &fakeNotifier{})

	bogus := models.StageStatus("done")
	_, err := svc.UpdateStageMeta(context.Background(), "farmer-1", models.StagePlanning, StageMetaInput{Status: &bogus})

	assert.ErrorIs(t, err, ErrInvalidStatus)
}

func TestProvisionFarmCrop(t *testing.T) {
	store := &fakeStore{}
	notifier := &fakeNotifier{}
	svc := newTestService(store, notifier)

	created, err := svc.ProvisionFarm(context.Background(), ProvisionInput{
		FarmerID: "farmer-9",
		Name:     "Ejura Maize Farm",
		Location: "Ashanti Region",
		Crop:     "Maize",
		FarmType: "crop farming",
	})

	require.NoError(t, err)
	assert.Equal(t, models.StagePlanning, created.CurrentStage)
	assert.Equal(t, "verified", created.Status)

	sequence := catalog.StageSequence(models.CategoryCrop)
	require.Len(t, created.StageDetails, len(sequence))
	for _, stage := range sequence {
		record, ok := created.StageDetails[stage]
		require.Truef(t, ok, "missing record for stage %s", stage)
		assert.Equal(t, models.StatusPending, record.Status)
		assert.Empty(t, record.Activities)
	}

	cached, open := svc.sessions.Current("farmer-9")
	assert.True(t, open)
	assert.Equal(t, created, cached)
	assert.True(t, notifier.last(t).Success)
}

func TestProvisionFarmLivestockSequence(t *testing.T) {
	store := &fakeStore{}
	svc := newTestService(store, &fakeNotifier{})

	created, err := svc.ProvisionFarm(context.Background(), ProvisionInput{
		FarmerID: "farmer-9",
		Name:     "Savelugu Goat Farm",
		Location: "Northern Region",
		Crop:     "Goats",
		FarmType: "livestock farming",
	})

	require.NoError(t, err)
	assert.Len(t, created.StageDetails, 8)
	assert.Contains(t, created.StageDetails, models.StageAcquisition)
	assert.Contains(t, created.StageDetails, models.StageRearing)
}

func TestProvisionFarmValidation(t *testing.T) {
	store := &fakeStore{}
	svc := newTestService(store, &fakeNotifier{})

	_, err := svc.ProvisionFarm(context.Background(), ProvisionInput{
		FarmerID: "farmer-9",
		Name:     "Nameless",
		Crop:     "Maize",
	})

	assert.ErrorIs(t, err, ErrFarmFieldsRequired)
	assert.Empty(t, store.created)
}

func TestProvisionFarmStoreFailure(t *testing.T) {
	store := &fakeStore{createErr: errors.New("insert failed")}
	notifier := &fakeNotifier{}
	svc := newTestService(store, notifier)

	_, err := svc.ProvisionFarm(context.Background(), ProvisionInput{
		FarmerID: "farmer-9",
		Name:     "Ejura Maize Farm",
		Location: "Ashanti Region",
		Crop:     "Maize",
	})

	require.Error(t, err)
	assert.False(t, notifier.last(t).Success)

	_, open := svc.sessions.Current("farmer-9")
	assert.False(t, open)
}

func TestMutationWithoutSessionFallsBackToStore(t *testing.T) {
	store := &fakeStore{farms: []models.Farm{newCropFarm("farmer-1")}}
	svc := newTestService(store, &fakeNotifier{})

	updated, err := svc.SetCurrentStage(context.Background(), "farmer-1", models.StageGrowing)

	require.NoError(t, err)
	assert.Equal(t, models.StageGrowing, updated.CurrentStage)
	assert.Equal(t, 1, store.listCalls)
}
