package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/agrilync/farmtrack/internal/catalog"
	"github.com/agrilync/farmtrack/internal/domain/models"
	"github.com/agrilync/farmtrack/internal/geo"
	"github.com/agrilync/farmtrack/internal/service/journey"
)

// JourneyHandler exposes the lifecycle engine over HTTP.
type JourneyHandler struct {
	svc    *journey.Service
	logger *zap.Logger
}

// NewJourneyHandler constructs the HTTP handler adapter.
func NewJourneyHandler(svc *journey.Service, logger *zap.Logger) *JourneyHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &JourneyHandler{svc: svc, logger: logger}
}

// journeyView is the payload returned for a loaded farm journey.
type journeyView struct {
	Farm     *models.Farm     `json:"farm"`
	Progress float64          `json:"progress"`
	Stages   []models.StageID `json:"stages"`
}

func (h *JourneyHandler) view(farm *models.Farm) journeyView {
	return journeyView{
		Farm:     farm,
		Progress: h.svc.ProgressFraction(farm),
		Stages:   catalog.StageSequence(farm.Category()),
	}
}

// GetJourney loads the farm belonging to a farmer and opens a session. A
// farmer without a farm is answered with 404 and provisioned=false; that is
// the signal to register a farm, not a failure.
func (h *JourneyHandler) GetJourney(c *gin.Context) {
	farmerID := c.Param("farmerID")

	farm, found, err := h.svc.OpenJourney(c.Request.Context(), farmerID)
	if err != nil {
		h.logger.Error("failed to load farm journey", zap.String("farmer_id", farmerID), zap.Error(err))
		c.JSON(http.StatusBadGateway, gin.H{"error": "could not load farm details"})
		return
	}

	if !found {
		c.JSON(http.StatusNotFound, gin.H{"provisioned": false})
		return
	}

	c.JSON(http.StatusOK, h.view(farm))
}

// CloseJourney tears down a farmer's session.
func (h *JourneyHandler) CloseJourney(c *gin.Context) {
	h.svc.CloseJourney(c.Param("farmerID"))
	c.Status(http.StatusNoContent)
}

// ProvisionFarm registers a farm for a farmer who does not have one yet.
func (h *JourneyHandler) ProvisionFarm(c *gin.Context) {
	var input journey.ProvisionInput
	if err := c.ShouldBindJSON(&input); err != nil {
		h.logger.Warn("invalid provision payload", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	input.FarmerID = c.Param("farmerID")

	farm, err := h.svc.ProvisionFarm(c.Request.Context(), input)
	if err != nil {
		h.respondError(c, err, "failed to register farm")
		return
	}

	c.JSON(http.StatusCreated, h.view(farm))
}

type setStageRequest struct {
	Stage models.StageID `json:"stage" binding:"required"`
}

// SetStage updates the farm's current lifecycle stage.
func (h *JourneyHandler) SetStage(c *gin.Context) {
	var req setStageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid stage payload", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	farm, err := h.svc.SetCurrentStage(c.Request.Context(), c.Param("farmerID"), req.Stage)
	if err != nil {
		h.respondError(c, err, "failed to update farm stage")
		return
	}

	c.JSON(http.StatusOK, h.view(farm))
}

// LogActivity appends an activity entry to a stage's log.
func (h *JourneyHandler) LogActivity(c *gin.Context) {
	var input journey.ActivityInput
	if err := c.ShouldBindJSON(&input); err != nil {
		h.logger.Warn("invalid activity payload", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	stage := models.StageID(c.Param("stage"))
	farm, err := h.svc.LogActivity(c.Request.Context(), c.Param("farmerID"), stage, input)
	if err != nil {
		h.respondError(c, err, "failed to save activity")
		return
	}

	c.JSON(http.StatusCreated, h.view(farm))
}

// UpdateStageMeta edits a stage's date, notes, or status.
func (h *JourneyHandler) UpdateStageMeta(c *gin.Context) {
	var meta journey.StageMetaInput
	if err := c.ShouldBindJSON(&meta); err != nil {
		h.logger.Warn("invalid stage meta payload", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	stage := models.StageID(c.Param("stage"))
	farm, err := h.svc.UpdateStageMeta(c.Request.Context(), c.Param("farmerID"), stage, meta)
	if err != nil {
		h.respondError(c, err, "failed to update stage details")
		return
	}

	c.JSON(http.StatusOK, h.view(farm))
}

// GetStages returns the canonical stage sequence for a farm category.
func (h *JourneyHandler) GetStages(c *gin.Context) {
	category := models.ParseFarmCategory(c.Param("category"))
	c.JSON(http.StatusOK, gin.H{
		"category": category,
		"stages":   catalog.StageSequence(category),
	})
}

// GetStageSchema resolves the activity-entry form schema for a stage. The
// resolver is total, so this always answers 200.
func (h *JourneyHandler) GetStageSchema(c *gin.Context) {
	category := models.ParseFarmCategory(c.Param("category"))
	stage := models.StageID(c.Param("stage"))
	c.JSON(http.StatusOK, catalog.Resolve(category, stage))
}

// GetCommunities lists the communities for a free-text region name.
func (h *JourneyHandler) GetCommunities(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"communities": geo.CommunitiesForRegion(c.Query("region")),
	})
}

// GetLanguages lists the languages spoken in a free-text region.
func (h *JourneyHandler) GetLanguages(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"languages": geo.LanguagesForRegion(c.Query("region")),
	})
}

// respondError maps engine errors onto HTTP statuses: validation errors are
// 400, a missing farm is 404, anything else is a store failure.
func (h *JourneyHandler) respondError(c *gin.Context, err error, fallback string) {
	switch {
	case errors.Is(err, journey.ErrActivityFieldsRequired),
		errors.Is(err, journey.ErrFarmFieldsRequired),
		errors.Is(err, journey.ErrInvalidStage),
		errors.Is(err, journey.ErrInvalidStatus),
		errors.Is(err, journey.ErrStatusRegression):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, journey.ErrNoFarm):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	default:
		h.logger.Error(fallback, zap.Error(err))
		c.JSON(http.StatusBadGateway, gin.H{"error": fallback})
	}
}
