package agrilync

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/agrilync/farmtrack/internal/config"
	"github.com/agrilync/farmtrack/internal/domain/models"
)

// Client exposes the platform farm API operations used by the engine.
type Client interface {
	ListFarms(ctx context.Context) ([]models.Farm, error)
	UpdateFarm(ctx context.Context, farmID string, fields map[string]any) (*models.Farm, error)
	CreateFarm(ctx context.Context, fields map[string]any) (*models.Farm, error)
}

// APIClient is a resty-backed implementation of Client.
type APIClient struct {
	httpClient *resty.Client
}

// NewClient builds a farm API client using the provided configuration values.
func NewClient(cfg config.FarmAPIConfig) *APIClient {
	restyClient := resty.New()
	restyClient.
		SetBaseURL(strings.TrimSuffix(cfg.BaseURL, "/")).
		SetHeader("Content-Type", "application/json").
		SetTimeout(15 * time.Second)

	if cfg.Token != "" {
		restyClient.SetHeader("Authorization", fmt.Sprintf("Bearer %s", cfg.Token))
	}

	return &APIClient{httpClient: restyClient}
}

// apiError represents the platform API error payload.
type apiError struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

func (e *apiError) text() string {
	if e == nil {
		return ""
	}
	if e.Message != "" {
		return e.Message
	}
	return e.Error
}

// ListFarms fetches every farm record visible to the caller.
func (c *APIClient) ListFarms(ctx context.Context) ([]models.Farm, error) {
	var farms []models.Farm
	apiErr := new(apiError)

	resp, err := c.httpClient.R().
		SetContext(ctx).
		SetResult(&farms).
		SetError(apiErr).
		Get("/farms")
	if err != nil {
		return nil, fmt.Errorf("list farms: %w", err)
	}

	if resp.StatusCode() >= http.StatusBadRequest {
		return nil, fmt.Errorf("farm api error: code=%d, message=%s", resp.StatusCode(), apiErr.text())
	}

	return farms, nil
}

// UpdateFarm submits a partial update and returns the full updated farm.
func (c *APIClient) UpdateFarm(ctx context.Context, farmID string, fields map[string]any) (*models.Farm, error) {
	farm := new(models.Farm)
	apiErr := new(apiError)

	resp, err := c.httpClient.R().
		SetContext(ctx).
		SetBody(fields).
		SetResult(farm).
		SetError(apiErr).
		Put(fmt.Sprintf("/farms/%s", farmID))
	if err != nil {
		return nil, fmt.Errorf("update farm %s: %w", farmID, err)
	}

	if resp.StatusCode() >= http.StatusBadRequest {
		return nil, fmt.Errorf("farm api error: code=%d, message=%s", resp.StatusCode(), apiErr.text())
	}

	return farm, nil
}

// CreateFarm registers a new farm and returns the stored representation,
// including the identifier assigned by the platform.
func (c *APIClient) CreateFarm(ctx context.Context, fields map[string]any) (*models.Farm, error) {
	farm := new(models.Farm)
	apiErr := new(apiError)

	resp, err := c.httpClient.R().
		SetContext(ctx).
		SetBody(fields).
		SetResult(farm).
		SetError(apiErr).
		Post("/farms")
	if err != nil {
		return nil, fmt.Errorf("create farm: %w", err)
	}

	if resp.StatusCode() >= http.StatusBadRequest {
		return nil, fmt.Errorf("farm api error: code=%d, message=%s", resp.StatusCode(), apiErr.text())
	}

	return farm, nil
}
