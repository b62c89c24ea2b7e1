package models

import "strings"

// FarmCategory decides which lifecycle stage sequence and activity schemas
// apply to a farm.
type FarmCategory string

const (
	CategoryCrop      FarmCategory = "crop"
	CategoryLivestock FarmCategory = "livestock"
)

// ParseFarmCategory derives a category from a farmer's declared farm type.
// Unrecognized or empty input falls back to crop.
func ParseFarmCategory(farmType string) FarmCategory {
	if strings.Contains(strings.ToLower(strings.TrimSpace(farmType)), "livestock") {
		return CategoryLivestock
	}
	return CategoryCrop
}

// StageID identifies one phase of a farm's lifecycle. The set and order of
// valid values depend on the farm category.
type StageID string

const (
	StagePlanning    StageID = "planning"
	StagePlanting    StageID = "planting"
	StageGrowing     StageID = "growing"
	StageHarvesting  StageID = "harvesting"
	StageAcquisition StageID = "acquisition"
	StageRearing     StageID = "rearing"
	StageHealth      StageID = "health"
	StageProduction  StageID = "production"
	StageMarketing   StageID = "marketing"
	StageMaintenance StageID = "maintenance"
	StageOther       StageID = "other"
)

// StageStatus tracks how far a single stage has progressed.
type StageStatus string

const (
	StatusPending    StageStatus = "pending"
	StatusInProgress StageStatus = "in-progress"
	StatusCompleted  StageStatus = "completed"
)

// ValidStatus reports whether the value is one of the known stage statuses.
func ValidStatus(s StageStatus) bool {
	switch s {
	case StatusPending, StatusInProgress, StatusCompleted:
		return true
	default:
		return false
	}
}
