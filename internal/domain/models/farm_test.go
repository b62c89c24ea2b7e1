package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFarmCategory(t *testing.T) {
	tests := []struct {
		farmType string
		want     FarmCategory
	}{
		{"crop farming", CategoryCrop},
		{"Livestock Farming", CategoryLivestock},
		{"  LIVESTOCK  ", CategoryLivestock},
		{"mixed livestock and crop", CategoryLivestock},
		{"poultry", CategoryCrop},
		{"", CategoryCrop},
	}

	for _, tt := range tests {
		assert.Equalf(t, tt.want, ParseFarmCategory(tt.farmType), "farmType=%q", tt.farmType)
	}
}

func TestFarmerRefUnmarshalJSON(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{"plain id", `"farmer-42"`, "farmer-42"},
		{"nested mongo id", `{"_id": "farmer-42", "name": "Ama"}`, "farmer-42"},
		{"nested plain id", `{"id": "farmer-42"}`, "farmer-42"},
		{"mongo id wins over id", `{"_id": "mongo-1", "id": "plain-1"}`, "mongo-1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var ref FarmerRef
			require.NoError(t, json.Unmarshal([]byte(tt.raw), &ref))
			assert.Equal(t, tt.want, ref.ID)
		})
	}
}

func TestFarmerRefUnmarshalJSONRejectsOtherShapes(t *testing.T) {
	var ref FarmerRef
	assert.Error(t, json.Unmarshal([]byte(`[1, 2]`), &ref))
}

func TestFarmerRefMarshalJSON(t *testing.T) {
	data, err := json.Marshal(FarmerRef{ID: "farmer-42"})
	require.NoError(t, err)
	assert.JSONEq(t, `"farmer-42"`, string(data))
}

func TestFarmerRefMatches(t *testing.T) {
	ref := FarmerRef{ID: "farmer-42"}

	assert.True(t, ref.Matches("farmer-42"))
	assert.False(t, ref.Matches("farmer-7"))
	assert.False(t, ref.Matches(""))
	assert.False(t, FarmerRef{}.Matches(""))
}

func TestStageDetailsCloneIsDeep(t *testing.T) {
	original := StageDetails{
		StageGrowing: {
			Status: StatusInProgress,
			Activities: []ActivityEntry{
				{ID: "1", Date: "2026-08-01", Activity: "Weeding", Media: []MediaRef{{Type: MediaImage, URL: "u", Name: "n"}}},
			},
		},
	}

	clone := original.Clone()
	record := clone[StageGrowing]
	record.Status = StatusCompleted
	record.Activities[0].Activity = "mutated"
	record.Activities[0].Media[0].URL = "mutated"
	record.Activities = append(record.Activities, ActivityEntry{ID: "2"})
	clone[StageGrowing] = record

	got := original[StageGrowing]
	assert.Equal(t, StatusInProgress, got.Status)
	require.Len(t, got.Activities, 1)
	assert.Equal(t, "Weeding", got.Activities[0].Activity)
	assert.Equal(t, "u", got.Activities[0].Media[0].URL)
}

func TestStageDetailsCloneNil(t *testing.T) {
	var details StageDetails
	clone := details.Clone()
	require.NotNil(t, clone)
	assert.Empty(t, clone)
}
