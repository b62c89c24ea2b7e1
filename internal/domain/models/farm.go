package models

import (
	"encoding/json"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/bsontype"
	"go.mongodb.org/mongo-driver/x/bsonx/bsoncore"
)

// MediaType distinguishes attachment kinds on an activity entry.
type MediaType string

const (
	MediaImage MediaType = "image"
	MediaVideo MediaType = "video"
)

// MediaRef is an opaque attachment descriptor. Encoding and storage of the
// underlying media belong to the media-handling collaborator.
type MediaRef struct {
	Type MediaType `json:"type" bson:"type"`
	URL  string    `json:"url" bson:"url"`
	Name string    `json:"name" bson:"name"`
}

// ActivityEntry is one logged unit of work within a stage. Activity and Date
// are required for an entry to be persisted; everything else may be empty.
type ActivityEntry struct {
	ID               string     `json:"id" bson:"id"`
	Date             string     `json:"date" bson:"date"`
	Activity         string     `json:"activity" bson:"activity"`
	Description      string     `json:"description" bson:"description"`
	Resources        string     `json:"resources" bson:"resources"`
	AdditionalField1 string     `json:"additionalField1,omitempty" bson:"additionalField1,omitempty"`
	AdditionalField2 string     `json:"additionalField2,omitempty" bson:"additionalField2,omitempty"`
	Media            []MediaRef `json:"media" bson:"media"`
}

// StageRecord is the per-stage bucket on a farm: status, metadata, and the
// activity log in insertion order.
type StageRecord struct {
	Status     StageStatus     `json:"status" bson:"status"`
	Date       string          `json:"date" bson:"date"`
	Notes      string          `json:"notes" bson:"notes"`
	Activities []ActivityEntry `json:"activities" bson:"activities"`
}

// StageDetails maps every stage of the farm's category to its record.
type StageDetails map[StageID]StageRecord

// Clone returns a deep copy. Mutating operations always work on a clone so a
// concurrent reader never observes a half-applied stage map.
func (sd StageDetails) Clone() StageDetails {
	if sd == nil {
		return StageDetails{}
	}

	out := make(StageDetails, len(sd))
	for stage, record := range sd {
		copied := record
		copied.Activities = make([]ActivityEntry, len(record.Activities))
		for i, entry := range record.Activities {
			entryCopy := entry
			entryCopy.Media = append([]MediaRef(nil), entry.Media...)
			copied.Activities[i] = entryCopy
		}
		out[stage] = copied
	}
	return out
}

// FarmerRef is the owning farmer reference embedded in a farm record. The
// platform API stores it either as a plain id string or as a nested farmer
// object, so decoding accepts both shapes. Encoding always emits the plain id.
type FarmerRef struct {
	ID string
}

// Matches reports whether the reference points at the given farmer id.
func (r FarmerRef) Matches(farmerID string) bool {
	return farmerID != "" && r.ID == farmerID
}

// MarshalJSON emits the plain farmer id.
func (r FarmerRef) MarshalJSON() ([]byte, error) {
	return json.Marshal(r.ID)
}

// UnmarshalJSON accepts either "abc123" or {"_id": "abc123", ...}.
func (r *FarmerRef) UnmarshalJSON(data []byte) error {
	var plain string
	if err := json.Unmarshal(data, &plain); err == nil {
		r.ID = plain
		return nil
	}

	var nested struct {
		MongoID string `json:"_id"`
		ID      string `json:"id"`
	}
	if err := json.Unmarshal(data, &nested); err != nil {
		return fmt.Errorf("farmer reference must be an id string or an object: %w", err)
	}

	if nested.MongoID != "" {
		r.ID = nested.MongoID
	} else {
		r.ID = nested.ID
	}
	return nil
}

// MarshalBSONValue emits the plain farmer id.
func (r FarmerRef) MarshalBSONValue() (bsontype.Type, []byte, error) {
	return bson.MarshalValue(r.ID)
}

// UnmarshalBSONValue accepts a string id or an embedded farmer document.
func (r *FarmerRef) UnmarshalBSONValue(t bsontype.Type, data []byte) error {
	switch t {
	case bson.TypeString:
		value, _, ok := bsoncore.ReadString(data)
		if !ok {
			return fmt.Errorf("farmer reference: malformed bson string")
		}
		r.ID = value
		return nil
	case bson.TypeEmbeddedDocument:
		var nested struct {
			MongoID string `bson:"_id"`
			ID      string `bson:"id"`
		}
		if err := bson.Unmarshal(data, &nested); err != nil {
			return fmt.Errorf("farmer reference: %w", err)
		}
		if nested.MongoID != "" {
			r.ID = nested.MongoID
		} else {
			r.ID = nested.ID
		}
		return nil
	case bson.TypeNull:
		r.ID = ""
		return nil
	default:
		return fmt.Errorf("farmer reference: unsupported bson type %s", t)
	}
}

// Farm is the aggregate root for lifecycle tracking. StageDetails holds
// exactly one record per stage of the farm's category, created at
// provisioning time and never removed.
type Farm struct {
	ID           string       `json:"_id" bson:"_id"`
	Name         string       `json:"name" bson:"name"`
	Location     string       `json:"location" bson:"location"`
	Crop         string       `json:"crop" bson:"crop"`
	FarmType     string       `json:"farmType,omitempty" bson:"farmType,omitempty"`
	Status       string       `json:"status,omitempty" bson:"status,omitempty"`
	Farmer       FarmerRef    `json:"farmer" bson:"farmer"`
	CurrentStage StageID      `json:"currentStage" bson:"currentStage"`
	StageDetails StageDetails `json:"stageDetails" bson:"stageDetails"`
}

// Category resolves the farm's lifecycle category from the declared farm type.
func (f Farm) Category() FarmCategory {
	return ParseFarmCategory(f.FarmType)
}
