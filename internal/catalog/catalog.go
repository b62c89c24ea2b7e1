package catalog

import "github.com/agrilync/farmtrack/internal/domain/models"

// ExtraField keys are drawn from a fixed set so a generic activity entry can
// carry them without per-stage typed records.
const (
	KeyAdditionalField1 = "additionalField1"
	KeyAdditionalField2 = "additionalField2"
)

// ExtraField describes one optional typed input on an activity entry form.
type ExtraField struct {
	Label       string `json:"label"`
	Placeholder string `json:"placeholder"`
	Key         string `json:"key"`
}

// StageSchema is the immutable form definition resolved per (category, stage).
type StageSchema struct {
	ActivityLabel          string       `json:"activityLabel"`
	ActivityPlaceholder    string       `json:"activityPlaceholder"`
	DescriptionPlaceholder string       `json:"descriptionPlaceholder"`
	ResourcesLabel         string       `json:"resourcesLabel"`
	ResourcesPlaceholder   string       `json:"resourcesPlaceholder"`
	ExtraFields            []ExtraField `json:"extraFields"`
}

var cropSequence = []models.StageID{
	models.StagePlanning,
	models.StagePlanting,
	models.StageGrowing,
	models.StageHarvesting,
	models.StageMaintenance,
	models.StageOther,
}

var livestockSequence = []models.StageID{
	models.StagePlanning,
	models.StageAcquisition,
	models.StageRearing,
	models.StageHealth,
	models.StageProduction,
	models.StageMarketing,
	models.StageMaintenance,
	models.StageOther,
}

// StageSequence returns the canonical ordered stage list for a category.
// Sequence order defines display order and the basis for progress computation.
func StageSequence(category models.FarmCategory) []models.StageID {
	var seq []models.StageID
	if category == models.CategoryLivestock {
		seq = livestockSequence
	} else {
		seq = cropSequence
	}
	return append([]models.StageID(nil), seq...)
}

// StageIndex returns the zero-based position of a stage within its category's
// sequence, or -1 when the stage does not belong to the sequence.
func StageIndex(category models.FarmCategory, stage models.StageID) int {
	for i, s := range StageSequence(category) {
		if s == stage {
			return i
		}
	}
	return -1
}

// ValidStage reports whether the stage belongs to the category's sequence.
func ValidStage(category models.FarmCategory, stage models.StageID) bool {
	return StageIndex(category, stage) >= 0
}

// FirstStage is where every newly provisioned farm starts.
func FirstStage(category models.FarmCategory) models.StageID {
	return StageSequence(category)[0]
}

var genericSchema = StageSchema{
	ActivityLabel:          "Activity Type",
	ActivityPlaceholder:    "Describe the activity in detail...",
	DescriptionPlaceholder: "Describe what you did, quantities, methods, observations, etc.",
	ResourcesLabel:         "Resources Used (Optional)",
	ResourcesPlaceholder:   "e.g., 50kg fertilizer, 200L water, 2 workers",
}

var cropSchemas = map[models.StageID]StageSchema{
	models.StagePlanning: {
		ActivityLabel:          "Planning Activity",
		ActivityPlaceholder:    "e.g., Land preparation, Budget planning",
		DescriptionPlaceholder: "Describe the planning work, decisions taken, and next steps...",
		ResourcesLabel:         "Resources Used (Optional)",
		ResourcesPlaceholder:   "e.g., Survey tools, 2 workers",
	},
	models.StagePlanting: {
		ActivityLabel:          "Planting Activity",
		ActivityPlaceholder:    "e.g., Seed sowing, Transplanting",
		DescriptionPlaceholder: "Describe what was planted, spacing, methods, observations...",
		ResourcesLabel:         "Inputs Used",
		ResourcesPlaceholder:   "e.g., 10kg seed, 3 workers",
		ExtraFields: []ExtraField{
			{Label: "Seed Variety", Placeholder: "e.g., Yellow Maize (Obatanpa)", Key: KeyAdditionalField1},
			{Label: "Area Planted", Placeholder: "e.g., 2.5 acres", Key: KeyAdditionalField2},
		},
	},
	models.StageGrowing: {
		ActivityLabel:          "Growth Activity",
		ActivityPlaceholder:    "e.g., Fertilizer application, Irrigation",
		DescriptionPlaceholder: "Describe the field work, crop condition, and any issues spotted...",
		ResourcesLabel:         "Inputs Used",
		ResourcesPlaceholder:   "e.g., 50kg fertilizer, 200L water",
		ExtraFields: []ExtraField{
			{Label: "Input Applied", Placeholder: "e.g., NPK 15-15-15", Key: KeyAdditionalField1},
			{Label: "Application Rate", Placeholder: "e.g., 50kg per acre", Key: KeyAdditionalField2},
		},
	},
	models.StageHarvesting: {
		ActivityLabel:          "Harvest Activity",
		ActivityPlaceholder:    "e.g., First harvest, Sorting",
		DescriptionPlaceholder: "Describe the harvest, quality, and post-harvest handling...",
		ResourcesLabel:         "Resources Used (Optional)",
		ResourcesPlaceholder:   "e.g., 4 workers, drying tarpaulins",
		ExtraFields: []ExtraField{
			{Label: "Quantity Harvested", Placeholder: "e.g., 20 bags", Key: KeyAdditionalField1},
		},
	},
	models.StageMaintenance: {
		ActivityLabel:          "Maintenance Activity",
		ActivityPlaceholder:    "e.g., Equipment maintenance, Fence repair",
		DescriptionPlaceholder: "Describe the maintenance work carried out...",
		ResourcesLabel:         "Resources Used (Optional)",
		ResourcesPlaceholder:   "e.g., Spare parts, 1 technician",
	},
	models.StageOther: genericSchema,
}

var livestockSchemas = map[models.StageID]StageSchema{
	models.StagePlanning: {
		ActivityLabel:          "Planning Activity",
		ActivityPlaceholder:    "e.g., Housing design, Budget planning",
		DescriptionPlaceholder: "Describe the planning work, decisions taken, and next steps...",
		ResourcesLabel:         "Resources Used (Optional)",
		ResourcesPlaceholder:   "e.g., Building materials, 2 workers",
	},
	models.StageAcquisition: {
		ActivityLabel:          "Acquisition Activity",
		ActivityPlaceholder:    "e.g., Purchase of day-old chicks",
		DescriptionPlaceholder: "Describe the stock acquired, source, and transport conditions...",
		ResourcesLabel:         "Resources Used (Optional)",
		ResourcesPlaceholder:   "e.g., Transport crates, brooder setup",
		ExtraFields: []ExtraField{
			{Label: "Breed", Placeholder: "e.g., Broiler (Cobb 500)", Key: KeyAdditionalField1},
			{Label: "Number Acquired", Placeholder: "e.g., 200 birds", Key: KeyAdditionalField2},
		},
	},
	models.StageRearing: {
		ActivityLabel:          "Rearing Activity",
		ActivityPlaceholder:    "e.g., Feeding, Weighing",
		DescriptionPlaceholder: "Describe feeding, growth observations, and husbandry work...",
		ResourcesLabel:         "Inputs Used",
		ResourcesPlaceholder:   "e.g., 6 bags starter feed",
		ExtraFields: []ExtraField{
			{Label: "Feed Type", Placeholder: "e.g., Starter mash", Key: KeyAdditionalField1},
		},
	},
	models.StageHealth: {
		ActivityLabel:          "Health Activity",
		ActivityPlaceholder:    "e.g., Vaccination, Deworming",
		DescriptionPlaceholder: "Describe the treatment, symptoms observed, and outcomes...",
		ResourcesLabel:         "Resources Used (Optional)",
		ResourcesPlaceholder:   "e.g., Vaccines, vet visit",
		ExtraFields: []ExtraField{
			{Label: "Treatment / Vaccine", Placeholder: "e.g., Newcastle (Lasota)", Key: KeyAdditionalField1},
			{Label: "Animals Treated", Placeholder: "e.g., 195 birds", Key: KeyAdditionalField2},
		},
	},
	models.StageProduction: {
		ActivityLabel:          "Production Activity",
		ActivityPlaceholder:    "e.g., Egg collection, Milking",
		DescriptionPlaceholder: "Describe the production output and handling...",
		ResourcesLabel:         "Resources Used (Optional)",
		ResourcesPlaceholder:   "e.g., Crates, cold storage",
		ExtraFields: []ExtraField{
			{Label: "Output Quantity", Placeholder: "e.g., 4 crates", Key: KeyAdditionalField1},
		},
	},
	models.StageMarketing: {
		ActivityLabel:          "Marketing Activity",
		ActivityPlaceholder:    "e.g., Market day sales, Buyer negotiation",
		DescriptionPlaceholder: "Describe the sales activity, buyers, and prices agreed...",
		ResourcesLabel:         "Resources Used (Optional)",
		ResourcesPlaceholder:   "e.g., Transport to market",
		ExtraFields: []ExtraField{
			{Label: "Quantity Sold", Placeholder: "e.g., 50 birds", Key: KeyAdditionalField1},
			{Label: "Revenue (GHS)", Placeholder: "e.g., 4500", Key: KeyAdditionalField2},
		},
	},
	models.StageMaintenance: {
		ActivityLabel:          "Maintenance Activity",
		ActivityPlaceholder:    "e.g., Pen repairs, Equipment cleaning",
		DescriptionPlaceholder: "Describe the maintenance work carried out...",
		ResourcesLabel:         "Resources Used (Optional)",
		ResourcesPlaceholder:   "e.g., Disinfectant, spare parts",
	},
	models.StageOther: genericSchema,
}

// Resolve returns the activity-entry form schema for a (category, stage)
// pair. It is total: unknown pairs resolve to the generic fallback schema.
func Resolve(category models.FarmCategory, stage models.StageID) StageSchema {
	var table map[models.StageID]StageSchema
	if category == models.CategoryLivestock {
		table = livestockSchemas
	} else {
		table = cropSchemas
	}

	schema, ok := table[stage]
	if !ok {
		schema = genericSchema
	}
	schema.ExtraFields = append([]ExtraField(nil), schema.ExtraFields...)
	return schema
}
