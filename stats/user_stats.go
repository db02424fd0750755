package stats

import (
	"bikeshare/domain/business/counter"
	"bikeshare/domain/entities/dataset"
	"bikeshare/domain/entities/trip"
)

// CategoryCount occurrences of a categorical value
type CategoryCount = counter.Entry[string]

// CategoryCounts frequency table of a categorical field
type CategoryCounts []CategoryCount

// BirthYearSummary earliest, most recent and most common year of birth
type BirthYearSummary struct {
	Earliest   int `json:"earliest"`
	Latest     int `json:"latest"`
	MostCommon int `json:"most_common"`
}

// UserStats user demographics.
// + UserTypes: ordered by descending count, ties keep the order of first appearance
// + Genders: nil when the dataset has no gender column
// + BirthYear: nil when the dataset has no birth year column or no trip of the view has one
type UserStats struct {
	UserTypes CategoryCounts    `json:"user_types"`
	Genders   *CategoryCounts   `json:"genders,omitempty"`
	BirthYear *BirthYearSummary `json:"birth_year,omitempty"`
}

// HasGenders returns true if gender counts were computed
func (us UserStats) HasGenders() bool {
	return us.Genders != nil
}

// UserTally counts user types, genders and birth years. Empty categorical values are not counted,
// genders and birth years only when the dataset schema has their columns.
type UserTally struct {
	schema     dataset.Schema
	userTypes  *counter.Counter[string]
	genders    *counter.Counter[string]
	birthYears *counter.Counter[int]
}

func NewUserTally(schema dataset.Schema) *UserTally {
	return &UserTally{
		schema:     schema,
		userTypes:  counter.NewOrderedCounter[string](),
		genders:    counter.NewOrderedCounter[string](),
		birthYears: counter.NewOrderedCounter[int](),
	}
}

func (ut *UserTally) Add(record *trip.TripRecord) {
	if record.UserType != "" {
		ut.userTypes.UpdateCounter(record.UserType)
	}

	if ut.schema.HasGender && record.Gender != "" {
		ut.genders.UpdateCounter(record.Gender)
	}

	if ut.schema.HasBirthYear && record.HasBirthYear() {
		ut.birthYears.UpdateCounter(*record.BirthYear)
	}
}

func (ut *UserTally) Merge(other *UserTally) {
	ut.userTypes.Merge(other.userTypes)
	ut.genders.Merge(other.genders)
	ut.birthYears.Merge(other.birthYears)
}

func (ut *UserTally) Result() UserStats {
	userStats := UserStats{
		UserTypes: CategoryCounts(ut.userTypes.Ranked()),
	}

	if ut.schema.HasGender {
		genderCounts := CategoryCounts(ut.genders.Ranked())
		userStats.Genders = &genderCounts
	}

	if ut.schema.HasBirthYear {
		userStats.BirthYear = ut.birthYearSummary()
	}

	return userStats
}

// birthYearSummary returns nil when no trip had a valid birth year
func (ut *UserTally) birthYearSummary() *BirthYearSummary {
	mostCommon, _, ok := ut.birthYears.Mode()
	if !ok {
		return nil
	}

	summary := &BirthYearSummary{Earliest: mostCommon, Latest: mostCommon, MostCommon: mostCommon}
	for _, entry := range ut.birthYears.Ranked() {
		summary.Earliest = min(summary.Earliest, entry.Value)
		summary.Latest = max(summary.Latest, entry.Value)
	}
	return summary
}

// ComputeUserStats counts user types and, when the dataset carries them, genders and birth years
func ComputeUserStats(view *dataset.Dataset) UserStats {
	tally := NewUserTally(view.Schema)
	for idx := range view.Records {
		tally.Add(&view.Records[idx])
	}
	return tally.Result()
}
