package stats

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bikeshare/domain/entities/dataset"
)

func TestComputeUserStatsWithoutGenderColumn(t *testing.T) {
	view := newView(dataset.Schema{},
		newTrip(at(time.January, 2, 8), withUser("Subscriber", "")),
		newTrip(at(time.January, 2, 8), withUser("Customer", "")),
		newTrip(at(time.January, 2, 8), withUser("Customer", "")),
	)

	userStats := ComputeUserStats(view)
	assert.Equal(t, CategoryCounts{{Value: "Customer", Count: 2}, {Value: "Subscriber", Count: 1}}, userStats.UserTypes)
	assert.False(t, userStats.HasGenders())
	assert.Nil(t, userStats.Genders)
	assert.Nil(t, userStats.BirthYear)

	encoded, err := json.Marshal(userStats)
	require.NoError(t, err)
	assert.NotContains(t, string(encoded), "genders")
	assert.NotContains(t, string(encoded), "birth_year")
}

func TestComputeUserStatsGenderColumnOnEmptyView(t *testing.T) {
	userStats := ComputeUserStats(newView(dataset.Schema{HasGender: true}))

	require.True(t, userStats.HasGenders())
	assert.Empty(t, *userStats.Genders)
	assert.Empty(t, userStats.UserTypes)
}

func TestComputeUserStatsRankingTiesKeepFirstAppearance(t *testing.T) {
	view := newView(dataset.Schema{HasGender: true},
		newTrip(at(time.January, 2, 8), withUser("Subscriber", "Male")),
		newTrip(at(time.January, 2, 8), withUser("Customer", "")),
		newTrip(at(time.January, 2, 8), withUser("Customer", "Female")),
		newTrip(at(time.January, 2, 8), withUser("Subscriber", "Female")),
		newTrip(at(time.January, 2, 8), withUser("Dependent", "Male")),
	)

	userStats := ComputeUserStats(view)
	assert.Equal(t, CategoryCounts{
		{Value: "Subscriber", Count: 2},
		{Value: "Customer", Count: 2},
		{Value: "Dependent", Count: 1},
	}, userStats.UserTypes)
	require.NotNil(t, userStats.Genders)
	assert.Equal(t, CategoryCounts{{Value: "Male", Count: 2}, {Value: "Female", Count: 2}}, *userStats.Genders)
}

func TestComputeUserStatsBirthYears(t *testing.T) {
	view := newView(dataset.Schema{HasGender: true, HasBirthYear: true},
		newTrip(at(time.January, 2, 8), withBirthYear(1990)),
		newTrip(at(time.January, 2, 8), withBirthYear(1985)),
		newTrip(at(time.January, 2, 8)),
		newTrip(at(time.January, 2, 8), withBirthYear(1990)),
		newTrip(at(time.January, 2, 8), withBirthYear(2001)),
		newTrip(at(time.January, 2, 8), withBirthYear(1985)),
	)

	userStats := ComputeUserStats(view)
	require.NotNil(t, userStats.BirthYear)
	assert.Equal(t, BirthYearSummary{Earliest: 1985, Latest: 2001, MostCommon: 1985}, *userStats.BirthYear)
	// trips without birth year still count as users
	assert.Equal(t, CategoryCounts{{Value: "Subscriber", Count: 6}}, userStats.UserTypes)
}

func TestComputeUserStatsBirthYearColumnWithoutValues(t *testing.T) {
	view := newView(dataset.Schema{HasBirthYear: true}, newTrip(at(time.January, 2, 8)))

	assert.Nil(t, ComputeUserStats(view).BirthYear)
}
