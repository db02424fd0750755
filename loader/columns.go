package loader

// Columns names of the columns to read from a trips file
type Columns struct {
	StartTime    string `yaml:"start_time"`
	EndTime      string `yaml:"end_time"`
	StartStation string `yaml:"start_station"`
	EndStation   string `yaml:"end_station"`
	Duration     string `yaml:"duration"`
	UserType     string `yaml:"user_type"`
	Gender       string `yaml:"gender"`
	BirthYear    string `yaml:"birth_year"`
}

// DefaultColumns returns the column names used by the bikeshare datasets
func DefaultColumns() Columns {
	return Columns{
		StartTime:    "Start Time",
		EndTime:      "End Time",
		StartStation: "Start Station",
		EndStation:   "End Station",
		Duration:     "Trip Duration",
		UserType:     "User Type",
		Gender:       "Gender",
		BirthYear:    "Birth Year",
	}
}

// withDefaults fills the empty names with the default ones
func (c Columns) withDefaults() Columns {
	defaults := DefaultColumns()
	fill := func(value *string, defaultValue string) {
		if *value == "" {
			*value = defaultValue
		}
	}
	fill(&c.StartTime, defaults.StartTime)
	fill(&c.EndTime, defaults.EndTime)
	fill(&c.StartStation, defaults.StartStation)
	fill(&c.EndStation, defaults.EndStation)
	fill(&c.Duration, defaults.Duration)
	fill(&c.UserType, defaults.UserType)
	fill(&c.Gender, defaults.Gender)
	fill(&c.BirthYear, defaults.BirthYear)
	return c
}

// columnIndexes position of each column in a row. Optional columns are -1 when absent
type columnIndexes struct {
	StartTime    int
	EndTime      int
	StartStation int
	EndStation   int
	Duration     int
	UserType     int
	Gender       int
	BirthYear    int
}
