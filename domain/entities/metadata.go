package entities

// Metadata this struct contains extra information about a computed result
// + City: city which belongs the data
// + Month: month filter applied to the data ("all" when none)
// + Day: day filter applied to the data ("all" when none)
// + Stage: component that built the result
type Metadata struct {
	City  string `json:"city"`
	Month string `json:"month"`
	Day   string `json:"day"`
	Stage string `json:"stage"`
}

func NewMetadata(city string, month string, day string, stage string) Metadata {
	return Metadata{
		City:  city,
		Month: month,
		Day:   day,
		Stage: stage,
	}
}

func (m Metadata) GetCity() string {
	return m.City
}

func (m Metadata) GetMonth() string {
	return m.Month
}

func (m Metadata) GetDay() string {
	return m.Day
}
