package station

// StationData struct that contains the coordinates of a station
type StationData struct {
	City      string  `json:"city"`
	Name      string  `json:"name"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// Catalog indexes stations by name
type Catalog map[string]StationData

// GetCoordinates returns latitude and longitude of the station and whether the station exists
func (c Catalog) GetCoordinates(name string) (float64, float64, bool) {
	stationData, ok := c[name]
	if !ok {
		return 0, 0, false
	}
	return stationData.Latitude, stationData.Longitude, true
}
