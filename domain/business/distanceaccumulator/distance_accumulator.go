package distanceaccumulator

import (
	"fmt"

	dataErrors "bikeshare/domain/errors"
)

// DistanceAccumulator struct that collects the distance traveled by trips
// + Counter: counts the amount of trips measured
// + TotalDistance: sum of the distances traveled, in kilometers
type DistanceAccumulator struct {
	Counter       int     `json:"counter"`
	TotalDistance float64 `json:"total_distance"`
}

func NewDistanceAccumulator() *DistanceAccumulator {
	return &DistanceAccumulator{}
}

func (da *DistanceAccumulator) UpdateAccumulator(newDistance float64) {
	da.Counter += 1
	da.TotalDistance += newDistance
}

func (da *DistanceAccumulator) Merge(distanceAccumulator2 *DistanceAccumulator) *DistanceAccumulator {
	return &DistanceAccumulator{
		Counter:       da.Counter + distanceAccumulator2.Counter,
		TotalDistance: da.TotalDistance + distanceAccumulator2.TotalDistance,
	}
}

func (da *DistanceAccumulator) GetAverageDistance() (float64, error) {
	if da.Counter == 0 {
		return 0, fmt.Errorf("%w: cannot get average distance, counter is zero", dataErrors.ErrEmptyDataset)
	}
	return da.TotalDistance / float64(da.Counter), nil
}
