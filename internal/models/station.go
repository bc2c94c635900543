package models

import "strconv"

// StationCount is the number of monitoring stations in the network
const StationCount = 22

// Stations returns the fixed set of monitoring station identifiers ("1".."22")
func Stations() []string {
	ids := make([]string, 0, StationCount)
	for i := 1; i <= StationCount; i++ {
		ids = append(ids, strconv.Itoa(i))
	}
	return ids
}

// IsValidStation reports whether id names one of the known monitoring stations
func IsValidStation(id string) bool {
	n, err := strconv.Atoi(id)
	if err != nil {
		return false
	}
	return n >= 1 && n <= StationCount && id == strconv.Itoa(n)
}
