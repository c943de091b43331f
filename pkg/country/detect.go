package country

type box struct {
	code           string
	minLat, maxLat float64
	minLng, maxLng float64
}

func (b box) contains(lat, lng float64) bool {
	return lat > b.minLat && lat < b.maxLat && lng > b.minLng && lng < b.maxLng
}

// boxes overlap, the first match wins
var boxes = []box{
	{"AU", -45, -10, 110, 155},
	{"PG", -12, 1, 140, 155},
	{"JP", 30, 46, 129, 146},
	{"KR", 33, 39, 124, 132},
	{"CN", 18, 54, 73, 135},
	{"IN", 6, 36, 68, 98},
	{"GB", 49, 59, -8, 2},
	{"DE", 47, 55, 5, 16},
	{"FR", 41, 51, -5, 10},
	{"IT", 36, 48, 6, 19},
	{"ES", 36, 44, -10, 4},
	{"CA", 41, 84, -141, -52},
	{"BR", -34, 6, -74, -34},
	{"ZA", -35, -22, 16, 33},
}

// Detect returns the country code for a coordinate using rough bounding
// boxes. Coordinates outside every box are DefaultCode. All bounds are
// exclusive.
func Detect(lat, lng float64) string {
	for _, b := range boxes {
		if b.contains(lat, lng) {
			return b.code
		}
	}
	return DefaultCode
}
