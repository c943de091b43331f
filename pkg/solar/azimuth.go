package solar

import (
	"fmt"
	"strconv"
)

// AzimuthDirection names the compass direction an azimuth in degrees faces.
// Azimuths are not normalized: anything at or past 337.5 is North.
func AzimuthDirection(azimuth float64) string {
	switch {
	case azimuth >= 337.5 || azimuth < 22.5:
		return "North (0°)"
	case azimuth < 67.5:
		return "Northeast (45°)"
	case azimuth < 112.5:
		return "East (90°)"
	case azimuth < 157.5:
		return "Southeast (135°)"
	case azimuth < 202.5:
		return "South (180°)"
	case azimuth < 247.5:
		return "Southwest (225°)"
	case azimuth < 292.5:
		return "West (270°)"
	case azimuth < 337.5:
		return "Northwest (315°)"
	}
	return fmt.Sprintf("Custom (%s°)", strconv.FormatFloat(azimuth, 'g', -1, 64))
}
