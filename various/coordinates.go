package various

import "math"

// Latitude limit of the web mercator projection.
const MaxMercatorLat = 85.05112878

// IsValidLatLon returns true if lat and lon are finite and within the range
// that the web mercator projection can represent.
func IsValidLatLon(lat, lon float64) bool {
	if math.IsNaN(lat) || math.IsNaN(lon) || math.IsInf(lat, 0) || math.IsInf(lon, 0) {
		return false
	}
	return lat >= -MaxMercatorLat && lat <= MaxMercatorLat && lon >= -180 && lon <= 180
}

// IsFinite2 returns true if both coordinates are neither NaN nor infinite.
func IsFinite2(x, y float64) bool {
	return !math.IsNaN(x) && !math.IsNaN(y) && !math.IsInf(x, 0) && !math.IsInf(y, 0)
}
