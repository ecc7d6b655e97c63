package arcade

import "math"

// earthRadiusKm is the spherical Earth approximation used for scoring.
const earthRadiusKm = 6371

// HaversineKm returns the great-circle distance in kilometers between two
// points given in degrees.
func HaversineKm(lat1, lng1, lat2, lng2 float64) float64 {
	dLat := (lat2 - lat1) * math.Pi / 180
	dLng := (lng2 - lng1) * math.Pi / 180
	a := math.Pow(math.Sin(dLat/2), 2) +
		math.Cos(lat1*math.Pi/180)*math.Cos(lat2*math.Pi/180)*math.Pow(math.Sin(dLng/2), 2)
	return 2 * earthRadiusKm * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
}

// PointsForDistance maps a guess distance to its score band. Closer bands
// score more; the function never increases with distance.
func PointsForDistance(km float64) int {
	switch {
	case km < 100:
		return 1000
	case km < 300:
		return 800
	case km < 700:
		return 600
	case km < 1500:
		return 400
	case km < 3000:
		return 200
	case km < 5000:
		return 100
	default:
		return 50
	}
}
