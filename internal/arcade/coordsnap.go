package arcade

import (
	"errors"
	"math"
	"math/rand"
)

const coordSnapRounds = 10

// City is a Coord Snap target.
type City struct {
	Name    string  `json:"name"`
	Country string  `json:"country"`
	Lat     float64 `json:"lat"`
	Lng     float64 `json:"lng"`
}

var worldCities = []City{
	{Name: "Tokyo", Country: "Japan", Lat: 35.68, Lng: 139.69},
	{Name: "New York", Country: "USA", Lat: 40.71, Lng: -74.01},
	{Name: "London", Country: "UK", Lat: 51.51, Lng: -0.13},
	{Name: "Sydney", Country: "Australia", Lat: -33.87, Lng: 151.21},
	{Name: "Cairo", Country: "Egypt", Lat: 30.04, Lng: 31.24},
	{Name: "Mumbai", Country: "India", Lat: 19.08, Lng: 72.88},
	{Name: "Sao Paulo", Country: "Brazil", Lat: -23.55, Lng: -46.63},
	{Name: "Moscow", Country: "Russia", Lat: 55.76, Lng: 37.62},
	{Name: "Lagos", Country: "Nigeria", Lat: 6.52, Lng: 3.38},
	{Name: "Beijing", Country: "China", Lat: 39.90, Lng: 116.41},
	{Name: "Buenos Aires", Country: "Argentina", Lat: -34.60, Lng: -58.38},
	{Name: "Istanbul", Country: "Turkey", Lat: 41.01, Lng: 28.98},
	{Name: "Mexico City", Country: "Mexico", Lat: 19.43, Lng: -99.13},
	{Name: "Nairobi", Country: "Kenya", Lat: -1.29, Lng: 36.82},
	{Name: "Paris", Country: "France", Lat: 48.86, Lng: 2.35},
	{Name: "Jakarta", Country: "Indonesia", Lat: -6.21, Lng: 106.85},
	{Name: "Dubai", Country: "UAE", Lat: 25.20, Lng: 55.27},
	{Name: "Chicago", Country: "USA", Lat: 41.88, Lng: -87.63},
	{Name: "Seoul", Country: "South Korea", Lat: 37.57, Lng: 126.98},
	{Name: "Omaha", Country: "USA", Lat: 41.26, Lng: -95.93},
}

func pickCities(rng *rand.Rand, n int) []City {
	order := make([]City, len(worldCities))
	copy(order, worldCities)
	rng.Shuffle(len(order), func(i, j int) {
		order[i], order[j] = order[j], order[i]
	})
	if n > len(order) {
		n = len(order)
	}
	return order[:n]
}

// CurrentCity returns the target for the active Coord Snap round.
func (r *Round) CurrentCity() (City, bool) {
	if r.RoundIndex < 0 || r.RoundIndex >= len(r.Cities) {
		return City{}, false
	}
	return r.Cities[r.RoundIndex], true
}

// Click scores one Coord Snap guess against the current city. The round then
// waits for an explicit advance so the result can be shown.
func (r *Round) Click(lat, lng float64) error {
	if r.State != StateActive {
		return ErrRoundNotActive
	}
	if r.AwaitingNext {
		return errors.New("round result pending")
	}
	city, ok := r.CurrentCity()
	if !ok {
		return errors.New("no city in play")
	}
	km := int(math.Round(HaversineKm(lat, lng, city.Lat, city.Lng)))
	points := PointsForDistance(float64(km))
	r.LastKm = km
	r.LastPoints = points
	r.Score += points
	r.AwaitingNext = true
	return nil
}

func (r *Round) nextCoordSnap() error {
	if !r.AwaitingNext {
		return errors.New("no result to advance past")
	}
	r.AwaitingNext = false
	r.RoundIndex++
	if r.RoundIndex >= len(r.Cities) {
		r.finish()
	}
	return nil
}
