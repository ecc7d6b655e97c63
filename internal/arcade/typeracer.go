package arcade

import (
	"errors"
	"math"
	"math/rand"
	"strings"
	"time"
)

const typeRacerRounds = 3

var racerTexts = []string{
	"NDVI equals NIR minus Red divided by NIR plus Red. Values near one indicate dense healthy vegetation.",
	"Kriging uses semivariograms to model spatial autocorrelation and perform optimal linear unbiased interpolation.",
	"A spatial join transfers attributes between layers based on geometric relationships like intersection or proximity.",
	"LiDAR generates dense point clouds by measuring the time for laser pulses to return from the ground surface.",
	"Remote sensing uses electromagnetic radiation to extract land cover, vegetation, and urban area information.",
	"The haversine formula calculates great-circle distances between two points on a sphere using latitude and longitude.",
	"Python and ArcPy enable batch geoprocessing, automating tasks like reprojecting, clipping, and spatial joining.",
	"A geodatabase stores geographic features, attributes, topology rules, and spatial relationships in one container.",
	"Raster data represents space as a grid of cells where each cell holds a single value like elevation or temperature.",
	"Vector data uses points, lines, and polygons to represent discrete geographic features with precise boundaries.",
}

func pickTexts(rng *rand.Rand, n int) []string {
	order := make([]string, len(racerTexts))
	copy(order, racerTexts)
	rng.Shuffle(len(order), func(i, j int) {
		order[i], order[j] = order[j], order[i]
	})
	if n > len(order) {
		n = len(order)
	}
	return order[:n]
}

// CurrentText returns the target sentence for the active Type Racer round.
func (r *Round) CurrentText() (string, bool) {
	if r.RoundIndex < 0 || r.RoundIndex >= len(r.Texts) {
		return "", false
	}
	return r.Texts[r.RoundIndex], true
}

// Type replaces the typed buffer with val. Input that is not a prefix of the
// target sentence is refused and the buffer stays unchanged, so the buffer is
// a prefix of the target at all times. The clock starts on the first accepted
// keystroke.
func (r *Round) Type(val string) error {
	if r.State != StateActive {
		return ErrRoundNotActive
	}
	if r.AwaitingNext {
		return errors.New("round result pending")
	}
	target, ok := r.CurrentText()
	if !ok {
		return errors.New("no text in play")
	}
	if !strings.HasPrefix(target, val) {
		return nil
	}
	if r.TypingStartedAt.IsZero() && val != "" {
		r.TypingStartedAt = r.now()
	}
	r.Typed = val
	if val == target {
		r.RoundWPM = append(r.RoundWPM, r.roundWPM(target))
		r.AwaitingNext = true
	}
	return nil
}

// roundWPM computes words-per-minute as (characters / 5) over the elapsed
// minutes since the first keystroke.
func (r *Round) roundWPM(target string) int {
	elapsed := r.now().Sub(r.TypingStartedAt)
	if elapsed <= 0 {
		elapsed = time.Millisecond
	}
	words := float64(len(target)) / 5
	return int(math.Round(words / elapsed.Minutes()))
}

func (r *Round) nextTypeRacer() error {
	if !r.AwaitingNext {
		return errors.New("no result to advance past")
	}
	r.AwaitingNext = false
	r.Typed = ""
	r.TypingStartedAt = time.Time{}
	r.RoundIndex++
	if r.RoundIndex >= len(r.Texts) {
		r.Score = meanWPM(r.RoundWPM)
		r.finish()
	}
	return nil
}

func meanWPM(history []int) int {
	if len(history) == 0 {
		return 0
	}
	sum := 0
	for _, wpm := range history {
		sum += wpm
	}
	return int(math.Round(float64(sum) / float64(len(history))))
}
