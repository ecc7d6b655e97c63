package arcade

import (
	"errors"
	"math/rand"
	"time"

	"gis-arcade/internal/leaderboard"
)

const (
	StateIdle     = "idle"
	StateActive   = "active"
	StateFinished = "finished"
)

const (
	defaultTickInterval  = 700 * time.Millisecond
	minTickInterval      = 320 * time.Millisecond
	tickSpeedUpFactor    = 0.93
	ticksPerSpeedUp      = 8
	defaultSpawnInterval = 2400 * time.Millisecond
)

var (
	ErrRoundNotActive = errors.New("round not active")
	ErrRoundFinished  = errors.New("round already finished")
)

// Round is one play-through of a single game variant. It is mutated only by
// the tick/spawn timers and player input, all serialized by the session
// store's lock, and never resumes once finished.
type Round struct {
	Variant   leaderboard.Game
	State     string
	StartedAt time.Time

	Score     int
	Combo     int
	Misses    int
	MissLimit int

	TickCount     int
	TickInterval  time.Duration
	SpawnInterval time.Duration

	// word drop
	Falling []FallingWord

	// coord snap
	Cities       []City
	RoundIndex   int
	AwaitingNext bool
	LastKm       int
	LastPoints   int

	// type racer
	Texts           []string
	Typed           string
	TypingStartedAt time.Time
	RoundWPM        []int

	nextItemID int
	rng        *rand.Rand
	now        func() time.Time
}

type Options struct {
	Lives         int
	TickInterval  time.Duration
	SpawnInterval time.Duration
	Seed          int64
	Now           func() time.Time
}

func NewRound(variant leaderboard.Game, opts Options) *Round {
	if opts.Lives <= 0 {
		opts.Lives = 1
	}
	if opts.TickInterval <= 0 {
		opts.TickInterval = defaultTickInterval
	}
	if opts.SpawnInterval <= 0 {
		opts.SpawnInterval = defaultSpawnInterval
	}
	if opts.Seed == 0 {
		opts.Seed = time.Now().UnixNano()
	}
	if opts.Now == nil {
		opts.Now = func() time.Time { return time.Now().UTC() }
	}
	round := &Round{
		Variant:       variant,
		State:         StateIdle,
		MissLimit:     opts.Lives,
		TickInterval:  opts.TickInterval,
		SpawnInterval: opts.SpawnInterval,
		rng:           rand.New(rand.NewSource(opts.Seed)),
		now:           opts.Now,
	}
	switch variant {
	case leaderboard.GameCoordSnap:
		round.Cities = pickCities(round.rng, coordSnapRounds)
	case leaderboard.GameTypeRacer:
		round.Texts = pickTexts(round.rng, typeRacerRounds)
	}
	return round
}

// Start moves the round from idle to active. Word Drop gets its first
// falling word immediately; the periodic spawns follow.
func (r *Round) Start() error {
	if r.State != StateIdle {
		return errors.New("round already started")
	}
	r.State = StateActive
	r.StartedAt = r.now()
	if r.Variant == leaderboard.GameWordDrop {
		r.Spawn()
	}
	return nil
}

// NeedsTimers reports whether the variant runs on periodic triggers. Coord
// Snap and Type Racer advance on player input alone.
func (r *Round) NeedsTimers() bool {
	return r.Variant == leaderboard.GameWordDrop
}

func (r *Round) Active() bool {
	return r.State == StateActive
}

func (r *Round) Finished() bool {
	return r.State == StateFinished
}

// finish fixes the terminal score. Overlapping timers can race to end the
// same round, so only the first call has effect.
func (r *Round) finish() bool {
	if r.State == StateFinished {
		return false
	}
	r.State = StateFinished
	return true
}

func (r *Round) nextID() int {
	r.nextItemID++
	return r.nextItemID
}

// Tick advances simulated time. It speeds up over the round's lifetime,
// floored at a minimum interval.
func (r *Round) Tick() {
	if r.State != StateActive {
		return
	}
	switch r.Variant {
	case leaderboard.GameWordDrop:
		r.tickWordDrop()
	}
	r.TickCount++
	if r.TickCount%ticksPerSpeedUp == 0 {
		next := time.Duration(float64(r.TickInterval) * tickSpeedUpFactor)
		if next < minTickInterval {
			next = minTickInterval
		}
		r.TickInterval = next
	}
}

// Next advances past a shown round result for the variants that play a fixed
// number of rounds. Advancing past the final round fixes the terminal score.
func (r *Round) Next() error {
	if r.State != StateActive {
		return ErrRoundNotActive
	}
	switch r.Variant {
	case leaderboard.GameCoordSnap:
		return r.nextCoordSnap()
	case leaderboard.GameTypeRacer:
		return r.nextTypeRacer()
	}
	return errors.New("variant has no round advance")
}

// Spawn introduces a new challenge item.
func (r *Round) Spawn() {
	if r.State != StateActive {
		return
	}
	switch r.Variant {
	case leaderboard.GameWordDrop:
		r.spawnWordDrop()
	}
}
