package arcade

import "strings"

const (
	wordDropCols       = 6
	wordDropRows       = 10
	wordDropBottomRow  = wordDropRows - 1
	wordDropBasePoints = 10
	wordDropComboBonus = 5
)

// FallingWord is one item on the Word Drop grid. Row 0 is the top; a word
// still on the bottom row when the next tick arrives is a miss.
type FallingWord struct {
	ID   int    `json:"id"`
	Word string `json:"word"`
	Col  int    `json:"col"`
	Row  int    `json:"row"`
}

func (r *Round) tickWordDrop() {
	next := r.Falling[:0]
	lost := 0
	for _, item := range r.Falling {
		if item.Row >= wordDropBottomRow {
			lost++
			continue
		}
		item.Row++
		next = append(next, item)
	}
	r.Falling = next
	if lost == 0 {
		return
	}
	r.Combo = 0
	r.Misses += lost
	if r.Misses >= r.MissLimit {
		r.finish()
	}
}

// spawnWordDrop places a random word in the top row. Columns already occupied
// near the top are avoided by probing subsequent columns cyclically, at most
// once per column, so collisions are minimized but not strictly impossible.
func (r *Round) spawnWordDrop() {
	word := wordDropWords[r.rng.Intn(len(wordDropWords))]
	col := r.rng.Intn(wordDropCols)
	tries := 0
	for r.columnBusy(col) && tries < wordDropCols {
		col = (col + 1) % wordDropCols
		tries++
	}
	r.Falling = append(r.Falling, FallingWord{
		ID:   r.nextID(),
		Word: word,
		Col:  col,
		Row:  0,
	})
}

func (r *Round) columnBusy(col int) bool {
	for _, item := range r.Falling {
		if item.Col == col && item.Row < 2 {
			return true
		}
	}
	return false
}

// TypeWord clears a falling word that matches the typed text. A match pays a
// base award plus a streak bonus once the streak reaches two; anything else
// leaves the round untouched.
func (r *Round) TypeWord(text string) bool {
	if r.State != StateActive {
		return false
	}
	text = strings.ToLower(strings.TrimSpace(text))
	if text == "" {
		return false
	}
	for i, item := range r.Falling {
		if item.Word != text {
			continue
		}
		r.Falling = append(r.Falling[:i], r.Falling[i+1:]...)
		points := wordDropBasePoints
		if r.Combo >= 2 {
			points += r.Combo * wordDropComboBonus
		}
		r.Combo++
		r.Score += points
		return true
	}
	return false
}
