package generator

import (
	"math/rand/v2"
	"slices"
	"unicode/utf8"
)

const (
	DefaultBeamWidth  = 20
	DefaultMaxWords   = 6
	DefaultSampleSize = 80

	// overshoot is how far past the target a line may run.
	overshoot = 1
)

// Assembler runs the beam search that builds single lines. Word weights come
// with the pool, so one line costs at most maxWords*beamWidth*sampleSize
// candidate extensions whatever the pool size.
type Assembler struct {
	beamWidth  int
	maxWords   int
	sampleSize int
}

// NewAssembler returns an Assembler with the given search bounds.
// Non-positive values fall back to the defaults.
func NewAssembler(beamWidth, maxWords, sampleSize int) *Assembler {
	if beamWidth <= 0 {
		beamWidth = DefaultBeamWidth
	}
	if maxWords <= 0 {
		maxWords = DefaultMaxWords
	}
	if sampleSize <= 0 {
		sampleSize = DefaultSampleSize
	}
	return &Assembler{
		beamWidth:  beamWidth,
		maxWords:   maxWords,
		sampleSize: sampleSize,
	}
}

type beamState struct {
	words  []Word
	text   LineText
	weight int
}

func (s beamState) last() Word {
	if len(s.words) == 0 {
		return ""
	}
	return s.words[len(s.words)-1]
}

func (s beamState) extend(w Word, weight int) beamState {
	text := LineText(w)
	if s.text != "" {
		text = s.text + " " + LineText(w)
	}
	return beamState{
		words:  append(slices.Clip(s.words), w),
		text:   text,
		weight: s.weight + weight,
	}
}

// Assemble returns up to beamWidth lines ordered by closeness to target,
// shorter text first on ties. An empty pool yields the single empty line.
// Lines below target that no sampled word fits onto are dropped.
func (a *Assembler) Assemble(rng *rand.Rand, pool []WeightedWord, target int) []WeightedLine {
	if len(pool) == 0 {
		return []WeightedLine{{}}
	}

	draw := newSampler(pool)
	beam := []beamState{{}}
	for range a.maxWords {
		next := make([]beamState, 0, len(beam)*min(len(pool), a.sampleSize))
		for _, st := range beam {
			if st.weight >= target {
				next = append(next, st)
				continue
			}

			for _, w := range draw.sample(rng, a.sampleSize) {
				if w.Word == st.last() {
					continue
				}
				cand := st.extend(w.Word, w.Weight)
				if cand.weight > target+overshoot {
					continue
				}
				next = append(next, cand)
			}
		}
		beam = a.prune(next, target)
	}

	out := make([]WeightedLine, len(beam))
	for i, st := range beam {
		out[i] = WeightedLine{Text: st.text, Weight: st.weight}
	}
	return out
}

func (a *Assembler) prune(states []beamState, target int) []beamState {
	slices.SortStableFunc(states, func(x, y beamState) int {
		if c := distance(target, x.weight) - distance(target, y.weight); c != 0 {
			return c
		}
		return utf8.RuneCountInString(string(x.text)) - utf8.RuneCountInString(string(y.text))
	})
	if len(states) > a.beamWidth {
		states = states[:a.beamWidth]
	}
	return states
}

// sampler draws words without replacement by a partial Fisher-Yates shuffle
// over virtual positions of the pool. Only displaced positions are stored,
// so a draw of n words costs O(n) and the pool is never copied or reordered.
// The returned slice is reused by the next draw.
type sampler struct {
	pool  []WeightedWord
	moved map[int]int
	out   []WeightedWord
}

func newSampler(pool []WeightedWord) *sampler {
	return &sampler{pool: pool, moved: make(map[int]int)}
}

func (s *sampler) at(i int) int {
	if j, ok := s.moved[i]; ok {
		return j
	}
	return i
}

// sample draws min(n, len(pool)) words. The sequence equals the first n
// positions of a Fisher-Yates shuffle of the pool using the same draws.
func (s *sampler) sample(rng *rand.Rand, n int) []WeightedWord {
	n = min(n, len(s.pool))
	if n == 0 {
		return nil
	}
	clear(s.moved)
	s.out = s.out[:0]
	for i := range n {
		j := i + rng.IntN(len(s.pool)-i)
		picked := s.at(j)
		// position i is never read again; j takes its old occupant
		s.moved[j] = s.at(i)
		s.out = append(s.out, s.pool[picked])
	}
	return s.out
}

func distance(target, weight int) int {
	d := target - weight
	if d < 0 {
		return -d
	}
	return d
}
