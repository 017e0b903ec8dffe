package generator

import (
	"math/rand/v2"
	"slices"
	"unicode/utf8"

	"github.com/heartmarshall/padagalu-backend/internal/prosody"
)

const (
	DefaultTarget         = 12
	DefaultLineCandidates = 20
	DefaultMinWordWeight  = 1
	DefaultMaxWordWeight  = 6
	DefaultMaxWordRunes   = 12

	prosodyShare = 0.7
	rhymeShare   = 0.3
)

// Option configures a Generator.
type Option func(*Generator)

// WithAnalyzer replaces the default Kannada analyzer.
func WithAnalyzer(an *prosody.Analyzer) Option {
	return func(g *Generator) { g.analyzer = an }
}

// WithBeam sets the beam search bounds. Zero values keep the defaults.
func WithBeam(width, maxWords, sampleSize int) Option {
	return func(g *Generator) {
		if width > 0 {
			g.beamWidth = width
		}
		if maxWords > 0 {
			g.maxWords = maxWords
		}
		if sampleSize > 0 {
			g.sampleSize = sampleSize
		}
	}
}

// WithLineCandidates sets how many first lines are paired and how many
// second lines are scored against each of them.
func WithLineCandidates(n int) Option {
	return func(g *Generator) {
		if n > 0 {
			g.lineCandidates = n
		}
	}
}

// WithWordFilter sets the pool pre-filter: inclusive word weight bounds and
// a maximum rune length.
func WithWordFilter(minWeight, maxWeight, maxRunes int) Option {
	return func(g *Generator) {
		g.minWordWeight = minWeight
		g.maxWordWeight = maxWeight
		g.maxWordRunes = maxRunes
	}
}

// Generator produces scored couplets. It holds no mutable state; every call
// to Generate owns its random source, so one Generator may be shared.
type Generator struct {
	analyzer       *prosody.Analyzer
	beamWidth      int
	maxWords       int
	sampleSize     int
	lineCandidates int
	minWordWeight  int
	maxWordWeight  int
	maxWordRunes   int

	asm *Assembler
}

// New returns a Generator configured with opts.
func New(opts ...Option) *Generator {
	g := &Generator{
		analyzer:       prosody.Default(),
		beamWidth:      DefaultBeamWidth,
		maxWords:       DefaultMaxWords,
		sampleSize:     DefaultSampleSize,
		lineCandidates: DefaultLineCandidates,
		minWordWeight:  DefaultMinWordWeight,
		maxWordWeight:  DefaultMaxWordWeight,
		maxWordRunes:   DefaultMaxWordRunes,
	}
	for _, o := range opts {
		o(g)
	}
	g.asm = NewAssembler(g.beamWidth, g.maxWords, g.sampleSize)
	return g
}

// NewRand returns the random source for one generation. A nil seed draws a
// fresh one.
func NewRand(seed *int64) *rand.Rand {
	if seed == nil {
		return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	s := uint64(*seed)
	return rand.New(rand.NewPCG(s, s))
}

// Generate returns at most k distinct couplets, best first. Lines aim at
// target maatras. The same seed and arguments always yield the same result.
func (g *Generator) Generate(pool []Word, target, k int, seed *int64) []Couplet {
	if k <= 0 {
		return []Couplet{}
	}
	filtered := g.filter(pool)
	if len(filtered) == 0 {
		return []Couplet{}
	}

	rng := NewRand(seed)

	rng.Shuffle(len(filtered), func(i, j int) { filtered[i], filtered[j] = filtered[j], filtered[i] })
	firsts := g.asm.Assemble(rng, filtered, target)
	if len(firsts) > g.lineCandidates {
		firsts = firsts[:g.lineCandidates]
	}

	results := make([]Couplet, 0, len(firsts))
	for _, l1 := range firsts {
		rng.Shuffle(len(filtered), func(i, j int) { filtered[i], filtered[j] = filtered[j], filtered[i] })
		seconds := g.asm.Assemble(rng, filtered, target)
		slices.SortStableFunc(seconds, func(x, y WeightedLine) int {
			return distance(target, x.Weight) - distance(target, y.Weight)
		})
		if len(seconds) > g.lineCandidates {
			seconds = seconds[:g.lineCandidates]
		}

		best, ok := g.bestPair(l1, seconds, target)
		if ok {
			results = append(results, best)
		}
	}

	slices.SortStableFunc(results, func(x, y Couplet) int {
		switch {
		case x.Score > y.Score:
			return -1
		case x.Score < y.Score:
			return 1
		}
		return 0
	})

	type pair struct{ l1, l2 LineText }
	seen := make(map[pair]struct{}, len(results))
	out := make([]Couplet, 0, min(k, len(results)))
	for _, c := range results {
		key := pair{c.Line1, c.Line2}
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, c)
		if len(out) >= k {
			break
		}
	}
	return out
}

// bestPair scores l1 against every second line and keeps the first of the
// highest-scoring ones. Empty lines never take part.
func (g *Generator) bestPair(l1 WeightedLine, seconds []WeightedLine, target int) (Couplet, bool) {
	if l1.Text == "" {
		return Couplet{}, false
	}
	var (
		best  Couplet
		found bool
	)
	for _, l2 := range seconds {
		if l2.Text == "" {
			continue
		}
		s := g.Score(l1, l2, target)
		if !found || s > best.Score {
			best = Couplet{Score: s, Line1: l1.Text, Line2: l2.Text}
			found = true
		}
	}
	return best, found
}

// Score combines metrical balance and rhyme into one value in [0,1].
func (g *Generator) Score(l1, l2 WeightedLine, target int) float64 {
	balance := 1.0 / float64(1+distance(target, l1.Weight)+distance(target, l2.Weight)+distance(l1.Weight, l2.Weight))
	rhyme := g.analyzer.RhymeScore(string(l1.Text), string(l2.Text))
	return prosodyShare*balance + rhymeShare*rhyme
}

// ScoreText weighs both lines and scores them, all with the generator's
// analyzer.
func (g *Generator) ScoreText(line1, line2 LineText, target int) float64 {
	return g.Score(
		WeightedLine{Text: line1, Weight: g.analyzer.TotalWeight(string(line1))},
		WeightedLine{Text: line2, Weight: g.analyzer.TotalWeight(string(line2))},
		target,
	)
}

// filter weighs every word once and drops those whose weight or length
// falls outside the configured bounds. The result is a fresh slice the
// caller may reorder.
func (g *Generator) filter(pool []Word) []WeightedWord {
	out := make([]WeightedWord, 0, len(pool))
	for _, w := range pool {
		if utf8.RuneCountInString(string(w)) > g.maxWordRunes {
			continue
		}
		wt := g.analyzer.TotalWeight(string(w))
		if wt < g.minWordWeight || wt > g.maxWordWeight {
			continue
		}
		out = append(out, WeightedWord{Word: w, Weight: wt})
	}
	return out
}
