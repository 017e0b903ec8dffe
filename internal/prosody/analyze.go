package prosody

// AksharaInfo describes one akshara of an analyzed text.
type AksharaInfo struct {
	Text       Akshara    `json:"text" yaml:"text"`
	Weight     int        `json:"weight" yaml:"weight"`
	VowelClass VowelClass `json:"-" yaml:"-"`
	Class      string     `json:"vowel_class" yaml:"vowel_class"`
}

// Analysis is the full prosodic breakdown of a text.
type Analysis struct {
	Text     string        `json:"text" yaml:"text"`
	Aksharas []AksharaInfo `json:"aksharas" yaml:"aksharas"`
	Weight   int           `json:"weight" yaml:"weight"`
	Final    Akshara       `json:"final" yaml:"final"`
}

// Analyze segments text and reports the weight and vowel class of every unit.
func (an *Analyzer) Analyze(text string) Analysis {
	units := an.Segment(text)
	res := Analysis{
		Text:     text,
		Aksharas: make([]AksharaInfo, 0, len(units)),
	}
	for _, u := range units {
		w := an.AksharaWeight(u)
		vc := an.VowelClassOf(u)
		res.Aksharas = append(res.Aksharas, AksharaInfo{
			Text:       u,
			Weight:     w,
			VowelClass: vc,
			Class:      vc.String(),
		})
		res.Weight += w
	}
	if len(units) > 0 {
		res.Final = units[len(units)-1]
	}
	return res
}

var defaultAnalyzer = NewAnalyzer(Kannada)

// Default returns the shared Kannada analyzer. Analyzer holds no mutable
// state, so the shared instance is safe for concurrent use.
func Default() *Analyzer { return defaultAnalyzer }

// TotalWeight is Default().TotalWeight.
func TotalWeight(text string) int { return defaultAnalyzer.TotalWeight(text) }

// RhymeScore is Default().RhymeScore.
func RhymeScore(line1, line2 string) float64 { return defaultAnalyzer.RhymeScore(line1, line2) }
