package color

// ConceptSize is the fixed number of colors in a concept palette.
const ConceptSize = 5

// ConceptPalette is an ordered set of harmony colors used as raw material for
// theme derivation. It always holds exactly ConceptSize entries.
type ConceptPalette []string

// Strategy names a color-harmony rule.
type Strategy string

const (
	StrategyAnalogous          Strategy = "analogous"
	StrategyMonochromatic      Strategy = "monochromatic"
	StrategyTriadic            Strategy = "triadic"
	StrategyComplementary      Strategy = "complementary"
	StrategySplitComplementary Strategy = "split-complementary"
	StrategyCompound           Strategy = "compound"
)

// Strategies lists every harmony rule in selection order.
var Strategies = []Strategy{
	StrategyAnalogous,
	StrategyMonochromatic,
	StrategyTriadic,
	StrategyComplementary,
	StrategySplitComplementary,
	StrategyCompound,
}

// Generator produces concept palettes.
type Generator struct {
	rand Source
}

// NewGenerator creates a Generator drawing randomness from src.
func NewGenerator(src Source) *Generator {
	if src == nil {
		src = NewSource(0)
	}
	return &Generator{rand: src}
}

// Generate builds a concept palette. When base is non-empty its HSL value
// seeds the palette; otherwise a seed is drawn at random. The harmony
// strategy is always picked at random.
func (g *Generator) Generate(base string) ConceptPalette {
	var seed HSL
	if base != "" {
		seed = HexToHSL(base)
	} else {
		seed = HSL{
			H: uniform(g.rand, 0, 360),
			S: uniform(g.rand, 40, 90),
			L: uniform(g.rand, 30, 70),
		}
	}
	strategy := Strategies[g.rand.IntN(len(Strategies))]
	return Harmonize(seed, strategy)
}

// Harmonize derives a concept palette from seed using a fixed strategy. The
// seed itself is always the first entry.
func Harmonize(seed HSL, strategy Strategy) ConceptPalette {
	h, s, l := seed.H, seed.S, seed.L

	var rest [ConceptSize - 1]HSL
	switch strategy {
	case StrategyAnalogous:
		rest = [4]HSL{{h + 30, s, l}, {h + 60, s, l}, {h - 30, s, l}, {h - 60, s, l}}
	case StrategyMonochromatic:
		rest = [4]HSL{
			{h, s, clamp(l-30, 10, 95)},
			{h, s, clamp(l-15, 10, 95)},
			{h, s, clamp(l+15, 10, 95)},
			{h, s, clamp(l+30, 10, 95)},
		}
	case StrategyTriadic:
		rest = [4]HSL{{h + 120, s, l}, {h + 240, s, l}, {h + 120, s, l + 15}, {h + 240, s, l - 15}}
	case StrategyComplementary:
		rest = [4]HSL{{h + 180, s, l}, {h, s - 20, l + 20}, {h + 180, s - 20, l + 20}, {h, s, l - 20}}
	case StrategySplitComplementary:
		rest = [4]HSL{{h + 150, s, l}, {h + 210, s, l}, {h + 150, s, l + 15}, {h + 210, s, l - 15}}
	default:
		rest = [4]HSL{{h + 180, s - 10, l}, {h, s, l - 25}, {h, s, l + 25}, {h + 180, s, l + 15}}
	}

	out := make(ConceptPalette, 0, ConceptSize)
	out = append(out, seed.Hex())
	for _, c := range rest {
		out = append(out, c.Hex())
	}
	return out
}
