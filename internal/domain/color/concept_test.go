package color

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// fixedSource replays a fixed float and always picks the same strategy index.
type fixedSource struct {
	float    float64
	strategy int
}

func (f fixedSource) Float64() float64 { return f.float }
func (f fixedSource) IntN(n int) int   { return f.strategy % n }

func TestHarmonizeAlwaysReturnsFiveColors(t *testing.T) {
	t.Parallel()

	seeds := []HSL{
		{H: 0, S: 0, L: 0},
		{H: 359, S: 100, L: 100},
		{H: 200, S: 60, L: 45},
		{H: 15, S: 95, L: 8},
	}
	for _, strategy := range Strategies {
		for _, seed := range seeds {
			palette := Harmonize(seed, strategy)
			require.Len(t, palette, ConceptSize, "strategy %s", strategy)
			for _, hex := range palette {
				require.Regexp(t, `^#[0-9a-f]{6}$`, hex)
			}
		}
	}
}

func TestHarmonizeAnalogousOffsets(t *testing.T) {
	t.Parallel()

	palette := Harmonize(HSL{H: 100, S: 50, L: 50}, StrategyAnalogous)
	want := []float64{100, 130, 160, 70, 40}
	for i, hex := range palette {
		require.InDelta(t, want[i], HexToHSL(hex).H, 1.5, "entry %d", i)
	}
}

func TestHarmonizeMonochromaticClampsLightness(t *testing.T) {
	t.Parallel()

	palette := Harmonize(HSL{H: 210, S: 60, L: 85}, StrategyMonochromatic)
	require.InDelta(t, 55, HexToHSL(palette[1]).L, 1)
	require.InDelta(t, 70, HexToHSL(palette[2]).L, 1)
	require.InDelta(t, 95, HexToHSL(palette[3]).L, 1)
	require.InDelta(t, 95, HexToHSL(palette[4]).L, 1)
}

func TestHarmonizeComplementaryHue(t *testing.T) {
	t.Parallel()

	palette := Harmonize(HSL{H: 30, S: 70, L: 50}, StrategyComplementary)
	require.InDelta(t, 210, HexToHSL(palette[1]).H, 1.5)
}

func TestGenerateWithBaseSeedsFirstEntry(t *testing.T) {
	t.Parallel()

	for i := range Strategies {
		gen := NewGenerator(fixedSource{float: 0.5, strategy: i})
		palette := gen.Generate("#9d26d9")
		require.Len(t, palette, ConceptSize)
		require.Equal(t, "#9d26d9", palette[0])
	}
}

func TestGenerateWithoutBaseStaysInSeedRanges(t *testing.T) {
	t.Parallel()

	gen := NewGenerator(NewSource(42))
	for i := 0; i < 200; i++ {
		palette := gen.Generate("")
		require.Len(t, palette, ConceptSize)
		seed := HexToHSL(palette[0])
		require.GreaterOrEqual(t, seed.S, 39.0)
		require.LessOrEqual(t, seed.S, 91.0)
		require.GreaterOrEqual(t, seed.L, 29.0)
		require.LessOrEqual(t, seed.L, 71.0)
	}
}

func TestGenerateIsDeterministicUnderSeed(t *testing.T) {
	t.Parallel()

	a := NewGenerator(NewSource(99))
	b := NewGenerator(NewSource(99))
	for i := 0; i < 10; i++ {
		require.Equal(t, a.Generate(""), b.Generate(""))
	}
}
