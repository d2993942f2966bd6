package color

import (
	"math/rand/v2"
	"strconv"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHexToHSLKnownValues(t *testing.T) {
	t.Parallel()

	tests := []struct {
		hex  string
		want HSL
	}{
		{"#ff0000", HSL{H: 0, S: 100, L: 50}},
		{"#00ff00", HSL{H: 120, S: 100, L: 50}},
		{"#0000ff", HSL{H: 240, S: 100, L: 50}},
		{"#ffffff", HSL{H: 0, S: 0, L: 100}},
		{"#000000", HSL{H: 0, S: 0, L: 0}},
		{"#fff", HSL{H: 0, S: 0, L: 100}},
		{"f00", HSL{H: 0, S: 100, L: 50}},
	}

	for _, tt := range tests {
		t.Run(tt.hex, func(t *testing.T) {
			got := HexToHSL(tt.hex)
			require.InDelta(t, tt.want.H, got.H, 0.5)
			require.InDelta(t, tt.want.S, got.S, 0.5)
			require.InDelta(t, tt.want.L, got.L, 0.5)
		})
	}
}

func TestHSLToHexWrapsAndClamps(t *testing.T) {
	t.Parallel()

	require.Equal(t, "#ff0000", HSLToHex(360, 100, 50))
	require.Equal(t, "#ff0000", HSLToHex(-360, 100, 50))
	require.Equal(t, "#ffffff", HSLToHex(10, 150, 140))
	require.Equal(t, "#000000", HSLToHex(10, -20, -5))
}

func TestRoundTripWithinOneUnit(t *testing.T) {
	t.Parallel()

	rng := rand.New(rand.NewPCG(7, 11))
	for i := 0; i < 2000; i++ {
		r, g, b := rng.IntN(256), rng.IntN(256), rng.IntN(256)
		hex := "#" + byteHex(r) + byteHex(g) + byteHex(b)

		c := HexToHSL(hex)
		back := HSLToHex(c.H, c.S, c.L)

		r2, g2, b2 := channels(t, back)
		require.LessOrEqual(t, abs(r-r2), 1, "red drift for %s -> %s", hex, back)
		require.LessOrEqual(t, abs(g-g2), 1, "green drift for %s -> %s", hex, back)
		require.LessOrEqual(t, abs(b-b2), 1, "blue drift for %s -> %s", hex, back)
	}
}

func TestNormalizeHexExpandsShortForm(t *testing.T) {
	t.Parallel()

	require.Equal(t, "#aabbcc", NormalizeHex("#ABC"))
	require.True(t, SameColor("#FFF", "#ffffff"))
	require.False(t, SameColor("#fff", "#fffffe"))
}

func TestMalformedHexDoesNotPanic(t *testing.T) {
	t.Parallel()

	require.NotPanics(t, func() {
		_ = HexToHSL("not-a-color")
		_ = NormalizeHex("#zz")
	})
}

func byteHex(v int) string {
	s := strconv.FormatInt(int64(v), 16)
	if len(s) == 1 {
		return "0" + s
	}
	return s
}

func channels(t *testing.T, hex string) (int, int, int) {
	t.Helper()
	require.Len(t, hex, 7)
	r, err := strconv.ParseInt(hex[1:3], 16, 0)
	require.NoError(t, err)
	g, err := strconv.ParseInt(hex[3:5], 16, 0)
	require.NoError(t, err)
	b, err := strconv.ParseInt(hex[5:7], 16, 0)
	require.NoError(t, err)
	return int(r), int(g), int(b)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func TestParseHex(t *testing.T) {
	t.Parallel()

	got, err := ParseHex("ABC")
	require.NoError(t, err)
	require.Equal(t, "#aabbcc", got)

	got, err = ParseHex("#2563EB")
	require.NoError(t, err)
	require.Equal(t, "#2563eb", got)

	_, err = ParseHex("#12345")
	require.Error(t, err)
	_, err = ParseHex("banana")
	require.Error(t, err)
}
