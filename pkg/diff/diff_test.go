package diff

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGenerateUnifiedDiffIdenticalContent(t *testing.T) {
	t.Parallel()

	content := []byte("line1\nline2\nline3\n")
	require.Empty(t, GenerateUnifiedDiff(content, content, "old", "new"))
}

func TestGenerateUnifiedDiffSingleLineChange(t *testing.T) {
	t.Parallel()

	result := GenerateUnifiedDiff(
		[]byte("line1\nline2\nline3\n"),
		[]byte("line1\nmodified\nline3\n"),
		"design.json", "design.json (current)",
	)

	require.Contains(t, result, "--- design.json\n")
	require.Contains(t, result, "+++ design.json (current)\n")
	require.Contains(t, result, "\n line1\n")
	require.Contains(t, result, "\n-line2\n")
	require.Contains(t, result, "\n+modified\n")
	require.Contains(t, result, "(1 removed, 1 added)")
}

func TestGenerateUnifiedDiffWholeLines(t *testing.T) {
	t.Parallel()

	result := GenerateUnifiedDiff(
		[]byte(`  "primary": "#2563eb",`+"\n"),
		[]byte(`  "primary": "#2563ec",`+"\n"),
		"a", "b",
	)
	require.Contains(t, result, "-  \"primary\": \"#2563eb\",\n")
	require.Contains(t, result, "+  \"primary\": \"#2563ec\",\n")
}

func TestGenerateUnifiedDiffEmptyContent(t *testing.T) {
	t.Parallel()

	result := GenerateUnifiedDiff(nil, []byte("new content\n"), "a", "b")
	require.Contains(t, result, "+new content")
	require.Contains(t, result, "@@ -1,0 +1,1 @@")
}

func TestGenerateUnifiedDiffTruncation(t *testing.T) {
	t.Parallel()

	var expectedLines, actualLines []string
	for i := 0; i < 11000; i++ {
		expectedLines = append(expectedLines, "expected line")
		if i%2 == 0 {
			actualLines = append(actualLines, "actual line")
		} else {
			actualLines = append(actualLines, "expected line")
		}
	}

	result := GenerateUnifiedDiff(
		[]byte(strings.Join(expectedLines, "\n")),
		[]byte(strings.Join(actualLines, "\n")),
		"a", "b",
	)
	require.Contains(t, result, "truncated")
	require.LessOrEqual(t, strings.Count(result, "\n"), maxDiffLines+1)
}
