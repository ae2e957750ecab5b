package gantt

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRender_EmptySchedule(t *testing.T) {
	require.Equal(t, "(empty schedule)\n", Render(nil, 0))
}

func TestRender_OneRowPerResource(t *testing.T) {
	entries := []Entry{
		{Task: "ORD-1", Start: 0, Finish: 3, Resource: "Line 0"},
		{Task: "ORD-2", Start: 3, Finish: 5, Resource: "Line 0"},
		{Task: "ORD-3", Start: 0, Finish: 4, Resource: "Line 1"},
	}

	chart := Render(entries, 0)
	lines := strings.Split(chart, "\n")

	require.Contains(t, lines[0], "Line 0")
	require.Contains(t, lines[1], "Line 1")
	require.Contains(t, chart, "legend:")
	require.Contains(t, chart, "ORD-1")

	// the first task occupies the first three slots of its line's row
	require.Contains(t, lines[0], "|00011|")
}

func TestRender_IdleTimeIsDotted(t *testing.T) {
	entries := []Entry{{Task: "ORD-1", Start: 2, Finish: 4, Resource: "Line 0"}}
	chart := Render(entries, 6)
	require.Contains(t, chart, "|..00..|")
}

func TestRenderByDay_SplitsAndClips(t *testing.T) {
	entries := []Entry{
		{Task: "ORD-1", Start: 0, Finish: 10, Resource: "Line 0"},
		{Task: "ORD-2", Start: 14, Finish: 20, Resource: "Line 0"},
	}

	chart := RenderByDay(entries, 16)

	require.Contains(t, chart, "days to complete all orders: 2 (16 hours per day)")
	require.Contains(t, chart, "day 0: 0-16")
	require.Contains(t, chart, "day 1: 16-20")
}
