package ui

import (
	"fmt"
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/rivo/uniseg"

	"github.com/zhubert/guess/internal/scores"
)

func testRecords(n int) []scores.Record {
	records := make([]scores.Record, n)
	for i := range records {
		records[i] = scores.Record{
			ID:          fmt.Sprintf("id-%d", i),
			Name:        fmt.Sprintf("player%d", i),
			Tries:       i + 1,
			NumberRange: "1-100",
			ElapsedMS:   int64(1000 * (i + 1)),
		}
	}
	return records
}

func TestLeaderboard_Rows(t *testing.T) {
	records := []scores.Record{
		{ID: "a", Name: "Ann", Tries: 3, NumberRange: "1-100", ElapsedMS: 5300},
		{ID: "b", Name: "Bob", Tries: 9, NumberRange: "1-1000", ElapsedMS: 12000, HardMode: true},
	}

	lb := NewLeaderboard()
	lb.SetRecords(records, "")
	rows := lb.Rows()

	if len(rows) != 2 {
		t.Fatalf("got %d rows, want 2", len(rows))
	}
	want := [][]string{
		{"1", "Ann", "3", "1-100", "", "5300ms"},
		{"2", "Bob", "9", "1-1000", "H", "12000ms"},
	}
	for i, row := range rows {
		for j, cell := range row {
			if cell != want[i][j] {
				t.Errorf("row %d col %d = %q, want %q", i, j, cell, want[i][j])
			}
		}
	}
}

func TestLeaderboard_TopN(t *testing.T) {
	lb := NewLeaderboard()
	lb.SetRecords(testRecords(20), "")

	if got := len(lb.Rows()); got != scores.TopN {
		t.Errorf("got %d rows, want %d", got, scores.TopN)
	}
}

func TestLeaderboard_View(t *testing.T) {
	lb := NewLeaderboard()
	lb.SetSize(100, 30)
	lb.SetRecords(testRecords(3), "id-1")

	out := ansi.Strip(lb.View())
	for _, s := range []string{"Leaderboard", "Name", "Tries", "Game range", "Mode", "Game time", "player0", "player2", "3000ms"} {
		if !strings.Contains(out, s) {
			t.Errorf("view should contain %q, got:\n%s", s, out)
		}
	}
	if lb.highlightIndex() != 1 {
		t.Errorf("highlightIndex = %d, want 1", lb.highlightIndex())
	}
	if lb.table.Cursor() != 1 {
		t.Errorf("table cursor = %d, want 1", lb.table.Cursor())
	}
}

func TestLeaderboard_HighlightMissing(t *testing.T) {
	tests := []struct {
		name      string
		highlight string
	}{
		{"no highlight", ""},
		{"unknown id", "nope"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lb := NewLeaderboard()
			lb.SetRecords(testRecords(3), tt.highlight)
			if lb.highlightIndex() != -1 {
				t.Errorf("highlightIndex = %d, want -1", lb.highlightIndex())
			}
		})
	}
}

func TestLeaderboard_Empty(t *testing.T) {
	lb := NewLeaderboard()
	lb.SetSize(80, 20)
	lb.SetRecords(nil, "")

	out := ansi.Strip(lb.View())
	if !strings.Contains(out, "No scores yet") {
		t.Errorf("empty leaderboard should say so, got:\n%s", out)
	}
}

func TestTruncateName(t *testing.T) {
	tests := []struct {
		name  string
		in    string
		width int
		want  string
	}{
		{"fits", "Ann", 16, "Ann"},
		{"exact", "abcdef", 6, "abcdef"},
		{"cut", "abcdefgh", 6, "abcde…"},
		{"wide runes", "日本語日本語", 7, "日本語…"},
		{"combining marks kept whole", "éééé", 3, "éé…"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := truncateName(tt.in, tt.width)
			if got != tt.want {
				t.Errorf("truncateName(%q, %d) = %q, want %q", tt.in, tt.width, got, tt.want)
			}
			if w := uniseg.StringWidth(got); w > tt.width {
				t.Errorf("width %d exceeds %d", w, tt.width)
			}
		})
	}
}

func TestLeaderboardHeaders(t *testing.T) {
	want := []string{"#", "Name", "Tries", "Game range", "Mode", "Game time"}
	got := LeaderboardHeaders()
	if len(got) != len(want) {
		t.Fatalf("got %d headers, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("header %d = %q, want %q", i, got[i], want[i])
		}
	}
}
