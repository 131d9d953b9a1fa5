package cmd

import (
	"bytes"
	"strings"
	"testing"
)

func TestPrintChangelog(t *testing.T) {
	tests := []struct {
		name     string
		since    string
		want     []string
		dontWant []string
	}{
		{"all", "", []string{"v0.3.0 (", "v0.2.0 (", "v0.1.0 ("}, nil},
		{"since v0.2.0", "v0.2.0", []string{"v0.3.0 ("}, []string{"v0.2.0", "v0.1.0"}},
		{"up to date", "v0.3.0", []string{"No changes."}, []string{"v0.3.0"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			printChangelog(&out, tt.since)
			got := out.String()
			for _, w := range tt.want {
				if !strings.Contains(got, w) {
					t.Errorf("output missing %q:\n%s", w, got)
				}
			}
			for _, w := range tt.dontWant {
				if strings.Contains(got, w) {
					t.Errorf("output should not contain %q:\n%s", w, got)
				}
			}
		})
	}
}

func TestPrintChangelog_ListsChanges(t *testing.T) {
	var out bytes.Buffer
	printChangelog(&out, "")
	if !strings.Contains(out.String(), "  - SQLite leaderboard backend") {
		t.Errorf("changes should be listed as bullets:\n%s", out.String())
	}
}
