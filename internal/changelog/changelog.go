// Package changelog parses the release notes embedded in the binary.
package changelog

import (
	"bufio"
	_ "embed"
	"regexp"
	"strconv"
	"strings"
)

//go:embed CHANGELOG.md
var Content string

// Entry is one released version
type Entry struct {
	Version string
	Date    string
	Changes []string
}

// versionRegex matches version headers like "## v0.2.0 (2026-08-14)" or "## v0.2.0"
var versionRegex = regexp.MustCompile(`^##\s+v?(\d+\.\d+\.\d+)(?:\s+\(([^)]+)\))?`)

// Parse extracts entries from markdown, newest first as written
func Parse(content string) []Entry {
	var entries []Entry

	sc := bufio.NewScanner(strings.NewReader(content))
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())

		if m := versionRegex.FindStringSubmatch(line); m != nil {
			entries = append(entries, Entry{Version: m[1], Date: m[2]})
			continue
		}

		if len(entries) > 0 && strings.HasPrefix(line, "- ") {
			last := &entries[len(entries)-1]
			last.Changes = append(last.Changes, strings.TrimPrefix(line, "- "))
		}
	}
	return entries
}

// GetChangesSince returns the entries newer than lastSeen. Every entry is
// newer than "".
func GetChangesSince(lastSeen string, entries []Entry) []Entry {
	if lastSeen == "" {
		return entries
	}

	var result []Entry
	for _, e := range entries {
		if CompareVersions(e.Version, lastSeen) > 0 {
			result = append(result, e)
		}
	}
	return result
}

// CompareVersions compares two semantic versions.
// Returns -1 if a < b, 0 if a == b, 1 if a > b.
func CompareVersions(a, b string) int {
	av, bv := parseVersion(a), parseVersion(b)
	for i := range av {
		switch {
		case av[i] < bv[i]:
			return -1
		case av[i] > bv[i]:
			return 1
		}
	}
	return 0
}

// parseVersion extracts [major, minor, patch]. Missing or non-numeric
// parts count as 0.
func parseVersion(v string) [3]int {
	v = strings.TrimPrefix(v, "v")
	// Drop pre-release and build suffixes
	if i := strings.IndexAny(v, "-+"); i >= 0 {
		v = v[:i]
	}

	var result [3]int
	for i, part := range strings.SplitN(v, ".", 3) {
		result[i], _ = strconv.Atoi(part)
	}
	return result
}
