// Package testsupport holds helpers shared by the module's test suites.
// Fragment fixtures are written as JSON or YAML arrays and decoded into the
// loose []any shape ToFormattedText accepts for freshly decoded payloads.
package testsupport

import (
	"encoding/json"
	"testing"

	"github.com/google/go-cmp/cmp"
	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-styledtext/pkg/formattedtext"
)

// FragmentsFromJSON decodes a JSON array-of-arrays payload into a loose
// fragment list. Testing helpers fail the test on malformed fixtures to
// keep contract tests concise.
func FragmentsFromJSON(t *testing.T, payload string) []any {
	t.Helper()

	var items []any
	if err := json.Unmarshal([]byte(payload), &items); err != nil {
		t.Fatalf("decode json fragments: %v", err)
	}
	return items
}

// FragmentsFromYAML decodes a YAML sequence-of-sequences payload into a
// loose fragment list.
func FragmentsFromYAML(t *testing.T, payload string) []any {
	t.Helper()

	var items []any
	if err := yaml.Unmarshal([]byte(payload), &items); err != nil {
		t.Fatalf("decode yaml fragments: %v", err)
	}
	return items
}

// DiffFragments fails the test when got differs from want, printing a
// readable diff.
func DiffFragments(t *testing.T, want, got formattedtext.FormattedText) {
	t.Helper()

	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("fragments mismatch (-want +got):\n%s", diff)
	}
}
