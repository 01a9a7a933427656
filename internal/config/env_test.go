package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// ── GetString ─────────────────────────────────────────────────────────────────

func TestGetString(t *testing.T) {
	tests := []struct {
		name     string
		value    string
		set      bool
		def      string
		expected string
	}{
		{name: "unset returns default", def: "fallback", expected: "fallback"},
		{name: "empty returns default", set: true, def: "fallback", expected: "fallback"},
		{name: "set returns raw value", value: "hello", set: true, expected: "hello"},
		{name: "whitespace is preserved", value: "  spaced  ", set: true, expected: "  spaced  "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.set {
				t.Setenv("CONFIG_TEST_STRING", tt.value)
			}
			assert.Equal(t, tt.expected, GetString("CONFIG_TEST_STRING", tt.def))
		})
	}
}

// ── GetBool ───────────────────────────────────────────────────────────────────

// TestGetBool verifies that only the literal token "true" (any case) counts as
// true; all other non-empty values — including "1" and "yes" — are false.
func TestGetBool(t *testing.T) {
	tests := []struct {
		name     string
		value    string
		set      bool
		def      bool
		expected bool
	}{
		{name: "unset returns default false"},
		{name: "unset returns default true", def: true, expected: true},
		{name: "lowercase true", value: "true", set: true, expected: true},
		{name: "uppercase TRUE", value: "TRUE", set: true, expected: true},
		{name: "mixed case True", value: "True", set: true, expected: true},
		{name: "numeric 1 is false", value: "1", set: true, expected: false},
		{name: "yes is false", value: "yes", set: true, expected: false},
		{name: "false is false", value: "false", set: true, expected: false},
		{name: "garbage is false even with true default", value: "on", set: true, def: true, expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.set {
				t.Setenv("CONFIG_TEST_BOOL", tt.value)
			}
			assert.Equal(t, tt.expected, GetBool("CONFIG_TEST_BOOL", tt.def))
		})
	}
}

// ── GetList ───────────────────────────────────────────────────────────────────

func TestGetList(t *testing.T) {
	tests := []struct {
		name     string
		value    string
		set      bool
		sep      string
		def      []string
		expected []string
	}{
		{name: "unset returns default", sep: ",", def: []string{"x"}, expected: []string{"x"}},
		{name: "unset returns nil default", sep: ",", expected: nil},
		{name: "simple list", value: "a,b,c", set: true, sep: ",", expected: []string{"a", "b", "c"}},
		{
			name:     "trims and drops empty entries",
			value:    "a, ,b,,c",
			set:      true,
			sep:      ",",
			expected: []string{"a", "b", "c"},
		},
		{
			name:     "order preserved with duplicates",
			value:    "b,a,b",
			set:      true,
			sep:      ",",
			expected: []string{"b", "a", "b"},
		},
		{
			name:     "alternate separator",
			value:    "one;two; three",
			set:      true,
			sep:      ";",
			expected: []string{"one", "two", "three"},
		},
		{
			name:     "only separators yields empty list",
			value:    ",, ,",
			set:      true,
			sep:      ",",
			expected: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.set {
				t.Setenv("CONFIG_TEST_LIST", tt.value)
			}
			assert.Equal(t, tt.expected, GetList("CONFIG_TEST_LIST", tt.sep, tt.def))
		})
	}
}
