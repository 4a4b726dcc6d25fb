package station_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/railscout/railscout/internal/station"
)

func TestResolve_EmptyQuery(t *testing.T) {
	assert.Empty(t, station.Resolve(""))
	assert.Empty(t, station.Resolve("   "))
	assert.Empty(t, station.Resolve("\t\n"))
}

func TestResolve_KnownCode(t *testing.T) {
	tests := []struct {
		query string
		code  string
		name  string
	}{
		{"KGX", "KGX", "London Kings Cross"},
		{"kgx", "KGX", "London Kings Cross"},
		{"Pad", "PAD", "London Paddington"},
		{"bth", "BTH", "Bath Spa"},
		{"MTP", "MTP", "Montpelier"},
	}

	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			matches := station.Resolve(tt.query)
			require.Len(t, matches, 1)
			assert.Equal(t, tt.code, matches[0].Code)
			assert.Equal(t, tt.name, matches[0].DisplayName)
			assert.True(t, matches[0].Verified)
		})
	}
}

func TestResolve_UnknownCodeShape(t *testing.T) {
	matches := station.Resolve("zzq")
	require.Len(t, matches, 1)
	assert.Equal(t, "ZZQ", matches[0].Code)
	assert.Equal(t, "ZZQ", matches[0].DisplayName)
	assert.False(t, matches[0].Verified)
}

func TestResolve_CodeShapeSkipsNameSearch(t *testing.T) {
	// "ayr" is both a gazetteer code and a substring of "aberystwyth"-like
	// aliases; a code-shaped query must resolve as a code only.
	matches := station.Resolve("ayr")
	require.Len(t, matches, 1)
	assert.Equal(t, "AYR", matches[0].Code)
	assert.True(t, matches[0].Verified)
}

func TestResolve_ByName(t *testing.T) {
	matches := station.Resolve("Kings Cross")
	require.NotEmpty(t, matches)
	assert.Equal(t, "KGX", matches[0].Code)
	assert.True(t, matches[0].Verified)
}

func TestResolve_Montpelier(t *testing.T) {
	matches := station.Resolve("Montpelier")
	require.Len(t, matches, 1)
	assert.Equal(t, "MTP", matches[0].Code)
	assert.True(t, matches[0].Verified)
}

func TestResolve_OverSpecifiedName(t *testing.T) {
	// Query contains the alias, not the other way round.
	matches := station.Resolve("bristol temple meads railway station")
	require.NotEmpty(t, matches)
	assert.Equal(t, "BRI", matches[0].Code)
}

func TestResolve_NoDuplicateCodes(t *testing.T) {
	// "cross" matches both "london kings cross" and "kings cross" (same
	// code) plus the Charing Cross aliases; each code appears once.
	matches := station.Resolve("cross")
	seen := make(map[string]bool)
	for _, m := range matches {
		assert.False(t, seen[m.Code], "duplicate code %s", m.Code)
		seen[m.Code] = true
	}
	assert.True(t, seen["KGX"])
	assert.True(t, seen["CHX"])
}

func TestResolve_NameNotFound(t *testing.T) {
	assert.Empty(t, station.Resolve("hogsmeade"))
}

func TestResolve_AllDirectoryCodesRoundTrip(t *testing.T) {
	for _, e := range station.Directory() {
		matches := station.Resolve(strings.ToLower(e.Code))
		require.Len(t, matches, 1, "code %s", e.Code)
		assert.Equal(t, e.Code, matches[0].Code)
		assert.True(t, matches[0].Verified, "code %s", e.Code)
	}
}

func TestDirectory_CodeShape(t *testing.T) {
	for _, e := range station.Directory() {
		assert.Len(t, e.Code, 3, "alias %q", e.Alias)
		assert.Equal(t, strings.ToUpper(e.Code), e.Code, "alias %q", e.Alias)
		assert.Equal(t, strings.ToLower(e.Alias), e.Alias, "alias %q", e.Alias)
	}
}
