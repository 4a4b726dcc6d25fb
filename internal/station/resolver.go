package station

import (
	"strings"
	"unicode"
)

// Match is one resolver result. Verified indicates the code came from the
// gazetteer; an unverified match was accepted on shape alone and may be a
// valid CRS code missing from the gazetteer, or a typo. Callers use the
// first match as the best resolution and should surface unverified codes
// as a warning rather than silently trusting them.
type Match struct {
	DisplayName string `json:"name"`
	Code        string `json:"code"`
	Verified    bool   `json:"verified"`
}

// Resolve maps a free-text station query to candidate CRS codes.
//
// A 3-letter query is treated as a candidate code, never as a name: this
// avoids false substring hits like "BTH" matching inside an unrelated
// alias. Anything else is matched against the gazetteer in both directions
// (alias contains query, or query contains alias) so that partial typed
// names and over-specified names both resolve. Duplicate codes keep their
// first occurrence in gazetteer order.
//
// Returns an empty slice only for empty/whitespace input or a name query
// that matched nothing.
func Resolve(query string) []Match {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return nil
	}

	if isCodeShaped(q) {
		return resolveCode(q, query)
	}

	var matches []Match
	seen := make(map[string]bool)
	for _, e := range directory {
		if !strings.Contains(e.Alias, q) && !strings.Contains(q, e.Alias) {
			continue
		}
		if seen[e.Code] {
			continue
		}
		seen[e.Code] = true
		matches = append(matches, Match{
			DisplayName: titleCase(e.Alias),
			Code:        e.Code,
			Verified:    true,
		})
	}
	return matches
}

// resolveCode handles 3-letter inputs: reverse-lookup the code in the
// gazetteer, falling back to an unverified shape-only match.
func resolveCode(normalized, original string) []Match {
	code := strings.ToUpper(normalized)
	for _, e := range directory {
		if e.Code == code {
			return []Match{{
				DisplayName: titleCase(e.Alias),
				Code:        code,
				Verified:    true,
			}}
		}
	}
	return []Match{{
		DisplayName: strings.ToUpper(original),
		Code:        code,
		Verified:    false,
	}}
}

func isCodeShaped(s string) bool {
	if len(s) != 3 {
		return false
	}
	for _, r := range s {
		if r < 'a' || r > 'z' {
			return false
		}
	}
	return true
}

// titleCase capitalizes the first letter of each whitespace-separated word.
func titleCase(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		r := []rune(w)
		r[0] = unicode.ToUpper(r[0])
		words[i] = string(r)
	}
	return strings.Join(words, " ")
}
