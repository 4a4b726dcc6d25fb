package rail

import (
	"fmt"
	"sort"
)

// riskLine renders the headline verdict for a connection assessment.
func riskLine(a *ConnectionAssessment) string {
	switch a.RiskTier {
	case TierMissed:
		return "[X] MISSED - Departure is before arrival"
	case TierImpossible:
		return "[X] IMPOSSIBLE - Not enough time"
	case TierVeryHighRisk:
		return fmt.Sprintf("[!] VERY HIGH RISK - Only %d mins", a.TransferMinutes)
	case TierHighRisk:
		return "[!] HIGH RISK - Tight connection"
	case TierModerate:
		return "[~] MODERATE - Should be OK if on time"
	default:
		return "[OK] SAFE - Comfortable connection time"
	}
}

// delaySuffix renders a positive delay as " (+Nm)"; on-time and early legs
// carry no suffix.
func delaySuffix(delay int) string {
	if delay <= 0 {
		return ""
	}
	return fmt.Sprintf(" (+%dm)", delay)
}

// clipPad fits s into a fixed column, truncating with ".." when too long.
func clipPad(s string, width int) string {
	if len(s) > width {
		s = s[:width-2] + ".."
	}
	return fmt.Sprintf("%-*s", width, s)
}

// percent is integer rounding of part/total as a percentage.
func percent(part, total int) int {
	if total == 0 {
		return 0
	}
	return (part*100 + total/2) / total
}

// clampLimit applies the default for unset limits and the hard cap.
func clampLimit(limit, def, max int) int {
	switch {
	case limit <= 0:
		return def
	case limit > max:
		return max
	default:
		return limit
	}
}

type reasonCount struct {
	reason string
	count  int
}

// topReasons returns the n most frequent reasons, most frequent first, with
// ties broken alphabetically so output is stable.
func topReasons(reasons map[string]int, n int) []reasonCount {
	out := make([]reasonCount, 0, len(reasons))
	for reason, count := range reasons {
		out = append(out, reasonCount{reason: reason, count: count})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].count != out[j].count {
			return out[i].count > out[j].count
		}
		return out[i].reason < out[j].reason
	})
	if len(out) > n {
		out = out[:n]
	}
	return out
}
