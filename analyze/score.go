package analyze

import "github.com/awalter/quickwins"

// SeverityWeights maps severities to their score penalty weight.
var SeverityWeights = map[quickwins.Severity]int{
	quickwins.SeverityCritical: 15,
	quickwins.SeverityHigh:     8,
	quickwins.SeverityMedium:   4,
	quickwins.SeverityLow:      1,
}

// Score tuning. The per-URL scaling and cap give diminishing marginal
// penalty within an issue while still scaling with breadth.
const (
	scoreCountScale = 0.3
	scoreCountCap   = 10
)

// Score computes the 0-100 site health score. Each fired issue costs
// weight × (1 + min(count, cap) × scale); the total penalty is subtracted
// from 100 and clamped. An empty issue set scores 100, and any single
// issue strictly lowers the score.
func Score(issues []*quickwins.Issue) int {
	penalty := 0.0
	for _, issue := range issues {
		weight := SeverityWeights[issue.Severity]
		if weight == 0 {
			weight = 1
		}
		count := issue.Count()
		if count > scoreCountCap {
			count = scoreCountCap
		}
		penalty += float64(weight) * (1 + float64(count)*scoreCountScale)
	}

	score := int(100 - penalty)
	if score < 0 {
		score = 0
	}
	if score > 100 {
		score = 100
	}
	return score
}
