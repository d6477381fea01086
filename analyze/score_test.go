package analyze_test

import (
	"testing"

	"github.com/awalter/quickwins"
	"github.com/awalter/quickwins/analyze"
	"github.com/stretchr/testify/assert"
)

func TestScore(t *testing.T) {
	t.Parallel()

	t.Run("no issues scores 100", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, 100, analyze.Score(nil))
	})

	t.Run("any issue lowers the score", func(t *testing.T) {
		t.Parallel()

		score := analyze.Score([]*quickwins.Issue{{
			Severity:     quickwins.SeverityLow,
			AffectedURLs: []string{"https://example.com/a"},
		}})
		assert.Less(t, score, 100)
	})

	t.Run("severity ordering", func(t *testing.T) {
		t.Parallel()

		severities := []quickwins.Severity{
			quickwins.SeverityLow,
			quickwins.SeverityMedium,
			quickwins.SeverityHigh,
			quickwins.SeverityCritical,
		}
		prev := 101
		for _, sev := range severities {
			score := analyze.Score([]*quickwins.Issue{{
				Severity:     sev,
				AffectedURLs: []string{"https://example.com/a"},
			}})
			assert.Less(t, score, prev, sev)
			prev = score
		}
	})

	t.Run("more affected URLs penalize more, up to the cap", func(t *testing.T) {
		t.Parallel()

		urls := func(n int) []string {
			out := make([]string, n)
			for i := range out {
				out[i] = "https://example.com/p"
			}
			return out
		}

		few := analyze.Score([]*quickwins.Issue{{Severity: quickwins.SeverityHigh, AffectedURLs: urls(2)}})
		many := analyze.Score([]*quickwins.Issue{{Severity: quickwins.SeverityHigh, AffectedURLs: urls(10)}})
		capped := analyze.Score([]*quickwins.Issue{{Severity: quickwins.SeverityHigh, AffectedURLs: urls(500)}})

		assert.Less(t, many, few)
		assert.Equal(t, many, capped)
	})

	t.Run("clamps at zero", func(t *testing.T) {
		t.Parallel()

		var issues []*quickwins.Issue
		for i := 0; i < 20; i++ {
			issues = append(issues, &quickwins.Issue{
				Severity:     quickwins.SeverityCritical,
				AffectedURLs: []string{"https://example.com/a"},
			})
		}
		assert.Equal(t, 0, analyze.Score(issues))
	})

	t.Run("exact weights", func(t *testing.T) {
		t.Parallel()

		// critical with 2 URLs: 15 × (1 + 2×0.3) = 24 → 76.
		score := analyze.Score([]*quickwins.Issue{{
			Severity:     quickwins.SeverityCritical,
			AffectedURLs: []string{"https://example.com/a", "https://example.com/b"},
		}})
		assert.Equal(t, 76, score)
	})
}
