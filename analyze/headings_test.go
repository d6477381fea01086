package analyze_test

import (
	"testing"

	"github.com/awalter/quickwins"
	"github.com/awalter/quickwins/analyze"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDetectMissingH1(t *testing.T) {
	t.Parallel()

	result := analyze.Run(crawlWith(
		page("https://example.com/a", func(p *quickwins.PageSignals) {
			p.H1s = nil
			p.Headings = nil
		}),
		page("https://example.com/b", nil),
	))

	issue := issueByType(t, result.HeadingIssues, "missing_h1")
	require.NotNil(t, issue)
	assert.Equal(t, []string{"https://example.com/a"}, issue.AffectedURLs)
	assert.Equal(t, quickwins.SeverityMedium, issue.Severity)
}

func TestDetectMultipleH1(t *testing.T) {
	t.Parallel()

	result := analyze.Run(crawlWith(
		page("https://example.com/a", func(p *quickwins.PageSignals) {
			p.H1s = []string{"First", "Second"}
		}),
		page("https://example.com/b", nil),
	))

	issue := issueByType(t, result.HeadingIssues, "multiple_h1")
	require.NotNil(t, issue)
	assert.Equal(t, 1, issue.Count())
	assert.Equal(t, quickwins.SeverityLow, issue.Severity)
}

func TestDetectBrokenHierarchy(t *testing.T) {
	t.Parallel()

	t.Run("level skip fires", func(t *testing.T) {
		t.Parallel()

		result := analyze.Run(crawlWith(
			page("https://example.com/a", func(p *quickwins.PageSignals) {
				p.Headings = []quickwins.Heading{
					{Level: 1, Text: "Main"},
					{Level: 3, Text: "Deep"},
				}
			}),
		))

		issue := issueByType(t, result.HeadingIssues, "broken_hierarchy")
		require.NotNil(t, issue)
		assert.Equal(t, []string{"https://example.com/a"}, issue.AffectedURLs)
	})

	t.Run("proper sequence does not fire", func(t *testing.T) {
		t.Parallel()

		result := analyze.Run(crawlWith(
			page("https://example.com/a", func(p *quickwins.PageSignals) {
				p.Headings = []quickwins.Heading{
					{Level: 1, Text: "Main"},
					{Level: 2, Text: "Section"},
					{Level: 3, Text: "Sub"},
					{Level: 2, Text: "Another section"},
				}
			}),
		))

		assert.Nil(t, issueByType(t, result.HeadingIssues, "broken_hierarchy"))
	})

	t.Run("leading deep heading does not fire", func(t *testing.T) {
		t.Parallel()

		// A page opening at h2 is unusual, not a skip: there is no
		// predecessor to skip from.
		result := analyze.Run(crawlWith(
			page("https://example.com/a", func(p *quickwins.PageSignals) {
				p.H1s = nil
				p.Headings = []quickwins.Heading{
					{Level: 2, Text: "Opening"},
					{Level: 3, Text: "Sub"},
				}
			}),
		))

		assert.Nil(t, issueByType(t, result.HeadingIssues, "broken_hierarchy"))
	})
}
