// Package quickwins provides an on-page SEO auditor. It discovers a site's
// pages through sitemaps (with homepage-crawl fallback), fetches a bounded
// sample of them, extracts SEO signals, checks internal link integrity, and
// runs a rule-based issue detector that produces a weighted 0-100 health
// score and a prioritized action plan.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., http/, goquery/, gemini/).
package quickwins
