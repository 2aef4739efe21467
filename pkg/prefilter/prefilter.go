// Package prefilter narrows the rule set per file with Aho-Corasick
// keyword matching, so keyword-gated rules only run against files that
// can possibly trigger them.
package prefilter

import (
	"github.com/cloudflare/ahocorasick"

	"github.com/cottonBuddha/SwiftLint/pkg/rule"
)

// Prefilter uses Aho-Corasick for efficient keyword matching.
type Prefilter struct {
	matcher        *ahocorasick.Matcher
	keywords       []string               // keyword at each index
	keywordRules   map[string][]rule.Rule // keyword -> rules needing it
	noKeywordRules []rule.Rule            // rules without keywords (always run)
}

// New creates a prefilter from rules.
func New(rules []rule.Rule) *Prefilter {
	pf := &Prefilter{
		keywordRules:   make(map[string][]rule.Rule),
		noKeywordRules: make([]rule.Rule, 0),
	}

	keywordSet := make(map[string]bool)
	for _, r := range rules {
		if len(r.Keywords()) == 0 {
			// No keywords = always run this rule
			pf.noKeywordRules = append(pf.noKeywordRules, r)
			continue
		}
		for _, keyword := range r.Keywords() {
			if !keywordSet[keyword] {
				keywordSet[keyword] = true
				pf.keywords = append(pf.keywords, keyword)
			}
			pf.keywordRules[keyword] = append(pf.keywordRules[keyword], r)
		}
	}

	if len(pf.keywords) > 0 {
		pf.matcher = ahocorasick.NewStringMatcher(pf.keywords)
	}

	return pf
}

// Filter returns rules that might fire on content (keywords found OR
// no keywords defined).
func (pf *Prefilter) Filter(content []byte) []rule.Rule {
	result := make([]rule.Rule, 0, len(pf.noKeywordRules))
	result = append(result, pf.noKeywordRules...)

	if pf.matcher == nil {
		return result
	}

	hits := pf.matcher.Match(content)

	seen := make(map[rule.Rule]bool)
	for _, r := range pf.noKeywordRules {
		seen[r] = true
	}

	for _, hit := range hits {
		keyword := pf.keywords[hit]
		for _, r := range pf.keywordRules[keyword] {
			if !seen[r] {
				seen[r] = true
				result = append(result, r)
			}
		}
	}

	return result
}
