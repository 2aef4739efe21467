// Package rules ships the builtin lint rules. Importing the package
// registers them with the rule registry.
package rules

import (
	"github.com/cottonBuddha/SwiftLint/pkg/rule"
	"github.com/cottonBuddha/SwiftLint/pkg/types"
)

func init() {
	rule.Register(func() rule.Rule {
		return newRegexRule(
			"trailing_whitespace",
			"Trailing Whitespace",
			"Lines should not have trailing whitespace.",
			`[ \t]+\r?$`,
			"Lines should not have trailing whitespace.",
			types.SeverityWarning,
			nil,
		)
	})

	rule.Register(func() rule.Rule {
		return newRegexRule(
			"force_cast",
			"Force Cast",
			"Force casts should be avoided.",
			`\bas!`,
			"Force casts should be avoided.",
			types.SeverityError,
			[]string{"as!"},
		)
	})

	rule.Register(func() rule.Rule {
		return newRegexRule(
			"force_try",
			"Force Try",
			"Force tries should be avoided.",
			`\btry!`,
			"Force tries should be avoided.",
			types.SeverityError,
			[]string{"try!"},
		)
	})

	rule.Register(func() rule.Rule {
		return newRegexRule(
			"todo",
			"Todo",
			"TODOs and FIXMEs should be resolved.",
			`\b(?:TODO|FIXME)\b`,
			"TODOs should be resolved.",
			types.SeverityWarning,
			[]string{"TODO", "FIXME"},
		)
	})
}
