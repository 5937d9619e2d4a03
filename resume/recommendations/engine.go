// Package recommendations derives critical issues and improvement suggestions
// from a scored resume using a fixed, ordered rule table.
package recommendations

import "strings"

// Generate evaluates every rule in table order. Both lists are non-nil and
// de-duplicated by message text.
func Generate(input Input) Result {
	critical := make([]string, 0, 4)
	normal := make([]string, 0, 8)
	for _, rule := range rules {
		if !rule.Triggered(input) {
			continue
		}
		msg := rule.Message(input)
		if rule.Severity == SeverityCritical {
			critical = append(critical, msg)
		} else {
			normal = append(normal, msg)
		}
	}
	return Result{
		CriticalIssues:  dedupe(critical),
		Recommendations: dedupe(normal),
	}
}

func dedupe(items []string) []string {
	seen := make(map[string]bool, len(items))
	out := make([]string, 0, len(items))
	for _, item := range items {
		key := strings.TrimSpace(item)
		if key == "" || seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, item)
	}
	return out
}
