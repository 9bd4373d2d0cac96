package policies

import (
	"fmt"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/bmatcuk/doublestar/v4"
)

// ExcludePolicy skips dependencies by name, e.g. "@acme/**" for a
// company's own scoped packages. Patterns use doublestar glob syntax.
type ExcludePolicy struct {
	exact    map[string]struct{}
	patterns []string
}

func NewExcludePolicy(patterns []string) (ExcludePolicy, error) {
	policy := ExcludePolicy{exact: map[string]struct{}{}}
	for _, raw := range patterns {
		pattern := strings.TrimSpace(raw)
		if pattern == "" {
			continue
		}
		if !doublestar.ValidatePattern(pattern) {
			return ExcludePolicy{}, errbuilder.New().
				WithCode(errbuilder.CodeInvalidArgument).
				WithMsg(fmt.Sprintf("invalid exclude pattern: %s", pattern))
		}
		if !strings.ContainsAny(pattern, "*?[{\\") {
			policy.exact[pattern] = struct{}{}
			continue
		}
		policy.patterns = append(policy.patterns, pattern)
	}
	return policy, nil
}

func (p ExcludePolicy) Excludes(name string) bool {
	if _, ok := p.exact[name]; ok {
		return true
	}
	for _, pattern := range p.patterns {
		if matched, err := doublestar.Match(pattern, name); err == nil && matched {
			return true
		}
	}
	return false
}

func (p ExcludePolicy) Empty() bool {
	return len(p.exact) == 0 && len(p.patterns) == 0
}
