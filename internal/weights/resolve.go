package weights

import (
	"math"
	"strconv"
	"strings"
)

// Resolve computes a template's effective weight. Rules are evaluated in a
// fixed order, first match wins:
//
//  1. legacy key equal to the exact major version
//  2. legacy key equal to the exact version string
//  3. Majors[major]
//  4. Versions[version]
//  5. first matching major-range rule
//  6. first version-prefix rule that literally prefixes the version string
//  7. the spec's default, when positive
//  8. the template's current weight unchanged (or 1 when non-positive)
//
// A positive Scale then multiplies the resolved weight, rounded to the
// nearest integer and floored at 1.
func (s *Spec) Resolve(major int, version string, current float64) float64 {
	w := s.resolveBase(major, version, current)
	if s.Scale > 0 {
		w = math.Round(w * s.Scale)
		if w < 1 {
			w = 1
		}
	}
	return w
}

func (s *Spec) resolveBase(major int, version string, current float64) float64 {
	majorKey := strconv.Itoa(major)

	if major > 0 {
		if w, ok := s.Legacy[majorKey]; ok && w > 0 {
			return w
		}
	}
	if version != "" {
		if w, ok := s.Legacy[version]; ok && w > 0 {
			return w
		}
	}
	if w, ok := s.Majors[majorKey]; ok && w > 0 {
		return w
	}
	if version != "" {
		if w, ok := s.Versions[version]; ok && w > 0 {
			return w
		}
	}
	for _, rule := range s.MajorRanges {
		if rule.Weight > 0 && matchMajorRange(rule.Range, major) {
			return rule.Weight
		}
	}
	for _, rule := range s.VersionPrefixes {
		if rule.Weight > 0 && rule.Prefix != "" && strings.HasPrefix(version, rule.Prefix) {
			return rule.Weight
		}
	}
	if s.Default > 0 {
		return s.Default
	}
	if current > 0 {
		return current
	}
	return 1
}

// matchMajorRange evaluates one range expression against a major version.
// Supported forms: "123" (exact), "a-b" (inclusive), ">=n", ">n", "<=n",
// "<n", "==n". Templates without a usable major version never match.
func matchMajorRange(expr string, major int) bool {
	if major <= 0 {
		return false
	}
	expr = strings.TrimSpace(expr)

	for _, op := range []struct {
		prefix string
		match  func(major, n int) bool
	}{
		{">=", func(m, n int) bool { return m >= n }},
		{"<=", func(m, n int) bool { return m <= n }},
		{"==", func(m, n int) bool { return m == n }},
		{">", func(m, n int) bool { return m > n }},
		{"<", func(m, n int) bool { return m < n }},
	} {
		if rest, ok := strings.CutPrefix(expr, op.prefix); ok {
			n, err := strconv.Atoi(strings.TrimSpace(rest))
			return err == nil && op.match(major, n)
		}
	}

	if lo, hi, ok := strings.Cut(expr, "-"); ok {
		a, errA := strconv.Atoi(strings.TrimSpace(lo))
		b, errB := strconv.Atoi(strings.TrimSpace(hi))
		return errA == nil && errB == nil && major >= a && major <= b
	}

	n, err := strconv.Atoi(expr)
	return err == nil && major == n
}
