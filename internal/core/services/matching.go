package services

import (
	"strings"
	"unicode/utf8"

	"github.com/custodia-labs/portalcheck/internal/core/domain"
)

// FilterCandidates returns the candidates that do not contain tag,
// in their original order. The test is an exact, case-sensitive substring
// match. An empty tag keeps every candidate.
func FilterCandidates(candidates []string, tag string) []string {
	kept := make([]string, 0, len(candidates))
	for _, c := range candidates {
		if tag != "" && strings.Contains(c, tag) {
			continue
		}
		kept = append(kept, c)
	}
	return kept
}

// MatchCandidates replaces each candidate with the canonical name whose
// lowercase form contains the candidate's lowercase form. Candidates with
// no containing name are left as they are. The result has the same length
// and order as candidates.
//
// With MatchPolicyFirst the first containing name in mapping order wins.
// With MatchPolicyLongest the longest containing name wins and ties keep
// mapping order.
func MatchCandidates(candidates []string, mapping *domain.PortalMapping, policy domain.MatchPolicy) []string {
	keys := mapping.Keys()
	lowered := make([]string, len(keys))
	for i, k := range keys {
		lowered[i] = strings.ToLower(k)
	}

	matched := make([]string, len(candidates))
	for i, c := range candidates {
		matched[i] = c
		if idx := matchIndex(strings.ToLower(c), keys, lowered, policy); idx >= 0 {
			matched[i] = keys[idx]
		}
	}
	return matched
}

// matchIndex returns the index of the winning key, or -1.
func matchIndex(candidate string, keys, lowered []string, policy domain.MatchPolicy) int {
	best := -1
	for i, k := range lowered {
		if !strings.Contains(k, candidate) {
			continue
		}
		if policy != domain.MatchPolicyLongest {
			return i
		}
		if best < 0 || utf8.RuneCountInString(keys[i]) > utf8.RuneCountInString(keys[best]) {
			best = i
		}
	}
	return best
}

// ResolvePortal looks up the portal URL of the first name.
// It is not found when names is empty, the name is not a mapping key,
// or the mapping row has no URL.
func ResolvePortal(names []string, mapping *domain.PortalMapping) domain.PortalLookup {
	if len(names) == 0 {
		return domain.PortalLookup{}
	}
	return lookup(names[0], mapping)
}

// ResolveAll looks up the portal URL of every name, in order.
func ResolveAll(names []string, mapping *domain.PortalMapping) []domain.PortalLookup {
	lookups := make([]domain.PortalLookup, 0, len(names))
	for _, n := range names {
		lookups = append(lookups, lookup(n, mapping))
	}
	return lookups
}

func lookup(name string, mapping *domain.PortalMapping) domain.PortalLookup {
	url, ok := mapping.Lookup(name)
	return domain.PortalLookup{Name: name, URL: url, Found: ok && url != ""}
}

// ReconcileCompanies returns the matched names that are exact members of
// companies. Order and duplicates are preserved.
func ReconcileCompanies(matched []string, companies domain.CompanySet) []string {
	existing := make([]string, 0)
	for _, n := range matched {
		if companies.Contains(n) {
			existing = append(existing, n)
		}
	}
	return existing
}

// countRewritten returns how many positions differ between before and after.
func countRewritten(before, after []string) int {
	n := 0
	for i := range before {
		if before[i] != after[i] {
			n++
		}
	}
	return n
}
