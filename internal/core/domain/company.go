package domain

// CompanySet holds the company names present in the system of record.
// Membership is exact and case-sensitive.
type CompanySet map[string]struct{}

// NewCompanySet builds a set from a directory listing. Duplicates collapse.
func NewCompanySet(names []string) CompanySet {
	set := make(CompanySet, len(names))
	for _, n := range names {
		set[n] = struct{}{}
	}
	return set
}

// Contains reports whether name is an exact member of the set.
func (s CompanySet) Contains(name string) bool {
	_, ok := s[name]
	return ok
}

// Len returns the number of distinct names.
func (s CompanySet) Len() int {
	return len(s)
}
