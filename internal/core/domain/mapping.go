package domain

// PortalPair is one row of the portal mapping: a canonical merchant name
// and the portal URL associated with it.
type PortalPair struct {
	Name string
	URL  string
}

// PortalMapping is an insertion-ordered table from canonical merchant name
// to portal URL. It is built once and never mutated afterwards.
type PortalMapping struct {
	keys []string
	urls map[string]string
}

// NewPortalMapping builds a mapping from pairs in input order.
//
// Duplicate names are last-write-wins: the URL of the latest pair replaces
// the earlier one, while the name keeps the position of its first
// occurrence. Pairs with an empty name are dropped.
func NewPortalMapping(pairs []PortalPair) *PortalMapping {
	m := &PortalMapping{
		keys: make([]string, 0, len(pairs)),
		urls: make(map[string]string, len(pairs)),
	}
	for _, p := range pairs {
		if p.Name == "" {
			continue
		}
		if _, exists := m.urls[p.Name]; !exists {
			m.keys = append(m.keys, p.Name)
		}
		m.urls[p.Name] = p.URL
	}
	return m
}

// Keys returns the canonical names in iteration order.
// The returned slice is a copy.
func (m *PortalMapping) Keys() []string {
	if m == nil {
		return nil
	}
	keys := make([]string, len(m.keys))
	copy(keys, m.keys)
	return keys
}

// Lookup returns the URL stored for name. Lookups are exact-string.
func (m *PortalMapping) Lookup(name string) (string, bool) {
	if m == nil {
		return "", false
	}
	url, ok := m.urls[name]
	return url, ok
}

// Len returns the number of distinct canonical names.
func (m *PortalMapping) Len() int {
	if m == nil {
		return 0
	}
	return len(m.keys)
}

// Pairs returns the mapping contents in iteration order.
func (m *PortalMapping) Pairs() []PortalPair {
	if m == nil {
		return nil
	}
	pairs := make([]PortalPair, 0, len(m.keys))
	for _, k := range m.keys {
		pairs = append(pairs, PortalPair{Name: k, URL: m.urls[k]})
	}
	return pairs
}
