package domain

import (
	"strings"
	"time"
)

// Store represents one tenant entry in a mall directory.
type Store struct {
	Name      string
	Hours     string
	Location  string
	LogoURL   string
	FetchedAt time.Time
}

// Key returns the normalized cache key for the store name.
func (s Store) Key() string {
	return NormalizeName(s.Name)
}

// NormalizeName lowercases and trims a store name or user query so that
// containment comparison does not care about case or padding.
func NormalizeName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// MatchStores filters candidates whose name matches the user's request by
// case-insensitive bidirectional substring containment: the name may contain
// the request ("starbucks" → "Starbucks Coffee") or the request may contain
// the name ("the starbucks coffee shop" → "Starbucks"). Candidates come back
// in source order; narrowing multiple matches down to one is the caller's
// responsibility.
func MatchStores(userRequest string, candidates []Store) []Store {
	request := NormalizeName(userRequest)
	if request == "" {
		return nil
	}

	matched := make([]Store, 0, len(candidates))
	for _, store := range candidates {
		key := store.Key()
		if key == "" {
			continue
		}
		if strings.Contains(key, request) || strings.Contains(request, key) {
			matched = append(matched, store)
		}
	}
	return matched
}
