// Package geo is a read-only lookup over the Ghana region, district, and
// community reference dataset used when registering farms.
package geo

import (
	"sort"
	"strings"
)

// matchRegion resolves free-text region input ("Ashanti", "ashanti region")
// against canonical region keys by case-insensitive substring containment.
// First match wins; map iteration order is not stable, so candidates are
// scanned in sorted key order to keep results deterministic.
func matchRegion(freeText string) (string, bool) {
	needle := strings.ToLower(strings.TrimSpace(freeText))
	if needle == "" {
		return "", false
	}

	keys := make([]string, 0, len(regionDistricts))
	for key := range regionDistricts {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	for _, key := range keys {
		if strings.Contains(strings.ToLower(key), needle) {
			return key, true
		}
	}
	return "", false
}

// CommunitiesForRegion returns the deduplicated, alphabetically sorted
// communities across all districts of the matched region, with OtherChoice
// always appended last. An unmatched region yields only OtherChoice; empty
// input yields an empty list, since the absence of a region is distinct from
// an unmatched one.
func CommunitiesForRegion(regionFreeText string) []string {
	if strings.TrimSpace(regionFreeText) == "" {
		return []string{}
	}

	region, ok := matchRegion(regionFreeText)
	if !ok {
		return []string{OtherChoice}
	}

	seen := make(map[string]struct{})
	for _, district := range regionDistricts[region] {
		for _, community := range districtCommunities[district] {
			seen[community] = struct{}{}
		}
	}

	delete(seen, OtherChoice)
	communities := make([]string, 0, len(seen)+1)
	for community := range seen {
		communities = append(communities, community)
	}
	sort.Strings(communities)

	return append(communities, OtherChoice)
}

// LanguagesForRegion returns the languages spoken in the matched region using
// the same free-text matching rule as CommunitiesForRegion. No match yields an
// empty list; there is no sentinel for languages.
func LanguagesForRegion(regionFreeText string) []string {
	needle := strings.ToLower(strings.TrimSpace(regionFreeText))
	if needle == "" {
		return []string{}
	}

	keys := make([]string, 0, len(regionLanguages))
	for key := range regionLanguages {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	for _, key := range keys {
		if strings.Contains(strings.ToLower(key), needle) {
			return append([]string(nil), regionLanguages[key]...)
		}
	}
	return []string{}
}
