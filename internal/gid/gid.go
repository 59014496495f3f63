// Package gid converts between the host's global identifier strings and the
// bare numeric identifiers the recommendation backend expects.
package gid

import "strings"

const variantPrefix = "gid://shopify/ProductVariant/"

// ToNumeric extracts the numeric identifier from a global ID. It strips the
// known variant prefix when present, otherwise it takes the final path
// segment. The second return is false only for empty input.
func ToNumeric(globalID string) (string, bool) {
	globalID = strings.TrimSpace(globalID)
	if globalID == "" {
		return "", false
	}
	if rest, ok := strings.CutPrefix(globalID, variantPrefix); ok {
		if rest == "" {
			return "", false
		}
		return rest, true
	}
	if idx := strings.LastIndexByte(globalID, '/'); idx >= 0 {
		seg := globalID[idx+1:]
		if seg == "" {
			return "", false
		}
		return seg, true
	}
	return globalID, true
}

// ToGlobalID builds the variant global ID for a numeric identifier.
func ToGlobalID(numeric string) string {
	return variantPrefix + numeric
}
