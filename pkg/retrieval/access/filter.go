package access

import "ai-onboarding-be/pkg/store"

// Role identifiers known to the system. The set mirrors the account roles
// seeded for the ministry deployment.
const (
	RoleAdmin    = "admin"
	RoleMinister = "minister"
	RoleAnalyst  = "analyst"
)

// readSets is the explicit access table: requesting role -> owner tiers it
// may read. Roles are NOT assumed to be linearly ordered; two roles can have
// disjoint read sets, so membership is looked up, never compared.
var readSets = map[string]map[string]bool{
	RoleAdmin: {
		RoleAdmin:    true,
		RoleMinister: true,
		RoleAnalyst:  true,
	},
	RoleMinister: {
		RoleMinister: true,
		RoleAnalyst:  true,
	},
	RoleAnalyst: {
		RoleAnalyst: true,
	},
}

// Filter yields the subset of documents the requesting role may read.
//
// It is a pure function and must run BEFORE ranking: filtering afterwards
// would let relevance scores leak the existence of restricted documents.
// It fails closed: an unknown requesting role reads nothing, and a document
// with a missing or unrecognized owner role is excluded.
func Filter(role string, documents []store.Document) []store.Document {
	readable, ok := readSets[role]
	if !ok {
		return nil
	}

	var permitted []store.Document
	for _, doc := range documents {
		if doc.OwnerRole == "" {
			continue // no owner metadata: restricted, never public
		}
		if readable[doc.OwnerRole] {
			permitted = append(permitted, doc)
		}
	}
	return permitted
}

// CanRead reports whether the requesting role may read the given owner tier.
// Used by direct document lookups so that "exists but forbidden" and "does
// not exist" stay indistinguishable to the caller.
func CanRead(role, ownerRole string) bool {
	if ownerRole == "" {
		return false
	}
	readable, ok := readSets[role]
	if !ok {
		return false
	}
	return readable[ownerRole]
}

// KnownRole reports whether the identifier belongs to the role taxonomy.
func KnownRole(role string) bool {
	_, ok := readSets[role]
	return ok
}
