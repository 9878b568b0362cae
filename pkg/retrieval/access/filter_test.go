package access

import (
	"testing"

	"ai-onboarding-be/pkg/store"
)

func TestFilter(t *testing.T) {
	corpus := []store.Document{
		{DocumentID: "d1", OwnerRole: RoleAdmin},
		{DocumentID: "d2", OwnerRole: RoleMinister},
		{DocumentID: "d3", OwnerRole: RoleAnalyst},
		{DocumentID: "d4", OwnerRole: ""},
		{DocumentID: "d5", OwnerRole: "contractor"},
	}

	tests := []struct {
		name    string
		role    string
		wantIDs []string
	}{
		{
			name:    "admin reads every tier",
			role:    RoleAdmin,
			wantIDs: []string{"d1", "d2", "d3"},
		},
		{
			name:    "minister reads minister and analyst",
			role:    RoleMinister,
			wantIDs: []string{"d2", "d3"},
		},
		{
			name:    "analyst reads analyst only",
			role:    RoleAnalyst,
			wantIDs: []string{"d3"},
		},
		{
			name:    "unknown role reads nothing",
			role:    "guest",
			wantIDs: nil,
		},
		{
			name:    "empty role reads nothing",
			role:    "",
			wantIDs: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Filter(tt.role, corpus)
			if len(got) != len(tt.wantIDs) {
				t.Fatalf("Filter(%q) returned %d documents, want %d", tt.role, len(got), len(tt.wantIDs))
			}
			for i, doc := range got {
				if doc.DocumentID != tt.wantIDs[i] {
					t.Errorf("Filter(%q)[%d] = %s, want %s", tt.role, i, doc.DocumentID, tt.wantIDs[i])
				}
			}
		})
	}
}

func TestFilterDoesNotMutateInput(t *testing.T) {
	corpus := []store.Document{
		{DocumentID: "d1", OwnerRole: RoleAdmin},
		{DocumentID: "d2", OwnerRole: RoleAnalyst},
	}

	_ = Filter(RoleAnalyst, corpus)

	if corpus[0].DocumentID != "d1" || corpus[1].DocumentID != "d2" {
		t.Error("Filter mutated its input slice")
	}
}

func TestCanRead(t *testing.T) {
	tests := []struct {
		role      string
		ownerRole string
		want      bool
	}{
		{RoleAdmin, RoleAdmin, true},
		{RoleAdmin, RoleAnalyst, true},
		{RoleMinister, RoleAdmin, false},
		{RoleMinister, RoleAnalyst, true},
		{RoleAnalyst, RoleMinister, false},
		{RoleAnalyst, RoleAnalyst, true},
		{"guest", RoleAnalyst, false},
		{RoleAdmin, "", false},
		{RoleAdmin, "contractor", false},
	}

	for _, tt := range tests {
		if got := CanRead(tt.role, tt.ownerRole); got != tt.want {
			t.Errorf("CanRead(%q, %q) = %v, want %v", tt.role, tt.ownerRole, got, tt.want)
		}
	}
}

func TestKnownRole(t *testing.T) {
	for _, role := range []string{RoleAdmin, RoleMinister, RoleAnalyst} {
		if !KnownRole(role) {
			t.Errorf("KnownRole(%q) = false, want true", role)
		}
	}
	if KnownRole("guest") {
		t.Error("KnownRole(\"guest\") = true, want false")
	}
}
