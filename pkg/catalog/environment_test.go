package catalog

import "testing"

func TestEnvironmentIDValid(t *testing.T) {
	tests := []struct {
		id    EnvironmentID
		valid bool
	}{
		{EnvironmentCI, true},
		{EnvironmentNext, true},
		{EnvironmentProd, true},
		{EnvironmentID("staging"), false},
		{EnvironmentID(""), false},
		{EnvironmentID("PROD"), false},
	}

	for _, tt := range tests {
		if got := tt.id.Valid(); got != tt.valid {
			t.Errorf("EnvironmentID(%q).Valid() = %v, want %v", tt.id, got, tt.valid)
		}
	}
}

func TestKnownEnvironments(t *testing.T) {
	known := KnownEnvironments()
	if len(known) != 3 {
		t.Fatalf("Expected 3 known environments, got %d", len(known))
	}
	if known[0] != EnvironmentCI || known[1] != EnvironmentNext || known[2] != EnvironmentProd {
		t.Errorf("Unexpected order: %v", known)
	}
}

func TestEntryTypeTagParts(t *testing.T) {
	entry := PublicDataEntry{Type: "KBaseGenomes.Genome"}
	if entry.TypeModule() != "KBaseGenomes" {
		t.Errorf("TypeModule() = %q", entry.TypeModule())
	}
	if entry.TypeName() != "Genome" {
		t.Errorf("TypeName() = %q", entry.TypeName())
	}

	bare := PublicDataEntry{Type: "Genome"}
	if bare.TypeModule() != "Genome" || bare.TypeName() != "Genome" {
		t.Errorf("Bare tag parts: %q / %q", bare.TypeModule(), bare.TypeName())
	}
}
