package catalog

// EnvironmentID identifies a deployment environment. The catalog document is
// keyed by environment so that entries can diverge between deployments.
type EnvironmentID string

// Recognized deployment environments.
const (
	// EnvironmentCI is the continuous integration environment.
	EnvironmentCI EnvironmentID = "ci"
	// EnvironmentNext is the pre-production staging environment.
	EnvironmentNext EnvironmentID = "next"
	// EnvironmentProd is the production environment.
	EnvironmentProd EnvironmentID = "prod"
)

// String returns the string representation of an EnvironmentID.
func (id EnvironmentID) String() string {
	return string(id)
}

// Valid reports whether the ID is one of the recognized environments.
func (id EnvironmentID) Valid() bool {
	switch id {
	case EnvironmentCI, EnvironmentNext, EnvironmentProd:
		return true
	default:
		return false
	}
}

// KnownEnvironments returns the recognized environment IDs in display order.
func KnownEnvironments() []EnvironmentID {
	return []EnvironmentID{EnvironmentCI, EnvironmentNext, EnvironmentProd}
}

// knownEnvironmentNames returns the recognized environment IDs as strings,
// for error messages.
func knownEnvironmentNames() []string {
	known := KnownEnvironments()
	names := make([]string, len(known))
	for i, id := range known {
		names[i] = id.String()
	}
	return names
}
