package sbom

import (
	"fmt"
	"strings"
)

// ValidateCreator checks the "<Type>: <name>" shape SPDX requires of creators.
func ValidateCreator(s string) error {
	return validateAgent(s, "creator", "Person", "Organization", "Tool")
}

// ValidateSupplier checks a package supplier; NOASSERTION and empty are accepted.
func ValidateSupplier(s string) error {
	if s == "" || s == NoAssertion {
		return nil
	}
	return validateAgent(s, "supplier", "Person", "Organization")
}

func validateAgent(s, field string, kinds ...string) error {
	kind, name, ok := strings.Cut(s, ": ")
	if ok && strings.TrimSpace(name) != "" {
		for _, k := range kinds {
			if kind == k {
				return nil
			}
		}
	}
	return fmt.Errorf("invalid %s %q: want one of %s followed by \": <name>\"",
		field, s, strings.Join(kinds, ", "))
}
