// Package aassert has assertions for the mapping of structs between layers,
// e.g. from a domain entity to its JSON view.
//
// Use it next to stretchr/testify/assert. Every assertion follows the design
// of testify: it reports the failure on t and returns whether it passed.
//
// # Example
//
//	func TestUserChanges(t *testing.T) {
//		aassert.SameFields(t, domain.UserFields{}, domain.UserChanges{}, "every field can be updated")
//	}
package aassert
