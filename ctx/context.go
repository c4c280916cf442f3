// Package ctx holds the key type for values the service puts into a context.Context.
package ctx

// CTXKey is the type used by all keys put in a context.
// As recommended by the package context, a dedicated type prevents collisions with keys of other packages.
type CTXKey string
