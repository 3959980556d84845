// Package domain contains the core domain model for the recipe book.
//
// The domain is transport- and persistence-agnostic: it does not depend on the
// recipe file format, YAML parsing, or the filesystem. Infra/adapters map
// into/from these types.
package domain
