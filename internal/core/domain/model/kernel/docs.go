// Package kernel contains the shared building blocks of the domain model:
// identifier and value-object types used by every aggregate. Types in this
// package are immutable, compared by value, and must be created through
// their constructor functions; zero values fail validation.
package kernel
