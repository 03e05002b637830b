// Package testutil provides seeded, reproducible test data generation
// for lexgo tests: a thread-safe RNG and sorted doc id generation.
package testutil
