// Package cracker orchestrates the constraint builder, reverser, version
// layer, and lift layers behind three entry points (Prepare, CrackPartial,
// Crack), adds the JSON wire encoding for the programmatic boundary, a
// YAML batch manifest for cracking several spawner observations in one
// invocation, and a parallel convenience wrapper over pkg/reverser's
// branch split. cmd/dungeon-cracker is the only caller outside of tests.
package cracker
