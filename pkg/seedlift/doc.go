// Package seedlift lifts a recovered dungeon seed up through the
// structure seed to the user-facing world seed. Both lifts are purely
// algebraic inversions of the game's forward seeding relations; the
// structure-to-world lift additionally brute-forces the 16 bits the
// structure seed does not determine and applies the caller-supplied
// biome filter (pkg/biome).
package seedlift
