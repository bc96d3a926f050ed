// Package biome classifies the coarse biome at a spawner column for a
// candidate world seed. The real classification is out of scope here;
// this package defines the Classifier interface pkg/seedlift consumes
// plus one concrete deterministic implementation so the module is
// runnable standalone.
package biome
