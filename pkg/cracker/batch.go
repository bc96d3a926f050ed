package cracker

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// BatchEntry is one spawner observation within a batch manifest: the same
// fields as the CLI's positional arguments, spelled out as YAML keys.
type BatchEntry struct {
	X       int32    `yaml:"x"`
	Y       int32    `yaml:"y"`
	Z       int32    `yaml:"z"`
	Version string   `yaml:"version"`
	Biome   string   `yaml:"biome"`
	Size    string   `yaml:"size"`
	Rows    []string `yaml:"rows"`
}

// Batch is a YAML manifest listing multiple spawner observations to crack
// in one CLI invocation (`-batch file.yaml`).
type Batch struct {
	Entries []BatchEntry `yaml:"entries"`
}

// LoadBatch reads and parses a batch manifest from path.
func LoadBatch(path string) (*Batch, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("cracker: reading batch manifest: %w", err)
	}
	var b Batch
	if err := yaml.Unmarshal(data, &b); err != nil {
		return nil, fmt.Errorf("cracker: parsing batch manifest YAML: %w", err)
	}
	if len(b.Entries) == 0 {
		return nil, fmt.Errorf("cracker: batch manifest %s has no entries", path)
	}
	return &b, nil
}

// Requests converts every entry in b to a Request, in manifest order,
// stopping at the first malformed entry.
func (b *Batch) Requests() ([]Request, error) {
	reqs := make([]Request, 0, len(b.Entries))
	for i, e := range b.Entries {
		req, err := NewRequestFromRows(e.X, e.Y, e.Z, e.Version, e.Biome, e.Size, e.Rows)
		if err != nil {
			return nil, fmt.Errorf("cracker: batch entry %d: %w", i, err)
		}
		reqs = append(reqs, req)
	}
	return reqs, nil
}
