package cracker

import (
	"fmt"

	"github.com/dshills/dungeon-cracker/pkg/biome"
	"github.com/dshills/dungeon-cracker/pkg/floor"
	"github.com/dshills/dungeon-cracker/pkg/placement"
	"github.com/dshills/dungeon-cracker/pkg/seedlift"
)

// Request is one crack job: a spawner position, version, biome filter,
// and observed floor pattern, in the package's native typed form. Build
// one with NewRequestFromRows or NewRequestFromGrid81, which validate the
// raw CLI/JSON tokens.
type Request struct {
	Position seedlift.Position
	Version  placement.Version
	Biome    biome.Tag
	Obs      *floor.Observation
}

// NewRequestFromRows builds a Request from the CLI argument grammar: a
// version token, a biome token, a floor-size token, and one row string
// per visible row (north to south).
func NewRequestFromRows(x, y, z int32, versionTok, biomeTok, sizeTok string, rows []string) (Request, error) {
	version, err := placement.ParseVersion(versionTok)
	if err != nil {
		return Request{}, err
	}
	tag, err := biome.ParseTag(biomeTok)
	if err != nil {
		return Request{}, err
	}
	size, err := floor.ParseSize(sizeTok)
	if err != nil {
		return Request{}, err
	}
	obs, err := floor.ParseRows(size, rows)
	if err != nil {
		return Request{}, err
	}
	return Request{
		Position: seedlift.Position{X: x, Y: y, Z: z},
		Version:  version,
		Biome:    tag,
		Obs:      obs,
	}, nil
}

// NewRequestFromGrid81 builds a Request from the programmatic boundary's
// wire form: a fixed 81-byte row-major tile grid instead of per-row
// strings.
func NewRequestFromGrid81(x, y, z int32, versionTok, biomeTok, sizeTok string, grid81 []byte) (Request, error) {
	version, err := placement.ParseVersion(versionTok)
	if err != nil {
		return Request{}, err
	}
	tag, err := biome.ParseTag(biomeTok)
	if err != nil {
		return Request{}, err
	}
	size, err := floor.ParseSize(sizeTok)
	if err != nil {
		return Request{}, err
	}
	obs, err := floor.DecodeGrid81(size, grid81)
	if err != nil {
		return Request{}, err
	}
	return Request{
		Position: seedlift.Position{X: x, Y: y, Z: z},
		Version:  version,
		Biome:    tag,
		Obs:      obs,
	}, nil
}

// validate reports the one usage error worth rejecting up front: an
// observation with no informative tiles at all, which would otherwise
// force the caller to enumerate the full 2^48 state space.
func (r Request) validate() error {
	if r.Obs.InformativeCount() == 0 {
		return fmt.Errorf("cracker: observation has no informative tiles (all unknown); widen the floor observation")
	}
	return nil
}
