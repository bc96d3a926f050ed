package cracker

import (
	"encoding/json"
	"strconv"
)

// PrepareResponse is the JSON shape returned by the `prepare` boundary function.
type PrepareResponse struct {
	TotalBranches int    `json:"total_branches,omitempty"`
	Dimensions    int    `json:"dimensions,omitempty"`
	InfoBits      int    `json:"info_bits,omitempty"`
	Possibilities int64  `json:"possibilities,omitempty"`
	Error         string `json:"error,omitempty"`
}

// CrackResponse is the JSON shape returned by `crack_partial` and
// `crack`. Seeds are rendered as decimal strings of signed 64-bit values.
type CrackResponse struct {
	DungeonSeeds   []string `json:"dungeon_seeds"`
	StructureSeeds []string `json:"structure_seeds"`
	WorldSeeds     []string `json:"world_seeds"`
	Error          string   `json:"error,omitempty"`
}

func seedStrings(seeds []uint64) []string {
	out := make([]string, len(seeds))
	for i, s := range seeds {
		out[i] = strconv.FormatInt(int64(s), 10)
	}
	return out
}

// PrepareJSON is the wire-level `prepare` boundary function: it builds a
// Request from the raw CLI/JSON argument
// forms, prepares it, and marshals the documented response shape.
// Malformed input and degenerate-lattice failures both surface as the
// `error` field, never as a Go error return, since this function's
// contract is "always produces a JSON document" (the caller is a
// language-agnostic boundary, e.g. a future WASM wrapper).
func PrepareJSON(x, y, z int32, versionTok, biomeTok, sizeTok string, grid81 []byte, opts Options) []byte {
	req, err := NewRequestFromGrid81(x, y, z, versionTok, biomeTok, sizeTok, grid81)
	if err != nil {
		return mustMarshal(PrepareResponse{Error: err.Error()})
	}
	p, err := Prepare(req, opts)
	if err != nil {
		return mustMarshal(PrepareResponse{Error: err.Error()})
	}
	return mustMarshal(PrepareResponse{
		TotalBranches: p.TotalBranches,
		Dimensions:    p.Dimensions,
		InfoBits:      p.InfoBits,
		Possibilities: p.Possibilities,
	})
}

// CrackPartialJSON is the wire-level entry point for `crack_partial`.
func CrackPartialJSON(x, y, z int32, versionTok, biomeTok, sizeTok string, grid81 []byte, branchStart, branchEnd int, opts Options) []byte {
	req, err := NewRequestFromGrid81(x, y, z, versionTok, biomeTok, sizeTok, grid81)
	if err != nil {
		return mustMarshal(CrackResponse{Error: err.Error()})
	}
	p, err := Prepare(req, opts)
	if err != nil {
		return mustMarshal(CrackResponse{Error: err.Error()})
	}
	result, err := CrackPartial(p, branchStart, branchEnd)
	if err != nil {
		return mustMarshal(CrackResponse{Error: err.Error()})
	}
	return mustMarshal(crackResponseFrom(result))
}

// CrackJSON is the wire-level entry point for `crack`: equivalent to
// CrackPartialJSON(..., 0, total_branches, ...).
func CrackJSON(x, y, z int32, versionTok, biomeTok, sizeTok string, grid81 []byte, opts Options) []byte {
	req, err := NewRequestFromGrid81(x, y, z, versionTok, biomeTok, sizeTok, grid81)
	if err != nil {
		return mustMarshal(CrackResponse{Error: err.Error()})
	}
	p, err := Prepare(req, opts)
	if err != nil {
		return mustMarshal(CrackResponse{Error: err.Error()})
	}
	result, err := Crack(p)
	if err != nil {
		return mustMarshal(CrackResponse{Error: err.Error()})
	}
	return mustMarshal(crackResponseFrom(result))
}

func crackResponseFrom(r *Result) CrackResponse {
	return CrackResponse{
		DungeonSeeds:   seedStrings(r.DungeonSeeds),
		StructureSeeds: seedStrings(r.StructureSeeds),
		WorldSeeds:     seedStrings(r.WorldSeeds),
	}
}

// mustMarshal serializes v, which is always one of this file's own
// response structs and therefore always marshalable; a failure here would
// indicate an implementer bug, not a caller input problem.
func mustMarshal(v any) []byte {
	data, err := json.Marshal(v)
	if err != nil {
		panic("cracker: failed to marshal response: " + err.Error())
	}
	return data
}
