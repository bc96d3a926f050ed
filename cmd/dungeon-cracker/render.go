package main

import (
	"fmt"
	"strconv"

	"github.com/dshills/dungeon-cracker/pkg/cracker"
	"github.com/dshills/dungeon-cracker/pkg/floor"
)

// parseInt32 parses a signed decimal CLI argument into an int32, the
// width used for spawner coordinates.
func parseInt32(s string) (int32, error) {
	v, err := strconv.ParseInt(s, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("expected a signed 32-bit integer, got %q", s)
	}
	return int32(v), nil
}

// renderSVG wraps pkg/floor.RenderSVG for the CLI's -render flag.
func renderSVG(req cracker.Request) []byte {
	return floor.RenderSVG(req.Obs)
}
