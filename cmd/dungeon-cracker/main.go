package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/dshills/dungeon-cracker/pkg/cracker"
)

const version = "1.0.0"

// CLI flags
var (
	floorSize  = flag.String("size", "9x9", "Floor size: 9x9, 7x9, 9x7, or 7x7")
	batchPath  = flag.String("batch", "", "Path to a YAML batch manifest (overrides positional arguments)")
	renderPath = flag.String("render", "", "Write an SVG rendering of the observed floor to this path")
	workers    = flag.Int("workers", 1, "Number of parallel workers to crack-partial across")
	verbose    = flag.Bool("verbose", false, "Enable verbose output")
	versionF   = flag.Bool("version", false, "Print version and exit")
	help       = flag.Bool("help", false, "Show help message")
)

func main() {
	flag.Parse()

	if *versionF {
		fmt.Printf("dungeon-cracker version %s\n", version)
		os.Exit(0)
	}
	if *help {
		printHelp()
		os.Exit(0)
	}

	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	if *batchPath != "" {
		return runBatch(*batchPath)
	}

	args := flag.Args()
	if len(args) < 5 {
		printUsage()
		return fmt.Errorf("expected at least 5 positional arguments, got %d", len(args))
	}

	x, y, z, err := parseXYZ(args[0], args[1], args[2])
	if err != nil {
		return err
	}
	versionTok := args[3]
	biomeTok := args[4]

	size := *floorSize
	var rows []string
	if len(args) > 5 {
		size = args[5]
	}
	if len(args) > 6 {
		rows = args[6:]
	}

	req, err := cracker.NewRequestFromRows(x, y, z, versionTok, biomeTok, size, rows)
	if err != nil {
		return err
	}

	if *renderPath != "" {
		if err := renderObservation(req, *renderPath); err != nil {
			return err
		}
	}

	return crackAndPrint(req)
}

func crackAndPrint(req cracker.Request) error {
	p, err := cracker.Prepare(req, cracker.Options{})
	if err != nil {
		return err
	}
	if *verbose {
		fmt.Printf("total_branches=%d dimensions=%d info_bits=%d possibilities=%d\n",
			p.TotalBranches, p.Dimensions, p.InfoBits, p.Possibilities)
	}

	var result *cracker.Result
	if *workers > 1 {
		result, err = cracker.CrackParallel(context.Background(), p, *workers)
	} else {
		result, err = cracker.Crack(p)
	}
	if err != nil {
		return err
	}

	fmt.Printf("Dungeon seeds (%d):\n", len(result.DungeonSeeds))
	for _, s := range result.DungeonSeeds {
		fmt.Printf("  %d\n", int64(s))
	}
	fmt.Printf("Structure seeds (%d):\n", len(result.StructureSeeds))
	for _, s := range result.StructureSeeds {
		fmt.Printf("  %d\n", int64(s))
	}
	fmt.Printf("World seeds (%d):\n", len(result.WorldSeeds))
	for _, s := range result.WorldSeeds {
		fmt.Printf("  %d\n", int64(s))
	}
	return nil
}

func runBatch(path string) error {
	batch, err := cracker.LoadBatch(path)
	if err != nil {
		return err
	}
	reqs, err := batch.Requests()
	if err != nil {
		return err
	}
	for i, req := range reqs {
		if *verbose {
			fmt.Printf("=== batch entry %d ===\n", i)
		}
		if err := crackAndPrint(req); err != nil {
			return fmt.Errorf("batch entry %d: %w", i, err)
		}
	}
	return nil
}

func renderObservation(req cracker.Request, path string) error {
	if err := os.WriteFile(path, renderSVG(req), 0o644); err != nil {
		return fmt.Errorf("writing SVG render: %w", err)
	}
	if *verbose {
		fmt.Printf("Wrote floor render to %s\n", path)
	}
	return nil
}

func parseXYZ(xs, ys, zs string) (x, y, z int32, err error) {
	xv, err := parseInt32(xs)
	if err != nil {
		return 0, 0, 0, fmt.Errorf("x: %w", err)
	}
	yv, err := parseInt32(ys)
	if err != nil {
		return 0, 0, 0, fmt.Errorf("y: %w", err)
	}
	zv, err := parseInt32(zs)
	if err != nil {
		return 0, 0, 0, fmt.Errorf("z: %w", err)
	}
	return xv, yv, zv, nil
}

func printUsage() {
	fmt.Fprintln(os.Stderr, "\nUsage: dungeon-cracker <x> <y> <z> <version> <biome> [floor_size] [floor_rows...]")
	fmt.Fprintln(os.Stderr, "Run 'dungeon-cracker -help' for detailed help")
}

func printHelp() {
	fmt.Printf("dungeon-cracker version %s\n\n", version)
	fmt.Println("Recovers the PRNG seeds that produced an observed Minecraft dungeon floor.")
	fmt.Println("\nUsage:")
	fmt.Println("  dungeon-cracker <x> <y> <z> <version> <biome> [floor_size] [floor_rows...]")
	fmt.Println("\nArguments:")
	fmt.Println("  x y z        Signed spawner block coordinates")
	fmt.Println("  version      One of: 1.8 1.9 1.10 1.11 1.12 1.13 1.14 1.15 1.16 1.17")
	fmt.Println("  biome        One of: desert notdesert unknown")
	fmt.Println("  floor_size   One of: 9x9 7x9 9x7 7x7 (default 9x9)")
	fmt.Println("  floor_rows   One row string per visible row, north to south,")
	fmt.Println("               digits 0-4 (mossy/cobble/air/unknown/unknown-solid)")
	fmt.Println("\nFlags:")
	fmt.Println("  -batch string   Path to a YAML batch manifest (ignores positional args)")
	fmt.Println("  -render string  Write an SVG rendering of the observation to this path")
	fmt.Println("  -workers int    Parallel CrackPartial workers (default 1)")
	fmt.Println("  -verbose        Enable verbose output")
	fmt.Println("  -version        Print version and exit")
	fmt.Println("  -help           Show this help message")
	fmt.Println("\nExamples:")
	fmt.Println("  dungeon-cracker 320 29 -418 1.13 notdesert 9x7 \\")
	fmt.Println("    000001000 000000000 000000010 001101000 000000110 000000011 100010000")
	fmt.Println("\n  dungeon-cracker -batch sites.yaml -workers 4")
}
