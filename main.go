//go:build !lambda

package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"time"
)

const usage = `Usage: arkgrid-optimizer [flags] <input.json|input.yaml>

Positional arguments:
  input   Cores and gems to place (JSON or YAML)

Flags:
`

func main() {
	configPath := flag.String("config", "", "Path to a YAML config file")
	roleName := flag.String("role", "", "Role profile: dealer or support (overrides the input file)")
	jsonOut := flag.Bool("json", false, "Output results as JSON")
	xlsxPath := flag.String("xlsx", "", "Also write the result to this .xlsx file")
	verbose := flag.Bool("verbose", false, "Log search progress to stderr")
	flag.Usage = func() {
		fmt.Fprint(os.Stderr, usage)
		flag.PrintDefaults()
	}
	flag.Parse()

	args := flag.Args()
	if len(args) < 1 {
		flag.Usage()
		os.Exit(1)
	}
	if err := run(args[0], *configPath, *roleName, *jsonOut, *xlsxPath, *verbose); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(inputPath, configPath, roleName string, jsonOut bool, xlsxPath string, verbose bool) error {
	cfg, err := LoadConfig(configPath)
	if err != nil {
		return err
	}
	if verbose {
		cfg.Logging.Level = "debug"
	}
	log, err := NewLogger(cfg.Logging)
	if err != nil {
		return err
	}
	defer log.Sync()

	var role Role
	if roleName != "" {
		if role = parseRole(roleName); role == RoleNone {
			return fmt.Errorf("unknown role %q", roleName)
		}
	}

	input, err := LoadInput(inputPath, role)
	if err != nil {
		return err
	}
	fmt.Fprintf(os.Stderr, "Loaded %d cores, %d gems (%s)\n", len(input.Cores), len(input.Gems), input.Role)

	start := time.Now()
	res, err := NewOptimizer(input, ProfileFor(input.Role), cfg.Search, log).Optimize()
	if err != nil {
		return err
	}
	elapsed := time.Since(start)

	if jsonOut {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(res); err != nil {
			return err
		}
	} else {
		fmt.Print(FormatResult(res))
		fmt.Printf("Time: %.3fs\n", elapsed.Seconds())
	}

	if xlsxPath != "" {
		if err := ExportResultXLSX(xlsxPath, res); err != nil {
			return err
		}
		fmt.Fprintf(os.Stderr, "Wrote %s\n", xlsxPath)
	}
	return nil
}
