package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/stockmaster/warehouse/pkg/interfaces/cli/commands"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	ctx := context.Background()
	var err error

	switch os.Args[1] {
	case "simulate":
		err = runSimulate(ctx, os.Args[2:])
	case "generate":
		err = runGenerate(ctx, os.Args[2:])
	case "help", "-help", "--help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", os.Args[1])
		printUsage()
		os.Exit(1)
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func runSimulate(ctx context.Context, args []string) error {
	flags := flag.NewFlagSet("simulate", flag.ExitOnError)

	var (
		configFile   = flags.String("config", "", "Path to YAML configuration file")
		productsFile = flags.String("products", "", "Path to products CSV fixture")
		storesFile   = flags.String("stores", "", "Path to stores CSV fixture")
		resumeFile   = flags.String("resume", "", "Path to a snapshot file to resume from")
		snapshotFile = flags.String("snapshot", "", "Path to write a snapshot of the final state")
		seed         = flags.Uint64("seed", 0, "Random seed (0 picks a time-based seed)")
		days         = flags.Int("days", 0, "Override the configured number of simulation days")
		outputDir    = flags.String("output", "", "Output directory for results (optional)")
		format       = flags.String("format", "text", "Output format: text, json, csv")
		verbose      = flags.Bool("verbose", false, "Enable verbose output")
		help         = flags.Bool("help", false, "Show help message")
	)
	if err := flags.Parse(args); err != nil {
		return err
	}

	cmd := commands.NewSimulateCommand(commands.Config{
		ConfigFile:   *configFile,
		ProductsFile: *productsFile,
		StoresFile:   *storesFile,
		ResumeFile:   *resumeFile,
		SnapshotFile: *snapshotFile,
		Seed:         *seed,
		Days:         *days,
		OutputDir:    *outputDir,
		Format:       *format,
		Verbose:      *verbose,
		Help:         *help,
	})
	return cmd.Execute(ctx)
}

func runGenerate(ctx context.Context, args []string) error {
	flags := flag.NewFlagSet("generate", flag.ExitOnError)

	var (
		products  = flags.Int("products", 0, "Number of product types to generate")
		stores    = flags.Int("stores", 0, "Number of stores to generate")
		outputDir = flags.String("output", "testdata", "Output directory for generated files")
		seed      = flags.Uint64("seed", 0, "Random seed (0 picks a time-based seed)")
		verbose   = flags.Bool("verbose", false, "Enable verbose output")
		help      = flags.Bool("help", false, "Show help message")
	)
	if err := flags.Parse(args); err != nil {
		return err
	}

	cmd := commands.NewGenerateCommand(commands.GenerateConfig{
		Products:  *products,
		Stores:    *stores,
		OutputDir: *outputDir,
		Seed:      *seed,
		Verbose:   *verbose,
		Help:      *help,
	})
	return cmd.Execute(ctx)
}

func printUsage() {
	fmt.Println(`Warehouse Simulator

Usage:
  warehouse <command> [flags]

Commands:
  simulate   Run a warehouse simulation to completion
  generate   Generate randomized CSV fixtures for the simulator
  help       Show this help message

Run 'warehouse <command> -help' for command-specific flags.`)
}
