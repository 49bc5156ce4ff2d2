// fbxtool is a CLI utility for importing and inspecting FBX mesh files.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/Faultbox/fbxmesh/internal/assets"
	"github.com/Faultbox/fbxmesh/internal/config"
	"github.com/Faultbox/fbxmesh/internal/logger"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	command := os.Args[1]
	if command == "help" || command == "-h" || command == "--help" {
		printUsage()
		return
	}

	// Shared flags come after the subcommand.
	config.ParseFlags(os.Args[2:])

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	args := config.Args()

	switch command {
	case "info":
		cmdInfo(cfg, args)
	case "validate", "check":
		cmdValidate(cfg, args)
	case "scan":
		cmdScan(cfg, args)
	case "config":
		cmdConfig(cfg, args)
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", command)
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`fbxtool - FBX mesh import utility

Usage:
  fbxtool <command> [options] [args]

Commands:
  info <file.fbx>            Import a model and print its geometry summary
  validate <file.fbx ...>    Parse files without building models
  scan <dir>                 Import all matching models and write a manifest
  config init [path]         Write the default config file

Options:
  -config <path>     Path to config file
  -debug             Enable debug logging
  -verbose           Enable verbose parse tracing
  -log-file <path>   Write logs to file
  -pattern <glob>    Glob pattern for scan (default "*.fbx")
  -manifest <path>   Manifest output path for scan (default "models.yaml")

Examples:
  fbxtool info assets/unitbox.fbx
  fbxtool validate -verbose broken.fbx
  fbxtool scan -pattern "*.fbx" -manifest out/models.yaml ./assets`)
}

func newManager(cfg *config.Config) *assets.Manager {
	return assets.NewManager(assets.Options{
		Log:          logger.Log,
		VerboseParse: cfg.Importer.VerboseParse,
		NameFromFile: cfg.Importer.NameFromFile,
	})
}

func cmdInfo(cfg *config.Config, args []string) {
	if len(args) < 1 {
		fmt.Fprintln(os.Stderr, "Usage: fbxtool info <file.fbx>")
		os.Exit(1)
	}

	mdl, err := newManager(cfg).LoadModel(args[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Print(mdl.Summary())
}

func cmdValidate(cfg *config.Config, args []string) {
	if len(args) < 1 {
		fmt.Fprintln(os.Stderr, "Usage: fbxtool validate <file.fbx ...>")
		os.Exit(1)
	}

	mgr := newManager(cfg)
	failed := 0
	for _, path := range args {
		if err := mgr.Validate(path); err != nil {
			fmt.Printf("FAIL  %s: %v\n", path, err)
			failed++
			continue
		}
		fmt.Printf("OK    %s\n", path)
	}

	if failed > 0 {
		fmt.Fprintf(os.Stderr, "\n%d of %d files failed validation\n", failed, len(args))
		os.Exit(1)
	}
}

func cmdScan(cfg *config.Config, args []string) {
	if len(args) < 1 {
		fmt.Fprintln(os.Stderr, "Usage: fbxtool scan <dir>")
		os.Exit(1)
	}
	dir := args[0]

	files, err := matchModelFiles(dir, cfg.Scan.Pattern)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if len(files) == 0 {
		fmt.Fprintf(os.Stderr, "No files matching %q in %s\n", cfg.Scan.Pattern, dir)
		os.Exit(1)
	}

	mgr := newManager(cfg)
	entries := make([]manifestEntry, 0, len(files))
	imported := 0
	for _, path := range files {
		mdl, err := mgr.LoadModel(path)
		if err != nil {
			entries = append(entries, manifestEntry{File: path, Error: err.Error()})
			continue
		}
		entries = append(entries, modelEntry(path, mdl))
		imported++
	}

	if err := writeManifest(cfg.Scan.Manifest, entries); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing manifest: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Imported %d of %d models, manifest written to %s\n",
		imported, len(files), cfg.Scan.Manifest)
}

// matchModelFiles lists files in dir whose base name matches pattern.
func matchModelFiles(dir, pattern string) ([]string, error) {
	dirents, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	var files []string
	for _, d := range dirents {
		if d.IsDir() {
			continue
		}
		matched, err := filepath.Match(pattern, d.Name())
		if err != nil {
			return nil, fmt.Errorf("bad pattern %q: %w", pattern, err)
		}
		if matched {
			files = append(files, filepath.Join(dir, d.Name()))
		}
	}
	return files, nil
}

func cmdConfig(cfg *config.Config, args []string) {
	if len(args) < 1 || args[0] != "init" {
		fmt.Fprintln(os.Stderr, "Usage: fbxtool config init [path]")
		os.Exit(1)
	}

	defaults := config.Default()
	path := filepath.Join(config.ConfigDir(), "config.yaml")
	var err error
	if len(args) > 1 {
		path = args[1]
		err = defaults.SaveTo(path)
	} else {
		err = defaults.Save()
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error writing config: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Wrote default config to %s\n", path)
}
