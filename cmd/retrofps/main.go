package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"retrofps/internal/config"
	"retrofps/internal/game"
	"retrofps/internal/logger"

	"go.uber.org/zap"
)

const defaultConfigPath = "assets/config/game.yaml"

func main() {
	configPath := flag.String("config", defaultConfigPath, "path to the game config")
	flag.Parse()

	// A -config given on the command line is relative to the caller's
	// directory, so pin it before moving into the executable's.
	explicit := false
	flag.Visit(func(f *flag.Flag) { explicit = explicit || f.Name == "config" })
	path, err := resolveConfigPath(*configPath, explicit)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	// Change working directory to executable location for deployed builds.
	// Skip this for "go run" which puts the binary in a temp directory.
	if execPath, err := os.Executable(); err == nil {
		execDir := filepath.Dir(execPath)
		if !strings.Contains(execDir, "go-build") {
			os.Chdir(execDir)
		}
	}

	cfg, err := config.Load(path)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if err := logger.Init(cfg.Log.Level, cfg.Log.Development); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer logger.Sync()

	g, err := game.New(cfg)
	if err != nil {
		logger.Log.Error("Startup failed", zap.String("config", path), zap.Error(err))
		logger.Sync()
		os.Exit(1)
	}
	g.Run()
}

// resolveConfigPath makes a user-supplied relative path absolute against the
// current directory. The default path stays relative to the executable.
func resolveConfigPath(path string, explicit bool) (string, error) {
	if !explicit || filepath.IsAbs(path) {
		return path, nil
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("resolve config path: %w", err)
	}
	return abs, nil
}
