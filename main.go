package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"mrgn/config"
	"mrgn/logging"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"
)

func main() {
	if err := loadDotEnvFile(".env"); err != nil {
		fmt.Fprintf(os.Stderr, "Error loading .env: %v\n", err)
		os.Exit(1)
	}

	cfgPath := configPath()
	cfg, err := config.Load(cfgPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	logCfg := logging.DefaultConfig()
	logCfg.LogFile = cfg.LogFile
	logCfg.Debug = cfg.DebugLogging
	logger := logging.New(logCfg)
	defer logger.Sync()

	logger.Info("starting mrgn",
		zap.String("config_path", cfgPath),
		zap.String("mode", cfg.Mode),
		zap.String("chart", cfg.Chart),
		zap.String("fee_processor", cfg.FeeProcessor),
	)

	p := tea.NewProgram(
		NewModel(cfg, logger),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	if _, err := p.Run(); err != nil {
		logger.Error("program exited with error", zap.Error(err))
		fmt.Fprintf(os.Stderr, "Error running program: %v\n", err)
		os.Exit(1)
	}
}

// configPath resolves the config file location: MRGN_CONFIG wins, then the
// user config directory. An empty result means built-in defaults only.
func configPath() string {
	if path := strings.TrimSpace(os.Getenv("MRGN_CONFIG")); path != "" {
		return path
	}
	if configDir, err := os.UserConfigDir(); err == nil && strings.TrimSpace(configDir) != "" {
		return filepath.Join(configDir, "mrgn", "config.json")
	}
	return ""
}
