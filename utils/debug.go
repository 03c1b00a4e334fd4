package utils

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"
)

// DebugOptions contains configuration for debug output.
type DebugOptions struct {
	Enabled    bool
	OutputDir  string
	SaveToFile bool
	LogPrompts bool
}

// DebugManager records original and generated prompts for inspection.
type DebugManager struct {
	options   DebugOptions
	logger    Logger
	outputDir string
	mu        sync.Mutex
}

// NewDebugManager creates a new debug manager with the given options.
func NewDebugManager(options DebugOptions, logger Logger) *DebugManager {
	if logger == nil {
		logger = NewNopLogger()
	}
	outputDir := options.OutputDir
	if outputDir == "" {
		outputDir = filepath.Join(".", "debug_output")
	}

	if options.SaveToFile && options.Enabled {
		if err := os.MkdirAll(outputDir, 0o755); err != nil {
			logger.Warn("Failed to create debug output directory", "dir", outputDir, "error", err)
		}
	}

	return &DebugManager{
		options:   options,
		logger:    logger,
		outputDir: outputDir,
	}
}

// IsEnabled returns whether debugging is enabled.
func (dm *DebugManager) IsEnabled() bool {
	return dm != nil && dm.options.Enabled
}

// OutputDir returns the directory debug files are written to.
func (dm *DebugManager) OutputDir() string {
	return dm.outputDir
}

// LogPrompt logs a prompt under name and, when configured, appends it to
// <name>.txt in the output directory.
func (dm *DebugManager) LogPrompt(name, prompt string) {
	if !dm.IsEnabled() || !dm.options.LogPrompts {
		return
	}

	dm.logger.Debug("Prompt", "name", name, "prompt", prompt)
	if dm.options.SaveToFile {
		dm.saveToFile(name+".txt", prompt)
	}
}

func (dm *DebugManager) saveToFile(filename, content string) {
	dm.mu.Lock()
	defer dm.mu.Unlock()

	path := filepath.Join(dm.outputDir, filename)
	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		dm.logger.Error("Failed to open file for debug output", "error", err, "file", path)
		return
	}
	defer file.Close()

	timestamp := time.Now().Format("2006-01-02 15:04:05")
	if _, err := fmt.Fprintf(file, "[%s] %s\n", timestamp, content); err != nil {
		dm.logger.Error("Failed to write debug output", "error", err, "file", path)
	}
}
