// Package config loads and validates batch definition files.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/NicabarNimble/go-gitrunner/internal/batch"
	"github.com/NicabarNimble/go-gitrunner/internal/gitcmd"
)

// BatchConfig represents a batch definition file: an ordered list of work
// items plus the knobs that apply to the whole run.
type BatchConfig struct {
	// RepoPath is the default repository for items that do not name their own
	RepoPath string `json:"repoPath,omitempty"`
	// ContinueOnError records per-item failures instead of aborting the batch
	ContinueOnError bool `json:"continueOnError,omitempty"`
	// LogFile enables a rotating log sink at the given path
	LogFile string       `json:"logFile,omitempty"`
	Items   []batch.Item `json:"items"`
}

// DefaultConfig provides default configuration values
func DefaultConfig() *BatchConfig {
	return &BatchConfig{
		RepoPath: ".",
	}
}

// LoadConfig loads a batch definition from a file
func LoadConfig(path string) (*BatchConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read batch file: %w", err)
	}

	cfg := &BatchConfig{}
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse batch file: %w", err)
	}

	cfg.MergeDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid batch file: %w", err)
	}
	return cfg, nil
}

// SaveConfig saves a batch definition to a file
func SaveConfig(cfg *BatchConfig, path string) error {
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal batch config: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create batch file directory: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write batch file: %w", err)
	}

	return nil
}

// MergeDefaults merges default values for unset fields. Items without a
// repository path inherit the batch-level one.
func (c *BatchConfig) MergeDefaults() {
	if c.RepoPath == "" {
		c.RepoPath = DefaultConfig().RepoPath
	}
	for i := range c.Items {
		if c.Items[i].RepoPath == "" {
			c.Items[i].RepoPath = c.RepoPath
		}
	}
}

// Validate checks if the batch definition is valid
func (c *BatchConfig) Validate() error {
	if len(c.Items) == 0 {
		return fmt.Errorf("batch contains no items")
	}
	for i, item := range c.Items {
		if item.Operation == "" {
			return fmt.Errorf("item %d: operation is required", i)
		}
		if _, ok := gitcmd.Lookup(item.Operation); !ok {
			return fmt.Errorf("item %d: unknown operation %q", i, item.Operation)
		}
	}
	return nil
}
