// Package cli provides shared command-line plumbing for the sdxl tool.
//
// This package includes:
//   - Context configuration (named AWS profile/region/model presets)
//   - Terminal status output helpers
//   - Binary output writing
//   - Human-readable size and duration formatting
//
// Configuration is stored in ~/.sdxl/config.yaml, supporting multiple
// named contexts similar to kubectl.
//
// Example usage:
//
//	cfg, err := cli.LoadConfig()
//	ctx, err := cfg.ResolveContext("")
//	cli.PrintSuccess("wrote %s", path)
package cli
