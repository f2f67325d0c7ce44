// Package main provides the sdxl CLI tool: Stable Diffusion XL
// text-to-image generation on AWS Bedrock.
//
// Usage:
//
//	sdxl -p <prompt> [flags]
//	sdxl -r request.json [flags]
//	sdxl config <command>
//
// The tool assembles a JSON request body from the given prompts and body
// parameters, invokes the model, and writes the returned image next to a
// copy of the request body. Filenames are derived from the prompt text
// and a fingerprint of the request content, so rerunning an identical
// request produces the same filenames.
//
// Configuration:
//
//	Named contexts (AWS profile, region, model, output directory) are
//	stored in ~/.sdxl/config.yaml and managed with 'sdxl config'.
package main

import (
	"os"

	"github.com/bedrocktools/sdxl/cmd/sdxl/commands"
	"github.com/bedrocktools/sdxl/pkg/cli"
)

func main() {
	if err := commands.Execute(); err != nil {
		cli.PrintError("%v", err)
		os.Exit(1)
	}
}
