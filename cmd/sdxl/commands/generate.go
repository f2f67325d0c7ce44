package commands

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/bedrocktools/sdxl/pkg/cli"
	"github.com/bedrocktools/sdxl/pkg/sdxl"
)

// runGenerate executes the full pipeline: resolve input, build the
// request body, invoke the model, write artifacts.
func runGenerate(cmd *cobra.Command, args []string) error {
	if len(promptArgs) == 0 && requestFile == "" {
		_ = cmd.Usage()
		return sdxl.NewArgumentError("either --prompts or --request is required")
	}

	cctx, err := getContext()
	if err != nil {
		return err
	}
	applyContextDefaults(cmd, cctx)

	var req *sdxl.Request
	if requestFile != "" {
		// A prepared request file wins; prompt and body-param
		// arguments are ignored.
		req, err = sdxl.RequestFromFile(requestFile)
	} else {
		req, err = sdxl.BuildRequest(promptArgs, bodyArgs, sdxl.NodeSeed{})
	}
	if err != nil {
		if sdxl.IsArgumentError(err) {
			_ = cmd.Usage()
		}
		return err
	}

	if debug {
		printBody(req.Body)
	}

	ctx := context.Background()
	invoker, err := createInvoker(ctx)
	if err != nil {
		return err
	}

	printVerbose("invoking %s (profile %s)", modelID, awsProfile)
	start := time.Now()
	respBody, err := invoker.Invoke(ctx, modelID, req.Body)
	if err != nil {
		return err
	}
	printVerbose("model responded in %s", cli.FormatDuration(int(time.Since(start).Milliseconds())))

	env, err := sdxl.DecodeEnvelope(respBody)
	if err != nil {
		if re, ok := sdxl.AsResultError(err); ok {
			fmt.Println(re.Result)
			os.Exit(1)
		}
		return err
	}

	written, err := sdxl.WriteArtifacts(req, env.Artifacts, sdxl.WriteOptions{
		OutputDir:   outputDir,
		SkipRequest: req.FromFile,
		OpenViewer:  !noOpen,
		Report:      printInfo,
	})
	if err != nil {
		return err
	}

	for _, path := range written {
		if fi, statErr := os.Stat(path); statErr == nil {
			printSuccess("%s (%s)", path, cli.FormatBytes(fi.Size()))
		} else {
			printSuccess("%s", path)
		}
	}
	return nil
}

// applyContextDefaults fills in flag values from the selected context
// for flags the user did not set explicitly.
func applyContextDefaults(cmd *cobra.Command, cctx *cli.Context) {
	if cctx == nil {
		return
	}
	if cctx.AWSProfile != "" && !cmd.Flags().Changed("aws-profile") {
		awsProfile = cctx.AWSProfile
	}
	if cctx.Region != "" && !cmd.Flags().Changed("region") {
		region = cctx.Region
	}
	if cctx.Model != "" && !cmd.Flags().Changed("model") {
		modelID = cctx.Model
	}
	if cctx.OutputDir != "" && !cmd.Flags().Changed("output-dir") {
		outputDir = cctx.OutputDir
	}
}

// printBody pretty-prints the request body to stdout.
func printBody(body []byte) {
	var buf bytes.Buffer
	if err := json.Indent(&buf, body, "", "  "); err != nil {
		fmt.Println(string(body))
		return
	}
	fmt.Println(buf.String())
}
