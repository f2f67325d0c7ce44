package commands

import (
	"context"
	"fmt"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/bedrockruntime"

	"github.com/bedrocktools/sdxl/pkg/cli"
	"github.com/bedrocktools/sdxl/pkg/sdxl"
)

// createInvoker builds a Bedrock invoker from the resolved profile and
// region flags.
func createInvoker(ctx context.Context) (*sdxl.BedrockInvoker, error) {
	opts := []func(*awsconfig.LoadOptions) error{
		awsconfig.WithSharedConfigProfile(awsProfile),
	}
	if region != "" {
		opts = append(opts, awsconfig.WithRegion(region))
	}

	cfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("load aws config for profile %q: %w", awsProfile, err)
	}

	return sdxl.NewBedrockInvoker(bedrockruntime.NewFromConfig(cfg)), nil
}

// printSuccess prints a success message.
func printSuccess(format string, args ...any) {
	cli.PrintSuccess(format, args...)
}

// printInfo prints an info message.
func printInfo(format string, args ...any) {
	cli.PrintInfo(format, args...)
}

// printVerbose prints verbose output if enabled.
func printVerbose(format string, args ...any) {
	cli.PrintVerbose(verbose, format, args...)
}
