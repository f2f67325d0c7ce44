package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/bedrocktools/sdxl/pkg/cli"
	"github.com/bedrocktools/sdxl/pkg/sdxl"
)

var (
	// Global flags
	cfgFile     string
	contextName string
	verbose     bool

	// Generate flags
	promptArgs  []string
	bodyArgs    []string
	outputDir   string
	requestFile string
	awsProfile  string
	region      string
	modelID     string
	debug       bool
	noOpen      bool

	// Global configuration
	globalConfig *cli.Config
)

// rootCmd runs the generation pipeline when invoked with flags.
var rootCmd = &cobra.Command{
	Use:   "sdxl",
	Short: "Stable Diffusion XL text-to-image on AWS Bedrock",
	Long: `sdxl - Stable Diffusion XL text-to-image generation on AWS Bedrock.

Prompts are supplied either as one bare string or as repeated text/weight
pairs. Body parameters are key/value pairs merged over the defaults; the
known numeric keys (height, width, cfg_scale, samples, seed, steps) are
coerced to integers. A prepared request body can be supplied instead with
--request.

The generated image and the exact request body are written to the output
directory under a name derived from the prompt text and an 8-character
fingerprint of the request content.

Examples:
  # One bare prompt (implicit weight 1.0)
  sdxl -p "a red fox in the snow"

  # Weighted prompts: pairs of text and weight
  sdxl -p "a red fox" -p 1.0 -p "blurry, low quality" -p -1.0

  # Override body parameters
  sdxl -p "a red fox" -b steps -b 40 -b cfg_scale -b 9

  # Replay a prepared request body
  sdxl -r output/a_red_fox_1a2b3c4d.json

  # Use a named context for profile/region defaults
  sdxl config add-context prod --aws-profile bedrock-prod --region us-west-2
  sdxl -c prod -p "a red fox"`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runGenerate,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ~/.sdxl/config.yaml)")
	rootCmd.PersistentFlags().StringVarP(&contextName, "context", "c", "", "context name to use")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")

	rootCmd.Flags().StringArrayVarP(&promptArgs, "prompts", "p", nil, "a single string, or repeated text/weight pairs")
	rootCmd.Flags().StringArrayVarP(&bodyArgs, "body-params", "b", nil, "repeated key/value pairs of body parameters")
	rootCmd.Flags().StringVarP(&outputDir, "output-dir", "o", "output", "output directory")
	rootCmd.Flags().StringVarP(&requestFile, "request", "r", "", "use the request body in this .json file")
	rootCmd.Flags().StringVarP(&awsProfile, "aws-profile", "a", "bedrock-sdxl", "aws profile to use from ~/.aws/config")
	rootCmd.Flags().StringVar(&region, "region", "", "aws region (defaults to the profile's region)")
	rootCmd.Flags().StringVar(&modelID, "model", sdxl.ModelID, "bedrock model identifier")
	rootCmd.Flags().BoolVar(&debug, "debug", false, "print the assembled request body before sending")
	rootCmd.Flags().BoolVar(&noOpen, "no-open", false, "do not open the generated image in a viewer")

	rootCmd.AddCommand(configCmd)
}

func initConfig() {
	var err error
	globalConfig, err = cli.LoadConfigWithPath(cfgFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing config: %v\n", err)
		os.Exit(1)
	}
}

// getConfig returns the global configuration.
func getConfig() *cli.Config {
	return globalConfig
}

// getContext returns the selected context, or nil when none is selected
// and no current context is set.
func getContext() (*cli.Context, error) {
	cfg := getConfig()
	if cfg == nil {
		return nil, fmt.Errorf("configuration not initialized")
	}
	return cfg.ResolveContext(contextName)
}
