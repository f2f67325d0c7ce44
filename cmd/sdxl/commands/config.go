package commands

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/bedrocktools/sdxl/pkg/cli"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage CLI configuration",
	Long: `Manage CLI configuration and contexts.

Contexts allow you to manage multiple invocation presets (AWS profile,
region, model, output directory), similar to kubectl's context
management. Explicit flags always override context values.

Configuration is stored in ~/.sdxl/config.yaml`,
}

var configAddContextCmd = &cobra.Command{
	Use:   "add-context <name>",
	Short: "Add a new context",
	Long: `Add a new context with the specified name.

Example:
  sdxl config add-context prod --aws-profile bedrock-prod --region us-west-2
  sdxl config add-context local --output-dir ~/renders`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		name := args[0]

		profile, err := cmd.Flags().GetString("aws-profile")
		if err != nil {
			return fmt.Errorf("failed to read 'aws-profile' flag: %w", err)
		}
		region, err := cmd.Flags().GetString("region")
		if err != nil {
			return fmt.Errorf("failed to read 'region' flag: %w", err)
		}
		model, err := cmd.Flags().GetString("model")
		if err != nil {
			return fmt.Errorf("failed to read 'model' flag: %w", err)
		}
		outputDir, err := cmd.Flags().GetString("output-dir")
		if err != nil {
			return fmt.Errorf("failed to read 'output-dir' flag: %w", err)
		}

		cfg := getConfig()
		err = cfg.AddContext(name, &cli.Context{
			AWSProfile: profile,
			Region:     region,
			Model:      model,
			OutputDir:  outputDir,
		})
		if err != nil {
			return err
		}

		cli.PrintSuccess("Context %q added successfully", name)
		return nil
	},
}

var configDeleteContextCmd = &cobra.Command{
	Use:   "delete-context <name>",
	Short: "Delete a context",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		name := args[0]

		cfg := getConfig()
		if err := cfg.DeleteContext(name); err != nil {
			return err
		}

		cli.PrintSuccess("Context %q deleted", name)
		return nil
	},
}

var configUseContextCmd = &cobra.Command{
	Use:   "use-context <name>",
	Short: "Set the current context",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		name := args[0]

		cfg := getConfig()
		if err := cfg.UseContext(name); err != nil {
			return err
		}

		cli.PrintSuccess("Switched to context %q", name)
		return nil
	},
}

var configGetContextCmd = &cobra.Command{
	Use:   "get-context",
	Short: "Display the current context",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := getConfig()

		if cfg.CurrentContext == "" {
			fmt.Println("No current context set")
			return nil
		}

		fmt.Println(cfg.CurrentContext)
		return nil
	},
}

var configListContextsCmd = &cobra.Command{
	Use:     "list-contexts",
	Aliases: []string{"get-contexts"},
	Short:   "List all contexts",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := getConfig()

		if len(cfg.Contexts) == 0 {
			fmt.Println("No contexts configured")
			return nil
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "CURRENT\tNAME\tAWS_PROFILE\tREGION\tMODEL")

		for name, ctx := range cfg.Contexts {
			current := ""
			if name == cfg.CurrentContext {
				current = "*"
			}
			model := ctx.Model
			if model == "" {
				model = "(default)"
			}
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n", current, name, ctx.AWSProfile, ctx.Region, model)
		}

		w.Flush()
		return nil
	},
}

var configViewCmd = &cobra.Command{
	Use:   "view",
	Short: "View the current configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := getConfig()

		fmt.Printf("Config file: %s\n", cfg.Path())
		fmt.Printf("Current context: %s\n", cfg.CurrentContext)
		fmt.Printf("Contexts: %d\n", len(cfg.Contexts))

		if len(cfg.Contexts) > 0 {
			fmt.Println("\nContext details:")
			for name, ctx := range cfg.Contexts {
				fmt.Printf("\n  %s:\n", name)
				if ctx.AWSProfile != "" {
					fmt.Printf("    AWS Profile: %s\n", ctx.AWSProfile)
				}
				if ctx.Region != "" {
					fmt.Printf("    Region: %s\n", ctx.Region)
				}
				if ctx.Model != "" {
					fmt.Printf("    Model: %s\n", ctx.Model)
				}
				if ctx.OutputDir != "" {
					fmt.Printf("    Output Dir: %s\n", ctx.OutputDir)
				}
			}
		}

		return nil
	},
}

func init() {
	configAddContextCmd.Flags().String("aws-profile", "", "AWS profile for credentials")
	configAddContextCmd.Flags().String("region", "", "AWS region")
	configAddContextCmd.Flags().String("model", "", "Bedrock model identifier")
	configAddContextCmd.Flags().String("output-dir", "", "Default output directory")

	configCmd.AddCommand(configAddContextCmd)
	configCmd.AddCommand(configDeleteContextCmd)
	configCmd.AddCommand(configUseContextCmd)
	configCmd.AddCommand(configGetContextCmd)
	configCmd.AddCommand(configListContextsCmd)
	configCmd.AddCommand(configViewCmd)
}
