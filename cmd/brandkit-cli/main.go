// Package main provides the brandkit CLI entrypoint.
package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/b-ciq/brandkit/internal/cache"
	"github.com/b-ciq/brandkit/internal/config"
	"github.com/b-ciq/brandkit/internal/inventory"
	"github.com/b-ciq/brandkit/internal/match"
	"github.com/b-ciq/brandkit/internal/observability"
)

// version is set at build time via -ldflags.
var version = "dev"

var (
	// Global flags
	cfgFile    string
	outputJSON bool
	verbose    bool
	noColor    bool

	// Configuration and shared services
	cfg     *config.Config
	logger  *observability.Logger
	service *match.Service
	ui      *UI
)

// rootCmd represents the base command.
var rootCmd = &cobra.Command{
	Use:   "brandkit",
	Short: "CIQ brand asset lookup from the command line",
	Long: `brandkit finds the right CIQ brand asset for a use case.

Describe what you need in plain language and get back a download URL with
usage guidance, or a single clarifying question when the request is too
vague to answer safely.

All commands support --json for automation.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// .env is optional; flags and env vars win over it.
		_ = godotenv.Load()

		var err error
		cfg, err = config.Load(cfgFile)
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}

		level := cfg.Observability.LogLevel
		if !verbose {
			level = "error"
		}
		logger = observability.NewLogger(observability.LogConfig{
			Level:       level,
			Format:      "console",
			ServiceName: "brandkit-cli",
		})

		loader := inventory.NewLoader(cfg.Inventory, logger)
		service = match.NewService(logger, loader, cache.NewMemoryClient(cfg.Cache.MaxEntries), *cfg)
		ui = NewUI(outputJSON, noColor)
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "config file path (default: uses env vars)")
	rootCmd.PersistentFlags().BoolVar(&outputJSON, "json", false, "output in JSON format")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored output")

	rootCmd.AddCommand(newAskCmd())
	rootCmd.AddCommand(newAssetsCmd())
	rootCmd.AddCommand(newProductsCmd())
	rootCmd.AddCommand(newGuidelinesCmd())
	rootCmd.AddCommand(newRefreshCmd())
	rootCmd.AddCommand(newVersionCmd())
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// newAskCmd creates the ask subcommand.
func newAskCmd() *cobra.Command {
	var background string

	cmd := &cobra.Command{
		Use:   "ask \"<request>\"",
		Short: "Find the best asset for a free-text request",
		Example: `  brandkit ask "fuzzball icon for a dark background"
  brandkit ask "warewulf logo" --background dark
  brandkit ask "CIQ 1-color logo on light"`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if background != "" && background != "light" && background != "dark" {
				return fmt.Errorf("background must be light or dark, got %q", background)
			}

			ui.StartSpinner("Finding the right asset...")
			resp := service.GetBrandAsset(cmd.Context(), args[0], background)
			ui.StopSpinner()

			if outputJSON {
				return printJSON(resp)
			}

			ui.Markdown(resp.Message)
			if resp.Question != nil {
				ui.Info("\nOptions: %v", resp.Question.Options)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&background, "background", "b", "", "background the asset will sit on (light|dark)")
	return cmd
}

// newAssetsCmd creates the assets subcommand.
func newAssetsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "assets",
		Short: "List every product catalog with sample assets",
		RunE: func(cmd *cobra.Command, args []string) error {
			ui.StartSpinner("Loading inventory...")
			listing, err := service.ListAssets(cmd.Context())
			ui.StopSpinner()
			if err != nil {
				ui.Error("%s", match.UnavailableMessage)
				return err
			}

			if outputJSON {
				return printJSON(listing)
			}

			for _, p := range listing.Products {
				ui.Header(fmt.Sprintf("%s (%d assets)", p.DisplayName, p.AssetCount))
				if p.Description != "" {
					ui.Info("%s", p.Description)
				}
				for _, s := range p.Samples {
					ui.Info("  - %s  %s", s.Filename, s.URL)
				}
			}
			ui.Info("\n%d assets total", listing.TotalAssets)
			return nil
		},
	}
}

// newProductsCmd creates the products subcommand.
func newProductsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "products",
		Short: "List the products brandkit knows about",
		RunE: func(cmd *cobra.Command, args []string) error {
			products, err := service.Products(cmd.Context())
			if err != nil {
				ui.Error("%s", match.UnavailableMessage)
				return err
			}

			if outputJSON {
				return printJSON(map[string]any{"products": products})
			}

			for _, p := range products {
				if p.Description != "" {
					ui.Info("%-14s %s", p.Key, p.Description)
				} else {
					ui.Info("%s", p.Key)
				}
			}
			return nil
		},
	}
}

// newGuidelinesCmd creates the guidelines subcommand.
func newGuidelinesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "guidelines",
		Short: "Show the brand usage guidelines",
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := service.Guidelines(cmd.Context())
			if err != nil {
				ui.Error("%s", match.UnavailableMessage)
				return err
			}

			if outputJSON {
				return printJSON(g)
			}

			ui.Markdown(g.Message)
			return nil
		},
	}
}

// newRefreshCmd creates the refresh subcommand.
func newRefreshCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "refresh",
		Short: "Re-fetch the asset inventory",
		RunE: func(cmd *cobra.Command, args []string) error {
			ui.StartSpinner("Refreshing inventory...")
			err := service.Refresh(cmd.Context())
			ui.StopSpinner()
			if err != nil {
				ui.Error("Refresh failed")
				return err
			}

			listing, err := service.ListAssets(cmd.Context())
			if err != nil {
				return err
			}
			if outputJSON {
				return printJSON(map[string]any{"status": "refreshed", "total_assets": listing.TotalAssets})
			}
			ui.Success("Inventory refreshed: %d assets across %d products",
				listing.TotalAssets, len(listing.Products))
			return nil
		},
	}
}

// newVersionCmd creates the version subcommand.
func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the brandkit version",
		Run: func(cmd *cobra.Command, args []string) {
			if outputJSON {
				_ = printJSON(map[string]string{"version": version})
				return
			}
			fmt.Printf("brandkit %s\n", version)
		},
	}
}

func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
