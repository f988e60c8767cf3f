package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/briandowns/spinner"
	"github.com/spf13/cobra"

	"github.com/hailam/pokedat/internal/adapters/factory"
	"github.com/hailam/pokedat/internal/application"
	"github.com/hailam/pokedat/internal/ports"
	"github.com/hailam/pokedat/internal/textfile"

	// --- Add blank imports for ALL serializer packages ---
	// This ensures their init() functions run and register the serializers.
	_ "github.com/hailam/pokedat/internal/adapters/json"
	_ "github.com/hailam/pokedat/internal/adapters/txt"
)

// Variables to hold flag values
var versionStr string
var formatStr string
var remapChars bool

// newService is the composition root: game config, serializer factory,
// application service.
func newService() (*application.TextService, error) {
	cfg, err := textfile.NewConfig(ports.GameVersion(strings.ToUpper(versionStr)))
	if err != nil {
		return nil, err
	}
	service := application.NewTextService(cfg, factory.NewSerializerFactory())
	service.Remap = remapChars
	return service, nil
}

func format() ports.Format {
	return ports.Format(strings.ToLower(formatStr))
}

// withSpinner runs fn behind a progress spinner for directory batches.
func withSpinner(prefix string, fn func() error) error {
	sp := spinner.New(spinner.CharSets[14], 100*time.Millisecond)
	sp.Prefix = prefix
	sp.Start()
	err := fn()
	sp.Stop()
	return err
}

func main() {
	var rootCmd = &cobra.Command{
		Use:   "pokedat",
		Short: "Extracts and rebuilds Switch-era game text containers.",
		Long: `pokedat is a CLI tool for the .dat text containers used by LGPE, SWSH,
LA, SV and LZA. It extracts game strings to editable documents (json, txt),
compiles edited documents back into .dat files, and can merge a whole tree of
containers into one flat text file and split it back.`,
		SilenceUsage: true,
	}
	rootCmd.PersistentFlags().StringVarP(&versionStr, "version", "v", "",
		"Game version (LGPE, SWSH, LA, SV, LZA) (required)")
	rootCmd.PersistentFlags().StringVarP(&formatStr, "format", "f", "json",
		"Document format (json or txt)")
	rootCmd.PersistentFlags().BoolVar(&remapChars, "remap", false,
		"Remap private-use characters to Unicode equivalents")
	rootCmd.MarkPersistentFlagRequired("version")

	readCmd := &cobra.Command{
		Use:   "read <file or folder> [output_folder]",
		Short: "Extracts texts from .dat files.",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			service, err := newService()
			if err != nil {
				return err
			}
			input := args[0]
			output := ""
			if len(args) == 2 {
				output = args[1]
			}
			info, err := os.Stat(input)
			if err != nil {
				return err
			}
			if info.IsDir() {
				return withSpinner(fmt.Sprintf("Reading %s... ", input), func() error {
					_, err := service.ReadDir(input, output, format())
					return err
				})
			}
			return service.ReadFile(input, filepath.Dir(input), output, format())
		},
	}

	writeCmd := &cobra.Command{
		Use:   "write <file or folder> <output_folder>",
		Short: "Generates .dat files from documents.",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			service, err := newService()
			if err != nil {
				return err
			}
			input, output := args[0], args[1]
			info, err := os.Stat(input)
			if err != nil {
				return err
			}
			if info.IsDir() {
				return withSpinner(fmt.Sprintf("Writing %s... ", input), func() error {
					_, err := service.WriteDir(input, output, format())
					return err
				})
			}
			return service.WriteFile(input, filepath.Dir(input), output, format())
		},
	}

	mergeCmd := &cobra.Command{
		Use:   "merge <input_folder> <output_file>",
		Short: "Concatenates every decoded .dat into one flat text file.",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			service, err := newService()
			if err != nil {
				return err
			}
			return withSpinner(fmt.Sprintf("Merging %s... ", args[0]), func() error {
				return service.Merge(args[0], args[1])
			})
		},
	}

	splitCmd := &cobra.Command{
		Use:   "split <input_file> <output_folder>",
		Short: "Rebuilds .dat files from a merged flat text file.",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			service, err := newService()
			if err != nil {
				return err
			}
			return withSpinner(fmt.Sprintf("Splitting %s... ", args[0]), func() error {
				return service.Split(args[0], args[1])
			})
		},
	}

	rootCmd.AddCommand(readCmd, writeCmd, mergeCmd, splitCmd)
	if err := rootCmd.Execute(); err != nil {
		// Cobra prints errors automatically, but we exit non-zero
		os.Exit(1)
	}
}
