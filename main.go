package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/hailam/pokedat/internal/adapters/factory"
	"github.com/hailam/pokedat/internal/application"
	"github.com/hailam/pokedat/internal/ports"
	"github.com/hailam/pokedat/internal/textfile"

	_ "github.com/hailam/pokedat/internal/adapters/json"
	_ "github.com/hailam/pokedat/internal/adapters/txt"
)

func main() {
	if len(os.Args) < 4 {
		fmt.Println("Usage: pokedat <command> <version> <input> [output] [format]")
		fmt.Println("Commands: read, write, merge, split")
		fmt.Println("Versions: LGPE, SWSH, LA, SV, LZA")
		fmt.Println("Formats: json (default), txt")
		os.Exit(1)
	}
	command := os.Args[1]
	version := strings.ToUpper(os.Args[2])
	input := os.Args[3]
	output := ""
	if len(os.Args) > 4 {
		output = os.Args[4]
	}
	format := ports.FormatJSON
	if len(os.Args) > 5 {
		format = ports.Format(strings.ToLower(os.Args[5]))
	}

	cfg, err := textfile.NewConfig(ports.GameVersion(version))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Invalid version: %v\n", err)
		os.Exit(1)
	}
	service := application.NewTextService(cfg, factory.NewSerializerFactory())

	switch command {
	case "read":
		err = runOnPath(input, func(dir bool) error {
			if dir {
				_, dirErr := service.ReadDir(input, output, format)
				return dirErr
			}
			return service.ReadFile(input, filepath.Dir(input), output, format)
		})
	case "write":
		if output == "" {
			fmt.Fprintln(os.Stderr, "Missing output path for 'write' command")
			os.Exit(1)
		}
		err = runOnPath(input, func(dir bool) error {
			if dir {
				_, dirErr := service.WriteDir(input, output, format)
				return dirErr
			}
			return service.WriteFile(input, filepath.Dir(input), output, format)
		})
	case "merge":
		if output == "" {
			fmt.Fprintln(os.Stderr, "Missing output path for 'merge' command")
			os.Exit(1)
		}
		err = service.Merge(input, output)
	case "split":
		if output == "" {
			fmt.Fprintln(os.Stderr, "Missing output path for 'split' command")
			os.Exit(1)
		}
		err = service.Split(input, output)
	default:
		fmt.Fprintf(os.Stderr, "Unsupported command: %s\n", command)
		os.Exit(1)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// runOnPath dispatches fn with whether input is a directory.
func runOnPath(input string, fn func(dir bool) error) error {
	info, err := os.Stat(input)
	if err != nil {
		return err
	}
	return fn(info.IsDir())
}
