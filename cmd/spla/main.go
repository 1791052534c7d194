package main

import (
	"fmt"
	"os"

	"github.com/Parzival-05/spla"
	"github.com/Parzival-05/spla/cmd/spla/commands"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	cmd := os.Args[1]
	args := os.Args[2:]

	var err error
	switch cmd {
	case "info":
		err = commands.Info(args)
	case "target":
		err = commands.Target(args)
	case "env":
		err = commands.Env(args)
	case "version", "-v", "--version":
		fmt.Printf("spla version %s\n", spla.Version)
	case "help", "-h", "--help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", cmd)
		printUsage()
		os.Exit(1)
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`spla - sparse linear algebra library CLI

Usage: spla <command> [options]

Commands:
  info      Initialize the native library and print accelerator details
  target    Print the native artifact name resolved for a platform
  env       Print the environment variables the library reads
  version   Print version information
  help      Show this help message

Examples:
  spla info                       Load the library and report the accelerator
  spla info --config spla.toml    Apply accelerator settings from spla.toml
  spla target                     Artifact name for the current platform
  spla target --os windows --arch amd64

Configuration:
  The info command reads spla.toml from the current directory when present.
  Run 'spla env' to see the environment variables that override loading.`)
}
