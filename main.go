package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/pkg/errors"

	"url-switcher/commands"
)

func main() {
	env, err := commands.NewEnv(os.Stdout, os.Stderr)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	os.Exit(run(env, os.Args[1:]))
}

func run(env *commands.Env, args []string) int {
	if len(args) < 1 {
		commands.PrintUsage(env.Stdout)
		return 1
	}

	command := strings.ToLower(args[0])
	var err error
	switch command {
	case "localhost":
		err = commands.LocalhostCommand(env, args[1:])
	case "production":
		err = commands.ProductionCommand(env, args[1:])
	case "status":
		err = commands.StatusCommand(env, args[1:])
	default:
		fmt.Fprintf(env.Stdout, "Unknown command: %s\n\n", command)
		commands.PrintUsage(env.Stdout)
		return 1
	}

	if errors.Is(err, flag.ErrHelp) {
		return 0
	}
	if err != nil {
		fmt.Fprintf(env.Stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}
