package main

import (
	"context"
	"log"
	"os"

	"github.com/rubiojr/snix/cmd"
	"github.com/rubiojr/snix/pkg/config"
	"github.com/urfave/cli/v3"
)

func main() {
	app := &cli.Command{
		Name:      "snix",
		Usage:     "Search NixOS packages, options and flakes from the command line",
		ArgsUsage: "[query]",
		Flags: append([]cli.Flag{
			&cli.BoolFlag{
				Name:  "debug",
				Usage: "Enable debug logging",
				Value: false,
			},
			&cli.StringFlag{
				Name:  "config",
				Usage: "Configuration file path",
				Value: getDefaultConfigPathOrExit(),
			},
		}, cmd.SearchFlags()...),
		Action: cmd.SearchAction,
		Commands: []*cli.Command{
			cmd.InitCommand(),
			cmd.ChannelsCommand(),
			cmd.PlatformsCommand(),
			cmd.VersionCommand(),
		},
	}

	if err := app.Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}

func getDefaultConfigPathOrExit() string {
	path, err := config.GetDefaultConfigPath()
	if err != nil {
		log.Fatalf("Failed to get default config path: %v", err)
	}
	return path
}
