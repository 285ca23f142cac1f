package cmd

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"
)

// Reference lists for the channels and platforms subcommands. The backend is
// the source of truth for which channels exist; unknown ones are passed
// through to it untouched, so these lists are purely informational.
var knownChannels = []string{
	"unstable",
	"25.05",
	"24.11",
	"24.05",
	"23.11",
}

var knownPlatforms = []string{
	"x86_64-linux",
	"aarch64-linux",
	"aarch64-darwin",
	"x86_64-darwin",
	"i686-linux",
	"armv7l-linux",
	"riscv64-linux",
	"powerpc64le-linux",
}

// ChannelsCommand creates the channels command
func ChannelsCommand() *cli.Command {
	return &cli.Command{
		Name:  "channels",
		Usage: "List commonly available release channels",
		Action: func(ctx context.Context, c *cli.Command) error {
			for _, channel := range knownChannels {
				fmt.Println(channel)
			}
			return nil
		},
	}
}

// PlatformsCommand creates the platforms command
func PlatformsCommand() *cli.Command {
	return &cli.Command{
		Name:  "platforms",
		Usage: "List platform strings accepted by --platform",
		Action: func(ctx context.Context, c *cli.Command) error {
			for _, platform := range knownPlatforms {
				fmt.Println(platform)
			}
			return nil
		},
	}
}
