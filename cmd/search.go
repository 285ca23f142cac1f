package cmd

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/rubiojr/snix/pkg/config"
	"github.com/rubiojr/snix/pkg/log"
	"github.com/rubiojr/snix/pkg/render"
	"github.com/rubiojr/snix/pkg/search"
	"github.com/urfave/cli/v3"
)

// Exit codes. Zero hits is a successful search, not a failure.
const (
	exitValidation = 2
	exitRequest    = 3
)

// pagerThreshold is the result count above which output is paged when the
// user did not say either way.
const pagerThreshold = 10

// SearchFlags returns the search flag surface. Search is the root command's
// action rather than a subcommand so that `snix firefox` just works.
func SearchFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "program",
			Aliases: []string{"p"},
			Usage:   "Search by provided program name (supports * and ? wildcards)",
		},
		&cli.StringFlag{
			Name:    "name",
			Aliases: []string{"n"},
			Usage:   "Search by package or option attribute name (supports * and ? wildcards)",
		},
		&cli.StringFlag{
			Name:    "version",
			Aliases: []string{"v"},
			Usage:   "Filter by version (supports * and ? wildcards)",
		},
		&cli.StringFlag{
			Name:    "type",
			Aliases: []string{"t"},
			Usage:   "Result type: packages, options or flakes",
			Value:   string(search.TypePackages),
		},
		&cli.StringFlag{
			Name:    "channel",
			Aliases: []string{"c"},
			Usage:   "NixOS channel to search (unstable, 25.05, 24.11, ...)",
		},
		&cli.StringFlag{
			Name:  "platform",
			Usage: "Filter by platform (e.g. x86_64-linux, aarch64-darwin)",
		},
		&cli.BoolFlag{
			Name:    "detailed",
			Aliases: []string{"d"},
			Usage:   "Show detailed information for each result",
		},
		&cli.BoolFlag{
			Name:  "compact",
			Usage: "No spacing between results",
		},
		&cli.BoolFlag{
			Name:    "reverse",
			Aliases: []string{"r"},
			Usage:   "Ascending instead of descending sort",
		},
		&cli.BoolFlag{
			Name:  "json",
			Usage: "Output the raw JSON response",
		},
		&cli.IntFlag{
			Name:    "size",
			Aliases: []string{"s"},
			Usage:   "Number of results per page",
			Value:   search.DefaultSize,
		},
		&cli.IntFlag{
			Name:  "from",
			Usage: "Pagination offset",
			Value: 0,
		},
		&cli.BoolFlag{
			Name:  "pager",
			Usage: "Force pager usage",
		},
		&cli.BoolFlag{
			Name:  "no-pager",
			Usage: "Disable pager and output directly to terminal",
		},
		&cli.StringFlag{
			Name:  "base-url",
			Usage: "Search backend URL (overrides config)",
		},
	}
}

// SearchAction is the root command action: build parameters, run the search,
// render the response.
func SearchAction(ctx context.Context, c *cli.Command) error {
	if c.Bool("debug") {
		log.SetGlobalDebug(true)
	}

	cfg, err := config.LoadConfig(c.String("config"))
	if err != nil {
		return cli.Exit(err.Error(), exitValidation)
	}

	searchType, err := search.ParseSearchType(c.String("type"))
	if err != nil {
		return cli.Exit(err.Error(), exitValidation)
	}

	channel := c.String("channel")
	if channel == "" {
		channel = cfg.Channel
	}
	if channel == "" {
		channel = search.DefaultChannel
	}
	baseURL := c.String("base-url")
	if baseURL == "" {
		baseURL = cfg.BaseURL
	}

	params := search.SearchParams{
		Query:    strings.Join(c.Args().Slice(), " "),
		Type:     searchType,
		Program:  c.String("program"),
		Name:     c.String("name"),
		Version:  c.String("version"),
		Platform: c.String("platform"),
		Channel:  channel,
		From:     c.Int("from"),
		Size:     c.Int("size"),
		Reverse:  c.Bool("reverse"),
	}
	if err := params.Validate(); err != nil {
		return cli.Exit(err.Error(), exitValidation)
	}

	client := search.NewClient(search.ClientConfig{
		BaseURL:  baseURL,
		Username: cfg.Username,
		Password: cfg.Password,
		Timeout:  cfg.Timeout.Duration,
	})

	resp, err := client.Search(ctx, params)
	if err != nil {
		var verr *search.ValidationError
		if errors.As(err, &verr) {
			return cli.Exit(err.Error(), exitValidation)
		}
		return cli.Exit(err.Error(), exitRequest)
	}

	if c.Bool("json") {
		// Verbatim passthrough for scripting; only page when explicitly asked.
		output := string(resp.Raw)
		if pagerForced(c, cfg) && isTerminal() {
			return displayWithPager(output)
		}
		fmt.Println(output)
		return nil
	}

	output := render.Results(resp, params, render.Options{
		Detailed: c.Bool("detailed"),
		Compact:  c.Bool("compact"),
	})

	if shouldUsePager(c, cfg, len(resp.Hits.Hits)) && isTerminal() {
		return displayWithPager(output)
	}
	fmt.Print(output)
	return nil
}

// shouldUsePager decides pager usage: flags beat config, config beats the
// result-count heuristic.
func shouldUsePager(c *cli.Command, cfg *config.Config, rendered int) bool {
	if c.Bool("no-pager") {
		return false
	}
	if c.Bool("pager") {
		return true
	}
	switch cfg.Pager {
	case config.PagerAlways:
		return true
	case config.PagerNever:
		return false
	}
	return rendered > pagerThreshold
}

// pagerForced reports an explicit pager request, ignoring the heuristic.
func pagerForced(c *cli.Command, cfg *config.Config) bool {
	if c.Bool("no-pager") {
		return false
	}
	return c.Bool("pager") || cfg.Pager == config.PagerAlways
}
