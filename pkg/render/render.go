// Package render turns search responses into terminal output. It never
// re-sorts hits; display order is exactly the order the backend returned.
package render

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"
	"github.com/rubiojr/snix/pkg/log"
	"github.com/rubiojr/snix/pkg/search"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Display limits. Long fields are truncated so a result list stays scannable;
// --json is the escape hatch for full documents.
const (
	maxProgramsDisplay   = 10
	maxDescriptionLength = 150
	maxOptionDescription = 200
	maxDefaultLength     = 100
	maxExampleLength     = 100
	labelWidth           = 12
)

// Define styles using lipgloss
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("86"))

	countStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("40"))

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))

	labelStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("45"))

	nameStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("51"))

	optionNameStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("213"))

	versionStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("220"))

	programStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("40"))

	urlStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("33"))
)

var logger = log.ForService("render")

// Options control how hits are displayed.
type Options struct {
	Detailed bool
	Compact  bool
}

// Results renders a search response for the terminal. Params must be the same
// value the search ran with; pagination is needed to report how many of the
// total hits this page shows.
func Results(resp *search.Response, params search.SearchParams, opts Options) string {
	var out strings.Builder

	title := cases.Title(language.English).String(string(params.Type))
	out.WriteString(titleStyle.Render("❄ "+title) + "\n")

	total := resp.Total()
	shown := shownCount(total, params.From, params.Size)
	found := countStyle.Render(fmt.Sprintf("Found %d results", total))
	out.WriteString(found + " " + dimStyle.Render(fmt.Sprintf("(showing %d)", shown)) + "\n")

	hits := resp.Hits.Hits
	if len(hits) == 0 {
		return out.String()
	}
	if !opts.Compact {
		out.WriteString("\n")
	}

	for i, hit := range hits {
		out.WriteString(formatHit(hit, params.Type, i+1, opts.Detailed))
		if !opts.Compact && i < len(hits)-1 {
			out.WriteString("\n")
		}
	}

	return out.String()
}

// shownCount is how many hits this page can display: the page size, capped by
// what remains past the offset, floored at zero.
func shownCount(total, from, size int) int {
	remaining := total - from
	if remaining < 0 {
		remaining = 0
	}
	if size < remaining {
		return size
	}
	return remaining
}

func formatHit(hit search.Hit, t search.SearchType, index int, detailed bool) string {
	switch t {
	case search.TypeOptions:
		opt, err := hit.Option()
		if err != nil {
			logger.Warnf("skipping undecodable option hit %d: %v", index, err)
			return dimStyle.Render(fmt.Sprintf("[%d] <unreadable result>", index)) + "\n"
		}
		return formatOption(opt, index, detailed)
	case search.TypeFlakes:
		flake, err := hit.Flake()
		if err != nil {
			logger.Warnf("skipping undecodable flake hit %d: %v", index, err)
			return dimStyle.Render(fmt.Sprintf("[%d] <unreadable result>", index)) + "\n"
		}
		return formatFlake(flake, index, detailed)
	default:
		pkg, err := hit.Package()
		if err != nil {
			logger.Warnf("skipping undecodable package hit %d: %v", index, err)
			return dimStyle.Render(fmt.Sprintf("[%d] <unreadable result>", index)) + "\n"
		}
		return formatPackage(pkg, index, detailed)
	}
}

func formatPackage(pkg search.Package, index int, detailed bool) string {
	var out strings.Builder

	header := dimStyle.Render(fmt.Sprintf("[%d]", index)) + " " + nameStyle.Render(pkg.AttrName)
	if pkg.Version != "" {
		header += dimStyle.Render(" @ ") + versionStyle.Render(pkg.Version)
	}
	out.WriteString(header + "\n")

	if len(pkg.Programs) > 0 {
		programs := strings.Join(pkg.Programs[:min(len(pkg.Programs), maxProgramsDisplay)], " ")
		if extra := len(pkg.Programs) - maxProgramsDisplay; extra > 0 {
			programs += fmt.Sprintf(" ... (+%d more)", extra)
		}
		writeField(&out, "Programs", programStyle.Render(programs))
	}
	if pkg.Description != "" {
		writeField(&out, "Description", truncate(pkg.Description, maxDescriptionLength))
	}

	if detailed {
		if len(pkg.Homepage) > 0 {
			writeField(&out, "Homepage", urlStyle.Render(strings.Join(pkg.Homepage, " ")))
		}
		if len(pkg.Licenses) > 0 {
			writeField(&out, "License", strings.Join(pkg.Licenses[:min(len(pkg.Licenses), 3)], ", "))
		}
		if len(pkg.Maintainers) > 0 {
			names := make([]string, 0, 3)
			for _, m := range pkg.Maintainers[:min(len(pkg.Maintainers), 3)] {
				if name := m.DisplayName(); name != "" {
					names = append(names, name)
				}
			}
			if len(names) > 0 {
				writeField(&out, "Maintainers", strings.Join(names, ", "))
			}
		}
		if len(pkg.Platforms) > 0 {
			writeField(&out, "Platforms", dimStyle.Render(strings.Join(pkg.Platforms, " ")))
		}
		if pkg.LongDescription != "" {
			writeField(&out, "Details", pkg.LongDescription)
		}
	}

	writeField(&out, "Install", dimStyle.Render("nix-env -iA nixpkgs."+pkg.AttrName))
	writeField(&out, "", dimStyle.Render("nix profile install nixpkgs#"+pkg.AttrName))

	return out.String()
}

func formatOption(opt search.Option, index int, detailed bool) string {
	var out strings.Builder

	out.WriteString(dimStyle.Render(fmt.Sprintf("[%d]", index)) + " " + optionNameStyle.Render(opt.Name) + "\n")

	if opt.Type != "" {
		writeField(&out, "Type", opt.Type)
	}
	if opt.Description != "" {
		writeField(&out, "Description", truncate(opt.Description, maxOptionDescription))
	}
	if detailed {
		if opt.Default != "" {
			writeField(&out, "Default", versionStyle.Render(truncate(opt.Default, maxDefaultLength)))
		}
		if opt.Example != "" {
			writeField(&out, "Example", programStyle.Render(truncate(opt.Example, maxExampleLength)))
		}
	}

	return out.String()
}

func formatFlake(flake search.Flake, index int, detailed bool) string {
	var out strings.Builder

	name := flake.Name
	if name == "" {
		name = "unknown"
	}
	out.WriteString(dimStyle.Render(fmt.Sprintf("[%d]", index)) + " " + nameStyle.Render(name) + "\n")

	if flake.Description != "" {
		writeField(&out, "Description", truncate(flake.Description, maxDescriptionLength))
	}
	if src := flake.Resolved.String(); src != "" {
		writeField(&out, "Source", urlStyle.Render(src))
	}
	if detailed && flake.Resolved.Type != "" {
		writeField(&out, "Host", dimStyle.Render(flake.Resolved.Type))
	}

	return out.String()
}

func writeField(out *strings.Builder, label, value string) {
	padded := fmt.Sprintf("%-*s", labelWidth, label)
	if label != "" {
		padded = labelStyle.Render(padded)
	}
	out.WriteString("  " + padded + " " + value + "\n")
}

// truncate shortens s to at most max bytes plus an ellipsis, stepping back
// to the previous rune boundary so multi-byte characters are never split.
func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	cut := max
	for cut > 0 && !utf8.RuneStart(s[cut]) {
		cut--
	}
	return s[:cut] + "..."
}
