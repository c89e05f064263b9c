// Package distro identifies the running distribution.
package distro

import (
	"context"
	"sort"
	"strings"

	"github.com/jnavila/curtin/internal/logger"
	"github.com/jnavila/curtin/pkg/execute"
)

// unavailable marks release fields that could not be determined.
const unavailable = "UNAVAILABLE"

// Release describes the running distribution as reported by lsb_release.
type Release struct {
	ID          string
	Description string
	Release     string
	Codename    string
}

// LsbRelease probes the platform by running lsb_release --all.
//
// The probe never fails the caller: if the command cannot be run, every
// field is set to "UNAVAILABLE" and a warning is logged. Fields missing
// from the output are left empty and logged as a warning.
func LsbRelease(ctx context.Context, runner execute.Runner) Release {
	stdout, _, err := runner.Run(ctx, "lsb_release", "--all")
	if err != nil {
		logger.Warn("unable to run lsb_release --all: %v", err)
		return Release{
			ID:          unavailable,
			Description: unavailable,
			Release:     unavailable,
			Codename:    unavailable,
		}
	}

	return parseLsbRelease(stdout)
}

// parseLsbRelease extracts the four labeled fields from lsb_release output.
func parseLsbRelease(out string) Release {
	var rel Release
	fields := map[string]*string{
		"Distributor ID": &rel.ID,
		"Description":    &rel.Description,
		"Release":        &rel.Release,
		"Codename":       &rel.Codename,
	}

	for _, line := range strings.Split(out, "\n") {
		name, value, found := strings.Cut(line, ":")
		if !found {
			continue
		}
		if dst, ok := fields[strings.TrimSpace(name)]; ok {
			*dst = strings.TrimSpace(value)
		}
	}

	var missing []string
	for name, dst := range fields {
		if *dst == "" {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		sort.Strings(missing)
		logger.Warn("missing fields in lsb_release --all output: %s", strings.Join(missing, ","))
	}

	return rel
}
