package main

import (
	"context"
	"fmt"
	"io"

	sitekit "github.com/alnah/go-sitekit"
)

// runDates rewrites front matter dates under the content directory to their
// canonical form.
func runDates(ctx context.Context, args []string, env *Environment) error {
	flags, positional, err := parseDatesFlags(args, env.Stderr)
	if err != nil {
		return usageError(err)
	}

	s, err := newSession(flags.common, positional, contentDirArg, env)
	if err != nil {
		return err
	}

	opts := append(s.opts, sitekit.WithDryRun(flags.dryRun))
	report, err := sitekit.NormalizeDates(ctx, s.cfg.ContentDir, opts...)
	if !flags.common.quiet {
		printReport(env.Stdout, report, flags.dryRun)
	}
	if err != nil {
		return err
	}
	return reportError(report)
}

// printReport writes a one-line summary of a normalization run.
func printReport(w io.Writer, r *sitekit.Report, dryRun bool) {
	verb := "updated"
	if dryRun {
		verb = "would update"
	}
	fmt.Fprintf(w, "%d files: %d %s, %d unchanged, %d skipped, %d failed\n",
		r.Total(), len(r.Updated), verb, len(r.Unchanged), len(r.Skipped), len(r.Failed))
}

// reportError returns ErrFilesFailed with hints for the failures in r, or nil.
func reportError(r *sitekit.Report) error {
	if len(r.Failed) == 0 {
		return nil
	}
	return fmt.Errorf("%w: %d of %d files%s", ErrFilesFailed, len(r.Failed), r.Total(), hintFor(r.Err()))
}
