package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	sitekit "github.com/alnah/go-sitekit"
	"github.com/alnah/go-sitekit/internal/fileutil"
	"github.com/alnah/go-sitekit/internal/logfields"
)

// htmlExtensions are the built files the transform command rewrites.
var htmlExtensions = []string{".html", ".htm"}

// transformResult counts the outcome of a transform run.
type transformResult struct {
	total, changed, failed int
}

// runTransform applies the registered transforms to every HTML file of the
// built site, in place.
func runTransform(ctx context.Context, args []string, env *Environment) error {
	flags, positional, err := parseTransformFlags(args, env.Stderr)
	if err != nil {
		return usageError(err)
	}

	s, err := newSession(flags.common, positional, outputDirArg, env)
	if err != nil {
		return err
	}

	reg := sitekit.NewRegistry()
	if err := sitekit.Setup(reg, s.cfg, s.opts...); err != nil {
		return err
	}

	files, err := fileutil.Discover(s.cfg.OutputDir, htmlExtensions)
	if err != nil {
		return fmt.Errorf("scanning output directory: %w", err)
	}

	res, err := transformFiles(ctx, reg, files, flags.dryRun, s)
	if !flags.common.quiet {
		verb := "changed"
		if flags.dryRun {
			verb = "would change"
		}
		fmt.Fprintf(env.Stdout, "%d HTML files: %d %s, %d failed\n", res.total, res.changed, verb, res.failed)
	}
	if err != nil {
		return err
	}
	if res.failed > 0 {
		return fmt.Errorf("%w: %d of %d files", ErrFilesFailed, res.failed, res.total)
	}
	return nil
}

// transformFiles runs the registry's transforms over files, sequentially.
// Output paths are passed slash-separated, as the site generator would.
func transformFiles(ctx context.Context, reg *sitekit.Registry, files []string, dryRun bool, s *session) (transformResult, error) {
	start := time.Now()
	var res transformResult

	for _, file := range files {
		if err := ctx.Err(); err != nil {
			return res, err
		}
		res.total++

		data, err := os.ReadFile(file) // #nosec G304 -- path comes from walking the output directory
		if err != nil {
			s.logger.Warn("cannot read file", logfields.File(file), logfields.Error(err))
			res.failed++
			continue
		}

		out, err := reg.Transform(string(data), filepath.ToSlash(file))
		if err != nil {
			s.logger.Warn("transform failed, file left as-is", logfields.File(file), logfields.Error(err))
			res.failed++
			continue
		}
		if out == string(data) {
			continue
		}

		res.changed++
		if dryRun {
			s.logger.Info("would transform", logfields.File(file))
			continue
		}
		if err := fileutil.WriteFileAtomic(file, []byte(out), fileutil.FileMode(file)); err != nil {
			s.logger.Warn("cannot write file", logfields.File(file), logfields.Error(err))
			res.changed--
			res.failed++
			continue
		}
		s.logger.Debug("transformed", logfields.File(file))
	}

	s.logger.Debug("transform finished", logfields.Count(res.total), logfields.Since(start))
	return res, nil
}
