package sitekit

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/alnah/go-sitekit/internal/dateutil"
	"github.com/alnah/go-sitekit/internal/fileutil"
	"github.com/alnah/go-sitekit/internal/frontmatter"
	"github.com/alnah/go-sitekit/internal/logfields"
)

// FileError records a per-file failure.
type FileError struct {
	Path string
	Err  error
}

func (e *FileError) Error() string { return e.Path + ": " + e.Err.Error() }
func (e *FileError) Unwrap() error { return e.Err }

// Report summarizes a NormalizeDates run.
type Report struct {
	Updated   []string     // Rewritten with a canonical date
	Unchanged []string     // Date already canonical
	Skipped   []string     // No front matter or no date field
	Failed    []*FileError // Unreadable, unparseable or unwritable
}

// Total returns the number of files examined.
func (r *Report) Total() int {
	return len(r.Updated) + len(r.Unchanged) + len(r.Skipped) + len(r.Failed)
}

// Err joins the per-file failures, or returns nil.
func (r *Report) Err() error {
	if len(r.Failed) == 0 {
		return nil
	}
	errs := make([]error, len(r.Failed))
	for i, f := range r.Failed {
		errs[i] = f
	}
	return errors.Join(errs...)
}

// NormalizeDates rewrites the date field of every content file under dir to
// its canonical form (RFC 3339, UTC), leaving bodies untouched.
//
// Files are processed one at a time. A failing file is logged, recorded in
// Report.Failed and does not stop the run. The returned error is non-nil
// only when dir cannot be walked or ctx is cancelled, in which case the
// report covers the files handled so far.
func NormalizeDates(ctx context.Context, dir string, opts ...Option) (*Report, error) {
	o := newOptions(opts)

	files, err := discover(dir, o.extensions)
	if err != nil {
		return &Report{}, err
	}
	return normalizeFiles(ctx, files, o)
}

// NormalizeDateFiles is NormalizeDates for an explicit list of files.
func NormalizeDateFiles(ctx context.Context, files []string, opts ...Option) (*Report, error) {
	return normalizeFiles(ctx, files, newOptions(opts))
}

func normalizeFiles(ctx context.Context, files []string, o *options) (*Report, error) {
	start := time.Now()
	normalizer := dateutil.NewNormalizer(o.defaultLocation())
	report := &Report{}

	for _, file := range files {
		if err := ctx.Err(); err != nil {
			return report, err
		}
		normalizeFile(file, normalizer, o, report)
	}

	o.logger.Debug("date normalization finished",
		logfields.Count(report.Total()), logfields.Since(start))
	return report, nil
}

func normalizeFile(file string, normalizer *dateutil.Normalizer, o *options, report *Report) {
	fail := func(msg string, err error) {
		o.logger.Warn(msg, logfields.File(file), logfields.Error(err))
		report.Failed = append(report.Failed, &FileError{Path: file, Err: err})
	}

	content, err := os.ReadFile(file) // #nosec G304 -- path comes from walking the content directory
	if err != nil {
		fail("cannot read file", err)
		return
	}

	out, rw, err := frontmatter.RewriteDate(content, o.dateField, normalizer.Normalize)
	switch {
	case errors.Is(err, frontmatter.ErrNoFrontMatter), errors.Is(err, frontmatter.ErrNoDateField):
		o.logger.Debug("no date to normalize", logfields.File(file), logfields.Field(o.dateField))
		report.Skipped = append(report.Skipped, file)
		return
	case errors.Is(err, dateutil.ErrUnparseableDate):
		o.logger.Warn("unparseable date, leaving field as-is",
			logfields.File(file), logfields.Field(o.dateField), logfields.Value(rw.Old), logfields.Error(err))
		report.Failed = append(report.Failed, &FileError{Path: file, Err: err})
		return
	case err != nil:
		fail("cannot parse front matter", err)
		return
	}

	if !rw.Changed {
		report.Unchanged = append(report.Unchanged, file)
		return
	}

	if o.dryRun {
		o.logger.Info("would normalize date",
			logfields.File(file), logfields.Field(o.dateField),
			logfields.Value(rw.Old), slog.String("canonical", rw.New))
		report.Updated = append(report.Updated, file)
		return
	}

	if err := fileutil.WriteFileAtomic(file, out, fileutil.FileMode(file)); err != nil {
		fail("cannot write file", fmt.Errorf("writing normalized date: %w", err))
		return
	}

	o.logger.Info("normalized date",
		logfields.File(file), logfields.Field(o.dateField),
		logfields.Value(rw.Old), slog.String("canonical", rw.New))
	report.Updated = append(report.Updated, file)
}
