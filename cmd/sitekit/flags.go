package main

import (
	"io"
	"time"

	flag "github.com/spf13/pflag"
)

// defaultDebounce is how long watch waits after the last change before
// normalizing.
const defaultDebounce = 300 * time.Millisecond

// commonFlags holds flags shared across commands.
type commonFlags struct {
	config     string
	contentDir string
	outputDir  string
	timezone   string
	baseURL    string
	quiet      bool
	verbose    bool
}

// commandFlags holds every flag a command may declare. Commands only
// register the ones they use.
type commandFlags struct {
	common   commonFlags
	json     bool
	dryRun   bool
	debounce time.Duration
}

// addCommonFlags adds common flags to a FlagSet.
func addCommonFlags(fs *flag.FlagSet, f *commonFlags) {
	fs.StringVarP(&f.config, "config", "c", "", "config file name or path")
	fs.StringVar(&f.contentDir, "content-dir", "", "content directory")
	fs.StringVar(&f.outputDir, "output-dir", "", "built site directory")
	fs.StringVar(&f.timezone, "timezone", "", "IANA timezone for dates without a zone")
	fs.StringVar(&f.baseURL, "base-url", "", "absolute site URL for absoluteURL")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "show debug logs")
}

// newFlagSet returns a FlagSet for name with the common flags registered and
// usage routed to w.
func newFlagSet(name string, f *commandFlags, usage func(io.Writer), w io.Writer) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(w)
	addCommonFlags(fs, &f.common)
	fs.Usage = func() { usage(w) }
	return fs
}

// parseDatesFlags parses dates command flags and returns positional args.
func parseDatesFlags(args []string, w io.Writer) (*commandFlags, []string, error) {
	f := &commandFlags{}
	fs := newFlagSet("dates", f, printDatesUsage, w)
	fs.BoolVarP(&f.dryRun, "dry-run", "n", false, "report changes without writing files")
	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}
	return f, fs.Args(), nil
}

// parseTransformFlags parses transform command flags and returns positional args.
func parseTransformFlags(args []string, w io.Writer) (*commandFlags, []string, error) {
	f := &commandFlags{}
	fs := newFlagSet("transform", f, printTransformUsage, w)
	fs.BoolVarP(&f.dryRun, "dry-run", "n", false, "report changes without writing files")
	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}
	return f, fs.Args(), nil
}

// parsePostsFlags parses posts command flags and returns positional args.
func parsePostsFlags(args []string, w io.Writer) (*commandFlags, []string, error) {
	f := &commandFlags{}
	fs := newFlagSet("posts", f, printPostsUsage, w)
	fs.BoolVar(&f.json, "json", false, "print posts as JSON")
	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}
	return f, fs.Args(), nil
}

// parseWatchFlags parses watch command flags and returns positional args.
func parseWatchFlags(args []string, w io.Writer) (*commandFlags, []string, error) {
	f := &commandFlags{}
	fs := newFlagSet("watch", f, printWatchUsage, w)
	fs.DurationVar(&f.debounce, "debounce", defaultDebounce, "quiet period before normalizing changed files")
	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}
	return f, fs.Args(), nil
}
