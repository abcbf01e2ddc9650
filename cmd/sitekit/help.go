package main

import (
	"fmt"
	"io"
)

// printUsage prints the main usage message.
func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: sitekit <command> [flags] [dir]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  dates      Rewrite front matter dates to RFC 3339 UTC")
	fmt.Fprintln(w, "  transform  Caption images and relativize paths in built HTML")
	fmt.Fprintln(w, "  posts      List posts, newest first")
	fmt.Fprintln(w, "  watch      Normalize dates whenever content changes")
	fmt.Fprintln(w, "  version    Show version information")
	fmt.Fprintln(w, "  help       Show help for a command")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Run 'sitekit help <command>' for details on a specific command.")
}

// printCommonFlags prints the flags every command accepts.
func printCommonFlags(w io.Writer) {
	fmt.Fprintln(w, "Site:")
	fmt.Fprintln(w, "  -c, --config <name>       Config file name or path (default: sitekit)")
	fmt.Fprintln(w, "      --content-dir <path>  Content directory")
	fmt.Fprintln(w, "      --output-dir <path>   Built site directory")
	fmt.Fprintln(w, "      --timezone <zone>     IANA zone for dates without a zone")
	fmt.Fprintln(w, "      --base-url <url>      Absolute site URL")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Output Control:")
	fmt.Fprintln(w, "  -q, --quiet               Only show errors")
	fmt.Fprintln(w, "  -v, --verbose             Show debug logs")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Environment:")
	fmt.Fprintln(w, "  SITEKIT_CONFIG, SITEKIT_CONTENT_DIR, SITEKIT_OUTPUT_DIR,")
	fmt.Fprintln(w, "  SITEKIT_TIMEZONE, SITEKIT_BASE_URL (also read from ./.env)")
	fmt.Fprintln(w, "  Precedence: flags > environment > config file > defaults")
}

// printDatesUsage prints usage for the dates command.
func printDatesUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: sitekit dates [dir] [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Rewrite the front matter date of every content file to RFC 3339 in UTC.")
	fmt.Fprintln(w, "Files without front matter or without a date are skipped. Unparseable")
	fmt.Fprintln(w, "dates are reported and left as written.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Arguments:")
	fmt.Fprintln(w, "  dir    Content directory (default: config contentDir)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "  -n, --dry-run             Report changes without writing files")
	fmt.Fprintln(w)
	printCommonFlags(w)
}

// printTransformUsage prints usage for the transform command.
func printTransformUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: sitekit transform [dir] [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Apply the captions and relativePaths transforms to every HTML file")
	fmt.Fprintln(w, "of a built site, in place.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Arguments:")
	fmt.Fprintln(w, "  dir    Built site directory (default: config outputDir)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "  -n, --dry-run             Report changes without writing files")
	fmt.Fprintln(w)
	printCommonFlags(w)
}

// printPostsUsage prints usage for the posts command.
func printPostsUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: sitekit posts [dir] [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "List content tagged post or posts, or stored under posts/, newest first.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Arguments:")
	fmt.Fprintln(w, "  dir    Content directory (default: config contentDir)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "      --json                Print posts as JSON")
	fmt.Fprintln(w)
	printCommonFlags(w)
}

// printWatchUsage prints usage for the watch command.
func printWatchUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: sitekit watch [dir] [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Normalize dates once, then again for each content file that changes.")
	fmt.Fprintln(w, "Stops on interrupt.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Arguments:")
	fmt.Fprintln(w, "  dir    Content directory (default: config contentDir)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "      --debounce <d>        Quiet period before normalizing (default: 300ms)")
	fmt.Fprintln(w)
	printCommonFlags(w)
}

// runHelp prints help for a specific command.
func runHelp(args []string, env *Environment) int {
	if len(args) == 0 {
		printUsage(env.Stdout)
		return ExitSuccess
	}

	switch args[0] {
	case "dates":
		printDatesUsage(env.Stdout)
	case "transform":
		printTransformUsage(env.Stdout)
	case "posts":
		printPostsUsage(env.Stdout)
	case "watch":
		printWatchUsage(env.Stdout)
	case "version":
		fmt.Fprintln(env.Stdout, "Usage: sitekit version")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Show version information.")
	case "help":
		fmt.Fprintln(env.Stdout, "Usage: sitekit help [command]")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Show help for a command.")
	default:
		fmt.Fprintf(env.Stderr, "Unknown command: %s\n", args[0])
		printUsage(env.Stderr)
		return ExitUsage
	}
	return ExitSuccess
}
