package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// Version information set at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

const banner = `
  ┌┬┐┌─┐┌─┐┬┌─┬┌┬┐
   │ ├─┤│ ┬├┴┐│ │
   ┴ ┴ ┴└─┘┴ ┴┴ ┴
`

func main() {
	rootCmd := &cobra.Command{
		Use:   "tagkit",
		Short: "Tag builder toolkit for HTML element trees",
		Long: `Tagkit builds HTML element trees in Go through tag-named
builder functions over pluggable backends.

The CLI renders the built-in gallery page, serves it locally with
hot reload, and deploys the output to S3:

  • tagkit render   write the gallery to the output directory
  • tagkit serve    preview server with reload and metrics
  • tagkit deploy   upload the output directory to S3`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(
		renderCmd(),
		serveCmd(),
		deployCmd(),
		versionCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "\033[31mError:\033[0m %s\n", err)
		os.Exit(1)
	}
}

// printBanner prints the tagkit ASCII art banner.
func printBanner() {
	fmt.Print(banner)
}

// success prints a success message.
func success(format string, args ...any) {
	fmt.Printf("\033[32m✓\033[0m %s\n", fmt.Sprintf(format, args...))
}

// info prints an info message.
func info(format string, args ...any) {
	fmt.Printf("  %s\n", fmt.Sprintf(format, args...))
}
