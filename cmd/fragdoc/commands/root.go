// ABOUTME: Root CLI command with global flags and subcommand wiring
// ABOUTME: Provides verbose/quiet/format persistent flags for all commands
package commands

import (
	"github.com/spf13/cobra"
)

var (
	verbose      bool
	quiet        bool
	outputFormat string
)

const banner = `
███████╗██████╗  █████╗  ██████╗ ██████╗  ██████╗  ██████╗
██╔════╝██╔══██╗██╔══██╗██╔════╝ ██╔══██╗██╔═══██╗██╔════╝
█████╗  ██████╔╝███████║██║  ███╗██║  ██║██║   ██║██║
██╔══╝  ██╔══██╗██╔══██║██║   ██║██║  ██║██║   ██║██║
██║     ██║  ██║██║  ██║╚██████╔╝██████╔╝╚██████╔╝╚██████╗
╚═╝     ╚═╝  ╚═╝╚═╝  ╚═╝ ╚═════╝ ╚═════╝  ╚═════╝  ╚═════╝`

// NewRootCmd creates the root command with all subcommands
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fragdoc",
		Short: "Sourced answers from a PDF corpus",
		Long: banner + `

fragdoc answers German-language questions about a directory of regulatory
PDF documents. Passages are retrieved by embedding similarity and the
answer always carries a document/page citation.

The corpus is loaded and indexed at startup and treated as static for
the lifetime of the process.`,
		SilenceUsage: true,
	}

	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Verbose output")
	cmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "Suppress non-essential output")
	cmd.PersistentFlags().StringVar(&outputFormat, "format", "auto", "Output format: auto, text, or json")
	cmd.MarkFlagsMutuallyExclusive("verbose", "quiet")

	cmd.AddCommand(NewAskCmd())
	cmd.AddCommand(NewChatCmd())
	cmd.AddCommand(NewIngestCmd())
	cmd.AddCommand(NewSourcesCmd())
	cmd.AddCommand(NewVersionCmd())

	return cmd
}

// Execute runs the root command
func Execute() error {
	return NewRootCmd().Execute()
}
