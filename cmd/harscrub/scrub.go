package main

import (
	"github.com/spf13/cobra"

	"github.com/dshills/harscrub/internal/har"
	"github.com/dshills/harscrub/internal/sanitize"
)

type scrubFlags struct {
	output string
}

func newRootCmd() *cobra.Command {
	f := &scrubFlags{}

	cmd := &cobra.Command{
		Use:           "harscrub <har-file>",
		Short:         "Mask credentials, session cookies, and auth tokens in a HAR capture",
		Version:       version,
		Args:          cobra.ExactArgs(1),
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runScrub(args[0], f)
		},
	}

	cmd.Flags().StringVarP(&f.output, "output", "o", "", "Output file path (default: stdout)")

	return cmd
}

// runScrub loads the capture, sanitizes it in memory, and only then writes
// the result, so a malformed input never produces partial output.
func runScrub(harPath string, f *scrubFlags) error {
	doc, err := har.Load(harPath)
	if err != nil {
		return err
	}

	doc, err = sanitize.Document(doc)
	if err != nil {
		return err
	}

	return har.Write(doc, f.output)
}
