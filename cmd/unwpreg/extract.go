package main

import (
	"fmt"

	"github.com/abertholt/wpregkit/wpreg"
	"github.com/spf13/cobra"
)

var extractDir string

func init() {
	cmd := newExtractCmd()
	cmd.Flags().
		StringVarP(&extractDir, "directory", "C", "", "Extraction root (default: current directory)")
	rootCmd.AddCommand(cmd)
}

func newExtractCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "extract <archive>...",
		Short: "Extract all parts of one or more containers",
		Long: `The extract command walks each named container record by record and writes
every payload to its destination path, creating intermediate directories and
applying the header's permission bits and timestamp. Paths are always
resolved relative to the extraction root; a leading slash is stripped.

Archives are processed strictly in order and extraction is all-or-nothing:
the first malformed record or filesystem failure aborts the run, and later
archives are not attempted.

Example:
  unwpreg extract wpreg.V1.77
  unwpreg extract -C /tmp/fw wpreg.V1.77 wpreg.V1.80`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExtract(args)
		},
	}
	return cmd
}

func runExtract(args []string) error {
	for _, path := range args {
		printVerbose("Processing container: %s\n", path)

		a, err := wpreg.Open(path)
		if err != nil {
			printError("%s: %v\n", path, err)
			return fmt.Errorf("failed to open container: %w", err)
		}

		err = a.Extract(wpreg.ExtractOptions{
			Root: extractDir,
			OnPart: func(p wpreg.Part) {
				printPart(p)
				printInfo("\n")
			},
		})
		if closeErr := a.Close(); err == nil {
			err = closeErr
		}
		if err != nil {
			printError("%s: %v\n", path, err)
			return fmt.Errorf("extraction of %s failed: %w", path, err)
		}
	}
	return nil
}

// printPart emits the per-record metadata block in the format the original
// vendor tool printed.
func printPart(p wpreg.Part) {
	printInfo("Name: %s\n", p.Name())
	printInfo("Size: %#x\n", p.Size())
	printInfo("Path: %s\n", p.Path())
	printInfo("Mode: %#o\n", uint32(p.Mode()))
	printInfo("Time: %d\n", p.ModTime().Unix())
	printInfo("Rsvd: %#x\n", p.Rsvd())
	printInfo("Vers: %s\n", p.Version())
}
