package main

import (
	"encoding/hex"
	"errors"
	"fmt"
	"io"

	"github.com/abertholt/wpregkit/wpreg"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(newListCmd())
}

func newListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list <archive>",
		Short: "List the parts of a container without extracting",
		Long: `The list command decodes every part header of a container and prints its
metadata without touching the filesystem. The whole container is walked, so a
malformed archive (truncated header or payload, stray trailing bytes) is
reported even though nothing is written.

Example:
  unwpreg list wpreg.V1.77
  unwpreg list wpreg.V1.77 --json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runList(args[0])
		},
	}
	return cmd
}

// partInfo is the JSON shape of one decoded part header.
type partInfo struct {
	Name    string `json:"name"`
	Size    uint64 `json:"size"`
	Path    string `json:"path"`
	Mode    string `json:"mode"`
	Time    int64  `json:"time"`
	Rsvd    uint64 `json:"rsvd"`
	Version string `json:"version"`
	Hash    string `json:"hash"`
}

func runList(path string) error {
	a, err := wpreg.Open(path)
	if err != nil {
		printError("%s: %v\n", path, err)
		return fmt.Errorf("failed to open container: %w", err)
	}
	defer a.Close()

	var parts []partInfo
	it := a.Parts()
	for {
		p, err := it.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			printError("%s: %v\n", path, err)
			return fmt.Errorf("listing of %s failed: %w", path, err)
		}
		if jsonOut {
			parts = append(parts, partInfo{
				Name:    p.Name(),
				Size:    p.Size(),
				Path:    p.Path(),
				Mode:    fmt.Sprintf("%#o", uint32(p.Mode())),
				Time:    p.ModTime().Unix(),
				Rsvd:    p.Rsvd(),
				Version: p.Version(),
				Hash:    hex.EncodeToString(p.Hash()),
			})
			continue
		}
		printPart(p)
		printInfo("Hash: %s\n\n", hex.EncodeToString(p.Hash()))
	}

	if jsonOut {
		return printJSON(map[string]interface{}{
			"archive": path,
			"count":   len(parts),
			"parts":   parts,
		})
	}
	return nil
}
