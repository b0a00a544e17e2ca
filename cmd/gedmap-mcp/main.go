// SPDX-License-Identifier: Apache-2.0

// gedmap-mcp maps parsed GEDCOM trees onto the normalized genealogy model,
// either as an MCP server over stdio or directly from the command line.
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/davecgh/go-spew/spew"
	"github.com/goccy/go-yaml"
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/spf13/cobra"

	"github.com/gedmapproj/gedmap-mcp/internal/citation"
	"github.com/gedmapproj/gedmap-mcp/internal/gedcom"
	"github.com/gedmapproj/gedmap-mcp/internal/place"
	"github.com/gedmapproj/gedmap-mcp/internal/schema"
	"github.com/gedmapproj/gedmap-mcp/internal/tool"
)

const version = "0.1.0"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "gedmap-mcp",
		Short:         "GEDCOM import mapping engine",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(newServeCmd(), newMapCmd(), newParseCitationCmd())
	return root
}

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve the mapping tools over MCP stdio",
		RunE: func(cmd *cobra.Command, _ []string) error {
			server := mcp.NewServer(&mcp.Implementation{Name: "gedmap-mcp", Version: version}, nil)
			mcp.AddTool(server, tool.MetadataMapGedcom, tool.MapGedcom)
			mcp.AddTool(server, tool.MetadataParseCitation, tool.ParseCitation)
			return server.Run(cmd.Context(), &mcp.StdioTransport{})
		},
	}
}

func newMapCmd() *cobra.Command {
	var placesPath string
	var debug bool
	cmd := &cobra.Command{
		Use:   "map <tree-file>",
		Short: "Map a parsed GEDCOM tree (YAML or JSON) onto the normalized model",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return err
			}
			var root any
			if err := yaml.Unmarshal(data, &root); err != nil {
				return fmt.Errorf("decode tree %s: %w", args[0], err)
			}
			if debug {
				spew.Fdump(os.Stderr, root)
			}

			var catalog []place.Place
			if placesPath != "" {
				raw, err := os.ReadFile(placesPath)
				if err != nil {
					return err
				}
				if err := yaml.Unmarshal(raw, &catalog); err != nil {
					return fmt.Errorf("decode place catalog %s: %w", placesPath, err)
				}
			}

			result := gedcom.NewMapper(catalog).Map(root)
			if err := schema.ValidateResult(result); err != nil {
				return err
			}
			return writeYAML(cmd, result)
		},
	}
	cmd.Flags().StringVar(&placesPath, "places", "", "place catalog file (YAML or JSON)")
	cmd.Flags().BoolVar(&debug, "debug", false, "dump the decoded tree to stderr before mapping")
	return cmd
}

func newParseCitationCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "parse-citation <text>...",
		Short: "Parse a free-text source citation into structured fields",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return writeYAML(cmd, citation.Parse(strings.Join(args, " ")))
		},
	}
}

func writeYAML(cmd *cobra.Command, v any) error {
	out, err := yaml.Marshal(v)
	if err != nil {
		return err
	}
	_, err = cmd.OutOrStdout().Write(out)
	return err
}
