// Command geograph builds a polygon adjacency graph from a GeoJSON vector
// file and writes it as a snapshot.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/hupe1980/geograph"
	"github.com/hupe1980/geograph/codec"
	"github.com/hupe1980/geograph/geojson"
	"github.com/hupe1980/geograph/persistence"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "geograph",
		Short:         "Derive adjacency graphs from polygon vector data",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(newBuildCmd(), newInspectCmd())

	return rootCmd
}

func newBuildCmd() *cobra.Command {
	var (
		vectorPath  string
		field       string
		outputPath  string
		workers     int
		codecName   string
		compression string
		verbose     bool
	)

	cmd := &cobra.Command{
		Use:   "build",
		Short: "Build the adjacency graph and write it as a snapshot",
		RunE: func(cmd *cobra.Command, _ []string) error {
			c, ok := codec.ByName(codecName)
			if !ok {
				return fmt.Errorf("unknown codec %q", codecName)
			}
			comp, ok := persistence.CompressionByName(compression)
			if !ok {
				return fmt.Errorf("unknown compression %q", compression)
			}

			level := slog.LevelInfo
			if verbose {
				level = slog.LevelDebug
			}

			src, err := geojson.LoadFile(vectorPath)
			if err != nil {
				return err
			}

			return geograph.Run(cmd.Context(), geograph.Config{
				Source: src,
				Field:  field,
				Output: outputPath,
			},
				geograph.WithCodec(c),
				geograph.WithCompression(comp),
				geograph.WithNumWorkers(workers),
				geograph.WithLogLevel(level),
			)
		},
	}

	cmd.Flags().StringVar(&vectorPath, "vector", "", "input GeoJSON file (required)")
	cmd.Flags().StringVar(&field, "field", "", "attribute field defining the vertices (required)")
	cmd.Flags().StringVar(&outputPath, "output", "", "snapshot output path (required)")
	cmd.Flags().IntVar(&workers, "workers", 0, "parallel pair evaluations (0 = GOMAXPROCS)")
	cmd.Flags().StringVar(&codecName, "codec", codec.Default.Name(), "snapshot codec (json, go-json)")
	cmd.Flags().StringVar(&compression, "compression", "zstd", "snapshot compression (none, zstd, lz4)")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "debug logging")

	for _, name := range []string{"vector", "field", "output"} {
		_ = cmd.MarkFlagRequired(name)
	}

	return cmd
}

func newInspectCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "inspect <snapshot>",
		Short: "Print the vertices and edges of a snapshot",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			g, err := persistence.LoadFile(args[0])
			if err != nil {
				return err
			}

			for _, key := range g.Keys() {
				v := g.Vertices[key]
				fmt.Printf("%s\tedges=%v\n", key, v.Edges)
			}

			return nil
		},
	}

	return cmd
}
