package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/arloliu/vbsp"
	"github.com/arloliu/vbsp/bsp"
	"github.com/arloliu/vbsp/container"
)

func newInfoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "info <map.bsp>",
		Short: "Display the header, lump directory and record counts",
		Args:  cobra.ExactArgs(1),
		RunE:  runInfo,
	}
}

func runInfo(cmd *cobra.Command, args []string) error {
	logger := newLogger(cmd)

	data, err := vbsp.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("open map: %w", err)
	}

	c, err := container.Open(data, container.WithLogger(logger))
	if err != nil {
		return fmt.Errorf("parse header: %w", err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "header:   %s\n", c.Header())
	fmt.Fprintf(out, "revision: %d\n", c.MapRevision())
	fmt.Fprintf(out, "size:     %d bytes\n\n", c.Size())

	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(tw, "lump\toffset\tlength\tversion\tcompressed\t")
	for _, t := range c.Lumps() {
		e, _ := c.Entry(t)
		fmt.Fprintf(tw, "%s\t%d\t%d\t%d\t%t\t\n", t, e.Offset, e.Length, e.Version, e.Compressed())
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	m, err := bsp.Read(data, bsp.WithLogger(logger))
	if err != nil {
		return fmt.Errorf("decode map: %w", err)
	}

	fmt.Fprintln(out)
	counts := []struct {
		name string
		n    int
	}{
		{"entities", m.Entities.Len()},
		{"planes", len(m.Planes)},
		{"nodes", len(m.Nodes)},
		{"leaves", m.Leaves.Len()},
		{"models", len(m.Models)},
		{"brushes", len(m.Brushes)},
		{"faces", len(m.Faces)},
		{"original faces", len(m.OriginalFaces)},
		{"vertices", len(m.Vertices)},
		{"textures", len(m.TexturesData)},
		{"displacements", len(m.Displacements)},
		{"clusters", int(m.VisData.ClusterCount)},
	}
	for _, c := range counts {
		fmt.Fprintf(out, "%-15s %d\n", c.name+":", c.n)
	}

	return nil
}
