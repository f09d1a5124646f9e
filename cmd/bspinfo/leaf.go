package main

import (
	"fmt"
	"strconv"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/spf13/cobra"

	"github.com/arloliu/vbsp"
	"github.com/arloliu/vbsp/bsp"
)

func newLeafCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "leaf [flags] <map.bsp> <x> <y> <z>",
		Short: "Find the leaf containing a point",
		Args:  cobra.ExactArgs(4),
		RunE:  runLeaf,
	}
	// Coordinates such as -10 are arguments, not shorthand flags.
	cmd.Flags().SetInterspersed(false)

	return cmd
}

func runLeaf(cmd *cobra.Command, args []string) error {
	var p mgl32.Vec3
	for i, s := range args[1:] {
		v, err := strconv.ParseFloat(s, 32)
		if err != nil {
			return fmt.Errorf("coordinate %q: %w", s, err)
		}
		p[i] = float32(v)
	}

	m, err := vbsp.Open(args[0], bsp.WithLogger(newLogger(cmd)))
	if err != nil {
		return fmt.Errorf("decode map: %w", err)
	}

	leaf, ok := m.LeafAt(p)
	if !ok {
		return fmt.Errorf("no leaf at %v", p)
	}

	faces := 0
	for range leaf.Faces() {
		faces++
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "leaf:     %d\n", leaf.FileIndex())
	fmt.Fprintf(out, "cluster:  %d\n", leaf.Cluster())
	fmt.Fprintf(out, "contents: %#x\n", leaf.Data().Contents)
	fmt.Fprintf(out, "faces:    %d\n", faces)

	visible, ok := leaf.VisibleSet()
	if !ok {
		fmt.Fprintln(out, "visible:  none, leaf is outside the playable space")
		return nil
	}
	n := 0
	for range visible {
		n++
	}
	fmt.Fprintf(out, "visible:  %d leaves\n", n)

	return nil
}
