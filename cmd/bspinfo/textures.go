package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/arloliu/vbsp"
	"github.com/arloliu/vbsp/bsp"
)

func newTexturesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "textures <map.bsp>",
		Short: "List the material names used by a map",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := vbsp.Open(args[0], bsp.WithLogger(newLogger(cmd)))
			if err != nil {
				return fmt.Errorf("decode map: %w", err)
			}

			out := cmd.OutOrStdout()
			for i, name := range m.TextureNames() {
				fmt.Fprintf(out, "%4d  %s\n", i, name)
			}

			return nil
		},
	}
}
