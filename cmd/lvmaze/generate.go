package main

import (
	"github.com/pingcap/errors"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvmaze/maze"
	"github.com/katalvlaran/lvmaze/render"
)

func newGenerateCmd(f *flags) *cobra.Command {
	return &cobra.Command{
		Use:   "generate",
		Short: "Build one maze and print it",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			e, err := f.setup(cmd)
			if err != nil {
				return err
			}
			s, err := maze.Construct(e.cfg.Width, e.cfg.Height, e.opts...)
			if err != nil {
				return errors.Trace(err)
			}
			if err := render.ASCII(cmd.OutOrStdout(), s, render.WithPath(false)); err != nil {
				return errors.Trace(err)
			}

			return e.finish(cmd)
		},
	}
}
