// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command arbor generates Weber-Penn trees and writes their meshes.
package main

import (
	"context"
	"os"
	"os/signal"

	"cogentcore.org/arbor/base/errors"
	"cogentcore.org/arbor/base/logx"
	"cogentcore.org/arbor/cli"
	"cogentcore.org/arbor/cmd"
	"cogentcore.org/arbor/config"
	"github.com/spf13/cobra"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := newRootCmd().ExecuteContext(ctx)
	stop()
	if err != nil {
		errors.Log(err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	c := &config.Config{}
	errors.Must(cli.SetFromDefaults(c))
	var configFile string

	root := &cobra.Command{
		Use:           "arbor",
		Short:         "Generate Weber-Penn trees and write their meshes",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cc *cobra.Command, args []string) error {
			if configFile != "" {
				if err := cli.Open(cc.Flags(), c, configFile); err != nil {
					return err
				}
			}
			logx.UserLevel = logx.LevelFromFlags(c.VeryVerbose, c.Verbose, c.Quiet)
			logx.SetDefaultLogger()
			return nil
		},
	}
	cli.AddFlags(root.PersistentFlags(), c)
	root.PersistentFlags().StringVar(&configFile, "config", "", "a TOML file with tool configuration; flags override it")

	root.AddCommand(
		&cobra.Command{
			Use:   "generate",
			Short: "Generate a tree and write its meshes",
			Args:  cobra.NoArgs,
			RunE: func(cc *cobra.Command, args []string) error {
				return cmd.Generate(c, cc.OutOrStdout())
			},
		},
		&cobra.Command{
			Use:   "cut",
			Short: "Generate a tree, cut the first branch hit by the ray, and write the meshes",
			Args:  cobra.NoArgs,
			RunE: func(cc *cobra.Command, args []string) error {
				_, err := cmd.Cut(c, cc.OutOrStdout())
				return err
			},
		},
		&cobra.Command{
			Use:   "watch",
			Short: "Regenerate the tree whenever the parameter file changes",
			Args:  cobra.NoArgs,
			RunE: func(cc *cobra.Command, args []string) error {
				return cmd.Watch(cc.Context(), c, cc.OutOrStdout())
			},
		},
		&cobra.Command{
			Use:   "params",
			Short: "Print the effective tree parameters as TOML",
			Args:  cobra.NoArgs,
			RunE: func(cc *cobra.Command, args []string) error {
				return cmd.Params(c, cc.OutOrStdout())
			},
		},
	)
	return root
}
