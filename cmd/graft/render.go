// Copyright (c) 2026, The Graft Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/branchwork/graft/composite"
	"github.com/branchwork/graft/template"
	"github.com/branchwork/graft/tree"
)

var renderCmd = &cobra.Command{
	Use:   "render <document>",
	Short: "Resolve all composites in a document and print the tree",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		dir, err := cmd.Flags().GetString("templates")
		if err != nil {
			return err
		}
		data, err := os.ReadFile(args[0])
		if err != nil {
			return err
		}
		doc, err := template.Parse(data)
		if err != nil {
			return err
		}

		// The document root gets a synthetic parent so that a document
		// that is itself a composite can resolve in place.
		host := tree.New[*tree.NodeBase]()
		host.AddChild(doc)

		loader := template.FS{Source: os.DirFS(dir)}
		if err := composite.ResolveAll(host, loader); err != nil {
			return err
		}
		tree.Dump(cmd.OutOrStdout(), host.Child(0))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(renderCmd)
}
