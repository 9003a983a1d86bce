// Copyright (c) 2026, The Graft Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/branchwork/graft/composite"
	"github.com/branchwork/graft/template"
)

var templatesCmd = &cobra.Command{
	Use:   "templates",
	Short: "List template documents and the slots they declare",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		dir, err := cmd.Flags().GetString("templates")
		if err != nil {
			return err
		}
		fsys := os.DirFS(dir)
		names, err := fs.Glob(fsys, "*.yaml")
		if err != nil {
			return err
		}
		for _, name := range names {
			data, err := fs.ReadFile(fsys, name)
			if err != nil {
				return err
			}
			root, err := template.Parse(data)
			if err != nil {
				return fmt.Errorf("%s: %w", name, err)
			}
			id := strings.TrimSuffix(name, ".yaml")
			slots := composite.Slots(root)
			if len(slots) == 0 {
				fmt.Fprintf(cmd.OutOrStdout(), "%s: (no slots)\n", id)
				continue
			}
			ids := make([]string, len(slots))
			for i, s := range slots {
				ids[i] = s.Name
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s: %s\n", id, strings.Join(ids, " "))
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(templatesCmd)
}
