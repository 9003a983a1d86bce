// Copyright (c) 2026, The Graft Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tree

import (
	"fmt"
	"slices"

	"github.com/jinzhu/copier"
)

// Replace removes old from its parent and inserts repl at the exact index
// old held, leaving the sibling order otherwise unchanged. If repl has no
// layout metadata, it receives a deep copy of old's; if repl has no name,
// it inherits old's name. old must have a parent and repl must not; old is
// detached, not destroyed, and the caller owns it afterwards.
func Replace(old, repl Node) error {
	ob := old.AsTree()
	if ob.Parent == nil {
		return fmt.Errorf("tree.Replace: node %q has no parent", ob.Path())
	}
	rb := repl.AsTree()
	if rb.Parent != nil {
		return fmt.Errorf("tree.Replace: replacement %q already has a parent", rb.Path())
	}
	pb := ob.Parent.AsTree()
	idx := IndexOf(pb.Children, old)
	if idx < 0 {
		return fmt.Errorf("tree.Replace: node %q not found in its parent", ob.Path())
	}

	if rb.Layout == nil && ob.Layout != nil {
		layout := map[string]any{}
		if err := copier.CopyWithOption(&layout, ob.Layout, copier.Option{DeepCopy: true}); err != nil {
			return fmt.Errorf("tree.Replace: copy layout: %w", err)
		}
		rb.Layout = layout
	}
	if rb.Name == "" {
		rb.Name = ob.Name
	}

	pb.Children = slices.Delete(pb.Children, idx, idx+1)
	ob.Parent = nil

	InitNode(repl)
	pb.Children = slices.Insert(pb.Children, idx, repl)
	SetParent(repl, pb.This)
	return nil
}
