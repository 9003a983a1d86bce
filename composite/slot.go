// Copyright (c) 2026, The Graft Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package composite

import "github.com/branchwork/graft/tree"

// Slot marks a position in a template where a composite's child is
// grafted during resolution. Its [tree.NodeBase.Name] is the identity
// that overrides target in explicit mode. Slots must be direct children
// of the template root; slots nested deeper inside the template are not
// collected and stay in the tree as ordinary nodes.
type Slot struct {
	tree.NodeBase
}

func init() {
	tree.RegisterKind("slot", func() tree.Node { return &Slot{} })
}

// Slots returns the direct children of the given template root that are
// slots, in child order. It has no side effects.
func Slots(root tree.Node) []*Slot {
	var slots []*Slot
	for _, kid := range root.AsTree().Children {
		if s, ok := kid.(*Slot); ok {
			slots = append(slots, s)
		}
	}
	return slots
}
