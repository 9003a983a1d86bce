// Copyright (c) 2026, The Graft Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tree

import (
	"reflect"
	"slices"
)

// admin.go has infrastructure code outside of the Node interface.

// InitNode initializes the given node if it has not already been
// initialized: it sets [NodeBase.This] and calls [Node.Init].
func InitNode(n Node) {
	nb := n.AsTree()
	if nb.This != n {
		nb.This = n
		n.Init()
	}
}

// SetParent sets the parent of the given node to the given parent node.
// This is only for nodes with no existing parent; see [MoveToParent] to
// move nodes that already have a parent. It does not add the node to the
// parent's list of children; see [NodeBase.AddChild] for a version that
// does. It calls [Node.OnAdd] on the child.
func SetParent(child Node, parent Node) {
	child.AsTree().Parent = parent
	child.AsTree().This.OnAdd()
}

// MoveToParent removes the given node from its current parent's children
// list without destroying it, and adds it as a child of the given new
// parent. The old and new parents can be in different trees.
func MoveToParent(child Node, parent Node) {
	Detach(child)
	parent.AsTree().AddChild(child)
}

// Detach removes the given node from its parent's children list without
// destroying it, leaving it as the root of its own tree. It does nothing
// if the node has no parent.
func Detach(n Node) {
	nb := n.AsTree()
	if nb.Parent == nil {
		return
	}
	pb := nb.Parent.AsTree()
	if idx := IndexOf(pb.Children, n); idx >= 0 {
		pb.Children = slices.Delete(pb.Children, idx, idx+1)
	}
	nb.Parent = nil
}

// New returns a new initialized node of the given type. If a parent is
// given, the node is added at the end of its children list.
func New[T Node](parent ...Node) T {
	n := reflect.New(reflect.TypeOf((*T)(nil)).Elem().Elem()).Interface().(T)
	InitNode(n)
	if len(parent) > 0 {
		parent[0].AsTree().AddChild(n)
	}
	return n
}

// IsRoot tests whether the given node is the root node of its tree.
func IsRoot(n Node) bool {
	return n.AsTree().Parent == nil
}

// Root returns the root node of the given node's tree.
func Root(n Node) Node {
	for !IsRoot(n) {
		n = n.AsTree().Parent
	}
	return n
}
