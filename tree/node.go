// Copyright (c) 2026, The Graft Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package tree provides the node primitives that graft templates and
// composites are built from: an ordered parent/child tree with optional
// identity names, opaque layout metadata, and index-preserving splicing.
package tree

// Node is the interface that all tree nodes satisfy. The core tree
// functionality is defined on [NodeBase], which all higher-level node
// types must embed; this interface contains only the behavior that node
// types may override. Call [Node.AsTree] to get the [NodeBase] of a Node
// and access the core tree functionality.
type Node interface {

	// AsTree returns the [NodeBase] of this Node.
	AsTree() *NodeBase

	// Init is called once when the node is first initialized, before it
	// has a parent or children. It does nothing by default.
	Init()

	// OnAdd is called when the node is added to a parent. It will not be
	// called on root nodes, as they are never added to a parent. It does
	// nothing by default.
	OnAdd()

	// Container reports whether this node can hold children. It returns
	// true by default; terminal node types such as [Leaf] override it.
	Container() bool

	// Destroy recursively deletes and destroys the node and all of its
	// children. Node types that hold additional resources can implement
	// this, calling [NodeBase.Destroy] at the end of their implementation.
	Destroy()
}
