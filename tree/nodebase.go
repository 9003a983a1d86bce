// Copyright (c) 2026, The Graft Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tree

import (
	"log/slog"
	"reflect"
	"slices"
	"strconv"
	"strings"

	"github.com/jinzhu/copier"
)

// NodeBase implements the [Node] interface and provides the core tree
// functionality. It must be used as an embedded struct in all higher-level
// node types.
//
// All nodes must be initialized through [New], [NewOfKind],
// [NodeBase.Clone], or an explicit [InitNode] call so that the
// [NodeBase.This] field is set and [Node.Init] runs.
type NodeBase struct {

	// Name is the optional identity of this node, unique relative to other
	// children of the same parent when set. An empty Name means the node
	// has no identity; splicing makes a replacement inherit the name of
	// the node it replaces when the replacement has none of its own.
	Name string

	// Layout is opaque layout metadata attached to this node. The tree
	// itself never interprets it beyond copying it by value during
	// splicing; hosts and resolvers read it through their own schemas.
	Layout map[string]any

	// This is the value of this node as its true underlying type, which
	// allows methods defined on base types to call methods overridden by
	// higher-level types. It is set to nil when the node is destroyed.
	This Node `copier:"-"`

	// Parent is the parent of this node, set automatically when the node
	// is added as a child. It is a non-owning back-reference; nodes have
	// at most one parent at a time.
	Parent Node `copier:"-"`

	// Children is the ordered list of children of this node, all of which
	// have this node as their Parent. Use the child helper methods rather
	// than editing the list directly so that parent references stay
	// consistent.
	Children []Node `copier:"-"`
}

// String implements [fmt.Stringer] by returning the path of the node.
func (n *NodeBase) String() string {
	if n == nil || n.This == nil {
		return "nil"
	}
	return n.Path()
}

// AsTree returns the [NodeBase] for this Node.
func (n *NodeBase) AsTree() *NodeBase {
	return n
}

// SetName sets the [NodeBase.Name] and returns the node.
func (n *NodeBase) SetName(name string) *NodeBase {
	n.Name = name
	return n
}

// SetLayout sets the [NodeBase.Layout] metadata and returns the node.
func (n *NodeBase) SetLayout(layout map[string]any) *NodeBase {
	n.Layout = layout
	return n
}

// NewInstance returns a new, uninitialized instance of this node's type.
func (n *NodeBase) NewInstance() Node {
	return reflect.New(reflect.TypeOf(n.This).Elem()).Interface().(Node)
}

// Parents:

// IndexInParent returns the index of this node within its parent's
// children, or -1 if it has no parent.
func (n *NodeBase) IndexInParent() int {
	if n.Parent == nil {
		return -1
	}
	return IndexOf(n.Parent.AsTree().Children, n.This)
}

// Path returns the path to this node from the tree root, using node names
// separated by / delimiters. Any / characters in names are escaped to \\.
// Nameless nodes appear as their bracketed index within their parent.
func (n *NodeBase) Path() string {
	name := EscapePathName(n.Name)
	if name == "" {
		if idx := n.IndexInParent(); idx >= 0 {
			name = "[" + strconv.Itoa(idx) + "]"
		}
	}
	if n.Parent != nil {
		return n.Parent.AsTree().Path() + "/" + name
	}
	return "/" + name
}

// EscapePathName returns a name with any / replaced by \\
// for inclusion in a path.
func EscapePathName(name string) string {
	return strings.ReplaceAll(name, "/", `\\`)
}

// Children:

// HasChildren returns whether this node has any children.
func (n *NodeBase) HasChildren() bool {
	return len(n.Children) > 0
}

// NumChildren returns the number of children this node has.
func (n *NodeBase) NumChildren() int {
	return len(n.Children)
}

// Child returns the child of this node at the given index,
// or nil if the index is out of range.
func (n *NodeBase) Child(i int) Node {
	if i >= len(n.Children) || i < 0 {
		return nil
	}
	return n.Children[i]
}

// ChildByName returns the first child with the given name,
// or nil if there is none.
func (n *NodeBase) ChildByName(name string) Node {
	return n.Child(IndexByName(n.Children, name))
}

// AddChild adds the given child at the end of the children list.
// The child must not already be on another tree; see [MoveToParent]
// for moving nodes between parents.
func (n *NodeBase) AddChild(kid Node) {
	InitNode(kid)
	n.Children = append(n.Children, kid)
	SetParent(kid, n.This)
}

// InsertChild adds the given child at the given position in the children
// list. The child must not already be on another tree.
func (n *NodeBase) InsertChild(kid Node, index int) {
	InitNode(kid)
	n.Children = slices.Insert(n.Children, index, kid)
	SetParent(kid, n.This)
}

// DeleteChildAt deletes and destroys the child at the given index.
// It returns false if there is no child at that index.
func (n *NodeBase) DeleteChildAt(index int) bool {
	child := n.Child(index)
	if child == nil {
		return false
	}
	n.Children = slices.Delete(n.Children, index, index+1)
	child.Destroy()
	return true
}

// DeleteChild deletes and destroys the given child node,
// returning false if it cannot find it.
func (n *NodeBase) DeleteChild(child Node) bool {
	if child == nil {
		return false
	}
	idx := IndexOf(n.Children, child)
	if idx < 0 {
		return false
	}
	return n.DeleteChildAt(idx)
}

// DeleteChildren deletes and destroys all children of this node.
func (n *NodeBase) DeleteChildren() {
	kids := n.Children
	n.Children = n.Children[:0] // preserves capacity
	for _, kid := range kids {
		if kid == nil {
			continue
		}
		kid.Destroy()
	}
}

// Delete removes this node from its parent's children list
// and then destroys it.
func (n *NodeBase) Delete() {
	if n.Parent == nil {
		n.This.Destroy()
	} else {
		n.Parent.AsTree().DeleteChild(n.This)
	}
}

// Destroy recursively deletes and destroys this node and all of
// its children.
func (n *NodeBase) Destroy() {
	if n.This == nil { // already destroyed
		return
	}
	n.DeleteChildren()
	n.This = nil
}

// Walking:

const (
	// Continue can be returned from tree walking functions to
	// continue processing down the tree.
	Continue = true

	// Break can be returned from tree walking functions to stop
	// processing the current branch of the tree.
	Break = false
)

// WalkDown calls the given function on this node and all of its children
// in depth-first order. If the function returns [Break], the children of
// that node are skipped; siblings are still visited.
func (n *NodeBase) WalkDown(fun func(n Node) bool) {
	if n.This == nil {
		return
	}
	if !fun(n.This) {
		return
	}
	for _, kid := range n.Children {
		if kid == nil {
			continue
		}
		kid.AsTree().WalkDown(fun)
	}
}

// Copying:

// CopyFrom copies the fields of the given node onto this node and replaces
// this node's children with clones of the given node's children. Fields
// are deep copied by value; the This, Parent, and Children references are
// never copied.
func (n *NodeBase) CopyFrom(from Node) {
	fb := from.AsTree()
	err := copier.CopyWithOption(n.This, fb.This, copier.Option{CaseSensitive: true, DeepCopy: true})
	if err != nil {
		slog.Error("tree.NodeBase.CopyFrom", "err", err)
	}
	n.DeleteChildren()
	for _, kid := range fb.Children {
		n.AddChild(kid.AsTree().Clone())
	}
}

// Clone creates and returns a deep copy of the tree from this node down,
// detached from any parent.
func (n *NodeBase) Clone() Node {
	nc := n.NewInstance()
	InitNode(nc)
	nc.AsTree().CopyFrom(n.This)
	return nc
}

// Overridable hooks:

// Init is a placeholder implementation of [Node.Init] that does nothing.
func (n *NodeBase) Init() {}

// OnAdd is a placeholder implementation of [Node.OnAdd] that does nothing.
func (n *NodeBase) OnAdd() {}

// Container implements [Node.Container], returning true.
func (n *NodeBase) Container() bool { return true }
