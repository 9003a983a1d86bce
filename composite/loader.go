// Copyright (c) 2026, The Graft Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package composite

import (
	"fmt"

	"github.com/branchwork/graft/tree"
)

// Loader produces template trees for template identifiers.
type Loader interface {

	// Load returns the tree for the given template identifier. The
	// returned tree must be detached from any parent; ownership passes to
	// the caller. The intended parent is provided for context only and
	// must not be mutated. The root of the returned tree may be a
	// non-container node, in which case the template admits no slots.
	Load(template string, parent tree.Node) (tree.Node, error)
}

// LoaderFunc adapts a function to the [Loader] interface.
type LoaderFunc func(template string, parent tree.Node) (tree.Node, error)

// Load implements [Loader].
func (f LoaderFunc) Load(template string, parent tree.Node) (tree.Node, error) {
	return f(template, parent)
}

// Registry is an in-memory [Loader] that maps template identifiers to
// constructors, for programmatically defined templates.
type Registry struct {
	templates map[string]func() tree.Node
}

// NewRegistry returns a new empty template [Registry].
func NewRegistry() *Registry {
	return &Registry{templates: map[string]func() tree.Node{}}
}

// Register registers a constructor for the given template identifier,
// replacing any existing registration. The constructor is called once per
// [Loader.Load] and must return a fresh detached tree each time.
func (r *Registry) Register(template string, fn func() tree.Node) {
	r.templates[template] = fn
}

// RegisterNode registers the given tree as the template for the given
// identifier. Each load returns a fresh [tree.NodeBase.Clone] of it, so
// the prototype itself is never handed out.
func (r *Registry) RegisterNode(template string, proto tree.Node) {
	tree.InitNode(proto)
	r.Register(template, func() tree.Node { return proto.AsTree().Clone() })
}

// Load implements [Loader].
func (r *Registry) Load(template string, parent tree.Node) (tree.Node, error) {
	fn, ok := r.templates[template]
	if !ok {
		return nil, fmt.Errorf("template %q not registered", template)
	}
	root := fn()
	tree.InitNode(root)
	return root, nil
}
