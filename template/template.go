// Copyright (c) 2026, The Graft Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package template loads graft node trees from YAML documents. A document
// is one node with a kind, an optional name, optional layout metadata, and
// children:
//
//	kind: node
//	name: card
//	layout:
//	  pad: 8
//	children:
//	  - kind: slot
//	    name: header
//	  - kind: node
//	    name: body
//	    children:
//	      - kind: slot
//	        name: content
//
// Kinds resolve through the [tree] kind registry, so node types registered
// by other packages (slot, composite, leaf, or host-defined kinds) are
// loadable by name. The [FS] type serves such documents as templates to
// the composite resolver.
package template

import (
	"fmt"
	"io/fs"

	"gopkg.in/yaml.v3"

	"github.com/branchwork/graft/composite"
	"github.com/branchwork/graft/tree"
)

// nodeDoc is the YAML shape of one node in a document.
type nodeDoc struct {
	Kind     string         `yaml:"kind"`
	Name     string         `yaml:"name"`
	Template string         `yaml:"template"`
	Layout   map[string]any `yaml:"layout"`
	Children []nodeDoc      `yaml:"children"`
}

// Parse builds a detached node tree from a YAML document.
func Parse(data []byte) (tree.Node, error) {
	var doc nodeDoc
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("template: parse: %w", err)
	}
	return build(doc)
}

// build constructs the node for one document entry and, recursively, its
// children. Children are attached after the node's own configuration is
// set, so loaderless composites stay unresolved during construction.
func build(doc nodeDoc) (tree.Node, error) {
	kind := doc.Kind
	if kind == "" {
		kind = "node"
	}
	n, err := tree.NewOfKind(kind)
	if err != nil {
		return nil, fmt.Errorf("template: node %q: %w", doc.Name, err)
	}
	nb := n.AsTree()
	nb.Name = doc.Name
	nb.Layout = doc.Layout
	if doc.Template != "" {
		c, ok := n.(*composite.Composite)
		if !ok {
			return nil, fmt.Errorf("template: node %q: template %q set on non-composite kind %q", doc.Name, doc.Template, kind)
		}
		c.Template = doc.Template
	}
	for _, kd := range doc.Children {
		kid, err := build(kd)
		if err != nil {
			return nil, err
		}
		nb.AddChild(kid)
	}
	return n, nil
}

// FS is a [composite.Loader] that reads one YAML document per template
// identifier from a file system: template id "card" loads "card" + Ext.
type FS struct {

	// Source is the file system the templates live in.
	Source fs.FS

	// Ext is the file extension appended to template identifiers,
	// including the dot. It defaults to ".yaml".
	Ext string
}

// Load implements [composite.Loader].
func (l FS) Load(template string, parent tree.Node) (tree.Node, error) {
	ext := l.Ext
	if ext == "" {
		ext = ".yaml"
	}
	data, err := fs.ReadFile(l.Source, template+ext)
	if err != nil {
		return nil, fmt.Errorf("template: %w", err)
	}
	root, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("template %q: %w", template, err)
	}
	return root, nil
}
