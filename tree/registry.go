// Copyright (c) 2026, The Graft Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tree

import (
	"fmt"
	"slices"
)

// kinds maps document kind strings to node constructors, so that loaders
// can build typed node trees from serialized documents.
var kinds = map[string]func() Node{
	"node": func() Node { return &NodeBase{} },
	"leaf": func() Node { return &Leaf{} },
}

// RegisterKind registers a constructor for the given kind string,
// replacing any existing registration. Packages that define node types
// loadable from documents register them in an init function.
func RegisterKind(kind string, fn func() Node) {
	kinds[kind] = fn
}

// NewOfKind returns a new initialized node of the registered kind,
// or an error naming the kind if it is not registered.
func NewOfKind(kind string) (Node, error) {
	fn, ok := kinds[kind]
	if !ok {
		return nil, fmt.Errorf("tree: node kind %q not registered (have %v)", kind, Kinds())
	}
	n := fn()
	InitNode(n)
	return n, nil
}

// Kinds returns the sorted list of registered kind strings.
func Kinds() []string {
	ks := make([]string, 0, len(kinds))
	for k := range kinds {
		ks = append(ks, k)
	}
	slices.Sort(ks)
	return ks
}
