// Copyright (c) 2026, The Graft Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tree

import (
	"fmt"
	"io"
	"strings"
)

// Dump writes an indented rendering of the tree rooted at the given node,
// one line per node, for debugging and CLI output.
func Dump(w io.Writer, n Node) {
	dump(w, n, 0)
}

func dump(w io.Writer, n Node, depth int) {
	fmt.Fprintf(w, "%s%s\n", strings.Repeat("  ", depth), Label(n))
	for _, kid := range n.AsTree().Children {
		if kid == nil {
			continue
		}
		dump(w, kid, depth+1)
	}
}

// Label returns a one-line description of a node: its type name, its name
// if set, and its layout metadata if any.
func Label(n Node) string {
	nb := n.AsTree()
	t := strings.TrimPrefix(fmt.Sprintf("%T", n), "*")
	s := t
	if nb.Name != "" {
		s += fmt.Sprintf(" %q", nb.Name)
	}
	if len(nb.Layout) > 0 {
		s += fmt.Sprintf(" %v", nb.Layout)
	}
	return s
}
