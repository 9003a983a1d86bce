// Copyright (c) 2026, The Graft Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tree

// Leaf is a terminal node that does not hold children. A template whose
// root is a Leaf cannot declare slots, so a composite resolving such a
// template must not have any children of its own.
type Leaf struct {
	NodeBase
}

// Container implements [Node.Container], returning false.
func (l *Leaf) Container() bool { return false }
