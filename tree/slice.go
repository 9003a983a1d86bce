// Copyright (c) 2026, The Graft Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tree

import "slices"

// IndexOf returns the index of the given node in the given slice,
// or -1 if it is not found.
func IndexOf(slice []Node, child Node) int {
	return slices.IndexFunc(slice, func(e Node) bool { return e == child })
}

// IndexByName returns the index of the first element in the given slice
// that has the given name, or -1 if none is found.
func IndexByName(slice []Node, name string) int {
	return slices.IndexFunc(slice, func(ch Node) bool { return ch.AsTree().Name == name })
}
