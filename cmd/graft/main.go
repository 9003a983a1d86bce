// Copyright (c) 2026, The Graft Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command graft resolves composite nodes in YAML documents against a
// directory of templates and prints the resulting trees.
package main

func main() {
	Execute()
}
