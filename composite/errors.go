// Copyright (c) 2026, The Graft Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package composite

import "errors"

// Resolution errors. All of them abort resolution synchronously; none are
// retried internally. They are wrapped with context at the point of
// failure and can be tested with [errors.Is].
var (
	// ErrConfiguration indicates a missing template identifier, a missing
	// loader, or an attempt to resolve in place without a host parent.
	ErrConfiguration = errors.New("invalid composite configuration")

	// ErrTypeMismatch indicates a template whose root is not a container
	// while the composite has children to graft into it.
	ErrTypeMismatch = errors.New("template root is not a container")

	// ErrOverCommit indicates more overrides than the template has slots.
	ErrOverCommit = errors.New("more overrides than slots")

	// ErrMixedTargets indicates overrides that mix explicit slot targets
	// with positional ones; if any override names a slot, all must.
	ErrMixedTargets = errors.New("overrides mix explicit and positional slot targets")

	// ErrUnresolvedTarget indicates an override whose slot target does not
	// match any available slot in the template.
	ErrUnresolvedTarget = errors.New("no slot matches override target")
)
