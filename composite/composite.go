// Copyright (c) 2026, The Graft Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package composite implements template composition for graft trees. A
// [Composite] node names a template; on resolution the template tree is
// loaded, the composite's own children are grafted into the template's
// [Slot] positions, unclaimed slots are removed, and the resolved template
// root takes the composite's place in its parent.
//
// A child of a composite can name the slot it binds to through the "slot"
// key of its layout metadata. If any child names a slot, all of them must;
// if none do, children bind to slots in order.
package composite

import (
	"fmt"
	"log/slog"

	"github.com/branchwork/graft/tree"
)

// Composite is a node that replaces itself with a loaded template,
// grafting its own children into the template's slots. It measures
// nothing and renders nothing; it exists in a tree only until its first
// successful in-place resolution.
type Composite struct {
	tree.NodeBase

	// Template is the identifier of the template to resolve,
	// interpreted by the Loader.
	Template string

	// Loader loads the template tree. It must be set before resolution.
	Loader Loader
}

func init() {
	tree.RegisterKind("composite", func() tree.Node { return &Composite{} })
}

// OnAdd resolves the composite in place as soon as it is hosted, when a
// template and loader are already configured. Failures cannot propagate
// from this hook and are logged; callers that need the error call
// [Composite.Resolve] directly.
func (c *Composite) OnAdd() {
	if c.Template == "" || c.Loader == nil {
		return
	}
	if _, err := c.Resolve(); err != nil {
		slog.Error("composite: resolve on add", "composite", c.Path(), "err", err)
	}
}

// SetLoader sets the template [Loader] and returns the composite.
func (c *Composite) SetLoader(loader Loader) *Composite {
	c.Loader = loader
	return c
}

// SetTemplate sets the template identifier. If the composite is already
// hosted and has a loader, it resolves in place immediately and returns
// the resolved template root; otherwise it returns nil and resolution
// happens when the composite is added to a parent.
func (c *Composite) SetTemplate(template string) (tree.Node, error) {
	c.Template = template
	if template == "" || c.Parent == nil || c.Loader == nil {
		return nil, nil
	}
	return c.Resolve()
}

// Resolve resolves the composite in place: it loads the template, grafts
// the composite's children into the template's slots, removes unclaimed
// slots, and replaces the composite with the resolved template root in
// the composite's parent. It returns the template root, which occupies
// the composite's former index and inherits its name and layout metadata
// where it has none of its own. The composite is detached and no longer
// part of any tree.
//
// Resolution is destructive: the children are extracted before they are
// validated against the template, so when Resolve returns an error after
// loading succeeded, the composite has already lost its children. A retry
// requires re-adding them.
func (c *Composite) Resolve() (tree.Node, error) {
	if c.Parent == nil {
		return nil, fmt.Errorf("%w: composite %q has no parent to resolve into", ErrConfiguration, c.Path())
	}
	root, err := c.resolve(c.Parent)
	if err != nil {
		return nil, err
	}
	if err := tree.Replace(c.This, root); err != nil {
		return nil, err
	}
	return root, nil
}

// ResolveDetached resolves the template against the given intended parent
// without inserting the result anywhere; the caller owns placement. The
// composite itself need not be hosted. This is for hosts that must
// produce a resolved tree before they can attach it, such as list
// adapters that hand cells to a recycler.
func (c *Composite) ResolveDetached(parent tree.Node) (tree.Node, error) {
	if parent == nil {
		return nil, fmt.Errorf("%w: composite %q: detached resolution needs a non-nil parent", ErrConfiguration, c.Path())
	}
	return c.resolve(parent)
}

// resolve runs one full resolution pass: load, extract, validate, match,
// graft, clean up. It returns the resolved template root, detached.
func (c *Composite) resolve(parent tree.Node) (tree.Node, error) {
	if c.Template == "" {
		return nil, fmt.Errorf("%w: composite %q has no template set", ErrConfiguration, c.Path())
	}
	if c.Loader == nil {
		return nil, fmt.Errorf("%w: composite %q has no loader set", ErrConfiguration, c.Path())
	}
	root, err := c.Loader.Load(c.Template, parent)
	if err != nil {
		return nil, fmt.Errorf("composite: load template %q: %w", c.Template, err)
	}

	overrides, err := extractOverrides(c)
	if err != nil {
		return nil, err
	}

	if !root.Container() {
		if len(overrides) > 0 {
			return nil, fmt.Errorf("%w: template %q admits no children, %d given", ErrTypeMismatch, c.Template, len(overrides))
		}
		return root, nil
	}

	pairs, leftovers, err := matchSlots(overrides, Slots(root))
	if err != nil {
		return nil, fmt.Errorf("composite: template %q: %w", c.Template, err)
	}
	for _, m := range pairs {
		if err := tree.Replace(m.slot.This, m.override); err != nil {
			return nil, err
		}
	}
	for _, s := range leftovers {
		s.Delete()
	}
	return root, nil
}

// maxResolvePasses bounds [ResolveAll] against template cycles, where a
// template directly or indirectly contains a composite of itself.
const maxResolvePasses = 1000

// ResolveAll resolves every composite in the tree under root, repeating
// until none remain so that composites introduced by templates themselves
// are resolved too. Composites without a loader of their own get the
// given one. The root itself must not be a composite, since in-place
// resolution needs a parent.
func ResolveAll(root tree.Node, loader Loader) error {
	for i := 0; i < maxResolvePasses; i++ {
		var c *Composite
		root.AsTree().WalkDown(func(n tree.Node) bool {
			if cc, ok := n.(*Composite); ok && c == nil {
				c = cc
				return tree.Break
			}
			return tree.Continue
		})
		if c == nil {
			return nil
		}
		if c.Loader == nil {
			c.Loader = loader
		}
		if _, err := c.Resolve(); err != nil {
			return err
		}
	}
	return fmt.Errorf("composite: resolution did not terminate after %d passes; template cycle?", maxResolvePasses)
}
