// Copyright (c) 2026, The Graft Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package composite

import (
	"fmt"
	"slices"

	"github.com/mitchellh/mapstructure"

	"github.com/branchwork/graft/tree"
)

// override is a detached child of a composite together with the slot
// target it declared. An empty target means positional matching.
type override struct {
	node   tree.Node
	target string
}

// layoutSchema is the slice of a node's layout metadata that the resolver
// understands. The slot key names the slot this override must bind to.
type layoutSchema struct {
	Slot string `mapstructure:"slot"`
}

// extractOverrides detaches all children of the composite, in order,
// reading each child's slot target from its layout metadata. The
// composite ends up with zero children, whether or not the resolution
// that follows succeeds.
func extractOverrides(c *Composite) ([]override, error) {
	kids := c.Children
	c.Children = nil
	overrides := make([]override, len(kids))
	for i, kid := range kids {
		kb := kid.AsTree()
		kb.Parent = nil
		var schema layoutSchema
		if kb.Layout != nil {
			if err := mapstructure.Decode(kb.Layout, &schema); err != nil {
				return nil, fmt.Errorf("%w: layout of override %q: %v", ErrConfiguration, kb.Name, err)
			}
		}
		overrides[i] = override{node: kid, target: schema.Slot}
	}
	return overrides, nil
}

// match pairs one slot with the override that replaces it.
type match struct {
	slot     *Slot
	override tree.Node
}

// matchSlots resolves overrides to slots, returning the matched pairs and
// the leftover slots that no override claimed. The mode is determined by
// the first override: a declared slot target selects explicit matching,
// no target selects positional matching. Cardinality is checked before
// any matching is attempted.
func matchSlots(overrides []override, slots []*Slot) ([]match, []*Slot, error) {
	if len(overrides) > len(slots) {
		return nil, nil, fmt.Errorf("%w: %d overrides for %d slots", ErrOverCommit, len(overrides), len(slots))
	}
	if len(overrides) == 0 {
		return nil, slots, nil
	}
	if overrides[0].target != "" {
		return matchExplicit(overrides, slots)
	}
	return matchPositional(overrides, slots)
}

// matchExplicit binds each override, in its original order, to the first
// still-unclaimed slot whose name equals the override's target.
func matchExplicit(overrides []override, slots []*Slot) ([]match, []*Slot, error) {
	pool := slices.Clone(slots)
	pairs := make([]match, 0, len(overrides))
	for _, o := range overrides {
		if o.target == "" {
			return nil, nil, fmt.Errorf("%w: override %q has no slot target (if one override names a slot, all must)", ErrMixedTargets, o.node.AsTree().Name)
		}
		i := slices.IndexFunc(pool, func(s *Slot) bool { return s.Name == o.target })
		if i < 0 {
			return nil, nil, fmt.Errorf("%w: override %q targets slot %q", ErrUnresolvedTarget, o.node.AsTree().Name, o.target)
		}
		pairs = append(pairs, match{slot: pool[i], override: o.node})
		pool = slices.Delete(pool, i, i+1)
	}
	return pairs, pool, nil
}

// matchPositional binds the override at index i to the slot at index i;
// slots past the last override are leftovers.
func matchPositional(overrides []override, slots []*Slot) ([]match, []*Slot, error) {
	pairs := make([]match, 0, len(overrides))
	for i, o := range overrides {
		if o.target != "" {
			return nil, nil, fmt.Errorf("%w: override %q names slot %q but an earlier sibling names none", ErrMixedTargets, o.node.AsTree().Name, o.target)
		}
		pairs = append(pairs, match{slot: slots[i], override: o.node})
	}
	return pairs, slots[len(overrides):], nil
}
