// Copyright (c) 2026, The Graft Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package composite_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	. "github.com/branchwork/graft/composite"
	"github.com/branchwork/graft/tree"
)

// cardLoader returns a loader with a "card" template of three slots named
// 1, 2, 3 with an ordinary node in between, and a "label" template whose
// root is a leaf.
func cardLoader() *Registry {
	reg := NewRegistry()
	reg.Register("card", func() tree.Node {
		root := tree.New[*tree.NodeBase]()
		root.SetName("card")
		tree.New[*Slot](root).SetName("1")
		tree.New[*Slot](root).SetName("2")
		tree.New[*tree.NodeBase](root).SetName("divider")
		tree.New[*Slot](root).SetName("3")
		return root
	})
	reg.Register("label", func() tree.Node {
		l := tree.New[*tree.Leaf]()
		l.SetName("label")
		return l
	})
	return reg
}

// newHosted returns a composite hosted between two siblings, with no
// template or loader configured yet.
func newHosted(t *testing.T) (host *tree.NodeBase, c *Composite) {
	t.Helper()
	host = tree.New[*tree.NodeBase]()
	host.SetName("host")
	tree.New[*tree.NodeBase](host).SetName("before")
	c = tree.New[*Composite](host)
	tree.New[*tree.NodeBase](host).SetName("after")
	require.Equal(t, 1, c.IndexInParent())
	return host, c
}

func override(name, target string) tree.Node {
	n := tree.New[*tree.NodeBase]()
	n.SetName(name)
	if target != "" {
		n.SetLayout(map[string]any{"slot": target})
	}
	return n
}

func TestResolveExplicit(t *testing.T) {
	host, c := newHosted(t)
	c.Loader = cardLoader()
	c.Template = "card"
	c.AddChild(override("a", "3"))
	c.AddChild(override("b", "1"))

	root, err := c.Resolve()
	require.NoError(t, err)

	// the resolved root holds the composite's former position
	require.Equal(t, 3, host.NumChildren())
	assert.Equal(t, root, host.Child(1))
	assert.Nil(t, c.Parent)

	// slot 1 holds b, slot 2 is gone, slot 3 holds a, the divider stays
	rb := root.AsTree()
	require.Equal(t, 3, rb.NumChildren())
	assert.Equal(t, "b", rb.Child(0).AsTree().Name)
	assert.Equal(t, "divider", rb.Child(1).AsTree().Name)
	assert.Equal(t, "a", rb.Child(2).AsTree().Name)
	assert.Empty(t, Slots(root))
}

func TestResolvePositional(t *testing.T) {
	_, c := newHosted(t)
	c.Loader = cardLoader()
	c.Template = "card"
	c.AddChild(override("c", ""))
	c.AddChild(override("d", ""))

	root, err := c.Resolve()
	require.NoError(t, err)

	rb := root.AsTree()
	require.Equal(t, 3, rb.NumChildren())
	assert.Equal(t, "c", rb.Child(0).AsTree().Name)
	assert.Equal(t, "d", rb.Child(1).AsTree().Name)
	assert.Equal(t, "divider", rb.Child(2).AsTree().Name)
}

func TestResolveInheritsIdentity(t *testing.T) {
	host, c := newHosted(t)
	c.SetName("content-area")
	c.SetLayout(map[string]any{"weight": 1})
	c.Loader = cardLoader()
	c.Template = "label"

	root, err := c.Resolve()
	require.NoError(t, err)
	assert.Equal(t, "label", root.AsTree().Name) // kept its own name
	assert.Equal(t, 1, root.AsTree().Layout["weight"])
	assert.Equal(t, root, host.ChildByName("label"))
}

func TestResolveOverrideKeepsSlotPosition(t *testing.T) {
	// a replaced slot passes its name on to an override that has none
	_, c := newHosted(t)
	reg := NewRegistry()
	reg.Register("one", func() tree.Node {
		root := tree.New[*tree.NodeBase]()
		tree.New[*Slot](root).SetName("only")
		return root
	})
	c.Loader = reg
	c.Template = "one"
	anon := tree.New[*tree.NodeBase]()
	c.AddChild(anon)

	root, err := c.Resolve()
	require.NoError(t, err)
	assert.Equal(t, "only", root.AsTree().Child(0).AsTree().Name)
	assert.Equal(t, tree.Node(anon), root.AsTree().Child(0))
}

func TestResolveEmptyOverrides(t *testing.T) {
	_, c := newHosted(t)
	c.Loader = cardLoader()
	c.Template = "card"

	root, err := c.Resolve()
	require.NoError(t, err)

	// all slots removed, remainder of the template untouched
	rb := root.AsTree()
	require.Equal(t, 1, rb.NumChildren())
	assert.Equal(t, "divider", rb.Child(0).AsTree().Name)
}

func TestResolveOverCommitEmptiesComposite(t *testing.T) {
	host, c := newHosted(t)
	reg := NewRegistry()
	reg.Register("two", func() tree.Node {
		root := tree.New[*tree.NodeBase]()
		tree.New[*Slot](root)
		tree.New[*Slot](root)
		return root
	})
	c.Loader = reg
	c.Template = "two"
	c.AddChild(override("x", ""))
	c.AddChild(override("y", ""))
	c.AddChild(override("z", ""))

	_, err := c.Resolve()
	require.ErrorIs(t, err, ErrOverCommit)

	// extraction precedes validation: the composite is already stripped
	// and still in place
	assert.Equal(t, 0, c.NumChildren())
	assert.Equal(t, host, c.Parent.AsTree())
}

func TestResolveUnresolvedTarget(t *testing.T) {
	_, c := newHosted(t)
	c.Loader = cardLoader()
	c.Template = "card"
	c.AddChild(override("x", "5"))

	_, err := c.Resolve()
	require.ErrorIs(t, err, ErrUnresolvedTarget)
}

func TestResolveMixedTargets(t *testing.T) {
	_, c := newHosted(t)
	c.Loader = cardLoader()
	c.Template = "card"
	c.AddChild(override("x", "1"))
	c.AddChild(override("y", ""))

	_, err := c.Resolve()
	require.ErrorIs(t, err, ErrMixedTargets)
}

func TestResolveLeafTemplate(t *testing.T) {
	host, c := newHosted(t)
	c.Loader = cardLoader()
	c.Template = "label"

	root, err := c.Resolve()
	require.NoError(t, err)
	assert.Equal(t, root, host.Child(1))

	// a leaf template admits no overrides
	_, c2 := newHosted(t)
	c2.Loader = cardLoader()
	c2.Template = "label"
	c2.AddChild(override("x", ""))
	_, err = c2.Resolve()
	require.ErrorIs(t, err, ErrTypeMismatch)
}

func TestResolveConfigurationErrors(t *testing.T) {
	// no parent
	c := tree.New[*Composite]()
	c.Template = "card"
	c.Loader = cardLoader()
	_, err := c.Resolve()
	require.ErrorIs(t, err, ErrConfiguration)

	// no template
	_, c = newHosted(t)
	c.Loader = cardLoader()
	_, err = c.Resolve()
	require.ErrorIs(t, err, ErrConfiguration)

	// no loader
	_, c = newHosted(t)
	c.Template = "card"
	_, err = c.Resolve()
	require.ErrorIs(t, err, ErrConfiguration)

	// unknown template surfaces the loader error
	_, c = newHosted(t)
	c.Loader = cardLoader()
	c.Template = "missing"
	_, err = c.Resolve()
	require.Error(t, err)
	assert.Contains(t, err.Error(), `"missing"`)
}

func TestResolveSecondTriggerFails(t *testing.T) {
	_, c := newHosted(t)
	c.Loader = cardLoader()
	c.Template = "label"
	_, err := c.Resolve()
	require.NoError(t, err)

	// the composite was detached by the first resolution
	_, err = c.Resolve()
	require.ErrorIs(t, err, ErrConfiguration)
}

func TestResolveDetached(t *testing.T) {
	host := tree.New[*tree.NodeBase]()
	c := tree.New[*Composite]()
	c.Loader = cardLoader()
	c.Template = "card"
	c.AddChild(override("x", ""))

	root, err := c.ResolveDetached(host)
	require.NoError(t, err)
	assert.Nil(t, root.AsTree().Parent)
	assert.Equal(t, 0, host.NumChildren()) // the intended parent is untouched
	assert.Equal(t, "x", root.AsTree().Child(0).AsTree().Name)

	_, err = c.ResolveDetached(nil)
	require.ErrorIs(t, err, ErrConfiguration)
}

func TestResolveOnAdd(t *testing.T) {
	host := tree.New[*tree.NodeBase]()
	c := tree.New[*Composite]()
	c.Loader = cardLoader()
	c.Template = "label"
	host.AddChild(c)

	// hosting triggered resolution: the composite is gone and the
	// template root stands in its place
	require.Equal(t, 1, host.NumChildren())
	assert.Equal(t, "label", host.Child(0).AsTree().Name)
	assert.Nil(t, c.Parent)
}

func TestSetTemplateWhileHosted(t *testing.T) {
	host, c := newHosted(t)
	c.Loader = cardLoader()

	root, err := c.SetTemplate("label")
	require.NoError(t, err)
	require.NotNil(t, root)
	assert.Equal(t, root, host.Child(1))

	// setting a template on an unhosted composite defers resolution
	c2 := tree.New[*Composite]()
	c2.Loader = cardLoader()
	root, err = c2.SetTemplate("label")
	require.NoError(t, err)
	assert.Nil(t, root)
}

func TestNestedSlotsInvisible(t *testing.T) {
	// slots below the template root's direct children are not collected
	_, c := newHosted(t)
	reg := NewRegistry()
	reg.Register("nested", func() tree.Node {
		root := tree.New[*tree.NodeBase]()
		inner := tree.New[*tree.NodeBase](root)
		inner.SetName("inner")
		tree.New[*Slot](inner).SetName("hidden")
		return root
	})
	c.Loader = reg
	c.Template = "nested"
	c.AddChild(override("x", ""))

	_, err := c.Resolve()
	require.ErrorIs(t, err, ErrOverCommit) // zero visible slots
}

func TestRegisterNodePrototype(t *testing.T) {
	reg := NewRegistry()
	proto := tree.New[*tree.NodeBase]()
	proto.SetName("proto")
	tree.New[*Slot](proto).SetName("s")
	reg.RegisterNode("proto", proto)

	first, err := reg.Load("proto", nil)
	require.NoError(t, err)
	second, err := reg.Load("proto", nil)
	require.NoError(t, err)
	assert.NotSame(t, first.AsTree(), second.AsTree())
	require.Len(t, Slots(first), 1)
	require.Len(t, Slots(second), 1)
	require.Len(t, Slots(proto), 1) // prototype never handed out
}

func TestResolveAll(t *testing.T) {
	reg := NewRegistry()
	reg.Register("outer", func() tree.Node {
		root := tree.New[*tree.NodeBase]()
		root.SetName("outer")
		tree.New[*Slot](root).SetName("body")
		inner := tree.New[*Composite](root)
		inner.Template = "inner"
		return root
	})
	reg.Register("inner", func() tree.Node {
		l := tree.New[*tree.Leaf]()
		l.SetName("inner")
		return l
	})

	host := tree.New[*tree.NodeBase]()
	c := tree.New[*Composite](host)
	c.Template = "outer"
	c.AddChild(override("content", ""))

	require.NoError(t, ResolveAll(host, reg))

	outer := host.Child(0).AsTree()
	assert.Equal(t, "outer", outer.Name)
	require.Equal(t, 2, outer.NumChildren())
	assert.Equal(t, "content", outer.Child(0).AsTree().Name)
	assert.Equal(t, "inner", outer.Child(1).AsTree().Name)

	// no composites or slots remain anywhere
	host.WalkDown(func(n tree.Node) bool {
		_, isComposite := n.(*Composite)
		_, isSlot := n.(*Slot)
		assert.False(t, isComposite)
		assert.False(t, isSlot)
		return tree.Continue
	})
}

func TestResolveAllError(t *testing.T) {
	reg := NewRegistry()
	host := tree.New[*tree.NodeBase]()
	c := tree.New[*Composite](host)
	c.Template = "missing"
	err := ResolveAll(host, reg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `"missing"`)
}
