package contextstore

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/zclconf/go-cty/cty"
)

func TestNamespace_SetRebindsSharedName(t *testing.T) {
	t.Parallel()

	a := NewNamespace()
	b := NewNamespace()
	a.Set("x", cty.NumberIntVal(1))

	binding, ok := a.Binding("x")
	require.True(t, ok)
	b.Bind("y", binding)

	b.Set("y", cty.NumberIntVal(2))

	got, err := a.Get("x")
	require.NoError(t, err)
	require.True(t, got.RawEquals(cty.NumberIntVal(1)), "assigning through an alias must not write back")
	got, err = b.Get("y")
	require.NoError(t, err)
	require.True(t, got.RawEquals(cty.NumberIntVal(2)))
}

func TestNamespace_Snapshots(t *testing.T) {
	t.Parallel()

	ns := NewNamespace()
	require.True(t, ns.Object().RawEquals(cty.EmptyObjectVal))

	ns.Set("b", cty.StringVal("two"))
	ns.Set("a", cty.StringVal("one"))

	require.Equal(t, []string{"a", "b"}, ns.Names())
	require.Equal(t, 2, ns.Len())

	vars := ns.Variables()
	vars["a"] = cty.StringVal("mutated snapshot")
	got, err := ns.Get("a")
	require.NoError(t, err)
	require.True(t, got.RawEquals(cty.StringVal("one")), "snapshot writes must not leak back")

	obj := ns.Object()
	require.True(t, obj.GetAttr("b").RawEquals(cty.StringVal("two")))
}

func TestNamespace_CloneIsDeep(t *testing.T) {
	t.Parallel()

	ns := NewNamespace()
	ns.Set("x", cty.True)

	c := ns.clone()
	c.Set("x", cty.False)

	got, err := ns.Get("x")
	require.NoError(t, err)
	require.True(t, got.RawEquals(cty.True))
}
