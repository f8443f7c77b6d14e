package tools

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func noopHandler(ctx context.Context, args map[string]any) (any, error) {
	return map[string]any{}, nil
}

func TestRegistryRegisterAndLookup(t *testing.T) {
	registry := NewRegistry()
	require.NoError(t, registry.Register(Descriptor{Name: "list_clusters", Handler: noopHandler}))

	desc, err := registry.Lookup("list_clusters")
	require.NoError(t, err)
	assert.Equal(t, "list_clusters", desc.Name)

	_, err = registry.Lookup("nope")
	assert.ErrorIs(t, err, ErrUnknownTool)
}

func TestRegistryRejectsDuplicates(t *testing.T) {
	registry := NewRegistry()
	require.NoError(t, registry.Register(Descriptor{Name: "get_cluster", Handler: noopHandler}))

	err := registry.Register(Descriptor{Name: "get_cluster", Handler: noopHandler})
	assert.ErrorIs(t, err, ErrDuplicateTool)
	assert.Equal(t, 1, registry.Len())
}

func TestRegistryRejectsInvalidDescriptors(t *testing.T) {
	registry := NewRegistry()
	assert.Error(t, registry.Register(Descriptor{Name: "", Handler: noopHandler}))
	assert.Error(t, registry.Register(Descriptor{Name: "no_handler"}))
}

func TestRegistryAllPreservesOrderAndRestarts(t *testing.T) {
	registry := NewRegistry()
	names := []string{"c_tool", "a_tool", "b_tool"}
	for _, name := range names {
		require.NoError(t, registry.Register(Descriptor{Name: name, Handler: noopHandler}))
	}

	collect := func() []string {
		var got []string
		for desc := range registry.All() {
			got = append(got, desc.Name)
		}
		return got
	}

	first := collect()
	second := collect()
	assert.Equal(t, names, first)
	assert.Equal(t, first, second)
}

func TestRegistryAllEarlyStop(t *testing.T) {
	registry := NewRegistry()
	require.NoError(t, registry.Register(Descriptor{Name: "one", Handler: noopHandler}))
	require.NoError(t, registry.Register(Descriptor{Name: "two", Handler: noopHandler}))

	var got []string
	for desc := range registry.All() {
		got = append(got, desc.Name)
		break
	}
	assert.Equal(t, []string{"one"}, got)
}
