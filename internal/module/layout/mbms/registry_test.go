package mbms

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubModel struct {
	name string
}

func (m *stubModel) Name() string        { return m.name }
func (m *stubModel) Description() string { return "stub" }
func (m *stubModel) Validate(ctx context.Context, input interface{}) error {
	return nil
}
func (m *stubModel) Execute(ctx context.Context, input interface{}) (interface{}, error) {
	return input, nil
}

func TestRegistry_RegisterAndGet(t *testing.T) {
	registry := NewRegistry()

	require.NoError(t, registry.Register(&stubModel{name: "layout"}))

	model, err := registry.Get("layout")
	require.NoError(t, err)
	assert.Equal(t, "layout", model.Name())

	assert.Equal(t, []string{"layout"}, registry.List())
}

func TestRegistry_RejectsDuplicatesAndInvalid(t *testing.T) {
	registry := NewRegistry()

	require.NoError(t, registry.Register(&stubModel{name: "layout"}))
	assert.Error(t, registry.Register(&stubModel{name: "layout"}))
	assert.Error(t, registry.Register(nil))
	assert.Error(t, registry.Register(&stubModel{name: ""}))

	_, err := registry.Get("missing")
	assert.Error(t, err)
}
