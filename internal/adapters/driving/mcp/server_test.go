package mcp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewServer(t *testing.T) {
	t.Run("nil catalog service returns error", func(t *testing.T) {
		ports := &Ports{}
		server, err := NewServer(ports)
		require.Error(t, err)
		assert.Nil(t, server)
		assert.ErrorIs(t, err, ErrMissingCatalogService)
	})

	t.Run("valid ports creates server", func(t *testing.T) {
		ports := &Ports{
			Catalog: &mockCatalogService{},
		}
		server, err := NewServer(ports)
		require.NoError(t, err)
		assert.NotNil(t, server)
	})
}

func TestPorts_Validate(t *testing.T) {
	t.Run("nil catalog service returns error", func(t *testing.T) {
		ports := &Ports{}
		err := ports.Validate()
		assert.ErrorIs(t, err, ErrMissingCatalogService)
	})

	t.Run("catalog set is valid", func(t *testing.T) {
		ports := &Ports{
			Catalog: &mockCatalogService{},
		}
		err := ports.Validate()
		assert.NoError(t, err)
	})
}

func TestServer_newSession(t *testing.T) {
	t.Run("each call builds a distinct session", func(t *testing.T) {
		server, err := NewServer(&Ports{Catalog: &mockCatalogService{}})
		require.NoError(t, err)

		first := server.newSession()
		second := server.newSession()

		require.NotNil(t, first)
		require.NotNil(t, second)
		assert.NotSame(t, first, second)
	})
}
