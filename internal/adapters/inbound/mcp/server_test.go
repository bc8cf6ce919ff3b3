package mcp_test

import (
	"testing"

	mcpadapter "github.com/bewertigo/bewertigo/internal/adapters/inbound/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewBewertigoMCPServer(t *testing.T) {
	s := mcpadapter.NewBewertigoMCPServer(".", nil)
	require.NotNil(t, s)
}

func TestMCPServerHasTools(t *testing.T) {
	s := mcpadapter.NewBewertigoMCPServer(".", nil)
	require.NotNil(t, s)

	tools := s.ListTools()
	require.NotNil(t, tools)

	expectedTools := []string{
		"bewertigo_audit",
		"bewertigo_audit_file",
		"bewertigo_benchmark",
		"bewertigo_recommendations",
	}

	for _, name := range expectedTools {
		_, exists := tools[name]
		assert.True(t, exists, "tool %q should be registered", name)
	}

	assert.Len(t, tools, len(expectedTools), "should have exactly %d tools", len(expectedTools))
}
