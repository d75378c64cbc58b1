package mcp_test

import (
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	mcpadapter "github.com/drewnoakes/validate-slnf/internal/adapters/inbound/mcp"
)

func TestNewValidateSlnfMCPServer(t *testing.T) {
	s, err := mcpadapter.NewValidateSlnfMCPServer(afero.NewMemMapFs(), "/work", nil)
	require.NoError(t, err)
	require.NotNil(t, s)
}

func TestMCPServerHasTools(t *testing.T) {
	s, err := mcpadapter.NewValidateSlnfMCPServer(afero.NewMemMapFs(), "/work", nil)
	require.NoError(t, err)

	tools := s.ListTools()
	require.NotNil(t, tools)

	expectedTools := []string{
		"validate_slnf",
		"find_slnf_files",
	}

	for _, name := range expectedTools {
		_, exists := tools[name]
		assert.True(t, exists, "tool %q should be registered", name)
	}

	assert.Len(t, tools, len(expectedTools), "should have exactly %d tools", len(expectedTools))
}

func TestNewValidateSlnfMCPServer_InvalidConfig(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/work/.validate-slnf.yaml", []byte("log_level: loud\n"), 0644))

	_, err := mcpadapter.NewValidateSlnfMCPServer(fs, "/work", nil)
	assert.Error(t, err)
}
