package tools

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMCPToolConversion(t *testing.T) {
	desc := &Descriptor{
		Name:        "get_cluster",
		Description: "Get information about a cluster",
		Params: ParamSchema{
			req("cluster_id", TypeString, "Cluster to describe"),
			opt("verbose", TypeBoolean, "Include full spec"),
		},
		Handler: noopHandler,
	}

	tool := mcpTool(desc)
	assert.Equal(t, "get_cluster", tool.Name)
	assert.Equal(t, "Get information about a cluster", tool.Description)
	assert.Contains(t, tool.InputSchema.Properties, "cluster_id")
	assert.Contains(t, tool.InputSchema.Properties, "verbose")
	assert.Equal(t, []string{"cluster_id"}, tool.InputSchema.Required)
}

func TestRenderContent(t *testing.T) {
	assert.Equal(t, "plain", renderContent("plain"))

	rendered := renderContent(map[string]any{"cluster_id": "abc"})
	assert.Contains(t, rendered, `"cluster_id": "abc"`)
}
