package tools

import (
	"context"
	"encoding/json"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/JustTryAI/databricks-mcp-server/pkg/logger"
)

// Attach registers every tool in the registry on the MCP server, routing
// calls through the dispatcher. The MCP runtime owns transport and session
// negotiation; errors always travel inside the result envelope, so the
// handler never returns a transport-level error.
func Attach(s *server.MCPServer, d *Dispatcher, registry *Registry) {
	for desc := range registry.All() {
		name := desc.Name
		s.AddTool(mcpTool(desc), func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			result := d.Dispatch(ctx, Request{
				ToolName:  name,
				Arguments: request.GetArguments(),
			})
			if result.IsError {
				return mcp.NewToolResultError(result.ErrorMessage), nil
			}
			return mcp.NewToolResultText(renderContent(result.Content)), nil
		})
	}
}

// mcpTool converts a descriptor into the mcp-go tool definition used to
// answer list-tools queries.
func mcpTool(desc *Descriptor) mcp.Tool {
	options := []mcp.ToolOption{mcp.WithDescription(desc.Description)}
	for _, p := range desc.Params {
		propOptions := []mcp.PropertyOption{mcp.Description(p.Description)}
		if p.Required {
			propOptions = append(propOptions, mcp.Required())
		}
		switch p.Type {
		case TypeString:
			options = append(options, mcp.WithString(p.Name, propOptions...))
		case TypeInteger, TypeNumber:
			options = append(options, mcp.WithNumber(p.Name, propOptions...))
		case TypeBoolean:
			options = append(options, mcp.WithBoolean(p.Name, propOptions...))
		case TypeObject:
			options = append(options, mcp.WithObject(p.Name, propOptions...))
		case TypeArray:
			options = append(options, mcp.WithArray(p.Name, propOptions...))
		}
	}
	return mcp.NewTool(desc.Name, options...)
}

func renderContent(content any) string {
	if s, ok := content.(string); ok {
		return s
	}
	pretty, err := json.MarshalIndent(content, "", "  ")
	if err != nil {
		return "{}"
	}
	return string(pretty)
}

// ProgressNotifier returns a ProgressFunc that forwards heartbeat events to
// the calling MCP session as notifications/progress messages.
func ProgressNotifier() ProgressFunc {
	return func(ctx context.Context, tool string, elapsed time.Duration) {
		srv := server.ServerFromContext(ctx)
		if srv == nil {
			return
		}
		err := srv.SendNotificationToClient(ctx, "notifications/progress", map[string]any{
			"progressToken": tool,
			"message":       tool + " still running after " + elapsed.Round(time.Second).String(),
		})
		if err != nil {
			logger.Get().V(1).Info("failed to send progress notification", "tool", tool, "error", err.Error())
		}
	}
}
