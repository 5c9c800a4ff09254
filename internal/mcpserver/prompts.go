package mcpserver

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/mark3labs/speckit/internal/logger"
	"github.com/mark3labs/speckit/internal/prompt"
)

// registerPrompts registers every generator from the registry with the MCP server.
func (s *Server) registerPrompts() {
	for _, gen := range s.registry.List() {
		argOpts := []mcp.ArgumentOption{
			mcp.ArgumentDescription(gen.Argument.Description),
		}
		if gen.Argument.Required {
			argOpts = append(argOpts, mcp.RequiredArgument())
		}

		s.mcpServer.AddPrompt(
			mcp.NewPrompt(gen.Name,
				mcp.WithPromptDescription(gen.Description),
				mcp.WithArgument(gen.Argument.Name, argOpts...),
			),
			s.promptHandler(gen),
		)
	}
}

// promptHandler builds the prompts/get handler for a single generator.
// A missing argument renders as the empty string; unknown extra arguments
// are ignored. The handler never fails: rendering is plain substitution.
func (s *Server) promptHandler(gen prompt.Generator) server.PromptHandlerFunc {
	return func(ctx context.Context, request mcp.GetPromptRequest) (*mcp.GetPromptResult, error) {
		input := request.Params.Arguments[gen.Argument.Name]
		text := gen.Render(input)

		logger.Debug("Rendered %s prompt (%d bytes in, %d bytes out)", gen.Name, len(input), len(text))

		return mcp.NewGetPromptResult(
			gen.Description,
			[]mcp.PromptMessage{
				mcp.NewPromptMessage(mcp.RoleUser, mcp.NewTextContent(text)),
			},
		), nil
	}
}
