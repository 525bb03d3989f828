package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
)

func jsonResult(v any) (*mcp.CallToolResult, error) {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("encode result: %v", err)), nil
	}
	return mcp.NewToolResultText(string(b)), nil
}

func (s *Server) handleBuildIndex(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	if err := s.store.Build(ctx); err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("build index: %v", err)), nil
	}
	return jsonResult(s.store.Stats())
}

func (s *Server) handleQueryComponent(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	name, err := req.RequireString("name")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	category := req.GetString("category", "")

	res, err := s.store.QueryComponent(ctx, name, category)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("query component: %v", err)), nil
	}
	return jsonResult(res)
}

func (s *Server) handleQueryUtility(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	name, err := req.RequireString("name")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	res, err := s.store.QueryUtility(ctx, name)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("query utility: %v", err)), nil
	}
	return jsonResult(res)
}

func (s *Server) handleQueryPlugin(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	name, err := req.RequireString("name")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	res, err := s.store.QueryPlugin(ctx, name)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("query plugin: %v", err)), nil
	}
	return jsonResult(res)
}

func (s *Server) handleBestPractices(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	topic, err := req.RequireString("topic")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	res, err := s.store.BestPractices(ctx, topic)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("best practices: %v", err)), nil
	}
	return jsonResult(res)
}

func (s *Server) handleAllComponents(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	summaries, err := s.store.GetAllComponents(ctx)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("list components: %v", err)), nil
	}
	return jsonResult(summaries)
}

func (s *Server) handleAllUtilities(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	summaries, err := s.store.GetAllUtilities(ctx)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("list utilities: %v", err)), nil
	}
	return jsonResult(summaries)
}

func (s *Server) handleAllPlugins(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	summaries, err := s.store.GetAllPlugins(ctx)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("list plugins: %v", err)), nil
	}
	return jsonResult(summaries)
}
