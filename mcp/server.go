// Package mcp exposes the documentation endpoints as Model Context Protocol
// tools using github.com/mark3labs/mcp-go.
package mcp

import (
	"bytes"
	"context"
	"io"
	"log/slog"

	"github.com/fwojciec/pagecrawl"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// Server identity reported to clients.
const (
	ServerName    = "payreto-api-helper"
	ServerVersion = "1.0.0"
)

// Server registers one argument-less tool per active endpoint. Every tool
// call builds its own Crawler through NewCrawler, so calls share no state.
type Server struct {
	Endpoints  []pagecrawl.Endpoint
	NewCrawler pagecrawl.CrawlerFactory
	Renderer   pagecrawl.Renderer
	Logger     *slog.Logger
}

// NewServer creates a Server for the active endpoint catalogue that renders
// results as JSON.
func NewServer(newCrawler pagecrawl.CrawlerFactory, logger *slog.Logger) *Server {
	return &Server{
		Endpoints:  pagecrawl.ActiveEndpoints(),
		NewCrawler: newCrawler,
		Renderer:   pagecrawl.NewJSONRenderer(),
		Logger:     logger,
	}
}

// MCPServer builds the protocol server with a tool for every endpoint that
// is not disabled.
func (s *Server) MCPServer() *server.MCPServer {
	srv := server.NewMCPServer(ServerName, ServerVersion,
		server.WithToolCapabilities(false),
	)
	for _, ep := range s.Endpoints {
		if ep.Disabled {
			continue
		}
		tool := mcp.NewTool(ep.Name, mcp.WithDescription(ep.Description))
		srv.AddTool(tool, s.Handle(ep))
	}
	return srv
}

// Handle returns the tool handler for ep. The handler crawls the endpoint URL
// and returns the rendered result as text. Crawl failures are returned as the
// failure record, not as tool errors.
func (s *Server) Handle(ep pagecrawl.Endpoint) server.ToolHandlerFunc {
	return func(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		s.logger().Info("tool call", "tool", ep.Name, "url", ep.URL)

		result := s.NewCrawler().CrawlPage(ctx, ep.URL)

		var buf bytes.Buffer
		if err := s.Renderer.RenderResult(&buf, result); err != nil {
			s.logger().Error("render result", "tool", ep.Name, "err", err)
			return mcp.NewToolResultError(err.Error()), nil
		}
		return mcp.NewToolResultText(buf.String()), nil
	}
}

// Serve runs the server over the given streams until ctx is canceled or
// in is exhausted.
func (s *Server) Serve(ctx context.Context, in io.Reader, out io.Writer) error {
	stdio := server.NewStdioServer(s.MCPServer())
	stdio.SetErrorLogger(slog.NewLogLogger(s.logger().Handler(), slog.LevelError))
	return stdio.Listen(ctx, in, out)
}

func (s *Server) logger() *slog.Logger {
	if s.Logger != nil {
		return s.Logger
	}
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
