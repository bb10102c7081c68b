// Package server exposes the alias runtime over the Model Context
// Protocol: tools for execution and catalog listing, resources for
// read-only catalog access.
package server

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/xdg/aliasgate/internal/alog"
	"github.com/xdg/aliasgate/internal/catalog"
	"github.com/xdg/aliasgate/internal/executor"
	"github.com/xdg/aliasgate/internal/runtime"
	"github.com/xdg/aliasgate/internal/version"
)

// Server wraps the alias runtime and exposes it via MCP over stdio.
type Server struct {
	rt  *runtime.Runtime
	mcp *server.MCPServer
}

// New creates an MCP server bound to the given runtime.
func New(rt *runtime.Runtime) *Server {
	s := &Server{
		rt: rt,
		mcp: server.NewMCPServer(
			"aliasgate",
			version.Version,
			server.WithToolCapabilities(true),
			server.WithResourceCapabilities(true, true),
			server.WithInstructions("Expose vetted shell aliases as safe MCP tools."),
		),
	}
	s.registerTools()
	s.registerResources()
	return s
}

// Serve runs the server on stdio until ctx is canceled or stdin closes.
func (s *Server) Serve(ctx context.Context) error {
	alog.Infow("aliasgate server starting", "version", version.Version)
	stdio := server.NewStdioServer(s.mcp)
	if err := stdio.Listen(ctx, os.Stdin, os.Stdout); err != nil && !errors.Is(err, context.Canceled) {
		return errors.Wrap(err, "serve stdio")
	}
	alog.Infow("aliasgate server stopped")
	return nil
}

// registerTools registers the alias execution and catalog tools.
func (s *Server) registerTools() {
	execTool := mcp.NewTool("alias_exec",
		mcp.WithDescription("Execute or dry-run a configured shell alias."),
		mcp.WithString("name",
			mcp.Required(),
			mcp.Description("Alias name to execute"),
		),
		mcp.WithString("args",
			mcp.Description("Arguments appended to the alias expansion"),
		),
		mcp.WithBoolean("dry_run",
			mcp.Description("Report what would run without spawning a process (default: true)"),
		),
		mcp.WithBoolean("confirm",
			mcp.Description("Required for real execution (default: false)"),
		),
		mcp.WithString("cwd",
			mcp.Description("Working directory; must be inside an allowed root"),
		),
		mcp.WithNumber("timeout_seconds",
			mcp.Description("Timeout override; capped at 5x the configured default"),
		),
	)
	s.mcp.AddTool(execTool, s.handleExec)

	catalogTool := mcp.NewTool("alias_catalog",
		mcp.WithDescription("Return catalog metadata for all aliases."),
	)
	s.mcp.AddTool(catalogTool, s.handleCatalog)
}

// registerResources registers the catalog resource and the per-alias
// resource template.
func (s *Server) registerResources() {
	catalogResource := mcp.NewResource(
		"alias://catalog",
		"Alias catalog",
		mcp.WithResourceDescription("JSON catalog of available aliases."),
		mcp.WithMIMEType("application/json"),
	)
	s.mcp.AddResource(catalogResource, s.handleCatalogResource)

	detailTemplate := mcp.NewResourceTemplate(
		"alias://{name}",
		"Alias detail",
		mcp.WithTemplateDescription("JSON detail for a single alias."),
		mcp.WithTemplateMIMEType("application/json"),
	)
	s.mcp.AddResourceTemplate(detailTemplate, s.handleDetailResource)
}

// aliasPayload is the JSON shape of one alias in tool and resource output.
type aliasPayload struct {
	Name       string `json:"name"`
	Expansion  string `json:"expansion"`
	Safe       bool   `json:"safe"`
	SourceFile string `json:"sourceFile"`
	Example    string `json:"example"`
}

func toPayload(a catalog.Alias) aliasPayload {
	example := fmt.Sprintf(`alias_exec {"name":%q,"args":"","dry_run":true}`, a.Name)
	if !a.Safe {
		example += "  # unsafe aliases only support dry runs"
	}
	return aliasPayload{
		Name:       a.Name,
		Expansion:  a.Expansion,
		Safe:       a.Safe,
		SourceFile: a.SourceFile,
		Example:    example,
	}
}

// truncatedPayload flags per-stream truncation in exec output.
type truncatedPayload struct {
	Stdout bool `json:"stdout"`
	Stderr bool `json:"stderr"`
}

// execPayload is the JSON shape of one execution result.
type execPayload struct {
	Command    string           `json:"command"`
	Cwd        string           `json:"cwd"`
	ExitCode   *int             `json:"exitCode"`
	Stdout     string           `json:"stdout"`
	Stderr     string           `json:"stderr"`
	Truncated  truncatedPayload `json:"truncated"`
	TimedOut   bool             `json:"timedOut"`
	DryRun     bool             `json:"dryRun"`
	AliasSafe  bool             `json:"aliasSafe"`
	SourceFile string           `json:"sourceFile"`
}

func resultPayload(alias catalog.Alias, res *executor.Result) execPayload {
	return execPayload{
		Command:  res.Command,
		Cwd:      res.Cwd,
		ExitCode: res.ExitCode,
		Stdout:   res.Stdout,
		Stderr:   res.Stderr,
		Truncated: truncatedPayload{
			Stdout: res.TruncatedStdout,
			Stderr: res.TruncatedStderr,
		},
		TimedOut:   res.TimedOut,
		DryRun:     res.DryRun,
		AliasSafe:  alias.Safe,
		SourceFile: alias.SourceFile,
	}
}

// handleExec handles alias_exec tool calls. Policy violations and
// unknown aliases surface as tool errors, not protocol failures.
func (s *Server) handleExec(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	name, err := request.RequireString("name")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	args := executor.NoArgs()
	if raw := strings.TrimSpace(request.GetString("args", "")); raw != "" {
		args = executor.StringArgs(raw)
	}

	req := runtime.ExecRequest{
		Name:           name,
		Args:           args,
		DryRun:         request.GetBool("dry_run", true),
		Confirm:        request.GetBool("confirm", false),
		Cwd:            request.GetString("cwd", ""),
		TimeoutSeconds: request.GetInt("timeout_seconds", 0),
	}

	alias, result, err := s.rt.ExecuteAlias(ctx, req)
	if err != nil {
		var cwdErr *executor.CwdNotAllowedError
		switch {
		case errors.Is(err, runtime.ErrAliasNotFound),
			errors.Is(err, runtime.ErrUnsafeAlias),
			errors.Is(err, runtime.ErrConfirmRequired),
			errors.Is(err, runtime.ErrInvalidTimeout),
			errors.As(err, &cwdErr):
			return mcp.NewToolResultError(err.Error()), nil
		}
		return nil, err
	}

	data, err := json.Marshal(resultPayload(alias, result))
	if err != nil {
		return nil, errors.Wrap(err, "marshal exec payload")
	}
	return mcp.NewToolResultText(string(data)), nil
}

// handleCatalog handles alias_catalog tool calls.
func (s *Server) handleCatalog(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	aliases := s.rt.ListAliases()
	payloads := make([]aliasPayload, 0, len(aliases))
	for _, a := range aliases {
		payloads = append(payloads, toPayload(a))
	}

	data, err := json.Marshal(map[string][]aliasPayload{"aliases": payloads})
	if err != nil {
		return nil, errors.Wrap(err, "marshal catalog payload")
	}
	return mcp.NewToolResultText(string(data)), nil
}

// handleCatalogResource serves the alias://catalog resource.
func (s *Server) handleCatalogResource(_ context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	aliases := s.rt.ListAliases()
	payloads := make([]aliasPayload, 0, len(aliases))
	for _, a := range aliases {
		payloads = append(payloads, toPayload(a))
	}

	data, err := json.MarshalIndent(payloads, "", "  ")
	if err != nil {
		return nil, errors.Wrap(err, "marshal catalog resource")
	}
	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      request.Params.URI,
			MIMEType: "application/json",
			Text:     string(data),
		},
	}, nil
}

// handleDetailResource serves alias://{name} template reads.
func (s *Server) handleDetailResource(_ context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	name := strings.TrimPrefix(request.Params.URI, "alias://")
	alias, err := s.rt.GetAlias(name)
	if err != nil {
		return nil, err
	}

	data, err := json.MarshalIndent(toPayload(alias), "", "  ")
	if err != nil {
		return nil, errors.Wrap(err, "marshal alias resource")
	}
	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      request.Params.URI,
			MIMEType: "application/json",
			Text:     string(data),
		},
	}, nil
}
