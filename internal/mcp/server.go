// Package mcp exposes the test plan pipeline as MCP tools.
package mcp

import (
	"context"
	"fmt"
	"strings"

	"github.com/metalagman/testplan/internal/testplan"
	gomcp "github.com/modelcontextprotocol/go-sdk/mcp"
)

// Server wraps a testplan.Agent.
type Server struct {
	server   *gomcp.Server
	agent    *testplan.Agent
	defaults testplan.Options
}

// NewServer creates an MCP server. defaults apply when a call omits persist or output_dir.
func NewServer(agent *testplan.Agent, defaults testplan.Options, version string) *Server {
	if version == "" {
		version = "dev"
	}
	s := &Server{agent: agent, defaults: defaults}
	s.server = gomcp.NewServer(&gomcp.Implementation{Name: "testplan", Version: version}, nil)
	s.registerTools()
	return s
}

// Run serves over stdio until the client disconnects or ctx is cancelled.
func (s *Server) Run(ctx context.Context) error {
	return s.server.Run(ctx, &gomcp.StdioTransport{})
}

// MCPServer returns the underlying server.
func (s *Server) MCPServer() *gomcp.Server {
	return s.server
}

type generateInput struct {
	TicketID  string `json:"ticket_id" jsonschema:"required,the Jira ticket key (e.g. PROJ-123)"`
	Persist   *bool  `json:"persist,omitempty" jsonschema:"write testplan_<ticket_id>.md; defaults to the server setting"`
	OutputDir string `json:"output_dir,omitempty" jsonschema:"directory for the plan file; defaults to the server setting"`
}

type generateOutput struct {
	TicketID string `json:"ticket_id"`
	Plan     string `json:"plan"`
	Path     string `json:"path,omitempty"`
	Failed   bool   `json:"failed"`
}

type getIssueInput struct {
	TicketID string `json:"ticket_id" jsonschema:"required,the Jira ticket key (e.g. PROJ-123)"`
}

type getIssueOutput struct {
	TicketID string `json:"ticket_id"`
	Issue    string `json:"issue"`
}

func (s *Server) registerTools() {
	gomcp.AddTool(s.server, &gomcp.Tool{
		Name:        "generate_test_plan",
		Description: "Fetch a Jira ticket and generate a Markdown test plan with functional tests, integration tests and edge cases.",
	}, s.handleGenerate)

	gomcp.AddTool(s.server, &gomcp.Tool{
		Name:        "get_issue",
		Description: "Fetch a Jira ticket and return its raw JSON.",
	}, s.handleGetIssue)
}

func (s *Server) handleGenerate(ctx context.Context, _ *gomcp.CallToolRequest, input generateInput) (*gomcp.CallToolResult, generateOutput, error) {
	id := strings.TrimSpace(input.TicketID)
	if id == "" {
		return errorResult("ticket_id is required"), generateOutput{}, nil
	}

	opts := s.defaults
	if input.Persist != nil {
		opts.Persist = *input.Persist
	}
	if input.OutputDir != "" {
		opts.OutputDir = input.OutputDir
	}

	res := s.agent.Run(ctx, id, opts)
	if res == nil {
		return errorResult(fmt.Sprintf("could not fetch jira ticket %s", id)), generateOutput{}, nil
	}
	return nil, generateOutput{
		TicketID: id,
		Plan:     res.Plan,
		Path:     res.Path,
		Failed:   res.PlanErr != nil,
	}, nil
}

func (s *Server) handleGetIssue(ctx context.Context, _ *gomcp.CallToolRequest, input getIssueInput) (*gomcp.CallToolResult, getIssueOutput, error) {
	id := strings.TrimSpace(input.TicketID)
	if id == "" {
		return errorResult("ticket_id is required"), getIssueOutput{}, nil
	}
	issue, err := s.agent.Fetch(ctx, id)
	if err != nil {
		return errorResult(fmt.Sprintf("fetching jira ticket %s: %s", id, err)), getIssueOutput{}, nil
	}
	body, err := testplan.IssueJSON(issue)
	if err != nil {
		return errorResult(err.Error()), getIssueOutput{}, nil
	}
	return nil, getIssueOutput{TicketID: id, Issue: body}, nil
}

func errorResult(msg string) *gomcp.CallToolResult {
	return &gomcp.CallToolResult{
		Content: []gomcp.Content{&gomcp.TextContent{Text: msg}},
		IsError: true,
	}
}
