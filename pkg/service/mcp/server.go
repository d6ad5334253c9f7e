package mcp

import (
	"context"
	"net/http"

	"github.com/dedewkisaw/Embroidered-Personal-Assistant-Web-App-9383/pkg/model"
	"github.com/dedewkisaw/Embroidered-Personal-Assistant-Web-App-9383/pkg/usecase/assistant"
	"github.com/dedewkisaw/Embroidered-Personal-Assistant-Web-App-9383/pkg/usecase/chat"
	"github.com/dedewkisaw/Embroidered-Personal-Assistant-Web-App-9383/pkg/utils/logging"
	"github.com/google/jsonschema-go/jsonschema"
	"github.com/m-mizutani/goerr/v2"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

const (
	serverName    = "assistant"
	serverVersion = "0.1.0"
)

// Server exposes the assistant engine as MCP tools
type Server struct {
	engine *assistant.Engine
	source chat.SnapshotSource
	server *mcp.Server
}

type askParams struct {
	Text string `json:"text"`
}

// AskResult is the structured output of the ask tool
type AskResult struct {
	Reply  string       `json:"reply"`
	Intent model.Intent `json:"intent"`
}

var askSchema = &jsonschema.Schema{
	Type: "object",
	Properties: map[string]*jsonschema.Schema{
		"text": {
			Type:        "string",
			Description: "Message to the assistant, e.g. \"what are my pending tasks?\"",
		},
	},
	Required: []string{"text"},
}

var suggestSchema = &jsonschema.Schema{
	Type:       "object",
	Properties: map[string]*jsonschema.Schema{},
}

// NewServer creates an MCP server. source may be nil, then every reply sees an empty snapshot.
func NewServer(engine *assistant.Engine, source chat.SnapshotSource) *Server {
	if engine == nil {
		engine = assistant.New()
	}

	s := &Server{
		engine: engine,
		source: source,
		server: mcp.NewServer(&mcp.Implementation{
			Name:    serverName,
			Version: serverVersion,
		}, nil),
	}

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "ask",
		Description: "Ask the productivity assistant about tasks, notes, calendar or weather. Returns the reply and the detected intent.",
		InputSchema: askSchema,
	}, s.ask)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "suggest",
		Description: "Suggest which pending task to focus on next",
		InputSchema: suggestSchema,
	}, s.suggest)

	return s
}

func (s *Server) snapshot(ctx context.Context) model.Snapshot {
	if s.source == nil {
		return model.Snapshot{}
	}

	snapshot, err := s.source.Load(ctx)
	if err != nil {
		logging.From(ctx).Warn("failed to load snapshot", "error", err)
	}
	return snapshot
}

func (s *Server) ask(ctx context.Context, req *mcp.CallToolRequest, params *askParams) (*mcp.CallToolResult, any, error) {
	if params == nil || params.Text == "" {
		return nil, nil, goerr.New("text is required")
	}

	reply, intent := s.engine.RespondWithIntent(params.Text, s.snapshot(ctx))
	logging.From(ctx).Debug("ask handled", "intent", intent)

	return &mcp.CallToolResult{
		Content: []mcp.Content{
			&mcp.TextContent{Text: reply},
		},
		StructuredContent: AskResult{Reply: reply, Intent: intent},
	}, nil, nil
}

func (s *Server) suggest(ctx context.Context, req *mcp.CallToolRequest, params *struct{}) (*mcp.CallToolResult, any, error) {
	reply := s.engine.Suggest(s.snapshot(ctx).Tasks)

	return &mcp.CallToolResult{
		Content: []mcp.Content{
			&mcp.TextContent{Text: reply},
		},
	}, nil, nil
}

// Run serves MCP over stdin/stdout until the client disconnects or ctx is canceled
func (s *Server) Run(ctx context.Context) error {
	if err := s.server.Run(ctx, &mcp.StdioTransport{}); err != nil {
		return goerr.Wrap(err, "mcp server failed")
	}
	return nil
}

// Handler serves MCP over streamable HTTP
func (s *Server) Handler() http.Handler {
	return mcp.NewStreamableHTTPHandler(func(r *http.Request) *mcp.Server {
		return s.server
	}, nil)
}
