package mcp

import (
	"context"
	"fmt"

	"github.com/aretw0/pricewalk"
	"github.com/aretw0/pricewalk/pkg/domain"
	"github.com/aretw0/pricewalk/pkg/trace"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// DefaultMaxCells bounds the size of a table generated for an MCP client.
const DefaultMaxCells = 20_000

// Engine defines the interface required by the MCP server.
type Engine interface {
	Simulate(ctx context.Context, req domain.SimulationRequest) (*domain.Simulation, error)
	Roll(ctx context.Context, sides []int, rolls int, seed *uint64) (*domain.DiceRoll, error)
}

// SimulateArgs are the arguments of the simulate_prices tool.
type SimulateArgs struct {
	Process     string         `json:"process"`
	StartPrice  int            `json:"start_price"`
	TimeSteps   int            `json:"time_steps"`
	NumTraces   int            `json:"num_traces"`
	Params      map[string]any `json:"params,omitempty"`
	Seed        *uint64        `json:"seed,omitempty"`
	SummaryOnly bool           `json:"summary_only,omitempty"`
}

// SimulateResponse is the structured result of simulate_prices.
type SimulateResponse struct {
	ID      string               `json:"id" jsonschema_description:"Identifier of the stored simulation"`
	Seed    uint64               `json:"seed" jsonschema_description:"Seed that reproduces this table"`
	Summary []domain.StepSummary `json:"summary" jsonschema_description:"Per-step mean, min and max"`
	Table   domain.Table         `json:"table,omitempty" jsonschema_description:"num_traces x (time_steps+1) prices"`
}

// RollArgs are the arguments of the roll_dice tool.
type RollArgs struct {
	Sides []int   `json:"sides"`
	Rolls int     `json:"rolls,omitempty"`
	Seed  *uint64 `json:"seed,omitempty"`
}

// Server wraps the Engine and exposes it as an MCP Server.
type Server struct {
	engine    Engine
	mcpServer *server.MCPServer
	maxCells  int
}

// NewServer creates a new MCP Server instance.
func NewServer(engine Engine) *Server {
	s := &Server{
		engine:    engine,
		mcpServer: server.NewMCPServer("pricewalk-mcp", pricewalk.Version, server.WithToolCapabilities(false)),
		maxCells:  DefaultMaxCells,
	}
	s.registerTools()
	return s
}

// ServeStdio starts the server on Stdin/Stdout.
func (s *Server) ServeStdio() error {
	return server.ServeStdio(s.mcpServer)
}

func (s *Server) registerTools() {
	simulateTool := mcp.NewTool("simulate_prices",
		mcp.WithDescription("Simulate independent price traces of a Markov price process (level, momentum or frequency)."),
		mcp.WithString("process", mcp.Required(), mcp.Enum("level", "momentum", "frequency"), mcp.Description("Process kind")),
		mcp.WithNumber("start_price", mcp.Description("Initial price of every trace")),
		mcp.WithNumber("time_steps", mcp.Required(), mcp.Min(0), mcp.Description("Transitions per trace")),
		mcp.WithNumber("num_traces", mcp.Required(), mcp.Min(1), mcp.Description("Number of independent traces")),
		mcp.WithObject("params", mcp.Description("Process parameters, e.g. {\"level\": 100, \"alpha\": 0.25}")),
		mcp.WithNumber("seed", mcp.Description("Seed for reproducible output")),
		mcp.WithBoolean("summary_only", mcp.Description("Omit the full table from the result and return only per-step statistics")),
		mcp.WithOutputSchema[SimulateResponse](),
	)
	s.mcpServer.AddTool(simulateTool, mcp.NewStructuredToolHandler(s.handleSimulate))

	rollTool := mcp.NewTool("roll_dice",
		mcp.WithDescription("Roll a set of dice and return the sum of each throw."),
		mcp.WithArray("sides", mcp.Required(), mcp.WithNumberItems(mcp.Min(1)), mcp.Description("Side count of each die, e.g. [15, 6]")),
		mcp.WithNumber("rolls", mcp.Min(1), mcp.Description("Number of throws (default 1)")),
		mcp.WithNumber("seed", mcp.Description("Seed for reproducible output")),
		mcp.WithOutputSchema[domain.DiceRoll](),
	)
	s.mcpServer.AddTool(rollTool, mcp.NewStructuredToolHandler(s.handleRoll))
}

func (s *Server) handleSimulate(ctx context.Context, request mcp.CallToolRequest, args SimulateArgs) (SimulateResponse, error) {
	// The engine builds and stores the full table even when only the summary is returned.
	if err := trace.CheckShape(args.TimeSteps, args.NumTraces, s.maxCells); err != nil {
		return SimulateResponse{}, err
	}

	sim, err := s.engine.Simulate(ctx, domain.SimulationRequest{
		Process:    domain.ProcessKind(args.Process),
		StartPrice: args.StartPrice,
		TimeSteps:  args.TimeSteps,
		NumTraces:  args.NumTraces,
		Params:     args.Params,
		Seed:       args.Seed,
	})
	if err != nil {
		return SimulateResponse{}, fmt.Errorf("simulate failed: %w", err)
	}

	resp := SimulateResponse{
		ID:      sim.ID,
		Seed:    sim.Seed,
		Summary: sim.Table.Summarize(),
	}
	if !args.SummaryOnly {
		resp.Table = sim.Table
	}
	return resp, nil
}

func (s *Server) handleRoll(ctx context.Context, request mcp.CallToolRequest, args RollArgs) (domain.DiceRoll, error) {
	rolls := args.Rolls
	if rolls == 0 {
		rolls = 1
	}
	roll, err := s.engine.Roll(ctx, args.Sides, rolls, args.Seed)
	if err != nil {
		return domain.DiceRoll{}, fmt.Errorf("roll failed: %w", err)
	}
	return *roll, nil
}
