// Package mcp serves enigma machines over the Model Context Protocol.
// Each session holds its own machine; rotor state persists across cypher
// calls until the session is closed.
package mcp

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"

	"enigma/internal/logging"
	"enigma/pkg/enigma"
)

// Server wraps the MCP SDK server and manages machine sessions.
type Server struct {
	MCPServer *sdkmcp.Server

	mu       sync.Mutex
	sessions map[string]*Session
	nextID   int
	trace    bool
	log      *slog.Logger
}

// Option configures a Server.
type Option func(*Server)

// WithTrace sends every machine's substitution log to the application logger.
func WithTrace() Option {
	return func(s *Server) { s.trace = true }
}

// NewServer creates an enigma MCP server with its tools registered.
func NewServer(version string, opts ...Option) *Server {
	s := &Server{
		MCPServer: sdkmcp.NewServer(&sdkmcp.Implementation{Name: "enigma", Version: version}, nil),
		sessions:  make(map[string]*Session),
		log:       logging.New("enigma-mcp"),
	}
	for _, o := range opts {
		o(s)
	}
	s.registerTools()
	return s
}

// Run serves MCP over stdio until ctx is done or the client disconnects.
func (s *Server) Run(ctx context.Context) error {
	return s.MCPServer.Run(ctx, &sdkmcp.StdioTransport{})
}

func (s *Server) registerTools() {
	sdkmcp.AddTool(s.MCPServer, &sdkmcp.Tool{
		Name:        "configure_machine",
		Description: "Configure plugboard, rotors and reflector. Opens a new session unless session_id names an existing one.",
	}, s.handleConfigureMachine)

	sdkmcp.AddTool(s.MCPServer, &sdkmcp.Tool{
		Name:        "cypher",
		Description: "Encrypt or decrypt text (letters and spaces) with the session's machine. Rotor positions carry over between calls.",
	}, s.handleCypher)

	sdkmcp.AddTool(s.MCPServer, &sdkmcp.Tool{
		Name:        "machine_state",
		Description: "Show the session's plugboard, reflector and rotor positions, offsets and step counts.",
	}, s.handleMachineState)

	sdkmcp.AddTool(s.MCPServer, &sdkmcp.Tool{
		Name:        "list_catalog",
		Description: "List the known rotor and reflector types.",
	}, s.handleListCatalog)

	sdkmcp.AddTool(s.MCPServer, &sdkmcp.Tool{
		Name:        "close_session",
		Description: "Discard a session and its machine.",
	}, s.handleCloseSession)
}

// --- Tool input/output types ---

type rotorInput struct {
	Type     string `json:"type,omitempty" jsonschema:"rotor type, e.g. I..VIII"`
	Position string `json:"position,omitempty" jsonschema:"window letter A..Z or 1..26"`
	Offset   string `json:"offset,omitempty" jsonschema:"ring setting A..Z or 1..26"`
}

type configureMachineInput struct {
	SessionID string       `json:"session_id,omitempty" jsonschema:"existing session to reconfigure; empty opens a new one"`
	Plugboard []string     `json:"plugboard,omitempty" jsonschema:"letter pairs, e.g. [\"AM\",\"FI\"]; pass [] for no cables"`
	Reflector string       `json:"reflector,omitempty" jsonschema:"reflector type: A, B, C, B Thin or C Thin"`
	Rotors    []rotorInput `json:"rotors,omitempty" jsonschema:"exactly three rotors, left to right"`
}

type configureMachineOutput struct {
	SessionID string `json:"session_id"`
	Positions string `json:"positions"`
}

type cypherInput struct {
	SessionID string `json:"session_id" jsonschema:"session ID from configure_machine"`
	Text      string `json:"text" jsonschema:"letters and spaces to cypher"`
}

type cypherOutput struct {
	Output    string `json:"output"`
	Positions string `json:"positions"`
}

type sessionInput struct {
	SessionID string `json:"session_id" jsonschema:"session ID from configure_machine"`
}

type machineStateOutput struct {
	SessionID string              `json:"session_id"`
	Positions string              `json:"positions"`
	Plugboard []string            `json:"plugboard"`
	Reflector string              `json:"reflector"`
	Rotors    []enigma.RotorState `json:"rotors"`
	Messages  int                 `json:"messages"`
	Letters   int                 `json:"letters"`
}

type listCatalogInput struct{}

type listCatalogOutput struct {
	Rotors     []enigma.RotorSpec     `json:"rotors"`
	Reflectors []enigma.ReflectorSpec `json:"reflectors"`
}

type closeSessionOutput struct {
	Closed bool `json:"closed"`
}

// --- Tool handlers ---

func (s *Server) handleConfigureMachine(_ context.Context, _ *sdkmcp.CallToolRequest, input configureMachineInput) (*sdkmcp.CallToolResult, configureMachineOutput, error) {
	settings := enigma.Settings{
		Plugboard: input.Plugboard,
		Reflector: input.Reflector,
	}
	if input.Rotors != nil {
		settings.Rotors = make([]enigma.RotorSetting, len(input.Rotors))
		for i, r := range input.Rotors {
			settings.Rotors[i] = enigma.RotorSetting{Type: r.Type, Position: r.Position, Offset: r.Offset}
		}
	}

	sess, created, err := s.sessionFor(input.SessionID)
	if err != nil {
		return nil, configureMachineOutput{}, err
	}
	positions, err := sess.Configure(settings)
	if err != nil {
		return nil, configureMachineOutput{}, fmt.Errorf("configure_machine: %w", err)
	}
	if created {
		s.mu.Lock()
		s.sessions[sess.ID] = sess
		s.mu.Unlock()
		s.log.Info("session opened", "id", sess.ID, "positions", positions)
	}
	return nil, configureMachineOutput{SessionID: sess.ID, Positions: positions}, nil
}

func (s *Server) handleCypher(_ context.Context, _ *sdkmcp.CallToolRequest, input cypherInput) (*sdkmcp.CallToolResult, cypherOutput, error) {
	sess, err := s.getSession(input.SessionID)
	if err != nil {
		return nil, cypherOutput{}, err
	}
	out, positions, err := sess.Cypher(input.Text)
	if err != nil {
		return nil, cypherOutput{}, fmt.Errorf("cypher: %w", err)
	}
	return nil, cypherOutput{Output: out, Positions: positions}, nil
}

func (s *Server) handleMachineState(_ context.Context, _ *sdkmcp.CallToolRequest, input sessionInput) (*sdkmcp.CallToolResult, machineStateOutput, error) {
	sess, err := s.getSession(input.SessionID)
	if err != nil {
		return nil, machineStateOutput{}, err
	}
	st, positions := sess.State()
	messages, letters := sess.Stats()

	out := machineStateOutput{
		SessionID: sess.ID,
		Positions: positions,
		Plugboard: st.Plugboard,
		Reflector: st.Reflector,
		Rotors:    st.Rotors,
		Messages:  messages,
		Letters:   letters,
	}
	if out.Plugboard == nil {
		out.Plugboard = []string{}
	}
	if out.Rotors == nil {
		out.Rotors = []enigma.RotorState{}
	}
	return nil, out, nil
}

func (s *Server) handleListCatalog(_ context.Context, _ *sdkmcp.CallToolRequest, _ listCatalogInput) (*sdkmcp.CallToolResult, listCatalogOutput, error) {
	return nil, listCatalogOutput{
		Rotors:     enigma.RotorTypes(),
		Reflectors: enigma.ReflectorTypes(),
	}, nil
}

func (s *Server) handleCloseSession(_ context.Context, _ *sdkmcp.CallToolRequest, input sessionInput) (*sdkmcp.CallToolResult, closeSessionOutput, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.sessions[input.SessionID]; !ok {
		return nil, closeSessionOutput{}, fmt.Errorf("unknown session %q", input.SessionID)
	}
	delete(s.sessions, input.SessionID)
	s.log.Info("session closed", "id", input.SessionID)
	return nil, closeSessionOutput{Closed: true}, nil
}

// Shutdown drops every session.
func (s *Server) Shutdown() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if n := len(s.sessions); n > 0 {
		s.log.Info("dropping sessions", "count", n)
	}
	clear(s.sessions)
}

// SessionIDs returns the IDs of the open sessions, in no particular order.
func (s *Server) SessionIDs() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	ids := make([]string, 0, len(s.sessions))
	for id := range s.sessions {
		ids = append(ids, id)
	}
	return ids
}

// sessionFor returns the named session, or a new unregistered one when id
// is empty. created reports the latter.
func (s *Server) sessionFor(id string) (sess *Session, created bool, err error) {
	if id != "" {
		sess, err = s.getSession(id)
		return sess, false, err
	}

	s.mu.Lock()
	s.nextID++
	id = fmt.Sprintf("em-%d", s.nextID)
	s.mu.Unlock()

	var log enigma.Logger = logging.Discard()
	if s.trace {
		log = logging.New("machine").With(slog.String("session", id))
	}
	return newSession(id, log), true, nil
}

func (s *Server) getSession(id string) (*Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if id == "" {
		return nil, fmt.Errorf("session_id is required (call configure_machine first)")
	}
	sess, ok := s.sessions[id]
	if !ok {
		return nil, fmt.Errorf("unknown session %q", id)
	}
	return sess, nil
}
