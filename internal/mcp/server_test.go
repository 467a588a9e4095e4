package mcp_test

import (
	"context"
	"encoding/json"
	"strings"
	"sync"
	"testing"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"

	enigmamcp "enigma/internal/mcp"
)

func connectInMemory(t *testing.T, ctx context.Context, srv *enigmamcp.Server) *sdkmcp.ClientSession {
	t.Helper()
	t1, t2 := sdkmcp.NewInMemoryTransports()
	if _, err := srv.MCPServer.Connect(ctx, t1, nil); err != nil {
		t.Fatalf("server.Connect: %v", err)
	}
	client := sdkmcp.NewClient(&sdkmcp.Implementation{Name: "test-client", Version: "v0.0.1"}, nil)
	session, err := client.Connect(ctx, t2, nil)
	if err != nil {
		t.Fatalf("client.Connect: %v", err)
	}
	t.Cleanup(func() { session.Close() })
	return session
}

func callTool(t *testing.T, ctx context.Context, session *sdkmcp.ClientSession, name string, args map[string]any) map[string]any {
	t.Helper()
	res, err := session.CallTool(ctx, &sdkmcp.CallToolParams{Name: name, Arguments: args})
	if err != nil {
		t.Fatalf("CallTool(%s): %v", name, err)
	}
	if res.IsError {
		for _, c := range res.Content {
			if tc, ok := c.(*sdkmcp.TextContent); ok {
				t.Fatalf("CallTool(%s) returned error: %s", name, tc.Text)
			}
		}
		t.Fatalf("CallTool(%s) returned error", name)
	}
	result := make(map[string]any)
	for _, c := range res.Content {
		if tc, ok := c.(*sdkmcp.TextContent); ok {
			if err := json.Unmarshal([]byte(tc.Text), &result); err != nil {
				t.Fatalf("unmarshal tool result: %v (text: %s)", err, tc.Text)
			}
			return result
		}
	}
	t.Fatalf("no text content in tool result")
	return nil
}

func callToolExpectError(t *testing.T, ctx context.Context, session *sdkmcp.ClientSession, name string, args map[string]any) string {
	t.Helper()
	res, err := session.CallTool(ctx, &sdkmcp.CallToolParams{Name: name, Arguments: args})
	if err != nil {
		return err.Error()
	}
	if res.IsError {
		for _, c := range res.Content {
			if tc, ok := c.(*sdkmcp.TextContent); ok {
				return tc.Text
			}
		}
		return "unknown error"
	}
	t.Fatal("expected error but got success")
	return ""
}

func manualArgs() map[string]any {
	return map[string]any{
		"plugboard": []any{"AM", "FI", "NV", "PS", "TU", "WZ"},
		"reflector": "A",
		"rotors": []any{
			map[string]any{"type": "II", "position": "A", "offset": "X"},
			map[string]any{"type": "I", "position": "B", "offset": "M"},
			map[string]any{"type": "III", "position": "L", "offset": "V"},
		},
	}
}

func configure(t *testing.T, ctx context.Context, session *sdkmcp.ClientSession) string {
	t.Helper()
	out := callTool(t, ctx, session, "configure_machine", manualArgs())
	id, _ := out["session_id"].(string)
	if id == "" {
		t.Fatalf("configure_machine returned no session_id: %v", out)
	}
	return id
}

func TestServer_ToolDiscovery(t *testing.T) {
	ctx := context.Background()
	session := connectInMemory(t, ctx, enigmamcp.NewServer("test"))

	tools, err := session.ListTools(ctx, nil)
	if err != nil {
		t.Fatalf("ListTools: %v", err)
	}
	got := make(map[string]bool)
	for _, tool := range tools.Tools {
		got[tool.Name] = true
	}
	for _, name := range []string{"configure_machine", "cypher", "machine_state", "list_catalog", "close_session"} {
		if !got[name] {
			t.Errorf("tool %q not registered", name)
		}
	}
}

func TestServer_CypherKeepsRotorStateAcrossCalls(t *testing.T) {
	ctx := context.Background()
	srv := enigmamcp.NewServer("test")
	session := connectInMemory(t, ctx, srv)

	id := configure(t, ctx, session)
	if id != "em-1" {
		t.Errorf("first session id: got %q, want em-1", id)
	}

	first := callTool(t, ctx, session, "cypher", map[string]any{"session_id": id, "text": "GCDSE"})
	second := callTool(t, ctx, session, "cypher", map[string]any{"session_id": id, "text": "AHUGW"})
	if first["output"] != "FEIND" || second["output"] != "LIQEI" {
		t.Errorf("got %v then %v, want FEIND then LIQEI", first["output"], second["output"])
	}
	if second["positions"] != "ABV" {
		t.Errorf("positions: got %v, want ABV", second["positions"])
	}

	state := callTool(t, ctx, session, "machine_state", map[string]any{"session_id": id})
	if state["positions"] != "ABV" || state["reflector"] != "A" {
		t.Errorf("state: %v", state)
	}
	if state["letters"] != float64(10) || state["messages"] != float64(2) {
		t.Errorf("stats: messages=%v letters=%v", state["messages"], state["letters"])
	}
	rotors, _ := state["rotors"].([]any)
	if len(rotors) != 3 {
		t.Fatalf("want 3 rotors, got %v", state["rotors"])
	}
	right, _ := rotors[2].(map[string]any)
	if right["type"] != "III" || right["step_count"] != float64(10) {
		t.Errorf("right rotor: %v", right)
	}
}

func TestServer_ReconfigureResetsPositions(t *testing.T) {
	ctx := context.Background()
	session := connectInMemory(t, ctx, enigmamcp.NewServer("test"))

	id := configure(t, ctx, session)
	callTool(t, ctx, session, "cypher", map[string]any{"session_id": id, "text": "GCDSE"})

	args := manualArgs()
	args["session_id"] = id
	out := callTool(t, ctx, session, "configure_machine", args)
	if out["session_id"] != id || out["positions"] != "ABL" {
		t.Errorf("reconfigure: %v", out)
	}
	again := callTool(t, ctx, session, "cypher", map[string]any{"session_id": id, "text": "GCDSE"})
	if again["output"] != "FEIND" {
		t.Errorf("after reconfigure: got %v", again["output"])
	}
}

func TestServer_ConfigureErrors(t *testing.T) {
	ctx := context.Background()
	srv := enigmamcp.NewServer("test")
	session := connectInMemory(t, ctx, srv)

	tests := []struct {
		name string
		edit func(map[string]any)
		want string
	}{
		{"no plugboard", func(a map[string]any) { delete(a, "plugboard") }, "plugboard settings are missing"},
		{"bad reflector", func(a map[string]any) { a["reflector"] = "Z" }, "invalid reflector type: Z"},
		{"two rotors", func(a map[string]any) { a["rotors"] = a["rotors"].([]any)[:2] }, "want 3 rotors"},
		{"duplicate letter", func(a map[string]any) { a["plugboard"] = []any{"AB", "BC"} }, "duplicate letters"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			args := manualArgs()
			tt.edit(args)
			msg := callToolExpectError(t, ctx, session, "configure_machine", args)
			if !strings.Contains(msg, tt.want) {
				t.Errorf("got %q, want it to contain %q", msg, tt.want)
			}
		})
	}
	if ids := srv.SessionIDs(); len(ids) != 0 {
		t.Errorf("failed configurations must not open sessions: %v", ids)
	}
}

func TestServer_CypherErrors(t *testing.T) {
	ctx := context.Background()
	session := connectInMemory(t, ctx, enigmamcp.NewServer("test"))

	msg := callToolExpectError(t, ctx, session, "cypher", map[string]any{"session_id": "em-42", "text": "A"})
	if !strings.Contains(msg, "unknown session") {
		t.Errorf("got %q", msg)
	}
	msg = callToolExpectError(t, ctx, session, "cypher", map[string]any{"session_id": "", "text": "A"})
	if !strings.Contains(msg, "session_id is required") {
		t.Errorf("got %q", msg)
	}

	id := configure(t, ctx, session)
	msg = callToolExpectError(t, ctx, session, "cypher", map[string]any{"session_id": id, "text": "AB1C"})
	if !strings.Contains(msg, "found in position 2") {
		t.Errorf("got %q", msg)
	}
	state := callTool(t, ctx, session, "machine_state", map[string]any{"session_id": id})
	if state["positions"] != "ABL" {
		t.Errorf("invalid input must not move rotors, positions %v", state["positions"])
	}
}

func TestServer_ListCatalog(t *testing.T) {
	ctx := context.Background()
	session := connectInMemory(t, ctx, enigmamcp.NewServer("test"))

	out := callTool(t, ctx, session, "list_catalog", map[string]any{})
	rotors, _ := out["rotors"].([]any)
	reflectors, _ := out["reflectors"].([]any)
	if len(rotors) != 8 || len(reflectors) != 5 {
		t.Fatalf("got %d rotors and %d reflectors", len(rotors), len(reflectors))
	}
	first, _ := rotors[0].(map[string]any)
	if first["type"] != "I" || first["wiring"] != "EKMFLGDQVZNTOWYHXUSPAIBRCJ" {
		t.Errorf("first rotor: %v", first)
	}
}

func TestServer_CloseSession(t *testing.T) {
	ctx := context.Background()
	srv := enigmamcp.NewServer("test")
	session := connectInMemory(t, ctx, srv)

	id := configure(t, ctx, session)
	out := callTool(t, ctx, session, "close_session", map[string]any{"session_id": id})
	if out["closed"] != true {
		t.Errorf("close_session: %v", out)
	}
	msg := callToolExpectError(t, ctx, session, "machine_state", map[string]any{"session_id": id})
	if !strings.Contains(msg, "unknown session") {
		t.Errorf("got %q", msg)
	}
	msg = callToolExpectError(t, ctx, session, "close_session", map[string]any{"session_id": id})
	if !strings.Contains(msg, "unknown session") {
		t.Errorf("double close: got %q", msg)
	}
}

func TestServer_SessionsAreIndependent(t *testing.T) {
	ctx := context.Background()
	srv := enigmamcp.NewServer("test")
	session := connectInMemory(t, ctx, srv)

	a := configure(t, ctx, session)
	b := configure(t, ctx, session)
	if a == b {
		t.Fatalf("sessions share id %q", a)
	}

	var wg sync.WaitGroup
	outputs := make([]string, 2)
	for i, id := range []string{a, b} {
		wg.Add(1)
		go func() {
			defer wg.Done()
			res, err := session.CallTool(ctx, &sdkmcp.CallToolParams{
				Name:      "cypher",
				Arguments: map[string]any{"session_id": id, "text": "GCDSE AHUGW"},
			})
			if err != nil || res.IsError {
				return
			}
			for _, c := range res.Content {
				if tc, ok := c.(*sdkmcp.TextContent); ok {
					var out map[string]any
					if json.Unmarshal([]byte(tc.Text), &out) == nil {
						outputs[i], _ = out["output"].(string)
					}
				}
			}
		}()
	}
	wg.Wait()
	for i, got := range outputs {
		if got != "FEIND LIQEI" {
			t.Errorf("session %d: got %q", i, got)
		}
	}

	srv.Shutdown()
	if ids := srv.SessionIDs(); len(ids) != 0 {
		t.Errorf("Shutdown left sessions: %v", ids)
	}
}
