package agent

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/roomiebot/roomie/internal/house"
	"github.com/roomiebot/roomie/internal/schema"
	"github.com/roomiebot/roomie/internal/session"
	"github.com/roomiebot/roomie/internal/tools"
)

// scriptedProvider returns canned responses in order and records every request.
type scriptedProvider struct {
	responses []*schema.GenerateResponse
	errs      []error
	requests  []schema.GenerateRequest
}

func (p *scriptedProvider) Generate(_ context.Context, req schema.GenerateRequest) (*schema.GenerateResponse, error) {
	p.requests = append(p.requests, req)
	i := len(p.requests) - 1
	var err error
	if i < len(p.errs) {
		err = p.errs[i]
	}
	if err != nil {
		return nil, err
	}
	if i < len(p.responses) {
		return p.responses[i], nil
	}
	return &schema.GenerateResponse{}, nil
}

// recordingGateway captures delivered replies.
type recordingGateway struct {
	sent []string
}

func (g *recordingGateway) Send(_ context.Context, text string) bool {
	g.sent = append(g.sent, text)
	return true
}

func textResponse(text string) *schema.GenerateResponse {
	return &schema.GenerateResponse{
		Candidates: []schema.Candidate{{Content: schema.NewModelText(text)}},
	}
}

func toolCallResponse(name string, args map[string]any) *schema.GenerateResponse {
	return &schema.GenerateResponse{
		Candidates: []schema.Candidate{{
			Content: schema.NewModelFunctionCall(schema.FunctionCall{Name: name, Args: args}),
		}},
	}
}

type fixture struct {
	provider *scriptedProvider
	gateway  *recordingGateway
	store    *house.Store
	sessions *session.Manager
	orch     *Orchestrator
}

type noopScheduler struct{}

func (noopScheduler) Schedule(time.Time, string, string) {}

func newFixture(t *testing.T, provider *scriptedProvider) *fixture {
	t.Helper()
	data := &house.Data{Members: []string{"Alice", "Bob"}, CleaningTasks: []string{"Kitchen"}}
	store := house.NewStore(data)
	sessions := session.NewManager()
	registry := tools.NewRegistry(store, noopScheduler{})
	gateway := &recordingGateway{}
	orch := NewOrchestrator(provider, sessions, registry, NewPromptBuilder(data), gateway, 5*time.Second)
	return &fixture{provider: provider, gateway: gateway, store: store, sessions: sessions, orch: orch}
}

func (f *fixture) handle(text string) {
	f.orch.HandleMessage(context.Background(), "Alice", text, time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC))
}

func TestTextBranchDeliversVerbatim(t *testing.T) {
	f := newFixture(t, &scriptedProvider{responses: []*schema.GenerateResponse{textResponse("Hi Alice!")}})
	f.handle("hello @roomie")

	if len(f.gateway.sent) != 1 || f.gateway.sent[0] != "Hi Alice!" {
		t.Fatalf("expected one verbatim delivery, got %v", f.gateway.sent)
	}
	// Transcript holds the user message and the model reply.
	if got := f.sessions.Get().Len(); got != 2 {
		t.Errorf("expected 2 transcript contents, got %d", got)
	}
}

func TestUserMessageCarriesTimestampAndSender(t *testing.T) {
	p := &scriptedProvider{responses: []*schema.GenerateResponse{textResponse("ok")}}
	f := newFixture(t, p)
	f.handle("what's up")

	hist := p.requests[0].Contents
	if len(hist) != 1 {
		t.Fatalf("expected 1 content, got %d", len(hist))
	}
	text := hist[0].Parts[0].Text
	if !strings.Contains(text, "Alice:") || !strings.Contains(text, "what's up") || !strings.HasPrefix(text, "[") {
		t.Errorf("composite user message malformed: %q", text)
	}
}

func TestSystemInstructionAndToolsAttachedEveryCall(t *testing.T) {
	p := &scriptedProvider{responses: []*schema.GenerateResponse{
		toolCallResponse("get_shopping_list", nil),
		textResponse("The list is empty."),
	}}
	f := newFixture(t, p)
	f.handle("@roomie what do we need?")

	if len(p.requests) != 2 {
		t.Fatalf("expected 2 model calls, got %d", len(p.requests))
	}
	for i, req := range p.requests {
		if req.SystemInstruction == "" {
			t.Errorf("call %d missing system instruction", i)
		}
		if len(req.Tools) != 8 {
			t.Errorf("call %d: expected full 8-tool catalog, got %d", i, len(req.Tools))
		}
	}
}

func TestZeroCandidatesDeliversApologyOnce(t *testing.T) {
	f := newFixture(t, &scriptedProvider{responses: []*schema.GenerateResponse{{}}})
	f.handle("@roomie hello?")

	if len(f.gateway.sent) != 1 {
		t.Fatalf("expected exactly one delivery, got %d", len(f.gateway.sent))
	}
	if f.gateway.sent[0] != apologyReply {
		t.Errorf("expected apology, got %q", f.gateway.sent[0])
	}
}

func TestProviderErrorDeliversApology(t *testing.T) {
	f := newFixture(t, &scriptedProvider{errs: []error{errors.New("connection refused")}})
	f.handle("hi")

	if len(f.gateway.sent) != 1 || f.gateway.sent[0] != apologyReply {
		t.Fatalf("expected apology delivery, got %v", f.gateway.sent)
	}
}

func TestToolCallEndToEnd(t *testing.T) {
	p := &scriptedProvider{responses: []*schema.GenerateResponse{
		toolCallResponse("add_to_shopping_list", map[string]any{"items": []any{"eggs"}}),
		textResponse("Added eggs to the list!"),
	}}
	f := newFixture(t, p)
	f.handle("@roomie add eggs please")

	entries := f.store.ShoppingEntries()
	if len(entries) != 1 || entries[0].Item != "eggs" {
		t.Fatalf("dispatcher did not append entry: %+v", entries)
	}
	if len(f.gateway.sent) != 1 || f.gateway.sent[0] != "Added eggs to the list!" {
		t.Fatalf("expected narrated delivery, got %v", f.gateway.sent)
	}

	// The follow-up request must contain the function response for the model
	// to narrate.
	second := p.requests[1].Contents
	last := second[len(second)-1]
	if last.Parts[0].FunctionResponse == nil {
		t.Errorf("follow-up request missing function response, got %+v", last)
	}
	if got, _ := last.Parts[0].FunctionResponse.Response["result"].(string); !strings.Contains(got, "eggs") {
		t.Errorf("function response missing tool result: %q", got)
	}
}

func TestToolCallFollowUpEmptyFallsBackToRawResult(t *testing.T) {
	p := &scriptedProvider{responses: []*schema.GenerateResponse{
		toolCallResponse("add_to_shopping_list", map[string]any{"items": []any{"eggs"}}),
		{}, // zero candidates on the follow-up
	}}
	f := newFixture(t, p)
	f.handle("@roomie add eggs")

	if len(f.gateway.sent) != 1 {
		t.Fatalf("expected one delivery, got %d", len(f.gateway.sent))
	}
	if !strings.Contains(f.gateway.sent[0], "Added to the shopping list: eggs") {
		t.Errorf("expected raw tool confirmation, got %q", f.gateway.sent[0])
	}
}

func TestToolCallFollowUpErrorFallsBackToRawResult(t *testing.T) {
	p := &scriptedProvider{
		responses: []*schema.GenerateResponse{
			toolCallResponse("get_shopping_list", nil),
			nil,
		},
		errs: []error{nil, errors.New("timeout")},
	}
	f := newFixture(t, p)
	f.handle("@roomie list?")

	if len(f.gateway.sent) != 1 || f.gateway.sent[0] != "The shopping list is empty." {
		t.Fatalf("expected raw tool result, got %v", f.gateway.sent)
	}
}

func TestUnknownToolResultIsFedBack(t *testing.T) {
	p := &scriptedProvider{responses: []*schema.GenerateResponse{
		toolCallResponse("order_pizza", nil),
		textResponse("I can't do that yet."),
	}}
	f := newFixture(t, p)
	f.handle("@roomie order pizza")

	second := p.requests[1].Contents
	last := second[len(second)-1]
	got, _ := last.Parts[0].FunctionResponse.Response["result"].(string)
	if got != "Unknown function: order_pizza" {
		t.Errorf("expected unknown-function result fed back, got %q", got)
	}
}

func TestNeitherBranchDeliversFixedFallback(t *testing.T) {
	resp := &schema.GenerateResponse{
		Candidates: []schema.Candidate{{Content: schema.Content{Role: schema.RoleModel}}},
	}
	f := newFixture(t, &scriptedProvider{responses: []*schema.GenerateResponse{resp}})
	f.handle("hm")

	if len(f.gateway.sent) != 1 || f.gateway.sent[0] != noResponseReply {
		t.Fatalf("expected fixed fallback, got %v", f.gateway.sent)
	}
}

func TestWhitespaceReplySubstituted(t *testing.T) {
	f := newFixture(t, &scriptedProvider{responses: []*schema.GenerateResponse{textResponse("   ")}})
	f.handle("hi")

	if len(f.gateway.sent) != 1 || f.gateway.sent[0] != emptyReply {
		t.Fatalf("expected generic confirmation, got %v", f.gateway.sent)
	}
}

func TestSessionSharedAcrossTurns(t *testing.T) {
	p := &scriptedProvider{responses: []*schema.GenerateResponse{
		textResponse("first"),
		textResponse("second"),
	}}
	f := newFixture(t, p)
	f.handle("one")
	f.handle("two")

	// Second call sees the whole transcript: user, model, user.
	if got := len(p.requests[1].Contents); got != 3 {
		t.Errorf("expected 3 contents on second turn, got %d", got)
	}
}
