package agent

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/roomiebot/roomie/internal/schema"
	"github.com/roomiebot/roomie/internal/session"
	"github.com/roomiebot/roomie/internal/tools"
)

// Fixed replies used when a turn cannot produce model text. The chat surface
// has no notion of a failed request, so every turn ends in a delivered
// message (or deliberate silence), never a visible crash.
const (
	apologyReply    = "Sorry, I'm having trouble thinking right now. Please try again in a moment."
	noResponseReply = "I processed your message but couldn't come up with a response."
	emptyReply      = "Done!"
)

// Gateway delivers a reply to the chat room. Send reports success as a bool;
// it never returns an error because delivery failure ends the turn quietly.
type Gateway interface {
	Send(ctx context.Context, text string) bool
}

// Orchestrator runs one full turn per inbound utterance: model call, at most
// one tool dispatch, optional follow-up call, delivery.
type Orchestrator struct {
	provider schema.ModelProvider
	sessions *session.Manager
	registry *tools.Registry
	prompts  *PromptBuilder
	gateway  Gateway
	timeout  time.Duration
}

// NewOrchestrator wires the turn pipeline. timeout bounds one whole turn;
// zero means no bound.
func NewOrchestrator(
	provider schema.ModelProvider,
	sessions *session.Manager,
	registry *tools.Registry,
	prompts *PromptBuilder,
	gateway Gateway,
	timeout time.Duration,
) *Orchestrator {
	return &Orchestrator{
		provider: provider,
		sessions: sessions,
		registry: registry,
		prompts:  prompts,
		gateway:  gateway,
		timeout:  timeout,
	}
}

// HandleMessage processes one inbound utterance from sender at time at.
// It never returns an error: every failure past this point degrades to a
// delivered apology.
func (o *Orchestrator) HandleMessage(ctx context.Context, sender, text string, at time.Time) {
	if o.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, o.timeout)
		defer cancel()
	}

	sess := o.sessions.Get()
	sess.Append(schema.NewUserContent(fmt.Sprintf("[%s] %s: %s", at.Format("2006-01-02 15:04"), sender, text)))

	instruction := o.prompts.SystemInstruction(time.Now())
	declarations := o.registry.Declarations()

	resp, err := o.provider.Generate(ctx, schema.GenerateRequest{
		SystemInstruction: instruction,
		Contents:          sess.History(),
		Tools:             declarations,
	})
	if err != nil {
		slog.Error("model call failed", "sender", sender, "err", err)
		o.deliver(ctx, apologyReply)
		return
	}
	if len(resp.Candidates) == 0 {
		slog.Warn("model returned no candidates", "sender", sender)
		o.deliver(ctx, apologyReply)
		return
	}

	var reply string
	part, ok := resp.Candidates[0].FirstPart()
	switch {
	case ok && part.FunctionCall != nil:
		reply = o.runTool(ctx, sess, instruction, declarations, *part.FunctionCall)
	case ok && part.Text != "":
		reply = part.Text
		sess.Append(schema.NewModelText(reply))
	default:
		reply = noResponseReply
	}

	o.deliver(ctx, reply)
}

// runTool executes the single tool dispatch of a turn and asks the model to
// narrate the result. When the follow-up call yields nothing usable, the raw
// tool result becomes the reply so the user still gets the tool's answer.
func (o *Orchestrator) runTool(
	ctx context.Context,
	sess *session.Session,
	instruction string,
	declarations []schema.FunctionDeclaration,
	fc schema.FunctionCall,
) string {
	slog.Info("tool call", "tool", fc.Name)
	result := o.registry.Dispatch(ctx, fc.Name, fc.Args)

	sess.Append(schema.NewModelFunctionCall(fc))
	sess.Append(schema.NewFunctionResponse(fc.Name, result))

	follow, err := o.provider.Generate(ctx, schema.GenerateRequest{
		SystemInstruction: instruction,
		Contents:          sess.History(),
		Tools:             declarations,
	})
	if err != nil {
		slog.Warn("follow-up call failed, replying with raw tool result", "tool", fc.Name, "err", err)
		return result
	}
	if len(follow.Candidates) == 0 {
		return result
	}

	text := follow.Candidates[0].FirstText()
	if text == "" {
		return result
	}
	sess.Append(schema.NewModelText(text))
	return text
}

// deliver sends the reply, substituting a generic confirmation for blank
// text so the room never receives an empty post.
func (o *Orchestrator) deliver(ctx context.Context, reply string) {
	if strings.TrimSpace(reply) == "" {
		reply = emptyReply
	}
	o.gateway.Send(ctx, reply)
}
