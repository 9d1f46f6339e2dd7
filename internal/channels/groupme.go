// Package channels holds the GroupMe surface: the outbound bot-post sender
// and the inbound webhook HTTP server.
package channels

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/gorilla/mux"
)

const botPostURL = "https://api.groupme.com/v3/bots/post"

// Sender posts bot messages to the GroupMe room. It is safe for concurrent
// use and never panics; every failure mode collapses to a false return.
type Sender struct {
	botID      string
	postURL    string
	httpClient *http.Client
}

// NewSender creates a Sender for the given bot ID. An empty bot ID produces
// a Sender that drops everything, so a half-configured deployment degrades
// to silence instead of crashing.
func NewSender(botID string) *Sender {
	return &Sender{
		botID:   botID,
		postURL: botPostURL,
		httpClient: &http.Client{
			Timeout: 15 * time.Second,
		},
	}
}

// Send posts text to the room. It reports success only on the API's 202
// acknowledgement. Blank text and missing credentials return false without
// any network I/O.
func (s *Sender) Send(ctx context.Context, text string) bool {
	if s.botID == "" {
		slog.Warn("groupme send skipped: no bot ID configured")
		return false
	}
	if strings.TrimSpace(text) == "" {
		return false
	}

	payload, err := json.Marshal(map[string]string{
		"bot_id": s.botID,
		"text":   text,
	})
	if err != nil {
		return false
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.postURL, bytes.NewReader(payload))
	if err != nil {
		return false
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		slog.Error("groupme post failed", "err", err)
		return false
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusAccepted {
		slog.Error("groupme post rejected", "status", resp.StatusCode)
		return false
	}
	return true
}

// inboundMessage is the subset of the GroupMe callback payload we act on.
type inboundMessage struct {
	Text       string `json:"text"`
	Name       string `json:"name"`
	SenderType string `json:"sender_type"`
	CreatedAt  int64  `json:"created_at"`
}

// TurnHandler runs one full assistant turn for an inbound utterance.
type TurnHandler interface {
	HandleMessage(ctx context.Context, sender, text string, at time.Time)
}

// Resetter clears the conversation transcript.
type Resetter interface {
	Reset()
}

// Server receives GroupMe webhook callbacks and routes mentions into the
// turn handler. Webhook processing is synchronous: GroupMe gets its 200
// only after the turn has fully run, which serialises turns for free.
type Server struct {
	addr    string
	trigger string
	handler TurnHandler
	reset   Resetter
	httpSrv *http.Server
}

// NewServer creates the webhook server. trigger is matched case-insensitively
// as a substring of the message text.
func NewServer(port int, trigger string, handler TurnHandler, reset Resetter) *Server {
	s := &Server{
		addr:    fmt.Sprintf(":%d", port),
		trigger: strings.ToLower(trigger),
		handler: handler,
		reset:   reset,
	}

	r := mux.NewRouter()
	r.HandleFunc("/webhook", s.handleWebhook).Methods(http.MethodPost)
	r.HandleFunc("/health", s.handleHealth).Methods(http.MethodGet)
	r.HandleFunc("/reset", s.handleReset).Methods(http.MethodPost)
	r.HandleFunc("/", s.handleRoot).Methods(http.MethodGet)

	s.httpSrv = &http.Server{
		Addr:              s.addr,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}
	return s
}

// Handler exposes the router for tests.
func (s *Server) Handler() http.Handler { return s.httpSrv.Handler }

// Start serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Start(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		if err := s.httpSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := s.httpSrv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	return ctx.Err()
}

func (s *Server) handleWebhook(w http.ResponseWriter, r *http.Request) {
	var msg inboundMessage
	if err := json.NewDecoder(r.Body).Decode(&msg); err != nil {
		slog.Error("webhook decode failed", "err", err)
		http.Error(w, "bad payload", http.StatusInternalServerError)
		return
	}

	// Drop the bot's own echoes and empty posts (image-only messages arrive
	// with empty text).
	if msg.SenderType == "bot" || msg.Text == "" {
		w.WriteHeader(http.StatusOK)
		return
	}

	if !strings.Contains(strings.ToLower(msg.Text), s.trigger) {
		w.WriteHeader(http.StatusOK)
		return
	}

	at := time.Unix(msg.CreatedAt, 0)
	if msg.CreatedAt == 0 {
		at = time.Now()
	}
	slog.Info("mention received", "from", msg.Name)
	s.handler.HandleMessage(r.Context(), msg.Name, msg.Text, at)
	w.WriteHeader(http.StatusOK)
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]any{
		"status":    "healthy",
		"timestamp": time.Now().Format(time.RFC3339),
	})
}

func (s *Server) handleReset(w http.ResponseWriter, _ *http.Request) {
	s.reset.Reset()
	slog.Info("conversation reset via endpoint")
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"status": "Chat session reset"})
}

func (s *Server) handleRoot(w http.ResponseWriter, _ *http.Request) {
	fmt.Fprintln(w, "Roomie is running.")
}
