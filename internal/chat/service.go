// Package chat backs the Bharat Explorer assistant with the Gemini API.
// Sessions live server-side in a TTL cache; a reply is the full accumulated
// stream, returned once complete.
package chat

import (
	"context"
	"fmt"
	"iter"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/patrickmn/go-cache"
	"google.golang.org/genai"

	"github.com/priyank-sharma/bharat-explorer/internal/config"
	"github.com/priyank-sharma/bharat-explorer/internal/observability"
)

const systemInstruction = `You are Bharat Explorer, an enthusiastic and knowledgeable AI assistant specializing in Indian culture, art, and tourism.

Your expertise includes:
- Indian cultural traditions, customs, and heritage
- Classical and folk art forms, dance, and music
- Festivals and celebrations across different regions
- Historical monuments, temples, and tourist destinations
- Regional cuisines and culinary traditions
- Traditional crafts and handicrafts
- Ancient philosophies and spiritual practices

Always provide:
- Detailed, accurate, and engaging responses
- Cultural context and historical background
- Practical travel tips when relevant
- Respectful and culturally sensitive information
- Regional variations and diversity within India

Use emojis appropriately to make responses more engaging and maintain a warm, conversational tone.`

// Turn is one utterance in a session, role "user" or "model".
type Turn struct {
	Role    string    `json:"role"`
	Content string    `json:"content"`
	At      time.Time `json:"at"`
}

type Session struct {
	ID    string `json:"id"`
	Turns []Turn `json:"turns"`
}

// Streamer produces the model's streamed response to a conversation.
// The concrete implementation talks to Gemini; tests substitute a fake.
type Streamer interface {
	Stream(ctx context.Context, history []*genai.Content) iter.Seq2[*genai.GenerateContentResponse, error]
}

type Service struct {
	logger   *slog.Logger
	streamer Streamer
	sessions *cache.Cache
}

// ErrNotConfigured is returned when the API key is absent. Only the chat
// feature stops; the rest of the dashboard is unaffected.
var ErrNotConfigured = fmt.Errorf("chat: GOOGLE_API_KEY is not set")

func NewService(ctx context.Context, logger *slog.Logger, cfg config.ChatCfg) (*Service, error) {
	if !cfg.Configured() {
		return nil, ErrNotConfigured
	}
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("chat: create client: %w", err)
	}
	return NewServiceWithStreamer(logger, &geminiStreamer{
		client:      client,
		model:       cfg.Model,
		temperature: float32(cfg.Temperature),
	}, cfg.SessionTTL), nil
}

// NewServiceWithStreamer wires an explicit streamer; used by tests.
func NewServiceWithStreamer(logger *slog.Logger, st Streamer, sessionTTL time.Duration) *Service {
	if sessionTTL <= 0 {
		sessionTTL = 30 * time.Minute
	}
	return &Service{
		logger:   logger,
		streamer: st,
		sessions: cache.New(sessionTTL, 2*sessionTTL),
	}
}

// Send appends the user message to the session (creating one when the id is
// empty or expired), forwards the whole history to the model, and returns the
// session id and the fully accumulated reply.
func (s *Service) Send(ctx context.Context, sessionID, message string) (string, string, error) {
	message = strings.TrimSpace(message)
	if message == "" {
		return sessionID, "", fmt.Errorf("chat: empty message")
	}

	sess := s.session(sessionID)
	sess.Turns = append(sess.Turns, Turn{Role: "user", Content: message, At: time.Now()})

	start := time.Now()
	reply, err := s.generate(ctx, sess)
	observability.ObserveUpstreamLatency("gemini", time.Since(start).Seconds())
	if err != nil {
		observability.IncUpstreamFailure("gemini")
		s.logger.Warn("chat generation failed", "session", sess.ID, "error", err)
		// keep the user turn so a retry resends the same conversation
		s.sessions.Set(sess.ID, sess, cache.DefaultExpiration)
		return sess.ID, "", fmt.Errorf("chat: %w", err)
	}

	sess.Turns = append(sess.Turns, Turn{Role: "model", Content: reply, At: time.Now()})
	s.sessions.Set(sess.ID, sess, cache.DefaultExpiration)
	return sess.ID, reply, nil
}

// History returns the stored turns for a session, oldest first.
func (s *Service) History(sessionID string) []Turn {
	if v, ok := s.sessions.Get(sessionID); ok {
		if sess, ok := v.(*Session); ok {
			return sess.Turns
		}
	}
	return nil
}

// Reset discards a session's history.
func (s *Service) Reset(sessionID string) {
	s.sessions.Delete(sessionID)
}

func (s *Service) session(id string) *Session {
	if id != "" {
		if v, ok := s.sessions.Get(id); ok {
			if sess, ok := v.(*Session); ok {
				return sess
			}
		}
	}
	return &Session{ID: uuid.NewString()}
}

func (s *Service) generate(ctx context.Context, sess *Session) (string, error) {
	history := make([]*genai.Content, 0, len(sess.Turns))
	for _, t := range sess.Turns {
		role := genai.Role(genai.RoleUser)
		if t.Role == "model" {
			role = genai.RoleModel
		}
		history = append(history, genai.NewContentFromText(t.Content, role))
	}

	var b strings.Builder
	for resp, err := range s.streamer.Stream(ctx, history) {
		if err != nil {
			return "", fmt.Errorf("stream: %w", err)
		}
		for _, cand := range resp.Candidates {
			if cand.Content == nil {
				continue
			}
			for _, part := range cand.Content.Parts {
				if part.Text != "" {
					b.WriteString(part.Text)
				}
			}
		}
	}
	if b.Len() == 0 {
		return "", fmt.Errorf("stream: empty response")
	}
	return b.String(), nil
}

// SuggestedTopics are the canned prompts offered on the chat page.
func SuggestedTopics() []string {
	return []string{
		"Tell me about Diwali celebrations",
		"Famous temples in South India",
		"Traditional Indian art forms",
		"Best time to visit Rajasthan",
	}
}
