package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/krishisahayak/krishibot-api/internal/domain"
	"github.com/krishisahayak/krishibot-api/internal/llm"
	"github.com/krishisahayak/krishibot-api/internal/repository"
	"github.com/krishisahayak/krishibot-api/internal/session"
)

// ErrEmptyMessage rejects blank or whitespace-only farmer questions.
var ErrEmptyMessage = errors.New("chat: empty message")

const defaultLanguage = "hi"

// ChatService orchestrates one exchange: validate, resolve the session,
// append the user turn, generate advice under the fixed persona, append
// the model turn, cap the history and log the exchange best-effort.
type ChatService struct {
	logger         *zap.Logger
	registry       *session.Registry
	client         llm.Client
	conversations  repository.ConversationRepository
	temperature    float32
	maxTokens      int
	persistTimeout time.Duration
}

func NewChatService(
	logger *zap.Logger,
	registry *session.Registry,
	client llm.Client,
	conversations repository.ConversationRepository,
	temperature float32,
	maxTokens int,
	persistTimeout time.Duration,
) *ChatService {
	if persistTimeout <= 0 {
		persistTimeout = 10 * time.Second
	}
	return &ChatService{
		logger:         logger,
		registry:       registry,
		client:         client,
		conversations:  conversations,
		temperature:    temperature,
		maxTokens:      maxTokens,
		persistTimeout: persistTimeout,
	}
}

// Result is a successful exchange outcome.
type Result struct {
	Response  string
	SessionID string
	Category  string
}

// Exchange runs one full request/response cycle. The user turn is
// committed to the session before the generation outcome is known and
// is not rolled back on failure; a failed exchange still leaves the
// farmer's question in history.
func (s *ChatService) Exchange(ctx context.Context, message, language, sessionID string) (Result, error) {
	if strings.TrimSpace(message) == "" {
		return Result{}, ErrEmptyMessage
	}
	if language == "" {
		language = defaultLanguage
	}

	id, history := s.registry.Resolve(sessionID)
	contents := BuildContents(history, message)
	s.registry.Append(id, domain.Turn{Role: domain.RoleUser, Text: message})

	text, err := s.client.Generate(ctx, llm.GenerationRequest{
		Contents:          contents,
		SystemInstruction: SystemInstruction,
		Temperature:       s.temperature,
		MaxOutputTokens:   s.maxTokens,
	})
	if err != nil {
		s.logger.Error("generation failed",
			zap.Error(err),
			zap.String("session_id", id),
		)
		return Result{}, err
	}

	s.registry.Append(id, domain.Turn{Role: domain.RoleModel, Text: text})
	s.registry.Replace(id, session.TrimTurns(s.registry.History(id)))

	s.persistAsync(id, message, text, language)

	return Result{
		Response:  text,
		SessionID: id,
		Category:  Categorize(message),
	}, nil
}

// persistAsync logs the exchange in a detached goroutine. The response
// path never waits on it and its failure is never surfaced.
func (s *ChatService) persistAsync(sessionID, userMessage, botResponse, language string) {
	conv := domain.Conversation{
		ID:          uuid.NewString(),
		SessionID:   sessionID,
		UserMessage: userMessage,
		BotResponse: botResponse,
		Language:    language,
		CreatedAt:   time.Now().UTC(),
	}
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), s.persistTimeout)
		defer cancel()
		if err := s.conversations.Create(ctx, conv); err != nil {
			s.logger.Warn("conversation persist failed",
				zap.Error(err),
				zap.String("session_id", sessionID),
			)
		}
	}()
}
