package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/krishisahayak/krishibot-api/internal/domain"
)

// ConversationRepository is the append-only sink for exchange logging.
// Its failures are the caller's to swallow; persistence is best-effort
// and never a correctness dependency.
type ConversationRepository interface {
	Create(ctx context.Context, conv domain.Conversation) error
}

// PgConversationRepository implements ConversationRepository on
// pgxpool.
type PgConversationRepository struct {
	pool *pgxpool.Pool
}

func NewPgConversationRepository(pool *pgxpool.Pool) *PgConversationRepository {
	return &PgConversationRepository{pool: pool}
}

func (r *PgConversationRepository) Create(ctx context.Context, conv domain.Conversation) error {
	const query = `
		INSERT INTO conversations (id, session_id, user_message, bot_response, language, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`
	_, err := r.pool.Exec(ctx, query,
		conv.ID,
		conv.SessionID,
		conv.UserMessage,
		conv.BotResponse,
		conv.Language,
		conv.CreatedAt,
	)
	return err
}

// DisabledConversationRepository drops records when no database is
// configured. The service stays usable; exchanges just are not logged.
type DisabledConversationRepository struct{}

func NewDisabledConversationRepository() *DisabledConversationRepository {
	return &DisabledConversationRepository{}
}

func (*DisabledConversationRepository) Create(context.Context, domain.Conversation) error {
	return nil
}
