package repositories

import (
	"context"
	"fmt"
	"time"

	"github.com/you/jobsvc/domain"
	"github.com/you/jobsvc/internal/infrastructure/database"
)

// TokenLedgerImpl implements domain.TokenLedger using Redis
type TokenLedgerImpl struct {
	client *database.RedisClient
	prefix string
}

// NewTokenLedger creates a new token ledger
func NewTokenLedger(client *database.RedisClient) *TokenLedgerImpl {
	return &TokenLedgerImpl{
		client: client,
		prefix: "used_token:",
	}
}

// Consume implements domain.TokenLedger. The mark lives as long as the token
// could still verify; ttl <= 0 keeps it without expiry.
func (l *TokenLedgerImpl) Consume(ctx context.Context, id string, ttl time.Duration) error {
	if id == "" {
		return domain.ErrTokenInvalid
	}
	if ttl < 0 {
		ttl = 0
	}
	ok, err := database.SetNX(ctx, l.client, l.prefix+id, time.Now().Unix(), ttl)
	if err != nil {
		return fmt.Errorf("failed to record token use: %w", err)
	}
	if !ok {
		return domain.ErrTokenAlreadyUsed
	}
	return nil
}

// Release implements domain.TokenLedger
func (l *TokenLedgerImpl) Release(ctx context.Context, id string) error {
	if err := l.client.Del(ctx, l.prefix+id).Err(); err != nil {
		return fmt.Errorf("failed to release token: %w", err)
	}
	return nil
}

var _ domain.TokenLedger = (*TokenLedgerImpl)(nil)
