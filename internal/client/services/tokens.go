package services

import (
	"context"
	"errors"

	"github.com/gyulist/gyulist/internal/client/client"
	"github.com/gyulist/gyulist/internal/client/repositories/metadata"
	"github.com/gyulist/gyulist/internal/common"
)

// TokenStore keeps the CLI session token in the local metadata table and
// serves as its client.TokenSource.
type TokenStore struct {
	repo metadata.Repository
}

func NewTokenStore(repo metadata.Repository) *TokenStore {
	return &TokenStore{repo: repo}
}

// Token returns client.ErrNoToken when nobody is logged in.
func (s *TokenStore) Token(ctx context.Context) (string, error) {
	v, err := s.repo.Get(ctx, common.TokenMetadataKey)
	if errors.Is(err, common.ErrorNotFound) || (err == nil && v == "") {
		return "", client.ErrNoToken
	}
	if err != nil {
		return "", err
	}
	return v, nil
}

func (s *TokenStore) Save(ctx context.Context, token string) error {
	return s.repo.Set(ctx, common.TokenMetadataKey, token)
}

func (s *TokenStore) Clear(ctx context.Context) error {
	return s.repo.Delete(ctx, common.TokenMetadataKey)
}
