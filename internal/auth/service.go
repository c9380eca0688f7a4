package auth

import (
	"errors"
	"fmt"

	"go.uber.org/zap"
)

var ErrSessionUnavailable = errors.New("session could not be opened")

// SessionOpener creates the in-memory classroom session a token pair is bound to.
type SessionOpener interface {
	OpenSession() (string, error)
}

// AuthService opens sessions and hands out their token pair.
type AuthService struct {
	sessions SessionOpener
	tokens   *TokenIssuer
	logger   *zap.Logger
}

func NewAuthService(sessions SessionOpener, tokens *TokenIssuer, logger *zap.Logger) *AuthService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AuthService{sessions: sessions, tokens: tokens, logger: logger}
}

// OpenSession creates a session and returns a teacher token and a read-only
// viewer token for it.
func (s *AuthService) OpenSession() (*OpenSessionResponse, error) {
	id, err := s.sessions.OpenSession()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSessionUnavailable, err)
	}
	teacher, err := s.tokens.Issue(id, RoleTeacher)
	if err != nil {
		return nil, err
	}
	viewer, err := s.tokens.Issue(id, RoleViewer)
	if err != nil {
		return nil, err
	}
	claims, err := s.tokens.Parse(teacher)
	if err != nil {
		return nil, err
	}

	s.logger.Info("session opened", zap.String("session_id", id))
	return &OpenSessionResponse{
		SessionID:   id,
		Token:       teacher,
		ViewerToken: viewer,
		ExpiresAt:   claims.ExpiresAt.Unix(),
	}, nil
}

// Tokens exposes the issuer for the JWT middleware.
func (s *AuthService) Tokens() *TokenIssuer { return s.tokens }
