package services

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/yigit/clubr/internal/app/models/dto"
	"github.com/yigit/clubr/internal/app/session"
	"github.com/yigit/clubr/internal/pkg/auth"
	"github.com/yigit/clubr/internal/pkg/websocket"
)

// EventPublisher pushes session events to live connections
type EventPublisher interface {
	Publish(event *websocket.Event) bool
	Disconnect(sessionID string)
}

// SessionService defines the interface for session operations
type SessionService interface {
	// Login runs the login intent on the session named by token, opening a
	// new session when token is empty or stale.
	Login(ctx context.Context, token string) (*dto.LoginResponse, error)
	// SignUp always opens a new session and starts onboarding.
	SignUp(ctx context.Context) (*dto.LoginResponse, error)
	// Resolve maps a token to a live session id.
	Resolve(ctx context.Context, token string) (string, error)
	Snapshot(ctx context.Context, sessionID string) (session.State, error)
	Dispatch(ctx context.Context, sessionID string, in Intent) (*dto.IntentResponse, error)
	Close(ctx context.Context, sessionID string) error
}

// sessionServiceImpl implements SessionService
type sessionServiceImpl struct {
	manager   *session.Manager
	tokens    *auth.TokenService
	publisher EventPublisher
	logger    zerolog.Logger
}

// NewSessionService creates a new SessionService
func NewSessionService(
	manager *session.Manager,
	tokens *auth.TokenService,
	publisher EventPublisher,
	logger zerolog.Logger,
) SessionService {
	return &sessionServiceImpl{
		manager:   manager,
		tokens:    tokens,
		publisher: publisher,
		logger:    logger,
	}
}

func (s *sessionServiceImpl) Login(ctx context.Context, token string) (*dto.LoginResponse, error) {
	sessionID, store := "", (*session.Store)(nil)
	if token != "" {
		if id, err := s.Resolve(ctx, token); err == nil {
			sessionID = id
			store, _ = s.manager.Get(id)
		}
	}
	if store == nil {
		sessionID, store = s.manager.Open()
	}
	return s.start(ctx, sessionID, store, intent("login", (*session.Store).Login))
}

func (s *sessionServiceImpl) SignUp(ctx context.Context) (*dto.LoginResponse, error) {
	sessionID, store := s.manager.Open()
	return s.start(ctx, sessionID, store, intent("signUp", (*session.Store).SignUp))
}

func (s *sessionServiceImpl) start(ctx context.Context, sessionID string, store *session.Store, in Intent) (*dto.LoginResponse, error) {
	res, snapshot := s.run(ctx, sessionID, store, in)

	token, expiresIn, err := s.tokens.Issue(sessionID, snapshot.User.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to issue session token: %w", err)
	}
	if err := res.Err(); err != nil {
		return nil, err
	}

	return &dto.LoginResponse{
		Token:     token,
		TokenType: "Bearer",
		ExpiresIn: expiresIn,
		View:      dto.NewSessionView(snapshot),
	}, nil
}

func (s *sessionServiceImpl) Resolve(_ context.Context, token string) (string, error) {
	claims, err := s.tokens.ValidateToken(token)
	if err != nil {
		return "", err
	}
	if _, err := s.manager.Get(claims.SessionID); err != nil {
		return "", err
	}
	return claims.SessionID, nil
}

func (s *sessionServiceImpl) Snapshot(_ context.Context, sessionID string) (session.State, error) {
	store, err := s.manager.Get(sessionID)
	if err != nil {
		return session.State{}, err
	}
	return store.Snapshot(), nil
}

func (s *sessionServiceImpl) Dispatch(ctx context.Context, sessionID string, in Intent) (*dto.IntentResponse, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	store, err := s.manager.Get(sessionID)
	if err != nil {
		return nil, err
	}

	res, snapshot := s.run(ctx, sessionID, store, in)
	if err := res.Err(); err != nil {
		return nil, err
	}

	resp := dto.NewIntentResponse(res, snapshot)
	return &resp, nil
}

// run applies the intent, logs the outcome and announces applied changes.
// The returned state is the one the intent left behind.
func (s *sessionServiceImpl) run(_ context.Context, sessionID string, store *session.Store, in Intent) (session.Result, session.State) {
	res := in.apply(store)
	snapshot, ok := res.State()
	if !ok {
		snapshot = store.Snapshot()
	}
	screen := snapshot.Screen

	event := s.logger.Debug()
	if res.Outcome == session.OutcomeRejected {
		event = s.logger.Info()
	}
	event.
		Str("sessionID", sessionID).
		Str("intent", in.Name).
		Str("outcome", string(res.Outcome)).
		Str("reason", res.Reason).
		Str("screen", string(screen)).
		Msg("Intent handled")

	if res.Applied() {
		s.publisher.Publish(&websocket.Event{
			Type:      websocket.EventStateChanged,
			SessionID: sessionID,
			Intent:    in.Name,
			Outcome:   string(res.Outcome),
			Screen:    string(screen),
			Ref:       res.Ref,
		})
	}
	return res, snapshot
}

func (s *sessionServiceImpl) Close(_ context.Context, sessionID string) error {
	s.manager.Close(sessionID)
	s.publisher.Disconnect(sessionID)
	return nil
}
