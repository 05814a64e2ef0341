package auth

import (
	"context"
	"encoding/gob"
	"finboard/internal/config"
	"finboard/internal/middlewares"
	"finboard/internal/models"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/alexedwards/scs/goredisstore"
	"github.com/alexedwards/scs/v2"
	"github.com/alexedwards/scs/v2/memstore"
	"github.com/redis/go-redis/v9"
)

type SessionManager struct {
	*scs.SessionManager
}

func NewSessionManager(logger *slog.Logger, cfg *config.Config) (*SessionManager, error) {
	gob.Register(&models.User{})
	sessionManager := scs.New()

	switch cfg.Sessions.Store {
	case "memory":
		sessionManager.Store = memstore.New()
	case "redis":
		var client *redis.Client

		if cfg.Redis.Sentinel != nil {
			logger.Info("connecting to redis via sentinel",
				"master", cfg.Redis.Sentinel.MasterName,
				"sentinels", cfg.Redis.Sentinel.SentinelAddresses)

			client = redis.NewFailoverClient(&redis.FailoverOptions{
				MasterName:       cfg.Redis.Sentinel.MasterName,
				SentinelAddrs:    cfg.Redis.Sentinel.SentinelAddresses,
				SentinelPassword: cfg.Redis.Sentinel.SentinelPassword,
				Password:         cfg.Redis.Password,
				DB:               cfg.Redis.SessionIndex,
				MinIdleConns:     2,
			})
		} else {
			client = redis.NewClient(&redis.Options{
				Addr:         cfg.Redis.Address,
				Password:     cfg.Redis.Password,
				DB:           cfg.Redis.SessionIndex,
				MinIdleConns: 2,
			})
		}

		ctx := context.Background()
		if err := client.Ping(ctx).Err(); err != nil {
			return nil, fmt.Errorf("redis connection failed: %w", err)
		}

		sessionManager.Store = goredisstore.New(client)
	default:
		return nil, fmt.Errorf("unsupported session store: %s", cfg.Sessions.Store)
	}

	sessionManager.Lifetime = cfg.Sessions.FixedTimeout

	sessionManager.Cookie.Name = cfg.Sessions.Name
	sessionManager.Cookie.HttpOnly = true
	sessionManager.Cookie.SameSite = http.SameSiteLaxMode
	sessionManager.Cookie.Secure = cfg.Sessions.Secure
	sessionManager.Cookie.Path = "/"

	return &SessionManager{SessionManager: sessionManager}, nil
}

func (s *SessionManager) LoadAndSave(next http.Handler) http.Handler {
	return s.SessionManager.LoadAndSave(next)
}

func (s *SessionManager) SetUser(ctx *middlewares.AppContext, user *models.User) {
	s.Put(ctx, string(SessionKeyUserData), user)
}

func (s *SessionManager) GetUser(ctx *middlewares.AppContext) (user *models.User, ok bool) {
	data := s.Get(ctx, string(SessionKeyUserData))
	if data == nil {
		return nil, false
	}

	if user, ok := data.(*models.User); ok {
		return user, true
	}

	return nil, false
}

func (s *SessionManager) SetToken(ctx *middlewares.AppContext, token string) {
	s.Put(ctx, string(SessionKeyAPIToken), token)
	s.Put(ctx, string(SessionKeyCreatedAt), time.Now().Unix())
}

func (s *SessionManager) GetToken(ctx *middlewares.AppContext) (token string, ok bool) {
	token = s.GetString(ctx, string(SessionKeyAPIToken))
	return token, token != ""
}

func (s *SessionManager) SetAuthenticated(ctx *middlewares.AppContext, authenticated bool) {
	s.Put(ctx, string(SessionKeyAuthenticated), authenticated)
}

func (s *SessionManager) IsUserAuthenticated(ctx *middlewares.AppContext) bool {
	if !s.GetBool(ctx, string(SessionKeyAuthenticated)) {
		return false
	}

	_, ok := s.GetToken(ctx)
	return ok
}

func (s *SessionManager) SetLinkFlow(ctx *middlewares.AppContext, state, nonce, verifier string) {
	s.Put(ctx, string(SessionKeyLinkState), state)
	s.Put(ctx, string(SessionKeyLinkNonce), nonce)
	s.Put(ctx, string(SessionKeyLinkCodeVerifier), verifier)
}

func (s *SessionManager) GetLinkFlow(ctx *middlewares.AppContext) (state, nonce, verifier string) {
	state = s.GetString(ctx, string(SessionKeyLinkState))
	nonce = s.GetString(ctx, string(SessionKeyLinkNonce))
	verifier = s.GetString(ctx, string(SessionKeyLinkCodeVerifier))
	return state, nonce, verifier
}

func (s *SessionManager) ClearLinkFlow(ctx *middlewares.AppContext) {
	s.Remove(ctx, string(SessionKeyLinkState))
	s.Remove(ctx, string(SessionKeyLinkNonce))
	s.Remove(ctx, string(SessionKeyLinkCodeVerifier))
}

// RenewToken rotates the session ID, keeping the stored data. Called after a
// successful login so the pre-auth cookie cannot be replayed.
func (s *SessionManager) RenewToken(ctx *middlewares.AppContext) error {
	return s.SessionManager.RenewToken(ctx.Request.Context())
}

func (s *SessionManager) Logout(ctx *middlewares.AppContext) error {
	return s.Destroy(ctx.Request.Context())
}
