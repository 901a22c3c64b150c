package v1handler

import (
	"context"
	"converter/internal/config"
	"converter/pkg/domain"
	"converter/pkg/logger"
	"converter/pkg/serrors"
	"crypto/rsa"
	"fmt"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// CtxKey is the type of context keys set by this package.
type CtxKey string

// ClientIDKey is the context key under which the authenticated domain.ClientID is stored.
const ClientIDKey CtxKey = "ClientID"

// GetClientIDFromContext returns the authenticated client, if any.
func GetClientIDFromContext(ctx context.Context) (domain.ClientID, bool) {
	id, ok := ctx.Value(ClientIDKey).(domain.ClientID)

	return id, ok
}

// SecHandlerOptions configure bearer token verification.
type SecHandlerOptions struct {
	// PublicKey is the PEM encoded RSA key tokens must be signed with.
	PublicKey string
}

// NewSecHandlerOptions constructs SecHandlerOptions from the application config.
// It returns nil when no public key is configured, which disables authentication.
func NewSecHandlerOptions(cfg *config.Config) *SecHandlerOptions {
	if cfg.JWT.PublicKey == "" {
		return nil
	}

	return &SecHandlerOptions{PublicKey: cfg.JWT.PublicKey}
}

// SecHandler verifies RS256 bearer tokens whose subject is a client UUID.
type SecHandler struct {
	publicKey *rsa.PublicKey
	parser    *jwt.Parser
}

func NewSecHandler(opts *SecHandlerOptions) (*SecHandler, error) {
	if opts == nil || opts.PublicKey == "" {
		return nil, fmt.Errorf("public key is required")
	}

	key, err := jwt.ParseRSAPublicKeyFromPEM([]byte(opts.PublicKey))
	if err != nil {
		return nil, fmt.Errorf("could not parse RSA public key: %w", err)
	}

	return &SecHandler{
		publicKey: key,
		parser: jwt.NewParser(
			jwt.WithValidMethods([]string{jwt.SigningMethodRS256.Alg()}),
			jwt.WithExpirationRequired(),
		),
	}, nil
}

// HandleBearerAuth verifies token and returns a context carrying the client ID.
func (s *SecHandler) HandleBearerAuth(ctx context.Context, token string) (context.Context, error) {
	var claims jwt.RegisteredClaims
	if _, err := s.parser.ParseWithClaims(token, &claims, func(*jwt.Token) (any, error) {
		return s.publicKey, nil
	}); err != nil {
		return ctx, serrors.Wrap(serrors.ErrUnauthorized, err, "invalid token")
	}

	id, err := uuid.Parse(claims.Subject)
	if err != nil {
		return ctx, serrors.Wrap(serrors.ErrUnauthorized, err, "invalid token subject")
	}

	clientID := domain.ClientID(id)
	ctx = context.WithValue(ctx, ClientIDKey, clientID)
	ctx = logger.WithFields(ctx, zap.String("client_id", clientID.String()))

	return ctx, nil
}

// Middleware rejects requests without a valid "Authorization: Bearer" header.
func (s *SecHandler) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		scheme, token, ok := strings.Cut(r.Header.Get("Authorization"), " ")
		if !ok || !strings.EqualFold(scheme, "Bearer") || token == "" {
			w.Header().Set("WWW-Authenticate", `Bearer realm="converter"`)
			WriteError(w, r, serrors.With(serrors.ErrUnauthorized, "missing bearer token"))

			return
		}

		ctx, err := s.HandleBearerAuth(r.Context(), strings.TrimSpace(token))
		if err != nil {
			w.Header().Set("WWW-Authenticate", `Bearer realm="converter", error="invalid_token"`)
			WriteError(w, r, err)

			return
		}

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
