package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"tutorhub/internal/pkg/config"
	"tutorhub/internal/pkg/identity"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const ctxPrincipalKey = "principal"

// IdentityMiddleware reads the externally authenticated identity from the
// request. The auth gateway either signs an HS256 identity token, or, inside
// a trusted network, forwards plain X-User-ID / X-User-Role headers.
type IdentityMiddleware struct {
	verifier     *identity.Verifier
	trustHeaders bool
}

func NewIdentityMiddleware(cfg config.AuthConfig) *IdentityMiddleware {
	var verifier *identity.Verifier
	if cfg.IdentitySecret != "" {
		verifier = identity.NewVerifier(cfg.IdentitySecret)
	}
	return &IdentityMiddleware{
		verifier:     verifier,
		trustHeaders: cfg.TrustHeaders,
	}
}

func (m *IdentityMiddleware) RequireIdentity() gin.HandlerFunc {
	return func(c *gin.Context) {
		principal, ok := m.resolve(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "Identity required",
			})
			c.Abort()
			return
		}

		c.Set(ctxPrincipalKey, principal)
		c.Next()
	}
}

func (m *IdentityMiddleware) resolve(c *gin.Context) (identity.Principal, bool) {
	if m.verifier != nil {
		authHeader := c.GetHeader("Authorization")
		if strings.HasPrefix(authHeader, "Bearer ") {
			token := strings.TrimSpace(authHeader[len("Bearer "):])
			principal, err := m.verifier.Verify(token)
			if err != nil {
				slog.Warn("identity token rejected", "error", err.Error())
				return identity.Principal{}, false
			}
			return *principal, true
		}
	}

	if m.trustHeaders {
		userID, err := uuid.Parse(c.GetHeader("X-User-ID"))
		if err != nil {
			return identity.Principal{}, false
		}
		role, err := identity.ParseRole(c.GetHeader("X-User-Role"))
		if err != nil {
			return identity.Principal{}, false
		}
		return identity.Principal{UserID: userID, Role: role}, true
	}

	return identity.Principal{}, false
}

func GetPrincipal(c *gin.Context) (identity.Principal, bool) {
	v, exists := c.Get(ctxPrincipalKey)
	if !exists {
		return identity.Principal{}, false
	}

	principal, ok := v.(identity.Principal)
	return principal, ok
}
