package middleware

import (
	"crypto/hmac"
	"crypto/sha256"
	"net/http"

	"rentaid/internal/common"
	"rentaid/internal/http/response"
)

// AdminGate guards the admin API with a single shared secret. The
// credential comes from the password query parameter or the
// X-Admin-Password header.
type AdminGate struct {
	secretDigest [sha256.Size]byte
}

func NewAdminGate(secret string) *AdminGate {
	return &AdminGate{secretDigest: sha256.Sum256([]byte(secret))}
}

func (g *AdminGate) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		supplied := r.URL.Query().Get("password")
		if supplied == "" {
			supplied = r.Header.Get("X-Admin-Password")
		}
		if supplied == "" || !g.matches(supplied) {
			response.Error(w, common.NewError(common.CodeUnauthorized, "admin credentials required", nil))
			return
		}
		next.ServeHTTP(w, r)
	})
}

// Digests are compared instead of the raw values so the check is constant
// time regardless of credential length.
func (g *AdminGate) matches(supplied string) bool {
	digest := sha256.Sum256([]byte(supplied))
	return hmac.Equal(digest[:], g.secretDigest[:])
}
