package transport

import (
	"context"
	"net/http"
	"strings"

	"github.com/gorilla/mux"
	sellerapp "github.com/muhammadheryan/marketplace/application/seller"
	"github.com/muhammadheryan/marketplace/constant"
	"github.com/muhammadheryan/marketplace/utils/errors"
)

// AuthMiddleware validates bearer tokens on the protected routes and
// embeds the authenticated seller id into the request context. The CRUD
// surface is public; only the routes below require a token.
func AuthMiddleware(sellerApp sellerapp.SellerApp) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !isProtectedPath(r.URL.Path) {
				next.ServeHTTP(w, r)
				return
			}

			auth := r.Header.Get("Authorization")
			if auth == "" || !strings.HasPrefix(auth, "Bearer ") {
				writeError(w, errors.SetCustomError(constant.ErrUnauthorize))
				return
			}
			token := strings.TrimPrefix(auth, "Bearer ")

			sellerID, err := sellerApp.ValidateToken(r.Context(), token)
			if err != nil {
				writeError(w, err)
				return
			}

			ctx := context.WithValue(r.Context(), constant.SellerIDKey, sellerID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func isProtectedPath(path string) bool {
	return path == "/seller/me" || path == "/logout"
}
