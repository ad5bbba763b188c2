package auth

import (
	"context"
	"errors"
	"net/http"

	"github.com/golang-jwt/jwt/v5/request"
	"github.com/zenkart/backend/httpjson"
	"github.com/zenkart/backend/logger"
	"github.com/zenkart/backend/srvcerror"
)

type claimsKeyType string

const ctxClaimsKey claimsKeyType = "jwtClaims"

// Middleware verifies the Authorization bearer token when one is present
// and stores the decoded claims in the request context. Requests without
// a token pass through with nil claims; Require gates the endpoints that
// need them. Every decode failure maps to the same unauthorized response,
// with the sub-reason kept to server-side logs.
func Middleware(codec *Codec) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		hfn := func(w http.ResponseWriter, r *http.Request) {
			token, err := request.BearerExtractor{}.ExtractToken(r)
			if err != nil {
				if errors.Is(err, request.ErrNoTokenInRequest) {
					ctx := context.WithValue(r.Context(), ctxClaimsKey, (*Claims)(nil))
					next.ServeHTTP(w, r.WithContext(ctx))
					return
				}
				httpjson.HandleError(logger.FromContext(r.Context()), w,
					srvcerror.ErrUnauthorized().SetDebug(err))
				return
			}

			claims, err := codec.Decode(token)
			if err != nil {
				httpjson.HandleError(logger.FromContext(r.Context()), w,
					srvcerror.ErrUnauthorized().SetDebug(err))
				return
			}

			ctx := context.WithValue(r.Context(), ctxClaimsKey, claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		}
		return http.HandlerFunc(hfn)
	}
}

// Require rejects requests whose context carries no verified claims.
func Require(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if ClaimsFromContext(r.Context()) == nil {
			httpjson.HandleError(logger.FromContext(r.Context()), w,
				srvcerror.ErrUnauthorized())
			return
		}
		next.ServeHTTP(w, r)
	})
}

// ClaimsFromContext returns the verified claims for the request, or nil
// when the request was unauthenticated.
func ClaimsFromContext(ctx context.Context) *Claims {
	claims, ok := ctx.Value(ctxClaimsKey).(*Claims)
	if !ok {
		return nil
	}
	return claims
}
