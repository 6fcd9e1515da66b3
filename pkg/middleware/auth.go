package middleware

import (
	"net/http"
	"strings"

	"product-catalog/internal/data/entity"
	"product-catalog/internal/dto/response"
	"product-catalog/internal/usecase"
	"product-catalog/pkg/utils"
)

const refreshHeader = "X-Refresh-Token"

// Authenticated gates a route behind the session state machine. On a plain
// admit the request proceeds with the user in context. When the access token
// expired but a valid refresh token was presented, the request is
// short-circuited with a fresh token pair and the client must retry.
func Authenticated(auth usecase.AuthService) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			accessToken := bearerToken(r)
			refreshToken := r.Header.Get(refreshHeader)

			result := auth.Authenticate(r.Context(), accessToken, refreshToken)

			switch result.State {
			case usecase.StateAdmit:
				ctx := utils.SetUserContext(r.Context(), result.User)
				next.ServeHTTP(w, r.WithContext(ctx))

			case usecase.StateAdmitWithRotation:
				utils.ResponseSuccess(w, "Token refreshed successfully", response.RotationResponse{
					User: response.RotationUser{
						ID:   result.User.ID,
						Role: string(result.User.Role),
					},
					Tokens: *result.Tokens,
				})

			default:
				utils.ResponseAuthFailure(w, http.StatusUnauthorized,
					usecase.ReasonMessage(result.Reason), string(result.Reason))
			}
		})
	}
}

// RequireRole gates a route behind a set of allowed roles. Must sit inside
// Authenticated.
func RequireRole(roles ...entity.UserRole) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			user, ok := utils.GetUserFromContext(r.Context())
			if !ok {
				utils.ResponseAuthFailure(w, http.StatusUnauthorized,
					usecase.ReasonMessage(usecase.ReasonTokenMissing),
					string(usecase.ReasonTokenMissing))
				return
			}

			for _, role := range roles {
				if user.Role == role {
					next.ServeHTTP(w, r)
					return
				}
			}

			utils.ResponseAuthFailure(w, http.StatusForbidden,
				usecase.ReasonMessage(usecase.ReasonInsufficientRole),
				string(usecase.ReasonInsufficientRole))
		})
	}
}

// RequireAdmin is shorthand for the admin-only surface.
func RequireAdmin() func(http.Handler) http.Handler {
	return RequireRole(entity.RoleAdmin)
}

func bearerToken(r *http.Request) string {
	header := r.Header.Get("Authorization")
	if header == "" {
		return ""
	}

	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}

	return strings.TrimSpace(parts[1])
}
