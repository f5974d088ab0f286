package middleware

import (
	"net/http"

	"agrimart-be/internal/user"
	"agrimart-be/internal/utils"
)

// RequireRoles allows the request through only when the authenticated role is
// in the allow-list. Roles are the closed user.Role enumeration, not request
// strings, so a typo here is a compile error.
func RequireRoles(roles ...user.Role) func(http.Handler) http.Handler {
	allowed := make(map[user.Role]struct{}, len(roles))
	for _, r := range roles {
		allowed[r] = struct{}{}
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			role := user.Role(utils.GetUserRoleFromContext(r.Context()))
			if _, ok := allowed[role]; !ok {
				utils.WriteJSONMessage(w, "Access denied: Insufficient role", http.StatusForbidden)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
