package middleware

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/gorilla/mux"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/momenul162/Food-pagol-server/models"
	"github.com/momenul162/Food-pagol-server/utils"
)

// Key type for context
type contextKey string

const UserContextKey = contextKey("user")

// AuthMiddleware verifies the bearer token and attaches its claims to the
// request context
func AuthMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			utils.RespondError(w, http.StatusUnauthorized, "unauthorized access")
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			utils.RespondError(w, http.StatusUnauthorized, "unauthorized access")
			return
		}

		claims, err := utils.ParseJWT(parts[1])
		if err != nil {
			utils.RespondError(w, http.StatusUnauthorized, "unauthorized access")
			return
		}

		ctx := context.WithValue(r.Context(), UserContextKey, claims)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// AdminMiddleware looks the authenticated user up by email and only lets
// admins through. A user deleted after token issue gets 404, not 403.
func AdminMiddleware(userCollection *mongo.Collection) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			claims, ok := r.Context().Value(UserContextKey).(*utils.Claims)
			if !ok {
				utils.RespondError(w, http.StatusUnauthorized, "unauthorized access")
				return
			}

			ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
			defer cancel()

			var user models.User
			err := userCollection.FindOne(ctx, bson.M{"email": claims.Email}).Decode(&user)
			if err == mongo.ErrNoDocuments {
				utils.RespondError(w, http.StatusNotFound, "User not found")
				return
			}
			if err != nil {
				utils.RespondError(w, http.StatusInternalServerError, "Database error")
				return
			}
			if user.Role != "admin" {
				utils.RespondError(w, http.StatusForbidden, "forbidden access")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
