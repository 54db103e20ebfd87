package api

import (
	"context"
	"crypto/subtle"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

const (
	HeaderUserID = "X-User-ID"
	HeaderCSRF   = "X-CSRFToken"
)

type ctxKey int

const userKey ctxKey = iota

func WithUserID(ctx context.Context, userID int64) context.Context {
	return context.WithValue(ctx, userKey, userID)
}

func UserID(ctx context.Context) (int64, bool) {
	id, ok := ctx.Value(userKey).(int64)
	return id, ok
}

// identify rejects requests that do not name a user.
func identify(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, err := strconv.ParseInt(r.Header.Get(HeaderUserID), 10, 64)
		if err != nil || id <= 0 {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}
		next.ServeHTTP(w, r.WithContext(WithUserID(r.Context(), id)))
	})
}

func (a *API) checkCSRF(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodPost {
			token := r.Header.Get(HeaderCSRF)
			if token == "" || subtle.ConstantTimeCompare([]byte(token), []byte(a.csrfToken)) != 1 {
				http.Error(w, "csrf token missing or invalid", http.StatusForbidden)
				return
			}
		}
		next.ServeHTTP(w, r)
	})
}

func (a *API) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	r.Group(func(r chi.Router) {
		r.Use(identify)
		r.Use(a.checkCSRF)

		r.Post("/map/tabledata", a.TableData)
		r.Post("/detail", a.Detail)
		r.Get("/tracker/{imei}", a.GetSettings)
		r.Post("/tracker/{imei}", a.SaveSettings)
		r.Get("/ws/user/{user_id}/", a.UserSocket)
	})
	return r
}
