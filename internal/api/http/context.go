package http

import (
	"context"
	"fmt"
	"net/http"
	"strconv"

	"clubcourt-backend/internal/domain"
)

type contextKey string

const memberIDKey contextKey = "member_id"

// MemberIdentity reads the authenticated member from the X-Member-ID header.
// Authentication itself happens upstream (API gateway); this service trusts
// the header.
func MemberIdentity(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw := r.Header.Get("X-Member-ID")
		if raw == "" {
			writeJSON(w, http.StatusUnauthorized, errorResponse{Error: "missing X-Member-ID header"})
			return
		}
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || id <= 0 {
			writeJSON(w, http.StatusUnauthorized, errorResponse{Error: "invalid X-Member-ID header"})
			return
		}
		ctx := context.WithValue(r.Context(), memberIDKey, id)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func memberIDFrom(ctx context.Context) (int64, error) {
	id, ok := ctx.Value(memberIDKey).(int64)
	if !ok {
		return 0, fmt.Errorf("%w: no member in request context", domain.ErrInvalidInput)
	}
	return id, nil
}

func pathID(r *http.Request, vars map[string]string, name string) (int64, error) {
	id, err := strconv.ParseInt(vars[name], 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: invalid %s", domain.ErrInvalidInput, name)
	}
	return id, nil
}

func queryPage(r *http.Request) (page, pageSize int32) {
	page, pageSize = 1, 20
	if v, err := strconv.ParseInt(r.URL.Query().Get("page"), 10, 32); err == nil && v > 0 {
		page = int32(v)
	}
	if v, err := strconv.ParseInt(r.URL.Query().Get("page_size"), 10, 32); err == nil && v > 0 {
		pageSize = int32(v)
	}
	return page, pageSize
}
