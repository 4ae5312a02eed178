package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/3bwahab/asd-healthcare-platform/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func requestWithPrincipal(principal entity.Principal) *http.Request {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if principal == nil {
		return req
	}
	ctx := context.WithValue(req.Context(), PrincipalKey, principal)
	return req.WithContext(ctx)
}

func runGuard(guard func(http.Handler) http.Handler, req *http.Request) (*httptest.ResponseRecorder, bool) {
	reached := false
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		reached = true
		w.WriteHeader(http.StatusOK)
	})

	rec := httptest.NewRecorder()
	guard(next).ServeHTTP(rec, req)
	return rec, reached
}

func TestRequireDoctor(t *testing.T) {
	t.Run("doctor passes", func(t *testing.T) {
		rec, reached := runGuard(RequireDoctor, requestWithPrincipal(entity.DoctorPrincipal{UserID: uuid.New()}))
		assert.True(t, reached, "Doctor should reach the handler")
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("parent is rejected", func(t *testing.T) {
		rec, reached := runGuard(RequireDoctor, requestWithPrincipal(entity.ParentPrincipal{UserID: uuid.New()}))
		assert.False(t, reached, "Parent should not reach a doctor-only handler")
		assert.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("admin is rejected", func(t *testing.T) {
		rec, reached := runGuard(RequireDoctor, requestWithPrincipal(entity.AdminPrincipal{UserID: uuid.New()}))
		assert.False(t, reached, "Admin should not reach a doctor-only handler")
		assert.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("missing principal", func(t *testing.T) {
		rec, reached := runGuard(RequireDoctor, requestWithPrincipal(nil))
		assert.False(t, reached)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

func TestRequireParent(t *testing.T) {
	t.Run("parent passes", func(t *testing.T) {
		rec, reached := runGuard(RequireParent, requestWithPrincipal(entity.ParentPrincipal{UserID: uuid.New()}))
		assert.True(t, reached, "Parent should reach the handler")
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("doctor is rejected", func(t *testing.T) {
		rec, reached := runGuard(RequireParent, requestWithPrincipal(entity.DoctorPrincipal{UserID: uuid.New()}))
		assert.False(t, reached, "Doctor should not reach a parent-only handler")
		assert.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("missing principal", func(t *testing.T) {
		rec, reached := runGuard(RequireParent, requestWithPrincipal(nil))
		assert.False(t, reached)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

func TestRequireAdmin(t *testing.T) {
	t.Run("admin passes", func(t *testing.T) {
		rec, reached := runGuard(RequireAdmin, requestWithPrincipal(entity.AdminPrincipal{UserID: uuid.New()}))
		assert.True(t, reached, "Admin should reach the handler")
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("doctor is rejected", func(t *testing.T) {
		rec, reached := runGuard(RequireAdmin, requestWithPrincipal(entity.DoctorPrincipal{UserID: uuid.New()}))
		assert.False(t, reached, "Doctor should not reach an admin-only handler")
		assert.Equal(t, http.StatusForbidden, rec.Code)
	})
}

func TestPrincipalContextHelpers(t *testing.T) {
	doctorID := uuid.New()

	t.Run("typed doctor extraction", func(t *testing.T) {
		req := requestWithPrincipal(entity.DoctorPrincipal{UserID: doctorID})

		doctor, ok := GetDoctorFromContext(req.Context())
		assert.True(t, ok)
		assert.Equal(t, doctorID, doctor.UserID)

		_, ok = GetParentFromContext(req.Context())
		assert.False(t, ok, "Doctor principal must not extract as parent")
	})

	t.Run("user ID extraction is role agnostic", func(t *testing.T) {
		req := requestWithPrincipal(entity.ParentPrincipal{UserID: doctorID})
		userID, ok := GetUserIDFromContext(req.Context())
		assert.True(t, ok)
		assert.Equal(t, doctorID, userID)
	})

	t.Run("empty context", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		_, ok := GetPrincipalFromContext(req.Context())
		assert.False(t, ok)
	})
}
