package middleware

import (
	"net/http"

	"github.com/3bwahab/asd-healthcare-platform/internal/domain/entity"
	"github.com/3bwahab/asd-healthcare-platform/pkg/response"
)

// RequireDoctor only lets a doctor principal through
func RequireDoctor(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		principal, ok := GetPrincipalFromContext(r.Context())
		if !ok {
			response.Unauthorized(w, "Principal information not found")
			return
		}
		if _, isDoctor := principal.(entity.DoctorPrincipal); !isDoctor {
			response.Forbidden(w, "This resource is restricted to doctors")
			return
		}
		next.ServeHTTP(w, r)
	})
}

// RequireParent only lets a parent principal through
func RequireParent(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		principal, ok := GetPrincipalFromContext(r.Context())
		if !ok {
			response.Unauthorized(w, "Principal information not found")
			return
		}
		if _, isParent := principal.(entity.ParentPrincipal); !isParent {
			response.Forbidden(w, "This resource is restricted to parents")
			return
		}
		next.ServeHTTP(w, r)
	})
}

// RequireAdmin only lets an admin principal through
func RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		principal, ok := GetPrincipalFromContext(r.Context())
		if !ok {
			response.Unauthorized(w, "Principal information not found")
			return
		}
		if _, isAdmin := principal.(entity.AdminPrincipal); !isAdmin {
			response.Forbidden(w, "This resource is restricted to administrators")
			return
		}
		next.ServeHTTP(w, r)
	})
}
