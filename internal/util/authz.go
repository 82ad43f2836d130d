package util

import "studyshare_backend/internal/model"

// RequireOwner is the single ownership policy for every mutating operation:
// the acting identity must equal the row's owning identity. Admins pass.
func RequireOwner(claims *Claims, ownerID string) error {
	if claims == nil {
		return ErrPermissionDenied
	}
	if claims.Role == model.RoleAdmin {
		return nil
	}
	if claims.UserID != ownerID {
		return ErrPermissionDenied
	}
	return nil
}
