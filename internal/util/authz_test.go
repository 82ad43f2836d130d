package util

import (
	"testing"

	"studyshare_backend/internal/model"

	"github.com/stretchr/testify/assert"
)

func TestRequireOwner(t *testing.T) {
	tests := []struct {
		name    string
		claims  *Claims
		ownerID string
		wantErr error
	}{
		{
			name:    "owner passes",
			claims:  &Claims{UserID: "u1", Role: model.RoleStudent},
			ownerID: "u1",
			wantErr: nil,
		},
		{
			name:    "admin passes on someone else's record",
			claims:  &Claims{UserID: "admin", Role: model.RoleAdmin},
			ownerID: "u1",
			wantErr: nil,
		},
		{
			name:    "non-owner denied",
			claims:  &Claims{UserID: "u2", Role: model.RoleStudent},
			ownerID: "u1",
			wantErr: ErrPermissionDenied,
		},
		{
			name:    "tutor role gets no bypass",
			claims:  &Claims{UserID: "u2", Role: model.RoleTutor},
			ownerID: "u1",
			wantErr: ErrPermissionDenied,
		},
		{
			name:    "nil claims denied",
			claims:  nil,
			ownerID: "u1",
			wantErr: ErrPermissionDenied,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := RequireOwner(tt.claims, tt.ownerID)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
