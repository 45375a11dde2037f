package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/m04kA/SMC-CampService/pkg/ptr"
)

func TestNotificationVisibleTo(t *testing.T) {
	roleEventAdmin := RoleEventAdmin
	roleAll := TargetRoleAll

	tests := []struct {
		name         string
		notification Notification
		viewerRole   Role
		viewerEvent  *int64
		visible      bool
	}{
		{
			name:         "system notification visible everywhere",
			notification: Notification{EventID: nil, TargetRole: nil},
			viewerRole:   RoleDeskAdmin,
			viewerEvent:  ptr.Ptr(int64(7)),
			visible:      true,
		},
		{
			name:         "system notification visible without event context",
			notification: Notification{EventID: nil, TargetRole: nil},
			viewerRole:   RoleSuperAdmin,
			viewerEvent:  nil,
			visible:      true,
		},
		{
			name:         "event match",
			notification: Notification{EventID: ptr.Ptr(int64(7))},
			viewerRole:   RoleDeskAdmin,
			viewerEvent:  ptr.Ptr(int64(7)),
			visible:      true,
		},
		{
			name:         "event mismatch",
			notification: Notification{EventID: ptr.Ptr(int64(7))},
			viewerRole:   RoleDeskAdmin,
			viewerEvent:  ptr.Ptr(int64(8)),
			visible:      false,
		},
		{
			name:         "event-scoped hidden without event context",
			notification: Notification{EventID: ptr.Ptr(int64(7))},
			viewerRole:   RoleSuperAdmin,
			viewerEvent:  nil,
			visible:      false,
		},
		{
			name:         "target role ALL visible to any role",
			notification: Notification{TargetRole: &roleAll},
			viewerRole:   RoleDeskAdmin,
			viewerEvent:  nil,
			visible:      true,
		},
		{
			name:         "target role match",
			notification: Notification{TargetRole: &roleEventAdmin},
			viewerRole:   RoleEventAdmin,
			viewerEvent:  nil,
			visible:      true,
		},
		{
			name:         "target role mismatch",
			notification: Notification{TargetRole: &roleEventAdmin},
			viewerRole:   RoleDeskAdmin,
			viewerEvent:  nil,
			visible:      false,
		},
		{
			name: "both scopes must match",
			notification: Notification{
				EventID:    ptr.Ptr(int64(7)),
				TargetRole: &roleEventAdmin,
			},
			viewerRole:  RoleEventAdmin,
			viewerEvent: ptr.Ptr(int64(8)),
			visible:     false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.visible, tt.notification.VisibleTo(tt.viewerRole, tt.viewerEvent))
		})
	}
}

func TestIsValidRole(t *testing.T) {
	assert.True(t, IsValidRole(RoleSuperAdmin))
	assert.True(t, IsValidRole(RoleEventAdmin))
	assert.True(t, IsValidRole(RoleDeskAdmin))
	// ALL валиден только как targetRole, не как роль пользователя
	assert.False(t, IsValidRole(TargetRoleAll))
	assert.False(t, IsValidRole(Role("GUEST")))
}
