package service

import "painel/internal/domain/entity"

// Can is the capability check used by every menu, command and route guard.
func Can(role entity.Role, granted entity.Permissions, required ...entity.Permission) bool {
	return entity.Allows(role, granted, required...)
}

// CanProfile applies Can to a cached profile. A nil profile can do nothing.
func CanProfile(profile *entity.UserProfile, required ...entity.Permission) bool {
	if profile == nil {
		return false
	}

	return Can(profile.Role, profile.Permissions, required...)
}
