package entity

// Partial update patches. Nil fields are left untouched; only the
// whitelisted mutable fields of each entity are patchable at all.

type ProfileUpdate struct {
	Username    *string
	DisplayName *string
	Bio         *string
	AvatarURL   *string
}

type ReviewUpdate struct {
	Rating     *int
	ReviewText *string
	IsPublic   *bool
}

type CustomListUpdate struct {
	Name        *string
	Description *string
	IsPublic    *bool
}
