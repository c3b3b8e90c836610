package entity

// Profile is the public identity of a user. ID sama dengan users.id.
type Profile struct {
	Base
	Username    string  `db:"username"` // unique
	DisplayName *string `db:"display_name"`
	Bio         *string `db:"bio"`
	AvatarURL   *string `db:"avatar_url"`
}

// ProfileBrief is the minimal projection joined into feeds
type ProfileBrief struct {
	Username    string  `db:"username"`
	DisplayName *string `db:"display_name"`
	AvatarURL   *string `db:"avatar_url"`
}
