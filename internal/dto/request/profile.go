package request

type UpdateProfileRequest struct {
	Username    *string `json:"username,omitempty" validate:"omitempty,min=3,max=30,alphanum"`
	DisplayName *string `json:"display_name,omitempty" validate:"omitempty,max=50"`
	Bio         *string `json:"bio,omitempty" validate:"omitempty,max=500"`
	AvatarURL   *string `json:"avatar_url,omitempty" validate:"omitempty,url,max=500"`
}
