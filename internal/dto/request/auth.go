package request

type RegisterRequest struct {
	Username    string  `json:"username" validate:"required,min=3,max=30,alphanum"`
	Email       string  `json:"email" validate:"required,email"`
	Password    string  `json:"password" validate:"required,min=8,max=72"`
	DisplayName *string `json:"display_name,omitempty" validate:"omitempty,max=50"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}
