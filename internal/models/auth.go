package models

type RegisterRequest struct {
	Username string `json:"username" validate:"required,min=3,max=50"`
	Password string `json:"password" validate:"required,min=6"`
}

type RegisterResponse struct {
	Message  string `json:"message"`
	Username string `json:"username"`
}

type MeResponse struct {
	Username string `json:"username"`
	Role     Role   `json:"role"`
}
