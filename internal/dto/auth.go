package dto

type RegisterRequestDTO struct {
	Name      string `json:"name" validate:"required,min=2,max=128"`
	FirstName string `json:"first_name" validate:"required,min=2,max=128"`
	Email     string `json:"email" validate:"required,email"`
	Member    bool   `json:"member"`
}

type RegisterResponseDTO struct {
	Message string `json:"message"`
}

type ActivateRequestDTO struct {
	Token    string `json:"token" validate:"required"`
	Password string `json:"password" validate:"required,min=8"`
}

type LoginRequestDTO struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
}

type LoginResponseDTO struct {
	Message string `json:"message"`
}

type ResetRequestDTO struct {
	Email string `json:"email" validate:"required,email"`
}

type ResetPasswordRequestDTO struct {
	Token    string `json:"token" validate:"required"`
	Password string `json:"password" validate:"required,min=8"`
}
