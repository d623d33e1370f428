package dto

// LoginFormDTO carries the fields of a POST /processLogin form submission.
type LoginFormDTO struct {
	Username string `form:"username" validate:"required,max=64"`
	Password string `form:"password" validate:"required,max=64"`
}
