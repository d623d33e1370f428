package dto

// SignupFormDTO carries the fields of a POST /signup form submission.
type SignupFormDTO struct {
	Username string `form:"username" validate:"required,max=64"`
	Email    string `form:"email" validate:"omitempty,max=254"`
	Password string `form:"password" validate:"required,max=64"`
}
