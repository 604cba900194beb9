package user

// UserEditRequest is the admin edit form. Exactly one role survives the edit;
// the previous assignments are removed first.
type UserEditRequest struct {
	Email string `form:"email" json:"email" validate:"required,email"`
	Phone string `form:"phone" json:"phone" validate:"omitempty,max=20"`
	City  string `form:"city" json:"city" validate:"omitempty,max=255"`
	Role  string `form:"role" json:"role" validate:"required,oneof=admin company customer"`
}
