package types

// AuthContext carries the authenticated caller into workflow calls. It is
// built once by the auth middleware from verified token claims; nothing below
// the controllers reads framework state.
type AuthContext struct {
	UserID   uint     `json:"user_id"`
	Username string   `json:"username"`
	Roles    []string `json:"roles"`
}

// HasRole reports whether the caller holds the named role.
func (a AuthContext) HasRole(role string) bool {
	for _, r := range a.Roles {
		if r == role {
			return true
		}
	}
	return false
}

type RegisterRequest struct {
	Username    string `json:"username" validate:"required,min=3,max=255"`
	Email       string `json:"email" validate:"required,email"`
	Password    string `json:"password" validate:"required,min=8"`
	City        string `json:"city" validate:"omitempty,max=255"`
	Phone       string `json:"phone" validate:"omitempty,max=20"`
	CompanyName string `json:"company_name" validate:"omitempty,min=1,max=255"`
}

type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}
