package domain

// UserRole represents the role of a local user
type UserRole string

const (
	UserRoleAdmin   UserRole = "admin"
	UserRoleUser    UserRole = "user"
	UserRolePending UserRole = "pending"
)

// LocalUser is the verified caller identity supplied by the platform's
// authentication layer. It is owned and lifecycle-managed there; this
// service only reads it.
type LocalUser struct {
	ID    string   `json:"id"`
	Email string   `json:"email"`
	Name  string   `json:"name"`
	Role  UserRole `json:"role"`
}

// IsAdmin reports whether the user holds the admin role
func (u *LocalUser) IsAdmin() bool {
	return u != nil && u.Role == UserRoleAdmin
}

// ProvisionRequest is the admin request to provision a Confidios identity
// for a local user.
type ProvisionRequest struct {
	UserID          string `json:"user_id" validate:"required"`
	Name            string `json:"name" validate:"required"`
	Email           string `json:"email" validate:"required,email"`
	Role            string `json:"role" validate:"required,user_role"`
	ProfileImageURL string `json:"profile_image_url"`
}
