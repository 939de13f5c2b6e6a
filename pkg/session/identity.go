package session

import "context"

// Role is the account role assigned by the server.
type Role string

const (
	RoleOwner Role = "owner"
	RoleStaff Role = "staff"
)

// Identity is the safe profile projection kept in memory and persisted in
// the snapshot. It deliberately has no field for tokens or credentials.
type Identity struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Role         Role   `json:"role"`
	BusinessID   string `json:"businessId"`
	BusinessName string `json:"businessName"`
	Email        string `json:"email"`
}

// Profile is the raw account payload returned by the auth endpoints. The
// server may include fields the client must never retain; Store reduces it
// to the Identity projection before storing or persisting.
type Profile struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Role         Role   `json:"role"`
	BusinessID   string `json:"businessId"`
	BusinessName string `json:"businessName"`
	Email        string `json:"email"`
	// Token is dropped during projection. Some deployments echo it in the
	// login response even though authentication is cookie-based.
	Token string `json:"token,omitempty"`
}

// identity extracts the safe projection.
func (p Profile) identity() Identity {
	return Identity{
		ID:           p.ID,
		Name:         p.Name,
		Role:         p.Role,
		BusinessID:   p.BusinessID,
		BusinessName: p.BusinessName,
		Email:        p.Email,
	}
}

// Credentials are the login request fields.
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Registration are the account creation request fields.
type Registration struct {
	Name         string `json:"name"`
	Email        string `json:"email"`
	Password     string `json:"password"`
	BusinessName string `json:"businessName"`
}

// AuthClient performs the auth endpoint calls the store depends on. The
// modules/auth package provides the production implementation.
type AuthClient interface {
	Login(ctx context.Context, creds Credentials) (Profile, error)
	Register(ctx context.Context, reg Registration) (Profile, error)
	CurrentProfile(ctx context.Context) (Profile, error)
	Logout(ctx context.Context) error
	LogoutAll(ctx context.Context) error
}
