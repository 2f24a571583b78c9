package constants

// UserRole is the business role stored on utilisateur.role.
type UserRole string

const (
	RoleClient UserRole = "client"
	RoleAgent  UserRole = "agent"
)

func (r UserRole) String() string {
	return string(r)
}

type APIStatus string

const (
	APIStatusOk    APIStatus = "success"
	APIStatusError APIStatus = "error"
)
