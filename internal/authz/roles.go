package authz

const (
	RoleViewer  = "VIEWER"
	RoleManager = "MANAGER"
	RoleAdmin   = "ADMIN"
)

func IsElevated(role string) bool {
	return role == RoleManager || role == RoleAdmin
}

func IsReadOnly(role string) bool {
	return role == RoleViewer
}
