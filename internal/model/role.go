package model

// Role is the dashboard role granted to an admin account.
type Role string

const (
	RoleSuperAdmin    Role = "Super Admin"
	RoleAdmin         Role = "Admin"
	RoleCashier       Role = "Cashier"
	RoleManager       Role = "Manager"
	RoleCEO           Role = "CEO"
	RoleDriver        Role = "Driver"
	RoleSecurityGuard Role = "Security Guard"
	RoleAccountant    Role = "Accountant"
)

// Roles lists every role an account may hold, in display order.
var Roles = []Role{
	RoleSuperAdmin,
	RoleAdmin,
	RoleCashier,
	RoleManager,
	RoleCEO,
	RoleDriver,
	RoleSecurityGuard,
	RoleAccountant,
}

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	for _, known := range Roles {
		if r == known {
			return true
		}
	}
	return false
}
