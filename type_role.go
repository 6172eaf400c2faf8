package fleetbook

import "fmt"

// Permission names a gated capability. The values are kept identical to
// the legacy store so old user documents remain meaningful.
type Permission string

const (
	// PermIncomes gates the income book (vehicles and incomes).
	PermIncomes Permission = "incassi"
	// PermFines gates the fine register.
	PermFines Permission = "verbali"
	// PermUsers gates user management.
	PermUsers Permission = "users"
	// PermExport gates export and cloud backup.
	PermExport Permission = "export"
	// PermImport gates import and cloud restore.
	PermImport Permission = "import"
)

// Role is one of the office roles. Roles are closed: an unknown role has no
// permissions at all.
type Role string

const (
	RoleAdmin       Role = "admin"
	RoleOfficeAdmin Role = "amministratrice_ufficio"
	RoleOperator    Role = "operatore"
	RoleAccountant  Role = "contabile"
)

// rolePermissions is the role→permission table. There is no hierarchy:
// each role carries its full set.
var rolePermissions = map[Role][]Permission{
	RoleAdmin:       {PermIncomes, PermFines, PermUsers, PermExport, PermImport},
	RoleOfficeAdmin: {PermIncomes, PermFines, PermExport, PermImport},
	RoleOperator:    {PermIncomes, PermExport},
	RoleAccountant:  {PermFines, PermExport},
}

// roleNames maps roles to their display names.
var roleNames = map[Role]string{
	RoleAdmin:       "Amministratore",
	RoleOfficeAdmin: "Amministratrice Ufficio",
	RoleOperator:    "Operatore",
	RoleAccountant:  "Contabile",
}

// Has reports whether the role's permission set contains p.
func (r Role) Has(p Permission) bool {
	for _, q := range rolePermissions[r] {
		if q == p {
			return true
		}
	}
	return false
}

// Name returns the display name for the role, or the raw value for an
// unknown role.
func (r Role) Name() string {
	if name, ok := roleNames[r]; ok {
		return name
	}
	return string(r)
}

// ParseRole parses a string into one of the known roles.
func ParseRole(s string) (Role, error) {
	r := Role(s)
	if _, ok := rolePermissions[r]; !ok {
		return "", fmt.Errorf("unknown role: %q", s)
	}
	return r, nil
}

// Roles returns all known roles in a stable order.
func Roles() []Role {
	return []Role{RoleAdmin, RoleOfficeAdmin, RoleOperator, RoleAccountant}
}
