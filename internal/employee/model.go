package employee

import (
	"fmt"
	"strings"
)

// Permission is a bitmask of access groups. Only the low five bits are used.
type Permission uint8

// Permission groups. HR spans three bits.
const (
	General    Permission = 1
	Management Permission = 2
	HR         Permission = 4 | 8 | 16

	// All is the mask given to the bootstrap record.
	All = HR | Management | General

	validBits = All
)

// Employee is one persisted staff record.
type Employee struct {
	ID          int
	Username    string
	FirstName   string
	LastName    string
	Password    string
	Permissions Permission
}

// New builds an employee that has not been assigned an id yet.
func New(firstName, lastName, username, password string, perms Permission) *Employee {
	return &Employee{
		Username:    username,
		FirstName:   firstName,
		LastName:    lastName,
		Password:    password,
		Permissions: perms,
	}
}

// IsValidLogin reports whether both credentials match exactly.
func (e *Employee) IsValidLogin(username, password string) bool {
	return e.Username == username && e.Password == password
}

// HasPermission reports whether any bit of mask is set on the employee.
// HasPermission(HR) is true when at least one of the three HR bits is set.
func (e *Employee) HasPermission(mask Permission) bool {
	return e.Permissions&mask != 0
}

// HasAll reports whether every bit of mask is set on the employee.
func (e *Employee) HasAll(mask Permission) bool {
	return e.Permissions&mask == mask
}

// UpdatePassword changes the password in memory. Call Save to persist it.
func (e *Employee) UpdatePassword(password string) {
	e.Password = password
}

// UpdatePermissions replaces the permission mask in memory. Call Save to persist it.
func (e *Employee) UpdatePermissions(mask Permission) {
	e.Permissions = mask & validBits
}

// FullName returns "First Last".
func (e *Employee) FullName() string {
	return strings.TrimSpace(e.FirstName + " " + e.LastName)
}

// Summary is the one-line list form: "id: First Last, username".
func (e *Employee) Summary() string {
	return fmt.Sprintf("%d: %s %s, %s", e.ID, e.FirstName, e.LastName, e.Username)
}

// Profile is the multi-line form shown on the file screen.
func (e *Employee) Profile() string {
	var b strings.Builder
	fmt.Fprintf(&b, "ID: %d\n", e.ID)
	fmt.Fprintf(&b, "Name: %s %s\n", e.FirstName, e.LastName)
	fmt.Fprintf(&b, "Username: %s\n", e.Username)
	fmt.Fprintf(&b, "Permissions: %s\n", e.Permissions)
	return b.String()
}

// Mask builds the permission mask chosen on the add and edit screens.
// General is always granted.
func Mask(isHR, isManagement bool) Permission {
	mask := General
	if isHR {
		mask |= HR
	}
	if isManagement {
		mask |= Management
	}
	return mask
}

// String lists the named groups that have at least one bit set.
func (p Permission) String() string {
	var names []string
	if p&HR != 0 {
		names = append(names, "HR")
	}
	if p&Management != 0 {
		names = append(names, "Management")
	}
	if p&General != 0 {
		names = append(names, "General")
	}
	if len(names) == 0 {
		return "none"
	}
	return strings.Join(names, ", ")
}
