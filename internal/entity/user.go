package entity

import (
	"slices"

	"github.com/gofrs/uuid/v5"
	"github.com/golang-jwt/jwt/v4"
)

type Role string

const (
	RoleSuperMasterAdmin Role = "super_master_admin"
	RoleClinicAdmin      Role = "clinic_admin"
	RoleDoctor           Role = "doctor"
	RoleNurse            Role = "nurse"
	RoleBilling          Role = "billing"
	RolePharmacy         Role = "pharmacy"
	RolePatient          Role = "patient"
)

func (r Role) String() string {
	return string(r)
}

// User is the authenticated actor of a request.
type User struct {
	ID       uuid.UUID
	Name     string
	Email    string
	Role     Role
	ClinicID uuid.UUID // uuid.Nil for platform-wide administrators
}

func (u User) HasRole(roles ...Role) bool {
	return slices.Contains(roles, u.Role)
}

func (u User) IsDoctor() bool {
	return u.Role == RoleDoctor
}

// UserClaims is the access token payload. The subject is the user id.
type UserClaims struct {
	Role     Role          `json:"role"`
	ClinicID uuid.NullUUID `json:"clinicId"`
	Email    string        `json:"email"`
	Name     string        `json:"name"`
	jwt.RegisteredClaims
}

type Patient struct {
	ID              uuid.UUID
	ClinicID        uuid.UUID
	FirstName       string
	LastName        string
	Email           string
	Phone           string
	AssignedDoctors []uuid.UUID // user ids of doctors
}

func (p Patient) FullName() string {
	return p.FirstName + " " + p.LastName
}

func (p Patient) IsAssignedTo(doctorUserID uuid.UUID) bool {
	return slices.Contains(p.AssignedDoctors, doctorUserID)
}

type Doctor struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	ClinicID  uuid.UUID
	FirstName string
	LastName  string
	Phone     string
	Email     string
	Specialty string
}

func (d Doctor) FullName() string {
	return "Dr. " + d.FirstName + " " + d.LastName
}

// Notification is a best-effort message to staff outside the request flow.
type Notification struct {
	Key        string
	Subject    string
	Message    string
	Recipients []string
}
