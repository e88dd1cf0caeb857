package model

import "time"

// Role is the authorization level of a user. Employees and managers share
// elevated read and tracking-update privileges; catalog and user
// administration is manager-only.
type Role string

const (
	RoleCustomer Role = "customer"
	RoleEmployee Role = "employee"
	RoleManager  Role = "manager"
)

// Valid reports whether r is one of the three known roles.
func (r Role) Valid() bool {
	return r == RoleCustomer || r == RoleEmployee || r == RoleManager
}

// Staff reports whether the role carries the elevated read and
// tracking-update privileges shared by employees and managers.
func (r Role) Staff() bool {
	return r == RoleEmployee || r == RoleManager
}

// User represents an application user record as stored in the `users`
// table. Each field corresponds to a column. The password is stored only
// as a bcrypt hash; the plaintext never leaves the login prompt.
//
// Fields:
//  Login           – unique login, primary key.
//  PasswordHash    – bcrypt hashed password.
//  Role            – one of customer, employee, manager.
//  FavGames        – free-text comma-joined list of favorite games.
//  PhoneNum        – contact phone number.
//  NumOverdueGames – count of overdue rentals, never negative.
//  CreatedAt       – timestamp of registration.
//  UpdatedAt       – timestamp of last update.
type User struct {
	Login           string    // users.login
	PasswordHash    string    // users.password_hash
	Role            Role      // users.role
	FavGames        string    // users.fav_games
	PhoneNum        string    // users.phone_num
	NumOverdueGames uint32    // users.num_overdue_games
	CreatedAt       time.Time // users.created_at
	UpdatedAt       time.Time // users.updated_at
}
