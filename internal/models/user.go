package models

import "time"

// User is a user record as stored, including the password hash.
type User struct {
	Username  string  `db:"username" json:"username"`
	Password  string  `db:"password" json:"-"`
	FirstName string  `db:"first_name" json:"first_name"`
	LastName  string  `db:"last_name" json:"last_name"`
	Email     string  `db:"email" json:"email"`
	PhotoURL  *string `db:"photo_url" json:"photo_url"`
	IsAdmin   bool    `db:"is_admin" json:"is_admin"`
}

// UserSummary is the listing projection of a user.
// swagger:model UserSummary
type UserSummary struct {
	// example: john_doe
	Username  string `db:"username" json:"username"`
	FirstName string `db:"first_name" json:"first_name"`
	LastName  string `db:"last_name" json:"last_name"`
	Email     string `db:"email" json:"email"`
}

// UserProfile is the public view of a user.
// swagger:model UserProfile
type UserProfile struct {
	Username  string  `db:"username" json:"username"`
	FirstName string  `db:"first_name" json:"first_name"`
	LastName  string  `db:"last_name" json:"last_name"`
	Email     string  `db:"email" json:"email"`
	PhotoURL  *string `db:"photo_url" json:"photo_url"`
}

// UserApplication is one of a user's applications with the job applied to.
// swagger:model UserApplication
type UserApplication struct {
	State     string    `json:"state"`
	CreatedAt time.Time `json:"created_at"`
	Job       Job       `json:"job"`
}

// UserDetail is a user profile with all of the user's applications.
// swagger:model UserDetail
type UserDetail struct {
	UserProfile
	Applications []UserApplication `json:"applications"`
}

// UserFilter holds the optional listing filters.
type UserFilter struct {
	Username  string
	FirstName string
	LastName  string
}

// CreateUserRequest is the body of POST /users.
// swagger:model CreateUserRequest
type CreateUserRequest struct {
	// required: true
	// example: john_doe
	Username string `json:"username" validate:"required,min=1,max=25"`

	// required: true
	// example: secret123
	Password string `json:"password" validate:"required,min=1"`

	// required: true
	FirstName string `json:"first_name" validate:"required"`

	// required: true
	LastName string `json:"last_name" validate:"required"`

	// required: true
	// example: john@example.com
	Email string `json:"email" validate:"required,email"`

	PhotoURL *string `json:"photo_url" validate:"omitempty,url"`

	// Honoured only when the caller is an admin
	IsAdmin bool `json:"is_admin"`

	// Skill tags the user has
	Technologies []string `json:"technologies" validate:"omitempty,dive,required"`
}

// User converts the request into a record. The password is stored as given.
func (r CreateUserRequest) User() User {
	return User{
		Username:  r.Username,
		Password:  r.Password,
		FirstName: r.FirstName,
		LastName:  r.LastName,
		Email:     r.Email,
		PhotoURL:  r.PhotoURL,
		IsAdmin:   r.IsAdmin,
	}
}

// UpdateUserRequest is the body of PATCH /users/{username}.
// swagger:model UpdateUserRequest
type UpdateUserRequest struct {
	Password     *string  `json:"password" validate:"omitempty,min=1"`
	FirstName    *string  `json:"first_name" validate:"omitempty,min=1"`
	LastName     *string  `json:"last_name" validate:"omitempty,min=1"`
	Email        *string  `json:"email" validate:"omitempty,email"`
	PhotoURL     *string  `json:"photo_url" validate:"omitempty,url"`
	Technologies []string `json:"technologies" validate:"omitempty,dive,required"`
}

// Fields returns the supplied column fields. Technologies are not a column.
func (r UpdateUserRequest) Fields() map[string]any {
	fields := make(map[string]any)
	if r.Password != nil {
		fields["password"] = *r.Password
	}
	if r.FirstName != nil {
		fields["first_name"] = *r.FirstName
	}
	if r.LastName != nil {
		fields["last_name"] = *r.LastName
	}
	if r.Email != nil {
		fields["email"] = *r.Email
	}
	if r.PhotoURL != nil {
		fields["photo_url"] = *r.PhotoURL
	}
	return fields
}

// UserResponse wraps a single user profile.
// swagger:model UserResponse
type UserResponse struct {
	User *UserProfile `json:"user"`
}

// UserDetailResponse wraps a user with applications.
// swagger:model UserDetailResponse
type UserDetailResponse struct {
	User *UserDetail `json:"user"`
}

// UsersResponse wraps a user listing.
// swagger:model UsersResponse
type UsersResponse struct {
	Users []UserSummary `json:"users"`
}
