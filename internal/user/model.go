package user

// User is a person acting as customer and/or executor. Role is free text.
type User struct {
	ID        int64  `json:"id" yaml:"id"`
	FirstName string `json:"first_name" yaml:"first_name"`
	LastName  string `json:"last_name" yaml:"last_name"`
	Age       int    `json:"age" yaml:"age"`
	Email     string `json:"email" yaml:"email"`
	Role      string `json:"role" yaml:"role"`
	Phone     string `json:"phone" yaml:"phone"`
}

// Fields is the replaceable part of a user. Every field must be present.
type Fields struct {
	FirstName *string `json:"first_name" binding:"required" example:"Ana"`
	LastName  *string `json:"last_name"  binding:"required" example:"Pérez"`
	Age       *int    `json:"age"        binding:"required" example:"31"`
	Email     *string `json:"email"      binding:"required" example:"ana@example.com"`
	Role      *string `json:"role"       binding:"required" example:"customer"`
	Phone     *string `json:"phone"      binding:"required" example:"+34 600 000 000"`
}

// CreateUserRequest payload of creation; the caller chooses the id.
type CreateUserRequest struct {
	ID *int64 `json:"id" binding:"required" example:"4"`
	Fields
}

// Apply returns a User with id and every field taken from f.
// Call it only after binding validated f.
func (f Fields) Apply(id int64) User {
	return User{
		ID:        id,
		FirstName: *f.FirstName,
		LastName:  *f.LastName,
		Age:       *f.Age,
		Email:     *f.Email,
		Role:      *f.Role,
		Phone:     *f.Phone,
	}
}

func (r CreateUserRequest) User() User { return r.Fields.Apply(*r.ID) }
