package dto

import (
	"club/infras/jwt"
	"club/internal/domains/user/model"
	"club/shared/constant"
	"club/shared/timezone"
	"time"

	"github.com/google/uuid"
)

type LoginRequest struct {
	Email    string `json:"email"    validate:"required,email,max=100"`
	Password string `json:"password" validate:"required"`
}

type CreateAdminRequest struct {
	Email    string `json:"email"    validate:"required,email,max=100"`
	Password string `json:"password" validate:"required,min=6,max=100"`
	Name     string `json:"name"     validate:"required,max=100"`
	Phone    string `json:"phone"    validate:"omitempty,max=20"`
}

// ToModel builds the admin record. The role is forced regardless of input.
func (c *CreateAdminRequest) ToModel() model.User {
	return model.User{
		ID:        uuid.NewString(),
		Email:     c.Email,
		Password:  c.Password,
		Role:      constant.RoleAdmin,
		Name:      c.Name,
		Phone:     c.Phone,
		CreatedAt: timezone.Now(),
	}
}

// UpdateUserRequest carries field-level patches. Nil pointers leave the
// stored value untouched.
type UpdateUserRequest struct {
	Name     *string `json:"name"     validate:"omitempty,max=100"`
	Phone    *string `json:"phone"    validate:"omitempty,max=20"`
	Email    *string `json:"email"    validate:"omitempty,email,max=100"`
	Password *string `json:"password" validate:"omitempty,min=6,max=100"`
}

func (u *UpdateUserRequest) IsEmpty() bool {
	return u.Name == nil && u.Phone == nil && u.Email == nil && u.Password == nil
}

// Apply merges the patch onto the record.
func (u *UpdateUserRequest) Apply(user model.User) model.User {
	if u.Name != nil {
		user.Name = *u.Name
	}

	if u.Phone != nil {
		user.Phone = *u.Phone
	}

	if u.Email != nil {
		user.Email = *u.Email
	}

	if u.Password != nil {
		user.Password = *u.Password
	}

	return user
}

type UserResponse struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	Name      string    `json:"name"`
	Phone     string    `json:"phone,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

func (r *UserResponse) FromModel(user model.User) {
	r.ID = user.ID
	r.Email = user.Email
	r.Role = user.Role
	r.Name = user.Name
	r.Phone = user.Phone
	r.CreatedAt = user.CreatedAt
}

type LoginResponse struct {
	User         UserResponse `json:"user"`
	AccessToken  string       `json:"access_token"`
	RefreshToken string       `json:"refresh_token"`
	TokenType    string       `json:"token_type"`
	ExpiresIn    int64        `json:"expires_in"`
}

func (r *LoginResponse) FromModel(user model.User, tokenPair *jwt.TokenPair) {
	r.User.FromModel(user)
	r.AccessToken = tokenPair.AccessToken
	r.RefreshToken = tokenPair.RefreshToken
	r.TokenType = tokenPair.TokenType
	r.ExpiresIn = tokenPair.ExpiresIn
}

type RefreshTokenRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

type RefreshTokenResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	TokenType    string `json:"token_type"`
	ExpiresIn    int64  `json:"expires_in"`
}

func (r *RefreshTokenResponse) FromTokenPair(tokenPair *jwt.TokenPair) {
	r.AccessToken = tokenPair.AccessToken
	r.RefreshToken = tokenPair.RefreshToken
	r.TokenType = tokenPair.TokenType
	r.ExpiresIn = tokenPair.ExpiresIn
}

type GetUsersResponse struct {
	Users     []UserResponse `json:"users"`
	TotalData int            `json:"total_data"`
}

func (r *GetUsersResponse) FromModels(models []model.User) {
	r.TotalData = len(models)

	r.Users = make([]UserResponse, len(models))
	for i, mod := range models {
		r.Users[i].FromModel(mod)
	}
}
