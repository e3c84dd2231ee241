package http

import (
	"flight-concierge/internal/model"
	"flight-concierge/internal/user"
	"flight-concierge/pkg/response"
)

// --- Request DTOs ---

type registerReq struct {
	Email    string `json:"email"    binding:"required,email"`
	Password string `json:"password" binding:"required,min=8,max=72"`
	Name     string `json:"name"     binding:"required,min=1,max=255"`
}

func (r registerReq) toInput() user.RegisterInput {
	return user.RegisterInput{
		Email:    r.Email,
		Password: r.Password,
		Name:     r.Name,
	}
}

type loginReq struct {
	Email    string `json:"email"    binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

func (r loginReq) toInput() user.LoginInput {
	return user.LoginInput{
		Email:    r.Email,
		Password: r.Password,
	}
}

// --- Response DTOs ---

type userResp struct {
	ID        string            `json:"id"`
	Email     string            `json:"email"`
	Name      string            `json:"name"`
	CreatedAt response.DateTime `json:"created_at"`
}

func newUserResp(u model.User) userResp {
	return userResp{
		ID:        u.ID,
		Email:     u.Email,
		Name:      u.Name,
		CreatedAt: response.DateTime(u.CreatedAt),
	}
}

type authResp struct {
	User  userResp `json:"user"`
	Token string   `json:"token"`
}

func (h *handler) newAuthResp(out user.AuthOutput) authResp {
	return authResp{
		User:  newUserResp(out.User),
		Token: out.Token,
	}
}
