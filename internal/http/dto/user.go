package dto

import (
	"basegraph.app/helpdesk/internal/model"
	"basegraph.app/helpdesk/internal/service"
)

type RegisterRequest struct {
	User struct {
		Username             string `json:"username"`
		Password             string `json:"password"`
		PasswordConfirmation string `json:"password_confirmation"`
	} `json:"user"`
}

type LoginRequest struct {
	User struct {
		Username string `json:"username"`
		Password string `json:"password"`
	} `json:"user"`
}

type UserResponse struct {
	ID           int64   `json:"id,string"`
	Username     string  `json:"username"`
	CreatedAt    string  `json:"created_at"`
	LastActiveAt *string `json:"last_active_at"`
}

func ToUserResponse(u *model.User) UserResponse {
	return UserResponse{
		ID:           u.ID,
		Username:     u.Username,
		CreatedAt:    formatTime(u.CreatedAt),
		LastActiveAt: formatTimePtr(u.LastActiveAt),
	}
}

type SessionResponse struct {
	User  UserResponse `json:"user"`
	Token string       `json:"token"`
}

func ToSessionResponse(s *service.Session) SessionResponse {
	return SessionResponse{
		User:  ToUserResponse(s.User),
		Token: s.Token,
	}
}
