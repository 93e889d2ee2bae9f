package users

import (
	"lightbnb/internal/api"
	"lightbnb/internal/cache"
	"lightbnb/internal/model"
	"lightbnb/internal/service"
	"lightbnb/internal/store"
)

var (
	hashPassword     = service.HashPassword
	authenticateUser = service.AuthenticateUser
	issueAccessToken = service.IssueAccessToken
	addUser          = store.AddUser
	getUserWithEmail = store.GetUserWithEmail
	getUserWithID    = store.GetUserWithID
	revokeToken      = cache.RevokeToken
)

func toUserResponse(u *model.User) api.UserResponse {
	return api.UserResponse{
		ID:    u.ID,
		Name:  u.Name,
		Email: u.Email,
	}
}
