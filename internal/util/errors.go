package util

import "errors"

var (
	ErrUserNotFound       = errors.New("用户不存在")
	ErrEmailRegistered    = errors.New("该邮箱已被注册")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidToken       = errors.New("invalid token")
	ErrNotRefreshToken    = errors.New("token is not a refresh token")
	ErrPermissionDenied   = errors.New("permission denied")
	ErrProfileExists      = errors.New("profile already exists for this user")
	ErrInvalidExtension   = errors.New("file extension not allowed")
)
