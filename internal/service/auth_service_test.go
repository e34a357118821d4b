package service

import (
	"errors"
	"learnsphere_backend/internal/config"
	"learnsphere_backend/internal/model"
	"learnsphere_backend/internal/repository"
	"learnsphere_backend/internal/util"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func newAuthService(db *gorm.DB) *AuthService {
	cfg := &config.Config{}
	cfg.JWT.Secret = "unit-test-secret-key-of-sufficient-length"
	cfg.JWT.ExpireTime = time.Hour
	cfg.JWT.RefreshExpireTime = 24 * time.Hour
	return NewAuthService(repository.NewUserRepository(db), cfg)
}

func TestRegisterHashesPasswordAndAllocatesReferralCode(t *testing.T) {
	db := setupTestDB(t)
	svc := newAuthService(db)

	user := &model.User{Username: "jdoe", Email: "JDoe@Example.COM", Password: "s3cretpass"}
	require.NoError(t, svc.Register(user))

	assert.Equal(t, "jdoe@example.com", user.Email)
	assert.NotEqual(t, "s3cretpass", user.Password)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.Password), []byte("s3cretpass")))
	assert.Len(t, user.ReferralCode, util.ReferralCodeLength)
	assert.Equal(t, model.DefaultPicture, user.Picture)
}

func TestRegisterRejectsDuplicateEmail(t *testing.T) {
	db := setupTestDB(t)
	svc := newAuthService(db)

	first := &model.User{Username: "a", Email: "dup@example.com", Password: "password1"}
	require.NoError(t, svc.Register(first))

	second := &model.User{Username: "b", Email: "DUP@example.com", Password: "password2"}
	err := svc.Register(second)
	assert.True(t, errors.Is(err, util.ErrEmailRegistered))
}

func TestLoginIssuesTokenPair(t *testing.T) {
	db := setupTestDB(t)
	svc := newAuthService(db)

	user := &model.User{Username: "jdoe", Email: "jdoe@example.com", Password: "s3cretpass", IsStudent: true}
	require.NoError(t, svc.Register(user))
	// Register 之后补上角色位
	require.NoError(t, db.Model(user).Update("is_student", true).Error)

	tokens, err := svc.Login("jdoe@example.com", "s3cretpass")
	require.NoError(t, err)
	require.NotEmpty(t, tokens.AccessToken)
	require.NotEmpty(t, tokens.RefreshToken)

	claims, err := util.ParseJWT(tokens.AccessToken, svc.Cfg.JWT.Secret)
	require.NoError(t, err)
	assert.Equal(t, user.ID, claims.UserID)
	assert.Equal(t, util.TokenTypeAccess, claims.TokenType)

	refreshClaims, err := util.ParseJWT(tokens.RefreshToken, svc.Cfg.JWT.Secret)
	require.NoError(t, err)
	assert.Equal(t, util.TokenTypeRefresh, refreshClaims.TokenType)
}

func TestLoginRejectsWrongPassword(t *testing.T) {
	db := setupTestDB(t)
	svc := newAuthService(db)

	user := &model.User{Username: "jdoe", Email: "jdoe@example.com", Password: "s3cretpass"}
	require.NoError(t, svc.Register(user))

	_, err := svc.Login("jdoe@example.com", "wrongpass")
	assert.True(t, errors.Is(err, util.ErrInvalidCredentials))

	_, err = svc.Login("ghost@example.com", "s3cretpass")
	assert.True(t, errors.Is(err, util.ErrInvalidCredentials))
}

func TestRefreshRejectsAccessToken(t *testing.T) {
	db := setupTestDB(t)
	svc := newAuthService(db)

	user := &model.User{Username: "jdoe", Email: "jdoe@example.com", Password: "s3cretpass"}
	require.NoError(t, svc.Register(user))

	tokens, err := svc.Login("jdoe@example.com", "s3cretpass")
	require.NoError(t, err)

	// 刷新令牌换新令牌对
	renewed, err := svc.Refresh(tokens.RefreshToken)
	require.NoError(t, err)
	assert.NotEmpty(t, renewed.AccessToken)

	// 访问令牌不能用于刷新
	_, err = svc.Refresh(tokens.AccessToken)
	assert.True(t, errors.Is(err, util.ErrNotRefreshToken))
}
