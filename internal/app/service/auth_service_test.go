package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mehedihb/kagojghor-backend/internal/app/model"
	"github.com/mehedihb/kagojghor-backend/internal/app/repository"
	"github.com/mehedihb/kagojghor-backend/internal/db"
)

func setupAuthServiceTest(t *testing.T) AuthService {
	testDB, err := db.SetupTestDB()
	require.NoError(t, err)
	t.Cleanup(func() { db.CleanupTestDB(testDB) })

	userRepo := repository.NewUserRepository(testDB)
	return NewAuthService(
		userRepo,
		"test-jwt-secret",
		15*time.Minute,
		7*24*time.Hour,
	)
}

func TestAuthService_Register(t *testing.T) {
	authService := setupAuthServiceTest(t)

	tests := []struct {
		name     string
		email    string
		password string
		userName string
		phone    string
		role     model.UserRole
		wantRole model.UserRole
		wantErr  error
	}{
		{
			name:     "Valid registration",
			email:    "operator@kagojghor.com",
			password: "password123",
			userName: "রফিকুল ইসলাম",
			phone:    "01712-345678",
			wantRole: model.RoleOperator,
		},
		{
			name:     "Explicit admin role",
			email:    "admin2@kagojghor.com",
			password: "password123",
			userName: "দ্বিতীয় অ্যাডমিন",
			role:     model.RoleAdmin,
			wantRole: model.RoleAdmin,
		},
		{
			name:     "Duplicate email",
			email:    "operator@kagojghor.com",
			password: "password456",
			userName: "অন্য কেউ",
			wantErr:  ErrEmailAlreadyExists,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			user, tokens, err := authService.Register(
				tt.email,
				tt.password,
				tt.userName,
				tt.phone,
				tt.role,
			)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, user)
				assert.Nil(t, tokens)
			} else {
				require.NoError(t, err)
				require.NotNil(t, user)
				require.NotNil(t, tokens)
				assert.Equal(t, tt.email, user.Email)
				assert.Equal(t, tt.userName, user.Name)
				assert.Equal(t, tt.wantRole, user.Role)
				assert.NotEmpty(t, tokens.AccessToken)
				assert.NotEmpty(t, tokens.RefreshToken)
			}
		})
	}
}

func TestAuthService_Login(t *testing.T) {
	authService := setupAuthServiceTest(t)

	_, _, err := authService.Register("operator@kagojghor.com", "password123", "রফিকুল ইসলাম", "", model.RoleOperator)
	require.NoError(t, err)

	tests := []struct {
		name     string
		email    string
		password string
		wantErr  error
	}{
		{
			name:     "Valid credentials",
			email:    "operator@kagojghor.com",
			password: "password123",
		},
		{
			name:     "Wrong password",
			email:    "operator@kagojghor.com",
			password: "wrong-password",
			wantErr:  ErrInvalidCredentials,
		},
		{
			name:     "Unknown email",
			email:    "nobody@kagojghor.com",
			password: "password123",
			wantErr:  ErrInvalidCredentials,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			user, tokens, err := authService.Login(tt.email, tt.password)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, user)
				assert.Nil(t, tokens)
			} else {
				require.NoError(t, err)
				require.NotNil(t, user)
				require.NotNil(t, tokens)
				assert.Equal(t, tt.email, user.Email)
			}
		})
	}
}

func TestAuthService_ChangePassword(t *testing.T) {
	authService := setupAuthServiceTest(t)

	user, _, err := authService.Register("operator@kagojghor.com", "password123", "রফিকুল ইসলাম", "", model.RoleOperator)
	require.NoError(t, err)

	err = authService.ChangePassword(user.ID, "wrong-password", "newpassword123")
	assert.ErrorIs(t, err, ErrWrongPassword)

	err = authService.ChangePassword(user.ID, "password123", "newpassword123")
	require.NoError(t, err)

	_, _, err = authService.Login("operator@kagojghor.com", "newpassword123")
	assert.NoError(t, err)

	_, _, err = authService.Login("operator@kagojghor.com", "password123")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestAuthService_UpdateProfile(t *testing.T) {
	authService := setupAuthServiceTest(t)

	user, _, err := authService.Register("operator@kagojghor.com", "password123", "পুরনো নাম", "", model.RoleOperator)
	require.NoError(t, err)

	updated, err := authService.UpdateProfile(user.ID, "নতুন নাম", "01898-765432")
	require.NoError(t, err)
	assert.Equal(t, "নতুন নাম", updated.Name)
	assert.Equal(t, "01898-765432", updated.Phone)

	_, err = authService.UpdateProfile(9999, "কেউ না", "")
	assert.ErrorIs(t, err, ErrUserNotFound)
}
