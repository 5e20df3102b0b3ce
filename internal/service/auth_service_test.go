package service_test

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/ria/event-planner-website/internal/domain"
	"github.com/ria/event-planner-website/internal/repository/postgres"
	"github.com/ria/event-planner-website/internal/service"
	"github.com/ria/event-planner-website/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuthService_Register(t *testing.T) {
	testDB := testutil.NewTestDB(t)
	repos := postgres.NewRepositories(testDB.DB)
	cfg := testutil.TestConfig()
	authService := service.NewAuthService(repos.User, cfg)
	ctx := context.Background()

	tests := []struct {
		name      string
		input     service.RegisterInput
		setup     func()
		wantErr   error
		checkUser bool
	}{
		{
			name: "successful registration",
			input: service.RegisterInput{
				FirstName: "New",
				LastName:  "User",
				Email:     "new@example.com",
				Password:  "password123",
			},
			checkUser: true,
		},
		{
			name: "duplicate email",
			input: service.RegisterInput{
				FirstName: "Another",
				LastName:  "User",
				Email:     "existing@example.com",
				Password:  "password123",
			},
			setup: func() {
				testutil.NewUserBuilder().
					WithEmail("existing@example.com").
					Build(t, testDB.DB)
			},
			wantErr: domain.ErrEmailExists,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			testDB.Truncate(t)

			if tt.setup != nil {
				tt.setup()
			}

			result, err := authService.Register(ctx, tt.input)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}

			require.NoError(t, err)
			if tt.checkUser {
				assert.NotNil(t, result.User)
				assert.Equal(t, tt.input.Email, result.User.Email)
				assert.NotEmpty(t, result.Token)
				assert.NotEqual(t, tt.input.Password, result.User.PasswordHash)
			}
		})
	}
}

func TestAuthService_Login(t *testing.T) {
	testDB := testutil.NewTestDB(t)
	repos := postgres.NewRepositories(testDB.DB)
	cfg := testutil.TestConfig()
	authService := service.NewAuthService(repos.User, cfg)
	ctx := context.Background()

	user, rawPassword := testutil.NewUserBuilder().
		WithEmail("login@example.com").
		WithPassword("correctpassword").
		Build(t, testDB.DB)

	t.Run("valid credentials", func(t *testing.T) {
		result, err := authService.Login(ctx, service.LoginInput{
			Email:    user.Email,
			Password: rawPassword,
		})
		require.NoError(t, err)
		assert.Equal(t, user.ID, result.User.ID)
		assert.NotEmpty(t, result.Token)
	})

	t.Run("wrong password", func(t *testing.T) {
		_, err := authService.Login(ctx, service.LoginInput{
			Email:    user.Email,
			Password: "wrongpassword",
		})
		assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
	})

	t.Run("unknown email", func(t *testing.T) {
		_, err := authService.Login(ctx, service.LoginInput{
			Email:    "ghost@example.com",
			Password: rawPassword,
		})
		assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
	})
}

func TestAuthService_TokenLifecycle(t *testing.T) {
	testDB := testutil.NewTestDB(t)
	repos := postgres.NewRepositories(testDB.DB)
	ctx := context.Background()

	cfg := testutil.TestConfig()
	cfg.TokenExpiry = time.Hour
	authService := service.NewAuthService(repos.User, cfg)

	result, err := authService.Register(ctx, service.RegisterInput{
		FirstName: "Token",
		LastName:  "Holder",
		Email:     "token@example.com",
		Password:  "password123",
	})
	require.NoError(t, err)

	t.Run("fresh token is accepted", func(t *testing.T) {
		userID, err := authService.ValidateToken(result.Token)
		require.NoError(t, err)
		assert.Equal(t, result.User.ID, userID)
	})

	t.Run("expired token is rejected", func(t *testing.T) {
		expiredCfg := testutil.TestConfig()
		expiredCfg.TokenExpiry = -time.Minute
		expiredService := service.NewAuthService(repos.User, expiredCfg)

		expired, err := expiredService.Login(ctx, service.LoginInput{
			Email:    "token@example.com",
			Password: "password123",
		})
		require.NoError(t, err)

		// Same secret, so only the expiry can fail validation
		_, err = authService.ValidateToken(expired.Token)
		assert.Error(t, err)
	})

	t.Run("tampered signature is rejected", func(t *testing.T) {
		parts := strings.Split(result.Token, ".")
		require.Len(t, parts, 3)

		sig := []byte(parts[2])
		if sig[0] == 'A' {
			sig[0] = 'B'
		} else {
			sig[0] = 'A'
		}

		_, err := authService.ValidateToken(parts[0] + "." + parts[1] + "." + string(sig))
		assert.Error(t, err)
	})

	t.Run("wrong secret is rejected", func(t *testing.T) {
		otherCfg := testutil.TestConfig()
		otherCfg.JWTSecret = "a-different-secret-entirely"
		otherService := service.NewAuthService(repos.User, otherCfg)

		_, err := otherService.ValidateToken(result.Token)
		assert.Error(t, err)
	})
}
