package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"club/infras/jwt"
	jwtMocks "club/infras/jwt/mocks"
	"club/infras/otel/mocks"
	"club/internal/domains/user/model"
	"club/internal/domains/user/model/dto"
	"club/internal/domains/user/repository"
	"club/internal/domains/user/service"
	"club/shared/constant"
	"club/shared/kv"
	"club/shared/timezone"
)

func newFixture(t *testing.T, users ...model.User) (service.User, repository.User, *jwtMocks.MockJWT) {
	t.Helper()

	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	repo := repository.New(kv.NewMemory(), mocks.NewOtel())
	for _, user := range users {
		require.NoError(t, repo.Insert(context.Background(), user))
	}

	mockJWT := jwtMocks.NewMockJWT(ctrl)

	return service.New(repo, mocks.NewOtel(), mockJWT), repo, mockJWT
}

func member() model.User {
	return model.User{
		ID:        "user-1",
		Email:     "user@club.com",
		Password:  "user123",
		Role:      constant.RoleUser,
		Name:      "John Member",
		Phone:     "+1234567892",
		CreatedAt: timezone.Now(),
	}
}

func TestUserService_Login(t *testing.T) {
	tokenPair := &jwt.TokenPair{
		AccessToken:  "access-token",
		RefreshToken: "refresh-token",
		TokenType:    "Bearer",
		ExpiresIn:    900,
	}

	tests := []struct {
		name      string
		req       dto.LoginRequest
		setupMock func(mockJWT *jwtMocks.MockJWT)
		wantErr   bool
	}{
		{
			name: "successful login",
			req:  dto.LoginRequest{Email: "user@club.com", Password: "user123"},
			setupMock: func(mockJWT *jwtMocks.MockJWT) {
				mockJWT.EXPECT().
					GenerateTokenPair("user-1", "user@club.com", constant.RoleUser).
					Return(tokenPair, nil)
			},
			wantErr: false,
		},
		{
			name:      "unknown email",
			req:       dto.LoginRequest{Email: "nobody@club.com", Password: "user123"},
			setupMock: func(mockJWT *jwtMocks.MockJWT) {},
			wantErr:   true,
		},
		{
			name:      "wrong password",
			req:       dto.LoginRequest{Email: "user@club.com", Password: "wrong"},
			setupMock: func(mockJWT *jwtMocks.MockJWT) {},
			wantErr:   true,
		},
		{
			name: "token generation error",
			req:  dto.LoginRequest{Email: "user@club.com", Password: "user123"},
			setupMock: func(mockJWT *jwtMocks.MockJWT) {
				mockJWT.EXPECT().
					GenerateTokenPair("user-1", "user@club.com", constant.RoleUser).
					Return(nil, errors.New("token generation failed"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, _, mockJWT := newFixture(t, member())
			tt.setupMock(mockJWT)

			res, err := svc.Login(context.Background(), tt.req)

			if tt.wantErr {
				assert.Error(t, err)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, "user-1", res.User.ID)
			assert.Equal(t, "access-token", res.AccessToken)
		})
	}
}

func TestUserService_LoginPersistsSanitizedSession(t *testing.T) {
	svc, repo, mockJWT := newFixture(t, member())
	mockJWT.EXPECT().
		GenerateTokenPair(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(&jwt.TokenPair{AccessToken: "a", RefreshToken: "r"}, nil)

	_, err := svc.Login(context.Background(), dto.LoginRequest{Email: "user@club.com", Password: "user123"})
	require.NoError(t, err)

	session, found := repo.GetSession(context.Background())
	require.True(t, found)
	assert.Equal(t, "user-1", session.ID)
	assert.Empty(t, session.Password)
}

func TestUserService_CurrentUserAndLogout(t *testing.T) {
	svc, repo, mockJWT := newFixture(t, member())
	mockJWT.EXPECT().
		GenerateTokenPair(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(&jwt.TokenPair{AccessToken: "a", RefreshToken: "r"}, nil)

	ctx := context.Background()

	_, err := svc.CurrentUser(ctx)
	assert.Error(t, err, "no session yet")

	_, err = svc.Login(ctx, dto.LoginRequest{Email: "user@club.com", Password: "user123"})
	require.NoError(t, err)

	current, err := svc.CurrentUser(ctx)
	require.NoError(t, err)
	assert.Equal(t, "user@club.com", current.Email)

	require.NoError(t, svc.Logout(ctx))

	_, err = svc.CurrentUser(ctx)
	assert.Error(t, err)

	_, found := repo.GetSession(ctx)
	assert.False(t, found)
}

func TestUserService_GetAllStripsPasswords(t *testing.T) {
	svc, _, _ := newFixture(t, member())

	res, err := svc.GetAll(context.Background())

	require.NoError(t, err)
	require.Len(t, res.Users, 1)
	assert.Equal(t, 1, res.TotalData)
	assert.Equal(t, "John Member", res.Users[0].Name)
}

func TestUserService_Update(t *testing.T) {
	name := "Johnny Member"

	tests := []struct {
		name    string
		id      string
		req     dto.UpdateUserRequest
		wantErr bool
	}{
		{
			name: "patch name only",
			id:   "user-1",
			req:  dto.UpdateUserRequest{Name: &name},
		},
		{
			name:    "empty patch rejected",
			id:      "user-1",
			req:     dto.UpdateUserRequest{},
			wantErr: true,
		},
		{
			name:    "unknown user",
			id:      "ghost",
			req:     dto.UpdateUserRequest{Name: &name},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, repo, _ := newFixture(t, member())

			err := svc.Update(context.Background(), tt.req, tt.id)

			if tt.wantErr {
				assert.Error(t, err)

				return
			}

			require.NoError(t, err)

			updated, found := repo.GetByID(context.Background(), tt.id)
			require.True(t, found)
			assert.Equal(t, name, updated.Name)
			assert.Equal(t, "user@club.com", updated.Email, "unpatched field untouched")
			assert.Equal(t, "user123", updated.Password, "unpatched field untouched")
		})
	}
}

func TestUserService_UpdateMirrorsActiveSession(t *testing.T) {
	svc, repo, _ := newFixture(t, member())
	ctx := context.Background()

	require.NoError(t, repo.PutSession(ctx, member().Sanitized()))

	name := "Johnny Member"
	require.NoError(t, svc.Update(ctx, dto.UpdateUserRequest{Name: &name}, "user-1"))

	session, found := repo.GetSession(ctx)
	require.True(t, found)
	assert.Equal(t, name, session.Name)
	assert.Empty(t, session.Password)
}

func TestUserService_AddAdmin(t *testing.T) {
	svc, repo, _ := newFixture(t, member())
	ctx := context.Background()

	res, err := svc.AddAdmin(ctx, dto.CreateAdminRequest{
		Email:    "new-admin@club.com",
		Password: "secret123",
		Name:     "New Admin",
	})
	require.NoError(t, err)
	assert.Equal(t, constant.RoleAdmin, res.Role)
	assert.NotEmpty(t, res.ID)

	stored, found := repo.GetByEmail(ctx, "new-admin@club.com")
	require.True(t, found)
	assert.Equal(t, constant.RoleAdmin, stored.Role)

	// duplicate email
	_, err = svc.AddAdmin(ctx, dto.CreateAdminRequest{
		Email:    "user@club.com",
		Password: "secret123",
		Name:     "Imposter",
	})
	assert.Error(t, err)
}

func TestUserService_RemoveAdmin(t *testing.T) {
	admin := model.User{
		ID:       "admin-1",
		Email:    "admin@club.com",
		Password: "admin123",
		Role:     constant.RoleAdmin,
		Name:     "Jane Admin",
	}

	tests := []struct {
		name    string
		id      string
		wantErr bool
	}{
		{name: "remove admin", id: "admin-1"},
		{name: "unknown id", id: "ghost", wantErr: true},
		{name: "target is not an admin", id: "user-1", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, repo, _ := newFixture(t, member(), admin)

			err := svc.RemoveAdmin(context.Background(), tt.id)

			if tt.wantErr {
				assert.Error(t, err)

				return
			}

			require.NoError(t, err)

			_, found := repo.GetByID(context.Background(), tt.id)
			assert.False(t, found)
		})
	}
}
