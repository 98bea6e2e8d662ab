package user_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	jwtMocks "club/infras/jwt/mocks"
	"club/infras/otel/mocks"
	"club/internal/domains/user/model"
	"club/internal/domains/user/repository"
	"club/internal/domains/user/service"
	userHandler "club/internal/handlers/user"
	"club/shared/constant"
	"club/shared/kv"
	"club/transport/http/middleware"
)

func newHandlerFixture(t *testing.T, users ...model.User) (userHandler.Handler, repository.User) {
	t.Helper()

	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	repo := repository.New(kv.NewMemory(), mocks.NewOtel())
	for _, user := range users {
		require.NoError(t, repo.Insert(context.Background(), user))
	}

	svc := service.New(repo, mocks.NewOtel(), jwtMocks.NewMockJWT(ctrl))
	authRole := middleware.NewAuthRoleMiddleware(jwtMocks.NewMockJWT(ctrl), mocks.NewOtel())

	return userHandler.New(svc, mocks.NewOtel(), authRole), repo
}

func patchUserRequest(targetID, callerID, callerRole, body string) *http.Request {
	request := httptest.NewRequest(http.MethodPatch, "/users/"+targetID, strings.NewReader(body))

	routeCtx := chi.NewRouteContext()
	routeCtx.URLParams.Add(constant.RequestParamID, targetID)

	ctx := context.WithValue(request.Context(), chi.RouteCtxKey, routeCtx)
	ctx = context.WithValue(ctx, constant.ContextKeyUserID, callerID)
	ctx = context.WithValue(ctx, constant.ContextKeyUserRole, callerRole)

	return request.WithContext(ctx)
}

func TestUserHandler_UpdateUser(t *testing.T) {
	admin := model.User{ID: "2", Email: "admin@club.com", Password: "admin123", Role: constant.RoleAdmin, Name: "Club Admin"}
	member := model.User{ID: "3", Email: "user@club.com", Password: "user123", Role: constant.RoleUser, Name: "John Doe"}

	tests := []struct {
		name           string
		targetID       string
		callerID       string
		callerRole     string
		body           string
		wantStatus     int
		wantPassword   string
		wantOwnerOfPwd string
	}{
		{
			name:           "member cannot patch another user's record",
			targetID:       admin.ID,
			callerID:       member.ID,
			callerRole:     constant.RoleUser,
			body:           `{"password":"hijacked1"}`,
			wantStatus:     http.StatusForbidden,
			wantPassword:   "admin123",
			wantOwnerOfPwd: admin.ID,
		},
		{
			name:           "member patches their own record",
			targetID:       member.ID,
			callerID:       member.ID,
			callerRole:     constant.RoleUser,
			body:           `{"password":"newpass1"}`,
			wantStatus:     http.StatusOK,
			wantPassword:   "newpass1",
			wantOwnerOfPwd: member.ID,
		},
		{
			name:           "admin patches another user's record",
			targetID:       member.ID,
			callerID:       admin.ID,
			callerRole:     constant.RoleAdmin,
			body:           `{"name":"Johnny Doe"}`,
			wantStatus:     http.StatusOK,
			wantPassword:   "user123",
			wantOwnerOfPwd: member.ID,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			handler, repo := newHandlerFixture(t, admin, member)

			recorder := httptest.NewRecorder()
			handler.UpdateUser(recorder, patchUserRequest(test.targetID, test.callerID, test.callerRole, test.body))

			assert.Equal(t, test.wantStatus, recorder.Code)

			stored, found := repo.GetByID(context.Background(), test.wantOwnerOfPwd)
			require.True(t, found)
			assert.Equal(t, test.wantPassword, stored.Password)
		})
	}
}
