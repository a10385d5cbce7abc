package leave_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"leavedesk/internal/leave"
	leaveerrors "leavedesk/internal/leave/errors"
	"leavedesk/internal/leavetype"
	"leavedesk/internal/policy"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

type apiError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type apiEnvelope struct {
	Ok    bool            `json:"ok"`
	Data  json.RawMessage `json:"data"`
	Error *apiError       `json:"error"`
}

func decodeEnvelope(t *testing.T, body []byte) apiEnvelope {
	t.Helper()
	var env apiEnvelope
	err := json.Unmarshal(body, &env)
	assert.NoError(t, err)
	return env
}

type fakeLeaveService struct {
	submitFn        func(ctx context.Context, userID string, role policy.Role, req leave.CreateLeaveRequest) (leave.LeaveResponse, error)
	getOwnFn        func(ctx context.Context, userID string) ([]leave.LeaveResponse, error)
	assignedTypesFn func(ctx context.Context, userID string) ([]leavetype.LeaveTypeResponse, error)
	cancelFn        func(ctx context.Context, userID, leaveID string) (leave.LeaveResponse, error)
}

func (f *fakeLeaveService) Submit(ctx context.Context, userID string, role policy.Role, req leave.CreateLeaveRequest) (leave.LeaveResponse, error) {
	return f.submitFn(ctx, userID, role, req)
}
func (f *fakeLeaveService) GetOwn(ctx context.Context, userID string) ([]leave.LeaveResponse, error) {
	return f.getOwnFn(ctx, userID)
}
func (f *fakeLeaveService) AssignedTypes(ctx context.Context, userID string) ([]leavetype.LeaveTypeResponse, error) {
	return f.assignedTypesFn(ctx, userID)
}
func (f *fakeLeaveService) Cancel(ctx context.Context, userID, leaveID string) (leave.LeaveResponse, error) {
	return f.cancelFn(ctx, userID, leaveID)
}

func setupLeaveRouter(svc leave.Service, userID string, role policy.Role) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()

	identityMW := func(c *gin.Context) {
		c.Set("user_id", userID)
		c.Set("role", role.String())
		c.Next()
	}
	noopIdemp := func(c *gin.Context) { c.Next() }

	api := r.Group("/api")
	leave.RegisterRoutes(api, leave.NewHandler(svc), identityMW, noopIdemp)
	return r
}

func TestLeaveHandler_Submit(t *testing.T) {
	userID := uuid.New().String()

	t.Run("success", func(t *testing.T) {
		typeID := uuid.New().String()
		svc := &fakeLeaveService{
			submitFn: func(ctx context.Context, gotUserID string, role policy.Role, req leave.CreateLeaveRequest) (leave.LeaveResponse, error) {
				assert.Equal(t, userID, gotUserID)
				assert.Equal(t, policy.RoleMember, role)
				assert.Equal(t, typeID, req.LeaveTypeID)
				return leave.LeaveResponse{
					ID:                   uuid.New().String(),
					UserID:               gotUserID,
					LeaveTypeID:          req.LeaveTypeID,
					StartDate:            req.StartDate,
					EndDate:              req.EndDate,
					Status:               leave.StatusPending,
					ApproverRequiredRole: "MANAGER",
				}, nil
			},
		}
		r := setupLeaveRouter(svc, userID, policy.RoleMember)

		body := `{"leave_type_id":"` + typeID + `","start_date":"2026-09-01","end_date":"2026-09-03","reason":"trip"}`
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/leaves", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusCreated, w.Code)
		env := decodeEnvelope(t, w.Body.Bytes())
		assert.True(t, env.Ok)
	})

	t.Run("admin gets forbidden with exact message", func(t *testing.T) {
		svc := &fakeLeaveService{
			submitFn: func(ctx context.Context, userID string, role policy.Role, req leave.CreateLeaveRequest) (leave.LeaveResponse, error) {
				return leave.LeaveResponse{}, leaveerrors.ErrAdminCannotApply
			},
		}
		r := setupLeaveRouter(svc, userID, policy.RoleAdmin)

		body := `{"leave_type_id":"` + uuid.New().String() + `","start_date":"2026-09-01","end_date":"2026-09-03"}`
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/leaves", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusForbidden, w.Code)
		env := decodeEnvelope(t, w.Body.Bytes())
		assert.False(t, env.Ok)
		assert.Equal(t, "Admins cannot apply for leave", env.Error.Message)
	})

	t.Run("missing required fields", func(t *testing.T) {
		svc := &fakeLeaveService{}
		r := setupLeaveRouter(svc, userID, policy.RoleMember)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/leaves", strings.NewReader(`{}`))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		env := decodeEnvelope(t, w.Body.Bytes())
		assert.Equal(t, "VALIDATION_ERROR", env.Error.Code)
	})
}

func TestLeaveHandler_GetOwn(t *testing.T) {
	userID := uuid.New().String()

	svc := &fakeLeaveService{
		getOwnFn: func(ctx context.Context, gotUserID string) ([]leave.LeaveResponse, error) {
			assert.Equal(t, userID, gotUserID)
			return []leave.LeaveResponse{
				{ID: uuid.New().String(), Status: leave.StatusPending, LeaveTypeName: "Annual Leave"},
			}, nil
		},
	}
	r := setupLeaveRouter(svc, userID, policy.RoleMember)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/leaves", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	env := decodeEnvelope(t, w.Body.Bytes())
	assert.True(t, env.Ok)

	var list []leave.LeaveResponse
	assert.NoError(t, json.Unmarshal(env.Data, &list))
	assert.Len(t, list, 1)
	assert.Equal(t, "Annual Leave", list[0].LeaveTypeName)
}

func TestLeaveHandler_AssignedTypes(t *testing.T) {
	userID := uuid.New().String()

	svc := &fakeLeaveService{
		assignedTypesFn: func(ctx context.Context, gotUserID string) ([]leavetype.LeaveTypeResponse, error) {
			return []leavetype.LeaveTypeResponse{
				{ID: uuid.New().String(), Name: "Sick Leave", Active: true},
			}, nil
		},
	}
	r := setupLeaveRouter(svc, userID, policy.RoleMember)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/leaves/types", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestLeaveHandler_Cancel(t *testing.T) {
	userID := uuid.New().String()
	leaveID := uuid.New().String()

	t.Run("success", func(t *testing.T) {
		svc := &fakeLeaveService{
			cancelFn: func(ctx context.Context, gotUserID, gotLeaveID string) (leave.LeaveResponse, error) {
				assert.Equal(t, userID, gotUserID)
				assert.Equal(t, leaveID, gotLeaveID)
				return leave.LeaveResponse{ID: gotLeaveID, Status: leave.StatusCancelled}, nil
			},
		}
		r := setupLeaveRouter(svc, userID, policy.RoleMember)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodDelete, "/api/leaves/"+leaveID, nil)
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("foreign leave looks missing", func(t *testing.T) {
		svc := &fakeLeaveService{
			cancelFn: func(ctx context.Context, userID, leaveID string) (leave.LeaveResponse, error) {
				return leave.LeaveResponse{}, leaveerrors.ErrLeaveNotFound
			},
		}
		r := setupLeaveRouter(svc, userID, policy.RoleMember)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodDelete, "/api/leaves/"+leaveID, nil)
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("decided leave conflicts", func(t *testing.T) {
		svc := &fakeLeaveService{
			cancelFn: func(ctx context.Context, userID, leaveID string) (leave.LeaveResponse, error) {
				return leave.LeaveResponse{}, leaveerrors.ErrNotCancellable
			},
		}
		r := setupLeaveRouter(svc, userID, policy.RoleMember)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodDelete, "/api/leaves/"+leaveID, nil)
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusConflict, w.Code)
	})
}
