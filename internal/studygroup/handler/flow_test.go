package handler_test

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	jwttoken "studyhub/internal/jwt_token"
	"studyhub/internal/platform/httpserver"
	"studyhub/internal/studygroup/handler"
	"studyhub/internal/studygroup/models"
	"studyhub/internal/studygroup/service"
	id "studyhub/pkg/domain"
	"studyhub/pkg/testutil"
)

type client struct {
	t      *testing.T
	router http.Handler
	token  string
	userID id.UserID
}

func (c client) do(method, path string, body any) *httptest.ResponseRecorder {
	c.t.Helper()
	req := testutil.WithBearer(testutil.NewJSONRequest(c.t, method, path, body), c.token)
	return testutil.DoRequest(c.router, req)
}

func newClient(t *testing.T, router http.Handler, jwt *jwttoken.JWTService) client {
	t.Helper()
	userID := id.UserID(uuid.New())
	token, err := jwt.GenerateAccessToken(userID, time.Hour)
	require.NoError(t, err)
	return client{t: t, router: router, token: token, userID: userID}
}

func newFlowRouter(t *testing.T) (http.Handler, *jwttoken.JWTService) {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	jwt := jwttoken.NewJWTService("flow-key", "studyhub", "studyhub-api")
	svc := service.New(service.NewInMemoryStores(time.Second), service.WithLogger(logger))

	router := httpserver.NewRouter(logger, 5*time.Second, nil)
	handler.New(svc, logger, jwttoken.NewMiddlewareValidator(jwt), "").Register(router)
	return router, jwt
}

func TestApprovalFlowOverHTTP(t *testing.T) {
	router, jwt := newFlowRouter(t)
	owner := newClient(t, router, jwt)
	alice := newClient(t, router, jwt)
	bob := newClient(t, router, jwt)

	var base string
	var requestID id.JoinRequestID

	testutil.Given(t, "an owner with a two-seat group", func(t *testing.T) {
		rec := owner.do(http.MethodPost, "/groups", map[string]any{"name": "Compilers", "max_members": 2})
		require.Equal(t, http.StatusCreated, rec.Code)
		group := testutil.UnmarshalResponse[models.Group](t, rec)
		base = "/groups/" + group.ID.String()
	})

	testutil.When(t, "alice applies twice", func(t *testing.T) {
		rec := alice.do(http.MethodPost, base+"/requests", map[string]string{"reason": "exam"})
		require.Equal(t, http.StatusCreated, rec.Code)
		jr := testutil.UnmarshalResponse[models.JoinRequest](t, rec)
		assert.Equal(t, models.JoinRequestPending, jr.Status)
		requestID = jr.ID

		rec = alice.do(http.MethodPost, base+"/requests", nil)
		testutil.AssertStatusAndError(t, rec, http.StatusConflict, "duplicate_pending")
	})

	testutil.Then(t, "only the owner can approve, and only once", func(t *testing.T) {
		approve := base + "/requests/" + requestID.String() + "/approve"

		testutil.AssertStatusAndError(t, alice.do(http.MethodPost, approve, nil), http.StatusForbidden, "forbidden")
		require.Equal(t, http.StatusOK, owner.do(http.MethodPost, approve, nil).Code)
		testutil.AssertStatusAndError(t, owner.do(http.MethodPost, approve, nil), http.StatusConflict, "already_terminal")

		rec := alice.do(http.MethodGet, base+"/requests/me", nil)
		assert.JSONEq(t, `{"status":"APPROVED"}`, rec.Body.String())
	})

	testutil.Then(t, "the group is full and the roster accounts for every seat", func(t *testing.T) {
		testutil.AssertStatusAndError(t, bob.do(http.MethodPost, base+"/join", nil), http.StatusConflict, "group_full")

		rec := owner.do(http.MethodGet, base+"/members", nil)
		require.Equal(t, http.StatusOK, rec.Code)
		roster := testutil.UnmarshalResponse[struct {
			models.Roster
			Seats []models.Seat `json:"seats"`
		}](t, rec)
		assert.Equal(t, 2, roster.Group.CurrentMembers)
		require.Len(t, roster.Members, 1)
		assert.Equal(t, alice.userID, roster.Members[0].UserID)
		require.Len(t, roster.Seats, 2)
		assert.Equal(t, models.RoleOwner, roster.Seats[0].Role)
		assert.Equal(t, alice.userID, roster.Seats[1].UserID)
		assert.Equal(t, models.RoleMember, roster.Seats[1].Role)

		testutil.AssertStatusAndError(t, owner.do(http.MethodPost, base+"/leave", nil), http.StatusForbidden, "owner_cannot_leave")
	})
}

func TestRejectsExpiredToken(t *testing.T) {
	router, jwt := newFlowRouter(t)
	token, err := jwt.GenerateAccessToken(id.UserID(uuid.New()), -time.Minute)
	require.NoError(t, err)

	req := testutil.WithBearer(testutil.NewJSONRequest(t, http.MethodGet, "/groups/owned", nil), token)
	testutil.AssertStatusAndError(t, testutil.DoRequest(router, req), http.StatusUnauthorized, "unauthorized")
}
