package api

import (
	"database/sql"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	mockdb "github.com/banachtech/binomial/db/mock"
	db "github.com/banachtech/binomial/db/sqlc"
	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

// testUser builds a registrar row whose bcrypt hash matches apiKey and
// which expires at the given time.
func testUser(t *testing.T, apiKey string, expiredAt time.Time) db.User {
	t.Helper()

	hashed, err := bcrypt.GenerateFromPassword([]byte(apiKey), bcrypt.MinCost)
	require.NoError(t, err)

	return db.User{
		EmailAddress: "test123@example.com",
		Prefix:       strings.Split(apiKey, ".")[0],
		Token:        string(hashed),
		GeneratedAt:  time.Now().Format(Layout2),
		ExpiredAt:    expiredAt.Format(Layout2),
	}
}

func TestAuthMiddleware(t *testing.T) {
	prefix := "3f7a9c21"
	apiKey := "3f7a9c21.9d80e1f4b2a6c5d88e3f01ab45c67d29"
	value := testUser(t, apiKey, time.Now().AddDate(0, 6, 0))
	value2 := testUser(t, apiKey, time.Now().AddDate(0, 0, -7))
	testCases := []struct {
		name          string
		token         string
		buildStubs    func(store *mockdb.MockStore)
		setupAuth     func(t *testing.T, request *http.Request, token string)
		checkResponse func(t *testing.T, recorder *httptest.ResponseRecorder)
	}{
		{
			name:  "OK",
			token: apiKey,
			setupAuth: func(t *testing.T, request *http.Request, token string) {
				authorizationHeader := fmt.Sprintf("%s %s", authorizationTypeBearer, token)
				request.Header.Set(authorizationHeaderKey, authorizationHeader)
			},
			buildStubs: func(store *mockdb.MockStore) {
				store.EXPECT().GetUser(gomock.Any(), gomock.Eq(prefix)).Times(1).Return(value, nil)
			},
			checkResponse: func(t *testing.T, recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusOK, recorder.Code)
			},
		},
		{
			name:  "NO_AUTHORIZATION",
			token: "",
			setupAuth: func(t *testing.T, request *http.Request, token string) {
			},
			buildStubs: func(store *mockdb.MockStore) {
				store.EXPECT().GetUser(gomock.Any(), gomock.Eq(prefix)).Times(0)
			},
			checkResponse: func(t *testing.T, recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusUnauthorized, recorder.Code)
			},
		},
		{
			name:  "UNSUPPORTED_AUTHORIZATION",
			token: apiKey,
			setupAuth: func(t *testing.T, request *http.Request, token string) {
				authorizationHeader := fmt.Sprintf("%s %s", "unsupported", token)
				request.Header.Set(authorizationHeaderKey, authorizationHeader)
			},
			buildStubs: func(store *mockdb.MockStore) {
				store.EXPECT().GetUser(gomock.Any(), gomock.Eq(prefix)).Times(0)
			},
			checkResponse: func(t *testing.T, recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusUnauthorized, recorder.Code)
			},
		},
		{
			name:  "INVALID_AUTHORIZATION_FORMAT",
			token: apiKey,
			setupAuth: func(t *testing.T, request *http.Request, token string) {
				authorizationHeader := fmt.Sprintf("%s %s", "", token)
				request.Header.Set(authorizationHeaderKey, authorizationHeader)
			},
			buildStubs: func(store *mockdb.MockStore) {
				store.EXPECT().GetUser(gomock.Any(), gomock.Eq(prefix)).Times(0)
			},
			checkResponse: func(t *testing.T, recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusUnauthorized, recorder.Code)
			},
		},
		{
			name:  "EXPIRED_TOKEN",
			token: apiKey,
			setupAuth: func(t *testing.T, request *http.Request, token string) {
				authorizationHeader := fmt.Sprintf("%s %s", authorizationTypeBearer, token)
				request.Header.Set(authorizationHeaderKey, authorizationHeader)
			},
			buildStubs: func(store *mockdb.MockStore) {
				store.EXPECT().GetUser(gomock.Any(), gomock.Eq(prefix)).Times(1).Return(value2, nil)
			},
			checkResponse: func(t *testing.T, recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusUnauthorized, recorder.Code)
			},
		},
		{
			name:  "WRONG_PREFIX_LENGTH",
			token: "3f7a9c2.9d80e1f4b2a6c5d88e3f01ab45c67d29",
			setupAuth: func(t *testing.T, request *http.Request, token string) {
				authorizationHeader := fmt.Sprintf("%s %s", authorizationTypeBearer, token)
				request.Header.Set(authorizationHeaderKey, authorizationHeader)
			},
			buildStubs: func(store *mockdb.MockStore) {
				store.EXPECT().GetUser(gomock.Any(), gomock.Eq(prefix)).Times(0)
			},
			checkResponse: func(t *testing.T, recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusUnauthorized, recorder.Code)
			},
		},
		{
			name:  "WRONG_API_KEY",
			token: "3f7a9c21.9d80e1f4b2a6c5d88e3f01ab45c67d2a",
			setupAuth: func(t *testing.T, request *http.Request, token string) {
				authorizationHeader := fmt.Sprintf("%s %s", authorizationTypeBearer, token)
				request.Header.Set(authorizationHeaderKey, authorizationHeader)
			},
			buildStubs: func(store *mockdb.MockStore) {
				store.EXPECT().GetUser(gomock.Any(), gomock.Eq(prefix)).Times(1).Return(value, nil)
			},
			checkResponse: func(t *testing.T, recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusUnauthorized, recorder.Code)
			},
		},
		{
			name:  "USER_NOT_EXISTS",
			token: apiKey,
			setupAuth: func(t *testing.T, request *http.Request, token string) {
				authorizationHeader := fmt.Sprintf("%s %s", authorizationTypeBearer, token)
				request.Header.Set(authorizationHeaderKey, authorizationHeader)
			},
			buildStubs: func(store *mockdb.MockStore) {
				store.EXPECT().GetUser(gomock.Any(), gomock.Eq(prefix)).Times(1).Return(db.User{}, sql.ErrNoRows)
			},
			checkResponse: func(t *testing.T, recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusNotFound, recorder.Code)
			},
		},
		{
			name:  "INTERNAL_SERVER_ERROR",
			token: apiKey,
			setupAuth: func(t *testing.T, request *http.Request, token string) {
				authorizationHeader := fmt.Sprintf("%s %s", authorizationTypeBearer, token)
				request.Header.Set(authorizationHeaderKey, authorizationHeader)
			},
			buildStubs: func(store *mockdb.MockStore) {
				store.EXPECT().GetUser(gomock.Any(), gomock.Eq(prefix)).Times(1).Return(db.User{}, sql.ErrConnDone)
			},
			checkResponse: func(t *testing.T, recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusInternalServerError, recorder.Code)
			},
		},
	}

	for i := range testCases {
		tc := testCases[i]

		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			store := mockdb.NewMockStore(ctrl)
			tc.buildStubs(store)

			server := NewServer(store)

			authPath := "/auth"
			server.router.GET(
				authPath,
				server.authentication,
				func(ctx *gin.Context) {
					ctx.JSON(http.StatusOK, gin.H{})
				},
			)

			recorder := httptest.NewRecorder()
			request, err := http.NewRequest(http.MethodGet, authPath, nil)
			require.NoError(t, err)

			tc.setupAuth(t, request, tc.token)
			server.router.ServeHTTP(recorder, request)
			tc.checkResponse(t, recorder)
		})
	}
}
