package handler

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tallyapp/tally/internal/auth"
	"github.com/tallyapp/tally/internal/middleware"
	"github.com/tallyapp/tally/internal/models"
	"github.com/tallyapp/tally/internal/service"
	"github.com/tallyapp/tally/internal/storage/sqlite"
)

type apiTest struct {
	t      *testing.T
	server *httptest.Server
	tokens map[string]string // email -> bearer token
	ids    map[string]string // email -> member ID
}

func newAPITest(t *testing.T) *apiTest {
	t.Helper()

	store, err := sqlite.New(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })

	tokens := auth.NewJWTManager("handler-test-secret-key", time.Hour)
	svcs := Services{
		Auth:        service.NewAuthService(auth.NewPasswordAuthenticator(store), tokens),
		Groups:      service.NewGroupService(store),
		Expenses:    service.NewExpenseService(store),
		Settlements: service.NewSettlementService(store),
		Ledger:      service.NewLedgerService(store),
	}
	limiter := middleware.NewRateLimiter(1000, 100)
	t.Cleanup(limiter.Stop)

	e := echo.New()
	RegisterRoutes(e, svcs, tokens, limiter)

	server := httptest.NewServer(e)
	t.Cleanup(server.Close)

	return &apiTest{
		t:      t,
		server: server,
		tokens: make(map[string]string),
		ids:    make(map[string]string),
	}
}

func (a *apiTest) do(method, path, token string, body any) (*http.Response, []byte) {
	a.t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(a.t, json.NewEncoder(&buf).Encode(body))
	}
	req, err := http.NewRequest(method, a.server.URL+path, &buf)
	require.NoError(a.t, err)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}

	resp, err := http.DefaultClient.Do(req)
	require.NoError(a.t, err)
	defer resp.Body.Close()

	var out bytes.Buffer
	_, err = out.ReadFrom(resp.Body)
	require.NoError(a.t, err)
	return resp, out.Bytes()
}

func (a *apiTest) register(name string) {
	a.t.Helper()

	email := fmt.Sprintf("%s@example.com", name)
	resp, body := a.do(http.MethodPost, "/api/auth/register", "", map[string]string{
		"name": name, "email": email, "password": "correct-horse",
	})
	require.Equal(a.t, http.StatusCreated, resp.StatusCode, string(body))

	var session struct {
		Member models.Member `json:"member"`
		Token  string        `json:"token"`
	}
	require.NoError(a.t, json.Unmarshal(body, &session))
	a.tokens[email] = session.Token
	a.ids[email] = session.Member.ID
}

func TestAPIBalancesFlow(t *testing.T) {
	a := newAPITest(t)
	for _, name := range []string{"alice", "bob", "carol"} {
		a.register(name)
	}
	alice := a.tokens["alice@example.com"]

	// Alice creates the group with all three members.
	resp, body := a.do(http.MethodPost, "/api/groups", alice, map[string]any{
		"name":          "Trip",
		"home_currency": "USD",
		"member_ids":    []string{a.ids["bob@example.com"], a.ids["carol@example.com"]},
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode, string(body))
	var group models.Group
	require.NoError(t, json.Unmarshal(body, &group))
	require.Len(t, group.MemberIDs, 3)

	// Alice pays $30 split equally.
	resp, body = a.do(http.MethodPost, "/api/groups/"+group.ID+"/expenses", alice, map[string]any{
		"payer_id":        a.ids["alice@example.com"],
		"description":     "Dinner",
		"amount":          30.00,
		"split_method":    "equal",
		"participant_ids": group.MemberIDs,
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode, string(body))

	// Bob records paying Alice back $10.
	resp, body = a.do(http.MethodPost, "/api/groups/"+group.ID+"/settlements", a.tokens["bob@example.com"], map[string]any{
		"from_member_id": a.ids["bob@example.com"],
		"to_member_id":   a.ids["alice@example.com"],
		"amount":         10.00,
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode, string(body))

	// Balances: only Carol still owes Alice.
	resp, body = a.do(http.MethodGet, "/api/groups/"+group.ID+"/balances", alice, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode, string(body))

	var ledger struct {
		Balances  []models.MemberBalance `json:"balances"`
		Suggested []struct {
			From   string  `json:"from"`
			To     string  `json:"to"`
			Amount float64 `json:"amount"`
		} `json:"suggested_settlements"`
	}
	require.NoError(t, json.Unmarshal(body, &ledger))
	require.Len(t, ledger.Balances, 3)

	balances := make(map[string]float64)
	for _, b := range ledger.Balances {
		balances[b.MemberID] = b.NetBalance
	}
	assert.Equal(t, 10.00, balances[a.ids["alice@example.com"]])
	assert.Equal(t, 0.00, balances[a.ids["bob@example.com"]])
	assert.Equal(t, -10.00, balances[a.ids["carol@example.com"]])

	require.Len(t, ledger.Suggested, 1)
	assert.Equal(t, a.ids["carol@example.com"], ledger.Suggested[0].From)
	assert.Equal(t, a.ids["alice@example.com"], ledger.Suggested[0].To)
	assert.Equal(t, 10.00, ledger.Suggested[0].Amount)
}

func TestAPIRejectsBadSplit(t *testing.T) {
	a := newAPITest(t)
	a.register("alice")
	a.register("bob")
	alice := a.tokens["alice@example.com"]

	resp, body := a.do(http.MethodPost, "/api/groups", alice, map[string]any{
		"name":       "Lunch",
		"member_ids": []string{a.ids["bob@example.com"]},
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode, string(body))
	var group models.Group
	require.NoError(t, json.Unmarshal(body, &group))

	resp, body = a.do(http.MethodPost, "/api/groups/"+group.ID+"/expenses", alice, map[string]any{
		"payer_id":        a.ids["alice@example.com"],
		"amount":          25.00,
		"split_method":    "exact",
		"participant_ids": group.MemberIDs,
		"exact_amounts":   []float64{10.00, 10.00},
	})
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)

	var problem ProblemDetails
	require.NoError(t, json.Unmarshal(body, &problem))
	assert.Equal(t, ErrorTypeValidation, problem.Type)
}

func TestAPIRequiresAuth(t *testing.T) {
	a := newAPITest(t)

	resp, _ := a.do(http.MethodGet, "/api/groups/some-id/balances", "", nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	resp, _ = a.do(http.MethodGet, "/api/groups/some-id/balances", "not-a-token", nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestAPIDuplicateEmailConflicts(t *testing.T) {
	a := newAPITest(t)
	a.register("alice")

	resp, body := a.do(http.MethodPost, "/api/auth/register", "", map[string]string{
		"name": "alice2", "email": "alice@example.com", "password": "correct-horse",
	})
	assert.Equal(t, http.StatusConflict, resp.StatusCode, string(body))
}
