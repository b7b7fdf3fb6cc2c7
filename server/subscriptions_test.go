package server

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/threatwatch/threatwatch/pkg/config"
	"github.com/threatwatch/threatwatch/pkg/db"
	"github.com/threatwatch/threatwatch/pkg/domain"
	"github.com/threatwatch/threatwatch/pkg/notify"
	"github.com/threatwatch/threatwatch/server/mocks"
)

func postJSON(t *testing.T, url, payload string) *http.Response {
	t.Helper()
	resp, err := http.Post(url, "application/json", strings.NewReader(payload))
	require.NoError(t, err)
	return resp
}

func TestServer_Subscribe_NewAddress(t *testing.T) {
	database := &mocks.DatabaseMock{
		UpsertSubscriptionFunc: func(ctx context.Context, sub *domain.Subscription) (*domain.Subscription, error) {
			stored := *sub
			stored.ID = 1
			stored.Verification = domain.VerificationPending
			return &stored, nil
		},
		RotateTokenFunc: func(ctx context.Context, email, token string, expires time.Time) error {
			return nil
		},
	}
	sender := &mocks.SenderMock{
		SendFunc: func(msg notify.Message) error { return nil },
	}
	srv := New(testConfig(), database, &mocks.SchedulerMock{}, sender, "test", false)

	ts := httptest.NewServer(srv.router)
	defer ts.Close()

	payload := `{"kind":"subscription","email":"Alice@Example.COM","name":"Alice",
		"categories":["vulnerability"],"frequency":"daily","min_severity":"high",
		"local_hour":9,"utc_offset":5,"weekday":1}`
	resp := postJSON(t, ts.URL+"/api/v1/subscriptions", payload)
	defer resp.Body.Close()
	require.Equal(t, http.StatusAccepted, resp.StatusCode)

	var body map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "pending_verification", body["status"])

	// address normalized before storage
	require.Len(t, database.UpsertSubscriptionCalls(), 1)
	assert.Equal(t, "alice@example.com", database.UpsertSubscriptionCalls()[0].Sub.Email)

	// token issued and verification email carries it
	require.Len(t, database.RotateTokenCalls(), 1)
	token := database.RotateTokenCalls()[0].Token
	assert.NotEmpty(t, token)

	require.Len(t, sender.SendCalls(), 1)
	msg := sender.SendCalls()[0].Msg
	assert.Equal(t, "alice@example.com", msg.To)
	assert.Contains(t, msg.Text, "verify?token="+token)
}

func TestServer_Subscribe_VerifiedAddressUpdates(t *testing.T) {
	database := &mocks.DatabaseMock{
		UpsertSubscriptionFunc: func(ctx context.Context, sub *domain.Subscription) (*domain.Subscription, error) {
			stored := *sub
			stored.ID = 1
			stored.Verification = domain.VerificationVerified
			return &stored, nil
		},
	}
	sender := &mocks.SenderMock{
		SendFunc: func(msg notify.Message) error { return nil },
	}
	srv := New(testConfig(), database, &mocks.SchedulerMock{}, sender, "test", false)

	ts := httptest.NewServer(srv.router)
	defer ts.Close()

	payload := `{"kind":"subscription","email":"bob@example.com","frequency":"weekly",
		"min_severity":"critical","local_hour":8,"utc_offset":-4,"weekday":5}`
	resp := postJSON(t, ts.URL+"/api/v1/subscriptions", payload)
	defer resp.Body.Close()
	require.Equal(t, http.StatusAccepted, resp.StatusCode)

	var body map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "updated", body["status"])

	// no token rotation for an already-verified subscriber
	assert.Empty(t, database.RotateTokenCalls())
	require.Len(t, sender.SendCalls(), 1)
	assert.Contains(t, sender.SendCalls()[0].Msg.Subject, "preferences were updated")
}

func TestServer_Subscribe_Validation(t *testing.T) {
	srv := New(testConfig(), &mocks.DatabaseMock{}, &mocks.SchedulerMock{}, &mocks.SenderMock{}, "test", false)

	ts := httptest.NewServer(srv.router)
	defer ts.Close()

	tests := []struct {
		name    string
		payload string
		errPart string
	}{
		{"bad email", `{"kind":"subscription","email":"not-an-email"}`, "invalid email"},
		{"bad hour", `{"kind":"subscription","email":"a@b.com","local_hour":25}`, "preferred hour"},
		{"bad offset", `{"kind":"subscription","email":"a@b.com","utc_offset":20}`, "utc offset"},
		{"bad weekday", `{"kind":"subscription","email":"a@b.com","weekday":9}`, "weekday"},
		{"bad frequency", `{"kind":"subscription","email":"a@b.com","frequency":"hourly"}`, "frequency"},
		{"bad kind", `{"kind":"spam","email":"a@b.com"}`, "kind must be"},
		{"not json", `{{{`, "invalid request body"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := postJSON(t, ts.URL+"/api/v1/subscriptions", tt.payload)
			defer resp.Body.Close()
			require.Equal(t, http.StatusBadRequest, resp.StatusCode)

			var body map[string]string
			require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
			assert.Contains(t, body["error"], tt.errPart)
		})
	}
}

func TestServer_Contact_RelayedToAdmin(t *testing.T) {
	cfg := testConfig()
	cfg.GetNotifyConfigFunc = func() config.NotifyConfig {
		c := config.NotifyConfig{TokenTTL: 48 * time.Hour, AdminEmail: "admin@example.com"}
		return c
	}
	sender := &mocks.SenderMock{
		SendFunc: func(msg notify.Message) error { return nil },
	}
	srv := New(cfg, &mocks.DatabaseMock{}, &mocks.SchedulerMock{}, sender, "test", false)

	ts := httptest.NewServer(srv.router)
	defer ts.Close()

	payload := `{"kind":"contact","email":"carol@example.com","name":"Carol","message":"please add vendor X feeds"}`
	resp := postJSON(t, ts.URL+"/api/v1/subscriptions", payload)
	defer resp.Body.Close()
	require.Equal(t, http.StatusAccepted, resp.StatusCode)

	// relay is fire-and-forget
	require.Eventually(t, func() bool { return len(sender.SendCalls()) == 1 }, time.Second, 10*time.Millisecond)
	msg := sender.SendCalls()[0].Msg
	assert.Equal(t, "admin@example.com", msg.To)
	assert.Contains(t, msg.Text, "please add vendor X feeds")
}

func TestServer_Manage_AntiEnumeration(t *testing.T) {
	database := &mocks.DatabaseMock{
		GetSubscriptionFunc: func(ctx context.Context, email string) (*domain.Subscription, error) {
			if email == "known@example.com" {
				return &domain.Subscription{ID: 1, Email: email, Active: true}, nil
			}
			return nil, db.ErrNotFound
		},
		RotateTokenFunc: func(ctx context.Context, email, token string, expires time.Time) error {
			return nil
		},
	}
	sender := &mocks.SenderMock{
		SendFunc: func(msg notify.Message) error { return nil },
	}
	srv := New(testConfig(), database, &mocks.SchedulerMock{}, sender, "test", false)

	ts := httptest.NewServer(srv.router)
	defer ts.Close()

	respKnown := postJSON(t, ts.URL+"/api/v1/subscriptions/manage", `{"email":"known@example.com"}`)
	defer respKnown.Body.Close()
	respUnknown := postJSON(t, ts.URL+"/api/v1/subscriptions/manage", `{"email":"unknown@example.com"}`)
	defer respUnknown.Body.Close()

	// identical responses, the address's existence is never revealed
	assert.Equal(t, respKnown.StatusCode, respUnknown.StatusCode)
	var bodyKnown, bodyUnknown map[string]string
	require.NoError(t, json.NewDecoder(respKnown.Body).Decode(&bodyKnown))
	require.NoError(t, json.NewDecoder(respUnknown.Body).Decode(&bodyUnknown))
	assert.Equal(t, bodyKnown, bodyUnknown)

	// but only the known address got a link, with a rotated token
	assert.Len(t, database.RotateTokenCalls(), 1)
	assert.Len(t, sender.SendCalls(), 1)
	assert.Equal(t, "known@example.com", sender.SendCalls()[0].Msg.To)
}

func TestServer_VerifyAndUnsubscribe(t *testing.T) {
	sub := &domain.Subscription{ID: 5, Email: "dave@example.com", Active: true, Token: "tok123"}
	database := &mocks.DatabaseMock{
		GetSubscriptionByTokenFunc: func(ctx context.Context, token string) (*domain.Subscription, error) {
			if token == "tok123" {
				return sub, nil
			}
			return nil, db.ErrNotFound
		},
		VerifySubscriptionFunc:     func(ctx context.Context, id int64) error { return nil },
		DeactivateSubscriptionFunc: func(ctx context.Context, id int64) error { return nil },
	}
	srv := New(testConfig(), database, &mocks.SchedulerMock{}, &mocks.SenderMock{}, "test", false)

	ts := httptest.NewServer(srv.router)
	defer ts.Close()

	t.Run("verify", func(t *testing.T) {
		resp, err := http.Get(ts.URL + "/api/v1/subscriptions/verify?token=tok123")
		require.NoError(t, err)
		defer resp.Body.Close()
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		require.Len(t, database.VerifySubscriptionCalls(), 1)
		assert.Equal(t, int64(5), database.VerifySubscriptionCalls()[0].ID)
	})

	t.Run("verify bad token", func(t *testing.T) {
		resp, err := http.Get(ts.URL + "/api/v1/subscriptions/verify?token=wrong")
		require.NoError(t, err)
		defer resp.Body.Close()
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})

	t.Run("unsubscribe one-click", func(t *testing.T) {
		resp := postJSON(t, ts.URL+"/api/v1/subscriptions/unsubscribe?token=tok123", "")
		defer resp.Body.Close()
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		require.Len(t, database.DeactivateSubscriptionCalls(), 1)
		assert.Equal(t, int64(5), database.DeactivateSubscriptionCalls()[0].ID)
	})

	t.Run("unsubscribe missing token", func(t *testing.T) {
		resp := postJSON(t, ts.URL+"/api/v1/subscriptions/unsubscribe", "")
		defer resp.Body.Close()
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})
}

func TestServer_RateLimit(t *testing.T) {
	cfg := testConfig()
	cfg.GetRateLimitFunc = func() (int64, time.Duration) { return 2, time.Minute }

	database := &mocks.DatabaseMock{
		GetSubscriptionFunc: func(ctx context.Context, email string) (*domain.Subscription, error) {
			return nil, db.ErrNotFound
		},
	}
	srv := New(cfg, database, &mocks.SchedulerMock{}, &mocks.SenderMock{}, "test", false)

	ts := httptest.NewServer(srv.router)
	defer ts.Close()

	// same address: third attempt crosses the cap
	for i := 0; i < 2; i++ {
		resp := postJSON(t, ts.URL+"/api/v1/subscriptions/manage", `{"email":"flood@example.com"}`)
		resp.Body.Close()
		require.Equal(t, http.StatusAccepted, resp.StatusCode)
	}

	resp := postJSON(t, ts.URL+"/api/v1/subscriptions/manage", `{"email":"flood@example.com"}`)
	defer resp.Body.Close()
	require.Equal(t, http.StatusTooManyRequests, resp.StatusCode)
	assert.NotEmpty(t, resp.Header.Get("Retry-After"))

	var body map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "too many requests", body["error"])
	assert.NotEmpty(t, body["retry_after"])
}
