package transport_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sort"
	"sync"
	"testing"
	"time"

	contactapp "github.com/muhammadheryan/contact-manager/application/contact"
	"github.com/muhammadheryan/contact-manager/cmd/config"
	"github.com/muhammadheryan/contact-manager/model"
	contactrepo "github.com/muhammadheryan/contact-manager/repository/contact"
	"github.com/muhammadheryan/contact-manager/transport"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// memRepo is an in-memory ContactRepository used to exercise the full
// handler → application → store path without a database.
type memRepo struct {
	mu       sync.Mutex
	seq      uint64
	contacts map[uint64]model.ContactEntity
}

func newMemRepo() *memRepo {
	return &memRepo{contacts: make(map[uint64]model.ContactEntity)}
}

func (m *memRepo) List(ctx context.Context) ([]model.ContactEntity, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := make([]model.ContactEntity, 0, len(m.contacts))
	for _, c := range m.contacts {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.After(out[j].CreatedAt)
		}
		return out[i].ID > out[j].ID
	})
	return out, nil
}

func (m *memRepo) Get(ctx context.Context, filter *model.ContactFilter) (*model.ContactEntity, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, c := range m.contacts {
		if filter.ID != 0 && c.ID != filter.ID {
			continue
		}
		if filter.Email != "" && c.Email != filter.Email {
			continue
		}
		if filter.Phone != "" && c.Phone != filter.Phone {
			continue
		}
		if filter.ExcludeID != 0 && c.ID == filter.ExcludeID {
			continue
		}
		found := c
		return &found, nil
	}
	return nil, nil
}

func (m *memRepo) Create(ctx context.Context, data *model.ContactEntity) (*model.ContactEntity, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, c := range m.contacts {
		if c.Email == data.Email && c.Phone == data.Phone {
			return nil, contactrepo.ErrDuplicateEntry
		}
	}

	m.seq++
	data.ID = m.seq
	m.contacts[data.ID] = *data
	return data, nil
}

func (m *memRepo) Update(ctx context.Context, data *model.ContactEntity) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, c := range m.contacts {
		if c.ID != data.ID && c.Email == data.Email && c.Phone == data.Phone {
			return contactrepo.ErrDuplicateEntry
		}
	}
	if _, ok := m.contacts[data.ID]; ok {
		m.contacts[data.ID] = *data
	}
	return nil
}

func (m *memRepo) Delete(ctx context.Context, id uint64) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.contacts[id]; !ok {
		return false, nil
	}
	delete(m.contacts, id)
	return true, nil
}

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()

	cfg := &config.Config{
		Database: config.DatabaseConfig{QueryTimeout: time.Second},
		CORS:     config.CORSConfig{AllowedOrigin: "http://localhost:3000"},
		Internal: config.InternalConfig{APIKey: "test-internal-key"},
	}

	app := contactapp.NewContactApp(cfg, newMemRepo(), nil, nil)
	srv := httptest.NewServer(transport.NewTransport(app, cfg))
	t.Cleanup(srv.Close)
	return srv
}

func doJSON(t *testing.T, method, url string, body interface{}) (*http.Response, []byte) {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequest(method, url, reader)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	t.Cleanup(func() { resp.Body.Close() })

	var buf bytes.Buffer
	_, err = buf.ReadFrom(resp.Body)
	require.NoError(t, err)
	return resp, buf.Bytes()
}

func TestContactLifecycle(t *testing.T) {
	srv := newTestServer(t)
	base := srv.URL + "/api/contacts"

	// Create
	resp, body := doJSON(t, http.MethodPost, base, map[string]string{
		"name":    "Jane Doe",
		"email":   "Jane.Doe@Example.com",
		"phone":   "(123) 456-7890",
		"message": "hello there",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var created model.ContactEntity
	require.NoError(t, json.Unmarshal(body, &created))
	assert.Equal(t, "jane.doe@example.com", created.Email)
	assert.Equal(t, "1234567890", created.Phone)
	assert.NotZero(t, created.ID)

	// A second contact so ordering is observable
	resp, _ = doJSON(t, http.MethodPost, base, map[string]string{
		"name":  "John Roe",
		"email": "john@example.com",
		"phone": "0987654321",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	// List: newest first
	resp, body = doJSON(t, http.MethodGet, base, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var listed []model.ContactEntity
	require.NoError(t, json.Unmarshal(body, &listed))
	require.Len(t, listed, 2)
	assert.Equal(t, "john@example.com", listed[0].Email)
	assert.Equal(t, "jane.doe@example.com", listed[1].Email)

	// Update the first contact's message only
	resp, body = doJSON(t, http.MethodPut, fmt.Sprintf("%s/%d", base, created.ID), map[string]string{
		"name":    "Jane Doe",
		"email":   "jane.doe@example.com",
		"phone":   "1234567890",
		"message": "updated message",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var updated model.ContactEntity
	require.NoError(t, json.Unmarshal(body, &updated))
	assert.Equal(t, "updated message", updated.Message)
	assert.Equal(t, created.ID, updated.ID)

	// List reflects the change
	resp, body = doJSON(t, http.MethodGet, base, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.NoError(t, json.Unmarshal(body, &listed))
	assert.Equal(t, "updated message", listed[1].Message)

	// Delete
	resp, body = doJSON(t, http.MethodDelete, fmt.Sprintf("%s/%d", base, created.ID), nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, string(body), "Contact deleted successfully")

	// Gone from the list
	resp, body = doJSON(t, http.MethodGet, base, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.NoError(t, json.Unmarshal(body, &listed))
	require.Len(t, listed, 1)
	assert.Equal(t, "john@example.com", listed[0].Email)

	// Deleting again is a 404
	resp, _ = doJSON(t, http.MethodDelete, fmt.Sprintf("%s/%d", base, created.ID), nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestCreateContact_DuplicatePair(t *testing.T) {
	srv := newTestServer(t)
	base := srv.URL + "/api/contacts"

	resp, _ := doJSON(t, http.MethodPost, base, map[string]string{
		"name":  "First",
		"email": "a@x.com",
		"phone": "1234567890",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	// Same normalized pair, different casing and formatting
	resp, body := doJSON(t, http.MethodPost, base, map[string]string{
		"name":  "Second",
		"email": "A@x.com",
		"phone": "(123) 456-7890",
	})
	require.Equal(t, http.StatusConflict, resp.StatusCode)

	var errResp struct {
		Message  string `json:"message"`
		Conflict struct {
			Email string `json:"email"`
			Phone string `json:"phone"`
		} `json:"conflict"`
	}
	require.NoError(t, json.Unmarshal(body, &errResp))
	assert.Equal(t, "a@x.com", errResp.Conflict.Email)
	assert.Equal(t, "1234567890", errResp.Conflict.Phone)

	// Same email with a different phone is allowed
	resp, _ = doJSON(t, http.MethodPost, base, map[string]string{
		"name":  "Third",
		"email": "a@x.com",
		"phone": "5551234567",
	})
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
}

func TestCreateContact_ValidationErrors(t *testing.T) {
	srv := newTestServer(t)
	base := srv.URL + "/api/contacts"

	tests := []struct {
		name      string
		payload   map[string]string
		wantField string
		wantMsg   string
	}{
		{
			name:      "missing name",
			payload:   map[string]string{"name": "", "email": "a@b.com", "phone": "1234567890"},
			wantField: "name",
			wantMsg:   "Name is required",
		},
		{
			name:      "malformed email",
			payload:   map[string]string{"name": "Jo", "email": "bad", "phone": "1234567890"},
			wantField: "email",
			wantMsg:   "Please enter a valid email address",
		},
		{
			name:      "short phone",
			payload:   map[string]string{"name": "Jo", "email": "a@b.com", "phone": "12345"},
			wantField: "phone",
			wantMsg:   "Phone number must contain at least 10 digits",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, body := doJSON(t, http.MethodPost, base, tt.payload)
			require.Equal(t, http.StatusBadRequest, resp.StatusCode)

			var errResp struct {
				Fields map[string]string `json:"fields"`
			}
			require.NoError(t, json.Unmarshal(body, &errResp))
			assert.Equal(t, tt.wantMsg, errResp.Fields[tt.wantField])
		})
	}
}

func TestUpdateContact_NotFound(t *testing.T) {
	srv := newTestServer(t)

	resp, _ := doJSON(t, http.MethodPut, srv.URL+"/api/contacts/999", map[string]string{
		"name":  "Jo",
		"email": "a@b.com",
		"phone": "1234567890",
	})
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	// A non-numeric id can never match a contact
	resp, _ = doJSON(t, http.MethodPut, srv.URL+"/api/contacts/abc", map[string]string{
		"name":  "Jo",
		"email": "a@b.com",
		"phone": "1234567890",
	})
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestHealth(t *testing.T) {
	srv := newTestServer(t)

	resp, body := doJSON(t, http.MethodGet, srv.URL+"/", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, string(body), "Contact Management API is running")
}

func TestInternalCacheFlush_RequiresKey(t *testing.T) {
	srv := newTestServer(t)

	resp, _ := doJSON(t, http.MethodDelete, srv.URL+"/internal/cache/contacts", nil)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	req, err := http.NewRequest(http.MethodDelete, srv.URL+"/internal/cache/contacts", nil)
	require.NoError(t, err)
	req.Header.Set("Authorization", "Bearer test-internal-key")

	authed, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer authed.Body.Close()
	assert.Equal(t, http.StatusOK, authed.StatusCode)
}

func TestCORSHeaders(t *testing.T) {
	srv := newTestServer(t)

	req, err := http.NewRequest(http.MethodGet, srv.URL+"/api/contacts", nil)
	require.NoError(t, err)
	req.Header.Set("Origin", "http://localhost:3000")

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, "http://localhost:3000", resp.Header.Get("Access-Control-Allow-Origin"))

	// Unknown origins get no CORS grant
	req2, err := http.NewRequest(http.MethodGet, srv.URL+"/api/contacts", nil)
	require.NoError(t, err)
	req2.Header.Set("Origin", "http://evil.example")

	resp2, err := http.DefaultClient.Do(req2)
	require.NoError(t, err)
	defer resp2.Body.Close()

	assert.Empty(t, resp2.Header.Get("Access-Control-Allow-Origin"))
}
