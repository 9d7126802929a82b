package sheets

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScriptClientPostsRowJSON(t *testing.T) {
	var received map[string]interface{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		json.NewEncoder(w).Encode(map[string]interface{}{"success": true})
	}))
	defer srv.Close()

	err := NewScript(srv.URL).Post(context.Background(), map[string]string{
		"registrationId": "TECH26-ABC123",
		"memberName":     "Arun Kumar",
	})
	require.NoError(t, err)
	assert.Equal(t, "TECH26-ABC123", received["registrationId"])
}

func TestScriptClientScriptLevelRejection(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]interface{}{"success": false, "message": "sheet is full"})
	}))
	defer srv.Close()

	err := NewScript(srv.URL).Post(context.Background(), map[string]string{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "sheet is full")
}

func TestScriptClientNonJSONBodyAccepted(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("<html>Moved Temporarily</html>"))
	}))
	defer srv.Close()

	err := NewScript(srv.URL).Post(context.Background(), map[string]string{})
	assert.NoError(t, err)
}

func TestScriptClientHTTPError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	err := NewScript(srv.URL).Post(context.Background(), map[string]string{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 502")
}
