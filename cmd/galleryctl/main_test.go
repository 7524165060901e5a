package main

import (
	"bufio"
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func stubPassword(t *testing.T, pw string) {
	t.Helper()
	orig := readPassword
	readPassword = func() ([]byte, error) { return []byte(pw), nil }
	t.Cleanup(func() { readPassword = orig })
}

func TestRegister_Success(t *testing.T) {
	stubPassword(t, "s3cret")

	var got map[string]string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/auth/register", r.URL.Path)
		body, _ := io.ReadAll(r.Body)
		require.NoError(t, json.Unmarshal(body, &got))
		w.WriteHeader(http.StatusCreated)
	}))
	defer srv.Close()

	var out bytes.Buffer
	err := register(srv.URL, bufio.NewReader(strings.NewReader("alice\n")), &out, srv.Client())
	require.NoError(t, err)

	assert.Equal(t, map[string]string{"username": "alice", "password": "s3cret"}, got)
	assert.Contains(t, out.String(), "Success!")
}

func TestRegister_Taken(t *testing.T) {
	stubPassword(t, "s3cret")

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
	}))
	defer srv.Close()

	var out bytes.Buffer
	err := register(srv.URL, bufio.NewReader(strings.NewReader("alice\n")), &out, srv.Client())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already taken")
}

func TestRegister_ServerError(t *testing.T) {
	stubPassword(t, "s3cret")

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	var out bytes.Buffer
	err := register(srv.URL, bufio.NewReader(strings.NewReader("alice\n")), &out, srv.Client())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unexpected server response")
}
