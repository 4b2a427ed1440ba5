package server

import (
	"context"
	"crypto/sha256"
	"errors"
	"fmt"
	"io"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spamguard/spamguard/app/server/mocks"
)

func TestWeb_UnbanURL(t *testing.T) {
	token := func(guildID, userID, secret string) string {
		return fmt.Sprintf("%x", sha256.Sum256([]byte(fmt.Sprintf("%s::%s::%s", guildID, userID, secret))))
	}

	tests := []struct {
		name   string
		url    string
		secret string
		want   string
	}{
		{"no url", "", "secret", ""},
		{"no secret", "http://localhost", "", ""},
		{"test1", "http://localhost", "secret",
			"http://localhost/unban?guild=200000001&user=100000001&token=" + token("200000001", "100000001", "secret")},
		{"test2", "http://127.0.0.1:8080", "secret2",
			"http://127.0.0.1:8080/unban?guild=200000001&user=100000001&token=" + token("200000001", "100000001", "secret2")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := Web{Params: Params{URL: tt.url, Secret: tt.secret}}
			res := srv.UnbanURL("200000001", "100000001")
			assert.Equal(t, tt.want, res)
		})
	}
}

func TestWeb_TokenDiffers(t *testing.T) {
	srv := Web{Params: Params{URL: "http://localhost", Secret: "secret"}}
	assert.NotEqual(t, srv.UnbanURL("g1", "u1"), srv.UnbanURL("g1", "u2"))
	assert.NotEqual(t, srv.UnbanURL("g1", "u1"), srv.UnbanURL("g2", "u1"))
}

func TestWeb_Run(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	unbanner := &mocks.UnbannerMock{
		UnbanMemberFunc: func(ctx context.Context, guildID, userID, reason string) error { return nil },
	}
	srv := NewWeb(unbanner, Params{
		ListenAddr: ":9900",
		URL:        "http://localhost:9900",
		Secret:     "secret",
		Version:    "dev",
	})

	done := make(chan struct{})
	go func() {
		assert.NoError(t, srv.Run(ctx))
		close(done)
	}()
	time.Sleep(100 * time.Millisecond) // wait for server to start

	client := &http.Client{Timeout: 5 * time.Second}

	t.Run("ping", func(t *testing.T) {
		resp, err := client.Get("http://localhost:9900/ping")
		require.NoError(t, err)
		defer resp.Body.Close()
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		body, err := io.ReadAll(resp.Body)
		require.NoError(t, err)
		assert.Equal(t, "pong", string(body))
		assert.Contains(t, resp.Header.Get("App-Name"), "spamguard")
	})

	t.Run("unban rejected, missing params", func(t *testing.T) {
		unbanner.ResetCalls()
		resp, err := client.Get("http://localhost:9900/unban?user=100000001")
		require.NoError(t, err)
		defer resp.Body.Close()
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Equal(t, 0, len(unbanner.UnbanMemberCalls()))
	})

	t.Run("unban forbidden, wrong token", func(t *testing.T) {
		unbanner.ResetCalls()
		resp, err := client.Get("http://localhost:9900/unban?guild=200000001&user=100000001&token=ssss")
		require.NoError(t, err)
		defer resp.Body.Close()
		assert.Equal(t, http.StatusForbidden, resp.StatusCode)
		assert.Equal(t, 0, len(unbanner.UnbanMemberCalls()))
	})

	t.Run("unban allowed, matched token", func(t *testing.T) {
		unbanner.ResetCalls()
		resp, err := client.Get(srv.UnbanURL("200000001", "100000001"))
		require.NoError(t, err)
		defer resp.Body.Close()
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		body, err := io.ReadAll(resp.Body)
		require.NoError(t, err)
		assert.Contains(t, string(body), "user 100000001 unbanned")

		require.Equal(t, 1, len(unbanner.UnbanMemberCalls()))
		assert.Equal(t, "200000001", unbanner.UnbanMemberCalls()[0].GuildID)
		assert.Equal(t, "100000001", unbanner.UnbanMemberCalls()[0].UserID)
		assert.Equal(t, "unban link confirmed", unbanner.UnbanMemberCalls()[0].Reason)
	})

	t.Run("unban failed downstream", func(t *testing.T) {
		unbanner.ResetCalls()
		unbanner.UnbanMemberFunc = func(ctx context.Context, guildID, userID, reason string) error {
			return errors.New("oh my")
		}
		defer func() {
			unbanner.UnbanMemberFunc = func(ctx context.Context, guildID, userID, reason string) error { return nil }
		}()

		resp, err := client.Get(srv.UnbanURL("200000001", "100000001"))
		require.NoError(t, err)
		defer resp.Body.Close()
		assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
		assert.Equal(t, 1, len(unbanner.UnbanMemberCalls()))
	})

	cancel()
	<-done
}
