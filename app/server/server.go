package server

import (
	"context"
	"crypto/sha256"
	"crypto/subtle"
	"errors"
	"fmt"
	"html/template"
	"log"
	"net/http"
	"time"

	"github.com/didip/tollbooth/v8"
	"github.com/go-pkgz/lgr"
	"github.com/go-pkgz/rest"
	"github.com/go-pkgz/routegroup"
)

//go:generate moq --out mocks/unbanner.go --pkg mocks --with-resets --skip-ensure . Unbanner

// Web is a REST API for ban lifting actions. Ban notifications embed a signed
// unban link; the token is derived from the guild and user ids and the shared
// secret, so no state is kept between issuing and confirming a link.
type Web struct {
	Params
	Unbanner Unbanner
}

// Params defines REST API parameters
type Params struct {
	Version    string // version reported by the ping middleware
	Secret     string // secret key to sign url tokens
	URL        string // root url
	ListenAddr string // listen address
}

// Unbanner is an interface for the guild ban lifting call
type Unbanner interface {
	UnbanMember(ctx context.Context, guildID, userID, reason string) error
}

// NewWeb creates new REST API server
func NewWeb(unbanner Unbanner, params Params) *Web {
	return &Web{Params: params, Unbanner: unbanner}
}

// Run starts REST API server
func (s *Web) Run(ctx context.Context) error {
	router := routegroup.New(http.NewServeMux())
	router.Use(rest.Recoverer(lgr.Default()))
	router.Use(rest.AppInfo("spamguard", "spamguard", s.Version), rest.Ping)
	router.Use(tollbooth.HTTPMiddleware(tollbooth.NewLimiter(10, nil)))
	router.Use(rest.SizeLimit(1024)) // the only endpoint is a GET with query params
	router.HandleFunc("GET /unban", s.unbanHandler)

	srv := &http.Server{Addr: s.ListenAddr, Handler: router, ReadTimeout: 5 * time.Second, WriteTimeout: 5 * time.Second}

	go func() {
		<-ctx.Done()
		if err := srv.Shutdown(ctx); err != nil {
			log.Printf("[WARN] failed to shutdown unban server: %v", err)
		}
	}()

	log.Printf("[INFO] start server on %s", s.ListenAddr)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("failed to run server: %w", err)
	}
	return nil
}

// unbanHandler handles unban requests, GET /unban?guild=<guild_id>&user=<user_id>&token=<token>
func (s *Web) unbanHandler(w http.ResponseWriter, r *http.Request) {
	guildID := r.URL.Query().Get("guild")
	userID := r.URL.Query().Get("user")
	token := r.URL.Query().Get("token")
	if guildID == "" || userID == "" {
		s.sendHTML(w, "missing guild or user id", "Error", "#ff6347", "#ffffff", http.StatusBadRequest)
		return
	}
	expToken := s.token(guildID, userID)
	if len(token) != len(expToken) || subtle.ConstantTimeCompare([]byte(token), []byte(expToken)) != 1 {
		s.sendHTML(w, fmt.Sprintf("invalid token for %q", userID), "Error", "#ff6347", "#ffffff", http.StatusForbidden)
		return
	}
	log.Printf("[INFO] unban user %s in guild %s", userID, guildID)
	if err := s.Unbanner.UnbanMember(r.Context(), guildID, userID, "unban link confirmed"); err != nil {
		log.Printf("[WARN] failed to unban %s, %v", userID, err)
		s.sendHTML(w, fmt.Sprintf("failed to unban %s: %v", userID, err), "Error", "#ff6347", "#ffffff", http.StatusInternalServerError)
		return
	}

	s.sendHTML(w, fmt.Sprintf("user %s unbanned", userID), "Success", "#90ee90", "#000000", http.StatusOK)
}

// UnbanURL returns the signed URL to unban a user, empty when the server has
// no public url or no secret configured
func (s *Web) UnbanURL(guildID, userID string) string {
	if s.URL == "" || s.Secret == "" {
		return ""
	}
	return fmt.Sprintf("%s/unban?guild=%s&user=%s&token=%s", s.URL, guildID, userID, s.token(guildID, userID))
}

// token is SHA256 of guild ID + user ID + secret
func (s *Web) token(guildID, userID string) string {
	return fmt.Sprintf("%x", sha256.Sum256([]byte(fmt.Sprintf("%s::%s::%s", guildID, userID, s.Secret))))
}

func (s *Web) sendHTML(w http.ResponseWriter, msg, title, background, foreground string, statusCode int) {
	tmplParams := struct {
		Title      string
		Message    string
		Background string
		Foreground string
	}{
		Title:      title,
		Message:    msg,
		Background: background,
		Foreground: foreground,
	}

	w.Header().Set("Content-Type", "text/html")
	w.WriteHeader(statusCode)

	htmlTmpl := template.Must(template.New("msg").Parse(msgTemplate))
	if err := htmlTmpl.Execute(w, tmplParams); err != nil {
		log.Printf("[WARN] failed to execute template, %v", err)
		return
	}
}

var msgTemplate = `<!DOCTYPE html>
<html>
<head>
    <title>{{.Title}}</title>
    <style>
        body {
            font-family: Arial, sans-serif;
            display: flex;
            justify-content: center;
            align-items: center;
            height: 100vh;
            margin: 0;
        }
        .center-block {
            width: 60%;
            padding: 20px;
            text-align: center;
            border-radius: 10px;
            background-color: {{.Background}};
            color: {{.Foreground}};
        }
    </style>
</head>
<body>
    <div class="center-block">
        {{.Message}}
    </div>
</body>
</html>`
