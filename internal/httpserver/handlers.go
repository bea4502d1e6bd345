package httpserver

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	authdomain "liga/backend/internal/domain/auth"
	postdomain "liga/backend/internal/domain/post"
	authusecase "liga/backend/internal/usecase/auth"
	postusecase "liga/backend/internal/usecase/post"
)

const maxUploadBytes = 32 << 20

func (s *Server) registerRoutes() {
	s.router.Handle("/health", http.HandlerFunc(s.handleHealth))
	s.router.Handle("/register", http.HandlerFunc(s.handleRegister))
	s.router.Handle("/login", http.HandlerFunc(s.handleLogin))

	s.router.Handle("/equipos", http.HandlerFunc(s.handleTeams))
	s.router.Handle("/equipos/", http.HandlerFunc(s.handleTeamPlayers))

	s.router.Handle("/posts", http.HandlerFunc(s.handlePosts))
	s.router.Handle("/posts/", http.HandlerFunc(s.handlePostByID))

	s.router.Handle("/uploads/", http.StripPrefix("/uploads/", http.FileServer(http.Dir(s.uploadDir))))
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleRegister(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeMethodNotAllowed(w, http.MethodPost)
		return
	}

	var payload struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON payload")
		return
	}

	user, err := s.authService.Register(r.Context(), payload.Username, payload.Password)
	if err != nil {
		switch {
		case errors.Is(err, authusecase.ErrUsernameRequired), errors.Is(err, authusecase.ErrPasswordRequired):
			writeError(w, http.StatusBadRequest, err.Error())
		default:
			writeError(w, http.StatusInternalServerError, "server error")
		}
		return
	}

	writeJSON(w, http.StatusCreated, map[string]any{"user": user})
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeMethodNotAllowed(w, http.MethodPost)
		return
	}

	var payload struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON payload")
		return
	}

	token, _, err := s.authService.Login(r.Context(), authdomain.Credentials{
		Username: payload.Username,
		Password: payload.Password,
	})
	if err != nil {
		if errors.Is(err, authdomain.ErrInvalidCredentials) {
			writeError(w, http.StatusUnauthorized, "invalid username or password")
		} else {
			writeError(w, http.StatusInternalServerError, "server error")
		}
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"token": token,
		"msg":   "authenticated successfully",
	})
}

func (s *Server) handleTeams(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeMethodNotAllowed(w, http.MethodGet)
		return
	}

	teams, err := s.leagueService.ListTeams(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "server error")
		return
	}
	writeJSON(w, http.StatusOK, teams)
}

func (s *Server) handleTeamPlayers(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeMethodNotAllowed(w, http.MethodGet)
		return
	}

	remainder := strings.Trim(strings.TrimPrefix(r.URL.Path, "/equipos/"), "/")
	segments := strings.Split(remainder, "/")
	if len(segments) != 2 || segments[1] != "jugadores" {
		writeError(w, http.StatusNotFound, "resource not found")
		return
	}

	teamID, err := strconv.ParseInt(segments[0], 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "team id must be numeric")
		return
	}

	players, err := s.leagueService.ListTeamPlayers(r.Context(), teamID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "server error")
		return
	}
	writeJSON(w, http.StatusOK, players)
}

func (s *Server) handlePosts(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		s.authMiddleware(http.HandlerFunc(s.handleListPosts)).ServeHTTP(w, r)
	case http.MethodPost:
		s.handleCreatePost(w, r)
	default:
		writeMethodNotAllowed(w, http.MethodGet, http.MethodPost)
	}
}

func (s *Server) handleListPosts(w http.ResponseWriter, r *http.Request) {
	posts, err := s.postService.List(r.Context())
	if err != nil {
		if errors.Is(err, postdomain.ErrNoPosts) {
			writeMessage(w, http.StatusNotFound, "no posts available")
		} else {
			writeError(w, http.StatusInternalServerError, "server error")
		}
		return
	}
	writeJSON(w, http.StatusOK, posts)
}

func (s *Server) handleCreatePost(w http.ResponseWriter, r *http.Request) {
	description, image, cleanup, err := parsePostForm(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid form payload")
		return
	}
	defer cleanup()

	if _, err := s.postService.Create(r.Context(), description, image); err != nil {
		writeError(w, http.StatusInternalServerError, "server error")
		return
	}
	writeMessage(w, http.StatusCreated, "post created successfully")
}

func (s *Server) handlePostByID(w http.ResponseWriter, r *http.Request) {
	raw := strings.Trim(strings.TrimPrefix(r.URL.Path, "/posts/"), "/")
	if raw == "" {
		writeError(w, http.StatusBadRequest, "post id required")
		return
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "post id must be numeric")
		return
	}

	switch r.Method {
	case http.MethodPut:
		description, image, cleanup, err := parsePostForm(r)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid form payload")
			return
		}
		defer cleanup()

		if _, err := s.postService.Update(r.Context(), id, description, image); err != nil {
			if errors.Is(err, postdomain.ErrNotFound) {
				writeMessage(w, http.StatusNotFound, "post not found")
			} else {
				writeError(w, http.StatusInternalServerError, "server error")
			}
			return
		}
		writeMessage(w, http.StatusOK, "post updated successfully")
	case http.MethodDelete:
		if err := s.postService.Delete(r.Context(), id); err != nil {
			if errors.Is(err, postdomain.ErrNotFound) {
				writeMessage(w, http.StatusNotFound, "post not found")
			} else {
				writeError(w, http.StatusInternalServerError, "server error")
			}
			return
		}
		writeMessage(w, http.StatusOK, "post deleted successfully")
	default:
		writeMethodNotAllowed(w, http.MethodPut, http.MethodDelete)
	}
}

// parsePostForm reads the multipart body shared by post create and update.
// The image is optional; cleanup closes the uploaded file when one exists.
func parsePostForm(r *http.Request) (string, *postusecase.ImageUpload, func(), error) {
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		return "", nil, nil, err
	}
	description := r.FormValue("description")

	file, header, err := r.FormFile("img")
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) {
			return description, nil, func() {}, nil
		}
		return "", nil, nil, err
	}

	image := &postusecase.ImageUpload{
		Filename: header.Filename,
		Data:     file,
	}
	return description, image, func() { _ = file.Close() }, nil
}

func (s *Server) authMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := extractBearerToken(r.Header.Get("Authorization"))
		if token == "" {
			writeError(w, http.StatusUnauthorized, authdomain.ErrTokenMissing.Error())
			return
		}

		user, err := s.authService.VerifyToken(r.Context(), token)
		if err != nil {
			writeError(w, http.StatusUnauthorized, authdomain.ErrTokenInvalid.Error())
			return
		}

		ctx := context.WithValue(r.Context(), ctxKeyUser{}, user)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func currentUserFromContext(ctx context.Context) (*authdomain.User, bool) {
	user, ok := ctx.Value(ctxKeyUser{}).(*authdomain.User)
	if !ok || user == nil {
		return nil, false
	}
	return user, true
}

type ctxKeyUser struct{}

func extractBearerToken(header string) string {
	if header == "" {
		return ""
	}
	if !strings.HasPrefix(strings.ToLower(header), "bearer ") {
		return ""
	}
	return strings.TrimSpace(header[7:])
}
