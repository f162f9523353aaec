package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"sync"

	"github.com/MKhiriev/go-notes-keeper/internal/config"
	"github.com/MKhiriev/go-notes-keeper/internal/logger"
	"github.com/MKhiriev/go-notes-keeper/internal/utils"
	"github.com/MKhiriev/go-notes-keeper/models"
	"github.com/go-resty/resty/v2"
)

type httpNotesAPI struct {
	client *utils.HTTPClient

	mu    sync.RWMutex
	token string

	logger *logger.Logger
}

// NewHTTPNotesAPI constructs the HTTP implementation of [NotesAPI] for the
// server at adapterCfg.HTTPAddress. A token from adapterCfg.AccessToken is
// used until Register or Login replaces it.
//
// Returns an error if the address is empty or is not a valid URL.
func NewHTTPNotesAPI(adapterCfg config.ClientAdapter, logger *logger.Logger) (NotesAPI, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	api := &httpNotesAPI{
		client: utils.NewHTTPClient(baseURL, adapterCfg.RequestTimeout),
		logger: logger,
	}
	api.SetToken(adapterCfg.AccessToken)

	return api, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

func (h *httpNotesAPI) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

func (h *httpNotesAPI) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

func (h *httpNotesAPI) Version(ctx context.Context) (string, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Accept", "text/plain").
		Get("/version")
	if err != nil {
		return "", fmt.Errorf("version request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	return resp.String(), nil
}

// Register POSTs /create-account and stores the access token from the body.
func (h *httpNotesAPI) Register(ctx context.Context, req models.RegisterRequest) (models.User, error) {
	var result models.RegisterResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetBody(req).
		SetResult(&result).
		Post("/create-account")
	if err != nil {
		return models.User{}, fmt.Errorf("register request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.User{}, err
	}

	h.SetToken(result.AccessToken)
	h.logger.Debug().Str("user_id", result.User.ID).Msg("registered")

	return result.User, nil
}

// Login POSTs /login and stores the access token from the body.
func (h *httpNotesAPI) Login(ctx context.Context, req models.LoginRequest) (models.LoginResponse, error) {
	var result models.LoginResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetBody(req).
		SetResult(&result).
		Post("/login")
	if err != nil {
		return models.LoginResponse{}, fmt.Errorf("login request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.LoginResponse{}, err
	}

	h.SetToken(result.AccessToken)

	return result, nil
}

func (h *httpNotesAPI) GetUser(ctx context.Context) (models.User, error) {
	var result models.UserResponse

	req, err := h.authedRequest(ctx)
	if err != nil {
		return models.User{}, err
	}

	resp, err := req.SetResult(&result).Get("/get-user")
	if err != nil {
		return models.User{}, fmt.Errorf("get user request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.User{}, err
	}

	return result.User, nil
}

func (h *httpNotesAPI) Logout(ctx context.Context, userID string) error {
	req, err := h.authedRequest(ctx)
	if err != nil {
		return err
	}

	resp, err := req.
		SetPathParam("userId", userID).
		Delete("/logout/{userId}")
	if err != nil {
		return fmt.Errorf("logout request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return err
	}

	h.SetToken("")

	return nil
}

func (h *httpNotesAPI) AddNote(ctx context.Context, note models.AddNoteRequest) (models.Note, error) {
	req, err := h.authedRequest(ctx)
	if err != nil {
		return models.Note{}, err
	}

	return h.doNote(req.SetBody(note), resty.MethodPost, "/add-note")
}

func (h *httpNotesAPI) EditNote(ctx context.Context, noteID string, changes models.EditNoteRequest) (models.Note, error) {
	req, err := h.authedRequest(ctx)
	if err != nil {
		return models.Note{}, err
	}

	return h.doNote(req.SetPathParam("noteId", noteID).SetBody(changes), resty.MethodPut, "/edit-note/{noteId}")
}

func (h *httpNotesAPI) PinNote(ctx context.Context, noteID string, pinned bool) (models.Note, error) {
	req, err := h.authedRequest(ctx)
	if err != nil {
		return models.Note{}, err
	}

	body := models.PinNoteRequest{IsPinned: &pinned}

	return h.doNote(req.SetPathParam("noteId", noteID).SetBody(body), resty.MethodPut, "/pin-note/{noteId}")
}

func (h *httpNotesAPI) GetAllNotes(ctx context.Context) ([]models.Note, error) {
	req, err := h.authedRequest(ctx)
	if err != nil {
		return nil, err
	}

	return h.doNotes(req, "/get-all-notes")
}

func (h *httpNotesAPI) SearchNotes(ctx context.Context, query string) ([]models.Note, error) {
	req, err := h.authedRequest(ctx)
	if err != nil {
		return nil, err
	}

	return h.doNotes(req.SetQueryParam("query", query), "/search-notes")
}

func (h *httpNotesAPI) DeleteNote(ctx context.Context, noteID string) error {
	req, err := h.authedRequest(ctx)
	if err != nil {
		return err
	}

	resp, err := req.
		SetPathParam("noteId", noteID).
		Delete("/delete-note/{noteId}")
	if err != nil {
		return fmt.Errorf("delete note request: %w", err)
	}

	return mapHTTPError(resp)
}

func (h *httpNotesAPI) doNote(req *resty.Request, method, path string) (models.Note, error) {
	var result models.NoteResponse

	resp, err := req.SetResult(&result).Execute(method, path)
	if err != nil {
		return models.Note{}, fmt.Errorf("%s %s request: %w", method, path, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Note{}, err
	}

	return result.Note, nil
}

func (h *httpNotesAPI) doNotes(req *resty.Request, path string) ([]models.Note, error) {
	var result models.NotesResponse

	resp, err := req.SetResult(&result).Get(path)
	if err != nil {
		return nil, fmt.Errorf("GET %s request: %w", path, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	if result.Notes == nil {
		result.Notes = []models.Note{}
	}

	return result.Notes, nil
}

// authedRequest returns a request carrying the stored token, or
// ErrNotLoggedIn when there is none.
func (h *httpNotesAPI) authedRequest(ctx context.Context) (*resty.Request, error) {
	token := h.Token()
	if token == "" {
		return nil, ErrNotLoggedIn
	}

	return h.client.R().SetContext(ctx).SetAuthToken(token), nil
}
