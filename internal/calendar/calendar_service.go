package calendar

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	calendarerrors "leavedesk/internal/calendar/errors"
	"leavedesk/internal/config"

	"go.uber.org/zap"
	"golang.org/x/oauth2"
	"gorm.io/gorm"
)

const defaultBaseURL = "https://www.googleapis.com/calendar/v3"

const calendarScope = "https://www.googleapis.com/auth/calendar"

// Endpoint URLs are spelled out so the oauth2 core package suffices.
var googleEndpoint = oauth2.Endpoint{
	AuthURL:  "https://accounts.google.com/o/oauth2/auth",
	TokenURL: "https://oauth2.googleapis.com/token",
}

type Service interface {
	AuthCodeURL(state string) string
	// HandleCallback exchanges the authorization code and stores the granted
	// token next to the calendar settings.
	HandleCallback(ctx context.Context, code string) error
	GetSettings(ctx context.Context) (SettingsResponse, error)
	UpdateSettings(ctx context.Context, req UpdateSettingsRequest) (SettingsResponse, error)

	CreateAllDayEvent(ctx context.Context, summary, description string, start, end time.Time) (string, error)
	// DeleteEvent removes an event; an already-gone event is not an error.
	DeleteEvent(ctx context.Context, eventID string) error
}

type service struct {
	repo    Repository
	oauth   *oauth2.Config
	cfg     config.GoogleConfig
	baseURL string
	client  *http.Client
	logger  *zap.Logger
}

type Option func(*service)

// WithBaseURL points the REST calls somewhere else, used by tests.
func WithBaseURL(u string) Option {
	return func(s *service) { s.baseURL = u }
}

func WithHTTPClient(c *http.Client) Option {
	return func(s *service) { s.client = c }
}

func WithLogger(l *zap.Logger) Option {
	return func(s *service) { s.logger = l.Named("calendar.service") }
}

func NewService(repo Repository, cfg config.GoogleConfig, opts ...Option) Service {
	s := &service{
		repo: repo,
		cfg:  cfg,
		oauth: &oauth2.Config{
			ClientID:     cfg.ClientID,
			ClientSecret: cfg.ClientSecret,
			RedirectURL:  cfg.RedirectURI,
			Scopes:       []string{calendarScope},
			Endpoint:     googleEndpoint,
		},
		baseURL: defaultBaseURL,
		client:  &http.Client{Timeout: 10 * time.Second},
		logger:  zap.L().Named("calendar.service"),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *service) AuthCodeURL(state string) string {
	return s.oauth.AuthCodeURL(state,
		oauth2.AccessTypeOffline,
		oauth2.SetAuthURLParam("prompt", "consent"),
	)
}

func (s *service) HandleCallback(ctx context.Context, code string) error {
	tok, err := s.oauth.Exchange(ctx, code)
	if err != nil {
		s.logger.Error("oauth code exchange failed", zap.Error(err))
		return calendarerrors.ErrExchangeFailed
	}

	settings, err := s.loadOrInitSettings(ctx)
	if err != nil {
		return err
	}

	applyToken(settings, tok)
	if err := s.repo.Save(ctx, settings); err != nil {
		s.logger.Error("persisting google token failed", zap.Error(err))
		return err
	}

	s.logger.Info("google calendar connected")
	return nil
}

func (s *service) GetSettings(ctx context.Context) (SettingsResponse, error) {
	settings, err := s.repo.Get(ctx)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return SettingsResponse{CalendarID: s.defaultCalendarID(nil), Connected: false}, nil
		}
		return SettingsResponse{}, err
	}
	return mapSettings(settings, s.defaultCalendarID(settings)), nil
}

func (s *service) UpdateSettings(ctx context.Context, req UpdateSettingsRequest) (SettingsResponse, error) {
	settings, err := s.loadOrInitSettings(ctx)
	if err != nil {
		return SettingsResponse{}, err
	}

	settings.CalendarID = req.CalendarID
	if err := s.repo.Save(ctx, settings); err != nil {
		s.logger.Error("persisting calendar settings failed", zap.Error(err))
		return SettingsResponse{}, err
	}
	return mapSettings(settings, settings.CalendarID), nil
}

type eventDate struct {
	Date string `json:"date"`
}

type eventBody struct {
	Summary     string    `json:"summary"`
	Description string    `json:"description,omitempty"`
	Start       eventDate `json:"start"`
	End         eventDate `json:"end"`
}

func (s *service) CreateAllDayEvent(ctx context.Context, summary, description string, start, end time.Time) (string, error) {
	settings, token, err := s.connection(ctx)
	if err != nil {
		return "", err
	}

	body, err := json.Marshal(eventBody{
		Summary:     summary,
		Description: description,
		Start:       eventDate{Date: start.Format("2006-01-02")},
		End:         eventDate{Date: end.Format("2006-01-02")},
	})
	if err != nil {
		return "", err
	}

	endpoint := fmt.Sprintf("%s/calendars/%s/events",
		s.baseURL, url.PathEscape(s.defaultCalendarID(settings)))
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token.AccessToken)

	resp, err := s.client.Do(req)
	if err != nil {
		s.logger.Error("create event request failed", zap.Error(err))
		return "", calendarerrors.ErrEventSyncFailed
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		payload, _ := io.ReadAll(io.LimitReader(resp.Body, 2048))
		s.logger.Error("create event rejected",
			zap.Int("status", resp.StatusCode),
			zap.ByteString("body", payload),
		)
		return "", calendarerrors.ErrEventSyncFailed
	}

	var created struct {
		ID string `json:"id"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&created); err != nil {
		return "", calendarerrors.ErrEventSyncFailed
	}
	return created.ID, nil
}

func (s *service) DeleteEvent(ctx context.Context, eventID string) error {
	settings, token, err := s.connection(ctx)
	if err != nil {
		return err
	}

	endpoint := fmt.Sprintf("%s/calendars/%s/events/%s",
		s.baseURL, url.PathEscape(s.defaultCalendarID(settings)), url.PathEscape(eventID))
	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, endpoint, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+token.AccessToken)

	resp, err := s.client.Do(req)
	if err != nil {
		s.logger.Error("delete event request failed", zap.Error(err))
		return calendarerrors.ErrEventSyncFailed
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode >= 200 && resp.StatusCode < 300:
		return nil
	case resp.StatusCode == http.StatusNotFound || resp.StatusCode == http.StatusGone:
		// Someone already removed it by hand. Fine.
		return nil
	default:
		s.logger.Error("delete event rejected", zap.Int("status", resp.StatusCode))
		return calendarerrors.ErrEventSyncFailed
	}
}

// connection loads the stored settings and returns a valid token, persisting
// it back whenever the refresh flow rotated it.
func (s *service) connection(ctx context.Context) (*GoogleSettings, *oauth2.Token, error) {
	settings, err := s.repo.Get(ctx)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, calendarerrors.ErrNotConnected
		}
		return nil, nil, err
	}
	if settings.RefreshToken == "" && settings.AccessToken == "" {
		return nil, nil, calendarerrors.ErrNotConnected
	}

	stored := &oauth2.Token{
		AccessToken:  settings.AccessToken,
		RefreshToken: settings.RefreshToken,
		TokenType:    settings.TokenType,
	}
	if settings.TokenExpiry != nil {
		stored.Expiry = *settings.TokenExpiry
	}

	token, err := s.oauth.TokenSource(ctx, stored).Token()
	if err != nil {
		s.logger.Error("token refresh failed", zap.Error(err))
		return nil, nil, calendarerrors.ErrNotConnected
	}

	if token.AccessToken != stored.AccessToken {
		applyToken(settings, token)
		if err := s.repo.Save(ctx, settings); err != nil {
			s.logger.Warn("persisting refreshed token failed", zap.Error(err))
		}
	}

	return settings, token, nil
}

func (s *service) loadOrInitSettings(ctx context.Context) (*GoogleSettings, error) {
	settings, err := s.repo.Get(ctx)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return &GoogleSettings{ID: settingsRowID, CalendarID: s.cfg.DefaultCalendarID}, nil
		}
		return nil, err
	}
	return settings, nil
}

func (s *service) defaultCalendarID(settings *GoogleSettings) string {
	if settings != nil && settings.CalendarID != "" {
		return settings.CalendarID
	}
	if s.cfg.DefaultCalendarID != "" {
		return s.cfg.DefaultCalendarID
	}
	return "primary"
}

func applyToken(settings *GoogleSettings, tok *oauth2.Token) {
	settings.AccessToken = tok.AccessToken
	settings.TokenType = tok.TokenType
	if tok.RefreshToken != "" {
		settings.RefreshToken = tok.RefreshToken
	}
	if !tok.Expiry.IsZero() {
		expiry := tok.Expiry
		settings.TokenExpiry = &expiry
	}
}

func mapSettings(settings *GoogleSettings, calendarID string) SettingsResponse {
	resp := SettingsResponse{
		CalendarID: calendarID,
		Connected:  settings.RefreshToken != "" || settings.AccessToken != "",
	}
	if settings.TokenExpiry != nil {
		v := settings.TokenExpiry.Format(time.RFC3339)
		resp.TokenExpiry = &v
	}
	return resp
}
