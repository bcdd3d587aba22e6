package adapter

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/MKhiriev/user-admin/internal/config"
	"github.com/MKhiriev/user-admin/internal/logger"
	"github.com/MKhiriev/user-admin/internal/utils"
	"github.com/MKhiriev/user-admin/models"
)

// Data API paths.
const (
	pathUsers        = "/users"
	pathRegisterUser = "/rpc/register_user"
	pathAddLocation  = "/rpc/add_location"
)

type postgRESTAdapter struct {
	client  *utils.HTTPClient
	metrics *Metrics

	logger *logger.Logger
}

// NewPostgRESTAdapter constructs the HTTP/REST implementation of [UserAPI].
// It normalises and validates cfg.BaseURL and configures the underlying HTTP
// client with the base URL, the JSON Content-Type and Accept headers and the
// request timeout. metrics may be nil.
//
// Returns an error wrapping [ErrInvalidBaseURL] if the base URL is empty or
// cannot be parsed.
func NewPostgRESTAdapter(cfg config.Adapter, metrics *Metrics, logger *logger.Logger) (UserAPI, error) {
	baseURL, err := normalizeBaseURL(cfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidBaseURL, err)
	}

	logger.Info().Str("base_url", baseURL).Msg("data API adapter created")

	return &postgRESTAdapter{
		client:  utils.NewJSONHTTPClient(baseURL, cfg.RequestTimeout),
		metrics: metrics,
		logger:  logger,
	}, nil
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

// ListUsers implements [UserAPI]. It GETs /users and decodes the array in
// server order. Any status other than 200 yields an empty slice.
func (a *postgRESTAdapter) ListUsers(ctx context.Context) ([]models.User, error) {
	started := time.Now()
	resp, err := a.client.R().
		SetContext(ctx).
		Get(pathUsers)
	a.metrics.observe(opListUsers, resp, err, started)
	if err != nil {
		return nil, fmt.Errorf("list users request: %w", err)
	}

	if resp.StatusCode() != http.StatusOK {
		a.log(ctx).Debug().
			Int("status", resp.StatusCode()).
			Msg("list users answered with non-200 status, returning no users")
		return []models.User{}, nil
	}

	users, err := models.DecodeUsers(resp.Body())
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}

	return users, nil
}

// GetUser implements [UserAPI]. It GETs /users?id=eq.{id} and returns the
// first element of the answer, or nil when there is none.
func (a *postgRESTAdapter) GetUser(ctx context.Context, id int64) (*models.User, error) {
	started := time.Now()
	resp, err := a.client.R().
		SetContext(ctx).
		SetQueryParam("id", "eq."+strconv.FormatInt(id, 10)).
		Get(pathUsers)
	a.metrics.observe(opGetUser, resp, err, started)
	if err != nil {
		return nil, fmt.Errorf("get user request: %w", err)
	}

	if resp.StatusCode() != http.StatusOK {
		return nil, nil
	}

	users, err := models.DecodeUsers(resp.Body())
	if err != nil {
		return nil, fmt.Errorf("get user: %w", err)
	}
	if len(users) == 0 {
		return nil, nil
	}

	return &users[0], nil
}

// CreateUser implements [UserAPI]. It POSTs {email, password, name} to
// /rpc/register_user. On 200/201 the answer is decoded as the created user;
// an array answer yields its first element. Any other status is returned as
// [*CreationError].
func (a *postgRESTAdapter) CreateUser(ctx context.Context, user models.NewUser) (models.User, error) {
	started := time.Now()
	resp, err := a.client.R().
		SetContext(ctx).
		SetBody(models.NewRegisterUserRequest(user)).
		Post(pathRegisterUser)
	a.metrics.observe(opCreateUser, resp, err, started)
	if err != nil {
		return models.User{}, fmt.Errorf("register user request: %w", err)
	}

	if !isCreated(resp) {
		return models.User{}, mapCreationError(resp)
	}

	created, err := decodeCreatedUser(resp.Body())
	if err != nil {
		return models.User{}, fmt.Errorf("register user: %w", err)
	}

	if user.HasLocation() {
		a.saveLocation(ctx, created, *user.Location)
	}

	return created, nil
}

// saveLocation writes the location of a freshly created user. The write is
// best-effort: a failure is logged as a warning and dropped.
func (a *postgRESTAdapter) saveLocation(ctx context.Context, created models.User, location models.Coordinates) {
	log := a.log(ctx)

	if !created.HasID() {
		log.Warn().Err(ErrMissingUserID).Str("email", created.Email).Msg("failed to save location")
		return
	}

	if err := a.AddUserLocation(ctx, created.IDValue(), location); err != nil {
		log.Warn().Err(err).Int64("user_id", created.IDValue()).Msg("failed to save location")
	}
}

func (a *postgRESTAdapter) log(ctx context.Context) *logger.Logger {
	return logger.FromContextOr(ctx, a.logger)
}

// AddUserLocation implements [UserAPI]. It POSTs {user_id, latitude,
// longitude} to /rpc/add_location. Returns an error wrapping
// [ErrLocationNotSaved] on a non-2xx answer.
func (a *postgRESTAdapter) AddUserLocation(ctx context.Context, userID int64, location models.Coordinates) error {
	started := time.Now()
	resp, err := a.client.R().
		SetContext(ctx).
		SetBody(models.AddLocationRequest{
			UserID:    userID,
			Latitude:  location.Latitude,
			Longitude: location.Longitude,
		}).
		Post(pathAddLocation)
	a.metrics.observe(opAddLocation, resp, err, started)
	if err != nil {
		return fmt.Errorf("add location request: %w", err)
	}

	if !isSuccess(resp) {
		return mapLocationError(resp)
	}

	return nil
}

// decodeCreatedUser accepts both a single object and an array of objects,
// since an RPC returning SETOF answers with an array.
func decodeCreatedUser(body []byte) (models.User, error) {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) > 0 && trimmed[0] == '[' {
		users, err := models.DecodeUsers(trimmed)
		if err != nil {
			return models.User{}, err
		}
		if len(users) == 0 {
			return models.User{}, fmt.Errorf("empty register_user answer")
		}
		return users[0], nil
	}

	return models.DecodeUser(trimmed)
}
