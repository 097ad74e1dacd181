package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/google/uuid"

	"github.com/fahrizal89/angkutin/internal/pkg/models"
)

// envelope mirrors the server's response wrapper.
type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
	Error   string          `json:"error"`
	Code    int             `json:"code"`
}

// JobScope selects which slice of the job board a list call returns. The
// server enforces the role behind each scope; the client only picks the
// route.
type JobScope string

const (
	ScopeAll      JobScope = "all"
	ScopeMine     JobScope = "mine"
	ScopeAssigned JobScope = "assigned"
)

func (sc JobScope) path() string {
	switch sc {
	case ScopeMine:
		return "/jobs/my-jobs"
	case ScopeAssigned:
		return "/jobs/assigned"
	default:
		return "/jobs"
	}
}

// CreateJob submits a new delivery request.
func (s *Session) CreateJob(ctx context.Context, req *models.CreateJobRequest) (*models.Job, error) {
	var job models.Job
	if err := s.call(ctx, http.MethodPost, "/jobs", req, &job); err != nil {
		return nil, err
	}
	return &job, nil
}

// ListJobs fetches the jobs visible in the given scope, optionally
// filtered by status.
func (s *Session) ListJobs(ctx context.Context, scope JobScope, status models.JobStatus) ([]models.Job, error) {
	path := scope.path()
	if status != "" {
		path += "?status=" + url.QueryEscape(string(status))
	}

	var jobs []models.Job
	if err := s.call(ctx, http.MethodGet, path, nil, &jobs); err != nil {
		return nil, err
	}
	return jobs, nil
}

// GetJob fetches a single job by ID.
func (s *Session) GetJob(ctx context.Context, id uuid.UUID) (*models.Job, error) {
	var job models.Job
	if err := s.call(ctx, http.MethodGet, "/jobs/"+id.String(), nil, &job); err != nil {
		return nil, err
	}
	return &job, nil
}

// AssignJob binds a driver and truck to a pending job.
func (s *Session) AssignJob(ctx context.Context, id uuid.UUID, req *models.AssignJobRequest) (*models.Job, error) {
	var job models.Job
	if err := s.call(ctx, http.MethodPut, "/jobs/"+id.String()+"/assign", req, &job); err != nil {
		return nil, err
	}
	return &job, nil
}

// UpdateJobStatus moves a job to the target status.
func (s *Session) UpdateJobStatus(ctx context.Context, id uuid.UUID, status models.JobStatus) (*models.Job, error) {
	req := models.UpdateJobStatusRequest{Status: status}
	var job models.Job
	if err := s.call(ctx, http.MethodPut, "/jobs/"+id.String()+"/status", req, &job); err != nil {
		return nil, err
	}
	return &job, nil
}

// ListDrivers fetches the active driver roster.
func (s *Session) ListDrivers(ctx context.Context) ([]models.User, error) {
	var drivers []models.User
	if err := s.call(ctx, http.MethodGet, "/users?role=driver", nil, &drivers); err != nil {
		return nil, err
	}
	return drivers, nil
}

// ListTrucks fetches the truck registry.
func (s *Session) ListTrucks(ctx context.Context) ([]models.Truck, error) {
	var trucks []models.Truck
	if err := s.call(ctx, http.MethodGet, "/trucks", nil, &trucks); err != nil {
		return nil, err
	}
	return trucks, nil
}

// PushLocation reports the driver's current position.
func (s *Session) PushLocation(ctx context.Context, update models.LocationUpdate) (*models.DriverLocation, error) {
	var location models.DriverLocation
	if err := s.call(ctx, http.MethodPost, "/drivers/location", update, &location); err != nil {
		return nil, err
	}
	return &location, nil
}

// FleetLocations fetches the last known position of every tracked driver.
func (s *Session) FleetLocations(ctx context.Context) ([]models.DriverLocation, error) {
	var locations []models.DriverLocation
	if err := s.call(ctx, http.MethodGet, "/drivers/locations", nil, &locations); err != nil {
		return nil, err
	}
	return locations, nil
}

// call performs one authorized request and decodes the envelope's data
// field into out. out may be nil when the caller only cares about success.
func (s *Session) call(ctx context.Context, method, path string, payload, out interface{}) error {
	var body io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return err
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, s.baseURL+path, body)
	if err != nil {
		return err
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := s.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return decodeAPIError(resp)
	}
	if out == nil {
		return nil
	}

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	if len(env.Data) == 0 {
		return nil
	}
	if err := json.Unmarshal(env.Data, out); err != nil {
		return fmt.Errorf("failed to decode response data: %w", err)
	}
	return nil
}

// decodeAPIError turns a non-2xx response into an APIError, preferring the
// envelope's message when the body parses.
func decodeAPIError(resp *http.Response) error {
	apiErr := &APIError{Status: resp.StatusCode, Message: resp.Status}

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err == nil {
		if env.Error != "" {
			apiErr.Message = env.Error
		} else if env.Message != "" {
			apiErr.Message = env.Message
		}
	}

	return apiErr
}
