package claims

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/laa-civil/bulkclaim/internal/domain"
	"github.com/laa-civil/bulkclaim/internal/metrics"
)

const (
	// DefaultTimeout bounds every Claims API call when no timeout is
	// configured. Retries are never attempted.
	DefaultTimeout = 30 * time.Second
)

// Config contains configuration for the HTTP Claims API client.
type Config struct {
	BaseURL string
	Timeout time.Duration
}

// HTTPClient implements Client against the Claims API over JSON/HTTP.
type HTTPClient struct {
	baseURL string
	client  *http.Client
	logger  *slog.Logger
}

// NewHTTPClient creates a Claims API client.
func NewHTTPClient(cfg Config, logger *slog.Logger) (*HTTPClient, error) {
	if cfg.BaseURL == "" {
		return nil, fmt.Errorf("claims API base URL is required")
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = DefaultTimeout
	}

	return &HTTPClient{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		client:  &http.Client{Timeout: cfg.Timeout},
		logger:  logger,
	}, nil
}

// Upload posts a bulk claim file as multipart form data.
func (c *HTTPClient) Upload(ctx context.Context, file io.Reader, filename, userID string, offices []string) (*UploadResult, error) {
	const op = "claims.upload"

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)

	part, err := mw.CreateFormFile("file", filename)
	if err != nil {
		return nil, domain.Internal(err, op, "failed to build multipart request")
	}
	if _, err := io.Copy(part, file); err != nil {
		return nil, domain.Internal(err, op, "failed to read upload file")
	}
	if err := mw.WriteField("userId", userID); err != nil {
		return nil, domain.Internal(err, op, "failed to build multipart request")
	}
	for _, office := range offices {
		if err := mw.WriteField("offices", office); err != nil {
			return nil, domain.Internal(err, op, "failed to build multipart request")
		}
	}
	if err := mw.Close(); err != nil {
		return nil, domain.Internal(err, op, "failed to finalise multipart request")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/bulk-submissions", &body)
	if err != nil {
		return nil, domain.Internal(err, op, "failed to build request")
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())

	var decoded uploadResponse
	if err := c.do(req, op, &decoded); err != nil {
		return nil, err
	}

	return &UploadResult{
		BulkSubmissionID: decoded.BulkSubmissionID,
		SubmissionID:     decoded.SubmissionID,
	}, nil
}

// SearchSubmissions returns one page of submissions matching the filter.
func (c *HTTPClient) SearchSubmissions(ctx context.Context, params SearchParams) (domain.Page[domain.Submission], error) {
	const op = "claims.search_submissions"

	q := url.Values{}
	for _, office := range params.Offices {
		q.Add("offices", office)
	}
	if params.SubmissionPeriod != "" {
		q.Set("submission_period", params.SubmissionPeriod)
	}
	if params.AreaOfLaw != "" {
		q.Set("area_of_law", params.AreaOfLaw)
	}
	for _, status := range params.Statuses {
		q.Add("statuses", status)
	}
	q.Set("page", strconv.Itoa(params.Page))
	q.Set("size", strconv.Itoa(params.Size))
	if params.Sort != "" {
		q.Set("sort", params.Sort)
	}

	var decoded submissionsResultSet
	if err := c.get(ctx, op, "/submissions", q, &decoded); err != nil {
		return domain.Page[domain.Submission]{}, err
	}

	page := domain.Page[domain.Submission]{
		Number:        decoded.Number,
		Size:          decoded.Size,
		TotalElements: decoded.TotalElements,
		TotalPages:    decoded.TotalPages,
	}
	for _, fields := range decoded.Content {
		page.Items = append(page.Items, fields.toDomain())
	}
	return page, nil
}

// GetSubmission fetches one submission by ID.
func (c *HTTPClient) GetSubmission(ctx context.Context, submissionID uuid.UUID) (*domain.Submission, error) {
	const op = "claims.get_submission"

	var decoded submissionFields
	if err := c.get(ctx, op, "/submissions/"+submissionID.String(), nil, &decoded); err != nil {
		return nil, err
	}
	submission := decoded.toDomain()
	return &submission, nil
}

// GetClaims returns one page of a submission's claims in line number order.
func (c *HTTPClient) GetClaims(ctx context.Context, officeCode string, submissionID uuid.UUID, page, size int) (domain.Page[domain.Claim], error) {
	const op = "claims.get_claims"

	q := url.Values{}
	q.Set("office_code", officeCode)
	q.Set("page", strconv.Itoa(page))
	q.Set("size", strconv.Itoa(size))
	q.Set("sort", DefaultClaimSort)

	var decoded claimsResultSet
	if err := c.get(ctx, op, "/submissions/"+submissionID.String()+"/claims", q, &decoded); err != nil {
		return domain.Page[domain.Claim]{}, err
	}

	result := domain.Page[domain.Claim]{
		Number:        decoded.Number,
		Size:          decoded.Size,
		TotalElements: decoded.TotalElements,
		TotalPages:    decoded.TotalPages,
	}
	for _, fields := range decoded.Content {
		result.Items = append(result.Items, fields.toDomain())
	}
	return result, nil
}

// GetClaim fetches a single claim within a submission.
func (c *HTTPClient) GetClaim(ctx context.Context, submissionID, claimID uuid.UUID) (*domain.Claim, error) {
	const op = "claims.get_claim"

	path := "/submissions/" + submissionID.String() + "/claims/" + claimID.String()

	var decoded claimFields
	if err := c.get(ctx, op, path, nil, &decoded); err != nil {
		return nil, err
	}
	claim := decoded.toDomain()
	return &claim, nil
}

// GetMatterStarts returns every matter start for a submission.
func (c *HTTPClient) GetMatterStarts(ctx context.Context, submissionID uuid.UUID) ([]domain.MatterStart, error) {
	const op = "claims.get_matter_starts"

	var decoded matterStartResultSet
	if err := c.get(ctx, op, "/submissions/"+submissionID.String()+"/matter-starts", nil, &decoded); err != nil {
		return nil, err
	}

	starts := make([]domain.MatterStart, 0, len(decoded.MatterStarts))
	for _, fields := range decoded.MatterStarts {
		starts = append(starts, fields.toDomain())
	}
	return starts, nil
}

// GetMatterStart fetches a single matter start within a submission.
func (c *HTTPClient) GetMatterStart(ctx context.Context, submissionID, matterStartID uuid.UUID) (*domain.MatterStart, error) {
	const op = "claims.get_matter_start"

	path := "/submissions/" + submissionID.String() + "/matter-starts/" + matterStartID.String()

	var decoded matterStartFields
	if err := c.get(ctx, op, path, nil, &decoded); err != nil {
		return nil, err
	}
	start := decoded.toDomain()
	return &start, nil
}

// GetValidationMessages returns one page of validation messages.
func (c *HTTPClient) GetValidationMessages(ctx context.Context, params MessageParams) (domain.Page[domain.ValidationMessage], error) {
	const op = "claims.get_validation_messages"

	q := url.Values{}
	q.Set("submission-id", params.SubmissionID.String())
	if params.ClaimID != nil {
		q.Set("claim-id", params.ClaimID.String())
	}
	if params.Type != "" {
		q.Set("type", params.Type)
	}
	if params.Source != "" {
		q.Set("source", params.Source)
	}
	q.Set("page", strconv.Itoa(params.Page))
	q.Set("size", strconv.Itoa(params.Size))

	var decoded validationMessagesResponse
	if err := c.get(ctx, op, "/validation-messages", q, &decoded); err != nil {
		return domain.Page[domain.ValidationMessage]{}, err
	}

	page := domain.Page[domain.ValidationMessage]{
		Number:        decoded.Number,
		Size:          decoded.Size,
		TotalElements: decoded.TotalElements,
		TotalPages:    decoded.TotalPages,
	}
	for _, fields := range decoded.Content {
		page.Items = append(page.Items, fields.toDomain())
	}
	return page, nil
}

// get issues a GET request and decodes the JSON response into out.
func (c *HTTPClient) get(ctx context.Context, op, path string, query url.Values, out any) error {
	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return domain.Internal(err, op, "failed to build request")
	}
	req.Header.Set("Accept", "application/json")

	return c.do(req, op, out)
}

// do executes a request, maps non-2xx statuses to structured errors and
// decodes a successful body into out. A body that fails to decode is
// reported as EMALFORMED: aggregators must fail the whole page rather than
// work from partially parsed records.
func (c *HTTPClient) do(req *http.Request, op string, out any) error {
	start := time.Now()
	resp, err := c.client.Do(req)
	if err != nil {
		metrics.ClaimsAPIRequestsTotal.WithLabelValues(op, "error").Inc()
		return domain.Wrap(err, domain.EUPSTREAM, op, "claims API request failed")
	}
	defer resp.Body.Close()

	metrics.ClaimsAPIRequestsTotal.WithLabelValues(op, strconv.Itoa(resp.StatusCode)).Inc()
	metrics.ClaimsAPIRequestDuration.WithLabelValues(op).Observe(time.Since(start).Seconds())

	c.logger.Debug("claims API call",
		"op", op,
		"method", req.Method,
		"path", req.URL.Path,
		"status", resp.StatusCode,
		"duration_ms", time.Since(start).Milliseconds(),
	)

	if resp.StatusCode == http.StatusNotFound {
		return domain.NotFound(op, "resource", req.URL.Path)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return domain.Upstream(decodeAPIError(resp.Body), op, resp.StatusCode)
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return domain.Malformed(err, op, "claims API response could not be parsed")
	}
	return nil
}

// decodeAPIError extracts the upstream error detail, if any.
func decodeAPIError(body io.Reader) error {
	var decoded apiError
	if err := json.NewDecoder(io.LimitReader(body, 4096)).Decode(&decoded); err != nil {
		return fmt.Errorf("claims API error")
	}
	if decoded.Message == "" {
		return fmt.Errorf("claims API error")
	}
	return fmt.Errorf("claims API error: %s", decoded.Message)
}
