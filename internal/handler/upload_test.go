package handler

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/laa-civil/bulkclaim/internal/claims"
	"github.com/laa-civil/bulkclaim/internal/domain"
)

type uploadClient struct {
	fakeClient
	upload func(ctx context.Context, file io.Reader, filename, userID string, offices []string) (*claims.UploadResult, error)
}

func (c *uploadClient) Upload(ctx context.Context, file io.Reader, filename, userID string, offices []string) (*claims.UploadResult, error) {
	return c.upload(ctx, file, filename, userID, offices)
}

func newUploadHandler(t *testing.T, client claims.Client) *UploadHandler {
	t.Helper()

	renderer := testRenderer(t, map[string]string{
		"upload": `upload{{with .Error}} error={{.}}{{end}}`,
		"error":  `{{.Title}}`,
	})

	return NewUploadHandler(UploadHandlerConfig{
		Client:         client,
		Renderer:       renderer,
		Logger:         slog.New(slog.NewTextHandler(io.Discard, nil)),
		Offices:        []string{"0X111X"},
		ProviderUserID: "user-42",
		MaxUploadBytes: 1 << 20,
		AllowedFormats: []string{"xml", "csv"},
	})
}

func multipartBody(t *testing.T, filename, content string) (*bytes.Buffer, string) {
	t.Helper()

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	part, err := mw.CreateFormFile("file", filename)
	require.NoError(t, err)
	_, err = part.Write([]byte(content))
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	return &body, mw.FormDataContentType()
}

func TestUploadHandlerSubmit(t *testing.T) {
	t.Run("accepted upload redirects to the submission", func(t *testing.T) {
		submissionID := uuid.New()
		client := &uploadClient{
			upload: func(_ context.Context, file io.Reader, filename, userID string, offices []string) (*claims.UploadResult, error) {
				assert.Equal(t, "claims.xml", filename)
				assert.Equal(t, "user-42", userID)
				assert.Equal(t, []string{"0X111X"}, offices)
				return &claims.UploadResult{SubmissionID: submissionID, BulkSubmissionID: uuid.New()}, nil
			},
		}
		h := newUploadHandler(t, client)

		body, contentType := multipartBody(t, "claims.xml", "<claims/>")
		req := httptest.NewRequest("POST", "/upload", body)
		req.Header.Set("Content-Type", contentType)
		rec := httptest.NewRecorder()

		h.Submit(rec, req)

		assert.Equal(t, http.StatusSeeOther, rec.Code)
		assert.Equal(t, "/submissions/"+submissionID.String(), rec.Header().Get("Location"))
	})

	t.Run("disallowed extension is rejected before upstream", func(t *testing.T) {
		client := &uploadClient{
			upload: func(_ context.Context, _ io.Reader, _, _ string, _ []string) (*claims.UploadResult, error) {
				t.Fatal("upload must not reach the API for a rejected file")
				return nil, nil
			},
		}
		h := newUploadHandler(t, client)

		body, contentType := multipartBody(t, "claims.pdf", "%PDF")
		req := httptest.NewRequest("POST", "/upload", body)
		req.Header.Set("Content-Type", contentType)
		rec := httptest.NewRecorder()

		h.Submit(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "xml or csv")
	})

	t.Run("extension check is case-insensitive", func(t *testing.T) {
		called := false
		client := &uploadClient{
			upload: func(_ context.Context, _ io.Reader, _, _ string, _ []string) (*claims.UploadResult, error) {
				called = true
				return &claims.UploadResult{SubmissionID: uuid.New()}, nil
			},
		}
		h := newUploadHandler(t, client)

		body, contentType := multipartBody(t, "CLAIMS.XML", "<claims/>")
		req := httptest.NewRequest("POST", "/upload", body)
		req.Header.Set("Content-Type", contentType)
		rec := httptest.NewRecorder()

		h.Submit(rec, req)

		assert.True(t, called)
		assert.Equal(t, http.StatusSeeOther, rec.Code)
	})

	t.Run("missing file part re-renders the form", func(t *testing.T) {
		h := newUploadHandler(t, &uploadClient{})

		var body bytes.Buffer
		mw := multipart.NewWriter(&body)
		require.NoError(t, mw.Close())

		req := httptest.NewRequest("POST", "/upload", &body)
		req.Header.Set("Content-Type", mw.FormDataContentType())
		rec := httptest.NewRecorder()

		h.Submit(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "Select a bulk claim file")
	})

	t.Run("upstream rejection renders the error page", func(t *testing.T) {
		client := &uploadClient{
			upload: func(_ context.Context, _ io.Reader, _, _ string, _ []string) (*claims.UploadResult, error) {
				return nil, domain.Upstream(nil, "claims.upload", 422)
			},
		}
		h := newUploadHandler(t, client)

		body, contentType := multipartBody(t, "claims.csv", "a,b,c")
		req := httptest.NewRequest("POST", "/upload", body)
		req.Header.Set("Content-Type", contentType)
		rec := httptest.NewRecorder()

		h.Submit(rec, req)

		assert.Equal(t, http.StatusBadGateway, rec.Code)
	})
}
