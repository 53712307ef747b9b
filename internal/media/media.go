// Package media relays uploaded files to the external image service,
// which owns storage and returns durable URLs.
package media

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"time"
)

type HTTPMediaStore struct {
	baseURL string
	client  *http.Client
}

func NewHTTPMediaStore(baseURL string) *HTTPMediaStore {
	return &HTTPMediaStore{
		baseURL: baseURL,
		client: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

func (s *HTTPMediaStore) Upload(ctx context.Context, filename, contentType string, r io.Reader) (string, error) {
	var body bytes.Buffer

	writer := multipart.NewWriter(&body)

	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition", fmt.Sprintf(`form-data; name="file"; filename=%q`, filename))
	header.Set("Content-Type", contentType)

	part, err := writer.CreatePart(header)
	if err != nil {
		return "", err
	}

	if _, err := io.Copy(part, r); err != nil {
		return "", err
	}

	if err := writer.Close(); err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.baseURL+"/images", &body)
	if err != nil {
		return "", err
	}

	req.Header.Set("Content-Type", writer.FormDataContentType())

	res, err := s.client.Do(req)
	if err != nil {
		return "", err
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK && res.StatusCode != http.StatusCreated {
		return "", fmt.Errorf("image service returned status %d", res.StatusCode)
	}

	var uploaded struct {
		Url string `json:"url"`
	}

	if err := json.NewDecoder(res.Body).Decode(&uploaded); err != nil {
		return "", err
	}

	if uploaded.Url == "" {
		return "", fmt.Errorf("image service returned no URL")
	}

	return uploaded.Url, nil
}
