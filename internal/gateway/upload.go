package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
)

type UploadGateway struct {
	c *Client
}

// Upload sends a file as multipart form data and returns the URL the server
// stored it under.
func (g *UploadGateway) Upload(ctx context.Context, filename string, file io.Reader) (string, error) {
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	part, err := writer.CreateFormFile("file", filename)
	if err != nil {
		return "", fmt.Errorf("failed to build upload form: %v", err)
	}
	if _, err := io.Copy(part, file); err != nil {
		return "", fmt.Errorf("failed to read upload file: %v", err)
	}
	if err := writer.Close(); err != nil {
		return "", fmt.Errorf("failed to finalize upload form: %v", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.c.baseURL+apiPrefix+"/uploads", body)
	if err != nil {
		return "", fmt.Errorf("failed to build request: %v", err)
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())
	if g.c.token != "" {
		req.Header.Set("Authorization", "Bearer "+g.c.token)
	}

	res, err := g.c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("upload request failed: %w", err)
	}
	defer res.Body.Close()

	data, err := io.ReadAll(res.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read upload response: %v", err)
	}
	if res.StatusCode < 200 || res.StatusCode > 299 {
		return "", &APIError{StatusCode: res.StatusCode, Message: errorMessage(res.StatusCode, data)}
	}

	var out struct {
		FileURL string `json:"file_url"`
	}
	if err := json.Unmarshal(data, &out); err != nil {
		return "", fmt.Errorf("failed to decode upload response: %v", err)
	}
	return out.FileURL, nil
}
