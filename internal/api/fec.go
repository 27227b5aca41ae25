package api

import (
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"strconv"

	"github.com/fec-analyzer/cli/internal/models"
)

// Upload sends an accounting export file for processing. The backend
// expects a multipart form with the file under the "file" field.
func (c *Client) Upload(ctx context.Context, r io.Reader, filename string) (*models.UploadResponse, error) {
	pr, pw := io.Pipe()
	mw := multipart.NewWriter(pw)

	go func() {
		part, err := mw.CreateFormFile("file", filename)
		if err != nil {
			pw.CloseWithError(err)
			return
		}
		if _, err := io.Copy(part, r); err != nil {
			pw.CloseWithError(err)
			return
		}
		pw.CloseWithError(mw.Close())
	}()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/fec/upload", pr)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())

	var out models.UploadResponse
	if err := c.do(req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GenerateAndProcess asks the backend to generate a sample export of
// nbLignes entries and run it through the processing pipeline.
func (c *Client) GenerateAndProcess(ctx context.Context, nbLignes int) (*models.UploadResponse, error) {
	path := "/fec/generate-and-process?nb_lignes=" + strconv.Itoa(nbLignes)
	var out models.UploadResponse
	if err := c.postJSON(ctx, path, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GenerateSample downloads a generated sample export without processing
// it. The raw file bytes are returned for the caller to save.
func (c *Client) GenerateSample(ctx context.Context, nbLignes int) ([]byte, error) {
	path := c.baseURL + "/fec/generate-sample?nb_lignes=" + strconv.Itoa(nbLignes)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, path, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNetwork, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to read response: %v", ErrNetwork, err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, &APIError{StatusCode: resp.StatusCode, Detail: parseDetail(body)}
	}
	return body, nil
}

// History lists the user's processed files, newest first.
func (c *Client) History(ctx context.Context) ([]models.HistoryItem, error) {
	var items []models.HistoryItem
	if err := c.get(ctx, "/fec/history", &items); err != nil {
		return nil, err
	}
	return items, nil
}

// Detail fetches the full computed result (balance, bilan, compte de
// résultat) for one processed file.
func (c *Client) Detail(ctx context.Context, id string) (*models.DetailResponse, error) {
	var out models.DetailResponse
	if err := c.get(ctx, "/fec/"+url.PathEscape(id), &out); err != nil {
		return nil, err
	}
	return &out, nil
}
