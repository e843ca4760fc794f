package generator

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"LogoForge/internal/utils"
)

// Client talks to the external image-generation service. The service stores
// the produced image durably and returns a reference URL; this system never
// re-uploads the bytes.
type Client interface {
	GenerateImage(ctx context.Context, prompt string) (string, error)
}

type client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

func NewClient() Client {
	return &client{
		baseURL: strings.TrimRight(utils.GetConfig("GENERATION_API_URL"), "/"),
		apiKey:  utils.GetConfig("GENERATION_API_KEY"),
		httpClient: &http.Client{
			Timeout: 120 * time.Second,
		},
	}
}

func (c *client) GenerateImage(ctx context.Context, prompt string) (string, error) {
	requestBody := map[string]interface{}{
		"prompt": prompt,
		"size":   "1024x1024",
	}

	requestJSON, err := json.Marshal(requestBody)
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/v1/images/generations", bytes.NewBuffer(requestJSON))
	if err != nil {
		return "", err
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		bodyBytes, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("generation API error: %s - %s", resp.Status, string(bodyBytes))
	}

	var generateResp struct {
		URL string `json:"url"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&generateResp); err != nil {
		return "", err
	}

	return generateResp.URL, nil
}
