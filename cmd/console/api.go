package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/google/uuid"

	"github.com/oregontales/roadtrip/pkg/engine"
)

type errorResponse struct {
	Error string `json:"error"`
}

// testConnection verifies that the API is reachable before starting the UI.
func testConnection(client *http.Client, baseURL string) bool {
	resp, err := client.Get(baseURL + "/health")
	if err != nil {
		return false
	}
	defer resp.Body.Close()
	return resp.StatusCode == http.StatusOK
}

func createGame(client *http.Client, baseURL string) (*engine.Snapshot, error) {
	resp, err := client.Post(baseURL+"/v1/game", "application/json", nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create game: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusCreated {
		return nil, apiError(resp)
	}

	var snap engine.Snapshot
	if err := json.NewDecoder(resp.Body).Decode(&snap); err != nil {
		return nil, fmt.Errorf("failed to decode game snapshot: %w", err)
	}
	return &snap, nil
}

func getGame(client *http.Client, baseURL string, id uuid.UUID) (*engine.Snapshot, error) {
	resp, err := client.Get(fmt.Sprintf("%s/v1/game/%s", baseURL, id))
	if err != nil {
		return nil, fmt.Errorf("failed to load game: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, apiError(resp)
	}

	var snap engine.Snapshot
	if err := json.NewDecoder(resp.Body).Decode(&snap); err != nil {
		return nil, fmt.Errorf("failed to decode game snapshot: %w", err)
	}
	return &snap, nil
}

// postAction sends one player action. Body may be nil for actions that
// take no parameters.
func postAction(client *http.Client, baseURL string, id uuid.UUID, action string, body any) (*engine.ActionResult, error) {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("failed to encode request: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	url := fmt.Sprintf("%s/v1/game/%s/%s", baseURL, id, action)
	resp, err := client.Post(url, "application/json", reader)
	if err != nil {
		return nil, fmt.Errorf("failed to send %s: %w", action, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNoContent {
		return nil, nil
	}
	if resp.StatusCode != http.StatusOK {
		return nil, apiError(resp)
	}

	var result engine.ActionResult
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("failed to decode action result: %w", err)
	}
	return &result, nil
}

func apiError(resp *http.Response) error {
	var errResp errorResponse
	if err := json.NewDecoder(resp.Body).Decode(&errResp); err == nil && errResp.Error != "" {
		return fmt.Errorf("%s", errResp.Error)
	}
	return fmt.Errorf("API returned status %d", resp.StatusCode)
}
