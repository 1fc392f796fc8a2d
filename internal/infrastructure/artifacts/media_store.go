package artifacts

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"mime/multipart"
	"net/http"
	"os"
	"path"
	"strings"
	"time"

	"github.com/google/uuid"
)

var ErrMissingMediaStoreEndpoint = errors.New("missing MEDIA_STORE_ENDPOINT")
var ErrMediaStoreNotConfigured = errors.New("media store not configured")

// MediaStore uploads proof photos and signatures to the external media
// service and returns the opaque reference it assigns. In mock mode nothing
// leaves the process and a deterministic reference is fabricated, which keeps
// local runs independent of the media service.
type MediaStore struct {
	endpoint string
	client   *http.Client
	mockMode bool
}

func NewMediaStore(endpoint string) (*MediaStore, error) {
	if isMediaStoreMockEnabled() {
		log.Printf("[artifacts][store] mock mode enabled")
		return &MediaStore{mockMode: true}, nil
	}

	if endpoint == "" {
		log.Printf("[artifacts][store] missing MEDIA_STORE_ENDPOINT")
		return nil, ErrMissingMediaStoreEndpoint
	}

	log.Printf("[artifacts][store] media store client initialized endpoint=%s", endpoint)
	return &MediaStore{
		endpoint: strings.TrimRight(endpoint, "/"),
		client:   &http.Client{Timeout: 30 * time.Second},
	}, nil
}

func (s *MediaStore) Store(ctx context.Context, kind string, filename string, data []byte) (string, error) {
	if s != nil && s.mockMode {
		ref := fmt.Sprintf("mock://%s/%s%s", kind, uuid.New().String(), path.Ext(filename))
		log.Printf("[artifacts][store] mock store success kind=%s reference=%s size=%d", kind, ref, len(data))
		return ref, nil
	}

	if s == nil || s.client == nil {
		log.Printf("[artifacts][store] store not configured")
		return "", ErrMediaStoreNotConfigured
	}
	log.Printf("[artifacts][store] store start kind=%s filename=%s size=%d", kind, filename, len(data))

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	part, err := writer.CreateFormFile("file", filename)
	if err != nil {
		return "", err
	}
	if _, err := part.Write(data); err != nil {
		return "", err
	}
	if err := writer.WriteField("kind", kind); err != nil {
		return "", err
	}
	if err := writer.Close(); err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.endpoint+"/media", &body)
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	resp, err := s.client.Do(req)
	if err != nil {
		log.Printf("[artifacts][store] upload failed err=%v", err)
		return "", err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		log.Printf("[artifacts][store] upload rejected status=%d body=%s", resp.StatusCode, raw)
		return "", fmt.Errorf("media store returned status %d", resp.StatusCode)
	}

	var payload struct {
		Reference string `json:"reference"`
	}
	if err := json.Unmarshal(raw, &payload); err != nil {
		log.Printf("[artifacts][store] response unmarshal failed err=%v", err)
		return "", err
	}
	if payload.Reference == "" {
		return "", errors.New("media store response missing reference")
	}

	log.Printf("[artifacts][store] store success kind=%s reference=%s", kind, payload.Reference)
	return payload.Reference, nil
}

func isMediaStoreMockEnabled() bool {
	for _, key := range []string{"MEDIA_STORE_MOCK", "ARTIFACT_STORE_MOCK"} {
		v := strings.ToLower(strings.TrimSpace(os.Getenv(key)))
		switch v {
		case "1", "true", "yes", "on", "mock":
			return true
		}
	}
	return false
}
