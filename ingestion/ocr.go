package ingestion

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-resty/resty/v2"
)

// ocrMetadataLimit clamps the serialized confidence blob so it stays below
// SQLite-friendly field sizes downstream.
const ocrMetadataLimit = 2000

// OCRResult carries extracted text plus serialized confidence/diagnostic
// data so the dev portal can surface it.
type OCRResult struct {
	Text     string
	Metadata string
}

// OCRClient extracts text from images. When an API URL is configured the
// image is posted to a remote OCR service; without one the file is read as
// UTF-8 text, which keeps local development and CI working offline.
type OCRClient struct {
	apiURL string
	client *resty.Client
}

func NewOCRClient(apiURL string) *OCRClient {
	return &OCRClient{
		apiURL: apiURL,
		client: resty.New(),
	}
}

// Run performs OCR on the image at imagePath. A missing file surfaces as
// the read error.
func (o *OCRClient) Run(imagePath string) (*OCRResult, error) {
	data, err := os.ReadFile(imagePath)
	if err != nil {
		return nil, err
	}

	if o.apiURL == "" {
		return &OCRResult{
			Text:     strings.TrimSpace(string(data)),
			Metadata: `{"level":[],"conf":[]}`,
		}, nil
	}

	var parsed struct {
		Text       string          `json:"text"`
		Confidence json.RawMessage `json:"confidence"`
	}
	resp, err := o.client.R().
		SetFileReader("file", filepath.Base(imagePath), bytes.NewReader(data)).
		SetResult(&parsed).
		Post(o.apiURL)
	if err != nil {
		return nil, err
	}
	if resp.IsError() {
		return nil, fmt.Errorf("ocr api returned %s", resp.Status())
	}

	metadata := string(parsed.Confidence)
	if metadata == "" {
		metadata = "{}"
	}
	if len(metadata) > ocrMetadataLimit {
		metadata = metadata[:ocrMetadataLimit]
	}
	return &OCRResult{
		Text:     strings.TrimSpace(parsed.Text),
		Metadata: metadata,
	}, nil
}
