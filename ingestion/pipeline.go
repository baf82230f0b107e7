package ingestion

import (
	"encoding/json"
	"fmt"
	"strings"

	"aice/models"
)

// Pipeline normalizes raw assets into Question values. It assigns no
// identifiers; that happens on the first store upsert.
type Pipeline struct {
	ocr *OCRClient
}

func NewPipeline(ocr *OCRClient) *Pipeline {
	return &Pipeline{ocr: ocr}
}

// IngestPDF extracts per-page text and normalizes each page into questions,
// tagging each with its page number.
func (p *Pipeline) IngestPDF(pdfPath string) ([]*models.Question, error) {
	pages, err := ExtractPages(pdfPath)
	if err != nil {
		return nil, err
	}

	var questions []*models.Question
	for idx, page := range pages {
		blob := rejoinParagraphs(page)
		if blob == "" {
			continue
		}
		metadata := models.NewMetadata(pdfPath, []string{"pdf"}, fmt.Sprintf("page-%d", idx+1))
		questions = append(questions, p.parseBlob(blob, metadata)...)
	}
	return questions, nil
}

// IngestImages runs OCR over each image and normalizes the extracted text.
// A truncated slice of the confidence blob rides along as a tag so the dev
// portal can surface it next to the question.
func (p *Pipeline) IngestImages(imagePaths []string) ([]*models.Question, error) {
	var questions []*models.Question
	for _, imagePath := range imagePaths {
		result, err := p.ocr.Run(imagePath)
		if err != nil {
			return nil, err
		}

		confidence := result.Metadata
		if len(confidence) > 32 {
			confidence = confidence[:32]
		}
		metadata := models.NewMetadata(
			imagePath,
			[]string{"image", "ocr", "confidence-metadata:" + confidence},
			"ocr",
		)
		questions = append(questions, p.parseBlob(result.Text, metadata)...)
	}
	return questions, nil
}

// parseBlob applies the line-oriented heuristic: every non-blank line is
// tried as a JSON record {body, choices, explanation}; anything else becomes
// a single-choice question whose body is the line itself. All questions from
// one blob share the same metadata.
func (p *Pipeline) parseBlob(blob string, metadata *models.QuestionMetadata) []*models.Question {
	var questions []*models.Question
	for _, line := range strings.Split(blob, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		var payload struct {
			Body        string          `json:"body"`
			Choices     []models.Choice `json:"choices"`
			Explanation *string         `json:"explanation"`
		}
		if err := json.Unmarshal([]byte(line), &payload); err != nil {
			questions = append(questions, &models.Question{
				Body:     line,
				Choices:  []models.Choice{{Label: "A", Body: line}},
				Solution: "A",
				Metadata: metadata,
			})
			continue
		}

		choices := payload.Choices
		if len(choices) == 0 {
			choices = []models.Choice{{Label: "A", Body: "Unable to parse choices", IsCorrect: true}}
		}
		questions = append(questions, &models.Question{
			Body:        payload.Body,
			Choices:     choices,
			Solution:    solutionLabel(choices),
			Explanation: payload.Explanation,
			Metadata:    metadata,
		})
	}
	return questions
}

// solutionLabel picks the first correct choice's label, falling back to the
// first choice when none is flagged correct.
func solutionLabel(choices []models.Choice) string {
	for _, choice := range choices {
		if choice.IsCorrect {
			return choice.Label
		}
	}
	return choices[0].Label
}

// rejoinParagraphs collapses blank-line delimited paragraphs into a single
// newline-delimited blob for the line parser.
func rejoinParagraphs(pageText string) string {
	var parts []string
	for _, part := range strings.Split(pageText, "\n\n") {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			parts = append(parts, trimmed)
		}
	}
	return strings.Join(parts, "\n")
}
