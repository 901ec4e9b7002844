package extractor

import (
	"context"
	"encoding/base64"

	"github.com/cockroachdb/errors"
	"google.golang.org/genai"

	"github.com/spendsnap/spendsnap/pkg/models"
)

const DefaultModel = "gemini-2.0-flash"

// Gemini extracts structured transactions from notification text and
// screenshots through the GenAI API.
type Gemini struct {
	client *genai.Client
	model  string
}

func NewGemini(ctx context.Context, apiKey string, model string) (*Gemini, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:      apiKey,
		Backend:     genai.BackendGeminiAPI,
		HTTPOptions: genai.HTTPOptions{APIVersion: "v1"},
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create genai client")
	}

	if model == "" {
		model = DefaultModel
	}

	return &Gemini{
		client: client,
		model:  model,
	}, nil
}

func (g *Gemini) ExtractFromText(
	ctx context.Context,
	text string,
) (*models.ExtractedTransaction, error) {
	contents := []*genai.Content{
		{
			Role: "user",
			Parts: []*genai.Part{
				{Text: extractionPrompt},
				{Text: "Input notification:\n" + text},
			},
		},
	}

	return g.generate(ctx, contents)
}

func (g *Gemini) ExtractFromImage(
	ctx context.Context,
	imageBase64 string,
	mimeType string,
) (*models.ExtractedTransaction, error) {
	imageBytes, err := base64.StdEncoding.DecodeString(imageBase64)
	if err != nil {
		return nil, errors.Wrap(err, "failed to decode image")
	}

	if mimeType == "" {
		mimeType = "image/jpeg"
	}

	contents := []*genai.Content{
		{
			Role: "user",
			Parts: []*genai.Part{
				{Text: extractionPrompt},
				{
					InlineData: &genai.Blob{
						MIMEType: mimeType,
						Data:     imageBytes,
					},
				},
			},
		},
	}

	return g.generate(ctx, contents)
}

func (g *Gemini) generate(
	ctx context.Context,
	contents []*genai.Content,
) (*models.ExtractedTransaction, error) {
	resp, err := g.client.Models.GenerateContent(ctx, g.model, contents, nil)
	if err != nil {
		return nil, errors.Wrap(err, "generate content")
	}

	return ParseModelOutput(resp.Text())
}

// Validate performs a minimal round-trip against the model.
func (g *Gemini) Validate(ctx context.Context) error {
	contents := []*genai.Content{
		{
			Role:  "user",
			Parts: []*genai.Part{{Text: "Reply with the single word: ok"}},
		},
	}

	resp, err := g.client.Models.GenerateContent(ctx, g.model, contents, nil)
	if err != nil {
		return errors.Wrap(err, "model validation failed")
	}

	if resp.Text() == "" {
		return errors.New("model returned an empty response")
	}

	return nil
}
