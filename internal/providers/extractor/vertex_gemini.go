package extractor

import (
	"context"
	"encoding/json"
	"errors"
	"strings"

	vertexgenai "cloud.google.com/go/vertexai/genai"
	"google.golang.org/api/option"

	"github.com/cvlm/crm-backend/internal/models"
	"github.com/cvlm/crm-backend/internal/utils"
)

type VertexGemini struct {
	client *vertexgenai.Client
	model  *vertexgenai.GenerativeModel
}

func NewVertexGemini(ctx context.Context, projectID, location, modelName, credentialsFile string) (*VertexGemini, error) {
	if projectID == "" {
		return nil, errors.New("vertex project id is not set")
	}
	if location == "" {
		location = "us-central1"
	}

	var opts []option.ClientOption
	if credentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(credentialsFile))
	}

	c, err := vertexgenai.NewClient(ctx, projectID, location, opts...)
	if err != nil {
		return nil, err
	}

	if modelName == "" {
		modelName = "gemini-1.5-flash"
	}

	m := c.GenerativeModel(modelName)
	m.GenerationConfig.ResponseMIMEType = "application/json"
	m.GenerationConfig.ResponseSchema = recordSchema()

	return &VertexGemini{client: c, model: m}, nil
}

func (v *VertexGemini) Close() error { return v.client.Close() }

// Extract asks the model for a structured record over the raw text.
// Each failure mode carries its own displayable message: unreachable
// service, empty model output, malformed JSON.
func (v *VertexGemini) Extract(ctx context.Context, rawText string) (*models.ExtractedRecord, error) {
	const op = "VertexGemini.Extract"

	resp, err := v.model.GenerateContent(ctx, vertexgenai.Text(buildPrompt(rawText)))
	if err != nil {
		return nil, utils.E(utils.CodeUnavailable, op, "extraction request failed, check your connection", err)
	}

	text := firstText(resp)
	if text == "" {
		return nil, utils.E(utils.CodeUnavailable, op, "model returned an empty response", nil)
	}

	var rec models.ExtractedRecord
	if err := json.Unmarshal([]byte(text), &rec); err != nil {
		return nil, utils.E(utils.CodeInternal, op, "model returned malformed JSON", err)
	}
	return &rec, nil
}

func buildPrompt(rawText string) string {
	var b strings.Builder
	b.WriteString(`You are an expert recruitment assistant. Analyze the following text (CV, form submission or message) and extract structured information as JSON.

Extraction rules:
1. extracted_promo_code: the discount or promo code the person is USING for the current request.
2. extracted_own_promo_code: the personal referral code the person offers to share with others.
3. extracted_request_details: a concise summary of what the person is requesting (ex: "CV redesign", "Executive cover letter").
4. Leave an empty string for any information that is absent.

Text to analyze:
`)
	b.WriteString(rawText)
	return b.String()
}

func firstText(resp *vertexgenai.GenerateContentResponse) string {
	if resp == nil {
		return ""
	}
	var b strings.Builder
	for _, cand := range resp.Candidates {
		if cand.Content == nil {
			continue
		}
		for _, part := range cand.Content.Parts {
			if t, ok := part.(vertexgenai.Text); ok {
				b.WriteString(string(t))
			}
		}
	}
	return strings.TrimSpace(b.String())
}

func recordSchema() *vertexgenai.Schema {
	stringProp := func() *vertexgenai.Schema {
		return &vertexgenai.Schema{Type: vertexgenai.TypeString}
	}
	stringArray := func() *vertexgenai.Schema {
		return &vertexgenai.Schema{Type: vertexgenai.TypeArray, Items: stringProp()}
	}

	return &vertexgenai.Schema{
		Type: vertexgenai.TypeObject,
		Properties: map[string]*vertexgenai.Schema{
			"full_name":                 stringProp(),
			"job_title":                 stringProp(),
			"email":                     stringProp(),
			"phone":                     stringProp(),
			"location":                  stringProp(),
			"nationality":               stringProp(),
			"birth_year":                stringProp(),
			"portfolio_url":             stringProp(),
			"summary":                   stringProp(),
			"extracted_promo_code":      stringProp(),
			"extracted_own_promo_code":  stringProp(),
			"extracted_request_details": stringProp(),
			"skills":                    stringArray(),
			"certifications":            stringArray(),
			"interests":                 stringArray(),
			"references":                stringArray(),
			"experience": {
				Type: vertexgenai.TypeArray,
				Items: &vertexgenai.Schema{
					Type: vertexgenai.TypeObject,
					Properties: map[string]*vertexgenai.Schema{
						"role":        stringProp(),
						"company":     stringProp(),
						"duration":    stringProp(),
						"description": stringProp(),
					},
				},
			},
			"education": {
				Type: vertexgenai.TypeArray,
				Items: &vertexgenai.Schema{
					Type: vertexgenai.TypeObject,
					Properties: map[string]*vertexgenai.Schema{
						"institution": stringProp(),
						"degree":      stringProp(),
						"year":        stringProp(),
					},
				},
			},
		},
		Required: []string{"full_name", "email"},
	}
}
