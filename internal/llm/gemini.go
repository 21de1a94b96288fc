package llm

import (
	"context"
	"net/http"
	"strings"
	"time"
)

const jsonMimeType = "application/json"

// geminiPayload is the body of a generateContent request.
type geminiPayload struct {
	Contents          []geminiContent         `json:"contents"`
	SystemInstruction *geminiContent          `json:"systemInstruction,omitempty"`
	GenerationConfig  *geminiGenerationConfig `json:"generationConfig,omitempty"`
}

type geminiContent struct {
	Role  string       `json:"role,omitempty"`
	Parts []geminiPart `json:"parts"`
}

type geminiPart struct {
	Text string `json:"text,omitempty"`
}

type geminiGenerationConfig struct {
	ResponseMimeType string  `json:"responseMimeType,omitempty"`
	Temperature      float64 `json:"temperature"`
	MaxOutputTokens  int     `json:"maxOutputTokens,omitempty"`
}

type geminiResponse struct {
	Candidates []struct {
		Content struct {
			Parts []struct {
				Text string `json:"text"`
			} `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
	ModelVersion string `json:"modelVersion"`
}

// geminiClient implements LLMClient against the Gemini generateContent API.
type geminiClient struct {
	cfg      LLMConfig
	http     *http.Client
	observer Observer
}

// NewGeminiClient creates an LLMClient that calls Gemini with cfg.APIKey.
func NewGeminiClient(cfg LLMConfig, observer Observer) LLMClient {
	if observer == nil {
		observer = NoopObserver{}
	}
	return &geminiClient{cfg: cfg, http: newHTTPClient(), observer: observer}
}

func (c *geminiClient) header() http.Header {
	h := http.Header{}
	h.Set("x-goog-api-key", c.cfg.APIKey)
	return h
}

func (c *geminiClient) Generate(ctx context.Context, req GenerateRequest) (*GenerateResponse, error) {
	start := time.Now()
	temp, maxTok := c.cfg.taskParams(req)

	ctx, cancel := context.WithTimeout(ctx, time.Duration(c.cfg.TaskTimeout(req.Task))*time.Millisecond)
	defer cancel()

	payload := geminiPayload{
		Contents: []geminiContent{
			{Role: "user", Parts: []geminiPart{{Text: req.UserPrompt}}},
		},
		GenerationConfig: &geminiGenerationConfig{
			ResponseMimeType: jsonMimeType,
			Temperature:      temp,
			MaxOutputTokens:  maxTok,
		},
	}
	if req.SystemPrompt != "" {
		payload.SystemInstruction = &geminiContent{Parts: []geminiPart{{Text: req.SystemPrompt}}}
	}

	url := c.cfg.Endpoint + "/models/" + c.cfg.Model + ":generateContent"
	var resp geminiResponse
	err := postJSON(ctx, c.http, url, c.header(), payload, &resp)

	var text string
	if err == nil {
		text = resp.text()
		if strings.TrimSpace(text) == "" {
			err = ErrEmptyResponse
		}
	}
	latency := time.Since(start).Milliseconds()
	if err != nil {
		err = classify(ctx, err)
		c.observer.OnCallComplete(LLMCallEvent{
			Task: req.Task, Provider: ProviderGemini, Model: c.cfg.Model,
			LatencyMs: latency, ErrorCode: errorCode(err),
		})
		return nil, err
	}

	c.observer.OnCallComplete(LLMCallEvent{
		Task: req.Task, Provider: ProviderGemini, Model: c.cfg.Model,
		LatencyMs: latency, Success: true,
	})
	model := resp.ModelVersion
	if model == "" {
		model = c.cfg.Model
	}
	return &GenerateResponse{Text: text, Model: model, LatencyMs: latency}, nil
}

func (c *geminiClient) Available(ctx context.Context) bool {
	return probe(ctx, c.http, c.cfg.Endpoint+"/models/"+c.cfg.Model, c.header())
}

// text concatenates the parts of the first candidate.
func (r geminiResponse) text() string {
	if len(r.Candidates) == 0 {
		return ""
	}
	var b strings.Builder
	for _, p := range r.Candidates[0].Content.Parts {
		b.WriteString(p.Text)
	}
	return b.String()
}
