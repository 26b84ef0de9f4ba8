package service

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/mehedihb/kagojghor-backend/config"
	"github.com/mehedihb/kagojghor-backend/pkg/util"
)

// openAIExtractor asks a chat-completion model to pull the applicant
// fields out of text the deterministic patterns could not fully parse
// (skewed scans, unusual layouts, handwriting OCR).
type openAIExtractor struct {
	config *config.Config
	client *http.Client
}

func NewOpenAIExtractor(cfg *config.Config) StructuredExtractor {
	return &openAIExtractor{
		config: cfg,
		client: &http.Client{Timeout: 30 * time.Second},
	}
}

type openAIRequest struct {
	Model    string          `json:"model"`
	Messages []openAIMessage `json:"messages"`
}

type openAIMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type openAIResponse struct {
	Choices []struct {
		Message openAIMessage `json:"message"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
		Type    string `json:"type"`
	} `json:"error,omitempty"`
}

// extractorPayload is the JSON shape the model is instructed to return.
type extractorPayload struct {
	Name        string `json:"name"`
	FatherName  string `json:"father_name"`
	MotherName  string `json:"mother_name"`
	DateOfBirth string `json:"date_of_birth"`
}

func (e *openAIExtractor) ExtractFields(text string) (ExtractedFields, error) {
	if e.config.OpenAI.APIKey == "" {
		return ExtractedFields{}, fmt.Errorf("OpenAI API key is not configured")
	}

	content, err := e.callOpenAI(e.buildPrompt(text))
	if err != nil {
		return ExtractedFields{}, fmt.Errorf("failed to call OpenAI API: %v", err)
	}

	var payload extractorPayload
	if err := json.Unmarshal([]byte(stripCodeFence(content)), &payload); err != nil {
		return ExtractedFields{}, fmt.Errorf("failed to parse extractor response: %v", err)
	}

	var fields ExtractedFields
	if util.ContainsBangla(payload.Name) {
		fields.NameBn = payload.Name
	} else {
		fields.NameEn = payload.Name
	}
	fields.FatherName = payload.FatherName
	fields.MotherName = payload.MotherName
	if payload.DateOfBirth != "" {
		fields.DateOfBirth, fields.BirthYear = parseBirthDate(payload.DateOfBirth)
	}
	return fields, nil
}

func (e *openAIExtractor) buildPrompt(text string) string {
	var prompt strings.Builder

	prompt.WriteString("নিচের স্ক্যান করা ডকুমেন্টের লেখা থেকে আবেদনকারীর তথ্য বের করুন।\n")
	prompt.WriteString("Extract the applicant's details from the scanned document text below.\n\n")
	prompt.WriteString("Rules:\n")
	prompt.WriteString("- Return ONLY a JSON object, no commentary, no markdown.\n")
	prompt.WriteString(`- Keys: "name", "father_name", "mother_name", "date_of_birth".` + "\n")
	prompt.WriteString("- Keep names in their original script (Bengali stays Bengali).\n")
	prompt.WriteString("- date_of_birth must be DD/MM/YYYY with western digits; if only a year is visible, return just the 4-digit year.\n")
	prompt.WriteString("- Use an empty string for anything not present. Never invent values.\n\n")
	prompt.WriteString("Document text:\n")
	prompt.WriteString(text)

	return prompt.String()
}

func (e *openAIExtractor) callOpenAI(prompt string) (string, error) {
	reqData := openAIRequest{
		Model: e.config.OpenAI.Model,
		Messages: []openAIMessage{
			{
				Role:    "user",
				Content: prompt,
			},
		},
	}

	jsonData, err := json.Marshal(reqData)
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %v", err)
	}

	req, err := http.NewRequest("POST", "https://api.openai.com/v1/chat/completions", bytes.NewBuffer(jsonData))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %v", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", fmt.Sprintf("Bearer %s", e.config.OpenAI.APIKey))

	resp, err := e.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to send request: %v", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read response: %v", err)
	}

	var openAIResp openAIResponse
	if err := json.Unmarshal(body, &openAIResp); err != nil {
		return "", fmt.Errorf("failed to parse response: %v", err)
	}

	if openAIResp.Error != nil {
		return "", fmt.Errorf("OpenAI API error: %s", openAIResp.Error.Message)
	}
	if len(openAIResp.Choices) == 0 {
		return "", fmt.Errorf("OpenAI API returned no choices")
	}

	return openAIResp.Choices[0].Message.Content, nil
}

// stripCodeFence tolerates models that wrap the JSON in a markdown fence
// despite the instructions.
func stripCodeFence(s string) string {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "```") {
		s = strings.TrimPrefix(s, "```json")
		s = strings.TrimPrefix(s, "```")
		s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	}
	return strings.TrimSpace(s)
}
