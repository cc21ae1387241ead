package gemini

import (
	"context"
	"errors"
	"sync"

	"github.com/ajinkya1806/Data-Diggers/internal/ocr"
	"github.com/ajinkya1806/Data-Diggers/pkg/logger_i"
	"google.golang.org/genai"
)

type visionClient struct {
	client    *genai.Client
	modelName string
}

var logger *logger_i.Logger
var geminiVision *visionClient
var once sync.Once

const transcribePrompt = "Transcribe every piece of text visible in this document image. " +
	"Output the raw text only, one line per printed line, no commentary."

func GetGeminiVision(ctx context.Context, modelName string, apikey string) ocr.VisionClient {
	once.Do(func() {
		logger = logger_i.NewLogger("vision_gemini")
		newVisionClient(ctx, apikey, modelName)
	})

	if geminiVision == nil {
		return nil
	}
	return geminiVision
}

func newVisionClient(ctx context.Context, apikey string, modelName string) {
	if apikey == "" {
		logger.Warn("No Gemini API key set, image OCR disabled")
		return
	}

	c, err := genai.NewClient(ctx, &genai.ClientConfig{APIKey: apikey})
	if err != nil {
		logger.Error("Error creating Gemini client:", "error", err)
		return
	}
	if c != nil {
		geminiVision = &visionClient{client: c, modelName: modelName}
		logger.Info("Gemini vision client created")
		go closeClient(ctx, geminiVision)
	}
}

func (c *visionClient) Transcribe(ctx context.Context, data []byte, mimeType string) (string, error) {
	contents := []*genai.Content{{
		Role: genai.RoleUser,
		Parts: []*genai.Part{
			{Text: transcribePrompt},
			{InlineData: &genai.Blob{MIMEType: mimeType, Data: data}},
		},
	}}

	result, err := c.client.Models.GenerateContent(ctx, c.modelName, contents, nil)
	if err != nil {
		return "", err
	}
	if result == nil {
		return "", errors.New("empty transcription result")
	}
	return result.Text(), nil
}

func closeClient(ctx context.Context, vision *visionClient) {
	<-ctx.Done()
	logger.Info("Closing Gemini vision client")
	vision.client = nil
	vision.modelName = ""
}
