package gemini

import (
	"context"
	"errors"
	"sync"

	"github.com/ajinkya1806/Data-Diggers/internal/enrich"
	"github.com/ajinkya1806/Data-Diggers/pkg/logger_i"
	"google.golang.org/genai"
)

type oracleClient struct {
	client    *genai.Client
	modelName string
}

var logger *logger_i.Logger
var geminiOracle *oracleClient
var once sync.Once

func GetGeminiOracle(ctx context.Context, modelName string, apikey string) enrich.Oracle {
	once.Do(func() {
		logger = logger_i.NewLogger("oracle_gemini")
		newOracleClient(ctx, apikey, modelName)
	})

	if geminiOracle == nil {
		return nil
	}
	return geminiOracle
}

func newOracleClient(ctx context.Context, apikey string, modelName string) {
	if apikey == "" {
		logger.Warn("No Gemini API key set, oracle disabled")
		return
	}

	c, err := genai.NewClient(ctx, &genai.ClientConfig{APIKey: apikey})
	if err != nil {
		logger.Error("Error creating Gemini client:", "error", err)
		return
	}
	if c != nil {
		geminiOracle = &oracleClient{client: c, modelName: modelName}
		logger.Info("Gemini oracle client created")
		go closeClient(ctx, geminiOracle)
	}
}

func (c *oracleClient) Transform(ctx context.Context, prompt string) (string, error) {
	result, err := c.client.Models.GenerateContent(
		ctx,
		c.modelName,
		genai.Text(prompt),
		nil,
	)
	if err != nil {
		return "", err
	}
	if result == nil {
		return "", errors.New("empty generation result")
	}
	return result.Text(), nil
}

func closeClient(ctx context.Context, oracle *oracleClient) {
	<-ctx.Done()
	logger.Info("Closing Gemini oracle client")
	oracle.client = nil
	oracle.modelName = ""
}
