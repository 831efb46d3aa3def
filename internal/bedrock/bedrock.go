// Package bedrock provides the requirement-to-Gherkin generation
// client. Only a mock implementation exists; it renders deterministic
// skeletons locally while keeping the shape of a remote model call.
package bedrock

import (
	"context"
	"time"

	"go.uber.org/zap"

	"bddkit/internal/gherkin"
)

// Generator turns an English requirement into a saved feature file.
type Generator interface {
	GenerateGherkin(ctx context.Context, requirement string, category gherkin.Category) (Response, error)
}

// Response reports one generation call.
type Response struct {
	GherkinContent  string        `json:"gherkin_content"`
	FeatureFilename string        `json:"feature_filename"`
	FeaturePath     string        `json:"feature_path"`
	ModelID         string        `json:"model_id"`
	ProcessingTime  time.Duration `json:"processing_time"`
}

// MockClient renders skeletons from the built-in templates. Latency is
// simulated so the caller's progress reporting behaves as it would
// against a real model.
type MockClient struct {
	FeaturesDir string
	ModelID     string
	Latency     time.Duration
	Log         *zap.Logger

	now func() time.Time
}

// NewMockClient builds the mock generation client.
func NewMockClient(featuresDir, modelID string, latency time.Duration, log *zap.Logger) *MockClient {
	if log == nil {
		log = zap.NewNop()
	}
	return &MockClient{
		FeaturesDir: featuresDir,
		ModelID:     modelID,
		Latency:     latency,
		Log:         log,
		now:         time.Now,
	}
}

// GenerateGherkin renders and saves the feature for a requirement.
func (c *MockClient) GenerateGherkin(ctx context.Context, requirement string, category gherkin.Category) (Response, error) {
	started := c.now()
	if c.Latency > 0 {
		select {
		case <-time.After(c.Latency):
		case <-ctx.Done():
			return Response{}, ctx.Err()
		}
	}

	doc, err := gherkin.Generate(requirement, category)
	if err != nil {
		return Response{}, err
	}
	savedAt := c.now()
	path, err := gherkin.Save(doc, c.FeaturesDir, savedAt)
	if err != nil {
		return Response{}, err
	}

	resp := Response{
		GherkinContent:  doc.Content,
		FeatureFilename: doc.Filename(savedAt),
		FeaturePath:     path,
		ModelID:         c.ModelID,
		ProcessingTime:  c.now().Sub(started),
	}
	c.Log.Info("generated feature",
		zap.String("category", string(doc.Category)),
		zap.String("path", path))
	return resp, nil
}
