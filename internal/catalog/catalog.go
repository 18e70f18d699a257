// Package catalog reformats the upstream model list for the API. It holds
// no copy of the data beyond one call.
package catalog

import (
	"context"
	"math"
	"time"

	"github.com/rs/zerolog"

	"github.com/sagarhutagi/ai-code-doctor/internal/llm"
	"github.com/sagarhutagi/ai-code-doctor/internal/models"
)

type Catalog struct {
	client       llm.Client
	defaultModel string
	logger       *zerolog.Logger
}

func New(client llm.Client, defaultModel string, logger *zerolog.Logger) *Catalog {
	return &Catalog{
		client:       client,
		defaultModel: defaultModel,
		logger:       logger,
	}
}

// List re-queries the upstream tags endpoint and reorders the result so
// the configured default model comes first; the remaining entries keep
// the upstream order. An empty upstream list yields a single synthetic
// entry for the default model so the UI always has something to select.
func (c *Catalog) List(ctx context.Context) ([]models.ModelDescriptor, error) {
	infos, err := c.client.ListModels(ctx)
	if err != nil {
		return nil, err
	}

	if len(infos) == 0 {
		c.logger.Warn().
			Str("default_model", c.defaultModel).
			Msg("Upstream returned no models, synthesizing default entry")
		return []models.ModelDescriptor{{Name: c.defaultModel}}, nil
	}

	descriptors := make([]models.ModelDescriptor, 0, len(infos))
	for _, info := range infos {
		d := describe(info)
		if info.Name == c.defaultModel {
			descriptors = append([]models.ModelDescriptor{d}, descriptors...)
		} else {
			descriptors = append(descriptors, d)
		}
	}
	return descriptors, nil
}

func describe(info llm.ModelInfo) models.ModelDescriptor {
	modified := ""
	if !info.ModifiedAt.IsZero() {
		modified = info.ModifiedAt.Format(time.RFC3339)
	}
	return models.ModelDescriptor{
		Name:     info.Name,
		SizeGB:   math.Round(float64(info.SizeBytes)/(1<<30)*10) / 10,
		Modified: modified,
	}
}
