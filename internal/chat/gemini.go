package chat

import (
	"context"
	"iter"

	"google.golang.org/genai"
)

type geminiStreamer struct {
	client      *genai.Client
	model       string
	temperature float32
}

func (g *geminiStreamer) Stream(ctx context.Context, history []*genai.Content) iter.Seq2[*genai.GenerateContentResponse, error] {
	cfg := &genai.GenerateContentConfig{
		Temperature:       genai.Ptr[float32](g.temperature),
		SystemInstruction: genai.NewContentFromText(systemInstruction, genai.RoleUser),
	}
	return g.client.Models.GenerateContentStream(ctx, g.model, history, cfg)
}
