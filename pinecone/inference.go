package pinecone

import (
	"context"
	"errors"
	"fmt"
	"net/http"
)

// Embedding input types recognized by the inference API. Passages and
// queries are embedded asymmetrically by the hosted models.
const (
	InputTypePassage = "passage"
	InputTypeQuery   = "query"
)

// Embed requests one embedding vector per input text from the hosted
// embedding model. Inputs longer than the model's window are truncated at
// the end.
func (c *Client) Embed(ctx context.Context, model string, texts []string, inputType string) ([][]float32, error) {
	if len(texts) == 0 {
		return [][]float32{}, nil
	}

	inputs := make([]map[string]string, len(texts))
	for i, t := range texts {
		inputs[i] = map[string]string{"text": t}
	}

	payload := map[string]interface{}{
		"model":  model,
		"inputs": inputs,
		"parameters": map[string]string{
			"input_type": inputType,
			"truncate":   "END",
		},
	}

	var out struct {
		Data []struct {
			Values []float32 `json:"values"`
		} `json:"data"`
	}
	if err := doJSON(ctx, c.httpClient, c.apiKey, http.MethodPost, c.baseURL+"/embed", payload, &out); err != nil {
		return nil, fmt.Errorf("embed request failed: %w", err)
	}
	if len(out.Data) != len(texts) {
		return nil, errors.New("embedding count mismatch")
	}

	vectors := make([][]float32, len(out.Data))
	for i, d := range out.Data {
		vectors[i] = d.Values
	}
	return vectors, nil
}
