// Package narrative asks a text-completion model for free-text risk commentary.
package narrative

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"riskscorer/internal/types"
)

var (
	ErrProviderUnavailable = errors.New("narrative: provider unavailable")
	ErrEmptyCompletion     = errors.New("narrative: empty completion")
)

const promptInstruction = "Analyze the risk level of these blockchain transactions and classify each as Low, Medium, or High risk with a short explanation:\n"

type Provider interface {
	GenerateInsight(ctx context.Context, prompt string) (string, error)
}

// BuildPrompt renders the classification instruction followed by the batch
// as JSON.
func BuildPrompt(transfers []types.TransferRecord) (string, error) {
	payload, err := json.Marshal(transfers)
	if err != nil {
		return "", fmt.Errorf("marshal transfers: %w", err)
	}
	return promptInstruction + string(payload), nil
}
