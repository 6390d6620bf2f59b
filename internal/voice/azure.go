package voice

import (
	"context"
	"fmt"
	"io"

	"github.com/Azure/azure-sdk-for-go/sdk/ai/azopenai"
	"github.com/Azure/azure-sdk-for-go/sdk/azcore"
	"github.com/Azure/azure-sdk-for-go/sdk/azcore/to"
)

// Synthesizer converts plain text into encoded audio bytes
type Synthesizer interface {
	Speak(ctx context.Context, text string) ([]byte, error)
}

// AzureSynthesizer implements Synthesizer against the Azure OpenAI speech API
type AzureSynthesizer struct {
	client         *azopenai.Client
	deploymentName string
	voice          azopenai.SpeechVoice
}

// NewAzureSynthesizer creates a speech client for the given endpoint and
// deployment
func NewAzureSynthesizer(endpoint, apiKey, deploymentName string) (*AzureSynthesizer, error) {
	if endpoint == "" || apiKey == "" || deploymentName == "" {
		return nil, fmt.Errorf("speech configuration missing: endpoint, API key and deployment name are required")
	}

	keyCredential := azcore.NewKeyCredential(apiKey)
	client, err := azopenai.NewClientWithKeyCredential(endpoint, keyCredential, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create speech client: %w", err)
	}

	return &AzureSynthesizer{
		client:         client,
		deploymentName: deploymentName,
		voice:          azopenai.SpeechVoiceNova,
	}, nil
}

// Speak generates MP3 audio for the given text
func (s *AzureSynthesizer) Speak(ctx context.Context, text string) ([]byte, error) {
	resp, err := s.client.GenerateSpeechFromText(ctx, azopenai.SpeechGenerationOptions{
		Input:          to.Ptr(fmt.Sprintf("Say with a clear and pleasant tone: %s", text)),
		Voice:          to.Ptr(s.voice),
		ResponseFormat: to.Ptr(azopenai.SpeechGenerationResponseFormatMp3),
		DeploymentName: to.Ptr(s.deploymentName),
	}, nil)
	if err != nil {
		return nil, fmt.Errorf("speech generation failed: %w", err)
	}
	defer resp.Body.Close()

	audio, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read speech response: %w", err)
	}
	return audio, nil
}
