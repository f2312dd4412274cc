package providers

import (
	"testing"

	"github.com/jarcoal/httpmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpenAIGenerateText(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "test-key")
	o := NewOpenAI()

	httpmock.ActivateNonDefault(o.client.GetClient())
	defer httpmock.DeactivateAndReset()

	httpmock.RegisterResponder("POST", openAIBaseURL+"/chat/completions",
		httpmock.NewStringResponder(200, `{
			"choices": [{"message": {"content": "Buy now!"}}],
			"usage": {"prompt_tokens": 120, "completion_tokens": 80}
		}`).HeaderSet(jsonHeader))

	result, err := o.GenerateText(TextRequest{System: "copywriter", Prompt: "write an ad", MaxTokens: 500})
	require.NoError(t, err)
	assert.Equal(t, "Buy now!", result.Text)
	assert.Equal(t, "openai", result.Provider)
	assert.Equal(t, 120, result.InputTokens)
	assert.Equal(t, 80, result.OutputTokens)
	assert.Greater(t, result.Cost, 0.0)
}

func TestOpenAIGenerateTextErrorStatus(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "test-key")
	o := NewOpenAI()

	httpmock.ActivateNonDefault(o.client.GetClient())
	defer httpmock.DeactivateAndReset()

	httpmock.RegisterResponder("POST", openAIBaseURL+"/chat/completions",
		httpmock.NewStringResponder(429, `{"error": {"message": "rate limited"}}`))

	_, err := o.GenerateText(TextRequest{Prompt: "write an ad"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "openai chat failed")
}

func TestOpenAIImagesDecodesPayload(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "test-key")
	o := NewOpenAIImages()

	httpmock.ActivateNonDefault(o.client.GetClient())
	defer httpmock.DeactivateAndReset()

	// "PNG" base64-encoded
	httpmock.RegisterResponder("POST", openAIBaseURL+"/images/generations",
		httpmock.NewStringResponder(200, `{"data": [{"b64_json": "UE5H"}]}`).HeaderSet(jsonHeader))

	result, err := o.GenerateImage(ImageRequest{Prompt: "a red mug"})
	require.NoError(t, err)
	assert.Equal(t, []byte("PNG"), result.PNG)
	assert.Equal(t, FlatCost("openai-image"), result.Cost)
}

func TestDeepSeekGenerateText(t *testing.T) {
	t.Setenv("DEEPSEEK_API_KEY", "test-key")
	d := NewDeepSeek()

	httpmock.ActivateNonDefault(d.client.GetClient())
	defer httpmock.DeactivateAndReset()

	httpmock.RegisterResponder("POST", deepSeekBaseURL+"/chat/completions",
		httpmock.NewStringResponder(200, `{
			"choices": [{"message": {"content": "cheap and cheerful"}}],
			"usage": {"prompt_tokens": 10, "completion_tokens": 5}
		}`).HeaderSet(jsonHeader))

	result, err := d.GenerateText(TextRequest{Prompt: "hello"})
	require.NoError(t, err)
	assert.Equal(t, "deepseek", result.Provider)
	assert.Equal(t, "cheap and cheerful", result.Text)
}

func TestAnthropicGenerateText(t *testing.T) {
	t.Setenv("ANTHROPIC_API_KEY", "test-key")
	a := NewAnthropic()

	httpmock.ActivateNonDefault(a.client.GetClient())
	defer httpmock.DeactivateAndReset()

	httpmock.RegisterResponder("POST", anthropicBaseURL+"/messages",
		httpmock.NewStringResponder(200, `{
			"content": [{"text": "premium copy"}],
			"usage": {"input_tokens": 200, "output_tokens": 150}
		}`).HeaderSet(jsonHeader))

	result, err := a.GenerateText(TextRequest{System: "copywriter", Prompt: "hello"})
	require.NoError(t, err)
	assert.Equal(t, "anthropic", result.Provider)
	assert.Equal(t, "premium copy", result.Text)
	assert.Equal(t, 200, result.InputTokens)
}
