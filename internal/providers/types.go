package providers

// TextRequest is a single prompt sent to a text provider.
type TextRequest struct {
	System    string
	Prompt    string
	MaxTokens int
}

// TextResult is the parsed output of a text provider call.
type TextResult struct {
	Text         string
	Provider     string
	InputTokens  int
	OutputTokens int
	Cost         float64
}

// ImageRequest is a single prompt sent to an image provider.
type ImageRequest struct {
	Prompt      string
	AspectRatio string
}

// ImageResult holds the generated image bytes.
type ImageResult struct {
	PNG      []byte
	Provider string
	Cost     float64
}

// TextProvider generates marketing copy from a prompt.
type TextProvider interface {
	Name() string
	GenerateText(req TextRequest) (*TextResult, error)
}

// ImageProvider generates an image from a prompt.
type ImageProvider interface {
	Name() string
	GenerateImage(req ImageRequest) (*ImageResult, error)
}
