package providers

import (
	"fmt"
	"os"
	"time"

	"github.com/go-resty/resty/v2"
)

const runwayBaseURL = "https://api.dev.runwayml.com/v1"

// Runway turns a still image into a short slideshow-style video clip.
// Generation is asynchronous: a task is created, then polled.
type Runway struct {
	client       *resty.Client
	apiKey       string
	pollInterval time.Duration
	maxPolls     int
}

func NewRunway() *Runway {
	return &Runway{
		client:       resty.New().SetBaseURL(runwayBaseURL),
		apiKey:       os.Getenv("RUNWAY_API_KEY"),
		pollInterval: 5 * time.Second,
		maxPolls:     60,
	}
}

func (r *Runway) Name() string {
	return "runway"
}

type runwayTaskResponse struct {
	ID      string   `json:"id"`
	Status  string   `json:"status"`
	Output  []string `json:"output"`
	Failure string   `json:"failure"`
}

// CreateImageToVideo starts a generation task and returns its ID.
func (r *Runway) CreateImageToVideo(imageURL, promptText string, durationSec int) (string, error) {
	if durationSec == 0 {
		durationSec = 5
	}

	var out runwayTaskResponse
	resp, err := r.client.R().
		SetAuthToken(r.apiKey).
		SetHeader("X-Runway-Version", "2024-11-06").
		SetBody(map[string]interface{}{
			"model":       "gen3a_turbo",
			"promptImage": imageURL,
			"promptText":  promptText,
			"duration":    durationSec,
		}).
		SetResult(&out).
		Post("/image_to_video")
	if err != nil {
		return "", err
	}
	if resp.IsError() {
		return "", fmt.Errorf("runway task create failed: %s, %s", resp.Status(), resp.String())
	}
	if out.ID == "" {
		return "", fmt.Errorf("runway returned no task id")
	}

	return out.ID, nil
}

// WaitForTask polls the task until it succeeds, fails, or the poll budget
// runs out. On success it returns the first output URL.
func (r *Runway) WaitForTask(taskID string) (string, error) {
	for i := 0; i < r.maxPolls; i++ {
		var out runwayTaskResponse
		resp, err := r.client.R().
			SetAuthToken(r.apiKey).
			SetHeader("X-Runway-Version", "2024-11-06").
			SetResult(&out).
			Get("/tasks/" + taskID)
		if err != nil {
			return "", err
		}
		if resp.IsError() {
			return "", fmt.Errorf("runway task poll failed: %s, %s", resp.Status(), resp.String())
		}

		switch out.Status {
		case "SUCCEEDED":
			if len(out.Output) == 0 {
				return "", fmt.Errorf("runway task %s succeeded with no output", taskID)
			}
			return out.Output[0], nil
		case "FAILED":
			return "", fmt.Errorf("runway task %s failed: %s", taskID, out.Failure)
		}

		time.Sleep(r.pollInterval)
	}

	return "", fmt.Errorf("timeout waiting for runway task %s", taskID)
}
