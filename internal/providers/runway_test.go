package providers

import (
	"net/http"
	"testing"
	"time"

	"github.com/jarcoal/httpmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// jsonHeader labels mocked bodies as JSON so resty's SetResult decoding
// runs; httpmock's string responses carry no Content-Type by default.
var jsonHeader = http.Header{"Content-Type": []string{"application/json"}}

func jsonResponse(status int, body string) *http.Response {
	resp := httpmock.NewStringResponse(status, body)
	resp.Header.Set("Content-Type", "application/json")
	return resp
}

func newTestRunway(t *testing.T) *Runway {
	t.Setenv("RUNWAY_API_KEY", "test-key")
	r := NewRunway()
	r.pollInterval = time.Millisecond
	r.maxPolls = 5
	httpmock.ActivateNonDefault(r.client.GetClient())
	t.Cleanup(httpmock.DeactivateAndReset)
	return r
}

func TestRunwayCreateImageToVideo(t *testing.T) {
	r := newTestRunway(t)

	httpmock.RegisterResponder("POST", runwayBaseURL+"/image_to_video",
		httpmock.NewStringResponder(200, `{"id": "task-123"}`).HeaderSet(jsonHeader))

	taskID, err := r.CreateImageToVideo("https://cdn.example.com/still.png", "slow pan", 5)
	require.NoError(t, err)
	assert.Equal(t, "task-123", taskID)
}

func TestRunwayWaitForTaskSucceeds(t *testing.T) {
	r := newTestRunway(t)

	httpmock.RegisterResponder("GET", runwayBaseURL+"/tasks/task-123",
		httpmock.ResponderFromMultipleResponses([]*http.Response{
			jsonResponse(200, `{"id": "task-123", "status": "RUNNING"}`),
			jsonResponse(200, `{"id": "task-123", "status": "SUCCEEDED", "output": ["https://cdn.example.com/clip.mp4"]}`),
		}))

	url, err := r.WaitForTask("task-123")
	require.NoError(t, err)
	assert.Equal(t, "https://cdn.example.com/clip.mp4", url)
}

func TestRunwayWaitForTaskFails(t *testing.T) {
	r := newTestRunway(t)

	httpmock.RegisterResponder("GET", runwayBaseURL+"/tasks/task-bad",
		httpmock.NewStringResponder(200, `{"id": "task-bad", "status": "FAILED", "failure": "content policy"}`).HeaderSet(jsonHeader))

	_, err := r.WaitForTask("task-bad")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "content policy")
}

func TestRunwayWaitForTaskTimesOut(t *testing.T) {
	r := newTestRunway(t)

	httpmock.RegisterResponder("GET", runwayBaseURL+"/tasks/task-slow",
		httpmock.NewStringResponder(200, `{"id": "task-slow", "status": "RUNNING"}`).HeaderSet(jsonHeader))

	_, err := r.WaitForTask("task-slow")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "timeout")
}

func TestMockupRender(t *testing.T) {
	t.Setenv("DYNAMIC_MOCKUPS_API_KEY", "test-key")
	m := NewDynamicMockups()

	httpmock.ActivateNonDefault(m.client.GetClient())
	defer httpmock.DeactivateAndReset()

	httpmock.RegisterResponder("POST", dynamicMockupsBaseURL+"/renders",
		httpmock.NewStringResponder(200, `{"success": true, "data": {"export_path": "https://cdn.example.com/render.png"}}`).HeaderSet(jsonHeader))

	url, err := m.Render("aaaaaaaa-bbbb-cccc-dddd-eeeeeeeeeeee", "11111111-2222-3333-4444-555555555555", "https://cdn.example.com/art.png")
	require.NoError(t, err)
	assert.Equal(t, "https://cdn.example.com/render.png", url)
}

func TestMockupRenderRejected(t *testing.T) {
	t.Setenv("DYNAMIC_MOCKUPS_API_KEY", "test-key")
	m := NewDynamicMockups()

	httpmock.ActivateNonDefault(m.client.GetClient())
	defer httpmock.DeactivateAndReset()

	httpmock.RegisterResponder("POST", dynamicMockupsBaseURL+"/renders",
		httpmock.NewStringResponder(200, `{"success": false, "message": "unknown template"}`).HeaderSet(jsonHeader))

	_, err := m.Render("aaaaaaaa-bbbb-cccc-dddd-eeeeeeeeeeee", "11111111-2222-3333-4444-555555555555", "https://cdn.example.com/art.png")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown template")
}
