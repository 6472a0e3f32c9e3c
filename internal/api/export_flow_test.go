package api

import (
	"encoding/json"
	"net/http"
	"strings"
	"testing"
)

func TestExportDownloadHeaders(t *testing.T) {
	app := newTestApp(t)

	response := doRequest(t, app, authedRequest(t, app, http.MethodGet, "/api/export", nil))
	body := readBody(t, response)
	if response.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", response.StatusCode)
	}
	if disposition := response.Header.Get("Content-Disposition"); !strings.Contains(disposition, "stride-export.json") {
		t.Fatalf("unexpected content disposition %q", disposition)
	}

	var snapshot map[string]json.RawMessage
	if err := json.Unmarshal(body, &snapshot); err != nil {
		t.Fatalf("export is not valid JSON: %v", err)
	}
	for _, key := range []string{"routines", "routineLogs", "tasks", "taskLogs", "actions", "goals", "goalCategories", "lifePrinciples", "visualizations", "moodLogs", "settings"} {
		if _, ok := snapshot[key]; !ok {
			t.Fatalf("export missing collection %q", key)
		}
	}
}

func TestExportImportRoundTripOverHTTP(t *testing.T) {
	app := newTestApp(t)
	cookie := loginCookie(t, app)

	saveRequest := jsonRequest(http.MethodPost, "/api/principles", map[string]string{
		"text": "Protect the morning hours.",
	})
	saveRequest.AddCookie(cookie)
	readBody(t, doRequest(t, app, saveRequest))

	exportRequest := jsonRequest(http.MethodGet, "/api/export", nil)
	exportRequest.AddCookie(cookie)
	snapshot := readBody(t, doRequest(t, app, exportRequest))

	// A second, empty app imports the snapshot.
	target := newTestApp(t)
	targetCookie := loginCookie(t, target)

	importRequest := rawJSONRequest(http.MethodPost, "/api/import", snapshot)
	importRequest.AddCookie(targetCookie)
	importResponse := doRequest(t, target, importRequest)
	readBody(t, importResponse)
	if importResponse.StatusCode != http.StatusOK {
		t.Fatalf("import failed: %d", importResponse.StatusCode)
	}

	listRequest := jsonRequest(http.MethodGet, "/api/principles", nil)
	listRequest.AddCookie(targetCookie)

	var principles []map[string]any
	decodeBody(t, doRequest(t, target, listRequest), &principles)
	if len(principles) != 1 {
		t.Fatalf("expected 1 imported principle, got %d", len(principles))
	}
	if principles[0]["text"] != "Protect the morning hours." {
		t.Fatalf("unexpected principle %+v", principles[0])
	}
}

func TestImportRejectsTruncatedPayload(t *testing.T) {
	app := newTestApp(t)

	request := rawJSONRequest(http.MethodPost, "/api/import", []byte(`{"routines": []}`))
	request.AddCookie(loginCookie(t, app))
	response := doRequest(t, app, request)

	if response.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", response.StatusCode)
	}
	var body map[string]string
	decodeBody(t, response, &body)
	if !strings.Contains(body["error"], "invalid import payload") {
		t.Fatalf("unexpected error message %q", body["error"])
	}
}
