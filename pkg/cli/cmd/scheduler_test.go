package cmd_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
)

const jobJSON = `{"ID":"web","Name":"web","Type":"service"}`

const editedPlan = `{
  "JobModifyIndex": 7,
  "Diff": {
    "Type": "Edited",
    "ID": "web",
    "Fields": [{"Type": "Edited", "Name": "Priority", "Old": "50", "New": "60"}],
    "TaskGroups": [{"Type": "Edited", "Name": "app", "Updates": {"in-place update": 1}}]
  }
}`

const failedPlan = `{
  "JobModifyIndex": 7,
  "FailedTGAllocs": {"app": {"NodesEvaluated": 2, "NodesExhausted": 2, "CoalescedFailures": 1}}
}`

type registration struct {
	JobModifyIndex uint64 `json:"JobModifyIndex"`
	EnforceIndex   bool   `json:"EnforceIndex"`
}

// fakeScheduler answers the scheduler endpoints the commands use.
type fakeScheduler struct {
	mu sync.Mutex

	plan          string
	validate      string
	parseStatus   int
	evalStatus    string
	parsed        []string
	registrations []registration
	deregistered  []string
}

func newFakeScheduler(t *testing.T, plan string) (*fakeScheduler, *httptest.Server) {
	t.Helper()

	fake := &fakeScheduler{
		plan:        plan,
		validate:    `{}`,
		parseStatus: http.StatusOK,
		evalStatus:  "complete",
	}

	mux := http.NewServeMux()
	mux.HandleFunc("POST /v1/jobs/parse", fake.handleParse)
	mux.HandleFunc("PUT /v1/job/{id}/plan", fake.respond(func() string { return fake.plan }))
	mux.HandleFunc("PUT /v1/jobs", fake.handleRegister)
	mux.HandleFunc("POST /v1/validate/job", fake.respond(func() string { return fake.validate }))
	mux.HandleFunc("DELETE /v1/job/{id}", fake.handleDeregister)
	mux.HandleFunc("GET /v1/evaluation/{id}", fake.handleEvaluation)
	mux.HandleFunc("GET /v1/deployment/{id}", fake.respond(func() string {
		return `{"ID":"d1","Status":"successful"}`
	}))

	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)

	return fake, server
}

func (f *fakeScheduler) respond(body func() string) http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		f.mu.Lock()
		defer f.mu.Unlock()

		_, _ = io.WriteString(w, body())
	}
}

func (f *fakeScheduler) handleParse(w http.ResponseWriter, r *http.Request) {
	var req struct {
		JobHCL string `json:"JobHCL"`
	}

	_ = json.NewDecoder(r.Body).Decode(&req)

	f.mu.Lock()
	defer f.mu.Unlock()

	f.parsed = append(f.parsed, req.JobHCL)

	if f.parseStatus != http.StatusOK {
		http.Error(w, "1:1: unexpected token", f.parseStatus)

		return
	}

	_, _ = io.WriteString(w, jobJSON)
}

func (f *fakeScheduler) handleRegister(w http.ResponseWriter, r *http.Request) {
	var req registration

	_ = json.NewDecoder(r.Body).Decode(&req)

	f.mu.Lock()
	defer f.mu.Unlock()

	f.registrations = append(f.registrations, req)

	_, _ = io.WriteString(w, `{"EvalID":"e1"}`)
}

func (f *fakeScheduler) handleDeregister(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.deregistered = append(f.deregistered, r.PathValue("id")+"?purge="+r.URL.Query().Get("purge"))

	_, _ = io.WriteString(w, `{"EvalID":"e2"}`)
}

func (f *fakeScheduler) handleEvaluation(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	defer f.mu.Unlock()

	eval := map[string]string{
		"ID":                r.PathValue("id"),
		"Status":            f.evalStatus,
		"StatusDescription": "no capacity",
	}

	if r.PathValue("id") == "e1" {
		eval["DeploymentID"] = "d1"
	}

	_ = json.NewEncoder(w).Encode(eval)
}
