package handler_test

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-job-board/internal/domain"
)

func Test_CreateJob_ThenGetReturnsSameRecord(t *testing.T) {
	r := newPublicEngine(t)

	w := doJSON(r, http.MethodPost, "/api/jobs", validJobPayload(), "")
	require.Equal(t, http.StatusCreated, w.Code)
	created := decodeJob(t, w)

	assert.NoError(t, uuid.Validate(created.ID))
	assert.Equal(t, "Software Junior Developer", created.Title)
	assert.Equal(t, "Part-Time", created.Type)
	assert.Equal(t, "Microsoft", created.Company.Name)
	assert.Equal(t, "microsoft@outlook.com", created.Company.ContactEmail)
	assert.Equal(t, float64(60000), created.Salary)

	w = doJSON(r, http.MethodGet, "/api/jobs/"+created.ID, nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	got := decodeJob(t, w)
	assert.Equal(t, created.ID, got.ID)
	assert.Equal(t, created.Title, got.Title)
	assert.Equal(t, created.Company, got.Company)
}

func Test_CreateJob_DefaultsStatusAndPostedDate(t *testing.T) {
	r := newPublicEngine(t)

	payload := validJobPayload()
	delete(payload, "status")

	w := doJSON(r, http.MethodPost, "/api/jobs", payload, "")
	require.Equal(t, http.StatusCreated, w.Code)
	created := decodeJob(t, w)

	assert.Equal(t, domain.JobStatusOpen, created.Status)
	assert.WithinDuration(t, time.Now(), created.PostedDate, time.Minute)
}

func Test_CreateJob_RejectsMissingAndMalformedFields(t *testing.T) {
	r := newPublicEngine(t)

	cases := []struct {
		name   string
		mutate func(map[string]any)
	}{
		{"missing title", func(p map[string]any) { delete(p, "title") }},
		{"unknown type", func(p map[string]any) { p["type"] = "Contract" }},
		{"missing company email", func(p map[string]any) {
			p["company"] = map[string]any{"name": "Microsoft", "contactPhone": "123456"}
		}},
		{"malformed company email", func(p map[string]any) {
			p["company"] = map[string]any{"name": "Microsoft", "contactEmail": "not-an-email", "contactPhone": "123456"}
		}},
		{"missing salary", func(p map[string]any) { delete(p, "salary") }},
		{"unknown status", func(p map[string]any) { p["status"] = "paused" }},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			payload := validJobPayload()
			tc.mutate(payload)
			w := doJSON(r, http.MethodPost, "/api/jobs", payload, "")
			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.NotEmpty(t, decodeError(t, w))
		})
	}
}

func Test_GetJob_UnknownIDReturns404(t *testing.T) {
	r := newPublicEngine(t)

	w := doJSON(r, http.MethodGet, "/api/jobs/"+uuid.NewString(), nil, "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func Test_JobRoutes_MalformedIDReturns400(t *testing.T) {
	r := newPublicEngine(t)

	for _, m := range []string{http.MethodGet, http.MethodPut, http.MethodDelete} {
		w := doJSON(r, m, "/api/jobs/12345", map[string]any{}, "")
		assert.Equal(t, http.StatusBadRequest, w.Code, "method %s", m)
	}
}

func Test_UpdateJob_MergesOnlySuppliedFields(t *testing.T) {
	r := newPublicEngine(t)

	w := doJSON(r, http.MethodPost, "/api/jobs", validJobPayload(), "")
	require.Equal(t, http.StatusCreated, w.Code)
	created := decodeJob(t, w)

	w = doJSON(r, http.MethodPut, "/api/jobs/"+created.ID, map[string]any{
		"title":       "UPDATED Software Senior Developer",
		"description": "UPDATED Web Development",
	}, "")
	require.Equal(t, http.StatusOK, w.Code)
	updated := decodeJob(t, w)

	assert.Equal(t, "UPDATED Software Senior Developer", updated.Title)
	assert.Equal(t, "UPDATED Web Development", updated.Description)
	// everything else untouched
	assert.Equal(t, created.Type, updated.Type)
	assert.Equal(t, created.Company, updated.Company)
	assert.Equal(t, created.Location, updated.Location)
	assert.Equal(t, created.Salary, updated.Salary)
	assert.Equal(t, created.Status, updated.Status)
}

func Test_UpdateJob_MergesNestedCompanySubset(t *testing.T) {
	r := newPublicEngine(t)

	w := doJSON(r, http.MethodPost, "/api/jobs", validJobPayload(), "")
	require.Equal(t, http.StatusCreated, w.Code)
	created := decodeJob(t, w)

	w = doJSON(r, http.MethodPut, "/api/jobs/"+created.ID, map[string]any{
		"company": map[string]any{"contactPhone": "987654"},
	}, "")
	require.Equal(t, http.StatusOK, w.Code)
	updated := decodeJob(t, w)

	assert.Equal(t, "987654", updated.Company.ContactPhone)
	assert.Equal(t, created.Company.Name, updated.Company.Name)
	assert.Equal(t, created.Company.ContactEmail, updated.Company.ContactEmail)
}

func Test_UpdateJob_RejectsBlankedRequiredFields(t *testing.T) {
	r := newPublicEngine(t)

	w := doJSON(r, http.MethodPost, "/api/jobs", validJobPayload(), "")
	require.Equal(t, http.StatusCreated, w.Code)
	created := decodeJob(t, w)

	cases := []struct {
		name string
		body map[string]any
	}{
		{"empty type", map[string]any{"type": ""}},
		{"empty status", map[string]any{"status": ""}},
		{"empty title", map[string]any{"title": ""}},
		{"empty company email", map[string]any{"company": map[string]any{"contactEmail": ""}}},
		{"malformed company email", map[string]any{"company": map[string]any{"contactEmail": "not-an-email"}}},
		{"empty company name", map[string]any{"company": map[string]any{"name": ""}}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := doJSON(r, http.MethodPut, "/api/jobs/"+created.ID, tc.body, "")
			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.NotEmpty(t, decodeError(t, w))
		})
	}

	// the stored record kept its original values
	w = doJSON(r, http.MethodGet, "/api/jobs/"+created.ID, nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	got := decodeJob(t, w)
	assert.Equal(t, created.Type, got.Type)
	assert.Equal(t, created.Status, got.Status)
	assert.Equal(t, created.Title, got.Title)
	assert.Equal(t, created.Company, got.Company)
}

func Test_UpdateJob_UnknownIDReturns404(t *testing.T) {
	r := newPublicEngine(t)

	w := doJSON(r, http.MethodPut, "/api/jobs/"+uuid.NewString(), map[string]any{"title": "x"}, "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func Test_DeleteJob_RemovesRecord(t *testing.T) {
	r := newPublicEngine(t)

	w := doJSON(r, http.MethodPost, "/api/jobs", validJobPayload(), "")
	require.Equal(t, http.StatusCreated, w.Code)
	created := decodeJob(t, w)

	w = doJSON(r, http.MethodDelete, "/api/jobs/"+created.ID, nil, "")
	require.Equal(t, http.StatusNoContent, w.Code)
	assert.Empty(t, w.Body.Bytes())

	w = doJSON(r, http.MethodGet, "/api/jobs/"+created.ID, nil, "")
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = doJSON(r, http.MethodDelete, "/api/jobs/"+created.ID, nil, "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func Test_ListJobs_ReturnsAllCreatedRecords(t *testing.T) {
	r := newPublicEngine(t)

	first := validJobPayload()
	second := validJobPayload()
	second["title"] = "Software Senior Developer"
	second["type"] = "Full-Time"

	for _, p := range []map[string]any{first, second} {
		w := doJSON(r, http.MethodPost, "/api/jobs", p, "")
		require.Equal(t, http.StatusCreated, w.Code)
	}

	w := doJSON(r, http.MethodGet, "/api/jobs", nil, "")
	require.Equal(t, http.StatusOK, w.Code)

	var jobs []domain.Job
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &jobs))
	require.Len(t, jobs, 2)

	titles := []string{jobs[0].Title, jobs[1].Title}
	assert.Contains(t, titles, "Software Junior Developer")
	assert.Contains(t, titles, "Software Senior Developer")
}

func Test_ListJobs_EmptyStoreReturnsEmptyArray(t *testing.T) {
	r := newPublicEngine(t)

	w := doJSON(r, http.MethodGet, "/api/jobs", nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, "[]", w.Body.String())
}
