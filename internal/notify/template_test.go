package notify

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderStatusEmail_StatusColors(t *testing.T) {
	now := time.Date(2026, 5, 10, 0, 0, 0, 0, time.UTC)

	cases := []struct {
		status string
		color  string
	}{
		{"Submitted", "#6c757d"},
		{"Reviewed", "#17a2b8"},
		{"Rejected", "#dc3545"},
		{"Hired", "#28a745"},
		{"SomethingElse", "#667eea"},
		{"", "#667eea"},
	}

	for _, tc := range cases {
		html, err := RenderStatusEmail("Asha", "Backend Engineer", "https://app.example.com/dashboard", tc.status, now)
		require.NoError(t, err, "status %q", tc.status)
		assert.Contains(t, html, "color:"+tc.color, "status %q", tc.status)
	}
}

func TestRenderStatusEmail_Content(t *testing.T) {
	now := time.Date(2026, 5, 10, 0, 0, 0, 0, time.UTC)
	html, err := RenderStatusEmail("Asha", "Backend Engineer", "https://app.example.com/dashboard", "Hired", now)
	require.NoError(t, err)

	assert.Contains(t, html, "Hi <strong>Asha</strong>")
	assert.Contains(t, html, "<strong>Backend Engineer</strong>")
	assert.Contains(t, html, `href="https://app.example.com/dashboard"`)
	assert.Contains(t, html, "2026")
}

func TestRenderStatusEmail_EmptyStatusFallsBackToUpdated(t *testing.T) {
	html, err := RenderStatusEmail("Asha", "Backend Engineer", "https://app.example.com", "", time.Now())
	require.NoError(t, err)
	assert.Contains(t, html, ">Updated</strong>")
}

func TestRenderStatusEmail_EscapesUserInput(t *testing.T) {
	html, err := RenderStatusEmail("<script>alert(1)</script>", "Backend Engineer", "https://app.example.com", "Hired", time.Now())
	require.NoError(t, err)
	assert.False(t, strings.Contains(html, "<script>"), "user input must be escaped")
}

func TestStatusEmailSubject(t *testing.T) {
	assert.Equal(t, "Update on your application for Backend Engineer", StatusEmailSubject("Backend Engineer"))
	assert.Equal(t, "Your application status was updated", StatusEmailSubject(""))
}
