package fetch

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestURL_FetchesContent(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		_, _ = w.Write([]byte("<html><body>Hello</body></html>"))
	}))
	defer server.Close()

	result, err := URL(context.Background(), server.URL, nil)

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, result.StatusCode)
	assert.Contains(t, result.HTML, "Hello")
	assert.Contains(t, result.ContentType, "text/html")
}

func TestURL_SetsUserAgent(t *testing.T) {
	var gotUA string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUA = r.Header.Get("User-Agent")
	}))
	defer server.Close()

	_, err := URL(context.Background(), server.URL, nil)

	require.NoError(t, err)
	assert.Equal(t, DefaultUserAgent, gotUA)
}

func TestURL_NonOKStatusReturnsError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "gone", http.StatusNotFound)
	}))
	defer server.Close()

	result, err := URL(context.Background(), server.URL, nil)

	require.Error(t, err)
	var fetchErr *Error
	require.ErrorAs(t, err, &fetchErr)
	assert.Equal(t, http.StatusNotFound, result.StatusCode)
}

func TestURL_InvalidURL(t *testing.T) {
	_, err := URL(context.Background(), "not-a-url", nil)

	var fetchErr *Error
	require.ErrorAs(t, err, &fetchErr)
	assert.Contains(t, fetchErr.Message, "invalid URL")
}

func TestExtractMainText_PrefersJobDescription(t *testing.T) {
	html := `<html><body>
		<nav>Site navigation</nav>
		<div class="job-description">Senior Go engineer wanted. 5+ years experience with PostgreSQL.</div>
		<footer>Copyright</footer>
	</body></html>`

	text, err := ExtractMainText(html, JobPostingSelectors())

	require.NoError(t, err)
	assert.Contains(t, text, "Senior Go engineer wanted")
	assert.NotContains(t, text, "Site navigation")
	assert.NotContains(t, text, "Copyright")
}

func TestExtractMainText_FallsBackToBody(t *testing.T) {
	html := `<html><body><p>Plain posting text.</p><script>var x = 1;</script></body></html>`

	text, err := ExtractMainText(html, JobPostingSelectors())

	require.NoError(t, err)
	assert.Equal(t, "Plain posting text.", text)
	assert.NotContains(t, text, "var x")
}

func TestExtractMainText_NormalizesWhitespace(t *testing.T) {
	html := "<html><body><main>  first line  \n\n\n   second line   </main></body></html>"

	text, err := ExtractMainText(html, JobPostingSelectors())

	require.NoError(t, err)
	assert.Equal(t, "first line\nsecond line", text)
}

func TestShouldUseBrowser(t *testing.T) {
	assert.True(t, ShouldUseBrowser(""))
	assert.True(t, ShouldUseBrowser("short stub"))
	assert.False(t, ShouldUseBrowser(strings.Repeat("job requirements ", 40)))
}

func TestJobPosting_StaticPage(t *testing.T) {
	body := "<html><body><div class='job-description'>" +
		strings.Repeat("Looking for a Go engineer with PostgreSQL experience. ", 15) +
		"</div></body></html>"
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(body))
	}))
	defer server.Close()

	text, err := JobPosting(context.Background(), server.URL, false)

	require.NoError(t, err)
	assert.Contains(t, text, "Go engineer with PostgreSQL")
	assert.False(t, ShouldUseBrowser(text))
}
