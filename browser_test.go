package uamatch

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBrowserString(t *testing.T) {
	b := Browser{Name: "Firefox", Version: "64.0"}
	assert.Equal(t, "Browser: Firefox Version: 64.0", b.String())
}

func TestBrowserEquality(t *testing.T) {
	assert.Equal(t, Browser{Name: "Edge", Version: "18.1"}, Browser{Name: "Edge", Version: "18.1"})
	assert.NotEqual(t, Browser{Name: "Edge", Version: "18.1"}, Browser{Name: "Edge", Version: "18.2"})
	assert.NotEqual(t, Browser{Name: "Edge", Version: "18.1"}, Browser{Name: "Chrome", Version: "18.1"})
}

func TestUnmatched(t *testing.T) {
	results := []Result{
		{Line: 1, UserAgent: "Firefox/64.0", Browser: &Browser{Name: "Firefox", Version: "64.0"}},
		{Line: 2, UserAgent: "curl/8.4.0"},
		{Line: 3, UserAgent: "Wget/1.21"},
	}
	assert.True(t, results[0].Matched())
	assert.False(t, results[1].Matched())
	assert.Equal(t, 2, Unmatched(results))
	assert.Equal(t, 0, Unmatched(nil))
}
