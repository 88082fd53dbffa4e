package route

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRouterNavigate(t *testing.T) {
	router := NewRouter("/")

	var notified []string
	sub := router.Subscribe(func(path string) {
		notified = append(notified, path)
	})
	defer sub.Unsubscribe()

	_, navigated := router.LastNavigation()
	assert.False(t, navigated)

	router.Navigate("/about")
	router.Navigate("/about")

	assert.Equal(t, "/about", router.CurrentPath())
	assert.Equal(t, []string{"/about", "/about"}, notified)

	last, navigated := router.LastNavigation()
	assert.True(t, navigated)
	assert.Equal(t, "/about", last)
}

func TestPathname(t *testing.T) {
	testCases := map[string]string{
		"/services#finance": "/services",
		"/about?ref=nav":    "/about",
		"#top":              "/",
		"":                  "/",
		"/":                 "/",
	}

	for input, expected := range testCases {
		assert.Equal(t, expected, Pathname(input), "Pathname(%q)", input)
	}
}
