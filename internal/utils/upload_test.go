package utils_test

import (
	"testing"

	"store_system/internal/utils"

	"github.com/stretchr/testify/assert"
)

func TestImageExtAllowed(t *testing.T) {
	allowed := []string{"png", "jpg", "jpeg", "gif"}

	cases := []struct {
		filename string
		want     bool
	}{
		{"rose.png", true},
		{"rose.PNG", true},
		{"photo.jpeg", true},
		{"banner.gif", true},
		{"malware.exe", false},
		{"archive.tar.gz", false},
		{"noextension", false},
		{"", false},
	}
	for _, tc := range cases {
		assert.Equalf(t, tc.want, utils.ImageExtAllowed(tc.filename, allowed), "filename %q", tc.filename)
	}
}

func TestImageExtAllowedTrimsConfigValues(t *testing.T) {
	// Config lists may carry whitespace or mixed case from the environment.
	assert.True(t, utils.ImageExtAllowed("rose.png", []string{" PNG ", "jpg"}))
}
