package social

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsURLOrEmail(t *testing.T) {
	assert.True(t, IsURLOrEmail("user@example.com"))
	assert.True(t, IsURLOrEmail("https://github.com/x"))
	assert.True(t, IsURLOrEmail("http://example.com/profile?tab=repos"))

	assert.False(t, IsURLOrEmail("not a url"))
	assert.False(t, IsURLOrEmail(""))
	assert.False(t, IsURLOrEmail("github.com/x")) // no scheme
}

func TestSocialLink_Validate(t *testing.T) {
	valid := SocialLink{PlatformName: "GitHub", URL: "https://github.com/x", Icon: "Github"}
	assert.NoError(t, valid.Validate())

	email := SocialLink{PlatformName: "Email", URL: "me@example.com", Icon: "Mail"}
	assert.NoError(t, email.Validate())

	badIcon := valid
	badIcon.Icon = "Gitlab"
	assert.ErrorIs(t, badIcon.Validate(), ErrInvalidIcon)

	badTarget := valid
	badTarget.URL = "not a url"
	assert.ErrorIs(t, badTarget.Validate(), ErrInvalidTarget)

	noName := valid
	noName.PlatformName = ""
	assert.Error(t, noName.Validate())
}
