package header

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yigit/coursehub/internal/app/auth"
)

func keys(items []MenuItem) []string {
	out := make([]string, len(items))
	for i, it := range items {
		out[i] = it.Key
	}
	return out
}

func TestBuild_HomepageAtTop(t *testing.T) {
	v := Build(State{Pathname: "/", ScrollY: 0})

	assert.True(t, v.IsHomepage)
	assert.Contains(t, v.HeaderClass, "bg-transparent")
	assert.NotContains(t, v.HeaderClass, "bg-white")
	assert.False(t, v.Logo.Visible)
	assert.Equal(t, "logo invisible", v.Logo.Class)
	assert.Contains(t, v.MenuClass, "text-white")
	assert.True(t, v.ScrollListener)
	assert.NotContains(t, v.MainSectionClass, "mt-[84px]")
	assert.NotContains(t, v.MainSectionClass, "pt-12")
}

func TestBuild_HomepageScrolled(t *testing.T) {
	atThreshold := Build(State{Pathname: "/", ScrollY: 10})
	assert.Contains(t, atThreshold.HeaderClass, "bg-transparent")
	assert.False(t, atThreshold.Logo.Visible)

	v := Build(State{Pathname: "/", ScrollY: 10.5})
	assert.Contains(t, v.HeaderClass, "bg-white")
	assert.NotContains(t, v.HeaderClass, "bg-transparent")
	assert.True(t, v.Logo.Visible)
	assert.Equal(t, "logo", v.Logo.Class)
	assert.True(t, v.ScrollListener)
}

func TestBuild_OtherRoute(t *testing.T) {
	v := Build(State{Pathname: "/courses", ScrollY: 500})

	assert.False(t, v.IsHomepage)
	assert.Contains(t, v.HeaderClass, "bg-white shadow-sm")
	assert.True(t, v.Logo.Visible)
	assert.Contains(t, v.MenuClass, "text-black")
	assert.False(t, v.ScrollListener)
	assert.Contains(t, v.MainSectionClass, "mt-[84px]")
	assert.Contains(t, v.MainSectionClass, "pt-12")
}

func TestBuild_MenuWithoutSession(t *testing.T) {
	v := Build(State{Pathname: "/"})

	assert.Equal(t, []string{"home", "courses", "team", "signin"}, keys(v.MenuItems))
	assert.Equal(t, "/", v.MenuItems[0].Href)
	assert.Equal(t, "/courses", v.MenuItems[1].Href)
	assert.Equal(t, "/our-team", v.MenuItems[2].Href)
	assert.Equal(t, "/auth/signin", v.MenuItems[3].Href)
}

func TestBuild_MenuWithSession(t *testing.T) {
	session := &auth.Session{User: auth.SessionUser{ID: "1", Name: "Ada", Email: "ada@example.com"}}
	v := Build(State{Pathname: "/courses", Session: session})

	assert.Equal(t, []string{"home", "courses", "team", "user"}, keys(v.MenuItems))
	user := v.MenuItems[3].User
	require.NotNil(t, user)
	assert.Equal(t, "Ada", user.Name)
	assert.Equal(t, "ada@example.com", user.Email)
}
