// Package header computes the site header's presentation state from the
// current route, scroll offset and session.
package header

import (
	"strings"

	"github.com/yigit/coursehub/internal/app/auth"
)

// scrollThreshold is the offset past which the homepage header turns opaque
const scrollThreshold = 10

const (
	baseHeaderClass = "w-full fixed top-0 inset-x-0 z-50 h-fit"
	baseMenuClass   = "bg-transparent flex items-center justify-end border-none text-xl"
)

// Logo is the header logo image
type Logo struct {
	Href    string `json:"href"`
	Src     string `json:"src"`
	Alt     string `json:"alt"`
	Width   int    `json:"width"`
	Height  int    `json:"height"`
	Visible bool   `json:"visible"`
	Class   string `json:"class"`
}

// UserMenu is shown instead of the sign-in link when a session exists
type UserMenu struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// MenuItem is one entry of the horizontal menu
type MenuItem struct {
	Key   string    `json:"key"`
	Label string    `json:"label"`
	Href  string    `json:"href,omitempty"`
	User  *UserMenu `json:"user,omitempty"`
}

// State is the input of Build
type State struct {
	Pathname string
	ScrollY  float64
	Session  *auth.Session
}

// View is the computed header
type View struct {
	IsHomepage       bool       `json:"isHomepage"`
	HeaderClass      string     `json:"headerClass"`
	Logo             Logo       `json:"logo"`
	MenuClass        string     `json:"menuClass"`
	MenuItems        []MenuItem `json:"menuItems"`
	ScrollListener   bool       `json:"scrollListener"`
	MainSectionClass string     `json:"mainSectionClass"`
}

// Build computes the header for state. On the homepage the header starts
// transparent with a hidden logo and turns white once scrolled past the
// threshold; every other page gets the opaque header and an offset main
// section.
func Build(state State) View {
	home := state.Pathname == "/"
	scrolled := state.ScrollY > scrollThreshold

	view := View{
		IsHomepage:     home,
		ScrollListener: home,
		MenuItems:      menuItems(state.Session),
		Logo: Logo{
			Href:   "/",
			Src:    "/Logo_LightM.png",
			Alt:    "Logo",
			Width:  225,
			Height: 75,
		},
	}

	switch {
	case !home:
		view.HeaderClass = join(baseHeaderClass, "bg-white shadow-sm")
		view.Logo.Visible = true
		view.MenuClass = join(baseMenuClass, "text-black")
		view.MainSectionClass = "main-section mt-[84px] pt-12"
	case scrolled:
		view.HeaderClass = join(baseHeaderClass, "bg-white")
		view.Logo.Visible = true
		view.MenuClass = join(baseMenuClass, "text-white")
		view.MainSectionClass = "main-section"
	default:
		view.HeaderClass = join(baseHeaderClass, "bg-transparent")
		view.MenuClass = join(baseMenuClass, "text-white")
		view.MainSectionClass = "main-section"
	}

	view.Logo.Class = "logo"
	if !view.Logo.Visible {
		view.Logo.Class = "logo invisible"
	}
	return view
}

func menuItems(session *auth.Session) []MenuItem {
	items := []MenuItem{
		{Key: "home", Label: "Home", Href: "/"},
		{Key: "courses", Label: "Courses", Href: "/courses"},
		{Key: "team", Label: "Team", Href: "/our-team"},
	}

	if session != nil {
		items = append(items, MenuItem{
			Key:   "user",
			Label: session.User.Name,
			User:  &UserMenu{Name: session.User.Name, Email: session.User.Email},
		})
	} else {
		items = append(items, MenuItem{Key: "signin", Label: "Sign In", Href: "/auth/signin"})
	}
	return items
}

func join(parts ...string) string {
	return strings.Join(parts, " ")
}
