package domain

import "strings"

// View paths and names known to the client
const (
	RootPath      = "/"
	HomePath      = "/home"
	LoginPath     = "/login"
	GetCookiePath = "/get-cookie"

	HomePageName  = "HomePage"
	LoginPageName = "LoginPage"
	GetCookieName = "GetCookie"
)

// NavigationAction type
type NavigationAction string

const (
	// NavigationAllow const
	NavigationAllow NavigationAction = "allow"
	// NavigationRedirect const
	NavigationRedirect NavigationAction = "redirect"
)

// Destination describes a navigation target as the guard sees it
type Destination struct {
	Path         string `json:"path,omitempty"`
	Name         string `json:"name,omitempty"`
	RequiresAuth bool   `json:"requires_auth"`
}

// IsLogin reports whether the destination is the login view
func (d Destination) IsLogin() bool {
	return d.Name == LoginPageName || d.Path == LoginPath
}

// Decision is the outcome of a guard evaluation
type Decision struct {
	Action   NavigationAction `json:"action"`
	Location string           `json:"location,omitempty"`
}

// Allow returns a decision letting the navigation through
func Allow() Decision {
	return Decision{Action: NavigationAllow}
}

// RedirectTo returns a decision sending the navigation to location
func RedirectTo(location string) Decision {
	return Decision{Action: NavigationRedirect, Location: location}
}

// IsRedirect func
func (d Decision) IsRedirect() bool {
	return d.Action == NavigationRedirect
}

// Route is an entry in the client's route table. A route with Redirect set
// renders nothing and forwards to the returned path.
type Route struct {
	Destination
	Redirect func(authenticated bool) string
}

// Routes is the client's route table
var Routes = []Route{
	{
		Destination: Destination{Path: RootPath},
		Redirect: func(authenticated bool) string {
			if authenticated {
				return HomePath
			}
			return LoginPath
		},
	},
	{Destination: Destination{Path: HomePath, Name: HomePageName, RequiresAuth: true}},
	{Destination: Destination{Path: LoginPath, Name: LoginPageName}},
	{Destination: Destination{Path: GetCookiePath, Name: GetCookieName}},
}

// ResolveRoute finds the route registered for path. Trailing slashes and
// query strings are ignored.
func ResolveRoute(path string) (Route, bool) {
	path = normalizePath(path)
	for _, route := range Routes {
		if route.Path == path {
			return route, true
		}
	}
	return Route{}, false
}

func normalizePath(path string) string {
	if i := strings.IndexAny(path, "?#"); i >= 0 {
		path = path[:i]
	}
	if path == "" {
		return RootPath
	}
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	if len(path) > 1 {
		path = strings.TrimRight(path, "/")
		if path == "" {
			path = RootPath
		}
	}
	return path
}
