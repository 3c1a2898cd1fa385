package session

// Destination is a navigable tab of the main app surface.
type Destination string

const (
	DestDashboard     Destination = "dashboard"
	DestQuizzes       Destination = "quizzes"
	DestNotifications Destination = "notifications"
	DestManage        Destination = "manage"
	DestProfile       Destination = "profile"
)

// Routes the store redirects to on session transitions.
const (
	RouteTabs  = "/(tabs)"     // main authenticated surface
	RouteLogin = "/auth/login" // unauthenticated entry screen
)

// Router is the navigation layer. The store signals it on every session
// transition.
type Router interface {
	Replace(route string)
}

// Destinations returns the tab entries visible for the session's role,
// in display order. Dashboard and profile are visible regardless of role;
// quizzes and notifications are student-only, management is tutor-only.
func Destinations(s Session) []Destination {
	if IsStudent(s) {
		return []Destination{DestDashboard, DestQuizzes, DestNotifications, DestProfile}
	}
	return []Destination{DestDashboard, DestManage, DestProfile}
}
