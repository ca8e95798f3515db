package routegate

// ===============================
// Navigation paths
// ===============================

const (
	PathHome         = "/"
	PathAuth         = "/auth"
	PathProfileSetup = "/profile-setup"
	PathSettings     = "/settings"
	PathDealer       = "/dealer"
	PathContractor   = "/contractor"
)

// ===============================
// Decisions
// ===============================

type Action string

const (
	ActionRender   Action = "render"
	ActionRedirect Action = "redirect"
	ActionNotFound Action = "not_found"
)

type Decision struct {
	Action Action `json:"action"`
	Target string `json:"target,omitempty"`
}

func render() Decision {
	return Decision{Action: ActionRender}
}

func redirect(target string) Decision {
	return Decision{Action: ActionRedirect, Target: target}
}

// Session is the navigation-relevant slice of auth state.
type Session struct {
	Authenticated   bool
	Role            string
	ProfileComplete bool
}

func (s Session) dashboard() string {
	if s.Role == "dealer" {
		return PathDealer
	}
	return PathContractor
}

// Decide maps (session, requested path) to a navigation outcome.
//
// Dealers are held on /profile-setup until their profile is complete;
// contractors reach their dashboard regardless. That asymmetry mirrors the
// product rule, not an oversight (see DESIGN.md).
func Decide(s Session, path string) Decision {
	switch path {
	case PathHome:
		if !s.Authenticated {
			return redirect(PathAuth)
		}
		return redirect(s.dashboard())

	case PathAuth:
		if s.Authenticated {
			return redirect(s.dashboard())
		}
		return render()

	case PathProfileSetup:
		if !s.Authenticated {
			return redirect(PathAuth)
		}
		if s.ProfileComplete {
			return redirect(s.dashboard())
		}
		return render()

	case PathSettings:
		if !s.Authenticated {
			return redirect(PathAuth)
		}
		if s.Role == "dealer" && !s.ProfileComplete {
			return redirect(PathProfileSetup)
		}
		return render()

	case PathDealer:
		if !s.Authenticated {
			return redirect(PathAuth)
		}
		if s.Role != "dealer" {
			return redirect(s.dashboard())
		}
		if !s.ProfileComplete {
			return redirect(PathProfileSetup)
		}
		return render()

	case PathContractor:
		if !s.Authenticated {
			return redirect(PathAuth)
		}
		if s.Role != "contractor" {
			return redirect(s.dashboard())
		}
		return render()

	default:
		return Decision{Action: ActionNotFound}
	}
}
