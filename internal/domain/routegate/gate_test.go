package routegate

import "testing"

func TestDecide(t *testing.T) {
	anonymous := Session{}
	dealerIncomplete := Session{Authenticated: true, Role: "dealer"}
	dealerComplete := Session{Authenticated: true, Role: "dealer", ProfileComplete: true}
	contractor := Session{Authenticated: true, Role: "contractor"}

	cases := []struct {
		name    string
		session Session
		path    string
		want    Decision
	}{
		{"anonymous protected path", anonymous, PathDealer, Decision{ActionRedirect, PathAuth}},
		{"anonymous settings", anonymous, PathSettings, Decision{ActionRedirect, PathAuth}},
		{"anonymous home", anonymous, PathHome, Decision{ActionRedirect, PathAuth}},
		{"anonymous auth page", anonymous, PathAuth, Decision{ActionRender, ""}},

		{"dealer on auth page", dealerComplete, PathAuth, Decision{ActionRedirect, PathDealer}},
		{"contractor on auth page", contractor, PathAuth, Decision{ActionRedirect, PathContractor}},

		{"incomplete dealer dashboard", dealerIncomplete, PathDealer, Decision{ActionRedirect, PathProfileSetup}},
		{"incomplete dealer settings", dealerIncomplete, PathSettings, Decision{ActionRedirect, PathProfileSetup}},
		{"incomplete dealer setup page", dealerIncomplete, PathProfileSetup, Decision{ActionRender, ""}},

		{"complete dealer dashboard", dealerComplete, PathDealer, Decision{ActionRender, ""}},
		{"complete dealer setup page", dealerComplete, PathProfileSetup, Decision{ActionRedirect, PathDealer}},
		{"complete dealer settings", dealerComplete, PathSettings, Decision{ActionRender, ""}},

		{"contractor dashboard no profile", contractor, PathContractor, Decision{ActionRender, ""}},
		{"contractor settings no profile", contractor, PathSettings, Decision{ActionRender, ""}},

		{"dealer on contractor path", dealerComplete, PathContractor, Decision{ActionRedirect, PathDealer}},
		{"contractor on dealer path", contractor, PathDealer, Decision{ActionRedirect, PathContractor}},

		{"dealer home", dealerComplete, PathHome, Decision{ActionRedirect, PathDealer}},
		{"contractor home", contractor, PathHome, Decision{ActionRedirect, PathContractor}},

		{"unknown path anonymous", anonymous, "/nope", Decision{ActionNotFound, ""}},
		{"unknown path authenticated", dealerComplete, "/nope", Decision{ActionNotFound, ""}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := Decide(tc.session, tc.path)
			if got != tc.want {
				t.Fatalf("Decide(%+v, %q) = %+v, want %+v", tc.session, tc.path, got, tc.want)
			}
		})
	}
}
