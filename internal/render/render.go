package render

import "github.com/wehoop/logomaker/internal/teams"

// Renderer produces the logo file for one team and returns its path.
type Renderer interface {
	Render(team teams.Team) (string, error)
}

// Logger matches the app logger; render only needs these two levels.
type Logger interface {
	Infof(component string, format string, args ...interface{})
	Errorf(component string, format string, args ...interface{})
}
