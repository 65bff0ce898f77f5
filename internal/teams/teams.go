package teams

import (
	"fmt"
	"strings"
)

type Team struct {
	ID           string
	Name         string
	Abbreviation string
	Primary      RGB
	Text         RGB
}

// Filename is the PNG name the logo for this team is written under.
func (t Team) Filename() string { return "logo-" + t.ID + ".png" }

var white = RGB{R: 255, G: 255, B: 255}

// Default returns the league table in its fixed order.
// Each call returns a fresh slice so callers cannot alter the shared table.
func Default() []Team {
	return []Team{
		{ID: "team-1", Name: "Mist BC", Abbreviation: "MST", Primary: RGB{77, 102, 140}, Text: white},
		{ID: "team-2", Name: "Lunar Owls BC", Abbreviation: "LOW", Primary: RGB{38, 38, 64}, Text: white},
		{ID: "team-3", Name: "Rose BC", Abbreviation: "RSE", Primary: RGB{204, 51, 76}, Text: white},
		{ID: "team-4", Name: "Vinyl BC", Abbreviation: "VNL", Primary: RGB{26, 26, 26}, Text: RGB{230, 230, 230}},
		{ID: "team-5", Name: "Phantom BC", Abbreviation: "PHT", Primary: RGB{51, 38, 77}, Text: white},
		{ID: "team-6", Name: "Laces BC", Abbreviation: "LAC", Primary: RGB{242, 242, 245}, Text: RGB{51, 51, 77}},
		{ID: "team-7", Name: "Breeze", Abbreviation: "BRZ", Primary: RGB{102, 184, 230}, Text: white},
		{ID: "team-8", Name: "Hive", Abbreviation: "HVE", Primary: RGB{255, 214, 51}, Text: RGB{51, 51, 51}},
	}
}

// Validate checks that ids are non-empty, unique and usable as part of a filename.
func Validate(list []Team) error {
	seen := make(map[string]struct{}, len(list))
	for i, team := range list {
		if strings.TrimSpace(team.ID) == "" {
			return fmt.Errorf("team %d: empty id", i)
		}
		if strings.ContainsAny(team.ID, `/\`) || team.ID == "." || team.ID == ".." {
			return fmt.Errorf("team %q: id is not a valid file name component", team.ID)
		}
		if _, dup := seen[team.ID]; dup {
			return fmt.Errorf("team %q: duplicate id", team.ID)
		}
		seen[team.ID] = struct{}{}
	}
	return nil
}

// Select returns the teams whose ids are listed, preserving table order.
// An empty ids list selects everything.
func Select(list []Team, ids []string) ([]Team, error) {
	if len(ids) == 0 {
		return list, nil
	}
	wanted := make(map[string]bool, len(ids))
	for _, id := range ids {
		id = strings.TrimSpace(id)
		if id != "" {
			wanted[id] = false
		}
	}
	if len(wanted) == 0 {
		return nil, fmt.Errorf("no team ids in selection %q", strings.Join(ids, ","))
	}
	out := make([]Team, 0, len(wanted))
	for _, team := range list {
		if _, ok := wanted[team.ID]; ok {
			wanted[team.ID] = true
			out = append(out, team)
		}
	}
	var unknown []string
	for _, id := range ids {
		id = strings.TrimSpace(id)
		if found, ok := wanted[id]; ok && !found {
			unknown = append(unknown, id)
			wanted[id] = true
		}
	}
	if len(unknown) > 0 {
		return nil, fmt.Errorf("unknown team id(s): %s", strings.Join(unknown, ", "))
	}
	return out, nil
}
