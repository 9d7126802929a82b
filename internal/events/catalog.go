package events

import "strings"

// Event describes one fest event as shown on the listing page.
type Event struct {
	ID               string `json:"id"`
	Name             string `json:"name"`
	Type             string `json:"type"` // "technical" | "non-technical"
	ShortDescription string `json:"short_description"`
	Date             string `json:"date"`
	Time             string `json:"time"`
	Venue            string `json:"venue"`
	TeamSize         string `json:"team_size"`
	PrizePool        string `json:"prize_pool"`
}

// PassType is a priced bundle granting event access for a fixed headcount.
type PassType struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Price   int    `json:"price"`
	Members int    `json:"members"`
}

// Catalog is the static fest lineup. The website renders it; the relay
// uses it to resolve event ids to names and to validate pass types.
var Catalog = []Event{
	{
		ID:               "code-sprint",
		Name:             "Code Sprint Challenge",
		Type:             "technical",
		ShortDescription: "High-intensity coding competition with algorithmic challenges",
		Date:             "March 13, 2026",
		Time:             "10:00 AM - 2:00 PM",
		Venue:            "Computer Lab A, IT Block",
		TeamSize:         "2-3 members",
		PrizePool:        "₹15,000",
	},
	{
		ID:               "debug-master",
		Name:             "Debug Masterclass",
		Type:             "technical",
		ShortDescription: "Find and fix bugs in complex code snippets",
		Date:             "March 13, 2026",
		Time:             "11:00 AM - 1:00 PM",
		Venue:            "Computer Lab B, IT Block",
		TeamSize:         "Individual",
		PrizePool:        "₹10,000",
	},
	{
		ID:               "tech-quiz",
		Name:             "Tech Quiz Bowl",
		Type:             "technical",
		ShortDescription: "Comprehensive tech quiz with multiple rounds",
		Date:             "March 13, 2026",
		Time:             "2:00 PM - 4:00 PM",
		Venue:            "Seminar Hall, Main Block",
		TeamSize:         "2 members",
		PrizePool:        "₹12,000",
	},
	{
		ID:               "tech-presentation",
		Name:             "Tech Innovation Presentation",
		Type:             "non-technical",
		ShortDescription: "Present innovative tech ideas and solutions",
		Date:             "March 13, 2026",
		Time:             "10:30 AM - 12:30 PM",
		Venue:            "Conference Hall, Admin Block",
		TeamSize:         "1-2 members",
		PrizePool:        "₹15,000",
	},
	{
		ID:               "group-discussion",
		Name:             "Group Discussion Challenge",
		Type:             "non-technical",
		ShortDescription: "Discuss tech trends and ethical dilemmas",
		Date:             "March 13, 2026",
		Time:             "3:00 PM - 5:00 PM",
		Venue:            "Discussion Room, Library Block",
		TeamSize:         "6-8 members per group",
		PrizePool:        "₹8,000",
	},
	{
		ID:               "poster-design",
		Name:             "Digital Poster Design",
		Type:             "non-technical",
		ShortDescription: "Design posters on tech and social themes",
		Date:             "March 13, 2026",
		Time:             "11:00 AM - 2:00 PM",
		Venue:            "Design Lab, IT Block",
		TeamSize:         "Individual",
		PrizePool:        "₹6,000",
	},
}

// PassTypes mirrors the pricing table on the registration page.
var PassTypes = []PassType{
	{ID: "individual", Name: "Individual Pass", Price: 200, Members: 1},
	{ID: "duo", Name: "2 Members Pass", Price: 350, Members: 2},
	{ID: "trio", Name: "3 Members Pass", Price: 500, Members: 3},
	{ID: "quad", Name: "4 Members Pass", Price: 600, Members: 4},
}

// FindEvent returns the catalog entry for id, or nil.
func FindEvent(id string) *Event {
	for i := range Catalog {
		if Catalog[i].ID == id {
			return &Catalog[i]
		}
	}
	return nil
}

// FindPass returns the pass type for id, or nil.
func FindPass(id string) *PassType {
	for i := range PassTypes {
		if PassTypes[i].ID == id {
			return &PassTypes[i]
		}
	}
	return nil
}

// ResolveNames maps event ids to display names, skipping unknown ids,
// and joins them the way the sheet and emails expect.
func ResolveNames(ids []string) string {
	names := make([]string, 0, len(ids))
	for _, id := range ids {
		if ev := FindEvent(id); ev != nil {
			names = append(names, ev.Name)
		}
	}
	return strings.Join(names, ", ")
}
