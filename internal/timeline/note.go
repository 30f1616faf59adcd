package timeline

// Segment is a run of text in the closing note. Role names a theme colour
// role ("text", "accentBlue", ...); Weight is a font weight class or empty.
type Segment struct {
	Text   string `json:"text"`
	Role   string `json:"role,omitempty"`
	Weight string `json:"weight,omitempty"`
}

// Note is the commentary block rendered below the cards
type Note struct {
	Lead     string    `json:"lead"`
	Segments []Segment `json:"segments"`
	Status   string    `json:"status"`
	Badge    string    `json:"badge"`
}

// DefaultNote returns the stock "Project Selection" commentary
func DefaultNote() Note {
	plain := func(s string) Segment { return Segment{Text: s, Role: "text"} }
	tool := func(s string) Segment { return Segment{Text: s, Role: "accentBlue", Weight: "medium"} }

	return Note{
		Lead: "Project Selection:",
		Segments: []Segment{
			plain("During my learning journey, I built several practice projects including "),
			tool("calculator"),
			plain(", "),
			tool("watches"),
			plain(", "),
			tool("website clones"),
			plain(", and "),
			tool("many more"),
			plain(" to sharpen my skills. The projects shown above represent my "),
			{Text: "best work", Role: "accentGreen", Weight: "semibold"},
			plain(" — fully designed and developed from scratch, showcasing complete "),
			{Text: "UI/UX ownership", Role: "accentGold", Weight: "semibold"},
			plain(" and "),
			{Text: "project building logic", Role: "accentGold", Weight: "semibold"},
			plain("."),
		},
		Status: "Currently Mastering",
		Badge:  "Next.js",
	}
}
