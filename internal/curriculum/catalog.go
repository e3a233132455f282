package curriculum

import "fmt"

// catalog is the built-in skill set. A deployment normally syncs skills
// from the curriculum service; this seed keeps the binary usable offline.
var catalog = []Skill{
	{
		ID:          "frac-compare",
		Name:        "Comparing Fractions",
		Description: "Decide which of two fractions is larger",
		Difficulty:  DifficultyEasy,
		Bank: []Question{
			{
				Text:        "Which fraction is larger: 3/4 or 2/3?",
				Choices:     []string{"3/4", "2/3", "They are equal"},
				Answer:      "3/4",
				Explanation: "3/4 = 9/12 and 2/3 = 8/12, so 3/4 is larger.",
			},
			{
				Text:        "Which fraction is larger: 1/2 or 3/5?",
				Choices:     []string{"1/2", "3/5", "They are equal"},
				Answer:      "3/5",
				Explanation: "1/2 = 5/10 and 3/5 = 6/10, so 3/5 is larger.",
			},
			{
				Text:        "Which fraction is larger: 5/8 or 5/6?",
				Choices:     []string{"5/8", "5/6", "They are equal"},
				Answer:      "5/6",
				Explanation: "With equal numerators the smaller denominator wins: 5/6 > 5/8.",
			},
		},
	},
	{
		ID:          "mult-2digit",
		Name:        "Two-digit Multiplication",
		Description: "Multiply a two-digit number by a one-digit number",
		Difficulty:  DifficultyMedium,
		Bank: []Question{
			{
				Text:        "What is 24 x 6?",
				Answer:      "144",
				Explanation: "24 x 6 = (20 x 6) + (4 x 6) = 120 + 24 = 144.",
			},
			{
				Text:        "What is 37 x 4?",
				Answer:      "148",
				Explanation: "37 x 4 = (30 x 4) + (7 x 4) = 120 + 28 = 148.",
			},
			{
				Text:        "What is 53 x 7?",
				Answer:      "371",
				Explanation: "53 x 7 = (50 x 7) + (3 x 7) = 350 + 21 = 371.",
			},
			{
				Text:        "What is 68 x 5?",
				Answer:      "340",
				Explanation: "68 x 5 = (70 x 5) - (2 x 5) = 350 - 10 = 340.",
			},
		},
	},
	{
		ID:             "word-problems",
		Name:           "Word Problems",
		Description:    "One-step arithmetic word problems",
		Difficulty:     DifficultyMedium,
		GenerationHint: "One-step word problem using addition, subtraction, or multiplication with whole numbers under 1000.",
	},
	{
		ID:             "long-division",
		Name:           "Long Division",
		Description:    "Divide a three-digit number by a one-digit number",
		Difficulty:     DifficultyHard,
		GenerationHint: "Three-digit dividend divided by a one-digit divisor with no remainder.",
	},
}

// AllSkills returns every skill in the catalog in display order.
func AllSkills() []Skill {
	out := make([]Skill, len(catalog))
	copy(out, catalog)
	return out
}

// GetSkill looks up a skill by ID.
func GetSkill(id string) (Skill, error) {
	for _, s := range catalog {
		if s.ID == id {
			return s, nil
		}
	}
	return Skill{}, fmt.Errorf("unknown skill: %q", id)
}
