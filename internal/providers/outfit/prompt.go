package outfit

import (
	"fmt"
	"strings"

	"stylist/internal/domain"
)

var occasionDirection = map[domain.StyleLabel]string{
	domain.StyleCasual:   "a relaxed everyday look suitable for weekends, errands, or coffee with friends",
	domain.StyleBusiness: "a polished professional look suitable for the office or a client meeting",
	domain.StyleNightOut: "a striking evening look suitable for dinner, drinks, or a party",
}

// BuildPrompt composes the instruction sent with the source image for style.
func BuildPrompt(style domain.StyleLabel) string {
	lines := []string{
		fmt.Sprintf("Create a complete %s outfit built around the clothing item in this image.", style),
	}
	if direction := occasionDirection[style]; direction != "" {
		lines = append(lines, "Aim for "+direction+".")
	}
	lines = append(lines,
		"Keep the original item clearly recognizable with its colour, pattern, and shape unchanged.",
		"Add complementary garments, shoes, and accessories.",
		"Present the outfit as a clean flat lay on a neutral background with soft studio lighting.",
	)
	return strings.Join(lines, " ")
}
