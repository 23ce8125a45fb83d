package vault

import (
	"errors"
	"fmt"

	"github.com/matsen/devvault/internal/snippet"
)

// ErrVaultNotEmpty is returned when seeding would overwrite existing snippets.
var ErrVaultNotEmpty = errors.New("vault is not empty")

// SeedResult is the JSON response for the seed command.
type SeedResult struct {
	Status   string `json:"status"`
	Snippets int    `json:"snippets"`
	Replaced int    `json:"replaced"`
}

// DemoSnippets returns the sample collection written by Seed.
func DemoSnippets() []snippet.Snippet {
	return []snippet.Snippet{
		{
			ID:          1,
			Title:       "Reverse a list",
			Language:    "python",
			Description: "Turns a list backwards using slice notation",
			Tags:        []string{"list", "trick", "slicing"},
			Code:        "my_list = [1, 2, 3, 4, 5]\nreversed_list = my_list[::-1]\nprint(reversed_list)  # [5, 4, 3, 2, 1]",
			CreatedAt:   "2026-02-18 09:12",
		},
		{
			ID:          2,
			Title:       "Read a file line by line",
			Language:    "python",
			Description: "Safe way to read a file without loading it all into memory",
			Tags:        []string{"file", "io"},
			Code:        "with open(\"myfile.txt\", \"r\") as f:\n    for line in f:\n        print(line.strip())",
			CreatedAt:   "2026-02-19 14:30",
		},
		{
			ID:          3,
			Title:       "Debounce function",
			Language:    "javascript",
			Description: "Delays a function call until after a wait period",
			Tags:        []string{"js", "performance", "events"},
			Code:        "function debounce(fn, wait) {\n  let timer;\n  return function(...args) {\n    clearTimeout(timer);\n    timer = setTimeout(() => fn.apply(this, args), wait);\n  };\n}",
			CreatedAt:   "2026-02-20 10:05",
		},
		{
			ID:          4,
			Title:       "Flatten a nested list",
			Language:    "python",
			Description: "Turns [[1,2],[3,4]] into [1,2,3,4]",
			Tags:        []string{"list", "flatten", "comprehension"},
			Code:        "nested = [[1, 2], [3, 4], [5, 6]]\nflat = [x for xs in nested for x in xs]\nprint(flat)  # [1, 2, 3, 4, 5, 6]",
			CreatedAt:   "2026-02-20 11:42",
		},
		{
			ID:          5,
			Title:       "Bash: find large files",
			Language:    "bash",
			Description: "Lists files over 100MB sorted by size",
			Tags:        []string{"bash", "files", "disk"},
			Code:        "find . -type f -size +100M | xargs ls -lh | sort -k5 -rh",
			CreatedAt:   "2026-02-20 12:00",
		},
	}
}

// Seed writes the demo snippets. A vault that already holds snippets is left
// alone unless force is set, in which case its contents are replaced.
func (a *App) Seed(force bool) ([]snippet.Snippet, error) {
	existing, err := a.load()
	if err != nil {
		return nil, err
	}
	if len(existing) > 0 && !force {
		return nil, fmt.Errorf("%w: it holds %d snippet(s); use --force to replace them", ErrVaultNotEmpty, len(existing))
	}

	demo := DemoSnippets()
	if err := a.save(demo); err != nil {
		return nil, err
	}
	a.log().Debug("seeded vault", "snippets", len(demo), "replaced", len(existing))

	if a.JSON {
		return demo, a.outputJSON(SeedResult{Status: "seeded", Snippets: len(demo), Replaced: len(existing)})
	}

	a.Out.Success(fmt.Sprintf("Seeded %d demo snippets.", len(demo)))
	a.Out.Hint("Try these commands:")
	for _, c := range []string{"devvault list", "devvault view 1", "devvault search list", "devvault stats", "devvault add"} {
		a.Out.Hint("  " + c)
	}
	a.Out.Blank()
	return demo, nil
}
