package model

import (
	"fmt"
	"strings"
	"time"
)

// PuzzleSize buckets puzzles by their grid dimensions.
type PuzzleSize int

const (
	SizeExtraSmall PuzzleSize = iota
	SizeSmall
	SizeMedium
	SizeLarge
	SizeExtraLarge
)

// PuzzleSizes lists every size in display order.
var PuzzleSizes = []PuzzleSize{SizeExtraSmall, SizeSmall, SizeMedium, SizeLarge, SizeExtraLarge}

// Label returns the display name of the size.
func (s PuzzleSize) Label() string {
	switch s {
	case SizeExtraSmall:
		return "Extra Small"
	case SizeSmall:
		return "Small"
	case SizeMedium:
		return "Medium"
	case SizeLarge:
		return "Large"
	case SizeExtraLarge:
		return "Extra Large"
	default:
		return "Unknown"
	}
}

// ShortLabel returns the badge text of the size.
func (s PuzzleSize) ShortLabel() string {
	switch s {
	case SizeExtraSmall:
		return "XS"
	case SizeSmall:
		return "S"
	case SizeMedium:
		return "M"
	case SizeLarge:
		return "L"
	case SizeExtraLarge:
		return "XL"
	default:
		return "?"
	}
}

// Dimension returns the square edge length of folders in this size bucket.
func (s PuzzleSize) Dimension() int {
	switch s {
	case SizeExtraSmall:
		return 5
	case SizeSmall:
		return 10
	case SizeMedium:
		return 15
	case SizeLarge:
		return 20
	case SizeExtraLarge:
		return 25
	default:
		return 0
	}
}

func (s PuzzleSize) String() string {
	return s.ShortLabel()
}

// ParsePuzzleSize converts a short label such as "xs" into a PuzzleSize.
func ParsePuzzleSize(value string) (PuzzleSize, error) {
	needle := strings.ToUpper(strings.TrimSpace(value))
	for _, size := range PuzzleSizes {
		if size.ShortLabel() == needle {
			return size, nil
		}
	}
	return SizeExtraSmall, fmt.Errorf("unknown puzzle size: %q", value)
}

// Group is a top-level category of puzzles sharing a size bucket.
type Group struct {
	ID            int
	Size          PuzzleSize
	TotalPuzzles  int
	SolvedPuzzles int
	Folders       []Folder
}

// ProgressPercent returns the solved fraction in the range [0, 1].
func (g Group) ProgressPercent() float64 {
	return progress(g.SolvedPuzzles, g.TotalPuzzles)
}

// Folder is a sub-collection of puzzles inside a group.
type Folder struct {
	ID            int
	Name          string
	TotalPuzzles  int
	SolvedPuzzles int
	Puzzles       []Puzzle
	Width         int
	Height        int
}

// ProgressPercent returns the solved fraction in the range [0, 1].
func (f Folder) ProgressPercent() float64 {
	return progress(f.SolvedPuzzles, f.TotalPuzzles)
}

// Dimensions renders the puzzle size of the folder as "WxH".
func (f Folder) Dimensions() string {
	return fmt.Sprintf("%dx%d", f.Width, f.Height)
}

func progress(solved, total int) float64 {
	if total <= 0 {
		return 0
	}
	return float64(solved) / float64(total)
}

// PuzzleStatus describes the player's standing on a puzzle.
type PuzzleStatus string

const (
	PuzzleUnsolved PuzzleStatus = "unsolved"
	PuzzleSolved   PuzzleStatus = "solved"
)

// Icon returns the badge shown on puzzle cards.
func (s PuzzleStatus) Icon() string {
	if s == PuzzleSolved {
		return "✓"
	}
	return "·"
}

// Puzzle is a single nonogram entry in a folder.
type Puzzle struct {
	ID        int
	Name      string
	Width     int
	Height    int
	Solved    bool
	TimeSpent time.Duration
	// BestTime is nil until the puzzle has been solved at least once.
	BestTime *time.Duration
}

// Status reports whether the puzzle is solved.
func (p Puzzle) Status() PuzzleStatus {
	if p.Solved {
		return PuzzleSolved
	}
	return PuzzleUnsolved
}

// Dimensions renders the grid size as "WxH".
func (p Puzzle) Dimensions() string {
	return fmt.Sprintf("%dx%d", p.Width, p.Height)
}
