// Package mock produces the placeholder catalog shown by the game shell.
//
// Every call regenerates its randomized values from the provider's source, so
// two providers built from the same seed return identical data.
package mock

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/alexisbeaulieu97/jcross/internal/model"
)

const (
	defaultFolderCount = 10
	solvedPuzzleCount  = 3
)

var folderCounts = map[int]int{
	0: 15,
	1: 25,
	2: 30,
	3: 40,
	4: 20,
}

var groupTable = []struct {
	size  model.PuzzleSize
	total int
}{
	{model.SizeExtraSmall, 2823},
	{model.SizeSmall, 9738},
	{model.SizeMedium, 11165},
	{model.SizeLarge, 25629},
	{model.SizeExtraLarge, 4480},
}

// Provider hands out mock catalog data drawn from an injected random source.
type Provider struct {
	rng *rand.Rand
}

// New creates a provider seeded with seed.
func New(seed int64) *Provider {
	return NewWithSource(rand.NewSource(seed))
}

// NewWithSource creates a provider over an explicit random source.
func NewWithSource(src rand.Source) *Provider {
	if src == nil {
		src = rand.NewSource(time.Now().UnixNano())
	}
	return &Provider{rng: rand.New(src)}
}

// between draws uniformly from the inclusive range [lo, hi].
func (p *Provider) between(lo, hi int) int {
	return lo + p.rng.Intn(hi-lo+1)
}

// Groups returns the five size groups.
func (p *Provider) Groups() []model.Group {
	groups := make([]model.Group, len(groupTable))
	for i, row := range groupTable {
		groups[i] = model.Group{
			ID:            i,
			Size:          row.size,
			TotalPuzzles:  row.total,
			SolvedPuzzles: 0,
		}
	}
	return groups
}

// GroupByID returns the group with id, or false when id is out of range.
func (p *Provider) GroupByID(id int) (model.Group, bool) {
	groups := p.Groups()
	if id < 0 || id >= len(groups) {
		return model.Group{}, false
	}
	return groups[id], true
}

// FolderCount returns how many folders a group holds.
func FolderCount(groupID int) int {
	if count, ok := folderCounts[groupID]; ok {
		return count
	}
	return defaultFolderCount
}

// FoldersForGroup returns freshly randomized folders for groupID.
func (p *Provider) FoldersForGroup(groupID int) []model.Folder {
	dim := 0
	if groupID >= 0 && groupID < len(groupTable) {
		dim = groupTable[groupID].size.Dimension()
	}

	folders := make([]model.Folder, FolderCount(groupID))
	for i := range folders {
		total := p.between(50, 200)
		solved := p.between(0, 10)
		if solved > total {
			solved = total
		}
		folders[i] = model.Folder{
			ID:            i,
			Name:          fmt.Sprintf("Folder %d", i+1),
			TotalPuzzles:  total,
			SolvedPuzzles: solved,
			Width:         dim,
			Height:        dim,
		}
	}
	return folders
}

// PuzzlesForFolder returns count freshly randomized puzzles. The first three
// are reported as solved.
func (p *Provider) PuzzlesForFolder(folderID, count int) []model.Puzzle {
	if count < 0 {
		count = 0
	}
	puzzles := make([]model.Puzzle, count)
	for i := range puzzles {
		edge := puzzleEdge(p.between(5, 25))
		puzzle := model.Puzzle{
			ID:     i,
			Name:   fmt.Sprintf("Puzzle %d", i+1),
			Width:  edge,
			Height: edge,
			Solved: i < solvedPuzzleCount,
		}
		if puzzle.Solved {
			puzzle.TimeSpent = time.Duration(p.between(60, 600)) * time.Second
			best := time.Duration(p.between(60, 600)) * time.Second
			puzzle.BestTime = &best
		}
		puzzles[i] = puzzle
	}
	return puzzles
}

func puzzleEdge(draw int) int {
	switch {
	case draw <= 10:
		return 5
	case draw <= 15:
		return 10
	case draw <= 20:
		return 15
	default:
		return 20
	}
}

// GameField returns the sample 5x5 field. The puzzle argument is accepted for
// symmetry with a real catalog; every puzzle currently maps to the same field.
func (p *Provider) GameField(_ model.Puzzle) model.GameField {
	rowClues := [][]int{
		{2, 1},
		{1, 1},
		{5},
		{1, 1},
		{2, 1},
	}
	columnClues := [][]int{
		{2, 1},
		{1, 2},
		{5},
		{1, 2},
		{2, 1},
	}
	return model.NewGameField(5, 5, rowClues, columnClues)
}

// Themes returns the built-in theme catalog with Classic Light selected.
func (p *Provider) Themes() []model.AppTheme {
	return []model.AppTheme{
		{ID: 0, Name: "Classic Light", Primary: 0xFF3F51B5, Secondary: 0xFF00BCD4, Background: 0xFFF5F7FA, Selected: true},
		{ID: 1, Name: "Ocean Blue", Primary: 0xFF0277BD, Secondary: 0xFF00BCD4, Background: 0xFFE3F2FD},
		{ID: 2, Name: "Forest Green", Primary: 0xFF2E7D32, Secondary: 0xFF66BB6A, Background: 0xFFE8F5E9},
		{ID: 3, Name: "Sunset Orange", Primary: 0xFFE65100, Secondary: 0xFFFF9800, Background: 0xFFFFF3E0},
		{ID: 4, Name: "Purple Dream", Primary: 0xFF6A1B9A, Secondary: 0xFFAB47BC, Background: 0xFFF3E5F5},
		{ID: 5, Name: "Dark Mode", Primary: 0xFFBB86FC, Secondary: 0xFF03DAC6, Background: 0xFF121212},
		{ID: 6, Name: "Candy Pink", Primary: 0xFFC2185B, Secondary: 0xFFF06292, Background: 0xFFFCE4EC},
		{ID: 7, Name: "Mint Fresh", Primary: 0xFF00695C, Secondary: 0xFF26A69A, Background: 0xFFE0F2F1},
		{ID: 8, Name: "Royal Purple", Primary: 0xFF5E35B1, Secondary: 0xFF9575CD, Background: 0xFFEDE7F6},
		{ID: 9, Name: "Cherry Red", Primary: 0xFFC62828, Secondary: 0xFFEF5350, Background: 0xFFFFEBEE},
		{ID: 10, Name: "Golden Yellow", Primary: 0xFFF57F17, Secondary: 0xFFFFD54F, Background: 0xFFFFFDE7},
		{ID: 11, Name: "Midnight Blue", Primary: 0xFF0D47A1, Secondary: 0xFF42A5F5, Background: 0xFFE1F5FE},
	}
}

// Settings returns the default settings record.
func (p *Provider) Settings() model.AppSettings {
	return model.DefaultAppSettings()
}
