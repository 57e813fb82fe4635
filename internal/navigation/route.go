// Package navigation resolves route paths and tracks the screen back stack.
package navigation

import (
	"strconv"
	"strings"

	jcrosserrors "github.com/alexisbeaulieu97/jcross/pkg/errors"
)

// Name identifies a screen.
type Name string

const (
	NameMain    Name = "main"
	NameGroup   Name = "group"
	NameFolder  Name = "folder"
	NameGame    Name = "game"
	NameOptions Name = "options"
	NameThemes  Name = "themes"
	NameAbout   Name = "about"
)

// paramCount is the number of integer path segments each route carries.
var paramCount = map[Name]int{
	NameMain:    0,
	NameGroup:   1,
	NameFolder:  2,
	NameGame:    3,
	NameOptions: 0,
	NameThemes:  0,
	NameAbout:   0,
}

// Route is a resolved navigation target.
type Route struct {
	Name     Name
	GroupID  int
	FolderID int
	PuzzleID int
	// Defaulted lists the parameters that were missing or malformed and fell back to 0.
	Defaulted []string
}

// Main is the size selection screen at the bottom of the back stack.
func Main() Route { return Route{Name: NameMain} }

// Options is the settings screen.
func Options() Route { return Route{Name: NameOptions} }

// Themes is the color theme picker.
func Themes() Route { return Route{Name: NameThemes} }

// About is the rules and key bindings page.
func About() Route { return Route{Name: NameAbout} }

// Group lists the folders of a size group.
func Group(groupID int) Route {
	return Route{Name: NameGroup, GroupID: groupID}
}

// Folder lists the puzzles of one folder inside a group.
func Folder(groupID, folderID int) Route {
	return Route{Name: NameFolder, GroupID: groupID, FolderID: folderID}
}

// Game opens one puzzle for play.
func Game(groupID, folderID, puzzleID int) Route {
	return Route{Name: NameGame, GroupID: groupID, FolderID: folderID, PuzzleID: puzzleID}
}

// Path renders the route in its slash-separated form, e.g. "folder/2/7".
func (r Route) Path() string {
	switch r.Name {
	case NameGroup:
		return joinPath(string(r.Name), r.GroupID)
	case NameFolder:
		return joinPath(string(r.Name), r.GroupID, r.FolderID)
	case NameGame:
		return joinPath(string(r.Name), r.GroupID, r.FolderID, r.PuzzleID)
	default:
		return string(r.Name)
	}
}

func (r Route) String() string {
	return r.Path()
}

// Equal compares routes by name and parameters, ignoring Defaulted.
func (r Route) Equal(other Route) bool {
	return r.Name == other.Name &&
		r.GroupID == other.GroupID &&
		r.FolderID == other.FolderID &&
		r.PuzzleID == other.PuzzleID
}

// Lineage returns the routes a player passes through to reach r from main,
// ending with r itself. Main and the zero Route have an empty lineage.
func (r Route) Lineage() []Route {
	switch r.Name {
	case "", NameMain:
		return nil
	case NameGroup:
		return []Route{r}
	case NameFolder:
		return []Route{Group(r.GroupID), r}
	case NameGame:
		return []Route{Group(r.GroupID), Folder(r.GroupID, r.FolderID), r}
	default:
		return []Route{r}
	}
}

// Parse resolves a path such as "game/1/4/12". Unknown route names fail with
// ErrUnknownRoute. Missing or non-integer parameters resolve to 0 and are
// listed in Route.Defaulted.
func Parse(path string) (Route, error) {
	trimmed := strings.Trim(strings.TrimSpace(path), "/")
	if trimmed == "" {
		return Route{}, jcrosserrors.NewRouteError(path, "empty path", jcrosserrors.ErrUnknownRoute)
	}

	segments := strings.Split(trimmed, "/")
	name := Name(strings.ToLower(segments[0]))
	count, ok := paramCount[name]
	if !ok {
		return Route{}, jcrosserrors.NewRouteError(path, "no screen named "+strconv.Quote(segments[0]), jcrosserrors.ErrUnknownRoute)
	}

	route := Route{Name: name}
	params := segments[1:]
	targets := []*int{&route.GroupID, &route.FolderID, &route.PuzzleID}
	labels := []string{"groupId", "folderId", "puzzleId"}

	for i := 0; i < count; i++ {
		if i >= len(params) {
			route.Defaulted = append(route.Defaulted, labels[i])
			continue
		}
		value, err := strconv.Atoi(params[i])
		if err != nil {
			route.Defaulted = append(route.Defaulted, labels[i])
			continue
		}
		*targets[i] = value
	}

	return route, nil
}

func joinPath(name string, ids ...int) string {
	var b strings.Builder
	b.WriteString(name)
	for _, id := range ids {
		b.WriteByte('/')
		b.WriteString(strconv.Itoa(id))
	}
	return b.String()
}
