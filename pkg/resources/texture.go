// Package resources keeps loaded asset handles behind a closed set of tags.
// Callers ask for a texture by TextureID, never by path.
package resources

import "fmt"

// TextureID names one texture the game needs.
type TextureID int

const (
	Background TextureID = iota
	Cars
	numTextures
)

// Textures lists every TextureID, in load order.
func Textures() []TextureID {
	ids := make([]TextureID, 0, numTextures)
	for id := TextureID(0); id < numTextures; id++ {
		ids = append(ids, id)
	}
	return ids
}

// Valid reports whether id is one of the declared tags.
func (id TextureID) Valid() bool {
	return id >= 0 && id < numTextures
}

func (id TextureID) String() string {
	switch id {
	case Background:
		return "background"
	case Cars:
		return "cars"
	}
	return fmt.Sprintf("TextureID(%d)", int(id))
}
