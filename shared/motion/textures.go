package motion

// TextureSet is an ordered, fixed lookup table of texture handles selected by link index.
type TextureSet[T any] struct {
	handles []T
}

// NewTextureSet copies handles into a new set.
func NewTextureSet[T any](handles ...T) TextureSet[T] {
	return TextureSet[T]{handles: append([]T(nil), handles...)}
}

// Len returns the number of textures in the set.
func (s TextureSet[T]) Len() int {
	return len(s.handles)
}

// At returns the handle for index i. ok is false when i is outside the set.
func (s TextureSet[T]) At(i int) (handle T, ok bool) {
	if i < 0 || i >= len(s.handles) {
		return handle, false
	}
	return s.handles[i], true
}
