package validator

// OneOf reports whether v equals any of the choices.
func OneOf[T any](v T, choices []T, equal EqualFunc[T]) bool {
	for _, c := range choices {
		if equal(v, c) {
			return true
		}
	}
	return false
}
