package sanitizer

// Compose chains string transforms into a single func, running them left to
// right. The transforms slice is copied, so later changes by the caller do not
// leak into the returned pipeline.
//
//	anchor := sanitizer.Compose(strings.TrimSpace, sanitizer.CleanID)
func Compose(transforms ...func(string) string) func(string) string {
	steps := make([]func(string) string, 0, len(transforms))
	for _, fn := range transforms {
		if fn != nil {
			steps = append(steps, fn)
		}
	}

	return func(s string) string {
		for _, step := range steps {
			s = step(s)
		}
		return s
	}
}
