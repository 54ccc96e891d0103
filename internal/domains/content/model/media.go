package model

// Spotlight rows were historically written under a single "image" column;
// newer writers fill the richer "media"/"media_type" pair. Both columns stay
// live so old rows and old readers keep working. This adapter is the only
// place that knows about the duplication: readers resolve to one canonical
// URL, writers mirror it into both columns.

// ResolveMedia prefers the richer media column, falling back to the legacy
// image column.
func ResolveMedia(media, image string) string {
	if media != "" {
		return media
	}
	return image
}

// NormalizeMediaType defaults missing values to image.
func NormalizeMediaType(t MediaType) MediaType {
	if !t.Valid() {
		return MediaTypeImage
	}
	return t
}

// MirrorMedia builds the write-side pair: the resolved value goes into both
// the media and image columns.
func MirrorMedia(media, image string) (string, string) {
	resolved := ResolveMedia(media, image)
	return resolved, resolved
}
