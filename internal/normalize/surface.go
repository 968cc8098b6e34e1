package normalize

import (
	"strings"

	"github.com/courtsight/courtsight/internal/domain/match"
)

var surfaceVocabulary = map[string]match.Surface{
	"hard":          match.SurfaceHard,
	"outdoor hard":  match.SurfaceHard,
	"h":             match.SurfaceHard,
	"clay":          match.SurfaceClay,
	"red clay":      match.SurfaceClay,
	"green clay":    match.SurfaceClay,
	"c":             match.SurfaceClay,
	"grass":         match.SurfaceGrass,
	"g":             match.SurfaceGrass,
	"indoor":        match.SurfaceIndoor,
	"indoor hard":   match.SurfaceIndoor,
	"i":             match.SurfaceIndoor,
	"carpet":        match.SurfaceCarpet,
	"indoor carpet": match.SurfaceCarpet,
}

// Surface maps a raw surface string onto the closed enum. Hard is the
// fallback: it is by far the most common tour surface and the least wrong
// default for display purposes.
func Surface(value string) match.Surface {
	key := strings.ToLower(strings.TrimSpace(value))
	if surface, ok := surfaceVocabulary[key]; ok {
		return surface
	}
	return match.SurfaceHard
}

// KnownSurface reports whether the raw value maps without the fallback arm.
func KnownSurface(value string) bool {
	_, ok := surfaceVocabulary[strings.ToLower(strings.TrimSpace(value))]
	return ok
}
