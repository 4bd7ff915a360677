package catalog

import "strings"

// Extensions lists the accepted file extensions, without the leading dot.
var Extensions = []string{
	"jpeg", "jpg", "png", "gif", "bmp", "ico", "webp", "tiff", "pnm", "dds", "tga", "farbfeld",
}

var allowed = func() map[string]struct{} {
	set := make(map[string]struct{}, len(Extensions))
	for _, ext := range Extensions {
		set[ext] = struct{}{}
	}
	return set
}()

// Allowed reports whether ext (case-sensitive, no dot) is on the allow-list.
func Allowed(ext string) bool {
	_, ok := allowed[ext]
	return ok
}

// extension returns the text after the final dot of a file name. A name with
// no dot, or whose only dot is the leading one, has no extension.
func extension(name string) (string, bool) {
	idx := strings.LastIndexByte(name, '.')
	if idx <= 0 {
		return "", false
	}
	return name[idx+1:], true
}
