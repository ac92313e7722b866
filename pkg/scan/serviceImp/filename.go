package serviceImp

import (
	"path/filepath"
	"strings"
)

var allowedExt = map[string]string{
	"png":  "image/png",
	"jpg":  "image/jpeg",
	"jpeg": "image/jpeg",
	"gif":  "image/gif",
}

// imageExt returns the lower-cased extension of name and its MIME type when
// it is one of the accepted image kinds.
func imageExt(name string) (ext, mimeType string, ok bool) {
	i := strings.LastIndexByte(name, '.')
	if i < 0 || i == len(name)-1 {
		return "", "", false
	}
	ext = strings.ToLower(name[i+1:])
	mimeType, ok = allowedExt[ext]
	return ext, mimeType, ok
}

// SecureFilename reduces a client-supplied name to a flat ASCII file name:
// directories are dropped, whitespace becomes '_', and anything outside
// [A-Za-z0-9._-] is removed. Leading dots and underscores are stripped so
// the result can never be hidden or climb out of the upload dir.
func SecureFilename(name string) string {
	name = strings.ReplaceAll(name, "\\", "/")
	name = filepath.Base("/" + name)
	name = strings.Join(strings.Fields(name), "_")

	var b strings.Builder
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '.', r == '_', r == '-':
			b.WriteRune(r)
		}
	}
	return strings.Trim(b.String(), "._")
}

// storedName builds "<stamp>_<base>.<ext>", keeping the validated extension
// even when sanitizing ate the base name.
func storedName(stamp, original, ext string) string {
	base := SecureFilename(strings.TrimSuffix(original, filepath.Ext(original)))
	if base == "" {
		base = "image"
	}
	return stamp + "_" + base + "." + ext
}
