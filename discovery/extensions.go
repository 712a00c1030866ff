package discovery

import (
	"mime"
	"path/filepath"
	"sort"
	"strings"
)

// Built-in extension table for audio types, used ahead of the platform mime
// database so discovery behaves the same on every OS.
var builtinTypes = map[string]string{
	".aac":  "audio/aac",
	".aif":  "audio/x-aiff",
	".aifc": "audio/x-aiff",
	".aiff": "audio/x-aiff",
	".au":   "audio/basic",
	".flac": "audio/flac",
	".m4a":  "audio/mp4",
	".mid":  "audio/midi",
	".midi": "audio/midi",
	".mp2":  "audio/mpeg",
	".mp3":  "audio/mpeg",
	".oga":  "audio/ogg",
	".ogg":  "audio/ogg",
	".opus": "audio/opus",
	".snd":  "audio/basic",
	".wav":  "audio/wav",
	".wma":  "audio/x-ms-wma",
}

// Extensions returns the known audio file extensions, lowercased and sorted.
func Extensions() []string {
	exts := make([]string, 0, len(builtinTypes))
	for ext := range builtinTypes {
		exts = append(exts, ext)
	}
	sort.Strings(exts)
	return exts
}

// ContentTypeForPath maps a file path to an audio content type based on its
// extension. The second return is false for non-audio extensions.
func ContentTypeForPath(p string) (string, bool) {
	ext := strings.ToLower(filepath.Ext(p))
	if ext == "" {
		return "", false
	}
	if ct, ok := builtinTypes[ext]; ok {
		return ct, true
	}
	ct := mime.TypeByExtension(ext)
	ct = strings.Split(ct, ";")[0]
	if strings.HasPrefix(ct, "audio/") {
		return ct, true
	}
	return "", false
}

func IsAudioPath(p string) bool {
	_, ok := ContentTypeForPath(p)
	return ok
}
