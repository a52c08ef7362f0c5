package strutil

import (
	"strings"
)

// RemoveExtension returns the final component of filename with its
// extension removed.
//
// If extension is non-empty and the name ends with it, exactly that suffix is
// removed. Otherwise everything from the last period is removed, unless the
// name only has leading periods (".bashrc" is returned unchanged). A single
// trailing period left over afterwards is dropped as well, so
// RemoveExtension("genome.fna.gz", "gz") returns "genome.fna".
//
// Both '/' and '\' are treated as separators and a leading drive letter is
// ignored, regardless of the host platform. Names that end in a separator
// have an empty final component and yield "".
func RemoveExtension(filename, extension string) string {
	name := baseName(filename)

	if extension != "" && strings.HasSuffix(name, extension) {
		name = strings.TrimSuffix(name, extension)
	} else {
		name = trimExt(name)
	}

	return strings.TrimSuffix(name, ".")
}

func baseName(path string) string {
	if len(path) >= 2 && path[1] == ':' && isASCIILetter(path[0]) {
		path = path[2:]
	}

	return path[strings.LastIndexAny(path, `/\`)+1:]
}

func isASCIILetter(c byte) bool {
	return ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z')
}

// trimExt removes the text from the last period onward. Leading periods do
// not start an extension.
func trimExt(name string) string {
	dot := strings.LastIndexByte(name, '.')
	if dot <= 0 {
		return name
	}

	if strings.TrimLeft(name[:dot], ".") == "" {
		return name
	}

	return name[:dot]
}
