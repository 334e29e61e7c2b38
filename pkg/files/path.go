package files

import "strings"

// Segments splits a store path into its non-empty segments.
func Segments(p string) []string {
	if p == "" {
		return nil
	}
	parts := strings.Split(p, "/")
	segments := parts[:0]
	for _, part := range parts {
		if part != "" {
			segments = append(segments, part)
		}
	}
	return segments
}

// CleanPath drops leading, trailing and repeated slashes. Root is "".
func CleanPath(p string) string {
	return strings.Join(Segments(p), "/")
}

// BaseName returns the final segment of p.
func BaseName(p string) string {
	segments := Segments(p)
	if len(segments) == 0 {
		return ""
	}
	return segments[len(segments)-1]
}

// ParentPath returns the path one level up; the parent of root is root.
func ParentPath(p string) string {
	segments := Segments(p)
	if len(segments) <= 1 {
		return ""
	}
	return strings.Join(segments[:len(segments)-1], "/")
}

func JoinPath(dir, name string) string {
	if dir == "" {
		return name
	}
	return dir + "/" + name
}
