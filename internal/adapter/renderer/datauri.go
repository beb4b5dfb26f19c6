package renderer

import (
	"encoding/base64"
	"errors"
	"strings"
)

var ErrNotDataURI = errors.New("not a base64 data uri")

// DecodeDataURI splits a base64 data URI produced by the renderers.
func DecodeDataURI(uri string) (mediaType string, data []byte, err error) {
	rest, ok := strings.CutPrefix(uri, "data:")
	if !ok {
		return "", nil, ErrNotDataURI
	}
	meta, payload, ok := strings.Cut(rest, ",")
	if !ok {
		return "", nil, ErrNotDataURI
	}
	mediaType, ok = strings.CutSuffix(meta, ";base64")
	if !ok {
		return "", nil, ErrNotDataURI
	}
	data, err = base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return "", nil, err
	}
	return mediaType, data, nil
}

// Extension returns the file extension for a renderer media type.
func Extension(mediaType string) string {
	switch mediaType {
	case MediaTypeHTML:
		return ".html"
	case MediaTypeXLSX:
		return ".xlsx"
	default:
		return ".bin"
	}
}
