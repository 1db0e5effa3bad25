package books

import (
	"crypto/rand"
	"encoding/base64"
	"encoding/hex"
	"errors"
	"strings"
)

var errBadImage = errors.New("invalid image payload")

// decodeImage accepts either a bare base64 string or a data URI
// (data:image/png;base64,...) and returns the raw bytes plus content type.
func decodeImage(payload string) (data []byte, contentType string, err error) {
	contentType = "image/jpeg"

	if strings.HasPrefix(payload, "data:") {
		rest, ok := strings.CutPrefix(payload, "data:")
		if !ok {
			return nil, "", errBadImage
		}
		meta, b64, ok := strings.Cut(rest, ",")
		if !ok {
			return nil, "", errBadImage
		}
		if ct, _, found := strings.Cut(meta, ";"); found && ct != "" {
			contentType = ct
		} else if meta != "" && !strings.Contains(meta, ";") {
			contentType = meta
		}
		payload = b64
	}

	data, err = base64.StdEncoding.DecodeString(payload)
	if err != nil {
		// some clients strip the padding
		data, err = base64.RawStdEncoding.DecodeString(payload)
	}
	if err != nil || len(data) == 0 {
		return nil, "", errBadImage
	}
	return data, contentType, nil
}

// objectKey places uploads under books/ with a random name and an extension
// matching the content type.
func objectKey(contentType string) string {
	var b [12]byte
	_, _ = rand.Read(b[:])
	return "books/" + hex.EncodeToString(b[:]) + extFor(contentType)
}

func extFor(contentType string) string {
	switch contentType {
	case "image/png":
		return ".png"
	case "image/webp":
		return ".webp"
	case "image/gif":
		return ".gif"
	default:
		return ".jpg"
	}
}
