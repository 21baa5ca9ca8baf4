package domain

import (
	"fmt"
	"strings"
)

var videoExtensions = map[string]bool{
	"m4v": true,
	"mp4": true,
	"mov": true,
	"ogg": true,
}

// Attachment is a media reference carried by a message
type Attachment struct {
	Name string
	Kind Kind
}

// New derives the attachment from a photo or file reference such as
// "photos/photo_1@01-09-2024.jpg".
func New(ref string) Attachment {
	name := ref
	if i := strings.LastIndex(ref, "/"); i >= 0 {
		name = ref[i+1:]
	}
	return Attachment{Name: name, Kind: KindOf(name)}
}

// KindOf classifies a file name by its lowercase extension.
func KindOf(name string) Kind {
	ext := ""
	if i := strings.LastIndex(name, "."); i >= 0 {
		ext = strings.ToLower(name[i+1:])
	}

	switch {
	case videoExtensions[ext]:
		return KindVideo
	case ext == "pdf":
		return KindDocument
	default:
		return KindImage
	}
}

// Markdown returns the embed marker for the attachment.
func (a Attachment) Markdown() string {
	switch a.Kind {
	case KindVideo:
		return fmt.Sprintf("![[%s]]", a.Name)
	case KindDocument:
		return fmt.Sprintf("[[%s]]", a.Name)
	default:
		return fmt.Sprintf("![](%s)", a.Name)
	}
}
