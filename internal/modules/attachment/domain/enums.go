//go:generate go run github.com/abice/go-enum --file=$GOFILE --names --nocase

package domain

// Kind is how an attachment is embedded into a note
// ENUM(image,video,document)
type Kind string
