//go:generate go run github.com/abice/go-enum --file=$GOFILE --names --nocase

package domain

// EntityType is the tag of a rich-text fragment in an export. Values outside
// the enumeration are kept as-is and render to nothing.
// ENUM(plain,hashtag,blockquote,pre,code,spoiler,text_link,italic,link,bold,strikethrough,underline)
type EntityType string
