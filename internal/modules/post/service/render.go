package service

import (
	"fmt"
	"strings"

	attachmentDomain "github.com/reshetovitsme/telegram-export-notes/internal/modules/attachment/domain"
	"github.com/reshetovitsme/telegram-export-notes/internal/modules/message/domain"
	"github.com/samber/lo"
)

// RenderMessage renders the visible body of a message: its entities on one line
// followed by the attachment marker on its own line. Each part ends with a line
// break; a message with nothing visible renders to "".
func RenderMessage(msg *domain.Message) string {
	var builder strings.Builder

	text := strings.Join(lo.Map(TrimTrailing(msg.Entities), func(entity domain.TextEntity, _ int) string {
		return RenderEntity(entity)
	}), "")
	if !isBlank(text) {
		builder.WriteString(text)
		builder.WriteString("\n")
	}

	if ref := msg.Attachment(); ref != "" {
		builder.WriteString(attachmentDomain.New(ref).Markdown())
		builder.WriteString("\n")
	}

	return builder.String()
}

// RenderEntity converts a single entity to Markdown. Unknown types render to "".
func RenderEntity(entity domain.TextEntity) string {
	switch entity.Type {
	case domain.EntityTypePlain:
		return entity.Text
	case domain.EntityTypeHashtag:
		return strings.ReplaceAll(entity.Text, "#", "")
	case domain.EntityTypeBlockquote:
		lines := strings.Split(entity.Text, "\n")
		return strings.Join(lo.Map(lines, func(line string, _ int) string {
			return "> " + line
		}), "\n")
	case domain.EntityTypePre, domain.EntityTypeCode, domain.EntityTypeSpoiler:
		return fmt.Sprintf("\n\n```\n%s\n```\n\n", entity.Text)
	case domain.EntityTypeTextLink:
		return fmt.Sprintf("[%s](%s)", entity.Text, entity.Href)
	case domain.EntityTypeLink:
		return fmt.Sprintf("[%s](%s)", entity.Text, entity.Text)
	case domain.EntityTypeItalic:
		return "*" + entity.Text + "*"
	case domain.EntityTypeBold:
		return "**" + entity.Text + "**"
	case domain.EntityTypeStrikethrough:
		return "~~" + entity.Text + "~~"
	case domain.EntityTypeUnderline:
		return "++" + entity.Text + "++"
	default:
		return ""
	}
}

// TrimTrailing drops a trailing blank plain entity, then the trailing run of
// hashtags and blank plain entities. Hashtags go to the note header instead.
func TrimTrailing(entities []domain.TextEntity) []domain.TextEntity {
	if n := len(entities); n > 0 && isBlankPlain(entities[n-1]) {
		entities = entities[:n-1]
	}

	return lo.DropRightWhile(entities, func(entity domain.TextEntity) bool {
		return entity.Type == domain.EntityTypeHashtag || isBlankPlain(entity)
	})
}

// HashTags collects hashtag entities with '#' stripped, in order, duplicates kept.
func HashTags(entities []domain.TextEntity) []string {
	return lo.FilterMap(entities, func(entity domain.TextEntity, _ int) (string, bool) {
		return strings.ReplaceAll(entity.Text, "#", ""), entity.Type == domain.EntityTypeHashtag
	})
}

func isBlankPlain(entity domain.TextEntity) bool {
	return entity.Type == domain.EntityTypePlain && isBlank(entity.Text)
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}
