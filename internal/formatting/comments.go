package formatting

import (
	"github.com/andy/gitdash/internal/model"
)

// FilterBotComments returns the comments whose author is not on the bot
// list. The match is exact on login. This is a display-level filter; the
// record keeps its full comment list.
func FilterBotComments(comments []model.Comment, isBot func(string) bool) []model.Comment {
	var out []model.Comment
	for _, c := range comments {
		if isBot(c.User.Login) {
			continue
		}
		out = append(out, c)
	}
	return out
}
