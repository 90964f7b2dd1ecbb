package chat

import "mindsoul/server/model"

// Roles understood by the model collaborator.
const (
	RoleUser  = "user"
	RoleModel = "model"
)

// ModelTurn is one conversation turn in the collaborator's role vocabulary.
type ModelTurn struct {
	Role string
	Text string
}

// FormatHistory converts a client transcript into collaborator turns,
// dropping the final element: the in-flight message is sent separately and
// must not appear in the history as well. The input slice is not modified.
func FormatHistory(history []model.ChatTurn) []ModelTurn {
	if len(history) == 0 {
		return nil
	}

	trimmed := history[:len(history)-1]
	turns := make([]ModelTurn, 0, len(trimmed))
	for _, t := range trimmed {
		role := RoleModel
		if t.Sender == model.SenderUser {
			role = RoleUser
		}
		turns = append(turns, ModelTurn{Role: role, Text: t.Text})
	}
	return turns
}
