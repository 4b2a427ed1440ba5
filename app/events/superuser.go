package events

import "strings"

// Operators is a list of discord user ids treated as bot admins. Operators can
// run management commands in any guild regardless of their guild permissions.
type Operators []string

// IsOperator checks if the given user id is in the operators list
func (o Operators) IsOperator(userID string) bool {
	if userID == "" {
		return false
	}
	for _, op := range o {
		if strings.EqualFold(strings.TrimSpace(op), userID) {
			return true
		}
	}
	return false
}
