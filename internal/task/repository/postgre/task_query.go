package postgre

import (
	"fmt"
	"strings"

	"smart-todo/internal/model"
	repo "smart-todo/internal/task/repository"
)

// buildUpdateQuery builds the SET clause + args for UpdateTask.
// $1 and $2 are reserved for id and user_id in the WHERE clause.
func (r *implRepository) buildUpdateQuery(sc model.Scope, opt repo.UpdateTaskOptions) (string, []any) {
	var sets []string
	args := []any{opt.ID, sc.UserID}
	idx := 3

	if opt.Title != "" {
		sets = append(sets, fmt.Sprintf("title = $%d", idx))
		args = append(args, opt.Title)
		idx++
	}
	if opt.Description != "" {
		sets = append(sets, fmt.Sprintf("description = $%d", idx))
		args = append(args, opt.Description)
		idx++
	}
	if opt.Completed != nil {
		sets = append(sets, fmt.Sprintf("is_completed = $%d", idx))
		args = append(args, *opt.Completed)
		idx++
	}

	if len(sets) == 0 {
		return "", nil
	}
	return strings.Join(sets, ", "), args
}
