package usecase

// Assistant reply templates. The glyph prefixes match what users see in the
// web client, so change them only together with the frontend.
const (
	respTaskCreated    = "✅ Created task '%s' successfully!"
	respTaskCreatedDue = " Due date: %s"

	respNoTasks        = "You don't have any tasks yet. Create one by saying 'Add task: [task name]'"
	respTaskListHeader = "Here are your %d tasks:"

	respTaskUpdated = "✅ Updated task to '%s'"
	respTaskDeleted = "✅ Deleted task '%s'"
	respTaskMarked  = "✅ Marked '%s' as %s"

	respTaskRefNotFound = "❌ Task number %d not found"
	respInvalidTaskRef  = "❌ Invalid task number"

	respUpdateNeedsRef = "❌ Please specify which task to update (e.g., 'Update task 1 to...')"
	respDeleteNeedsRef = "❌ Please specify which task to delete (e.g., 'Delete task 1')"
	respMarkNeedsRef   = "❌ Please specify which task (e.g., 'Mark task 1 as done')"

	respGeneralHelp = "I can help you manage your tasks. Try:\n- 'Add task: Buy groceries'\n- 'Show my tasks'\n- 'Mark task 1 as done'"

	respClassifierDown = "Sorry, I encountered an error. Please try again."
)

// Completion status words used in respTaskMarked.
const (
	statusWordComplete   = "complete"
	statusWordIncomplete = "incomplete"
)

// Task list line glyphs.
const (
	glyphDone    = "✅"
	glyphPending = "⏳"
)
