package usecase

// generatePrompt asks the model to propose next actions over the user's open
// tasks. The task list is appended below it, one numbered line per task.
const generatePrompt = `You are a productivity assistant. Review the user's open tasks below and propose up to 3 concrete suggestions.

Each suggestion must be one of these types:
- priority: a task that should be reprioritized
- deadline: a task that needs a due date or whose due date looks wrong
- group: tasks that belong together and could be batched
- reminder: a task that seems forgotten and deserves attention

Respond with a JSON array only:
[
  {
    "task_number": 1,
    "type": "priority|deadline|group|reminder",
    "content": "One sentence the user will read"
  }
]

Use task_number 0 for suggestions that span multiple tasks.

Open tasks:
`

const generateTemperature = 0.7
