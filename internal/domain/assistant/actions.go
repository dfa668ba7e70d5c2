package assistant

import (
	"fmt"

	"medisafe-companion/internal/ports/ai"
)

const (
	toolSendNotification = "send_notification"
	toolTalkToPatient    = "talk_to_patient"
	toolWakeUp           = "wake_up"
)

// agentTools son las tres acciones que el modelo puede pedir desde el chat.
var agentTools = []ai.Tool{
	{
		Name:        toolSendNotification,
		Description: "Send a notification to the patient's device.",
		Params: []ai.Param{
			{Name: "title", Description: "The title of the notification.", Required: true},
			{Name: "body", Description: "The message body of the notification.", Required: true},
			{Name: "type", Description: "The severity/type of the notification.", Enum: []string{"info", "urgent", "recommendation"}},
		},
	},
	{
		Name:        toolTalkToPatient,
		Description: "Speak directly to the patient using text-to-speech.",
		Params: []ai.Param{
			{Name: "message", Description: "The message to speak to the patient.", Required: true},
		},
	},
	{
		Name:        toolWakeUp,
		Description: "Wake up the agent to start a conversation or alert the patient.",
		Params: []ai.Param{
			{Name: "reason", Description: "The reason for waking up (e.g., 'Scream detected', 'Patient spoke').", Required: true},
		},
	},
}

type ActionType string

const (
	ActionNotification ActionType = "notification"
	ActionSpeak        ActionType = "speak"
	ActionWakeUp       ActionType = "wake_up"
)

// Action es una llamada a tool ya ejecutada del lado servidor. Speak lo reproduce el cliente.
type Action struct {
	Type           ActionType
	NotificationID int64
	Title          string
	Body           string
	Category       string
	Message        string
	Reason         string
}

type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

type Message struct {
	Role    Role
	Content string
}

func wakeUpMessage(reason string) string {
	return fmt.Sprintf("I'm awake! Reason: %s. How can I help?", reason)
}

func autonomousMessage(msg string) string {
	return "[Autonomous Wake-up]: " + msg
}
