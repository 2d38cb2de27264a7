package models

// EventType is the kind of ephemeral event pushed to a profile's clients
type EventType string

const (
	// EventTypeToast shows a short in-app message
	EventTypeToast EventType = "toast"

	// EventTypeSound plays a synthesized audio cue
	EventTypeSound EventType = "sound"

	// EventTypeNotification mirrors a reminder for clients able to raise a system notification
	EventTypeNotification EventType = "notification"
)

// SoundCue names one of the synthesized tones
type SoundCue string

const (
	SoundClick        SoundCue = "click"
	SoundWater        SoundCue = "water"
	SoundSuccess      SoundCue = "success"
	SoundNotification SoundCue = "notification"
)

// NotificationAction is an action button offered with a notification
type NotificationAction struct {
	Action string `json:"action"`
	Title  string `json:"title"`
}

const (
	// ActionDrink logs a glass of water from a reminder
	ActionDrink = "drink"

	// ActionDismiss closes a reminder
	ActionDismiss = "close"
)

// ReminderActions are the buttons attached to every reminder
var ReminderActions = []NotificationAction{
	{Action: ActionDrink, Title: "I Drank Water"},
	{Action: ActionDismiss, Title: "Dismiss"},
}

// Event is an ephemeral message for a profile's connected clients
type Event struct {
	Type    EventType            `json:"type"`
	Title   string               `json:"title,omitempty"`
	Message string               `json:"message,omitempty"`
	Cue     SoundCue             `json:"cue,omitempty"`
	Actions []NotificationAction `json:"actions,omitempty"`
}
