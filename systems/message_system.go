package systems

import (
	"fmt"

	"ebiten-tilecollide/ecs"
)

// MessageLog stores game messages shown on the debug screen
type MessageLog struct {
	Messages    []ColoredMessage
	MaxMessages int
}

// NewMessageLog creates a new message log
func NewMessageLog() *MessageLog {
	return &MessageLog{
		Messages:    []ColoredMessage{},
		MaxMessages: 100, // Store the last 100 messages
	}
}

// Add adds a plain message to the log
func (ml *MessageLog) Add(message string) {
	ml.AddColored(message, MessageTypeNormal)
}

// AddColored adds a message of the given type to the log
func (ml *MessageLog) AddColored(message string, msgType MessageType) {
	ml.Messages = append(ml.Messages, ColoredMessage{Text: message, Type: msgType})

	// Truncate if we have too many messages
	if len(ml.Messages) > ml.MaxMessages {
		ml.Messages = ml.Messages[len(ml.Messages)-ml.MaxMessages:]
	}
}

// RecentMessages gets the n most recent messages, newest first
func (ml *MessageLog) RecentMessages(n int) []ColoredMessage {
	if n > len(ml.Messages) {
		n = len(ml.Messages)
	}

	result := make([]ColoredMessage, n)
	for i := 0; i < n; i++ {
		result[i] = ml.Messages[len(ml.Messages)-1-i]
	}

	return result
}

// Texts returns the text of every stored message, oldest first
func (ml *MessageLog) Texts() []string {
	texts := make([]string, len(ml.Messages))
	for i, m := range ml.Messages {
		texts[i] = m.Text
	}
	return texts
}

// Clear clears all messages
func (ml *MessageLog) Clear() {
	ml.Messages = []ColoredMessage{}
}

// SubscribeCollisions writes every collision event to the log
func (ml *MessageLog) SubscribeCollisions(em *ecs.EventManager) []ecs.Subscription {
	subs := make([]ecs.Subscription, 0, len(CollisionEventTypes))
	for _, t := range CollisionEventTypes {
		subs = append(subs, em.Subscribe(t, func(e ecs.Event) {
			c, ok := e.(CollisionEvent)
			if !ok {
				return
			}
			ml.AddColored(c.Message(), messageTypeFor(c.Kind))
			ml.AddColored(fmt.Sprintf("Collision Detected %d times", c.Count), MessageTypeSystem)
		}))
	}
	return subs
}
