package systems

import (
	"image/color"

	"ebiten-tilecollide/ecs"
)

// MessageType defines different types of messages that can appear in the log
type MessageType int

const (
	// MessageTypeNormal is for standard messages (gray)
	MessageTypeNormal MessageType = iota
	// MessageTypeEnvironment is for wall contacts (gold)
	MessageTypeEnvironment
	// MessageTypeCombat is for enemy contacts (red)
	MessageTypeCombat
	// MessageTypeAlert is for player-player contacts (bright yellow)
	MessageTypeAlert
	// MessageTypeSystem is for counters and diagnostics (purple)
	MessageTypeSystem
)

// ColoredMessage stores a message with its associated color
type ColoredMessage struct {
	Text string
	Type MessageType
}

// GetColor returns the color for the message based on its type
func (cm ColoredMessage) GetColor() color.RGBA {
	switch cm.Type {
	case MessageTypeEnvironment:
		return color.RGBA{218, 165, 32, 255} // Gold
	case MessageTypeCombat:
		return color.RGBA{255, 100, 100, 255} // Red
	case MessageTypeAlert:
		return color.RGBA{255, 255, 0, 255} // Bright Yellow
	case MessageTypeSystem:
		return color.RGBA{186, 85, 211, 255} // Medium Orchid
	default:
		return color.RGBA{200, 200, 200, 255} // Light Gray
	}
}

// messageTypeFor picks the log color for a collision kind
func messageTypeFor(kind ecs.EventType) MessageType {
	switch kind {
	case EventPlayerWall:
		return MessageTypeEnvironment
	case EventPlayerEnemy:
		return MessageTypeCombat
	case EventPlayerPlayer:
		return MessageTypeAlert
	}
	return MessageTypeNormal
}
