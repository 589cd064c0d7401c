package session

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Sender identifies who authored a chat message.
type Sender string

const (
	SenderMe     Sender = "me"
	SenderMentor Sender = "mentor"
)

// ChatMessage is one entry in the mentor-chat transcript.
type ChatMessage struct {
	ID     string    `json:"id"`
	Sender Sender    `json:"sender"`
	Text   string    `json:"text"`
	SentAt time.Time `json:"sent_at"`
}

// MentorReply is the canned mentor response. There is no real chat backend;
// the mentor always answers with this text after ReplyDelay.
const MentorReply = "Great! Try the intermediate Python project course."

// ReplyDelay is how long the mock mentor "thinks" before replying.
const ReplyDelay = 800 * time.Millisecond

// Transcript returns the chat transcript in arrival order. Callers must not
// modify the returned slice.
func (s *Store) Transcript() []ChatMessage {
	return s.transcript
}

// AppendMessage appends a message to the transcript and persists it. Empty
// or all-whitespace text is rejected and leaves the transcript unchanged;
// the second return value reports whether the message was appended.
func (s *Store) AppendMessage(sender Sender, text string) (ChatMessage, bool) {
	if strings.TrimSpace(text) == "" {
		return ChatMessage{}, false
	}
	msg := ChatMessage{
		ID:     uuid.NewString(),
		Sender: sender,
		Text:   text,
		SentAt: time.Now(),
	}
	s.transcript = append(s.transcript, msg)
	s.save(keyChat, s.transcript)
	return msg, true
}

// seedTranscript is the conversation shown before the user has said anything.
func seedTranscript() []ChatMessage {
	now := time.Now()
	return []ChatMessage{
		{
			ID:     uuid.NewString(),
			Sender: SenderMentor,
			Text:   "Hii Palak... how may I help you?",
			SentAt: now.Add(-60 * time.Second),
		},
		{
			ID:     uuid.NewString(),
			Sender: SenderMe,
			Text:   "I just finished the Python basics course. What's next?",
			SentAt: now.Add(-50 * time.Second),
		},
	}
}
