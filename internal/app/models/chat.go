package models

// Message is a single chat line
type Message struct {
	ID           string `json:"id" yaml:"id"`
	SenderID     string `json:"senderId" yaml:"senderId"`
	SenderName   string `json:"senderName" yaml:"senderName"`
	SenderAvatar string `json:"senderAvatar" yaml:"senderAvatar"`
	Content      string `json:"content" yaml:"content"`
	Timestamp    string `json:"timestamp" yaml:"timestamp" example:"10:30 AM"`
	IsRead       bool   `json:"isRead" yaml:"isRead"`
}

// Chat is a conversation between the user and a club's admins
type Chat struct {
	ID              string    `json:"id" yaml:"id" example:"c1"`
	ClubID          string    `json:"clubId" yaml:"clubId"`
	ClubName        string    `json:"clubName" yaml:"clubName"`
	ClubAvatar      string    `json:"clubAvatar" yaml:"clubAvatar"`
	LastMessage     string    `json:"lastMessage" yaml:"lastMessage"`
	LastMessageTime string    `json:"lastMessageTime" yaml:"lastMessageTime"`
	UnreadCount     int       `json:"unreadCount" yaml:"unreadCount"`
	Messages        []Message `json:"messages" yaml:"messages"`
}

// Clone returns a copy that shares no slices with c.
func (c Chat) Clone() Chat {
	if c.Messages == nil {
		return c
	}
	msgs := make([]Message, len(c.Messages))
	copy(msgs, c.Messages)
	c.Messages = msgs
	return c
}

// HasMessage reports whether a message with id exists in the chat.
func (c Chat) HasMessage(id string) bool {
	for _, m := range c.Messages {
		if m.ID == id {
			return true
		}
	}
	return false
}
