package models

// ChatMessage is the payload carried over the chat channel. Messages are
// relayed to every connected client and never persisted; the time field is
// whatever the sending client stamped.
type ChatMessage struct {
	Name    string `json:"name"`
	Message string `json:"message"`
	Time    string `json:"time"`
}
