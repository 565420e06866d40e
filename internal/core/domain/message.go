package domain

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
)

var (
	ErrMissingRecipient = errors.New("message has no recipient")
	ErrNoPayload        = errors.New("message payload has no variant")
	ErrAmbiguousPayload = errors.New("message payload has more than one variant")
)

// Message is the envelope every signaling frame carries. The relay only reads
// Recipient; payload content passes through untouched, except Peers which the
// relay builds itself.
type Message struct {
	Recipient string  `json:"recipient"`
	Payload   Payload `json:"payload"`
}

// Payload is a closed one-of. Exactly one field is non-nil on a valid message.
type Payload struct {
	Offer     *Signal `json:"offer,omitempty"`
	Answer    *Signal `json:"answer,omitempty"`
	Candidate *Signal `json:"candidate,omitempty"`
	Peers     *Peers  `json:"peers,omitempty"`
	Echo      *Echo   `json:"echo,omitempty"`
	File      *File   `json:"file,omitempty"`
}

// Signal carries one step of the session negotiation: an SDP offer or answer,
// or an ICE candidate. Payload is opaque to the relay.
type Signal struct {
	Sender  string `json:"sender"`
	Payload string `json:"payload"`
}

// Peers is the roster pushed to a joiner: everybody else currently in the room.
type Peers struct {
	Names []string `json:"names"`
}

// Echo loops an arbitrary string back through the relay.
type Echo struct {
	Message string `json:"message"`
}

// File announces an upcoming peer-to-peer file transfer.
type File struct {
	Sender   string `json:"sender"`
	FileName string `json:"fileName"`
	FileSize int64  `json:"fileSize"`
}

// ParseMessage decodes one text frame. Unknown kinds or fields, a missing
// recipient, anything other than exactly one payload variant, and trailing
// data all fail the decode.
func ParseMessage(data []byte) (Message, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()

	var msg Message
	if err := dec.Decode(&msg); err != nil {
		return Message{}, err
	}
	if err := msg.Validate(); err != nil {
		return Message{}, err
	}
	if err := dec.Decode(&struct{}{}); err != io.EOF {
		return Message{}, fmt.Errorf("unexpected trailing data")
	}
	return msg, nil
}

func (m Message) Validate() error {
	if m.Recipient == "" {
		return ErrMissingRecipient
	}
	variants := 0
	for _, set := range []bool{
		m.Payload.Offer != nil,
		m.Payload.Answer != nil,
		m.Payload.Candidate != nil,
		m.Payload.Peers != nil,
		m.Payload.Echo != nil,
		m.Payload.File != nil,
	} {
		if set {
			variants++
		}
	}
	switch {
	case variants == 0:
		return ErrNoPayload
	case variants > 1:
		return ErrAmbiguousPayload
	}
	return nil
}

// Encode renders the wire form of the message.
func (m Message) Encode() ([]byte, error) {
	return json.Marshal(m)
}

// NewPeersMessage builds the roster push for a joiner. An empty roster encodes
// as an empty list, never null.
func NewPeersMessage(recipient string, names []string) Message {
	if names == nil {
		names = []string{}
	}
	return Message{
		Recipient: recipient,
		Payload:   Payload{Peers: &Peers{Names: names}},
	}
}
