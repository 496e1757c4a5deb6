package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/dmitrijs2005/lawlink/internal/client/models"
	"github.com/gorilla/websocket"
)

// ChatStreamFormat selects how pushed message payloads are decoded.
type ChatStreamFormat int

const (
	// ClientFrames carry {id, senderId, message, timestamp}, as /api/chat.
	ClientFrames ChatStreamFormat = iota
	// LawyerFrames carry {id, sender, message, time}, as /api/lawyer/chats.
	LawyerFrames
)

// ChatStream is an open push channel for one conversation.
type ChatStream struct {
	conn   *websocket.Conn
	decode func(data json.RawMessage) ([]models.Message, error)
}

// chatFrame is {"event": "messages", "data": [...]}.
type chatFrame struct {
	Event string          `json:"event"`
	Data  json.RawMessage `json:"data"`
}

// OpenChatStream dials GET /api/chat/ws?conversation=<id> on the websocket
// counterpart of the base URL. Frames are decoded according to format.
func (c *HTTPClient) OpenChatStream(ctx context.Context, conversationID models.ID, format ChatStreamFormat) (*ChatStream, error) {
	u, err := url.Parse(c.baseURL)
	if err != nil {
		return nil, err
	}
	switch u.Scheme {
	case "https":
		u.Scheme = "wss"
	default:
		u.Scheme = "ws"
	}
	u.Path = strings.TrimRight(u.Path, "/") + "/api/chat/ws"
	u.RawQuery = url.Values{"conversation": {conversationID.String()}}.Encode()

	header := http.Header{}
	if c.tokens != nil {
		if token, err := c.tokens.Token(ctx); err == nil && token != "" {
			header.Set("Authorization", "Bearer "+token)
		}
	}

	conn, resp, err := websocket.DefaultDialer.DialContext(ctx, u.String(), header)
	if err != nil {
		if resp != nil && resp.StatusCode >= 400 {
			return nil, &APIError{Status: resp.StatusCode}
		}
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	stream := &ChatStream{conn: conn, decode: decodeClientFrame}
	if format == LawyerFrames {
		stream.decode = func(data json.RawMessage) ([]models.Message, error) {
			return decodeLawyerFrame(conversationID, data)
		}
	}
	return stream, nil
}

// Next blocks until the server pushes new messages. Frames with other
// events are skipped.
func (s *ChatStream) Next() ([]models.Message, error) {
	for {
		var f chatFrame
		if err := s.conn.ReadJSON(&f); err != nil {
			return nil, err
		}
		if f.Event != "messages" && f.Event != "message" {
			continue
		}
		msgs, err := s.decode(f.Data)
		if err != nil {
			return nil, fmt.Errorf("decode chat frame: %w", err)
		}
		return msgs, nil
	}
}

func (s *ChatStream) Close() error {
	return s.conn.Close()
}

// unmarshalOneOrMany accepts either a single object or an array.
func unmarshalOneOrMany[T any](data json.RawMessage) ([]T, error) {
	if len(data) > 0 && data[0] == '{' {
		var one T
		if err := json.Unmarshal(data, &one); err != nil {
			return nil, err
		}
		return []T{one}, nil
	}
	var many []T
	if err := json.Unmarshal(data, &many); err != nil {
		return nil, err
	}
	return many, nil
}

func decodeClientFrame(data json.RawMessage) ([]models.Message, error) {
	dto, err := unmarshalOneOrMany[chatMessageDTO](data)
	if err != nil {
		return nil, err
	}
	return chatMessages(dto), nil
}

func decodeLawyerFrame(chatID models.ID, data json.RawMessage) ([]models.Message, error) {
	dto, err := unmarshalOneOrMany[lawyerMessageDTO](data)
	if err != nil {
		return nil, err
	}
	return lawyerMessages(chatID, dto), nil
}
