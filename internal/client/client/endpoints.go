package client

import (
	"context"
	"net/http"
	"net/url"

	"github.com/dmitrijs2005/lawlink/internal/client/models"
)

func (c *HTTPClient) Login(ctx context.Context, cred models.Credentials) (models.AuthResponse, error) {
	var resp models.AuthResponse
	err := c.Do(ctx, http.MethodPost, "/api/auth/login", cred, false, &resp)
	return resp, err
}

func (c *HTTPClient) Register(ctx context.Context, reg models.Registration) (models.AuthResponse, error) {
	var resp models.AuthResponse
	err := c.Do(ctx, http.MethodPost, "/api/auth/register", reg, false, &resp)
	return resp, err
}

func (c *HTTPClient) Lawyers(ctx context.Context) ([]models.Lawyer, error) {
	var out []models.Lawyer
	err := c.Do(ctx, http.MethodGet, "/api/lawyers", nil, false, &out)
	return out, err
}

func (c *HTTPClient) CreateAppointment(ctx context.Context, req models.AppointmentRequest) error {
	return c.Do(ctx, http.MethodPost, "/api/appointments", req, true, nil)
}

func (c *HTTPClient) Appointments(ctx context.Context) ([]models.Appointment, error) {
	var out []models.Appointment
	err := c.Do(ctx, http.MethodGet, "/api/appointments", nil, true, &out)
	return out, err
}

func (c *HTTPClient) Documents(ctx context.Context) ([]models.Document, error) {
	var out []models.Document
	err := c.Do(ctx, http.MethodGet, "/api/documents", nil, true, &out)
	return out, err
}

func (c *HTTPClient) CaseProgress(ctx context.Context) ([]models.CaseProgress, error) {
	var out []models.CaseProgress
	err := c.Do(ctx, http.MethodGet, "/api/cases/progress", nil, true, &out)
	return out, err
}

func (c *HTTPClient) LawyerProfile(ctx context.Context) (models.LawyerProfile, error) {
	var out models.LawyerProfile
	err := c.Do(ctx, http.MethodGet, "/api/lawyer/profile", nil, true, &out)
	return out, err
}

func (c *HTTPClient) UpdateLawyerProfile(ctx context.Context, p models.LawyerProfile) error {
	return c.Do(ctx, http.MethodPut, "/api/lawyer/profile", p, true, nil)
}

func (c *HTTPClient) LawyerAppointments(ctx context.Context) ([]models.Appointment, error) {
	var out []models.Appointment
	err := c.Do(ctx, http.MethodGet, "/api/lawyer/appointments", nil, true, &out)
	return out, err
}

func (c *HTTPClient) LawyerDocuments(ctx context.Context) ([]models.Document, error) {
	var out []models.Document
	err := c.Do(ctx, http.MethodGet, "/api/lawyer/documents", nil, true, &out)
	return out, err
}

func (c *HTTPClient) LawyerNotifications(ctx context.Context) ([]models.Notification, error) {
	var out []models.Notification
	err := c.Do(ctx, http.MethodGet, "/api/lawyer/notifications", nil, true, &out)
	return out, err
}

func (c *HTTPClient) Contact(ctx context.Context, msg models.ContactMessage) error {
	return c.Do(ctx, http.MethodPost, "/api/contact", msg, false, nil)
}

// ChatUsers lists the client's conversations, one per counterparty.
func (c *HTTPClient) ChatUsers(ctx context.Context) ([]models.Conversation, error) {
	var dto []chatUserDTO
	if err := c.Do(ctx, http.MethodGet, "/api/chat/users", nil, true, &dto); err != nil {
		return nil, err
	}
	out := make([]models.Conversation, len(dto))
	for i, u := range dto {
		out[i] = u.model()
	}
	return out, nil
}

// ChatMessages returns the full log with userID. SenderID is passed through
// unchanged; callers normalise their own id to models.CurrentUserMarker.
func (c *HTTPClient) ChatMessages(ctx context.Context, userID models.ID) ([]models.Message, error) {
	var dto []chatMessageDTO
	path := "/api/chat/messages/" + url.PathEscape(userID.String())
	if err := c.Do(ctx, http.MethodGet, path, nil, true, &dto); err != nil {
		return nil, err
	}
	return chatMessages(dto), nil
}

// SendChatMessage returns the server id of the stored message when the
// response carries one.
func (c *HTTPClient) SendChatMessage(ctx context.Context, receiverID models.ID, text string) (models.ID, error) {
	body := struct {
		ReceiverID models.ID `json:"receiverId"`
		Message    string    `json:"message"`
	}{receiverID, text}
	var resp struct {
		ID models.ID `json:"id"`
	}
	err := c.Do(ctx, http.MethodPost, "/api/chat/send", body, true, &resp)
	return resp.ID, err
}

func (c *HTTPClient) LawyerChats(ctx context.Context) ([]models.Conversation, error) {
	var dto []lawyerChatDTO
	if err := c.Do(ctx, http.MethodGet, "/api/lawyer/chats", nil, true, &dto); err != nil {
		return nil, err
	}
	out := make([]models.Conversation, len(dto))
	for i, ch := range dto {
		out[i] = ch.model()
	}
	return out, nil
}

// LawyerChatMessages returns the log of chat chatID. Messages sent by the
// lawyer carry models.CurrentUserMarker as SenderID.
func (c *HTTPClient) LawyerChatMessages(ctx context.Context, chatID models.ID) ([]models.Message, error) {
	var dto []lawyerMessageDTO
	if err := c.Do(ctx, http.MethodGet, lawyerMessagesPath(chatID), nil, true, &dto); err != nil {
		return nil, err
	}
	return lawyerMessages(chatID, dto), nil
}

func (c *HTTPClient) SendLawyerMessage(ctx context.Context, chatID models.ID, text string) (models.ID, error) {
	body := struct {
		Message string `json:"message"`
	}{text}
	var resp struct {
		ID models.ID `json:"id"`
	}
	err := c.Do(ctx, http.MethodPost, lawyerMessagesPath(chatID), body, true, &resp)
	return resp.ID, err
}

func lawyerMessagesPath(chatID models.ID) string {
	return "/api/lawyer/chats/" + url.PathEscape(chatID.String()) + "/messages"
}
