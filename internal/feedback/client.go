package feedback

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"regexp"
	"strings"
)

const defaultEndpoint = "https://api.web3forms.com/submit"

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// Validation errors carry the exact messages the UI displays.
var (
	ErrMessageTooShort = errors.New("Message must be at least 10 characters long")
	ErrInvalidEmail    = errors.New("Invalid email format")
)

// Submission is one feedback report from the UI. PageURL is filled from the
// request referer, not the body.
type Submission struct {
	Name      string `json:"name"`
	Email     string `json:"email"`
	Message   string `json:"message"`
	IssueType string `json:"issueType"`
	PageURL   string `json:"-"`
}

func (s Submission) Validate() error {
	if len(strings.TrimSpace(s.Message)) < 10 {
		return ErrMessageTooShort
	}
	if s.Email != "" && !emailPattern.MatchString(s.Email) {
		return ErrInvalidEmail
	}
	return nil
}

type relayPayload struct {
	AccessKey string `json:"access_key"`
	Subject   string `json:"subject"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Message   string `json:"message"`
	PageURL   string `json:"page_url"`
	ReplyTo   string `json:"replyto"`
	Botcheck  bool   `json:"botcheck"`
}

// Client relays feedback submissions to the web3forms API and hands the
// provider's JSON response back verbatim.
type Client struct {
	endpoint   string
	accessKey  string
	httpClient *http.Client
}

func NewClient(accessKey string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{
		endpoint:   defaultEndpoint,
		accessKey:  accessKey,
		httpClient: httpClient,
	}
}

// WithEndpoint overrides the relay URL, mainly for tests.
func (c *Client) WithEndpoint(endpoint string) *Client {
	c.endpoint = endpoint
	return c
}

func (c *Client) Submit(ctx context.Context, submission Submission) (json.RawMessage, error) {
	if err := submission.Validate(); err != nil {
		return nil, err
	}

	issueType := submission.IssueType
	if issueType == "" {
		issueType = "general"
	}
	name := submission.Name
	if name == "" {
		name = "Anonymous User"
	}
	email := submission.Email
	if email == "" {
		email = "no-reply@sqlflow.com"
	}
	pageURL := submission.PageURL
	if pageURL == "" {
		pageURL = "Direct access"
	}

	payload := relayPayload{
		AccessKey: c.accessKey,
		Subject:   fmt.Sprintf("SQLFlow %s Report", issueType),
		Name:      name,
		Email:     email,
		Message:   submission.Message,
		PageURL:   pageURL,
		ReplyTo:   email,
		Botcheck:  false,
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	var decoded json.RawMessage
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return nil, fmt.Errorf("decode relay response: %w", err)
	}
	return decoded, nil
}
