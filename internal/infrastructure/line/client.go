package line

import (
	"fmt"

	"github.com/line/line-bot-sdk-go/v7/linebot"
	"github.com/rs/zerolog"
)

// Client wraps the linebot.Client for push delivery.
type Client struct {
	*linebot.Client
	log zerolog.Logger
}

// NewClient creates a LINE Bot client from channel credentials.
func NewClient(channelSecret, channelToken string, log zerolog.Logger) (*Client, error) {
	if channelSecret == "" || channelToken == "" {
		return nil, fmt.Errorf("LINE channel secret and access token must be set")
	}
	bot, err := linebot.New(channelSecret, channelToken)
	if err != nil {
		return nil, fmt.Errorf("failed to create LINE client: %w", err)
	}
	return &Client{Client: bot, log: log}, nil
}

// PushMessages sends one or more messages using the PushMessage API.
func (c *Client) PushMessages(to string, messages ...linebot.SendingMessage) error {
	if _, err := c.PushMessage(to, messages...).Do(); err != nil {
		return err
	}
	c.log.Debug().Str("to", to).Msg("pushed message")
	return nil
}
