package wechat

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"time"

	"github.com/fitstudio/backend/cache"
	config "github.com/fitstudio/backend/configs"
)

const apiBase = "https://api.weixin.qq.com"

// Client talks to the WeChat Mini-Program APIs. Access tokens are kept
// in the injected cache (WeChat invalidates the previous token on each
// fetch, so all processes must share one copy).
type Client struct {
	appID  string
	secret string
	tokens *cache.Cache
	http   *http.Client
}

func NewClient(tokens *cache.Cache) *Client {
	return &Client{
		appID:  config.Config("WECHAT_APP_ID"),
		secret: config.Config("WECHAT_APP_SECRET"),
		tokens: tokens,
		http:   &http.Client{Timeout: 10 * time.Second},
	}
}

type SessionResponse struct {
	OpenID     string `json:"openid"`
	SessionKey string `json:"session_key"`
	UnionID    string `json:"unionid"`
	ErrCode    int    `json:"errcode"`
	ErrMsg     string `json:"errmsg"`
}

// Code2Session exchanges a mini-program login code for the user's openid.
func (c *Client) Code2Session(code string) (*SessionResponse, error) {
	url := fmt.Sprintf("%s/sns/jscode2session?appid=%s&secret=%s&js_code=%s&grant_type=authorization_code",
		apiBase, c.appID, c.secret, code)

	resp, err := c.http.Get(url)
	if err != nil {
		return nil, fmt.Errorf("wechat: code2session request: %w", err)
	}
	defer resp.Body.Close()

	var session SessionResponse
	if err := json.NewDecoder(resp.Body).Decode(&session); err != nil {
		return nil, fmt.Errorf("wechat: decode session: %w", err)
	}
	if session.ErrCode != 0 {
		return nil, fmt.Errorf("wechat: code2session error %d: %s", session.ErrCode, session.ErrMsg)
	}
	return &session, nil
}

type tokenResponse struct {
	AccessToken string `json:"access_token"`
	ExpiresIn   int    `json:"expires_in"`
	ErrCode     int    `json:"errcode"`
	ErrMsg      string `json:"errmsg"`
}

// AccessToken returns a cached token or fetches a fresh one.
func (c *Client) AccessToken(ctx context.Context) (string, error) {
	var token string
	if c.tokens.Get(ctx, "access_token", &token) && token != "" {
		return token, nil
	}

	url := fmt.Sprintf("%s/cgi-bin/token?grant_type=client_credential&appid=%s&secret=%s",
		apiBase, c.appID, c.secret)
	resp, err := c.http.Get(url)
	if err != nil {
		return "", fmt.Errorf("wechat: token request: %w", err)
	}
	defer resp.Body.Close()

	var tr tokenResponse
	if err := json.NewDecoder(resp.Body).Decode(&tr); err != nil {
		return "", fmt.Errorf("wechat: decode token: %w", err)
	}
	if tr.ErrCode != 0 {
		return "", fmt.Errorf("wechat: token error %d: %s", tr.ErrCode, tr.ErrMsg)
	}

	c.tokens.Set(ctx, "access_token", tr.AccessToken)
	return tr.AccessToken, nil
}

type subscribePayload struct {
	ToUser     string                       `json:"touser"`
	TemplateID string                       `json:"template_id"`
	Page       string                       `json:"page,omitempty"`
	Data       map[string]map[string]string `json:"data"`
}

// SendSubscribeMessage delivers a template message to a mini-program user.
func (c *Client) SendSubscribeMessage(ctx context.Context, openID, templateID string, data map[string]string) error {
	token, err := c.AccessToken(ctx)
	if err != nil {
		return err
	}

	payload := subscribePayload{
		ToUser:     openID,
		TemplateID: templateID,
		Data:       map[string]map[string]string{},
	}
	for key, value := range data {
		payload.Data[key] = map[string]string{"value": value}
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("wechat: marshal message: %w", err)
	}

	url := fmt.Sprintf("%s/cgi-bin/message/subscribe/send?access_token=%s", apiBase, token)
	req, err := http.NewRequestWithContext(ctx, "POST", url, bytes.NewBuffer(body))
	if err != nil {
		return fmt.Errorf("wechat: create request: %w", err)
	}
	req.Header.Set("content-type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("wechat: send message: %w", err)
	}
	defer resp.Body.Close()

	respBytes, _ := io.ReadAll(resp.Body)
	var result struct {
		ErrCode int    `json:"errcode"`
		ErrMsg  string `json:"errmsg"`
	}
	if err := json.Unmarshal(respBytes, &result); err != nil {
		return fmt.Errorf("wechat: decode send response: %w", err)
	}
	if result.ErrCode == 40001 || result.ErrCode == 42001 {
		// token expired early, drop it so the next call refetches
		c.tokens.Delete(ctx, "access_token")
	}
	if result.ErrCode != 0 {
		return fmt.Errorf("wechat: send message error %d: %s", result.ErrCode, result.ErrMsg)
	}

	log.Printf("✅ WeChat message %s sent to %s", templateID, openID)
	return nil
}
