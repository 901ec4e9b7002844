package notifications

import (
	"context"
	"fmt"

	"github.com/imroc/req/v3"
)

// Button is one inline-keyboard button; CallbackData comes back verbatim
// through the callback webhook.
type Button struct {
	Text         string `json:"text"`
	CallbackData string `json:"callback_data"`
}

type sendMessageResponse struct {
	Ok     bool `json:"ok"`
	Result struct {
		MessageID int64 `json:"message_id"`
	} `json:"result"`
}

type getFileResponse struct {
	Ok     bool `json:"ok"`
	Result struct {
		FileID   string `json:"file_id"`
		FilePath string `json:"file_path"`
	} `json:"result"`
}

type Telegram struct {
	client   *req.Client
	apiToken string
}

func NewTelegram(
	apiToken string,
	cl *req.Client,
) *Telegram {
	return &Telegram{
		client:   cl,
		apiToken: apiToken,
	}
}

// SendMessage posts text with an optional inline keyboard and returns the
// created message id, so later edits can target it.
func (t *Telegram) SendMessage(
	ctx context.Context,
	chatID int64,
	text string,
	keyboard [][]Button,
) (int64, error) {
	body := map[string]interface{}{
		"chat_id": chatID,
		"text":    text,
	}
	if len(keyboard) > 0 {
		body["reply_markup"] = map[string]interface{}{
			"inline_keyboard": keyboard,
		}
	}

	var result sendMessageResponse

	resp, err := t.client.R().
		SetBody(body).
		SetContext(ctx).
		SetSuccessResult(&result).
		Post(fmt.Sprintf("https://api.telegram.org/bot%v/sendMessage", t.apiToken))
	if err != nil {
		return 0, err
	}

	if resp.IsErrorState() {
		return 0, fmt.Errorf("unexpected status code: %v and message %v", resp.StatusCode, resp.String())
	}

	return result.Result.MessageID, nil
}

func (t *Telegram) EditMessage(
	ctx context.Context,
	chatID int64,
	messageID int64,
	text string,
	keyboard [][]Button,
) error {
	body := map[string]interface{}{
		"chat_id":    chatID,
		"message_id": messageID,
		"text":       text,
	}
	if len(keyboard) > 0 {
		body["reply_markup"] = map[string]interface{}{
			"inline_keyboard": keyboard,
		}
	}

	resp, err := t.client.R().
		SetBody(body).
		SetContext(ctx).
		Post(fmt.Sprintf("https://api.telegram.org/bot%v/editMessageText", t.apiToken))
	if err != nil {
		return err
	}

	if resp.IsErrorState() {
		return fmt.Errorf("unexpected status code: %v and message %v", resp.StatusCode, resp.String())
	}

	return nil
}

func (t *Telegram) AnswerCallback(
	ctx context.Context,
	callbackID string,
	text string,
) error {
	body := map[string]interface{}{
		"callback_query_id": callbackID,
	}
	if text != "" {
		body["text"] = text
	}

	resp, err := t.client.R().
		SetBody(body).
		SetContext(ctx).
		Post(fmt.Sprintf("https://api.telegram.org/bot%v/answerCallbackQuery", t.apiToken))
	if err != nil {
		return err
	}

	if resp.IsErrorState() {
		return fmt.Errorf("unexpected status code: %v and message %v", resp.StatusCode, resp.String())
	}

	return nil
}

func (t *Telegram) React(
	ctx context.Context,
	chatID int64,
	messageID int64,
	reaction string,
) error {
	resp, err := t.client.R().
		SetBody(map[string]interface{}{
			"chat_id":    chatID,
			"message_id": messageID,
			"reaction": []map[string]interface{}{
				{
					"type":  "emoji",
					"emoji": reaction,
				},
			},
		}).
		SetContext(ctx).
		Post(fmt.Sprintf("https://api.telegram.org/bot%v/setMessageReaction", t.apiToken))
	if err != nil {
		return err
	}

	if resp.IsErrorState() {
		return fmt.Errorf("unexpected status code: %v and message %v", resp.StatusCode, resp.String())
	}

	return nil
}

// GetFile resolves a file id and downloads its content.
func (t *Telegram) GetFile(ctx context.Context, fileID string) ([]byte, error) {
	var meta getFileResponse

	resp, err := t.client.R().
		SetContext(ctx).
		SetQueryParam("file_id", fileID).
		SetSuccessResult(&meta).
		Get(fmt.Sprintf("https://api.telegram.org/bot%v/getFile", t.apiToken))
	if err != nil {
		return nil, err
	}

	if resp.IsErrorState() {
		return nil, fmt.Errorf("unexpected status code: %v and message %v", resp.StatusCode, resp.String())
	}

	fileResp, err := t.client.R().
		SetContext(ctx).
		Get(fmt.Sprintf("https://api.telegram.org/file/bot%v/%v", t.apiToken, meta.Result.FilePath))
	if err != nil {
		return nil, err
	}

	if fileResp.IsErrorState() {
		return nil, fmt.Errorf("unexpected status code: %v and message %v", fileResp.StatusCode, fileResp.String())
	}

	return fileResp.Bytes(), nil
}
