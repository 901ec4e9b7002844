package main

import "time"

type Config struct {
	ListenAddr string `env:"LISTEN_ADDR" envDefault:":8080"`
	APIKey     string `env:"API_KEY,required"`

	TelegramBotToken string `env:"TELEGRAM_BOT_TOKEN,required"`
	TelegramChatID   int64  `env:"TELEGRAM_CHAT_ID,required"`

	GeminiAPIKey string `env:"GEMINI_API_KEY,required"`
	GeminiModel  string `env:"GEMINI_MODEL"`

	FireflyURL    string `env:"FIREFLY_URL,required"`
	FireflyAPIKey string `env:"FIREFLY_API_KEY,required"`

	NominatimURL string `env:"NOMINATIM_URL"`

	AccountsConfigPath string `env:"ACCOUNTS_CONFIG" envDefault:"accounts.yaml"`

	MinConfidence       float64 `env:"MIN_CONFIDENCE" envDefault:"0.4"`
	AutoSelectThreshold int     `env:"AUTO_SELECT_THRESHOLD" envDefault:"80"`
	MaxRecentAccounts   int     `env:"MAX_RECENT_ACCOUNTS" envDefault:"5"`

	DraftMaxAge       time.Duration `env:"DRAFT_MAX_AGE" envDefault:"1h"`
	SweepSchedule     string        `env:"SWEEP_SCHEDULE" envDefault:"@every 10m"`
	StatementSchedule string        `env:"STATEMENT_SCHEDULE" envDefault:"0 9 * * *"`

	Workers int `env:"WORKERS" envDefault:"4"`
}

// AutomationPayload is what the mobile automation posts: either the raw
// notification text or a screenshot, plus whatever context it has.
type AutomationPayload struct {
	Text        string   `json:"text"`
	ImageBase64 string   `json:"image_base64"`
	ImageMIME   string   `json:"image_mime"`
	PackageID   string   `json:"package_id"`
	Timestamp   int64    `json:"timestamp"`
	Latitude    *float64 `json:"latitude"`
	Longitude   *float64 `json:"longitude"`
}

type Update struct {
	UpdateID      int64          `json:"update_id"`
	Message       *Message       `json:"message"`
	CallbackQuery *CallbackQuery `json:"callback_query"`
}

type Message struct {
	MessageID int64       `json:"message_id"`
	Date      int64       `json:"date"`
	Chat      Chat        `json:"chat"`
	Text      string      `json:"text"`
	Photo     []PhotoSize `json:"photo"`
}

type Chat struct {
	Id int64 `json:"id"`
}

type PhotoSize struct {
	FileID   string `json:"file_id"`
	FileSize int64  `json:"file_size"`
	Width    int    `json:"width"`
	Height   int    `json:"height"`
}

type CallbackQuery struct {
	ID      string   `json:"id"`
	Message *Message `json:"message"`
	Data    string   `json:"data"`
}
