package alerter

type Config struct {
	Enabled         bool   `envconfig:"ENABLED" default:"false"`
	BotToken        string `envconfig:"BOT_TOKEN"`
	ChatID          int64  `envconfig:"CHAT_ID"`
	MessageThreadID *int64 `envconfig:"MESSAGE_THREAD_ID"`
	APIBaseURL      string `envconfig:"API_BASE_URL" default:"https://api.telegram.org"`
}
