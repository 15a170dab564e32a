// Package notify posts one-way Telegram announcements when a drawing matches
// its challenge. Strictly best-effort; failures are only logged.
package notify

import (
	"fmt"
	"log"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

type Announcer struct {
	bot    *tgbotapi.BotAPI
	chatID int64
}

func New(token string, chatID int64) (*Announcer, error) {
	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, err
	}
	bot.Debug = false
	return &Announcer{bot: bot, chatID: chatID}, nil
}

func (a *Announcer) AnnounceMatch(object, rewardURL string) {
	text := fmt.Sprintf("🎨 Someone just drew a great %s!", object)
	if rewardURL != "" {
		text += "\nReward artwork: " + rewardURL
	}
	if _, err := a.bot.Send(tgbotapi.NewMessage(a.chatID, text)); err != nil {
		log.Printf("telegram announce: %v", err)
	}
}
