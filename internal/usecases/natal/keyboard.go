package natal

import (
	"github.com/admin/tg-bots/natal-bot/internal/domain"
	"github.com/admin/tg-bots/natal-bot/internal/usecases/natal/texts"
)

const topicCallbackPrefix = "topic:"

// topicKeyboard - фиксированная клавиатура из пяти тем, по две кнопки в ряду
// (последняя одна)
func topicKeyboard() domain.InlineKeyboard {
	return domain.InlineKeyboard{
		InlineKeyboard: [][]domain.InlineButton{
			{
				{Text: texts.ButtonRelationships, CallbackData: topicCallbackPrefix + string(domain.TopicRelationships)},
				{Text: texts.ButtonCareer, CallbackData: topicCallbackPrefix + string(domain.TopicCareer)},
			},
			{
				{Text: texts.ButtonMoney, CallbackData: topicCallbackPrefix + string(domain.TopicMoney)},
				{Text: texts.ButtonSelf, CallbackData: topicCallbackPrefix + string(domain.TopicSelf)},
			},
			{
				{Text: texts.ButtonGeneral, CallbackData: topicCallbackPrefix + string(domain.TopicGeneral)},
			},
		},
	}
}
