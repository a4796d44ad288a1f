package natal

import (
	"strings"

	"github.com/admin/tg-bots/natal-bot/internal/domain"
	"github.com/admin/tg-bots/natal-bot/internal/usecases/natal/texts"
)

type stepAction int

const (
	actionReply    stepAction = iota // отправить reply обычным сообщением
	actionAskTopic                   // отправить reply с клавиатурой тем
	actionFreeform                   // запустить раунд вопроса (внешние вызовы)
)

type stepResult struct {
	reply  string
	action stepAction
}

// advance применяет один текстовый ввод к сессии: валидирует, заполняет поле
// и двигает состояние. Никакого I/O, шаг проверяется в изоляции.
// При отклонении ввода состояние не меняется, reply - корректирующее сообщение.
func advance(sess *domain.Session, text string) stepResult {
	d := &sess.Data

	switch sess.State {
	case domain.StateAskDate:
		date := parseDate(text)
		if date == nil {
			return stepResult{reply: texts.DateInvalid}
		}
		d.Date = date
		sess.State = domain.StateAskTime
		return stepResult{reply: texts.AskTime}

	case domain.StateAskTime:
		hour, minute, ok := parseTime(text)
		if !ok {
			return stepResult{reply: texts.TimeInvalid}
		}
		d.Time = &domain.DayTime{Hour: hour, Minute: minute}
		sess.State = domain.StateAskCity
		return stepResult{reply: texts.AskCity}

	case domain.StateAskCity:
		city, country := parsePlace(text)
		if city == "" {
			return stepResult{reply: texts.AskCity}
		}
		d.City = &city
		if country != "" {
			// город и страна одним сообщением - шаг страны пропускаем
			d.Country = &country
			sess.State = domain.StateAskTZ
			return stepResult{reply: texts.AskTimezone}
		}
		sess.State = domain.StateAskCountry
		return stepResult{reply: texts.AskCountry}

	case domain.StateAskCountry:
		country := strings.TrimSpace(text)
		if country == "" {
			return stepResult{reply: texts.AskCountry}
		}
		d.Country = &country
		sess.State = domain.StateAskTZ
		return stepResult{reply: texts.AskTimezone}

	case domain.StateAskTZ:
		if !validTimezone(text) {
			return stepResult{reply: texts.TimezoneInvalid}
		}
		tz := text
		d.Timezone = &tz
		sess.State = domain.StateAskTopic
		return stepResult{reply: texts.AskTopic, action: actionAskTopic}

	case domain.StateAskTopic:
		// тема выбирается кнопкой, на текст повторяем клавиатуру
		return stepResult{reply: texts.AskTopic, action: actionAskTopic}

	case domain.StateAskFreeform:
		return stepResult{action: actionFreeform}

	default:
		return stepResult{reply: texts.Lost}
	}
}
