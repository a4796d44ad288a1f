package texts

import "fmt"

const (
	StartGreeting = "Привет 🙂 Я помогу сделать натальную карту.\n\n" +
		"Сначала введём данные.\n" +
		"Введи дату рождения (YYYY-MM-DD или DD.MM.YYYY)."

	FirstContact = "Давай начнём 🙂 Введи дату рождения (YYYY-MM-DD или DD.MM.YYYY)."

	ResetDone = "Сбросила ввод ✅\nВведи дату рождения (YYYY-MM-DD или DD.MM.YYYY)."

	HelpCommand = "Я делаю натальную карту и отвечаю на вопросы по ней 🔮\n\n" +
		"/start - начать ввод данных заново\n" +
		"/reset - сбросить введённые данные\n" +
		"/history - последние вопросы\n" +
		"/help - эта справка"

	UnknownCommand = "Не знаю команду /%s 😅 Напиши /help"

	EmptyText = "Напиши текстом 🙂"

	DateInvalid = "Не поняла дату. Пример: 1992-08-14 или 14.08.1992"

	AskTime = "Отлично. Введи время рождения (HH:MM), например 07:30"

	TimeInvalid = "Не поняла время. Пример: 07:30 (24-часовой формат)"

	AskCity = "Город рождения? (например: Barcelona)"

	AskCountry = "Страна рождения? (например: Russia)"

	AskTimezone = "Ок. Теперь часовой пояс в формате IANA.\n" +
		"Пример: Europe/Amsterdam или Europe/Madrid"

	TimezoneInvalid = "Похоже на неверный формат. Пример: Europe/Amsterdam"

	AskTopic = "Теперь выбери тему 👇"

	AskQuestion = "Ок 🙂 Напиши одним сообщением, что именно хочешь разобрать по этой теме.\n" +
		"Например: «почему у меня повторяются такие отношения?» или «куда расти в карьере?»"

	NextTopic = "Хочешь ещё один разбор? Выбери тему 👇"

	GenerationNotConfigured = "Бот запущен, но не настроен OPENAI_API_KEY."

	GeocodeMiss = "Не смогла найти координаты города 😕\n" +
		"Попробуй написать город/страну на английском или крупнее (например: Moscow, Russia)."

	ChartError = "Ошибка расчёта карты 😕 (%v)\nПопробуй /reset и введи данные заново."

	GenerationFallback = "Не получилось сформировать ответ — попробуй написать иначе 🙂"

	Lost = "Я чуть потерялась 😅 Напиши /start чтобы начать заново."

	HistoryUnavailable = "Журнал вопросов не настроен 😕"

	HistoryEmpty = "Пока не было ни одного разбора. Напиши /start 🙂"

	HistoryHeader = "Твои последние вопросы 📜"

	HistoryError = "Не получилось достать историю 😕 Попробуй позже."

	// кнопки тем
	ButtonRelationships = "❤️ Отношения"
	ButtonCareer        = "💼 Работа"
	ButtonMoney         = "💰 Деньги"
	ButtonSelf          = "🧠 Я и характер"
	ButtonGeneral       = "🔮 Общая"
)

const systemPrompt = `Ты — тёплый и понятный астрологический помощник. Без мистики-страшилок, без фатализма.
Отвечай на русском.
Формат ответа:
- 1 абзац: суть по запросу
- 3–6 буллетов: что это значит + сильные стороны/риски
- 2 практичных шага (что сделать сегодня/на неделе)

Данные натальной карты (тропическая):
%s

Контекст:
- Тема: %s
- Вопрос пользователя: %s
`

// FormatUnknownCommand форматирует сообщение о неизвестной команде
func FormatUnknownCommand(command string) string {
	return fmt.Sprintf(UnknownCommand, command)
}

// FormatChartError форматирует сообщение об ошибке расчёта карты
func FormatChartError(err error) string {
	return fmt.Sprintf(ChartError, err)
}

// FormatSystemPrompt собирает системный промпт из сводки карты, темы и вопроса
func FormatSystemPrompt(chartText, topicLabel, question string) string {
	return fmt.Sprintf(systemPrompt, chartText, topicLabel, question)
}
