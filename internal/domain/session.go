package domain

import "time"

// State - шаг диалога сбора данных рождения.
// Поток линейный с одним ветвлением:
// ASK_DATE → ASK_TIME → ASK_CITY → [ASK_COUNTRY] → ASK_TZ → ASK_TOPIC ⇄ ASK_FREEFORM
type State string

const (
	StateAskDate     State = "ASK_DATE"
	StateAskTime     State = "ASK_TIME"
	StateAskCity     State = "ASK_CITY"
	StateAskCountry  State = "ASK_COUNTRY"
	StateAskTZ       State = "ASK_TZ"
	StateAskTopic    State = "ASK_TOPIC"
	StateAskFreeform State = "ASK_FREEFORM"
)

func (s State) String() string {
	return string(s)
}

func (s State) IsValid() bool {
	switch s {
	case StateAskDate, StateAskTime, StateAskCity, StateAskCountry,
		StateAskTZ, StateAskTopic, StateAskFreeform:
		return true
	default:
		return false
	}
}

// Topic - тема разбора, выбирается кнопкой (закрытый набор)
type Topic string

const (
	TopicRelationships Topic = "relationships"
	TopicCareer        Topic = "career"
	TopicMoney         Topic = "money"
	TopicSelf          Topic = "self"
	TopicGeneral       Topic = "general"
)

func (t Topic) IsValid() bool {
	switch t {
	case TopicRelationships, TopicCareer, TopicMoney, TopicSelf, TopicGeneral:
		return true
	default:
		return false
	}
}

// Label возвращает русскую подпись темы для промпта
func (t Topic) Label() string {
	switch t {
	case TopicRelationships:
		return "отношения"
	case TopicCareer:
		return "работа/карьера"
	case TopicMoney:
		return "деньги"
	case TopicSelf:
		return "характер/личность"
	case TopicGeneral:
		return "общая карта"
	default:
		return "общая тема"
	}
}

// DayTime - время суток без даты и зоны (24-часовой формат)
type DayTime struct {
	Hour   int `json:"hour"`
	Minute int `json:"minute"`
}

// Coordinates - географические координаты в десятичных градусах
type Coordinates struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// BirthData - собранные данные рождения.
// Поля заполняются строго в порядке шагов диалога; nil означает "ещё не введено".
// Coords - производное значение, пересчитывается геокодингом на каждом раунде.
type BirthData struct {
	Date     *time.Time   `json:"date,omitempty"`
	Time     *DayTime     `json:"time,omitempty"`
	City     *string      `json:"city,omitempty"`
	Country  *string      `json:"country,omitempty"`
	Timezone *string      `json:"timezone,omitempty"` // IANA-идентификатор, например "Europe/Madrid"
	Coords   *Coordinates `json:"coords,omitempty"`
	Topic    *Topic       `json:"topic,omitempty"`
}

// Session - состояние диалога одного чата
type Session struct {
	ChatID    int64     `json:"chat_id"`
	State     State     `json:"state"`
	Data      BirthData `json:"data"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewSession создаёт свежую сессию в начальном состоянии
func NewSession(chatID int64) *Session {
	now := time.Now()
	return &Session{
		ChatID:    chatID,
		State:     StateAskDate,
		CreatedAt: now,
		UpdatedAt: now,
	}
}
