// Package content holds the static question tables served to the candidate
// UI: the cognitive mini-test, the personality inventory and the sales case
// scenarios. Pure configuration data, no logic.
package content

// CognitiveQuestion is one multiple-choice question of the cognitive test.
type CognitiveQuestion struct {
	ID       string   `json:"id"`
	Question string   `json:"question"`
	Options  []string `json:"options"`
}

var CognitiveQuestions = []CognitiveQuestion{
	{
		ID:       "logic_1",
		Question: "Все менеджеры по продажам коммуникабельны. Иван коммуникабелен. Значит, Иван — менеджер по продажам. Это утверждение:",
		Options:  []string{"Правда", "Ложь", "Недостаточно данных"},
	},
	{
		ID:       "math_1",
		Question: "Ручка и блокнот стоят 110 рублей. Блокнот дороже ручки на 100 рублей. Сколько стоит ручка?",
		Options:  []string{"10 рублей", "5 рублей", "15 рублей"},
	},
	{
		ID:       "attention_1",
		Question: "Сколько раз цифра 1 встречается в числах от 1 до 20 включительно?",
		Options:  []string{"11", "12", "13"},
	},
}

// CognitiveAnswerKey maps question id to the correct option text.
var CognitiveAnswerKey = map[string]string{
	"logic_1":     "Ложь",
	"math_1":      "5 рублей",
	"attention_1": "11",
}

// PersonalityOption is one answer choice with its raw 1-5 value.
type PersonalityOption struct {
	Text  string `json:"text"`
	Value int    `json:"value"`
}

// PersonalityQuestion is one item of the personality inventory.
type PersonalityQuestion struct {
	ID      string              `json:"id"`
	Text    string              `json:"text"`
	Scale   string              `json:"-"`
	Options []PersonalityOption `json:"options"`
}

// Personality scale names. Teamwork is surveyed but excluded from the
// weighted sales-fit score.
const (
	ScalePersistence      = "persistence"
	ScaleStressResistance = "stress_resistance"
	ScaleEnergy           = "energy"
	ScaleSociability      = "sociability"
	ScaleHonesty          = "honesty"
	ScaleRoutineTolerance = "routine_tolerance"
	ScaleTeamwork         = "teamwork"
)

// PersonalityScales lists every surveyed scale in display order.
var PersonalityScales = []string{
	ScalePersistence,
	ScaleStressResistance,
	ScaleEnergy,
	ScaleSociability,
	ScaleHonesty,
	ScaleRoutineTolerance,
	ScaleTeamwork,
}

var likertOptions = []PersonalityOption{
	{Text: "Совсем не про меня", Value: 1},
	{Text: "Скорее не про меня", Value: 2},
	{Text: "Иногда", Value: 3},
	{Text: "Скорее про меня", Value: 4},
	{Text: "Точно про меня", Value: 5},
}

var PersonalityQuestions = []PersonalityQuestion{
	{ID: "p1", Scale: ScalePersistence, Text: "Если клиент отказал, я ищу другой подход, а не сдаюсь.", Options: likertOptions},
	{ID: "p2", Scale: ScalePersistence, Text: "Я довожу начатые дела до конца, даже когда трудно.", Options: likertOptions},
	{ID: "p3", Scale: ScaleStressResistance, Text: "Жёсткий разговор с клиентом не выбивает меня из колеи.", Options: likertOptions},
	{ID: "p4", Scale: ScaleStressResistance, Text: "В ситуации цейтнота я сохраняю спокойствие.", Options: likertOptions},
	{ID: "p5", Scale: ScaleEnergy, Text: "Мне комфортен высокий темп работы в течение всего дня.", Options: likertOptions},
	{ID: "p6", Scale: ScaleEnergy, Text: "После длинного рабочего дня у меня остаются силы на новые задачи.", Options: likertOptions},
	{ID: "p7", Scale: ScaleSociability, Text: "Мне легко начать разговор с незнакомым человеком.", Options: likertOptions},
	{ID: "p8", Scale: ScaleSociability, Text: "Я получаю удовольствие от общения с большим количеством людей.", Options: likertOptions},
	{ID: "p9", Scale: ScaleHonesty, Text: "Я честно говорю клиенту о недостатках продукта.", Options: likertOptions},
	{ID: "p10", Scale: ScaleHonesty, Text: "Я признаю свои ошибки перед коллегами и руководителем.", Options: likertOptions},
	{ID: "p11", Scale: ScaleRoutineTolerance, Text: "Повторяющиеся задачи (звонки, отчёты в CRM) меня не раздражают.", Options: likertOptions},
	{ID: "p12", Scale: ScaleRoutineTolerance, Text: "Я спокойно выполняю однотипную работу изо дня в день.", Options: likertOptions},
	{ID: "p13", Scale: ScaleTeamwork, Text: "Я охотно делюсь удачными приёмами продаж с коллегами.", Options: likertOptions},
	{ID: "p14", Scale: ScaleTeamwork, Text: "Мне важнее результат команды, чем личное первенство.", Options: likertOptions},
}

// PersonalityQuestionScale maps question id to its scale.
func PersonalityQuestionScale() map[string]string {
	m := make(map[string]string, len(PersonalityQuestions))
	for _, q := range PersonalityQuestions {
		m[q.ID] = q.Scale
	}
	return m
}

// SalesScenario is one open-ended sales case.
type SalesScenario struct {
	ID   string `json:"id"`
	Type string `json:"type"` // situation, motivation, experience, objection, cold_calling
	Text string `json:"text"`
}

var SalesScenarios = []SalesScenario{
	{ID: "s1", Type: "situation", Text: "Клиент третий месяц обещает подписать договор, но каждый раз переносит встречу. Ваши действия?"},
	{ID: "s2", Type: "motivation", Text: "Что лично вас мотивирует выполнять план продаж, кроме денег?"},
	{ID: "s3", Type: "experience", Text: "Расскажите о самой сложной сделке, которую вам удалось закрыть. Что было решающим?"},
	{ID: "s4", Type: "objection", Text: "Клиент говорит: «У конкурентов дешевле». Как вы ответите?"},
	{ID: "s5", Type: "cold_calling", Text: "Первые 20 секунд холодного звонка директору компании. Что вы скажете?"},
}
