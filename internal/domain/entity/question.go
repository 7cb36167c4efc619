package entity

// QuizQuestion — один вопрос текущей викторины.
// Живет только в серверном состоянии сессии (Redis) между запуском
// и сдачей теста, в базу данных не пишется. Правильный ответ никогда
// не попадает в отрендеренную страницу — клиент видит только ID.
type QuizQuestion struct {
	ID       string   `json:"id"`     // непрозрачный идентификатор внутри батча
	Number   int      `json:"number"` // порядковый номер, начиная с 1
	Question string   `json:"question"`
	Options  []string `json:"options"` // варианты в перемешанном порядке
	Answer   string   `json:"answer"`  // правильный ответ открытым текстом
}

// IsCorrect проверяет выбранный вариант точным сравнением строк.
// Произвольные строки, не входящие в Options, просто не совпадут.
func (q *QuizQuestion) IsCorrect(selected string) bool {
	return selected == q.Answer
}
