// Package uistate хранит состояние страниц консоли: открытые диалоги,
// содержимое форм и текст последней ошибки. Все переходы - чистые функции
// над значениями, контроллер страницы только сохраняет результат.
package uistate

// Dialog - модальное окно создания/редактирования записи с формой типа F.
// EditingID пустой, когда диалог открыт на создание.
type Dialog[F any] struct {
	Open      bool   `json:"open"`
	EditingID string `json:"editing_id,omitempty"`
	Form      F      `json:"form"`
	Error     string `json:"error,omitempty"`
}

// OpenNew открывает диалог создания с начальными значениями формы.
func (d Dialog[F]) OpenNew(blank F) Dialog[F] {
	return Dialog[F]{Open: true, Form: blank}
}

// OpenEdit открывает диалог редактирования записи id, форма заполнена из записи.
func (d Dialog[F]) OpenEdit(id string, form F) Dialog[F] {
	return Dialog[F]{Open: true, EditingID: id, Form: form}
}

// Close закрывает диалог и сбрасывает форму.
func (d Dialog[F]) Close() Dialog[F] {
	return Dialog[F]{}
}

// Update заменяет содержимое формы, не трогая режим диалога.
func (d Dialog[F]) Update(form F) Dialog[F] {
	d.Form = form
	return d
}

// Failed оставляет диалог открытым с введёнными данными и запоминает ошибку.
func (d Dialog[F]) Failed(form F, message string) Dialog[F] {
	d.Open = true
	d.Form = form
	d.Error = message
	return d
}

func (d Dialog[F]) IsEditing() bool {
	return d.Open && d.EditingID != ""
}
