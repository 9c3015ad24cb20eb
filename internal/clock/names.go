package clock

import "golang.org/x/text/language"

// DefaultLanguage is used when the requested language has no name tables
const DefaultLanguage = "en"

type nameTable struct {
	tag    language.Tag
	days   [7]string  // 0=Sunday
	months [12]string // 0=January
}

var nameTables = map[string]nameTable{
	"en": {
		tag:    language.English,
		days:   [7]string{"Sunday", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday"},
		months: [12]string{"January", "February", "March", "April", "May", "June", "July", "August", "September", "October", "November", "December"},
	},
	"ru": {
		tag:  language.Russian,
		days: [7]string{"воскресенье", "понедельник", "вторник", "среда", "четверг", "пятница", "суббота"},
		// genitive, as used after a day number
		months: [12]string{"января", "февраля", "марта", "апреля", "мая", "июня", "июля", "августа", "сентября", "октября", "ноября", "декабря"},
	},
	"pt": {
		tag:    language.Portuguese,
		days:   [7]string{"domingo", "segunda-feira", "terça-feira", "quarta-feira", "quinta-feira", "sexta-feira", "sábado"},
		months: [12]string{"janeiro", "fevereiro", "março", "abril", "maio", "junho", "julho", "agosto", "setembro", "outubro", "novembro", "dezembro"},
	},
}

// Languages returns the language codes that have name tables
func Languages() []string {
	return []string{"en", "ru", "pt"}
}
