package bot

import "github.com/m3rciful/tailtrust/clinic/engine"

const (
	helpUnregistered = "Список доступных команд:\n" +
		"/start - Начать работу с ботом\n" +
		"/register - Зарегистрироваться\n" +
		"/reset - Обнулить регистрацию\n" +
		"/help - Посмотреть список команд"

	helpRegistered = helpUnregistered + "\n" +
		"/profile - Посмотреть профиль\n" +
		"/appointment - Записаться на приём\n" +
		"/applist - Посмотреть свои записи"
)

// DefaultTexts is the Russian wording of every reply the bot sends.
var DefaultTexts = engine.Texts{
	Welcome:          "Добро пожаловать!\nДля регистрации введите команду /register.",
	HelpRegistered:   helpRegistered,
	HelpUnregistered: helpUnregistered,

	AlreadyRegistered: "Вы уже зарегистрированы.",
	NotRegistered:     "Вы еще не зарегистрированы.",
	ResetDone:         "Все данные сброшены.",

	PromptName:       "Введите Ваше имя:",
	PromptSurname:    "Теперь введите вашу фамилию:",
	PromptPhone:      "Теперь введите ваш телефон:",
	RegistrationDone: "Регистрация завершена! Теперь Вы можете пользоваться полным функционалом.",
	ProfileFormat:    "Ваш профиль:\nИмя: %s\nФамилия: %s\nТелефон: %s",

	NoClientRecord: "Не удалось получить идентификатор из базы данных.\n" +
		"Для регистрации введите команду /register.",
	BadName: "Некорректное имя.\nИмя должно содержать буквы, допускаются пробелы.\n" +
		"Пожалуйста, введите имя заново.",
	BadSurname: "Некорректная фамилия.\nФамилия должна содержать буквы, допускаются пробелы.\n" +
		"Пожалуйста, введите фамилию заново.",
	BadPhone: "Некорректный номер телефона.\nНомер телефона должен быть в " +
		"формате +12345678901 или 12345678901.\nПожалуйста, введите номер телефона заново.",

	PromptDate:  "Выберите дату приёма:",
	PromptTime:  "Теперь выберите время приёма:",
	PromptPet:   "Теперь выберите тип питомца:",
	BookingDone: "Запись оформлена! Ждём вас в клинике.",

	NoAppointmentRecord: "Нет активной записи.\nДля записи на приём введите команду /appointment.",
	BadDate: "Некорректная дата.\nДата должна быть в формате ГГГГ-ММ-ДД.\n" +
		"Пожалуйста, выберите дату из предложенных вариантов.",
	BadTime: "Некорректное время.\nВремя должно быть в формате ЧЧ:ММ.\n" +
		"Пожалуйста, выберите время из предложенных вариантов.",
	BadPet: "Неизвестный тип питомца.\nПожалуйста, выберите вариант с клавиатуры.",

	NoAppointments:     "У вас пока нет записей.",
	AppointmentsHeader: "Ваши записи:\n",
	AppointmentFormat:  "%s в %s, питомец: %s",
}
