package i18n

var translations = map[Locale]map[string]string{
	EN: {
		"app.brandName":        "Fast Code",
		"app.brandTagline":     "typing lab",
		"nav.topPlayers":       "Top players",
		"language.selectLabel": "Language",
		"banner.beta":          "The site is in BETA mode, errors are possible.",

		"fastcode.title":             "Coding Speed Test",
		"fastcode.subtitle":          "Type the snippet below to measure your accuracy and speed.",
		"fastcode.tooltip":           "Type to begin",
		"fastcode.seconds":           "seconds",
		"fastcode.progress":          "Progress",
		"fastcode.stats.wpm":         "WPM",
		"fastcode.stats.accuracy":    "Accuracy",
		"fastcode.stats.cpm":         "Chars/min",
		"fastcode.summary.title":     "Session summary",
		"fastcode.summary.wpm":       "Final WPM",
		"fastcode.summary.accuracy":  "Accuracy",
		"fastcode.summary.correct":   "Correct chars",
		"fastcode.summary.incorrect": "Incorrect chars",
		"fastcode.leaderboard":       "Leaderboard",
		"fastcode.streak":            "Streak",

		"topPlayers.title":        "Top players",
		"topPlayers.description":  "The fastest and most accurate coders this week.",
		"topPlayers.wpm":          "WPM",
		"topPlayers.accuracy":     "Accuracy",
		"topPlayers.streak":       "Streak",
		"topPlayers.badgeLabel":   "Badge",
		"topPlayers.badge.elite":  "Elite",
		"topPlayers.badge.pro":    "Pro",
		"topPlayers.badge.rising": "Rising star",
		"topPlayers.footer":       "Rankings update daily.",

		"auth.login.title":      "Welcome back",
		"auth.login.email":      "Email",
		"auth.login.password":   "Password",
		"auth.login.button":     "Log in",
		"auth.login.success":    "Logged in successfully.",
		"auth.login.remember":   "Remember me",
		"auth.form.hint":        "tab next · enter submit · esc quit",
		"auth.signup.title":     "Create an account",
		"auth.signup.name":      "Name",
		"auth.signup.email":     "Email",
		"auth.signup.password":  "Password",
		"auth.signup.confirm":   "Confirm password",
		"auth.signup.button":    "Sign up",
		"auth.signup.success":   "Account created.",
		"auth.error.mismatch":   "Passwords need to match.",
		"auth.error.required":   "All fields are required.",
		"auth.error.short":      "Password must be at least 6 characters.",
		"telegram.login.title":  "Log in with Telegram",
		"telegram.login.button": "Continue with Telegram",
	},
	RU: {
		"app.brandName":        "Fast Code",
		"app.brandTagline":     "лаборатория печати",
		"nav.topPlayers":       "Лучшие игроки",
		"language.selectLabel": "Язык",
		"banner.beta":          "Сайт работает в режиме BETA, возможны ошибки.",

		"fastcode.title":             "Тест скорости кода",
		"fastcode.subtitle":          "Наберите фрагмент ниже, чтобы измерить точность и скорость.",
		"fastcode.tooltip":           "Начните печатать",
		"fastcode.seconds":           "секунд",
		"fastcode.progress":          "Прогресс",
		"fastcode.stats.wpm":         "Слов/мин",
		"fastcode.stats.accuracy":    "Точность",
		"fastcode.stats.cpm":         "Симв/мин",
		"fastcode.summary.title":     "Итоги сессии",
		"fastcode.summary.wpm":       "Итоговая скорость",
		"fastcode.summary.accuracy":  "Точность",
		"fastcode.summary.correct":   "Верные символы",
		"fastcode.summary.incorrect": "Ошибочные символы",
		"fastcode.leaderboard":       "Таблица лидеров",
		"fastcode.streak":            "Серия",

		"topPlayers.title":        "Лучшие игроки",
		"topPlayers.description":  "Самые быстрые и точные программисты недели.",
		"topPlayers.wpm":          "Слов/мин",
		"topPlayers.accuracy":     "Точность",
		"topPlayers.streak":       "Серия",
		"topPlayers.badgeLabel":   "Значок",
		"topPlayers.badge.elite":  "Элита",
		"topPlayers.badge.pro":    "Профи",
		"topPlayers.badge.rising": "Восходящая звезда",
		"topPlayers.footer":       "Рейтинг обновляется ежедневно.",

		"auth.login.title":      "С возвращением",
		"auth.login.password":   "Пароль",
		"auth.login.button":     "Войти",
		"auth.login.success":    "Вход выполнен.",
		"auth.login.remember":   "Запомнить меня",
		"auth.form.hint":        "tab далее · enter отправить · esc выход",
		"auth.signup.title":     "Создать аккаунт",
		"auth.signup.name":      "Имя",
		"auth.signup.password":  "Пароль",
		"auth.signup.confirm":   "Повторите пароль",
		"auth.signup.button":    "Зарегистрироваться",
		"auth.signup.success":   "Аккаунт создан.",
		"auth.error.mismatch":   "Пароли должны совпадать.",
		"auth.error.required":   "Заполните все поля.",
		"auth.error.short":      "Пароль должен быть не короче 6 символов.",
		"telegram.login.title":  "Вход через Telegram",
		"telegram.login.button": "Продолжить с Telegram",
	},
	UZ: {
		"app.brandTagline":     "yozish laboratoriyasi",
		"nav.topPlayers":       "Top o'yinchilar",
		"language.selectLabel": "Til",
		"banner.beta":          "Sayt hozircha BETA rejimida ishlayapti, xatoliklar bo'lishi mumkin.",

		"fastcode.title":             "Kod yozish tezligi testi",
		"fastcode.subtitle":          "Aniqlik va tezlikni o'lchash uchun quyidagi kodni yozing.",
		"fastcode.tooltip":           "Boshlash uchun yozing",
		"fastcode.seconds":           "soniya",
		"fastcode.progress":          "Jarayon",
		"fastcode.stats.wpm":         "So'z/daq",
		"fastcode.stats.accuracy":    "Aniqlik",
		"fastcode.stats.cpm":         "Belgi/daq",
		"fastcode.summary.title":     "Sessiya natijasi",
		"fastcode.summary.wpm":       "Yakuniy tezlik",
		"fastcode.summary.accuracy":  "Aniqlik",
		"fastcode.summary.correct":   "To'g'ri belgilar",
		"fastcode.summary.incorrect": "Xato belgilar",
		"fastcode.leaderboard":       "Reyting",
		"fastcode.streak":            "Ketma-ketlik",

		"topPlayers.title":        "Top o'yinchilar",
		"topPlayers.description":  "Haftaning eng tez va aniq dasturchilari.",
		"topPlayers.accuracy":     "Aniqlik",
		"topPlayers.streak":       "Ketma-ketlik",
		"topPlayers.badgeLabel":   "Nishon",
		"topPlayers.badge.elite":  "Elita",
		"topPlayers.badge.pro":    "Pro",
		"topPlayers.badge.rising": "Yangi yulduz",
		"topPlayers.footer":       "Reyting har kuni yangilanadi.",

		"auth.login.title":     "Xush kelibsiz",
		"auth.login.password":  "Parol",
		"auth.login.button":    "Kirish",
		"auth.signup.title":    "Hisob yaratish",
		"auth.signup.name":     "Ism",
		"auth.signup.password": "Parol",
		"auth.signup.confirm":  "Parolni tasdiqlang",
		"auth.signup.button":   "Ro'yxatdan o'tish",
		"auth.error.mismatch":  "Parollar mos kelishi kerak.",
	},
	KZ: {
		"app.brandTagline":     "теру зертханасы",
		"nav.topPlayers":       "Үздік ойыншылар",
		"language.selectLabel": "Тіл",
		"banner.beta":          "Сайт BETA режимінде жұмыс істейді, қателер болуы мүмкін.",

		"fastcode.title":             "Код теру жылдамдығы",
		"fastcode.subtitle":          "Дәлдік пен жылдамдықты өлшеу үшін төмендегі кодты теріңіз.",
		"fastcode.tooltip":           "Бастау үшін теріңіз",
		"fastcode.seconds":           "секунд",
		"fastcode.progress":          "Барысы",
		"fastcode.stats.wpm":         "Сөз/мин",
		"fastcode.stats.accuracy":    "Дәлдік",
		"fastcode.stats.cpm":         "Таңба/мин",
		"fastcode.summary.title":     "Сессия қорытындысы",
		"fastcode.summary.wpm":       "Қорытынды жылдамдық",
		"fastcode.summary.accuracy":  "Дәлдік",
		"fastcode.summary.correct":   "Дұрыс таңбалар",
		"fastcode.summary.incorrect": "Қате таңбалар",
		"fastcode.leaderboard":       "Көшбасшылар",
		"fastcode.streak":            "Қатарынан",

		"topPlayers.title":        "Үздік ойыншылар",
		"topPlayers.accuracy":     "Дәлдік",
		"topPlayers.badge.elite":  "Элита",
		"topPlayers.badge.rising": "Жаңа жұлдыз",

		"auth.login.password":  "Құпиясөз",
		"auth.login.button":    "Кіру",
		"auth.signup.password": "Құпиясөз",
		"auth.signup.button":   "Тіркелу",
		"auth.error.mismatch":  "Құпиясөздер сәйкес болуы керек.",
	},
}
