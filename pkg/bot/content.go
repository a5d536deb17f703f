package bot

import tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

// Triggers recognized by exact text match.
const (
	startCommand    = "/start"
	orderButton     = "💬 Заказать"
	servicesButton  = "📋 Услуги"
	portfolioButton = "💼 Примеры работ"
)

const greetingText = "Привет, Александр! Бот запущен и готов к работе ✅"

const servicesText = "📋 Услуги:\n\n" +
	"✍ Помогаю словами решать задачи:\n" +
	"• Тексты для Telegram, прогревы\n" +
	"• Продающие карточки Ozon / WB\n" +
	"• Скрипты под видео / лендинги\n" +
	"• Редактура, упаковка, генерация промтов\n\n" +
	"🕐 Сроки — от 1 дня\n" +
	"💰 Стоимость — от 1 000 ₽\n\n" +
	"Нажмите «💬 Заказать» — и обсудим вашу задачу."

const portfolioText = "💼 Примеры работ:\n\n" +
	"📄 [Смотреть портфолио](https://docs.google.com/document/d/1m0ydVEODPfvMTqCXtWvBSlp_jXZNX600xf3IgApGPVk)\n\n" +
	"📦 Карточка товара:\n" +
	"«Это не просто куртка — это броня на зиму»\n\n" +
	"👟 Описание кроссовок:\n" +
	"«Амортизация, подошва и память стельки — комфорт на весь день»"

// mainMenu is the persistent reply keyboard shown with the greeting.
var mainMenu = tgbotapi.NewReplyKeyboard(
	tgbotapi.NewKeyboardButtonRow(
		tgbotapi.NewKeyboardButton(servicesButton),
		tgbotapi.NewKeyboardButton(portfolioButton),
	),
	tgbotapi.NewKeyboardButtonRow(
		tgbotapi.NewKeyboardButton(orderButton),
	),
)
